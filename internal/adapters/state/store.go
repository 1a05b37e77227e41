// Package state persists run info in a flat JSON file per project.
package state

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/carth/internal/core/domain"
	"go.trai.ch/carth/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RunInfoStore = (*Store)(nil)

// Store implements ports.RunInfoStore using a flat JSON file keyed by action.
// The file path is supplied per call, so one Store serves any number of
// projects; the mutex only guards concurrent calls within this process.
type Store struct {
	mu sync.Mutex
}

// NewStore creates a RunInfoStore.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the run info for an action from the state file at path.
// A missing file yields nil.
func (s *Store) Get(path, action string) (*domain.RunInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := load(path)
	if err != nil {
		return nil, err
	}

	info, ok := records[action]
	if !ok {
		return nil, nil
	}
	return &info, nil
}

// Put stores the run info in the state file at path, creating parent
// directories as needed.
func (s *Store) Put(path string, info domain.RunInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := load(path)
	if err != nil {
		return err
	}
	records[info.Action] = info

	return save(path, records)
}

func load(path string) (map[string]domain.RunInfo, error) {
	records := make(map[string]domain.RunInfo)

	//nolint:gosec // path is derived from the project layout
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return records, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read run info store"), "path", path)
	}

	if len(data) == 0 {
		return records, nil
	}

	if err := json.Unmarshal(data, &records); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to unmarshal run info store"), "path", path)
	}

	return records, nil
}

func save(path string, records map[string]domain.RunInfo) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal run info store")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for run info store")
	}

	//nolint:gosec // path is derived from the project layout
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write run info store"), "path", path)
	}

	return nil
}
