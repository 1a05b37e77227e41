package ports

import "go.trai.ch/carth/internal/core/domain"

// RunInfoStore persists the outcome of successful runs. The state-file path
// is supplied per call; it belongs to the project being operated on, not to
// the process working directory.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type RunInfoStore interface {
	// Get retrieves the run info for an action from the state file at path,
	// or nil when none is recorded.
	Get(path, action string) (*domain.RunInfo, error)
	// Put stores the run info in the state file at path.
	Put(path string, info domain.RunInfo) error
}
