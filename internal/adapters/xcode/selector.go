package xcode

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/carth/internal/core/domain"
	"go.trai.ch/carth/internal/core/ports"
	"go.trai.ch/zerr"
)

// appCandidates are the install locations probed for a versioned Xcode,
// in order. The first existing one wins.
var appCandidates = []string{
	"/Applications/Xcode-%s.app",
	"/Applications/Xcode_%s.app",
	"/Applications/Xcode %s.app",
}

var _ ports.ToolchainSelector = (*Selector)(nil)

// Selector resolves a required Xcode version to selection environment variables.
type Selector struct {
	stat func(name string) (fs.FileInfo, error)
}

// NewSelector creates a new Selector.
func NewSelector() *Selector {
	return &Selector{stat: os.Stat}
}

// SelectionEnv returns a DEVELOPER_DIR entry for the requested version,
// or domain.ErrNoXcodeMatch when no candidate location exists.
func (s *Selector) SelectionEnv(version string) (map[string]string, error) {
	for _, pattern := range appCandidates {
		app := fmt.Sprintf(pattern, version)
		info, err := s.stat(app)
		if err != nil || !info.IsDir() {
			continue
		}
		return map[string]string{
			"DEVELOPER_DIR": filepath.Join(app, "Contents", "Developer"),
		}, nil
	}

	return nil, zerr.With(domain.ErrNoXcodeMatch, "version", version)
}
