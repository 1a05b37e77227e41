// Package carthage locates the carthage executable on the host.
package carthage

import (
	"io/fs"
	"os"
	"os/exec"

	"go.trai.ch/carth/internal/core/domain"
	"go.trai.ch/carth/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	toolName = "carthage"
	// fallbackPath is checked when the search path does not resolve the tool.
	// Homebrew on Intel installs here; daemon-launched processes often run
	// with a PATH that misses it.
	fallbackPath = "/usr/local/bin/carthage"
)

var _ ports.ToolLocator = (*Locator)(nil)

// Locator implements ports.ToolLocator.
type Locator struct {
	logger ports.Logger

	lookPath func(file string) (string, error)
	stat     func(name string) (fs.FileInfo, error)
}

// NewLocator creates a new Locator.
func NewLocator(logger ports.Logger) *Locator {
	return &Locator{
		logger:   logger,
		lookPath: exec.LookPath,
		stat:     os.Stat,
	}
}

// Locate resolves the carthage executable. The search path wins; the fixed
// fallback is only consulted when search-path resolution fails.
func (l *Locator) Locate() (string, error) {
	if path, err := l.lookPath(toolName); err == nil {
		return path, nil
	}

	if info, err := l.stat(fallbackPath); err == nil && !info.IsDir() {
		l.logger.Warn(toolName + " not found on the search path, using " + fallbackPath)
		return fallbackPath, nil
	}

	return "", zerr.With(domain.ErrToolNotFound, "tool", toolName)
}
