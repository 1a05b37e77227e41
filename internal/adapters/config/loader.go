// Package config provides the configuration loader for carth.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/carth/internal/core/domain"
	"go.trai.ch/carth/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the configuration file looked up at the project root.
const DefaultFilename = "carth.yaml"

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string

	logger ports.Logger
}

// NewLoader creates a loader for the default filename.
func NewLoader(logger ports.Logger) *FileConfigLoader {
	return &FileConfigLoader{
		Filename: DefaultFilename,
		logger:   logger,
	}
}

// Load reads the configuration from the given working directory.
// A missing file yields the default settings.
func (l *FileConfigLoader) Load(cwd string) (*domain.Settings, error) {
	path := filepath.Join(cwd, l.Filename)

	data, err := os.ReadFile(path) //nolint:gosec // path is the project config file
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.DefaultSettings(), nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var carthfile Carthfile
	if err := yaml.Unmarshal(data, &carthfile); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse config file"), "path", path)
	}

	return l.toSettings(&carthfile)
}

func (l *FileConfigLoader) toSettings(file *Carthfile) (*domain.Settings, error) {
	settings := domain.DefaultSettings()

	if file.Platform != "" {
		settings.Platform = domain.ParsePlatform(file.Platform)
		if settings.Platform == domain.PlatformAll && file.Platform != "all" {
			l.logger.Warn("unrecognized platform " + file.Platform + ", building all platforms")
		}
	}

	settings.CacheBuilds = file.CacheBuilds
	settings.XcodeVersion = file.XcodeVersion
	settings.ToolchainVersion = file.ToolchainVersion
	settings.SwiftDebugWorkaround = file.SwiftDebugWorkaround
	settings.DerivedDataRoot = file.DerivedDataRoot

	for name, args := range file.ExtraArgs {
		action, err := domain.ParseAction(name)
		if err != nil {
			return nil, zerr.Wrap(err, "invalid extraArgs key")
		}
		settings.ExtraArgs[action] = args
	}

	return settings, nil
}
