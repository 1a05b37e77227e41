package xcode

import (
	"context"
	"maps"
	"path/filepath"

	"go.trai.ch/carth/internal/core/domain"
	"go.trai.ch/carth/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.EnvironmentFactory = (*EnvFactory)(nil)

// EnvFactory implements ports.EnvironmentFactory.
type EnvFactory struct {
	selector ports.ToolchainSelector
}

// NewEnvFactory creates a new EnvironmentFactory.
func NewEnvFactory(selector ports.ToolchainSelector) *EnvFactory {
	return &EnvFactory{selector: selector}
}

// BuildEnvironment computes the environment overrides for one carthage run.
// When the active toolchain is affected, the workaround config is written to
// disk and XCODE_XCCONFIG_FILE points at it. When a required Xcode version is
// configured, the selection variables are merged in last (last write wins).
func (f *EnvFactory) BuildEnvironment(
	ctx context.Context,
	layout domain.Layout,
	toolchain domain.Toolchain,
	settings *domain.Settings,
) (map[string]string, error) {
	env := make(map[string]string)

	if cfg := WorkaroundConfig(layout, toolchain.Major, settings.SwiftDebugWorkaround); cfg != nil {
		if err := WriteConfig(cfg); err != nil {
			return nil, err
		}

		abs, err := filepath.Abs(cfg.Path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to resolve config path"), "path", cfg.Path)
		}
		env[WorkaroundEnvVar] = abs
	}

	if settings.XcodeVersion != "" {
		selection, err := f.selector.SelectionEnv(settings.XcodeVersion)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to select required Xcode version")
		}
		maps.Copy(env, selection)
	}

	return env, nil
}
