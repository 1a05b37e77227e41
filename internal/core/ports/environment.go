package ports

import (
	"context"

	"go.trai.ch/carth/internal/core/domain"
)

// EnvironmentFactory computes the process-environment overrides for a run.
//
// Implementations are responsible for:
//   - generating the toolchain workaround config file when the toolchain needs it
//   - pointing XCODE_XCCONFIG_FILE at the generated file
//   - merging in toolchain-selection variables when a version is required
//
//go:generate go run go.uber.org/mock/mockgen -source=environment.go -destination=mocks/mock_environment.go -package=mocks
type EnvironmentFactory interface {
	// BuildEnvironment returns environment overrides for the given toolchain
	// and settings. May write the workaround config file as a side effect.
	// Entries are never removed; on key conflict the selection variables win.
	BuildEnvironment(ctx context.Context, layout domain.Layout, toolchain domain.Toolchain, settings *domain.Settings) (map[string]string, error)
}
