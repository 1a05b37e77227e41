package ports

import (
	"context"

	"go.trai.ch/carth/internal/core/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=toolchain.go -destination=mocks/mock_toolchain.go -package=mocks

// ToolchainInspector reports the active native toolchain version.
type ToolchainInspector interface {
	// ActiveToolchain returns the currently selected toolchain.
	ActiveToolchain(ctx context.Context) (domain.Toolchain, error)
}

// ToolchainSelector resolves a required toolchain version to the environment
// variables that select it for child processes.
type ToolchainSelector interface {
	// SelectionEnv returns the selection variables for the given version,
	// or domain.ErrNoXcodeMatch when no installation matches.
	SelectionEnv(version string) (map[string]string, error)
}
