// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/carth/internal/core/domain"
)

// Executor runs external commands.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the command, blocking until it exits. Output is streamed
	// line by line to the logger and mirrored to the given writers.
	//
	// A nonzero exit is returned as an error carrying exit_code metadata;
	// no interpretation of the exit code is attempted.
	Execute(ctx context.Context, cmd *domain.Command, stdout, stderr io.Writer) error
}
