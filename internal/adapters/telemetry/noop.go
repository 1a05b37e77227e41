// Package telemetry provides telemetry implementations outside of progrock.
package telemetry

import (
	"context"
	"io"

	"go.trai.ch/carth/internal/core/ports"
)

// NoOp is a no-op implementation of ports.Telemetry.
type NoOp struct{}

// NewNoOp creates a new NoOp telemetry.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns a no-op vertex.
func (t *NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, &NoOpVertex{}
}

// Close does nothing.
func (t *NoOp) Close() error {
	return nil
}

// NoOpVertex is a no-op implementation of ports.Vertex.
type NoOpVertex struct{}

// Stdout discards all output.
func (v *NoOpVertex) Stdout() io.Writer {
	return io.Discard
}

// Stderr discards all output.
func (v *NoOpVertex) Stderr() io.Writer {
	return io.Discard
}

// Complete does nothing.
func (v *NoOpVertex) Complete(_ error) {}

// Cached does nothing.
func (v *NoOpVertex) Cached() {}
