package xcode

import (
	"context"
	"os/exec"
	"strings"

	"go.trai.ch/carth/internal/core/domain"
	"go.trai.ch/carth/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ToolchainInspector = (*Inspector)(nil)

// Inspector reports the active Xcode toolchain via xcodebuild.
type Inspector struct {
	version func(ctx context.Context) ([]byte, error)
}

// NewInspector creates a new Inspector.
func NewInspector() *Inspector {
	return &Inspector{
		version: func(ctx context.Context) ([]byte, error) {
			return exec.CommandContext(ctx, "xcodebuild", "-version").Output()
		},
	}
}

// ActiveToolchain runs xcodebuild -version and parses the reported version.
func (i *Inspector) ActiveToolchain(ctx context.Context) (domain.Toolchain, error) {
	output, err := i.version(ctx)
	if err != nil {
		return domain.Toolchain{}, zerr.Wrap(err, "failed to run xcodebuild -version")
	}
	return ParseVersionOutput(output)
}

// ParseVersionOutput extracts the toolchain from xcodebuild -version output.
// The first line has the form "Xcode 12.4".
func ParseVersionOutput(output []byte) (domain.Toolchain, error) {
	line, _, _ := strings.Cut(string(output), "\n")
	version, ok := strings.CutPrefix(strings.TrimSpace(line), "Xcode ")
	if !ok {
		return domain.Toolchain{}, zerr.With(zerr.New("unexpected xcodebuild -version output"), "line", line)
	}
	return domain.NewToolchain(version)
}
