package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// Toolchain describes the active Xcode toolchain.
// A zero Toolchain means the version could not be determined.
type Toolchain struct {
	// Version is the full version string, e.g. "12.4".
	Version string
	// Major is the integer major version, e.g. 12.
	Major int
}

// NewToolchain parses a dotted version string into a Toolchain.
func NewToolchain(version string) (Toolchain, error) {
	version = strings.TrimSpace(version)
	head, _, _ := strings.Cut(version, ".")
	major, err := strconv.Atoi(head)
	if err != nil {
		return Toolchain{}, zerr.With(zerr.Wrap(err, "invalid toolchain version"), "version", version)
	}
	return Toolchain{Version: version, Major: major}, nil
}
