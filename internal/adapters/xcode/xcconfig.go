// Package xcode implements the Xcode-facing adapters: the toolchain workaround
// config writer, the environment factory, and toolchain version handling.
package xcode

import (
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/carth/internal/core/domain"
	"go.trai.ch/zerr"
)

const (
	// brokenMajorVersion is the Xcode major version whose simulator builds
	// pick up arm64 slices they cannot link.
	brokenMajorVersion = 12

	// WorkaroundEnvVar points the build system at the generated config file.
	WorkaroundEnvVar = "XCODE_XCCONFIG_FILE"

	excludedArchsKey   = "EXCLUDED_ARCHS"
	excludedArchsValue = "arm64 arm64e armv7 armv7s armv6 armv8"

	// excludedArchsTemplate dispatches on the effective platform at build time
	// through nested build-setting substitution.
	excludedArchsTemplate = "$(inherited) $(EXCLUDED_ARCHS__EFFECTIVE_PLATFORM_SUFFIX_$(PLATFORM_NAME)__NATIVE_ARCH_64_BIT_$(NATIVE_ARCH_64_BIT)__XCODE_$(XCODE_VERSION_MAJOR))"

	serializeDebugKey   = "SWIFT_SERIALIZE_DEBUGGING_OPTIONS"
	serializeDebugValue = "NO"

	otherSwiftFlagsKey   = "OTHER_SWIFT_FLAGS"
	otherSwiftFlagsValue = "$(inherited) -Xfrontend -no-serialize-debugging-options"

	dirPerm  = 0o750
	filePerm = 0o644
)

var simulatorPlatforms = []string{"iphonesimulator", "appletvsimulator"}

// WorkaroundConfig returns the xcconfig fragment working around the Xcode 12
// simulator architecture defect, or nil when the toolchain is not affected.
// The decision is pure; writing the file is a separate step.
func WorkaroundConfig(layout domain.Layout, toolchainMajor int, swiftDebugWorkaround bool) *domain.XCConfig {
	if toolchainMajor != brokenMajorVersion {
		return nil
	}

	cfg := domain.NewXCConfig(layout.WorkaroundConfigPath())
	for _, sim := range simulatorPlatforms {
		key := fmt.Sprintf(
			"EXCLUDED_ARCHS__EFFECTIVE_PLATFORM_SUFFIX_%s__NATIVE_ARCH_64_BIT_x86_64__XCODE_1200",
			sim,
		)
		cfg.Set(key, excludedArchsValue)
	}
	cfg.Set(excludedArchsKey, excludedArchsTemplate)

	if swiftDebugWorkaround {
		cfg.Set(serializeDebugKey, serializeDebugValue)
		cfg.Set(otherSwiftFlagsKey, otherSwiftFlagsValue)
	}

	return cfg
}

// WriteConfig serializes the config to its target path, creating parent
// directories as needed. Overwrites are unconditional; identical inputs
// produce an identical file.
func WriteConfig(cfg *domain.XCConfig) error {
	dir := filepath.Dir(cfg.Path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create config directory"), "path", dir)
	}

	if err := os.WriteFile(cfg.Path, cfg.Render(), filePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write workaround config"), "path", cfg.Path)
	}

	return nil
}
