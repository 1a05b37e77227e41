package domain

// Settings holds the loaded project configuration for carth.
type Settings struct {
	// Platform passed to carthage via --platform.
	Platform Platform
	// CacheBuilds appends --cache-builds when true.
	CacheBuilds bool
	// XcodeVersion, when set, selects a specific Xcode installation for the run.
	XcodeVersion string
	// ToolchainVersion overrides active-toolchain detection when set.
	ToolchainVersion string
	// SwiftDebugWorkaround additionally disables Swift debug-option serialization
	// in the generated workaround config.
	SwiftDebugWorkaround bool
	// DerivedDataRoot overrides the default derived-data location.
	DerivedDataRoot string
	// ExtraArgs are per-action flags appended verbatim before the CLI ones.
	ExtraArgs map[Action][]string
}

// DefaultSettings returns the settings used when no config file is present.
func DefaultSettings() *Settings {
	return &Settings{
		Platform:  PlatformAll,
		ExtraArgs: make(map[Action][]string),
	}
}
