package config

// Carthfile represents the structure of the carth.yaml configuration file.
type Carthfile struct {
	Version              string              `yaml:"version"`
	Platform             string              `yaml:"platform"`
	CacheBuilds          bool                `yaml:"cacheBuilds"`
	XcodeVersion         string              `yaml:"xcodeVersion"`
	ToolchainVersion     string              `yaml:"toolchainVersion"`
	SwiftDebugWorkaround bool                `yaml:"swiftDebugWorkaround"`
	DerivedDataRoot      string              `yaml:"derivedDataRoot"`
	ExtraArgs            map[string][]string `yaml:"extraArgs"`
}
