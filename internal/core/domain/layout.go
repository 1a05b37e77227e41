package domain

import (
	"os"
	"path/filepath"
)

const (
	cartfileName         = "Cartfile"
	resolvedCartfileName = "Cartfile.resolved"
	carthageDirName      = "Carthage"
	workaroundConfigName = "gradle-xc12-carthage.xcconfig"
	stateFileName        = "carth_state.json"

	// DefaultDerivedDataRoot is the scratch directory relative to the project root.
	DefaultDerivedDataRoot = "build/DerivedData"
)

// Layout captures the directory conventions of a host project.
// All paths are derived from the root; nothing here touches the manifest content.
type Layout struct {
	RootDir         string
	DerivedDataRoot string
}

// NewLayout returns the layout for a project root. derivedDataRoot is taken
// relative to the root unless absolute; empty selects the default.
func NewLayout(root, derivedDataRoot string) Layout {
	if derivedDataRoot == "" {
		derivedDataRoot = DefaultDerivedDataRoot
	}
	if !filepath.IsAbs(derivedDataRoot) {
		derivedDataRoot = filepath.Join(root, derivedDataRoot)
	}
	return Layout{
		RootDir:         root,
		DerivedDataRoot: derivedDataRoot,
	}
}

// CartfilePath is the dependency manifest location.
func (l Layout) CartfilePath() string {
	return filepath.Join(l.RootDir, cartfileName)
}

// ResolvedCartfilePath is the pinned-versions manifest location.
func (l Layout) ResolvedCartfilePath() string {
	return filepath.Join(l.RootDir, resolvedCartfileName)
}

// CartfileExists reports whether the manifest is present.
func (l Layout) CartfileExists() bool {
	return fileExists(l.CartfilePath())
}

// ResolvedCartfileExists reports whether the resolved manifest is present.
func (l Layout) ResolvedCartfileExists() bool {
	return fileExists(l.ResolvedCartfilePath())
}

// CarthageDir is where carthage keeps checkouts and build products.
func (l Layout) CarthageDir() string {
	return filepath.Join(l.RootDir, carthageDirName)
}

// WorkaroundConfigPath is the target of the generated xcconfig fragment.
func (l Layout) WorkaroundConfigPath() string {
	return filepath.Join(l.CarthageDir(), workaroundConfigName)
}

// BuildDir is the declared build-output location for a platform. Carthage
// keeps one subdirectory per platform; building all platforms fills the
// parent directory itself.
func (l Layout) BuildDir(p Platform) string {
	if p == PlatformAll {
		return filepath.Join(l.CarthageDir(), "Build")
	}
	return filepath.Join(l.CarthageDir(), "Build", p.Name())
}

// BuildDirExists reports whether the build-output directory for a platform
// is present.
func (l Layout) BuildDirExists(p Platform) bool {
	info, err := os.Stat(l.BuildDir(p))
	return err == nil && info.IsDir()
}

// DerivedDataPath is the intermediate-artifact directory passed to carthage.
func (l Layout) DerivedDataPath() string {
	return filepath.Join(l.DerivedDataRoot, "carthage")
}

// StatePath is the run-info store location.
func (l Layout) StatePath() string {
	return filepath.Join(l.CarthageDir(), stateFileName)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
