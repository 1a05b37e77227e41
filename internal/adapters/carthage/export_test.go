package carthage

import "io/fs"

// SetLookPath overrides search-path resolution for tests.
func (l *Locator) SetLookPath(fn func(file string) (string, error)) {
	l.lookPath = fn
}

// SetStat overrides the fallback existence check for tests.
func (l *Locator) SetStat(fn func(name string) (fs.FileInfo, error)) {
	l.stat = fn
}

// FallbackPath exposes the fixed fallback location for tests.
const FallbackPath = fallbackPath
