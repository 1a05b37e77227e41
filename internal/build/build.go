// Package build carries version information stamped at link time.
package build

// Version identifies the carth release.
// Overridden via -ldflags at release time; "dev" otherwise.
var Version = "dev"
