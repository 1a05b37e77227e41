package domain

import "go.trai.ch/zerr"

var (
	// ErrToolNotFound is returned when the carthage executable cannot be located,
	// neither on the search path nor at the fixed fallback location.
	ErrToolNotFound = zerr.New("carthage executable not found, make sure carthage is installed")

	// ErrUnknownAction is returned for a verb outside bootstrap/update/build.
	ErrUnknownAction = zerr.New("unknown action")

	// ErrNoXcodeMatch is returned when a required Xcode version is configured
	// but no matching installation exists.
	ErrNoXcodeMatch = zerr.New("no matching Xcode installation found")
)
