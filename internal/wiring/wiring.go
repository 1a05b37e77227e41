// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/carth/internal/adapters/carthage"
	_ "go.trai.ch/carth/internal/adapters/config"
	_ "go.trai.ch/carth/internal/adapters/fs"
	_ "go.trai.ch/carth/internal/adapters/logger"
	_ "go.trai.ch/carth/internal/adapters/shell"
	_ "go.trai.ch/carth/internal/adapters/state"
	_ "go.trai.ch/carth/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/carth/internal/adapters/xcode"
	// Register app nodes.
	_ "go.trai.ch/carth/internal/app"
)
