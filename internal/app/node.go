package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/carth/internal/adapters/carthage" //nolint:depguard // Wired in app layer
	"go.trai.ch/carth/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/carth/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"go.trai.ch/carth/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/carth/internal/adapters/shell"    //nolint:depguard // Wired in app layer
	"go.trai.ch/carth/internal/adapters/state"    //nolint:depguard // Wired in app layer
	progrocktel "go.trai.ch/carth/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/carth/internal/adapters/xcode"    //nolint:depguard // Wired in app layer
	"go.trai.ch/carth/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized application components needed by the CLI layer.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			carthage.NodeID,
			xcode.InspectorNodeID,
			xcode.NodeID,
			shell.NodeID,
			fs.NodeID,
			state.NodeID,
			progrocktel.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrocktel.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:       application,
				Logger:    log,
				Telemetry: telemetry,
			}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	locator, err := graft.Dep[ports.ToolLocator](ctx)
	if err != nil {
		return nil, err
	}

	inspector, err := graft.Dep[ports.ToolchainInspector](ctx)
	if err != nil {
		return nil, err
	}

	envFactory, err := graft.Dep[ports.EnvironmentFactory](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.RunInfoStore](ctx)
	if err != nil {
		return nil, err
	}

	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, locator, inspector, envFactory, executor, hasher, store, telemetry, log), nil
}
