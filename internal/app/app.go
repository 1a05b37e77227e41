// Package app implements the application layer for carth.
package app

import (
	"context"
	"time"

	"go.trai.ch/carth/internal/core/domain"
	"go.trai.ch/carth/internal/core/ports"
	"go.trai.ch/zerr"
)

// App orchestrates a single carthage action: manifest check, argument
// assembly, environment construction, and subprocess execution.
type App struct {
	configLoader ports.ConfigLoader
	locator      ports.ToolLocator
	inspector    ports.ToolchainInspector
	envFactory   ports.EnvironmentFactory
	executor     ports.Executor
	hasher       ports.Hasher
	store        ports.RunInfoStore
	telemetry    ports.Telemetry
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	locator ports.ToolLocator,
	inspector ports.ToolchainInspector,
	envFactory ports.EnvironmentFactory,
	executor ports.Executor,
	hasher ports.Hasher,
	store ports.RunInfoStore,
	telemetry ports.Telemetry,
	logger ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		locator:      locator,
		inspector:    inspector,
		envFactory:   envFactory,
		executor:     executor,
		hasher:       hasher,
		store:        store,
		telemetry:    telemetry,
		logger:       logger,
	}
}

// Run executes one carthage action for the project at dir.
//
// A missing Cartfile is a no-op, not an error. Failures from the locator,
// the environment factory, or the subprocess abort the action; there is no
// local recovery or retry.
func (a *App) Run(ctx context.Context, dir string, action domain.Action, extraArgs []string, force bool) error {
	settings, err := a.configLoader.Load(dir)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	layout := domain.NewLayout(dir, settings.DerivedDataRoot)
	if !layout.CartfileExists() {
		a.logger.Info("no Cartfile found, skipping carthage " + action.String())
		return nil
	}

	toolchain := a.resolveToolchain(ctx, settings)

	toolPath, err := a.locator.Locate()
	if err != nil {
		return err
	}

	inv := &domain.Invocation{
		Action:          action,
		ExtraArgs:       mergeArgs(settings.ExtraArgs[action], extraArgs),
		Platform:        settings.Platform,
		UseBuildCache:   settings.CacheBuilds,
		DerivedDataPath: layout.DerivedDataPath(),
	}
	argv := inv.Argv(toolPath)

	fingerprint := a.fingerprint(layout, argv)

	ctx, vertex := a.telemetry.Record(ctx, "carthage "+action.String())

	if action == domain.ActionBootstrap && !force && a.upToDate(layout, settings.Platform, action, fingerprint) {
		vertex.Cached()
		vertex.Complete(nil)
		a.logger.Info("carthage bootstrap is up to date, skipping")
		return nil
	}

	env, err := a.envFactory.BuildEnvironment(ctx, layout, toolchain, settings)
	if err != nil {
		vertex.Complete(err)
		return zerr.Wrap(err, "failed to build environment")
	}

	cmd := &domain.Command{
		Args: argv,
		Dir:  layout.RootDir,
		Env:  env,
	}

	runErr := a.executor.Execute(ctx, cmd, vertex.Stdout(), vertex.Stderr())
	vertex.Complete(runErr)
	if runErr != nil {
		return zerr.With(zerr.Wrap(runErr, "carthage execution failed"), "action", action.String())
	}

	a.recordRun(layout, action, fingerprint)
	return nil
}

// resolveToolchain determines the active toolchain. A configured override
// wins; otherwise the inspector is asked. Failure to determine the version
// is not fatal, it only disables the workaround config.
func (a *App) resolveToolchain(ctx context.Context, settings *domain.Settings) domain.Toolchain {
	if settings.ToolchainVersion != "" {
		toolchain, err := domain.NewToolchain(settings.ToolchainVersion)
		if err != nil {
			a.logger.Warn("invalid toolchainVersion in config: " + settings.ToolchainVersion)
			return domain.Toolchain{}
		}
		return toolchain
	}

	toolchain, err := a.inspector.ActiveToolchain(ctx)
	if err != nil {
		a.logger.Warn("could not determine active Xcode version: " + err.Error())
		return domain.Toolchain{}
	}
	return toolchain
}

func (a *App) fingerprint(layout domain.Layout, argv []string) string {
	fingerprint, err := a.hasher.Fingerprint(layout, argv)
	if err != nil {
		a.logger.Warn("could not fingerprint manifests: " + err.Error())
		return ""
	}
	return fingerprint
}

// upToDate reports whether a previous identical bootstrap already produced
// the build outputs.
func (a *App) upToDate(layout domain.Layout, platform domain.Platform, action domain.Action, fingerprint string) bool {
	if fingerprint == "" {
		return false
	}

	previous, err := a.store.Get(layout.StatePath(), action.String())
	if err != nil || previous == nil {
		return false
	}

	return previous.Fingerprint == fingerprint && layout.BuildDirExists(platform)
}

func (a *App) recordRun(layout domain.Layout, action domain.Action, fingerprint string) {
	if fingerprint == "" {
		return
	}

	info := domain.RunInfo{
		Action:      action.String(),
		Fingerprint: fingerprint,
		Timestamp:   time.Now().UTC(),
	}
	if err := a.store.Put(layout.StatePath(), info); err != nil {
		a.logger.Warn("could not persist run info: " + err.Error())
	}
}

func mergeArgs(configured, cli []string) []string {
	if len(configured) == 0 {
		return cli
	}
	merged := make([]string, 0, len(configured)+len(cli))
	merged = append(merged, configured...)
	merged = append(merged, cli...)
	return merged
}
