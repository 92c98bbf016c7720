package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/bindmapgo/internal/config"
	"github.com/vk/bindmapgo/internal/ctxlog"
	"github.com/vk/bindmapgo/internal/defaults"
	"github.com/vk/bindmapgo/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle. Reports go to outW; log records go to logW.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	model    *config.Model
}

// NewApp is the constructor for the main application. It loads the bindings
// configuration through the given loaders (or the embedded default when no
// path is configured), populates the registry, and validates it. A failure
// at any of these stages is a fatal startup error and panics; the
// entrypoint recovers and reports it.
func NewApp(outW, logW io.Writer, appConfig *Config, loaders ...config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	model, err := loadModel(ctx, appConfig, loaders)
	if err != nil {
		panic(fmt.Errorf("failed to load bindings configuration: %w", err))
	}
	logger.Debug("Bindings loaded and translated into unified model.", "descriptors", model.DescriptorCount())

	reg := registry.New()
	if err := reg.PopulateFromModel(model); err != nil {
		panic(err)
	}
	if err := reg.Validate(ctx); err != nil {
		panic(err)
	}
	logger.Debug("Registry validation passed.")

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		model:    model,
	}
}

// loadModel merges the models produced by every loader for the configured
// path. Loaders whose extension matches nothing contribute an empty model,
// so a directory may mix formats freely.
func loadModel(ctx context.Context, appConfig *Config, loaders []config.Loader) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	if appConfig.ConfigPath == "" {
		logger.Info("No bindings path configured, using embedded defaults.")
		return defaults.Model(ctx)
	}

	model := config.NewModel()
	for _, loader := range loaders {
		loaded, err := loader.Load(ctx, appConfig.ConfigPath)
		if err != nil {
			return nil, err
		}
		if err := model.Merge(loaded); err != nil {
			return nil, err
		}
	}

	if model.DescriptorCount() == 0 {
		logger.Warn("No binding descriptors found in path.", "path", appConfig.ConfigPath)
	}
	return model, nil
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
