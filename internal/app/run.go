package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/bindmapgo/internal/config"
	"github.com/vk/bindmapgo/internal/ctxlog"
	"github.com/vk/bindmapgo/internal/render"
)

// Run executes the requested action: either a single descriptor lookup or
// the full bindings report, rendered in the configured format.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	format, err := render.ParseFormat(appConfig.Format)
	if err != nil {
		return err
	}

	var report *render.Report
	if appConfig.Lookup != "" {
		language, abstractType, err := splitLookup(appConfig.Lookup)
		if err != nil {
			return err
		}
		desc, err := a.registry.Lookup(language, abstractType)
		if err != nil {
			return err
		}
		a.logger.Debug("Lookup resolved.", "language", language, "abstract_type", abstractType)
		report = render.Single(language, desc)
	} else {
		report = render.Build(a.registry)
		a.logger.Info("Bindings report built.",
			"languages", len(a.registry.Languages()),
			"descriptors", a.registry.Len())
	}

	if err := report.Render(a.outW, format); err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// splitLookup parses the "<language>:<AbstractType>" lookup argument.
func splitLookup(arg string) (string, config.AbstractType, error) {
	language, typeName, ok := strings.Cut(arg, ":")
	if !ok || language == "" || typeName == "" {
		return "", "", fmt.Errorf("invalid lookup %q: expected '<language>:<AbstractType>', e.g. 'python:Uuid'", arg)
	}
	return language, config.AbstractType(typeName), nil
}
