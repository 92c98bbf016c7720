package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/bindmapgo/internal/app"
	"github.com/vk/bindmapgo/internal/cli"
	"github.com/vk/bindmapgo/internal/config"
	"github.com/vk/bindmapgo/internal/hcl"
	"github.com/vk/bindmapgo/internal/toml"
)

// main is the entrypoint for the bindmapgo application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. Reports go to outW, logs and diagnostics to errW.
func run(outW, errW io.Writer, args []string) (err error) {
	appConfig, shouldExit, parseErr := cli.Parse(args, errW)
	if parseErr != nil {
		return parseErr
	}
	if shouldExit {
		return nil
	}

	// The app panics on critical config errors, so we recover here to
	// provide a clean exit message to the user.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("a critical startup error occurred: %v", r)
		}
	}()

	// Instantiate the concrete loaders to pass to the app. A mixed
	// directory may hold both formats; each loader claims its extension.
	loaders := []config.Loader{hcl.NewLoader(), toml.NewLoader()}
	bindmapApp := app.NewApp(outW, errW, appConfig, loaders...)

	return bindmapApp.Run(context.Background(), appConfig)
}
