package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/vk/bindmapgo/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments into an AppConfig. Environment
// variables (BINDMAP_*) provide defaults, flags override them. It returns
// the populated config, a boolean indicating if the program should exit
// cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	// Environment variables seed the flag defaults.
	envCfg := app.Config{}
	if err := env.Parse(&envCfg); err != nil {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid environment configuration: %v", err)}
	}
	defaults, err := app.NewConfig(envCfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	flagSet := flag.NewFlagSet("bindmapgo", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
bindmapgo - Custom type bindings registry for cross-language binding generation.

Usage:
  bindmapgo [options] [CONFIG_PATH]

Arguments:
  CONFIG_PATH
    Path to a bindings file (.hcl or .toml) or a directory containing
    bindings files. When omitted, the embedded default bindings are used.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to the bindings file or directory.")
	cFlag := flagSet.String("c", "", "Path to the bindings file or directory (shorthand).")
	lookupFlag := flagSet.String("lookup", "", "Resolve a single binding as '<language>:<AbstractType>', e.g. 'python:Uuid'.")
	formatFlag := flagSet.String("format", defaults.Format, "Report output format. Options: 'text', 'json', or 'yaml'.")
	logFormatFlag := flagSet.String("log-format", defaults.LogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", defaults.LogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := defaults.ConfigPath
	if *configFlag != "" {
		path = *configFlag
	} else if *cFlag != "" {
		path = *cFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Bindings path determined.", "path", path)

	format := strings.ToLower(*formatFlag)
	if format != "text" && format != "json" && format != "yaml" {
		return nil, false, &ExitError{Code: 2, Message: "invalid format: must be 'text', 'json', or 'yaml'"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if *lookupFlag != "" {
		if language, typeName, ok := strings.Cut(*lookupFlag, ":"); !ok || language == "" || typeName == "" {
			return nil, false, &ExitError{Code: 2, Message: "invalid lookup: expected '<language>:<AbstractType>', e.g. 'python:Uuid'"}
		}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ConfigPath: path,
		Lookup:     *lookupFlag,
		Format:     format,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
