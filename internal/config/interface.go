package config

import "context"

// Loader is the interface for a format-specific bindings loader.
type Loader interface {
	// Extension returns the file extension this loader claims, including
	// the leading dot (e.g. ".hcl").
	Extension() string

	// Load reads bindings configuration from the given paths (files or
	// directories, walked recursively) and translates it into the
	// format-agnostic model. Paths holding no files of the loader's
	// extension yield an empty model, not an error.
	Load(ctx context.Context, paths ...string) (*Model, error)
}
