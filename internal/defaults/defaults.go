// Package defaults embeds the default bindings configuration used when no
// configuration path is supplied. It covers the three supported target
// languages for every known abstract type.
package defaults

import (
	"context"
	_ "embed"

	"github.com/vk/bindmapgo/internal/config"
	"github.com/vk/bindmapgo/internal/toml"
)

//go:embed bindings.toml
var bindingsTOML []byte

// Model parses the embedded default bindings into a config model.
func Model(ctx context.Context) (*config.Model, error) {
	return toml.NewLoader().Parse(ctx, "embedded:bindings.toml", bindingsTOML)
}
