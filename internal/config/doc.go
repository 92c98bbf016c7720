// Package config defines the format-agnostic model for custom type
// bindings, along with the Loader interface for reading bindings
// configuration from various on-disk formats.
//
// The `config.Model` is the single source of truth for the `registry`
// package. Concrete Loader implementations, such as for HCL and TOML, are
// provided in separate packages.
package config
