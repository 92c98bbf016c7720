// Package toml provides the concrete TOML implementation of the bindings
// Loader interface defined in the `config` package. The accepted document
// shape follows the UniFFI custom-type convention:
//
//	[bindings.python.custom_types.Uuid]
//	imports     = ["uuid"]
//	into_custom = "uuid.UUID({})"
//	from_custom = "str({})"
//
// which keeps existing generator configuration files loadable as-is.
package toml
