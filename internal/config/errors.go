package config

import "fmt"

// SchemaError reports a malformed bindings configuration: a missing
// required field, an unknown abstract type, or a duplicate pair. It is
// fatal at load time.
type SchemaError struct {
	Language     string
	AbstractType string
	Detail       string
}

// Error implements the error interface for SchemaError.
func (e *SchemaError) Error() string {
	switch {
	case e.Language != "" && e.AbstractType != "":
		return fmt.Sprintf("bindings schema error for language %q, type %q: %s", e.Language, e.AbstractType, e.Detail)
	case e.Language != "":
		return fmt.Sprintf("bindings schema error for language %q: %s", e.Language, e.Detail)
	default:
		return fmt.Sprintf("bindings schema error: %s", e.Detail)
	}
}
