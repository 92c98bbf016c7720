package config

import "strings"

// Placeholder is the substitution marker every conversion template must
// contain exactly once.
const Placeholder = "{}"

// Template is a conversion expression with a single placeholder. The
// downstream generator splices an expression of its own into the
// placeholder during emission; no conversion is ever executed here.
type Template string

// PlaceholderCount returns the number of placeholders in the template.
// A well-formed template has exactly one.
func (t Template) PlaceholderCount() int {
	return strings.Count(string(t), Placeholder)
}

// Splice returns the template text with the placeholder replaced by expr.
func (t Template) Splice(expr string) string {
	return strings.Replace(string(t), Placeholder, expr, 1)
}
