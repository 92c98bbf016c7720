package registry

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vk/bindmapgo/internal/config"
	"github.com/vk/bindmapgo/internal/ctxlog"
)

// Validate performs the load-time schema checks on every descriptor in the
// registry: the abstract type must be known, the imports list must be
// present with non-empty elements, and each conversion template must
// contain exactly one placeholder. All violations are collected and
// reported together, each naming the offending language/type pair.
func (r *Registry) Validate(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	var errs []error
	for _, language := range r.Languages() {
		for _, desc := range r.allFor(language) {
			for _, detail := range validateDescriptor(desc) {
				errs = append(errs, &config.SchemaError{
					Language:     language,
					AbstractType: string(desc.AbstractType),
					Detail:       detail,
				})
			}
		}
	}

	if len(errs) > 0 {
		logger.Error("Bindings validation failed.", "violations", len(errs))
		return errors.Join(errs...)
	}

	logger.Debug("Bindings validation passed.", "descriptors", r.Len())
	return nil
}

// allFor is like DescriptorsFor but includes descriptors whose abstract
// type is outside the known set, so validation can reject them.
func (r *Registry) allFor(language string) []*config.BindingDescriptor {
	descs := r.DescriptorsFor(language)
	for key, desc := range r.descriptors {
		if key.language == language && !key.abstractType.Known() {
			descs = append(descs, desc)
		}
	}
	return descs
}

// validateDescriptor returns every schema violation found in a single
// descriptor.
func validateDescriptor(desc *config.BindingDescriptor) []string {
	var details []string

	if !desc.AbstractType.Known() {
		details = append(details, fmt.Sprintf("unknown abstract type, expected one of %v", config.AbstractTypes))
	}

	if desc.Imports == nil {
		details = append(details, "missing required imports list")
	}
	for i, imp := range desc.Imports {
		if strings.TrimSpace(imp) == "" {
			details = append(details, fmt.Sprintf("imports element %d is empty", i))
		}
	}

	details = append(details, validateTemplate("into_custom", desc.IntoCustom)...)
	details = append(details, validateTemplate("from_custom", desc.FromCustom)...)
	return details
}

// validateTemplate checks one conversion template for the single
// placeholder invariant.
func validateTemplate(name string, tmpl config.Template) []string {
	if tmpl == "" {
		return []string{fmt.Sprintf("missing required %s template", name)}
	}
	if n := tmpl.PlaceholderCount(); n != 1 {
		return []string{fmt.Sprintf("%s template must contain exactly one %q placeholder, found %d", name, config.Placeholder, n)}
	}
	return nil
}
