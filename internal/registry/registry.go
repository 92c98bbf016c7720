package registry

import (
	"github.com/vk/bindmapgo/internal/config"
)

// bindingKey identifies one descriptor by its two lookup dimensions.
type bindingKey struct {
	language     string
	abstractType config.AbstractType
}

// Registry holds every configured binding descriptor for a single
// application instance, keyed by (language, abstract type).
type Registry struct {
	descriptors map[bindingKey]*config.BindingDescriptor
}

// New creates and initializes a new, empty Registry instance.
func New() *Registry {
	return &Registry{
		descriptors: make(map[bindingKey]*config.BindingDescriptor),
	}
}

// PopulateFromModel copies every descriptor from the loaded config model
// into the registry. Populating the same (language, abstract type) pair
// twice is a schema error.
func (r *Registry) PopulateFromModel(model *config.Model) error {
	for language, lang := range model.Languages {
		for _, desc := range lang.CustomTypes {
			key := bindingKey{language: language, abstractType: desc.AbstractType}
			if _, exists := r.descriptors[key]; exists {
				return &config.SchemaError{
					Language:     language,
					AbstractType: string(desc.AbstractType),
					Detail:       "duplicate binding for this language/type pair",
				}
			}
			r.descriptors[key] = desc
		}
	}
	return nil
}

// Len returns the number of descriptors held by the registry.
func (r *Registry) Len() int {
	return len(r.descriptors)
}
