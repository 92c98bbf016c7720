package registry

import (
	"sort"

	"github.com/vk/bindmapgo/internal/config"
)

// Lookup returns the binding descriptor for the given language and
// abstract type. It is a pure function of its two keys; misses return a
// *NotFoundError.
func (r *Registry) Lookup(language string, abstractType config.AbstractType) (*config.BindingDescriptor, error) {
	desc, ok := r.descriptors[bindingKey{language: language, abstractType: abstractType}]
	if !ok {
		return nil, &NotFoundError{Language: language, AbstractType: abstractType}
	}
	return desc, nil
}

// Languages returns every configured target language in sorted order.
func (r *Registry) Languages() []string {
	seen := make(map[string]struct{})
	for key := range r.descriptors {
		seen[key.language] = struct{}{}
	}

	languages := make([]string, 0, len(seen))
	for language := range seen {
		languages = append(languages, language)
	}
	sort.Strings(languages)
	return languages
}

// DescriptorsFor returns the descriptors configured for one language, in
// the canonical abstract type order. Unconfigured types are skipped.
func (r *Registry) DescriptorsFor(language string) []*config.BindingDescriptor {
	var descs []*config.BindingDescriptor
	for _, abstractType := range config.AbstractTypes {
		if desc, ok := r.descriptors[bindingKey{language: language, abstractType: abstractType}]; ok {
			descs = append(descs, desc)
		}
	}
	return descs
}
