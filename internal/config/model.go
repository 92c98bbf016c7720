package config

// Model is the unified, format-agnostic representation of a complete
// bindings configuration, keyed by target language.
type Model struct {
	Languages map[string]*LanguageBindings
}

// LanguageBindings holds every binding descriptor configured for a single
// target language.
type LanguageBindings struct {
	Language    string
	CustomTypes map[AbstractType]*BindingDescriptor
}

// BindingDescriptor is the rendering rule for one (language, abstract type)
// pair: the native type to name, the imports the call site needs, and the
// two expressions that move a value across the wire-format boundary.
type BindingDescriptor struct {
	AbstractType AbstractType

	// TypeName is the native type to annotate with. Empty when the target
	// language is dynamically typed and needs no annotation.
	TypeName string

	// Imports lists the modules or classes required at the call site.
	// Insertion order is preserved for deterministic output. A nil slice
	// means the key was absent from the source, which fails validation;
	// an empty slice is a legal "no imports needed".
	Imports []string

	// IntoCustom converts a wire-format string into the native
	// representation. FromCustom converts it back.
	IntoCustom Template
	FromCustom Template
}

// NewModel creates an empty bindings model.
func NewModel() *Model {
	return &Model{Languages: make(map[string]*LanguageBindings)}
}

// Add registers a descriptor under the given language. A second descriptor
// for the same (language, abstract type) pair is a schema error.
func (m *Model) Add(language string, desc *BindingDescriptor) error {
	lang, ok := m.Languages[language]
	if !ok {
		lang = &LanguageBindings{
			Language:    language,
			CustomTypes: make(map[AbstractType]*BindingDescriptor),
		}
		m.Languages[language] = lang
	}

	if _, exists := lang.CustomTypes[desc.AbstractType]; exists {
		return &SchemaError{
			Language:     language,
			AbstractType: string(desc.AbstractType),
			Detail:       "duplicate binding for this language/type pair",
		}
	}

	lang.CustomTypes[desc.AbstractType] = desc
	return nil
}

// Merge folds every descriptor from other into m. Descriptors that collide
// with existing (language, abstract type) pairs surface as schema errors,
// so configuration split across files or formats cannot silently shadow
// itself.
func (m *Model) Merge(other *Model) error {
	if other == nil {
		return nil
	}
	for language, lang := range other.Languages {
		for _, desc := range lang.CustomTypes {
			if err := m.Add(language, desc); err != nil {
				return err
			}
		}
	}
	return nil
}

// DescriptorCount returns the total number of descriptors across all
// languages.
func (m *Model) DescriptorCount() int {
	var n int
	for _, lang := range m.Languages {
		n += len(lang.CustomTypes)
	}
	return n
}
