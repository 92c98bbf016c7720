// Package render turns registry contents into the report shapes the CLI
// prints: plain text for humans, JSON or YAML for tooling. Ordering is
// deterministic: languages sorted, abstract types in canonical order.
package render

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/vk/bindmapgo/internal/config"
	"github.com/vk/bindmapgo/internal/registry"
)

// Format selects the output encoding for a report.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format name from user input.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatText, FormatJSON, FormatYAML:
		return Format(name), nil
	default:
		return "", fmt.Errorf("invalid format %q: must be 'text', 'json', or 'yaml'", name)
	}
}

// Report is the renderable view of a set of binding descriptors.
type Report struct {
	Languages []LanguageReport `json:"languages" yaml:"languages"`
}

// LanguageReport groups the descriptors of one target language.
type LanguageReport struct {
	Language string       `json:"language" yaml:"language"`
	Types    []TypeReport `json:"custom_types" yaml:"custom_types"`
}

// TypeReport is the flat, serializable form of one binding descriptor.
type TypeReport struct {
	AbstractType string   `json:"abstract_type" yaml:"abstract_type"`
	TypeName     string   `json:"type_name,omitempty" yaml:"type_name,omitempty"`
	Imports      []string `json:"imports" yaml:"imports"`
	IntoCustom   string   `json:"into_custom" yaml:"into_custom"`
	FromCustom   string   `json:"from_custom" yaml:"from_custom"`
}

// Build assembles a full report covering every language in the registry.
func Build(reg *registry.Registry) *Report {
	report := &Report{}
	for _, language := range reg.Languages() {
		lang := LanguageReport{Language: language}
		for _, desc := range reg.DescriptorsFor(language) {
			lang.Types = append(lang.Types, typeReport(desc))
		}
		report.Languages = append(report.Languages, lang)
	}
	return report
}

// Single assembles a report holding one descriptor, used for lookups.
func Single(language string, desc *config.BindingDescriptor) *Report {
	return &Report{
		Languages: []LanguageReport{{
			Language: language,
			Types:    []TypeReport{typeReport(desc)},
		}},
	}
}

func typeReport(desc *config.BindingDescriptor) TypeReport {
	return TypeReport{
		AbstractType: string(desc.AbstractType),
		TypeName:     desc.TypeName,
		Imports:      desc.Imports,
		IntoCustom:   string(desc.IntoCustom),
		FromCustom:   string(desc.FromCustom),
	}
}

// Render writes the report to w in the requested format.
func (r *Report) Render(w io.Writer, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(r)
	default:
		return r.renderText(w)
	}
}

// renderText writes the human-readable form.
func (r *Report) renderText(w io.Writer) error {
	for i, lang := range r.Languages {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "language: %s\n", lang.Language); err != nil {
			return err
		}
		for _, tr := range lang.Types {
			if _, err := fmt.Fprintf(w, "  %s:\n", tr.AbstractType); err != nil {
				return err
			}
			if tr.TypeName != "" {
				if _, err := fmt.Fprintf(w, "    type_name:   %s\n", tr.TypeName); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "    imports:     %s\n", importsText(tr.Imports)); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "    into_custom: %s\n", tr.IntoCustom); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "    from_custom: %s\n", tr.FromCustom); err != nil {
				return err
			}
		}
	}
	return nil
}

func importsText(imports []string) string {
	if len(imports) == 0 {
		return "(none)"
	}
	out := imports[0]
	for _, imp := range imports[1:] {
		out += ", " + imp
	}
	return out
}
