package hcl

import (
	"context"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/bindmapgo/internal/config"
	"github.com/vk/bindmapgo/internal/ctxlog"
	"github.com/vk/bindmapgo/internal/schema"
)

// bindingsBodySchema defines the body of a 'bindings' block, expecting
// only 'custom_type' blocks labelled with the abstract type name.
var bindingsBodySchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "custom_type", LabelNames: []string{"abstract_type"}},
	},
}

// customTypeBodySchema defines the attributes of a 'custom_type' block.
// Nothing is required at the decode level; required-field enforcement
// happens during registry validation where language/type context is known.
var customTypeBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "type_name"},
		{Name: "imports"},
		{Name: "into_custom"},
		{Name: "from_custom"},
	},
}

// translateFile converts a parsed HCL file into the format-agnostic model.
func (l *Loader) translateFile(ctx context.Context, hclFile *hcl.File, filename string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	root := &schema.BindingsFile{}
	if diags := gohcl.DecodeBody(hclFile.Body, nil, root); diags.HasErrors() {
		return nil, asError(filename, diags)
	}

	model := config.NewModel()
	for _, block := range root.Bindings {
		content, diags := block.Body.Content(bindingsBodySchema)
		if err := asError(filename, diags); err != nil {
			return nil, err
		}

		for _, typeBlock := range content.Blocks {
			desc, err := translateCustomType(filename, block.Language, typeBlock)
			if err != nil {
				return nil, err
			}
			if err := model.Add(block.Language, desc); err != nil {
				return nil, err
			}
		}
	}

	logger.Debug("Translated HCL bindings file", "file", filename, "languages", len(root.Bindings))
	return model, nil
}

// translateCustomType decodes a single 'custom_type' block into a binding
// descriptor. Absent attributes are left at their zero values (nil for
// imports) so registry validation can report them uniformly.
func translateCustomType(filename, language string, block *hcl.Block) (*config.BindingDescriptor, error) {
	content, diags := block.Body.Content(customTypeBodySchema)
	if err := asError(filename, diags); err != nil {
		return nil, err
	}

	desc := &config.BindingDescriptor{
		AbstractType: config.AbstractType(block.Labels[0]),
	}

	if attr, exists := content.Attributes["type_name"]; exists {
		if diags := gohcl.DecodeExpression(attr.Expr, nil, &desc.TypeName); diags.HasErrors() {
			return nil, asError(filename, diags)
		}
	}

	for name, target := range map[string]*config.Template{
		"into_custom": &desc.IntoCustom,
		"from_custom": &desc.FromCustom,
	} {
		if attr, exists := content.Attributes[name]; exists {
			var text string
			if diags := gohcl.DecodeExpression(attr.Expr, nil, &text); diags.HasErrors() {
				return nil, asError(filename, diags)
			}
			*target = config.Template(text)
		}
	}

	if attr, exists := content.Attributes["imports"]; exists {
		imports, err := decodeImports(language, desc.AbstractType, attr)
		if err != nil {
			return nil, err
		}
		desc.Imports = imports
	}

	return desc, nil
}

// decodeImports evaluates the imports attribute into an ordered string
// slice. The result is non-nil even for an empty list, which is how the
// model distinguishes "present but empty" from "missing".
func decodeImports(language string, abstractType config.AbstractType, attr *hcl.Attribute) ([]string, error) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}

	schemaErr := func(detail string) error {
		return &config.SchemaError{
			Language:     language,
			AbstractType: string(abstractType),
			Detail:       detail,
		}
	}

	if val.IsNull() || !val.CanIterateElements() {
		return nil, schemaErr("imports must be a list of strings")
	}

	imports := []string{}
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		if elem.IsNull() || elem.Type() != cty.String {
			return nil, schemaErr("imports elements must be strings")
		}
		imports = append(imports, elem.AsString())
	}
	return imports, nil
}
