package schema

import "github.com/hashicorp/hcl/v2"

// BindingsFile represents the top-level structure of a bindings HCL file,
// containing one or more `bindings` blocks.
type BindingsFile struct {
	Bindings []*BindingsBlock `hcl:"bindings,block"`
	Body     hcl.Body         `hcl:",remain"`
}

// BindingsBlock represents a single `bindings "<language>"` block. Its
// body holds `custom_type` blocks and is decoded in a second pass against
// an explicit body schema, so malformed content is reported per block.
type BindingsBlock struct {
	Language string   `hcl:"language,label"`
	Body     hcl.Body `hcl:",remain"`
}
