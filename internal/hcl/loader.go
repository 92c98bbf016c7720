package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/bindmapgo/internal/config"
	"github.com/vk/bindmapgo/internal/ctxlog"
	"github.com/vk/bindmapgo/internal/fsutil"
)

// Loader reads bindings configuration written in HCL.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a new HCL bindings loader.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// Extension implements config.Loader.
func (l *Loader) Extension() string {
	return ".hcl"
}

// Load implements config.Loader. It walks the given paths for .hcl files,
// parses each one, and merges the results into a single model.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	model := config.NewModel()

	for _, path := range paths {
		filePaths, err := fsutil.FindFilesByExtension(path, l.Extension())
		if err != nil {
			logger.Error("Failed to walk bindings path", "path", path, "error", err)
			return nil, err
		}

		for _, filePath := range filePaths {
			hclFile, diags := l.parser.ParseHCLFile(filePath)
			if diags.HasErrors() {
				return nil, fmt.Errorf("failed to parse HCL file %s: %w", filePath, diags)
			}

			fileModel, err := l.translateFile(ctx, hclFile, filePath)
			if err != nil {
				return nil, err
			}
			if err := model.Merge(fileModel); err != nil {
				return nil, err
			}
			logger.Debug("Loaded bindings from HCL file", "file", filePath)
		}
	}

	logger.Debug("HCL bindings loaded.", "descriptors", model.DescriptorCount())
	return model, nil
}

// Parse decodes bindings from an in-memory HCL document. The filename is
// used only for diagnostics.
func (l *Loader) Parse(ctx context.Context, filename string, src []byte) (*config.Model, error) {
	hclFile, diags := l.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL document %s: %w", filename, diags)
	}
	return l.translateFile(ctx, hclFile, filename)
}

// asError converts non-empty diagnostics into an error with file context.
func asError(filename string, diags hcl.Diagnostics) error {
	if !diags.HasErrors() {
		return nil
	}
	return fmt.Errorf("invalid bindings in %s: %w", filename, diags)
}
