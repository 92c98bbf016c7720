package toml

import (
	"context"
	"fmt"
	"os"

	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/vk/bindmapgo/internal/config"
	"github.com/vk/bindmapgo/internal/ctxlog"
	"github.com/vk/bindmapgo/internal/fsutil"
)

// Loader reads bindings configuration written in UniFFI-style TOML.
type Loader struct{}

// NewLoader creates a new TOML bindings loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Extension implements config.Loader.
func (l *Loader) Extension() string {
	return ".toml"
}

// tomlRoot mirrors the on-disk section layout
// `bindings.<language>.custom_types.<AbstractType>`.
type tomlRoot struct {
	Bindings map[string]tomlLanguage `toml:"bindings"`
}

type tomlLanguage struct {
	CustomTypes map[string]tomlDescriptor `toml:"custom_types"`
}

// tomlDescriptor carries one custom type section. Imports stays nil when
// the key is absent so registry validation can tell "missing" from
// "present but empty".
type tomlDescriptor struct {
	TypeName   string   `toml:"type_name"`
	Imports    []string `toml:"imports"`
	IntoCustom string   `toml:"into_custom"`
	FromCustom string   `toml:"from_custom"`
}

// Load implements config.Loader. It walks the given paths for .toml files,
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
			src, err := os.ReadFile(filePath)
			if err != nil {
				return nil, fmt.Errorf("failed to read TOML file %s: %w", filePath, err)
			}

			fileModel, err := l.Parse(ctx, filePath, src)
			if err != nil {
				return nil, err
			}
			if err := model.Merge(fileModel); err != nil {
				return nil, err
			}
			logger.Debug("Loaded bindings from TOML file", "file", filePath)
		}
	}

	logger.Debug("TOML bindings loaded.", "descriptors", model.DescriptorCount())
	return model, nil
}

// Parse decodes bindings from an in-memory TOML document. The filename is
// used only for error messages.
func (l *Loader) Parse(ctx context.Context, filename string, src []byte) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)

	root := tomlRoot{}
	if err := gotoml.Unmarshal(src, &root); err != nil {
		return nil, fmt.Errorf("failed to parse TOML document %s: %w", filename, err)
	}

	model := config.NewModel()
	for language, lang := range root.Bindings {
		for typeName, desc := range lang.CustomTypes {
			err := model.Add(language, &config.BindingDescriptor{
				AbstractType: config.AbstractType(typeName),
				TypeName:     desc.TypeName,
				Imports:      desc.Imports,
				IntoCustom:   config.Template(desc.IntoCustom),
				FromCustom:   config.Template(desc.FromCustom),
			})
			if err != nil {
				return nil, err
			}
		}
	}

	logger.Debug("Translated TOML bindings file", "file", filename, "languages", len(root.Bindings))
	return model, nil
}
