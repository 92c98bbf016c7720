package hcl

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/bindmapgo/internal/config"
)

func TestLoader_Parse(t *testing.T) {
	t.Parallel()

	src := `
		bindings "kotlin" {
			custom_type "Uuid" {
				type_name   = "UUID"
				imports     = ["java.util.UUID"]
				into_custom = "UUID.fromString({})"
				from_custom = "{}.toString()"
			}
			custom_type "Timestamp" {
				type_name   = "OffsetDateTime"
				imports     = ["java.time.OffsetDateTime"]
				into_custom = "OffsetDateTime.parse({})"
				from_custom = "{}.toString()"
			}
		}

		bindings "python" {
			custom_type "Uuid" {
				imports     = ["uuid"]
				into_custom = "uuid.UUID({})"
				from_custom = "str({})"
			}
		}
	`

	model, err := NewLoader().Parse(context.Background(), "bindings.hcl", []byte(src))
	require.NoError(t, err)
	require.Equal(t, 3, model.DescriptorCount())

	kotlin := model.Languages["kotlin"]
	require.NotNil(t, kotlin)
	uuid := kotlin.CustomTypes[config.TypeUuid]
	require.NotNil(t, uuid)
	require.Equal(t, "UUID", uuid.TypeName)
	require.Equal(t, []string{"java.util.UUID"}, uuid.Imports)
	require.Equal(t, config.Template("UUID.fromString({})"), uuid.IntoCustom)

	python := model.Languages["python"]
	require.NotNil(t, python)
	require.Empty(t, python.CustomTypes[config.TypeUuid].TypeName, "type_name is optional")
}

func TestLoader_Parse_MissingImportsStaysNil(t *testing.T) {
	t.Parallel()

	src := `
		bindings "python" {
			custom_type "Url" {
				into_custom = "{}"
				from_custom = "{}"
			}
		}
	`

	model, err := NewLoader().Parse(context.Background(), "bindings.hcl", []byte(src))
	require.NoError(t, err, "missing imports is a validation error, not a parse error")
	require.Nil(t, model.Languages["python"].CustomTypes[config.TypeUrl].Imports)
}

func TestLoader_Parse_SyntaxError(t *testing.T) {
	t.Parallel()

	src := `
		bindings "python" {
			custom_type "Uuid" {
	`

	_, err := NewLoader().Parse(context.Background(), "broken.hcl", []byte(src))
	require.Error(t, err)
}

func TestLoader_Parse_DuplicatePairInOneFile(t *testing.T) {
	t.Parallel()

	src := `
		bindings "swift" {
			custom_type "Url" {
				imports     = ["Foundation"]
				into_custom = "URL(string: {})!"
				from_custom = "{}.absoluteString"
			}
			custom_type "Url" {
				imports     = ["Foundation"]
				into_custom = "URL(string: {})!"
				from_custom = "{}.absoluteString"
			}
		}
	`

	_, err := NewLoader().Parse(context.Background(), "bindings.hcl", []byte(src))
	require.Error(t, err)

	var schemaErr *config.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	require.Equal(t, "swift", schemaErr.Language)
	require.Equal(t, "Url", schemaErr.AbstractType)
}

func TestLoader_Load_MergesFilesAcrossDirectories(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "extra"), 0755))

	pythonHCL := `
		bindings "python" {
			custom_type "Uuid" {
				imports     = ["uuid"]
				into_custom = "uuid.UUID({})"
				from_custom = "str({})"
			}
		}
	`
	swiftHCL := `
		bindings "swift" {
			custom_type "Uuid" {
				type_name   = "UUID"
				imports     = ["Foundation"]
				into_custom = "UUID(uuidString: {})!"
				from_custom = "{}.uuidString"
			}
		}
	`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "python.hcl"), []byte(pythonHCL), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "extra", "swift.hcl"), []byte(swiftHCL), 0600))

	model, err := NewLoader().Load(context.Background(), tmpDir)
	require.NoError(t, err)
	require.Equal(t, 2, model.DescriptorCount())
	require.Contains(t, model.Languages, "python")
	require.Contains(t, model.Languages, "swift")
}

func TestLoader_Load_EmptyDirectoryYieldsEmptyModel(t *testing.T) {
	t.Parallel()

	model, err := NewLoader().Load(context.Background(), t.TempDir())
	require.NoError(t, err)
	require.Equal(t, 0, model.DescriptorCount())
}
