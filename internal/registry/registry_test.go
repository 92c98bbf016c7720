package registry

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/bindmapgo/internal/config"
)

func validDescriptor(at config.AbstractType) *config.BindingDescriptor {
	return &config.BindingDescriptor{
		AbstractType: at,
		Imports:      []string{"some.module"},
		IntoCustom:   "parse({})",
		FromCustom:   "render({})",
	}
}

func populated(t *testing.T, build func(m *config.Model)) *Registry {
	t.Helper()
	model := config.NewModel()
	build(model)
	reg := New()
	require.NoError(t, reg.PopulateFromModel(model))
	return reg
}

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	reg := populated(t, func(m *config.Model) {
		require.NoError(t, m.Add("python", validDescriptor(config.TypeUuid)))
		require.NoError(t, m.Add("kotlin", validDescriptor(config.TypeUuid)))
	})

	desc, err := reg.Lookup("python", config.TypeUuid)
	require.NoError(t, err)
	require.Equal(t, config.TypeUuid, desc.AbstractType)

	_, err = reg.Lookup("python", config.TypeUrl)
	require.Error(t, err)

	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	require.Equal(t, "python", notFound.Language)
	require.Equal(t, config.TypeUrl, notFound.AbstractType)
}

func TestRegistry_Lookup_UnknownLanguage(t *testing.T) {
	t.Parallel()

	reg := populated(t, func(m *config.Model) {
		require.NoError(t, m.Add("python", validDescriptor(config.TypeUuid)))
	})

	_, err := reg.Lookup("ruby", config.TypeUuid)
	var notFound *NotFoundError
	require.True(t, errors.As(err, &notFound))
	require.Equal(t, "ruby", notFound.Language)
}

func TestRegistry_Languages_Sorted(t *testing.T) {
	t.Parallel()

	reg := populated(t, func(m *config.Model) {
		require.NoError(t, m.Add("swift", validDescriptor(config.TypeUuid)))
		require.NoError(t, m.Add("kotlin", validDescriptor(config.TypeUuid)))
		require.NoError(t, m.Add("python", validDescriptor(config.TypeUuid)))
	})

	require.Equal(t, []string{"kotlin", "python", "swift"}, reg.Languages())
}

func TestRegistry_DescriptorsFor_CanonicalOrder(t *testing.T) {
	t.Parallel()

	reg := populated(t, func(m *config.Model) {
		// Inserted out of canonical order on purpose.
		require.NoError(t, m.Add("python", validDescriptor(config.TypeTimestamp)))
		require.NoError(t, m.Add("python", validDescriptor(config.TypeUuid)))
	})

	descs := reg.DescriptorsFor("python")
	require.Len(t, descs, 2)
	require.Equal(t, config.TypeUuid, descs[0].AbstractType)
	require.Equal(t, config.TypeTimestamp, descs[1].AbstractType)

	require.Empty(t, reg.DescriptorsFor("ruby"))
}

func TestRegistry_PopulateFromModel_DuplicateAcrossModels(t *testing.T) {
	t.Parallel()

	reg := New()

	first := config.NewModel()
	require.NoError(t, first.Add("python", validDescriptor(config.TypeUuid)))
	require.NoError(t, reg.PopulateFromModel(first))

	second := config.NewModel()
	require.NoError(t, second.Add("python", validDescriptor(config.TypeUuid)))

	err := reg.PopulateFromModel(second)
	var schemaErr *config.SchemaError
	require.True(t, errors.As(err, &schemaErr))
	require.Equal(t, "python", schemaErr.Language)
	require.Equal(t, "Uuid", schemaErr.AbstractType)
}
