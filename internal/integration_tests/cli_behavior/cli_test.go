package cli_behavior

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/bindmapgo/internal/app"
	"github.com/vk/bindmapgo/internal/registry"
	"github.com/vk/bindmapgo/internal/render"
	"github.com/vk/bindmapgo/internal/testutil"
)

var pythonBindings = map[string]string{
	"bindings.toml": `
[bindings.python.custom_types.Uuid]
imports = ["uuid"]
into_custom = "uuid.UUID({})"
from_custom = "str({})"

[bindings.python.custom_types.Url]
imports = []
into_custom = "{}"
from_custom = "{}"
`,
}

// The lookup path renders exactly one descriptor.
func TestRun_LookupRendersSingleDescriptor(t *testing.T) {
	t.Parallel()

	result := testutil.RunBindings(t, pythonBindings, func(cfg *app.Config) {
		cfg.Lookup = "python:Uuid"
	})

	require.NoError(t, result.Err)
	require.Contains(t, result.Output, "uuid.UUID({})")
	require.NotContains(t, result.Output, "Url:", "lookup output must not include other descriptors")
}

// A lookup miss surfaces as a NotFoundError for the caller to handle.
func TestRun_LookupMiss_ReturnsNotFound(t *testing.T) {
	t.Parallel()

	result := testutil.RunBindings(t, pythonBindings, func(cfg *app.Config) {
		cfg.Lookup = "python:Timestamp"
	})

	require.Error(t, result.Err)
	var notFound *registry.NotFoundError
	require.True(t, errors.As(result.Err, &notFound))
}

// The JSON report is machine-readable and deterministic.
func TestRun_JSONReport(t *testing.T) {
	t.Parallel()

	result := testutil.RunBindings(t, pythonBindings, func(cfg *app.Config) {
		cfg.Format = "json"
	})

	require.NoError(t, result.Err)

	var report render.Report
	require.NoError(t, json.Unmarshal([]byte(result.Output), &report))
	require.Len(t, report.Languages, 1)
	require.Equal(t, "python", report.Languages[0].Language)
	require.Len(t, report.Languages[0].Types, 2)
	require.Equal(t, "Uuid", report.Languages[0].Types[0].AbstractType)
	require.Equal(t, "Url", report.Languages[0].Types[1].AbstractType)
}

// Descriptor imports keep their configured order in the report.
func TestRun_ImportOrderPreservedInReport(t *testing.T) {
	t.Parallel()

	files := map[string]string{
		"bindings.toml": `
[bindings.kotlin.custom_types.Timestamp]
type_name = "OffsetDateTime"
imports = ["java.time.OffsetDateTime", "java.time.format.DateTimeFormatter"]
into_custom = "OffsetDateTime.parse({}, DateTimeFormatter.ISO_OFFSET_DATE_TIME)"
from_custom = "{}.format(DateTimeFormatter.ISO_OFFSET_DATE_TIME)"
`,
	}

	result := testutil.RunBindings(t, files, func(cfg *app.Config) {
		cfg.Format = "json"
	})
	require.NoError(t, result.Err)

	var report render.Report
	require.NoError(t, json.Unmarshal([]byte(result.Output), &report))
	require.Equal(t,
		[]string{"java.time.OffsetDateTime", "java.time.format.DateTimeFormatter"},
		report.Languages[0].Types[0].Imports)
}

// An invalid format name is rejected before any rendering happens.
func TestRun_InvalidFormat(t *testing.T) {
	t.Parallel()

	result := testutil.RunBindings(t, pythonBindings, func(cfg *app.Config) {
		cfg.Format = "xml"
	})

	require.Error(t, result.Err)
	require.Contains(t, result.Err.Error(), "invalid format")
}
