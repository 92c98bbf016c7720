package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/bindmapgo/internal/app"
	"github.com/vk/bindmapgo/internal/config"
	"github.com/vk/bindmapgo/internal/hcl"
	"github.com/vk/bindmapgo/internal/toml"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	Output    string
	LogOutput string
	Err       error
	App       *app.App
}

// LoadBindings provides a standardized harness for load-phase integration
// tests. It writes the given bindings files (relative path -> content) into
// a temporary directory, starts the app against that directory with both
// loaders, and captures any startup failure instead of letting the panic
// escape.
func LoadBindings(t *testing.T, files map[string]string) *HarnessResult {
	t.Helper()
	return RunBindings(t, files, func(cfg *app.Config) {})
}

// RunBindings is like LoadBindings but lets the caller adjust the app
// configuration (lookup, output format) before the run. When startup
// succeeds, App.Run is executed and its report captured in Output.
func RunBindings(t *testing.T, files map[string]string, configure func(cfg *app.Config)) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	appConfig, err := app.NewConfig(app.Config{
		ConfigPath: tmpDir,
		LogLevel:   "debug",
		LogFormat:  "text",
		Format:     "text",
	})
	require.NoError(t, err)
	configure(appConfig)

	outBuffer := &bytes.Buffer{}
	logBuffer := &SafeBuffer{}
	loaders := []config.Loader{hcl.NewLoader(), toml.NewLoader()}

	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		testApp = app.NewApp(outBuffer, logBuffer, appConfig, loaders...)
	}()

	if panicErr != nil {
		return &HarnessResult{
			LogOutput: logBuffer.String(),
			Err:       fmt.Errorf("application startup panicked | %v", panicErr),
		}
	}

	runErr := testApp.Run(context.Background(), appConfig)

	if os.Getenv("BINDMAP_TEST_LOGS") == "true" {
		t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
	}

	return &HarnessResult{
		Output:    outBuffer.String(),
		LogOutput: logBuffer.String(),
		Err:       runErr,
		App:       testApp,
	}
}
