package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentx-labs/blueprint/internal/config"
)

// ─── Test Helpers ───────────────────────────────────────────────────

// runCLI executes the root command with fresh flag values, returning what
// the command wrote to stdout. Callers isolate HOME with isolateHome.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	resetFlags()

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func resetFlags() {
	verbose = false
	synthFile, synthOutputDir = "", ""
	synthInstall, synthNoReadonly = false, false
	showFile, showFormat = "", "yaml"
	validateFile = ""
	initOutput, initForce = "blueprint.yaml", false
	packlistDir = "."
	versionShort, versionJSON = false, false
}

func isolateHome(t *testing.T) {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
}

// ─── Tests ──────────────────────────────────────────────────────────

func TestVersion(t *testing.T) {
	isolateHome(t)
	buildVersion, buildCommit, buildDate = "1.2.3", "abc123", "2024-01-01"

	out, err := runCLI(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", out)

	out, err = runCLI(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "blueprint version 1.2.3 (commit: abc123, built: 2024-01-01)\n", out)

	out, err = runCLI(t, "version", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"commit": "abc123"`)
}

func TestShow_JSON(t *testing.T) {
	isolateHome(t)

	out, err := runCLI(t, "show", "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"packageName": "@amazon-codecatalyst/haritripathi-demo.amazonqdeveloper"`)
	assert.Contains(t, out, `"license": "Apache-2.0"`)
}

func TestShow_UnknownFormat(t *testing.T) {
	isolateHome(t)

	_, err := runCLI(t, "show", "--format", "xml")
	assert.ErrorContains(t, err, "unknown blueprint format")
}

func TestValidate_BuiltIn(t *testing.T) {
	isolateHome(t)

	out, err := runCLI(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "[ OK ] Valid record")
}

func TestValidate_InvalidFile(t *testing.T) {
	isolateHome(t)
	path := filepath.Join("..", "blueprint", "testdata", "invalid-package-name.yaml")

	out, err := runCLI(t, "validate", "--file", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation issue(s)")
	assert.Contains(t, out, "[FAIL]")
	assert.Contains(t, out, "/packageName")
}

func TestInit_WritesRecordOnce(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "blueprint.yaml")

	out, err := runCLI(t, "init", "--output", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Created "+path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "authorName: HariTripathi_demo")

	_, err = runCLI(t, "init", "--output", path)
	assert.ErrorContains(t, err, "already exists")

	_, err = runCLI(t, "init", "--output", path, "--force")
	assert.NoError(t, err)
}

func TestSynth_FromInitRecord(t *testing.T) {
	isolateHome(t)
	dir := t.TempDir()
	record := filepath.Join(dir, "blueprint.toml")
	outDir := filepath.Join(dir, "out")

	_, err := runCLI(t, "init", "--output", record)
	require.NoError(t, err)

	out, err := runCLI(t, "synth", "--file", record, "--output-dir", outDir, "--no-readonly")
	require.NoError(t, err)
	assert.Contains(t, out, "Synthesized @amazon-codecatalyst/haritripathi-demo.amazonqdeveloper into "+outDir)
	assert.Contains(t, out, "  package.json\n")

	info, err := os.Stat(filepath.Join(outDir, "package.json"))
	require.NoError(t, err)
	assert.NotZero(t, info.Mode().Perm()&0o200, "package.json should stay writable with --no-readonly")

	out, err = runCLI(t, "packlist", "--dir", outDir)
	require.NoError(t, err)
	assert.Contains(t, out, "package.json\n")
	assert.NotContains(t, out, ".projenrc.ts")
}

func TestSynth_OutputDirFromConfig(t *testing.T) {
	isolateHome(t)
	outDir := filepath.Join(t.TempDir(), "from-env")
	t.Setenv("BLUEPRINT_OUTPUT_DIR", outDir)

	_, err := runCLI(t, "synth", "--no-readonly")
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(outDir, "tsconfig.json"))
	assert.NoError(t, err)
}

func TestSynth_MissingRecordFile(t *testing.T) {
	isolateHome(t)

	_, err := runCLI(t, "synth", "--file", filepath.Join(t.TempDir(), "missing.yaml"), "--output-dir", t.TempDir())
	assert.ErrorContains(t, err, "reading file")
}

func TestConfig_SetGetList(t *testing.T) {
	isolateHome(t)

	out, err := runCLI(t, "config", "set", "package_manager", "pnpm")
	require.NoError(t, err)
	assert.Equal(t, "Set package_manager = pnpm\n", out)

	out, err = runCLI(t, "config", "get", "package_manager")
	require.NoError(t, err)
	assert.Equal(t, "pnpm\n", out)

	out, err = runCLI(t, "config", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "log_level = warn\n")
	assert.Contains(t, out, "package_manager = pnpm\n")

	_, err = runCLI(t, "config", "set", "mirror_url", "x")
	assert.ErrorContains(t, err, "unknown config key")
}

func TestInvalidLogLevel(t *testing.T) {
	isolateHome(t)
	t.Setenv("BLUEPRINT_LOG_LEVEL", "loud")

	_, err := runCLI(t, "show")
	assert.ErrorContains(t, err, "invalid log_level")
}

func TestDoctor_ReportsSections(t *testing.T) {
	isolateHome(t)

	out, err := runCLI(t, "doctor")
	require.NoError(t, err)
	assert.Contains(t, out, "Config check:")
	assert.Contains(t, out, "not found, using defaults")
	assert.Contains(t, out, "Runtime check:")
}

func TestConfig_RepairsBadLogLevel(t *testing.T) {
	isolateHome(t)

	_, err := runCLI(t, "config", "set", "log_level", "loud")
	require.ErrorContains(t, err, "invalid log_level")

	// A level written by hand still leaves config usable.
	configDir := filepath.Join(os.Getenv("HOME"), ".blueprint")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte("log_level: loud\n"), 0o644))

	_, err = runCLI(t, "show")
	require.ErrorContains(t, err, "invalid log_level")

	out, err := runCLI(t, "config", "set", "log_level", "info")
	require.NoError(t, err)
	assert.Equal(t, "Set log_level = info\n", out)

	_, err = runCLI(t, "show")
	assert.NoError(t, err)
}

func TestLoggerConfig(t *testing.T) {
	isolateHome(t)
	t.Cleanup(viper.Reset)

	tests := []struct {
		name        string
		format      string
		verbose     bool
		level       string
		development bool
	}{
		{"defaults", "", false, "warn", true},
		{"json format", "json", false, "warn", false},
		{"verbose", "console", true, "debug", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			if tt.format != "" {
				t.Setenv("BLUEPRINT_LOG_FORMAT", tt.format)
			}
			config.Load()
			verbose = tt.verbose
			t.Cleanup(func() { verbose = false })

			cfg := loggerConfig()
			assert.Equal(t, tt.level, cfg.Level)
			assert.Equal(t, tt.development, cfg.Development)
		})
	}
}
