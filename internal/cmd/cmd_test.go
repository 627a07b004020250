package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	_ "github.com/DevSymphony/fmtsetup/internal/bootstrap"
	"github.com/DevSymphony/fmtsetup/internal/util/config"
	"github.com/DevSymphony/fmtsetup/pkg/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetFlags restores every flag to its default so runs do not leak state.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func newProject(t *testing.T, manifest string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(manifest), 0644))
	return dir
}

func TestSetupCommand(t *testing.T) {
	dir := newProject(t, `{"devDependencies":{"prettier":"^3.0.0"}}`)

	out, err := execute(t, "setup", "--target-dir", dir, "--preset", "strict", "--quote", "double")
	require.NoError(t, err)

	assert.Contains(t, out, "[OK] prettier: wrote .prettierrc.json")
	assert.Contains(t, out, "[DONE] Setup complete")

	data, err := os.ReadFile(filepath.Join(dir, ".prettierrc.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"printWidth": 80`)
	assert.Contains(t, string(data), `"singleQuote": false`)
}

func TestSetupCommand_DryRun(t *testing.T) {
	manifest := `{"devDependencies":{"prettier":"^3.0.0"}}`
	dir := newProject(t, manifest)

	out, err := execute(t, "setup", "-C", dir, "--dry-run")
	require.NoError(t, err)

	assert.Contains(t, out, "would write .prettierrc.json")
	assert.Contains(t, out, "+++ package.json")
	assert.NoFileExists(t, filepath.Join(dir, ".prettierrc.json"))

	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	require.NoError(t, err)
	assert.Equal(t, manifest, string(data))
}

func TestSetupCommand_Fatal(t *testing.T) {
	dir := t.TempDir()

	t.Run("exits with error", func(t *testing.T) {
		out, err := execute(t, "setup", "-C", dir)
		require.Error(t, err)
		assert.Contains(t, out, "[ERROR]")
	})

	t.Run("dry run never fails", func(t *testing.T) {
		out, err := execute(t, "setup", "-C", dir, "--dry-run")
		require.NoError(t, err)
		assert.Contains(t, out, "package.json not found")
	})

	t.Run("interactive dry run reports detection failure", func(t *testing.T) {
		out, err := execute(t, "setup", "-C", dir, "--interactive", "--dry-run")
		require.NoError(t, err)
		assert.Contains(t, out, "[ERROR]")
		assert.Contains(t, out, "package.json not found")
	})
}

func TestSetupCommand_MalformedProjectConfig(t *testing.T) {
	dir := newProject(t, `{"devDependencies":{"prettier":"^3.0.0"}}`)
	require.NoError(t, os.WriteFile(config.GetProjectConfigPath(dir), []byte(`{bad`), 0644))

	t.Run("exits with error", func(t *testing.T) {
		_, err := execute(t, "setup", "-C", dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid config file")
	})

	t.Run("dry run reports and succeeds", func(t *testing.T) {
		out, err := execute(t, "setup", "-C", dir, "--dry-run")
		require.NoError(t, err)
		assert.Contains(t, out, "[ERROR]")
		assert.Contains(t, out, "invalid config file")
	})

	_, err := os.Stat(filepath.Join(dir, ".prettierrc.json"))
	assert.True(t, os.IsNotExist(err))
}

func TestSetupCommand_JSON(t *testing.T) {
	dir := newProject(t, `{"devDependencies":{"eslint":"^8.0.0","@biomejs/biome":"^1.9.0"}}`)

	out, err := execute(t, "setup", "-C", dir, "--json", "--no-scripts")
	require.NoError(t, err)

	var result schema.SetupResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, schema.ResultSuccessWithWarnings, result.Status)
	assert.Len(t, result.Artifacts, 2)
	assert.Empty(t, result.UpdatedScripts)
}

func TestSetupCommand_ProjectConfig(t *testing.T) {
	dir := newProject(t, `{"name":"docs"}`)
	noScripts := false
	require.NoError(t, config.SaveProjectConfig(dir, &config.ProjectConfig{
		Preset:     "relaxed",
		Formatters: []string{"prettier"},
		Scripts:    &noScripts,
	}))

	t.Run("config values apply", func(t *testing.T) {
		out, err := execute(t, "setup", "-C", dir, "--dry-run", "--json")
		require.NoError(t, err)

		var result schema.SetupResult
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.Equal(t, "relaxed", result.Preset)
		assert.Equal(t, 120, result.Style.LineWidth)
	})

	t.Run("flags win over config", func(t *testing.T) {
		out, err := execute(t, "setup", "-C", dir, "--dry-run", "--json", "--preset", "strict")
		require.NoError(t, err)

		var result schema.SetupResult
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.Equal(t, "strict", result.Preset)
		require.Len(t, result.Artifacts, 1)
		assert.Equal(t, "prettier", result.Artifacts[0].Formatter)
		assert.Empty(t, result.UpdatedScripts, "scripts stay disabled by config")
	})

	t.Run("verbose log names the config file", func(t *testing.T) {
		out, err := execute(t, "setup", "-C", dir, "--dry-run", "-v")
		require.NoError(t, err)
		assert.Contains(t, out, "config: loaded "+config.GetProjectConfigPath(dir))
	})
}

func TestSetupCommand_SaveConfig(t *testing.T) {
	dir := newProject(t, `{"devDependencies":{"prettier":"^3.0.0"}}`)

	_, err := execute(t, "setup", "-C", dir, "--preset", "strict", "--line-width", "90", "--save-config")
	require.NoError(t, err)

	cfg, err := config.LoadProjectConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "strict", cfg.Preset)
	require.NotNil(t, cfg.Style)
	assert.Equal(t, 90, *cfg.Style.LineWidth)
	assert.Nil(t, cfg.Scripts)
}

func TestDetectCommand(t *testing.T) {
	t.Run("reports formatters", func(t *testing.T) {
		dir := newProject(t, `{"devDependencies":{"@biomejs/biome":"^1.0.0"}}`)

		out, err := execute(t, "detect", "-C", dir)
		require.NoError(t, err)
		assert.Contains(t, out, "[OK] biome (@biomejs/biome ^1.0.0)")
		assert.Contains(t, out, "prettier: not installed")
	})

	t.Run("missing manifest exits cleanly", func(t *testing.T) {
		out, err := execute(t, "detect", "-C", t.TempDir())
		require.NoError(t, err)
		assert.Contains(t, out, "[ERROR]")
	})

	t.Run("json", func(t *testing.T) {
		dir := newProject(t, `{"devDependencies":{"prettier":"^3.0.0"}}`)

		out, err := execute(t, "detect", "-C", dir, "--json")
		require.NoError(t, err)

		var result schema.DetectionResult
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.Equal(t, []string{"prettier"}, result.Available)
	})
}

func TestPresetsCommand(t *testing.T) {
	out, err := execute(t, "presets")
	require.NoError(t, err)
	assert.Contains(t, out, "[Preset] standard (default)")
	assert.Contains(t, out, "width 120, indent 4, double quotes")
}

func TestVersionCommand(t *testing.T) {
	SetVersion("1.2.3")
	defer SetVersion("dev")

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "fmtsetup version 1.2.3\n", out)
	assert.Equal(t, "1.2.3", GetVersion())
}
