package fmtsetup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/DevSymphony/fmtsetup/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"),
		[]byte(`{"devDependencies":{"@biomejs/biome":"^1.0.0"}}`), 0644))

	result, err := Setup(schema.SetupOptions{TargetDir: dir, Preset: "strict", UpdateScripts: true})
	require.NoError(t, err)

	assert.Equal(t, schema.ResultSuccess, result.Status)
	require.Len(t, result.Artifacts, 1)
	assert.Equal(t, "biome.json", result.Artifacts[0].Path)
	assert.Contains(t, result.UpdatedScripts, "lint:biome")
}

func TestDetectAvailableFormatters(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"),
		[]byte(`{"devDependencies":{"@biomejs/biome":"^1.0.0"}}`), 0644))

	result, err := DetectAvailableFormatters(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"biome"}, result.Available)
	assert.ElementsMatch(t, []string{"prettier", "eslint", "remark"}, result.Missing)
}

func TestPresets(t *testing.T) {
	presets := Presets()
	require.Len(t, presets, 3)
	assert.Equal(t, []string{"standard", "strict", "relaxed"},
		[]string{presets[0].Name, presets[1].Name, presets[2].Name})
	assert.Equal(t, 4, presets[2].Style.IndentWidth)
}
