package mcp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/DevSymphony/fmtsetup/pkg/fmtsetup"
	"github.com/DevSymphony/fmtsetup/pkg/schema"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, manifest string) (*Server, string) {
	t.Helper()
	dir := t.TempDir()
	if manifest != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte(manifest), 0644))
	}
	return NewServer(dir, "test", nil), dir
}

func TestDetectFormatters(t *testing.T) {
	server, _ := newTestServer(t, `{"devDependencies":{"@biomejs/biome":"^1.0.0"}}`)

	text, rpcErr := server.handleDetectFormatters(DetectFormattersInput{})
	require.Nil(t, rpcErr)

	var result schema.DetectionResult
	require.NoError(t, json.Unmarshal([]byte(text), &result))
	assert.Equal(t, []string{"biome"}, result.Available)
	assert.Equal(t, "npm", result.PackageManager)
}

func TestDetectFormatters_RelativeDir(t *testing.T) {
	server, dir := newTestServer(t, "")
	sub := filepath.Join(dir, "packages", "web")
	require.NoError(t, os.MkdirAll(sub, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "package.json"), []byte(`{"dependencies":{"prettier":"3"}}`), 0644))

	text, rpcErr := server.handleDetectFormatters(DetectFormattersInput{TargetDir: "packages/web"})
	require.Nil(t, rpcErr)
	assert.Contains(t, text, `"prettier"`)
}

func TestDetectFormatters_MissingManifest(t *testing.T) {
	server, _ := newTestServer(t, "")

	_, rpcErr := server.handleDetectFormatters(DetectFormattersInput{})
	require.NotNil(t, rpcErr)
	assert.Contains(t, rpcErr.Message, "package.json not found")
}

func TestListPresets(t *testing.T) {
	server, _ := newTestServer(t, "")

	text, rpcErr := server.handleListPresets()
	require.Nil(t, rpcErr)

	var presets []fmtsetup.Preset
	require.NoError(t, json.Unmarshal([]byte(text), &presets))
	require.Len(t, presets, 3)
	assert.Equal(t, "standard", presets[0].Name)
	assert.Equal(t, "es5", presets[0].Style.TrailingCommas)
	assert.Equal(t, 80, presets[1].Style.LineWidth)
	assert.Equal(t, "as-needed", presets[2].Style.Semicolons)
}

func TestSetupFormatters(t *testing.T) {
	server, dir := newTestServer(t, `{"devDependencies":{"prettier":"^3.0.0"}}`)

	t.Run("dry run writes nothing", func(t *testing.T) {
		text, rpcErr := server.handleSetupFormatters(SetupFormattersInput{Preset: "relaxed", DryRun: true})
		require.Nil(t, rpcErr)

		var result schema.SetupResult
		require.NoError(t, json.Unmarshal([]byte(text), &result))
		assert.True(t, result.DryRun)
		require.Len(t, result.Artifacts, 1)
		assert.Contains(t, result.Artifacts[0].Content, `"printWidth": 120`)
		assert.NoFileExists(t, filepath.Join(dir, ".prettierrc.json"))
	})

	t.Run("writes config without scripts", func(t *testing.T) {
		noScripts := false
		_, rpcErr := server.handleSetupFormatters(SetupFormattersInput{UpdateScripts: &noScripts})
		require.Nil(t, rpcErr)

		assert.FileExists(t, filepath.Join(dir, ".prettierrc.json"))
		data, err := os.ReadFile(filepath.Join(dir, "package.json"))
		require.NoError(t, err)
		assert.NotContains(t, string(data), "scripts")
	})

	t.Run("fatal run reports partial result", func(t *testing.T) {
		text, rpcErr := server.handleSetupFormatters(SetupFormattersInput{Preset: "google"})
		require.NotNil(t, rpcErr)
		assert.Contains(t, rpcErr.Message, "google")

		var result schema.SetupResult
		require.NoError(t, json.Unmarshal([]byte(text), &result))
		assert.Equal(t, schema.ResultFatal, result.Status)
	})
}

func TestToolResult(t *testing.T) {
	ok := toolResult(`{"a":1}`, nil)
	assert.False(t, ok.IsError)
	require.Len(t, ok.Content, 1)
	assert.Equal(t, `{"a":1}`, ok.Content[0].(*sdkmcp.TextContent).Text)

	failed := toolResult("", &RPCError{Code: -32603, Message: "boom"})
	assert.True(t, failed.IsError)
	assert.Equal(t, "boom", failed.Content[0].(*sdkmcp.TextContent).Text)
}
