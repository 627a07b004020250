package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/DevSymphony/fmtsetup/pkg/schema"
)

// ProjectConfig represents the .fmtsetup.json structure
type ProjectConfig struct {
	Preset     string                 `json:"preset,omitempty"`     // "standard", "strict", "relaxed"
	Formatters []string               `json:"formatters,omitempty"` // ["prettier", "eslint"]
	Style      *schema.StyleOverrides `json:"style,omitempty"`
	Scripts    *bool                  `json:"scripts,omitempty"` // nil means true
	Force      bool                   `json:"force,omitempty"`
}

const projectConfigFile = ".fmtsetup.json"

// GetProjectConfigPath returns the path to .fmtsetup.json inside dir
func GetProjectConfigPath(dir string) string {
	return filepath.Join(dir, projectConfigFile)
}

// LoadProjectConfig loads the project configuration from dir/.fmtsetup.json
func LoadProjectConfig(dir string) (*ProjectConfig, error) {
	configPath := GetProjectConfigPath(dir)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty config if file doesn't exist
			return &ProjectConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg ProjectConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	return &cfg, nil
}

// SaveProjectConfig saves the project configuration to dir/.fmtsetup.json
func SaveProjectConfig(dir string, cfg *ProjectConfig) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(GetProjectConfigPath(dir), data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// ProjectConfigExists checks if dir/.fmtsetup.json exists
func ProjectConfigExists(dir string) bool {
	_, err := os.Stat(GetProjectConfigPath(dir))
	return err == nil
}

// Options converts the project config into setup options for dir.
// Command-line flags are layered on top by the caller.
func (c *ProjectConfig) Options(dir string) schema.SetupOptions {
	opts := schema.SetupOptions{
		TargetDir:     dir,
		Preset:        c.Preset,
		Formatters:    append([]string(nil), c.Formatters...),
		UpdateScripts: c.Scripts == nil || *c.Scripts,
		Force:         c.Force,
	}
	if !c.Style.IsEmpty() {
		style := *c.Style
		opts.Overrides = &style
	}
	return opts
}

// MergeOverrides returns base with every field set in top applied over it.
// The result is nil when both are empty.
func MergeOverrides(base, top *schema.StyleOverrides) *schema.StyleOverrides {
	if base.IsEmpty() && top.IsEmpty() {
		return nil
	}

	merged := schema.StyleOverrides{}
	if base != nil {
		merged = *base
	}
	if top == nil {
		return &merged
	}

	if top.LineWidth != nil {
		merged.LineWidth = top.LineWidth
	}
	if top.IndentWidth != nil {
		merged.IndentWidth = top.IndentWidth
	}
	if top.QuoteStyle != nil {
		merged.QuoteStyle = top.QuoteStyle
	}
	if top.JSXQuoteStyle != nil {
		merged.JSXQuoteStyle = top.JSXQuoteStyle
	}
	if top.Semicolons != nil {
		merged.Semicolons = top.Semicolons
	}
	if top.TrailingCommas != nil {
		merged.TrailingCommas = top.TrailingCommas
	}
	return &merged
}
