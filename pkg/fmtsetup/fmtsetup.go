// Package fmtsetup configures code formatters for JavaScript projects.
//
// It detects which of the supported tools (Prettier, Biome, ESLint and
// remark) a project already depends on, renders their config files from a
// named style preset, and adds matching scripts to package.json. Existing
// config files and scripts are never overwritten unless Force is set.
//
//	result, err := fmtsetup.Setup(schema.SetupOptions{
//		TargetDir:     "./web",
//		Preset:        "strict",
//		UpdateScripts: true,
//	})
package fmtsetup

import (
	"github.com/DevSymphony/fmtsetup/internal/preset"
	"github.com/DevSymphony/fmtsetup/internal/setup"
	"github.com/DevSymphony/fmtsetup/pkg/schema"

	// Register the built-in formatters.
	_ "github.com/DevSymphony/fmtsetup/internal/bootstrap"
)

// Preset is a named style.
type Preset struct {
	Name  string                 `json:"name"`
	Style schema.StyleDescriptor `json:"style"`
}

// Setup detects, generates and merges in opts.TargetDir. On a fatal error
// the partial result is returned with the error.
func Setup(opts schema.SetupOptions) (*schema.SetupResult, error) {
	return setup.Run(opts)
}

// Detect reports formatter availability in dir without modifying it.
func Detect(dir string) (*schema.DetectionResult, error) {
	return setup.Detect(dir)
}

// DetectAvailableFormatters is an alias for Detect.
func DetectAvailableFormatters(dir string) (*schema.DetectionResult, error) {
	return Detect(dir)
}

// Presets returns the built-in presets in declaration order.
func Presets() []Preset {
	names := preset.Names()
	presets := make([]Preset, 0, len(names))
	for _, name := range names {
		style, err := preset.Get(name)
		if err != nil {
			continue
		}
		presets = append(presets, Preset{Name: name, Style: style})
	}
	return presets
}
