// Package setup runs the detect, resolve, generate and merge stages against
// one project directory.
package setup

import (
	"fmt"
	"io"
	"log"
	"path/filepath"

	"github.com/DevSymphony/fmtsetup/internal/detect"
	"github.com/DevSymphony/fmtsetup/internal/formatter"
	"github.com/DevSymphony/fmtsetup/internal/generator"
	"github.com/DevSymphony/fmtsetup/internal/preset"
	"github.com/DevSymphony/fmtsetup/internal/scripts"
	"github.com/DevSymphony/fmtsetup/pkg/schema"
)

// Runner executes setup runs against a registry.
type Runner struct {
	Registry *formatter.Registry
}

// New returns a Runner bound to reg, or to the global registry when reg is nil.
func New(reg *formatter.Registry) *Runner {
	if reg == nil {
		reg = formatter.Global()
	}
	return &Runner{Registry: reg}
}

// Run performs a setup run with the global registry.
func Run(opts schema.SetupOptions) (*schema.SetupResult, error) {
	return New(nil).Run(opts)
}

// Detect reports formatter availability for dir with the global registry.
func Detect(dir string) (*schema.DetectionResult, error) {
	return New(nil).Detect(dir)
}

// Detect reports formatter availability for dir.
func (r *Runner) Detect(dir string) (*schema.DetectionResult, error) {
	dir, err := resolveDir(dir)
	if err != nil {
		return nil, err
	}
	return detect.Detect(dir, r.Registry)
}

// Run executes every stage in order. On a fatal error it returns the partial
// result, marked fatal, together with the error.
func (r *Runner) Run(opts schema.SetupOptions) (*schema.SetupResult, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	result := &schema.SetupResult{
		DryRun:         opts.DryRun,
		Artifacts:      []schema.ConfigArtifact{},
		UpdatedScripts: []string{},
		Warnings:       []schema.Warning{},
	}

	dir, err := resolveDir(opts.TargetDir)
	if err != nil {
		return fail(result, err)
	}

	// Stage 1: detection
	logger.Printf("detect: scanning %s", dir)
	detection, err := detect.Detect(dir, r.Registry)
	if err != nil {
		return fail(result, err)
	}
	result.Detection = detection
	result.Warnings = append(result.Warnings, detection.Warnings...)
	logger.Printf("detect: available=%v missing=%v packageManager=%s",
		detection.Available, detection.Missing, detection.PackageManager)

	// Stage 2: preset resolution
	presetName := opts.Preset
	if presetName == "" {
		presetName = preset.Standard
	}
	style, err := preset.Resolve(presetName, opts.Overrides)
	if err != nil {
		return fail(result, err)
	}
	result.Preset = presetName
	result.Style = &style
	logger.Printf("preset: %s %+v", presetName, style)

	selected, err := r.selectFormatters(opts.Formatters, detection, result)
	if err != nil {
		return fail(result, err)
	}
	if len(selected) == 0 {
		logger.Printf("generate: no formatters selected")
		return finish(result), nil
	}

	// Stage 3: config generation
	artifacts, warnings, err := generator.Generate(generator.Request{
		Dir:        dir,
		Style:      style,
		Formatters: selected,
		Force:      opts.Force,
		DryRun:     opts.DryRun,
		Registry:   r.Registry,
	})
	result.Artifacts = append(result.Artifacts, artifacts...)
	result.Warnings = append(result.Warnings, warnings...)
	if err != nil {
		return fail(result, err)
	}
	for _, a := range artifacts {
		if a.Skipped {
			logger.Printf("generate: %s skipped, existing config at %s", a.Formatter, a.ExistingPath)
		} else {
			logger.Printf("generate: %s -> %s (dryRun=%t)", a.Formatter, a.Path, opts.DryRun)
		}
	}

	// Stage 4: script merge
	if !opts.UpdateScripts {
		logger.Printf("scripts: skipped")
		return finish(result), nil
	}

	outcome, err := scripts.Merge(dir, scripts.Canonical(selected, detection.PackageManager), opts.DryRun)
	if err != nil {
		return fail(result, err)
	}
	result.UpdatedScripts = append(result.UpdatedScripts, outcome.Updated...)
	result.Warnings = append(result.Warnings, outcome.Warnings...)
	result.ManifestDiff = outcome.Diff
	logger.Printf("scripts: added %v", outcome.Updated)

	return finish(result), nil
}

// selectFormatters returns the explicitly requested formatters, or every
// detected one when none were requested.
func (r *Runner) selectFormatters(requested []string, detection *schema.DetectionResult, result *schema.SetupResult) ([]formatter.Descriptor, error) {
	if len(requested) == 0 {
		selected, err := r.Registry.Select(detection.Available)
		if err != nil {
			return nil, err
		}
		if len(selected) == 0 {
			result.Warnings = append(result.Warnings, schema.Warning{
				Code:    schema.WarnFormatterNotDetected,
				Message: "no supported formatter found in package.json; pass --formatters to choose one",
			})
		}
		return selected, nil
	}

	selected, err := r.Registry.Select(requested)
	if err != nil {
		return nil, err
	}
	for _, d := range selected {
		if !detection.IsAvailable(d.Name) {
			result.Warnings = append(result.Warnings, schema.Warning{
				Code:    schema.WarnFormatterNotDetected,
				Message: fmt.Sprintf("%s is not installed; configuring it anyway", d.Name),
			})
		}
	}
	return selected, nil
}

func resolveDir(dir string) (string, error) {
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve target directory: %w", err)
	}
	return abs, nil
}

func finish(result *schema.SetupResult) *schema.SetupResult {
	result.Success = true
	result.Status = schema.ResultSuccess
	if len(result.Warnings) > 0 {
		result.Status = schema.ResultSuccessWithWarnings
	}
	return result
}

func fail(result *schema.SetupResult, err error) (*schema.SetupResult, error) {
	result.Success = false
	result.Status = schema.ResultFatal
	result.Error = err.Error()
	return result, err
}
