// Package generator renders formatter config files from a resolved style
// and writes them without clobbering existing configuration.
package generator

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/DevSymphony/fmtsetup/internal/formatter"
	"github.com/DevSymphony/fmtsetup/internal/manifest"
	"github.com/DevSymphony/fmtsetup/pkg/schema"
)

// ErrTemplate is returned when a template fails or produces an empty
// document. Templates are pure, so this is always a programming error.
var ErrTemplate = errors.New("config template failed")

// Request describes one generation pass.
type Request struct {
	Dir        string
	Style      schema.StyleDescriptor
	Formatters []formatter.Descriptor
	Force      bool
	DryRun     bool

	// Registry supplies templates. Nil means formatter.Global().
	Registry *formatter.Registry
}

// Generate renders a config artifact per formatter, in the order given.
// Existing configuration is left alone unless Force is set. With DryRun
// the artifacts are identical but nothing is written.
func Generate(req Request) ([]schema.ConfigArtifact, []schema.Warning, error) {
	reg := req.Registry
	if reg == nil {
		reg = formatter.Global()
	}

	// package.json is optional here; it only matters for ManifestKey checks.
	m, err := manifest.Load(req.Dir)
	if err != nil && !errors.Is(err, manifest.ErrMissingManifest) {
		return nil, nil, err
	}

	artifacts := make([]schema.ConfigArtifact, 0, len(req.Formatters))
	var warnings []schema.Warning

	for _, d := range req.Formatters {
		tmpl, err := reg.Template(d.Name)
		if err != nil {
			return artifacts, warnings, err
		}

		content, err := render(d, tmpl, req.Style)
		if err != nil {
			return artifacts, warnings, err
		}

		artifact := schema.ConfigArtifact{
			Formatter: d.Name,
			Path:      d.ConfigFile,
			Content:   string(content),
		}

		existing, err := existingConfigs(req.Dir, d, m)
		if err != nil {
			return artifacts, warnings, err
		}

		if len(existing) > 0 && !req.Force {
			artifact.Skipped = true
			artifact.ExistingPath = existing[0]
			artifacts = append(artifacts, artifact)
			continue
		}

		for _, other := range existing {
			if other == d.ConfigFile {
				continue
			}
			warnings = append(warnings, schema.Warning{
				Code:    schema.WarnConfigShadowed,
				Message: fmt.Sprintf("%s also exists; %s may ignore %s", other, d.Name, d.ConfigFile),
			})
		}

		if !req.DryRun {
			if err := writeConfig(filepath.Join(req.Dir, artifact.Path), content); err != nil {
				return artifacts, warnings, err
			}
		}
		artifacts = append(artifacts, artifact)
	}

	return artifacts, warnings, nil
}

func render(d formatter.Descriptor, tmpl formatter.Template, style schema.StyleDescriptor) ([]byte, error) {
	content, err := tmpl(style)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplate, d.Name, err)
	}
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, fmt.Errorf("%w: %s: empty output", ErrTemplate, d.Name)
	}
	if content[len(content)-1] != '\n' {
		content = append(content, '\n')
	}
	return content, nil
}

// existingConfigs lists config already present for d, relative to dir.
// The generated file name comes first when it exists.
func existingConfigs(dir string, d formatter.Descriptor, m *manifest.Manifest) ([]string, error) {
	var existing []string
	if _, err := os.Stat(filepath.Join(dir, d.ConfigFile)); err == nil {
		existing = append(existing, d.ConfigFile)
	}

	matches, err := formatter.FindConfigs(dir, d)
	if err != nil {
		return nil, err
	}
	for _, match := range matches {
		if match != d.ConfigFile {
			existing = append(existing, match)
		}
	}

	if d.ManifestKey != "" && m != nil && m.Has(d.ManifestKey) {
		existing = append(existing, manifest.FileName+"#"+d.ManifestKey)
	}
	return existing, nil
}

func writeConfig(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
