// Package detect inspects a project directory and reports which supported
// formatters it already depends on.
package detect

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/DevSymphony/fmtsetup/internal/formatter"
	"github.com/DevSymphony/fmtsetup/internal/manifest"
	"github.com/DevSymphony/fmtsetup/pkg/schema"
)

// DefaultPackageManager is used when neither the manifest nor a lockfile
// names one.
const DefaultPackageManager = "npm"

// lockfiles maps lockfile names to package managers, in probe order.
var lockfiles = []struct {
	file    string
	manager string
}{
	{"pnpm-lock.yaml", "pnpm"},
	{"yarn.lock", "yarn"},
	{"bun.lockb", "bun"},
	{"bun.lock", "bun"},
	{"package-lock.json", "npm"},
}

var knownManagers = map[string]bool{"npm": true, "pnpm": true, "yarn": true, "bun": true}

// Detect reports the status of every formatter in reg for the project in dir.
// It never modifies the directory.
func Detect(dir string, reg *formatter.Registry) (*schema.DetectionResult, error) {
	m, err := manifest.Load(dir)
	if err != nil {
		return nil, err
	}

	result := &schema.DetectionResult{
		Formatters: []schema.FormatterStatus{},
		Available:  []string{},
		Missing:    []string{},
	}

	var available []formatter.Descriptor
	for _, d := range reg.All() {
		status, err := inspect(dir, m, d)
		if err != nil {
			return nil, err
		}
		result.Formatters = append(result.Formatters, status)

		switch status.Status {
		case schema.StatusAvailable:
			result.Available = append(result.Available, d.Name)
			available = append(available, d)
		case schema.StatusUnverified:
			result.Available = append(result.Available, d.Name)
			result.Unverified = append(result.Unverified, d.Name)
			available = append(available, d)
			result.Warnings = append(result.Warnings, schema.Warning{
				Code:    schema.WarnUnverifiedFormatter,
				Message: unverifiedMessage(d, status),
			})
		default:
			result.Missing = append(result.Missing, d.Name)
		}
	}

	result.Conflicts = findConflicts(available)
	seen := make(map[string]bool)
	for _, c := range result.Conflicts {
		for _, name := range c.Formatters {
			if !seen[name] {
				seen[name] = true
				result.Conflicting = append(result.Conflicting, name)
			}
		}
		result.Warnings = append(result.Warnings, schema.Warning{
			Code: schema.WarnFormatterConflict,
			Message: fmt.Sprintf("%s all claim the %q role; configure one or accept overlapping output",
				strings.Join(c.Formatters, ", "), c.Role),
		})
	}

	result.PackageManager = packageManager(dir, m)
	return result, nil
}

func inspect(dir string, m *manifest.Manifest, d formatter.Descriptor) (schema.FormatterStatus, error) {
	status := schema.FormatterStatus{Name: d.Name, Status: schema.StatusMissing}

	for _, pkg := range d.Packages {
		if version, ok := m.Dependency(pkg); ok {
			status.Status = schema.StatusAvailable
			status.Package = pkg
			status.Version = version
			break
		}
	}

	configFile, err := formatter.FindConfig(dir, d)
	if err != nil {
		return status, err
	}
	if configFile != "" {
		status.ConfigFile = configFile
	} else if d.ManifestKey != "" && m.Has(d.ManifestKey) {
		status.ConfigFile = manifest.FileName + "#" + d.ManifestKey
	}

	if status.Status == schema.StatusMissing && status.ConfigFile != "" {
		status.Status = schema.StatusUnverified
	}
	return status, nil
}

func unverifiedMessage(d formatter.Descriptor, status schema.FormatterStatus) string {
	return fmt.Sprintf("%s config found (%s) but %s is not declared in dependencies",
		d.Name, status.ConfigFile, strings.Join(d.Packages, " or "))
}

// findConflicts groups available formatters by role and returns every role
// claimed more than once. Role order follows the first claimant.
func findConflicts(available []formatter.Descriptor) []schema.Conflict {
	var roles []string
	seen := make(map[string]bool)
	for _, d := range available {
		for _, role := range d.Roles {
			if !seen[role] {
				seen[role] = true
				roles = append(roles, role)
			}
		}
	}

	var conflicts []schema.Conflict
	for _, role := range roles {
		var names []string
		for _, d := range available {
			if d.HasRole(role) {
				names = append(names, d.Name)
			}
		}
		if len(names) > 1 {
			conflicts = append(conflicts, schema.Conflict{Role: role, Formatters: names})
		}
	}
	return conflicts
}

func packageManager(dir string, m *manifest.Manifest) string {
	if pm := m.PackageManager(); knownManagers[pm] {
		return pm
	}
	for _, lf := range lockfiles {
		if _, err := os.Stat(filepath.Join(dir, lf.file)); err == nil {
			return lf.manager
		}
	}
	return DefaultPackageManager
}
