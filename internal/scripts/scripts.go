// Package scripts merges formatter run scripts into package.json.
package scripts

import (
	"fmt"
	"strings"

	"github.com/DevSymphony/fmtsetup/internal/formatter"
	"github.com/DevSymphony/fmtsetup/internal/manifest"
	"github.com/DevSymphony/fmtsetup/pkg/schema"
)

// Aggregate script names.
const (
	FormatAll = "format"
	CheckAll  = "format:check"
)

// Entry is one script to ensure.
type Entry struct {
	Name    string `json:"name"`
	Command string `json:"command"`
}

// Outcome reports what a merge did or would do.
type Outcome struct {
	// Updated lists the script names added, in entry order.
	Updated []string

	// Warnings holds one ScriptConflict per user-modified script.
	Warnings []schema.Warning

	// Diff is the package.json line diff, empty when nothing changes.
	Diff string
}

// Canonical returns the scripts the given formatters contribute, followed by
// the aggregate format and format:check scripts run through pm.
func Canonical(descs []formatter.Descriptor, pm string) []Entry {
	if pm == "" {
		pm = "npm"
	}

	var entries []Entry
	var formatSteps, checkSteps []string

	for _, d := range descs {
		if d.FormatCommand != "" {
			entries = append(entries, Entry{Name: d.FormatScript(), Command: d.FormatCommand})
			formatSteps = append(formatSteps, runScript(pm, d.FormatScript()))
		}
		if d.CheckCommand != "" {
			entries = append(entries, Entry{Name: d.CheckScript(), Command: d.CheckCommand})
			checkSteps = append(checkSteps, runScript(pm, d.CheckScript()))
		}
		if d.LintCommand != "" {
			entries = append(entries, Entry{Name: d.LintScript(), Command: d.LintCommand})
		}
		if d.LintFixCommand != "" {
			entries = append(entries, Entry{Name: d.LintFixScript(), Command: d.LintFixCommand})
		}
	}

	if len(formatSteps) > 0 {
		entries = append(entries, Entry{Name: FormatAll, Command: strings.Join(formatSteps, " && ")})
	}
	if len(checkSteps) > 0 {
		entries = append(entries, Entry{Name: CheckAll, Command: strings.Join(checkSteps, " && ")})
	}
	return entries
}

func runScript(pm, name string) string {
	return pm + " run " + name
}

// Merge adds missing entries to dir/package.json. Scripts that already exist
// with a different command are left as they are and reported. The file is
// rewritten only when an entry was added and dryRun is false.
func Merge(dir string, entries []Entry, dryRun bool) (*Outcome, error) {
	m, err := manifest.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", manifest.ErrManifestWrite, err)
	}

	existing, err := m.Scripts()
	if err != nil {
		return nil, err
	}

	outcome := &Outcome{Updated: []string{}}
	for _, e := range entries {
		current, ok := existing.Get(e.Name)
		switch {
		case !ok:
			existing.Set(e.Name, e.Command)
			outcome.Updated = append(outcome.Updated, e.Name)
		case current != e.Command:
			outcome.Warnings = append(outcome.Warnings, schema.Warning{
				Code:    schema.WarnScriptConflict,
				Message: fmt.Sprintf("script %q already runs %q; left unchanged (expected %q)", e.Name, current, e.Command),
			})
		}
	}

	if len(outcome.Updated) == 0 {
		return outcome, nil
	}

	before := m.Raw()
	if err := m.SetScripts(existing); err != nil {
		return nil, fmt.Errorf("%w: %v", manifest.ErrManifestWrite, err)
	}

	var after []byte
	if dryRun {
		after, err = m.Encode()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", manifest.ErrManifestWrite, err)
		}
	} else {
		after, err = m.Save()
		if err != nil {
			return nil, err
		}
	}

	outcome.Diff = manifest.Diff(manifest.FileName, before, after)
	return outcome, nil
}
