package cmd

import (
	"fmt"
	"strings"

	"github.com/DevSymphony/fmtsetup/internal/ui"
	"github.com/DevSymphony/fmtsetup/pkg/schema"
)

func printDetection(p *ui.Printer, d *schema.DetectionResult) {
	p.Title("Detect", fmt.Sprintf("package manager: %s", d.PackageManager))
	for _, s := range d.Formatters {
		switch s.Status {
		case schema.StatusAvailable:
			msg := fmt.Sprintf("%s (%s %s)", s.Name, s.Package, s.Version)
			if s.ConfigFile != "" {
				msg += ", config: " + s.ConfigFile
			}
			p.OK(msg)
		case schema.StatusUnverified:
			p.Warn(fmt.Sprintf("%s config found (%s), package not declared", s.Name, s.ConfigFile))
		default:
			p.Indent(s.Name + ": not installed")
		}
	}
	for _, c := range d.Conflicts {
		p.Warn(fmt.Sprintf("%s overlap on %q", strings.Join(c.Formatters, " and "), c.Role))
	}
}

func printSetupResult(p *ui.Printer, r *schema.SetupResult, runErr error) {
	if r == nil {
		return
	}

	if r.Detection != nil {
		printDetection(p, r.Detection)
	}

	if r.Style != nil {
		p.Title("Preset", r.Preset)
		p.Indent(describeStyle(*r.Style))
	}

	if len(r.Artifacts) > 0 {
		p.Title("Config", configSummary(r))
		for _, a := range r.Artifacts {
			name := a.Path
			switch {
			case a.Skipped:
				p.Info(fmt.Sprintf("%s: kept existing %s", a.Formatter, a.ExistingPath))
			case r.DryRun:
				p.Info(fmt.Sprintf("%s: would write %s", a.Formatter, name))
			default:
				p.OK(fmt.Sprintf("%s: wrote %s", a.Formatter, name))
			}
		}
	}

	if len(r.UpdatedScripts) > 0 {
		verb := "Added"
		if r.DryRun {
			verb = "Would add"
		}
		p.Title("Scripts", fmt.Sprintf("%s %d script(s)", verb, len(r.UpdatedScripts)))
		for _, name := range r.UpdatedScripts {
			p.Indent(name)
		}
	}

	if r.DryRun && r.ManifestDiff != "" {
		p.Title("Diff", "package.json")
		p.Diff(r.ManifestDiff)
	}

	for _, w := range r.Warnings {
		p.Warn(w.Message)
	}

	switch {
	case runErr != nil:
		p.Error(runErr.Error())
	case r.DryRun:
		p.Done("Dry run complete, nothing was written")
	case r.Status == schema.ResultSuccessWithWarnings:
		p.Done(fmt.Sprintf("Setup complete with %d warning(s)", len(r.Warnings)))
	default:
		p.Done("Setup complete")
	}
}

func configSummary(r *schema.SetupResult) string {
	written, skipped := 0, 0
	for _, a := range r.Artifacts {
		if a.Skipped {
			skipped++
		} else {
			written++
		}
	}
	if r.DryRun {
		return fmt.Sprintf("%d planned, %d kept", written, skipped)
	}
	return fmt.Sprintf("%d written, %d kept", written, skipped)
}
