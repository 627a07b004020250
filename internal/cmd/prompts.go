package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/DevSymphony/fmtsetup/internal/formatter"
	"github.com/DevSymphony/fmtsetup/internal/preset"
	"github.com/DevSymphony/fmtsetup/pkg/schema"
	"github.com/manifoldco/promptui"
)

// promptPreset asks for a style preset, starting on current.
func promptPreset(current string) (string, error) {
	names := preset.Names()
	items := make([]string, 0, len(names))
	cursor := 0
	for i, name := range names {
		style, err := preset.Get(name)
		if err != nil {
			return "", err
		}
		items = append(items, fmt.Sprintf("%-8s  %s", name, describeStyle(style)))
		if name == current {
			cursor = i
		}
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "▸ {{ . | cyan }}",
		Inactive: "  {{ . }}",
		Selected: "✓ {{ . | green }}",
	}

	selectPrompt := promptui.Select{
		Label:     "Which style preset",
		Items:     items,
		Templates: templates,
		Size:      len(items),
		CursorPos: cursor,
	}

	index, _, err := selectPrompt.Run()
	if err != nil {
		return "", err
	}
	return names[index], nil
}

// promptFormatters asks which formatters to configure. Detected ones are
// pre-selected.
func promptFormatters(reg *formatter.Registry, detection *schema.DetectionResult, current []string) ([]string, error) {
	statuses := make(map[string]string, len(detection.Formatters))
	for _, s := range detection.Formatters {
		statuses[s.Name] = s.Status
	}

	defaults := current
	if len(defaults) == 0 {
		defaults = detection.Available
	}

	restore := useMultiSelectTemplateNoFilter()
	defer restore()

	var selected []string
	prompt := &survey.MultiSelect{
		Message: "Formatters to configure:",
		Options: reg.Names(),
		Default: defaults,
		Description: func(value string, index int) string {
			switch statuses[value] {
			case schema.StatusAvailable:
				return "installed"
			case schema.StatusUnverified:
				return "config found, not in package.json"
			default:
				return "not installed"
			}
		},
	}

	if err := survey.AskOne(prompt, &selected, survey.WithValidator(survey.MinItems(1))); err != nil {
		return nil, err
	}
	return selected, nil
}

// confirmApply asks before anything is written.
func confirmApply() (bool, error) {
	apply := false
	prompt := &survey.Confirm{
		Message: "Apply these changes?",
		Default: true,
	}
	if err := survey.AskOne(prompt, &apply); err != nil {
		return false, err
	}
	return apply, nil
}

func describeStyle(style schema.StyleDescriptor) string {
	return fmt.Sprintf("width %d, indent %d, %s quotes, jsx %s, semicolons %s, trailing commas %s",
		style.LineWidth, style.IndentWidth, style.QuoteStyle, style.JSXQuoteStyle,
		style.Semicolons, style.TrailingCommas)
}
