package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/DevSymphony/fmtsetup/internal/preset"
	"github.com/DevSymphony/fmtsetup/internal/ui"
	"github.com/DevSymphony/fmtsetup/pkg/fmtsetup"
	"github.com/spf13/cobra"
)

var presetsJSON bool

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in style presets",
	Args:  cobra.NoArgs,
	RunE:  runPresets,
}

func init() {
	presetsCmd.Flags().BoolVar(&presetsJSON, "json", false, "print the presets as JSON")
}

func runPresets(cmd *cobra.Command, args []string) error {
	entries := fmtsetup.Presets()

	if presetsJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode presets: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	printer := ui.New(cmd.OutOrStdout())
	for _, e := range entries {
		title := e.Name
		if e.Name == preset.Standard {
			title += " (default)"
		}
		printer.Title("Preset", title)
		printer.Indent(describeStyle(e.Style))
	}
	return nil
}
