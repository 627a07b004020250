package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/DevSymphony/fmtsetup/internal/setup"
	"github.com/DevSymphony/fmtsetup/internal/ui"
	"github.com/DevSymphony/fmtsetup/pkg/schema"
	"github.com/spf13/cobra"
)

var (
	detectTargetDir string
	detectJSON      bool
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Report which formatters a project uses",
	Long: `Read package.json and report, for every supported formatter, whether it is
installed, configured without being installed, or missing. Formatters that
claim the same responsibility are reported as conflicts.

Nothing is written.`,
	Example: `  fmtsetup detect
  fmtsetup detect --target-dir ./web --json`,
	Args: cobra.NoArgs,
	RunE: runDetect,
}

func init() {
	detectCmd.Flags().StringVarP(&detectTargetDir, "target-dir", "C", ".", "project directory containing package.json")
	detectCmd.Flags().BoolVar(&detectJSON, "json", false, "print the result as JSON")
}

// runDetect always exits 0; problems are reported, not returned.
func runDetect(cmd *cobra.Command, args []string) error {
	printer := ui.New(cmd.OutOrStdout())

	logger := newLogger(cmd)
	defer func() { _ = logger.Close() }()
	logger.Printf("detect: %s", detectTargetDir)

	result, err := setup.Detect(detectTargetDir)
	if err != nil {
		if detectJSON {
			data, _ := json.Marshal(map[string]string{"error": err.Error()})
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		}
		printer.Error(err.Error())
		return nil
	}

	if detectJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	printDetection(printer, result)
	for _, w := range result.Warnings {
		if w.Code == schema.WarnFormatterConflict {
			continue
		}
		printer.Warn(w.Message)
	}
	return nil
}
