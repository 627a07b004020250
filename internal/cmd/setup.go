package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/DevSymphony/fmtsetup/internal/formatter"
	"github.com/DevSymphony/fmtsetup/internal/setup"
	"github.com/DevSymphony/fmtsetup/internal/ui"
	"github.com/DevSymphony/fmtsetup/internal/util/config"
	"github.com/DevSymphony/fmtsetup/pkg/schema"
	"github.com/spf13/cobra"
)

var (
	setupTargetDir      string
	setupPreset         string
	setupFormatters     []string
	setupNoScripts      bool
	setupDryRun         bool
	setupForce          bool
	setupInteractive    bool
	setupJSON           bool
	setupSaveConfig     bool
	setupLineWidth      int
	setupIndentWidth    int
	setupQuote          string
	setupJSXQuote       string
	setupSemicolons     string
	setupTrailingCommas string
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Generate formatter configs and scripts",
	Long: `Detect the formatters a project uses, generate their config files from a
style preset, and add format scripts to package.json.

Existing config files and scripts are never overwritten. A script that
already exists with a different command is reported as a conflict and left
alone. Use --force to replace existing config files.

Defaults are read from .fmtsetup.json in the target directory; flags given
on the command line take precedence.`,
	Example: `  fmtsetup setup
  fmtsetup setup --preset strict --dry-run
  fmtsetup setup --formatters prettier,eslint --line-width 90
  fmtsetup setup --interactive`,
	Args: cobra.NoArgs,
	RunE: runSetup,
}

func init() {
	f := setupCmd.Flags()
	f.StringVarP(&setupTargetDir, "target-dir", "C", ".", "project directory containing package.json")
	f.StringVarP(&setupPreset, "preset", "p", "", "style preset: standard, strict, relaxed (default standard)")
	f.StringSliceVarP(&setupFormatters, "formatters", "f", nil, "formatters to configure (default: every detected formatter)")
	f.BoolVar(&setupNoScripts, "no-scripts", false, "do not add scripts to package.json")
	f.BoolVar(&setupDryRun, "dry-run", false, "show planned changes without writing")
	f.BoolVar(&setupForce, "force", false, "overwrite existing config files")
	f.BoolVarP(&setupInteractive, "interactive", "i", false, "choose preset and formatters interactively")
	f.BoolVar(&setupJSON, "json", false, "print the result as JSON")
	f.BoolVar(&setupSaveConfig, "save-config", false, "save the chosen preset and formatters to .fmtsetup.json")

	f.IntVar(&setupLineWidth, "line-width", 0, "override the preset line width")
	f.IntVar(&setupIndentWidth, "indent-width", 0, "override the preset indent width")
	f.StringVar(&setupQuote, "quote", "", "override the quote style: single, double")
	f.StringVar(&setupJSXQuote, "jsx-quote", "", "override the JSX quote style: single, double")
	f.StringVar(&setupSemicolons, "semicolons", "", "override the semicolon policy: always, as-needed")
	f.StringVar(&setupTrailingCommas, "trailing-commas", "", "override the trailing comma policy: all, es5, none")
}

func runSetup(cmd *cobra.Command, args []string) error {
	printer := ui.New(cmd.OutOrStdout())

	logger := newLogger(cmd)
	defer func() { _ = logger.Close() }()

	cfg, err := config.LoadProjectConfig(setupTargetDir)
	if err != nil {
		return abortSetup(printer, err)
	}
	if config.ProjectConfigExists(setupTargetDir) {
		logger.Printf("config: loaded %s", config.GetProjectConfigPath(setupTargetDir))
	}

	opts := cfg.Options(setupTargetDir)
	applySetupFlags(cmd, &opts)
	opts.Logger = logger.Logger

	if setupInteractive {
		proceed, err := runInteractive(cmd, printer, &opts)
		if err != nil {
			return abortSetup(printer, err)
		}
		if !proceed {
			return nil
		}
	}

	result, runErr := setup.Run(opts)

	if setupJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	} else {
		printSetupResult(printer, result, runErr)
	}

	if runErr != nil {
		if opts.DryRun {
			// Dry runs report problems without failing.
			return nil
		}
		return fmt.Errorf("setup failed: %w", runErr)
	}

	if setupSaveConfig && !opts.DryRun {
		if err := saveProjectConfig(opts); err != nil {
			return err
		}
		if !setupJSON {
			printer.OK(fmt.Sprintf("Saved %s", config.GetProjectConfigPath(opts.TargetDir)))
		}
	}

	return nil
}

// abortSetup reports a failure that happens before setup runs.
// Dry runs only report it.
func abortSetup(printer *ui.Printer, err error) error {
	if !setupDryRun {
		return err
	}
	printer.Error(err.Error())
	return nil
}

// applySetupFlags layers explicitly set flags over the project config.
func applySetupFlags(cmd *cobra.Command, opts *schema.SetupOptions) {
	f := cmd.Flags()

	opts.TargetDir = setupTargetDir
	opts.DryRun = setupDryRun
	if f.Changed("preset") {
		opts.Preset = setupPreset
	}
	if f.Changed("formatters") {
		opts.Formatters = setupFormatters
	}
	if f.Changed("no-scripts") {
		opts.UpdateScripts = !setupNoScripts
	}
	if f.Changed("force") {
		opts.Force = setupForce
	}

	var flagStyle schema.StyleOverrides
	if f.Changed("line-width") {
		v := setupLineWidth
		flagStyle.LineWidth = &v
	}
	if f.Changed("indent-width") {
		v := setupIndentWidth
		flagStyle.IndentWidth = &v
	}
	if f.Changed("quote") {
		v := setupQuote
		flagStyle.QuoteStyle = &v
	}
	if f.Changed("jsx-quote") {
		v := setupJSXQuote
		flagStyle.JSXQuoteStyle = &v
	}
	if f.Changed("semicolons") {
		v := setupSemicolons
		flagStyle.Semicolons = &v
	}
	if f.Changed("trailing-commas") {
		v := setupTrailingCommas
		flagStyle.TrailingCommas = &v
	}
	opts.Overrides = config.MergeOverrides(opts.Overrides, &flagStyle)
}

// runInteractive lets the user pick a preset and formatters, previews the
// run and asks for confirmation. It reports whether to proceed.
func runInteractive(cmd *cobra.Command, printer *ui.Printer, opts *schema.SetupOptions) (bool, error) {
	detection, err := setup.Detect(opts.TargetDir)
	if err != nil {
		return false, err
	}
	printDetection(printer, detection)

	name, err := promptPreset(opts.Preset)
	if err != nil {
		printer.Info("Setup cancelled")
		return false, nil
	}
	opts.Preset = name

	selected, err := promptFormatters(formatter.Global(), detection, opts.Formatters)
	if err != nil {
		printer.Info("Setup cancelled")
		return false, nil
	}
	opts.Formatters = selected

	if opts.DryRun {
		return true, nil
	}

	preview := *opts
	preview.DryRun = true
	result, runErr := setup.Run(preview)
	printSetupResult(printer, result, runErr)
	if runErr != nil {
		return false, fmt.Errorf("setup failed: %w", runErr)
	}

	apply, err := confirmApply()
	if err != nil || !apply {
		printer.Info("Setup cancelled")
		return false, nil
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return true, nil
}

func saveProjectConfig(opts schema.SetupOptions) error {
	cfg, err := config.LoadProjectConfig(opts.TargetDir)
	if err != nil {
		return err
	}

	cfg.Preset = opts.Preset
	cfg.Formatters = opts.Formatters
	cfg.Style = opts.Overrides
	if opts.UpdateScripts {
		cfg.Scripts = nil
	} else {
		disabled := false
		cfg.Scripts = &disabled
	}

	return config.SaveProjectConfig(opts.TargetDir, cfg)
}
