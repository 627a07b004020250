package cmd

import (
	"fmt"
	"os"

	"github.com/DevSymphony/fmtsetup/internal/logging"
	"github.com/spf13/cobra"
)

var (
	// verbose is a global flag for verbose output
	verbose bool

	// logFile is a global flag for rotating log output
	logFile string
)

var rootCmd = &cobra.Command{
	Use:   "fmtsetup",
	Short: "fmtsetup - Formatter configuration for JavaScript projects",
	Long: `fmtsetup configures code formatters and linters for a JavaScript project.

Features:
  - Detects Prettier, Biome, ESLint and remark from package.json
  - Generates config files from one style preset (standard, strict, relaxed)
  - Adds format scripts to package.json without touching existing ones
  - Never overwrites existing configuration unless --force is given
  - MCP server for LLM coding tools`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write diagnostic logs to a rotating file")

	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(presetsCmd)
	// Note: mcpCmd and versionCmd are registered in their own init()
}

// newLogger builds the diagnostic logger from the global flags.
func newLogger(cmd *cobra.Command) *logging.Logger {
	return logging.New(logging.Options{
		Verbose: verbose,
		File:    logFile,
		Stderr:  cmd.ErrOrStderr(),
	})
}
