package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/DevSymphony/fmtsetup/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpTargetDir string

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server to integrate with LLM tools",
	Long: `Start Model Context Protocol (MCP) server.
LLM-based coding tools can detect and configure formatters through stdio.

Tools provided by MCP server:
- detect_formatters: Report formatter availability and conflicts
- list_presets: List the built-in style presets
- setup_formatters: Generate configs and scripts from a preset

Communicates via stdio for integration with Claude Desktop, Cursor, and other MCP clients.`,
	Example: `  fmtsetup mcp
  fmtsetup mcp --target-dir ./web`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)

	mcpCmd.Flags().StringVarP(&mcpTargetDir, "target-dir", "C", ".", "project directory tool calls default to")
}

func runMCP(cmd *cobra.Command, args []string) error {
	dir, err := filepath.Abs(mcpTargetDir)
	if err != nil {
		return fmt.Errorf("failed to resolve target directory: %w", err)
	}

	logger := newLogger(cmd)
	defer func() { _ = logger.Close() }()

	server := mcp.NewServer(dir, version, logger.Logger)
	return server.Start()
}
