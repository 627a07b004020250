package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/DevSymphony/fmtsetup/internal/formatter"
	"github.com/DevSymphony/fmtsetup/internal/setup"
	"github.com/DevSymphony/fmtsetup/pkg/fmtsetup"
	"github.com/DevSymphony/fmtsetup/pkg/schema"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server is a MCP (Model Context Protocol) server.
// It communicates via JSON-RPC over stdio.
type Server struct {
	targetDir string
	version   string
	runner    *setup.Runner
	logger    *log.Logger
}

// NewServer creates a new MCP server rooted at targetDir. Relative tool
// arguments are resolved against it.
func NewServer(targetDir, version string, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Server{
		targetDir: targetDir,
		version:   version,
		runner:    setup.New(formatter.Global()),
		logger:    logger,
	}
}

// Start starts the MCP server.
// It communicates via JSON-RPC over stdio.
func (s *Server) Start() error {
	fmt.Fprintf(os.Stderr, "fmtsetup MCP server started (stdio mode), target: %s\n", s.targetDir)
	fmt.Fprintln(os.Stderr, "Available tools: detect_formatters, list_presets, setup_formatters")

	return s.runStdioWithSDK(context.Background())
}

// RPCError is an error type used for internal error handling.
type RPCError struct {
	Code    int
	Message string
}

// DetectFormattersInput represents the input schema for the detect_formatters tool (go-sdk).
type DetectFormattersInput struct {
	TargetDir string `json:"targetDir,omitempty" jsonschema:"Project directory containing package.json (optional). Relative paths resolve against the server's target directory."`
}

// ListPresetsInput represents the input schema for the list_presets tool (go-sdk).
type ListPresetsInput struct{}

// SetupFormattersInput represents the input schema for the setup_formatters tool (go-sdk).
type SetupFormattersInput struct {
	TargetDir     string                 `json:"targetDir,omitempty" jsonschema:"Project directory containing package.json (optional)"`
	Preset        string                 `json:"preset,omitempty" jsonschema:"Style preset: standard, strict or relaxed (default: standard)"`
	Formatters    []string               `json:"formatters,omitempty" jsonschema:"Formatters to configure (optional). Empty means every detected formatter. Examples: prettier, biome, eslint, remark"`
	Style         *schema.StyleOverrides `json:"style,omitempty" jsonschema:"Per-field overrides applied on top of the preset (optional)"`
	DryRun        bool                   `json:"dryRun,omitempty" jsonschema:"Report planned changes without writing anything"`
	UpdateScripts *bool                  `json:"updateScripts,omitempty" jsonschema:"Add format scripts to package.json (default: true)"`
	Force         bool                   `json:"force,omitempty" jsonschema:"Overwrite existing config files"`
}

// runStdioWithSDK runs a protocol-compliant MCP server over stdio using the official go-sdk.
func (s *Server) runStdioWithSDK(ctx context.Context) error {
	server := sdkmcp.NewServer(&sdkmcp.Implementation{
		Name:    "fmtsetup",
		Version: s.version,
	}, nil)

	// Tool: detect_formatters
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "detect_formatters",
		Description: "Report which formatters and linters (prettier, biome, eslint, remark) a JavaScript project depends on, including conflicts and the package manager in use.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input DetectFormattersInput) (*sdkmcp.CallToolResult, any, error) {
		text, rpcErr := s.handleDetectFormatters(input)
		return toolResult(text, rpcErr), nil, nil
	})

	// Tool: list_presets
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_presets",
		Description: "List the built-in style presets and the formatting values each one resolves to.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input ListPresetsInput) (*sdkmcp.CallToolResult, any, error) {
		text, rpcErr := s.handleListPresets()
		return toolResult(text, rpcErr), nil, nil
	})

	// Tool: setup_formatters
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "setup_formatters",
		Description: "Generate formatter config files from a style preset and add format scripts to package.json. Existing configs and scripts are never overwritten unless force is set. Use dryRun to preview.",
	}, func(ctx context.Context, req *sdkmcp.CallToolRequest, input SetupFormattersInput) (*sdkmcp.CallToolResult, any, error) {
		text, rpcErr := s.handleSetupFormatters(input)
		return toolResult(text, rpcErr), nil, nil
	})

	// Run the server over stdio until the client disconnects
	return server.Run(ctx, &sdkmcp.StdioTransport{})
}

func toolResult(text string, rpcErr *RPCError) *sdkmcp.CallToolResult {
	if rpcErr != nil {
		if text == "" {
			text = rpcErr.Message
		}
		return &sdkmcp.CallToolResult{
			IsError: true,
			Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: text}},
		}
	}
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: text}},
	}
}

// resolveDir resolves dir against the server's target directory.
func (s *Server) resolveDir(dir string) string {
	if dir == "" {
		return s.targetDir
	}
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(s.targetDir, dir)
}

// handleDetectFormatters handles detect_formatters requests.
func (s *Server) handleDetectFormatters(input DetectFormattersInput) (string, *RPCError) {
	dir := s.resolveDir(input.TargetDir)
	s.logger.Printf("mcp: detect_formatters %s", dir)

	result, err := s.runner.Detect(dir)
	if err != nil {
		return "", &RPCError{Code: -32603, Message: fmt.Sprintf("detection failed: %v", err)}
	}
	return encode(result)
}

// handleListPresets handles list_presets requests.
func (s *Server) handleListPresets() (string, *RPCError) {
	return encode(fmtsetup.Presets())
}

// handleSetupFormatters handles setup_formatters requests. A fatal run still
// returns the partial report alongside the error.
func (s *Server) handleSetupFormatters(input SetupFormattersInput) (string, *RPCError) {
	opts := schema.SetupOptions{
		TargetDir:     s.resolveDir(input.TargetDir),
		Preset:        input.Preset,
		Overrides:     input.Style,
		Formatters:    input.Formatters,
		UpdateScripts: input.UpdateScripts == nil || *input.UpdateScripts,
		DryRun:        input.DryRun,
		Force:         input.Force,
		Logger:        s.logger,
	}
	s.logger.Printf("mcp: setup_formatters %s preset=%q dryRun=%t", opts.TargetDir, opts.Preset, opts.DryRun)

	result, runErr := s.runner.Run(opts)
	text, rpcErr := encode(result)
	if rpcErr != nil {
		return "", rpcErr
	}
	if runErr != nil {
		return text, &RPCError{Code: -32603, Message: runErr.Error()}
	}
	return text, nil
}

func encode(v any) (string, *RPCError) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", &RPCError{Code: -32603, Message: fmt.Sprintf("failed to encode result: %v", err)}
	}
	return string(data), nil
}
