package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gnana997/uimanifest/pkg/manifest"
	mcpserver "github.com/gnana997/uimanifest/pkg/mcp"
	"github.com/gnana997/uimanifest/pkg/mcplog"
	"github.com/gnana997/uimanifest/pkg/util"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the generated manifests over MCP (stdio)",
		Long: `Load <out>/manifest.json and <out>/tokens.json and expose them to MCP
clients over stdin/stdout. Run 'uimanifest manifest' and 'uimanifest tokens'
first.

Tools:
  list_components   components, optionally filtered by category or keyword
  get_component     one component by name or by one of its exports
  get_tokens        design tokens, optionally filtered by type
  get_stats         coverage and token counts

Diagnostics go to stderr; --log-file appends one JSON line per tool call.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
	cmd.Flags().String("log-file", "", "append a JSONL record of every tool call to this file")
	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger := util.NewLogger(cfg.LoggerConfig(cmd.ErrOrStderr()))

	qs, err := manifest.LoadAndQuery(cfg.OutDir())
	if err != nil {
		return fmt.Errorf("failed to load manifests (run 'uimanifest manifest' and 'uimanifest tokens' first): %w", err)
	}

	callLog, err := mcplog.NewLogger(cfg.LogFilePath())
	if err != nil {
		return err
	}
	if callLog != nil {
		defer callLog.Close()
		logger.Info("tool call log enabled", "path", cfg.LogFilePath())
	}

	srv := mcpserver.NewServer(qs, version, callLog, logger)
	if err := srv.ServeStdio(); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
