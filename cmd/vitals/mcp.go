// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/pulsekit/vitals/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant
integration. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  {
    "mcpServers": {
      "vitals": {
        "command": "vitals",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  log_health              Record daily vitals (upserts on date)
  add_scan                Record a scan artifact
  add_insight             Record a generated health insight
  take_medication         Log a medication dose as taken
  get_health_metrics      Compute aggregate metrics over a time range
  generate_health_report  Generate a full report with recommendations

AVAILABLE RESOURCES:

  vitals://metrics        30-day aggregate metrics
  vitals://report         30-day health report
  vitals://logs/recent    Last 7 days of raw health logs`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(store, userID)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
