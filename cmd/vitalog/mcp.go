// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harperreed/vitalog/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to interact with your health data through
a standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "vitalog": {
        "command": "vitalog",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  logExercise          Log an exercise session
  logInsulin           Log an insulin dosage
  logMedication        Log a medication intake
  updateSleepLog       Update one day of the sleep log
  updateHealthRecord   Update a record found by search term
  deleteHealthRecord   Delete a record by ID

AVAILABLE RESOURCES:

  health://records     The full health document
  health://sleep       Hours slept per weekday`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(st)
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
