// ABOUTME: Root Cobra command for vitalog CLI.
// ABOUTME: Handles config loading and store lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harperreed/vitalog/internal/config"
	"github.com/harperreed/vitalog/internal/store"
)

var (
	cfg *config.Config
	st  store.Store
)

var rootCmd = &cobra.Command{
	Use:   "vitalog",
	Short: "Personal health logging assistant",
	Long: `Vitalog keeps a personal health log of sleep, insulin, medication,
and exercise, and exposes it to AI assistants.

QUICK START:

  $ vitalog log insulin 10              # Log 10 units of insulin now
  $ vitalog log medication Aspirin      # Log a medication intake
  $ vitalog log exercise Running 30     # Log 30 minutes of running
  $ vitalog sleep tuesday 7.5           # Record Tuesday's sleep hours
  $ vitalog records                     # Show everything

EDITING:

  $ vitalog update medication aspirin --time 09:00   # Find by search term
  $ vitalog delete insulin <id>                      # Delete by entry ID

AI INTEGRATION:

  Run 'vitalog mcp' to start the Model Context Protocol server for use with
  Claude Desktop or other MCP-compatible AI assistants.

  Run 'vitalog serve' to start the HTTP server used by the web UI and by the
  talking-avatar agent's tool callbacks.

DATA STORAGE:

  The health document lives in a single JSON file under
  ~/.local/share/vitalog by default. Alternative backends (sqlite, charm)
  can be selected in ~/.config/vitalog/config.json or via VITALOG_BACKEND.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip store init for commands that don't need it
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		st, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if st != nil {
			return st.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
