// ABOUTME: CLI command for updating the weekly sleep log.
// ABOUTME: Merges one day's hours onto the sleep map, other days untouched.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/vitalog/internal/resolver"
)

var sleepCmd = &cobra.Command{
	Use:   "sleep <day> <hours>",
	Short: "Record hours slept for a day of the week",
	Long: `Record hours slept for one day of the week. Days are lowercase English
weekday names (monday through sunday). Only the given day changes.

EXAMPLES:

  vitalog sleep monday 8
  vitalog sleep tuesday 7.5`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		res := resolver.New(st)
		msg, err := res.ReplaceSleepWeek(args[0], args[1])
		if err != nil {
			return fmt.Errorf("failed to update sleep log: %w", err)
		}

		color.Green("✓ %s", msg)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sleepCmd)
}
