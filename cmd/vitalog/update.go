// ABOUTME: CLI command for updating an entry found by free-text search.
// ABOUTME: Surfaces the resolver's disambiguation outcome when multiple match.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/vitalog/internal/models"
	"github.com/harperreed/vitalog/internal/resolver"
)

var (
	updateTime     string
	updateDosage   string
	updateName     string
	updateActivity string
	updateDuration string
)

var updateCmd = &cobra.Command{
	Use:   "update <kind> <search-term>",
	Short: "Update a record found by search term",
	Long: `Update an insulin, medication, or exercise record located by a
case-insensitive substring search across its fields.

If the term matches more than one record, nothing changes and the matching
candidates are listed so you can retry with a more specific term (or delete
by ID instead). Sleep data cannot be edited this way; use 'vitalog sleep'.

EXAMPLES:

  vitalog update medication aspirin --time 09:00
  vitalog update insulin "10 units" --dosage 12
  vitalog update exercise basketball --duration 45`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		patch := models.Patch{}
		if cmd.Flags().Changed("time") {
			patch.Time = &updateTime
		}
		if cmd.Flags().Changed("dosage") {
			patch.Dosage = &updateDosage
		}
		if cmd.Flags().Changed("name") {
			patch.Name = &updateName
		}
		if cmd.Flags().Changed("activity") {
			patch.Activity = &updateActivity
		}
		if cmd.Flags().Changed("duration") {
			patch.Duration = &updateDuration
		}
		if patch.IsEmpty() {
			return fmt.Errorf("nothing to update: pass at least one of --time, --dosage, --name, --activity, --duration")
		}

		res := resolver.New(st)
		msg, err := res.ResolveAndUpdate(models.RecordKind(args[0]), args[1], patch)
		if err != nil {
			return fmt.Errorf("failed to update record: %w", err)
		}

		fmt.Println(msg)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:     "delete <kind> <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a record by ID",
	Long: `Delete an insulin, medication, or exercise record by its full ID.

Deleting an ID that does not exist reports not-found and changes nothing.
There is no undo.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		res := resolver.New(st)
		msg, err := res.ResolveAndDelete(models.RecordKind(args[0]), args[1])
		if err != nil {
			return fmt.Errorf("failed to delete record: %w", err)
		}

		color.Yellow("✗ %s", msg)
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateTime, "time", "", "new time (HH:mm)")
	updateCmd.Flags().StringVar(&updateDosage, "dosage", "", "new insulin dosage")
	updateCmd.Flags().StringVar(&updateName, "name", "", "new medication name")
	updateCmd.Flags().StringVar(&updateActivity, "activity", "", "new exercise activity")
	updateCmd.Flags().StringVar(&updateDuration, "duration", "", "new exercise duration (minutes)")
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
}
