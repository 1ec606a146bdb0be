// ABOUTME: CLI commands for logging insulin, medication, and exercise entries.
// ABOUTME: Time-bearing entries default to the current wall-clock time.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/vitalog/internal/models"
	"github.com/harperreed/vitalog/internal/resolver"
)

var logAt string

var logCmd = &cobra.Command{
	Use:     "log",
	Aliases: []string{"l"},
	Short:   "Log a health entry",
	Long: `Log a health entry: insulin, medication, or exercise.

EXAMPLES:

  vitalog log insulin 10                 # 10 units, right now
  vitalog log insulin 8 --at 07:30       # 8 units at a specific time
  vitalog log medication Aspirin
  vitalog log medication Metformin --at 21:00
  vitalog log exercise Running 30        # 30 minutes of running`,
}

var logInsulinCmd = &cobra.Command{
	Use:   "insulin <dosage>",
	Short: "Log an insulin dosage",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res := resolver.New(st)
		msg, err := res.AppendEntry(models.KindInsulin, resolver.EntryFields{
			Dosage: args[0],
			Time:   logAt,
		})
		if err != nil {
			return fmt.Errorf("failed to log insulin: %w", err)
		}

		color.Green("✓ %s", msg)
		return nil
	},
}

var logMedicationCmd = &cobra.Command{
	Use:     "medication <name>",
	Aliases: []string{"med"},
	Short:   "Log a medication intake",
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res := resolver.New(st)
		msg, err := res.AppendEntry(models.KindMedication, resolver.EntryFields{
			Name: strings.Join(args, " "),
			Time: logAt,
		})
		if err != nil {
			return fmt.Errorf("failed to log medication: %w", err)
		}

		color.Green("✓ %s", msg)
		return nil
	},
}

var logExerciseCmd = &cobra.Command{
	Use:     "exercise <activity> <duration>",
	Aliases: []string{"ex"},
	Short:   "Log an exercise session (duration in minutes)",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		res := resolver.New(st)
		msg, err := res.AppendEntry(models.KindExercise, resolver.EntryFields{
			Activity: args[0],
			Duration: args[1],
		})
		if err != nil {
			return fmt.Errorf("failed to log exercise: %w", err)
		}

		color.Green("✓ %s", msg)
		return nil
	},
}

func init() {
	logCmd.PersistentFlags().StringVar(&logAt, "at", "", "time of the entry (HH:mm), defaults to now")
	logCmd.AddCommand(logInsulinCmd)
	logCmd.AddCommand(logMedicationCmd)
	logCmd.AddCommand(logExerciseCmd)
	rootCmd.AddCommand(logCmd)
}
