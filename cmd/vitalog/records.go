// ABOUTME: CLI command for viewing all health records.
// ABOUTME: Prints the sleep week and the three entry lists with ID prefixes.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/vitalog/internal/models"
)

var recordsCmd = &cobra.Command{
	Use:     "records",
	Aliases: []string{"ls", "list"},
	Short:   "Show all health records",
	Long: `Show the full health document: the weekly sleep log and the insulin,
medication, and exercise entries. Each entry line starts with an 8-character
ID prefix usable with 'vitalog delete'.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		doc := st.Load()
		faint := color.New(color.Faint)
		header := color.New(color.Bold)

		header.Println("Sleep")
		empty := true
		for _, day := range models.Days {
			if hours, ok := doc.Sleep[day]; ok {
				fmt.Printf("  %-10s %s hours\n", day, hours)
				empty = false
			}
		}
		if empty {
			fmt.Println("  (no sleep data)")
		}

		header.Println("\nInsulin")
		if len(doc.Insulin) == 0 {
			fmt.Println("  (no entries)")
		}
		for _, e := range doc.Insulin {
			fmt.Printf("  %s %s units at %s\n", faint.Sprint(idPrefix(e.ID)), e.Dosage, e.Time)
		}

		header.Println("\nMedication")
		if len(doc.Medication) == 0 {
			fmt.Println("  (no entries)")
		}
		for _, e := range doc.Medication {
			fmt.Printf("  %s %s at %s\n", faint.Sprint(idPrefix(e.ID)), e.Name, e.Time)
		}

		header.Println("\nExercise")
		if len(doc.Exercise) == 0 {
			fmt.Println("  (no entries)")
		}
		for _, e := range doc.Exercise {
			fmt.Printf("  %s %s for %s minutes\n", faint.Sprint(idPrefix(e.ID)), e.ActivityName(), e.Duration)
		}

		return nil
	},
}

func idPrefix(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func init() {
	rootCmd.AddCommand(recordsCmd)
}
