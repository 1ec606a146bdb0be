// ABOUTME: CLI commands for exporting and importing the health document.
// ABOUTME: Supports JSON, YAML, and Markdown formats via the export package.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/vitalog/internal/export"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:       "export [json|yaml|markdown]",
	Short:     "Export health data",
	ValidArgs: []string{"json", "yaml", "markdown"},
	Args:      cobra.MaximumNArgs(1),
	Long: `Export the full health document, suitable for backup or for importing
into another backend. JSON exports round-trip through 'vitalog import'.

EXAMPLES:

  vitalog export                        # JSON to stdout
  vitalog export yaml                   # YAML to stdout
  vitalog export markdown -o report.md  # Markdown report to file`,
	RunE: func(cmd *cobra.Command, args []string) error {
		format := "json"
		if len(args) > 0 {
			format = args[0]
		}

		env := export.NewEnvelope(st.Load())

		var data []byte
		var err error
		switch format {
		case "json":
			data, err = env.JSON()
		case "yaml":
			data, err = env.YAML()
		case "markdown":
			data = []byte(env.Markdown())
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", format)
		}
		if err != nil {
			return fmt.Errorf("failed to export: %w", err)
		}

		if exportOutput == "" {
			fmt.Println(string(data))
			return nil
		}

		if err := os.WriteFile(exportOutput, data, 0600); err != nil {
			return fmt.Errorf("failed to write %s: %w", exportOutput, err)
		}
		color.Green("✓ Exported to %s", exportOutput)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import health data from a JSON export",
	Long: `Import a health document from a JSON export file, replacing the current
document. Accepts both enveloped exports and bare document JSON.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}

		doc, err := export.ParseJSON(data)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", args[0], err)
		}

		if err := st.Save(doc); err != nil {
			return fmt.Errorf("failed to save imported data: %w", err)
		}

		color.Green("✓ Imported %d insulin, %d medication, %d exercise entries",
			len(doc.Insulin), len(doc.Medication), len(doc.Exercise))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
