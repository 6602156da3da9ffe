// ABOUTME: CLI commands for exporting and importing raw health records.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pulsekit/vitals/internal/models"
	"github.com/pulsekit/vitals/internal/storage"
)

var (
	exportOutput string
	exportSince  string
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export raw health records",
	Long: `Export raw health records in various formats.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  yaml       YAML export (human-readable)
  markdown   Health logs as a Markdown table

EXAMPLES:

  vitals export json                        # Export all records as JSON
  vitals export json -o backup.json         # Save to file
  vitals export markdown --since 2025-01-01 # Logs from 2025 onward`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		exported, err := store.GetAllData(userID)
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		var data []byte
		switch format {
		case "json":
			data, err = storage.MarshalExportJSON(exported)
		case "yaml":
			data, err = storage.MarshalExportYAML(exported)
		case "markdown":
			var since *time.Time
			if exportSince != "" {
				t, err := time.Parse(models.DateLayout, exportSince)
				if err != nil {
					return fmt.Errorf("invalid date format: %s (use YYYY-MM-DD)", exportSince)
				}
				since = &t
			}
			data = []byte(storage.RenderMarkdown(exported, since))
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", format)
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}

		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import health records from JSON",
	Long: `Import health records from a previously exported JSON file.
Duplicate records (same ID) will cause an error; health logs upsert.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		data, err := storage.UnmarshalExportJSON(raw)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		if err := store.ImportData(data); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported from %s", args[0])
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().StringVar(&exportSince, "since", "", "only include data since date (YYYY-MM-DD, markdown only)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
