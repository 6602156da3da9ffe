// ABOUTME: CLI command for generating health reports.
// ABOUTME: Writes the report snapshot as JSON or YAML, to stdout or a file.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	reportRange  string
	reportOutput string
	reportFormat string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a health report",
	Long: `Generate a full health report: aggregate metrics, engagement data,
trend directions, and recommendations.

Ranges: 30d, 90d, 1y (default 30d).

Examples:
  vitals report                          # JSON to stdout
  vitals report -o report.json           # Save to file
  vitals report --format yaml            # YAML instead of JSON
  vitals report --range 90d -o q1.json   # Quarterly report`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rng := resolveRange(reportRange)

		report, err := agg.GenerateHealthReport(context.Background(), userID, rng)
		if err != nil {
			return err
		}

		var data []byte
		switch reportFormat {
		case "json":
			data, err = json.MarshalIndent(report, "", "  ")
		case "yaml":
			data, err = yaml.Marshal(report)
		default:
			return fmt.Errorf("unknown format: %s (use json or yaml)", reportFormat)
		}
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}

		if reportOutput != "" {
			if err := os.WriteFile(reportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Report written to %s", reportOutput)
		} else {
			fmt.Println(string(data))
		}

		trackActivity("reports")
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVarP(&reportRange, "range", "r", "", "time range: 30d, 90d, 1y")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "output file (default: stdout)")
	reportCmd.Flags().StringVar(&reportFormat, "format", "json", "output format: json or yaml")
	rootCmd.AddCommand(reportCmd)
}
