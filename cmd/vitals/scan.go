// ABOUTME: CLI commands for scan records.
// ABOUTME: Adds and lists medical, food, and medication scans.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pulsekit/vitals/internal/models"
)

var (
	scanLabel     string
	scanProcessed bool
	scanListLimit int
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Manage scan records",
}

var scanAddCmd = &cobra.Command{
	Use:   "add <type>",
	Short: "Record a scan",
	Long: `Record a scan artifact. Types: medical, food, medication.

Examples:
  vitals scan add food
  vitals scan add medical --label "Chest X-ray" --processed`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scanType := args[0]
		if !models.IsValidScanType(scanType) {
			return fmt.Errorf("unknown scan type: %s (use medical, food, or medication)", scanType)
		}

		s := models.NewScan(userID, models.ScanType(scanType))
		if scanLabel != "" {
			s.WithLabel(scanLabel)
		}
		if scanProcessed {
			s.MarkProcessed()
		}

		if err := store.AddScan(s); err != nil {
			return fmt.Errorf("failed to add scan: %w", err)
		}

		trackActivity("scans")
		color.Green("✓ Added %s scan", scanType)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(s.ID.String()[:8]))
		return nil
	},
}

var scanListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List scans",
	RunE: func(cmd *cobra.Command, args []string) error {
		scans, err := store.ListScans(userID, scanListLimit)
		if err != nil {
			return fmt.Errorf("failed to list scans: %w", err)
		}

		if len(scans) == 0 {
			fmt.Println("No scans found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, s := range scans {
			status := faint.Sprint("pending")
			if s.Processed {
				status = color.GreenString("processed")
			}
			label := ""
			if s.Label != nil {
				label = faint.Sprintf(" (%s)", *s.Label)
			}
			fmt.Printf("%s %s %s %s%s\n",
				faint.Sprint(s.ID.String()[:8]),
				faint.Sprint(s.CreatedAt.Format("2006-01-02 15:04")),
				padRight(string(s.ScanType), 12),
				status,
				label)
		}
		return nil
	},
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	scanAddCmd.Flags().StringVar(&scanLabel, "label", "", "display label for the scan")
	scanAddCmd.Flags().BoolVar(&scanProcessed, "processed", false, "mark the scan as already processed")
	scanListCmd.Flags().IntVarP(&scanListLimit, "limit", "n", 20, "max number of results")

	scanCmd.AddCommand(scanAddCmd)
	scanCmd.AddCommand(scanListCmd)
	rootCmd.AddCommand(scanCmd)
}
