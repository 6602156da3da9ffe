// ABOUTME: CLI command for computing and rendering health metrics.
// ABOUTME: Renders the aggregate HealthMetrics structure for a time range.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pulsekit/vitals/internal/analytics"
)

var (
	metricsRange string
	metricsJSON  bool
)

var metricsCmd = &cobra.Command{
	Use:     "metrics",
	Aliases: []string{"m"},
	Short:   "Compute aggregate health metrics",
	Long: `Compute aggregate health metrics over a time range: health score,
scan counts, per-metric trends, medication adherence, and an insight
summary.

Ranges: 7d, 30d, 90d, 1y (default 30d).

Examples:
  vitals metrics
  vitals metrics --range 7d
  vitals metrics --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rng := resolveRange(metricsRange)

		metrics, err := agg.GetHealthMetrics(context.Background(), userID, rng)
		if err != nil {
			return err
		}

		if metricsJSON {
			data, err := json.MarshalIndent(metrics, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal metrics: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		renderMetrics(string(rng), metrics)
		return nil
	},
}

func renderMetrics(period string, m *analytics.HealthMetrics) {
	faint := color.New(color.Faint)
	bold := color.New(color.Bold)

	bold.Printf("Health metrics (%s)\n\n", period)
	fmt.Printf("  Health score      %s\n", scoreColor(m.HealthScore))
	fmt.Printf("  Med. adherence    %d%%\n", m.MedicationAdherence)
	fmt.Printf("  Total scans       %d", m.TotalScans)
	faint.Printf("  (medical %d, food %d, medication %d)\n",
		m.ScansByType["medical"], m.ScansByType["food"], m.ScansByType["medication"])

	fmt.Printf("  Insights          %d\n", m.InsightsSummary.Total)
	for _, sev := range sortedKeys(m.InsightsSummary.BySeverity) {
		faint.Printf("    %s %d\n", padRight(sev, 10), m.InsightsSummary.BySeverity[sev])
	}

	fmt.Println()
	faint.Printf("  Trend points: weight %d, bp %d, mood %d, energy %d\n",
		len(m.HealthTrends.Weight), len(m.HealthTrends.BloodPressure),
		len(m.HealthTrends.Mood), len(m.HealthTrends.Energy))
}

func scoreColor(score int) string {
	s := fmt.Sprintf("%d/100", score)
	switch {
	case score >= 80:
		return color.GreenString(s)
	case score >= 60:
		return color.YellowString(s)
	default:
		return color.RedString(s)
	}
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func init() {
	metricsCmd.Flags().StringVarP(&metricsRange, "range", "r", "", "time range: 7d, 30d, 90d, 1y")
	metricsCmd.Flags().BoolVar(&metricsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(metricsCmd)
}
