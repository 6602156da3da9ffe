// ABOUTME: CLI commands for health insights.
// ABOUTME: Adds, lists, and marks insights as read.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pulsekit/vitals/internal/models"
)

var (
	insightTitle      string
	insightBody       string
	insightConfidence float64
	insightListLimit  int
	insightUnreadOnly bool
)

var insightCmd = &cobra.Command{
	Use:   "insight",
	Short: "Manage health insights",
}

var insightAddCmd = &cobra.Command{
	Use:   "add <type> <severity>",
	Short: "Record an insight",
	Long: `Record a generated health insight.

Severity is one of: info, low, medium, high, critical. Type is an open
category; common values are nutrition, medical, lifestyle, preventive.

Examples:
  vitals insight add nutrition low --title "Low water intake this week"
  vitals insight add medical critical --title "BP consistently elevated" --confidence 0.9`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		insightType, severity := args[0], args[1]
		if !models.IsValidSeverity(severity) {
			return fmt.Errorf("unknown severity: %s (use info, low, medium, high, or critical)", severity)
		}
		if insightTitle == "" {
			return fmt.Errorf("--title is required")
		}

		i := models.NewInsight(userID, insightType, models.Severity(severity), insightTitle, insightConfidence)
		if insightBody != "" {
			i.WithBody(insightBody)
		}

		if err := store.AddInsight(i); err != nil {
			return fmt.Errorf("failed to add insight: %w", err)
		}

		trackActivity("insights")
		color.Green("✓ Added %s insight (%s)", insightType, severity)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(i.ID.String()[:8]))
		return nil
	},
}

var insightListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List insights",
	RunE: func(cmd *cobra.Command, args []string) error {
		insights, err := store.ListInsights(userID, insightListLimit)
		if err != nil {
			return fmt.Errorf("failed to list insights: %w", err)
		}

		if insightUnreadOnly {
			var unread []*models.Insight
			for _, i := range insights {
				if !i.Read {
					unread = append(unread, i)
				}
			}
			insights = unread
		}

		if len(insights) == 0 {
			fmt.Println("No insights found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, i := range insights {
			marker := color.YellowString("●")
			if i.Read {
				marker = faint.Sprint("○")
			}
			fmt.Printf("%s %s %s %s %s %s\n",
				marker,
				faint.Sprint(i.ID.String()[:8]),
				faint.Sprint(i.CreatedAt.Format("2006-01-02")),
				padRight(i.InsightType, 12),
				severityColor(i.Severity),
				i.Title)
		}
		return nil
	},
}

var insightReadCmd = &cobra.Command{
	Use:   "read <id>",
	Short: "Mark an insight as read",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := store.MarkInsightRead(userID, args[0]); err != nil {
			return fmt.Errorf("failed to mark insight read: %w", err)
		}
		color.Green("✓ Marked %s as read", args[0])
		return nil
	},
}

func severityColor(s models.Severity) string {
	label := padRight(string(s), 8)
	switch s {
	case models.SeverityCritical:
		return color.RedString(label)
	case models.SeverityHigh:
		return color.MagentaString(label)
	case models.SeverityMedium:
		return color.YellowString(label)
	default:
		return color.New(color.Faint).Sprint(label)
	}
}

func init() {
	insightAddCmd.Flags().StringVar(&insightTitle, "title", "", "short insight title (required)")
	insightAddCmd.Flags().StringVar(&insightBody, "body", "", "long-form insight text")
	insightAddCmd.Flags().Float64Var(&insightConfidence, "confidence", 0.5, "confidence in [0,1]")
	insightListCmd.Flags().IntVarP(&insightListLimit, "limit", "n", 20, "max number of results")
	insightListCmd.Flags().BoolVar(&insightUnreadOnly, "unread", false, "show only unread insights")

	insightCmd.AddCommand(insightAddCmd)
	insightCmd.AddCommand(insightListCmd)
	insightCmd.AddCommand(insightReadCmd)
	rootCmd.AddCommand(insightCmd)
}
