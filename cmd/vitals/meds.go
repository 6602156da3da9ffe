// ABOUTME: CLI commands for medication schedules and intakes.
// ABOUTME: Schedules plus taken doses drive the adherence metric.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pulsekit/vitals/internal/models"
)

var (
	medDosage string
	medDoses  int
	medStart  string
	medEnd    string
)

var medsCmd = &cobra.Command{
	Use:   "meds",
	Short: "Manage medication schedules and doses",
}

var medsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a medication schedule",
	Long: `Add a medication schedule. Adherence compares logged doses against
this schedule.

Examples:
  vitals meds add lisinopril --doses 1 --dosage 10mg
  vitals meds add amoxicillin --doses 3 --start 2025-03-01 --end 2025-03-10`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m := models.NewMedication(userID, args[0])
		if medDosage != "" {
			m.WithDosage(medDosage)
		}
		if medDoses > 0 {
			m.WithDosesPerDay(medDoses)
		}
		if medStart != "" {
			t, err := time.Parse(models.DateLayout, medStart)
			if err != nil {
				return fmt.Errorf("invalid start date: %s (use YYYY-MM-DD)", medStart)
			}
			m.WithStartDate(t)
		}
		if medEnd != "" {
			t, err := time.Parse(models.DateLayout, medEnd)
			if err != nil {
				return fmt.Errorf("invalid end date: %s (use YYYY-MM-DD)", medEnd)
			}
			m.WithEndDate(t)
		}

		if err := store.AddMedication(m); err != nil {
			return fmt.Errorf("failed to add medication: %w", err)
		}

		trackActivity("medications")
		color.Green("✓ Added %s (%d dose(s)/day)", m.Name, m.DosesPerDay)
		return nil
	},
}

var medsTakeCmd = &cobra.Command{
	Use:   "take <name-or-id>",
	Short: "Log a dose as taken",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		meds, err := store.ListMedications(userID)
		if err != nil {
			return fmt.Errorf("failed to list medications: %w", err)
		}

		med := findMedication(meds, args[0])
		if med == nil {
			return fmt.Errorf("medication not found: %s", args[0])
		}

		if err := store.LogIntake(models.NewIntake(userID, med.ID)); err != nil {
			return fmt.Errorf("failed to log intake: %w", err)
		}

		trackActivity("medications")
		color.Green("✓ Logged dose of %s", med.Name)
		return nil
	},
}

var medsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List medication schedules",
	RunE: func(cmd *cobra.Command, args []string) error {
		meds, err := store.ListMedications(userID)
		if err != nil {
			return fmt.Errorf("failed to list medications: %w", err)
		}

		if len(meds) == 0 {
			fmt.Println("No medications found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, m := range meds {
			dosage := ""
			if m.Dosage != nil {
				dosage = faint.Sprintf(" %s", *m.Dosage)
			}
			schedule := fmt.Sprintf("%d/day from %s", m.DosesPerDay, m.StartDate.Format(models.DateLayout))
			if m.EndDate != nil {
				schedule += " to " + m.EndDate.Format(models.DateLayout)
			}
			fmt.Printf("%s %s%s  %s\n",
				faint.Sprint(m.ID.String()[:8]),
				padRight(m.Name, 16),
				dosage,
				faint.Sprint(schedule))
		}
		return nil
	},
}

// findMedication matches by exact name first, then by ID prefix.
func findMedication(meds []*models.Medication, nameOrID string) *models.Medication {
	for _, m := range meds {
		if strings.EqualFold(m.Name, nameOrID) {
			return m
		}
	}
	for _, m := range meds {
		if strings.HasPrefix(m.ID.String(), nameOrID) {
			return m
		}
	}
	return nil
}

func init() {
	medsAddCmd.Flags().StringVar(&medDosage, "dosage", "", "dosage description (e.g. 10mg)")
	medsAddCmd.Flags().IntVar(&medDoses, "doses", 1, "scheduled doses per day")
	medsAddCmd.Flags().StringVar(&medStart, "start", "", "schedule start date (YYYY-MM-DD, default today)")
	medsAddCmd.Flags().StringVar(&medEnd, "end", "", "schedule end date (YYYY-MM-DD)")

	medsCmd.AddCommand(medsAddCmd)
	medsCmd.AddCommand(medsTakeCmd)
	medsCmd.AddCommand(medsListCmd)
	rootCmd.AddCommand(medsCmd)
}
