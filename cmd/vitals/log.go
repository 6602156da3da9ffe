// ABOUTME: CLI command for logging daily vitals.
// ABOUTME: Upserts one entry per date; repeated runs update the same row.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pulsekit/vitals/internal/models"
)

var (
	logDate     string
	logWeight   float64
	logBP       string
	logHR       int
	logTemp     float64
	logMood     int
	logEnergy   int
	logSleep    float64
	logExercise int
	logWater    int
	logNotes    string
)

var logCmd = &cobra.Command{
	Use:     "log",
	Aliases: []string{"l"},
	Short:   "Log daily vitals",
	Long: `Log vitals for a calendar date. One entry exists per date; running
the command again for the same date updates that entry.

All measurements are optional — log what you have:

  vitals log --weight 82.5
  vitals log --bp 120/80 --heart-rate 62
  vitals log --mood 7 --energy 6 --sleep 7.5
  vitals log --date 2025-03-01 --exercise 45 --water 2000
  vitals log --notes "Long run this morning"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date := time.Now()
		if logDate != "" {
			t, err := time.Parse(models.DateLayout, logDate)
			if err != nil {
				return fmt.Errorf("invalid date format: %s (use YYYY-MM-DD)", logDate)
			}
			date = t
		}

		l := models.NewHealthLog(userID, date)

		if cmd.Flags().Changed("weight") {
			l.WithWeight(logWeight)
		}
		if logBP != "" {
			sys, dia, err := parseBloodPressure(logBP)
			if err != nil {
				return err
			}
			l.WithBloodPressure(sys, dia)
		}
		if cmd.Flags().Changed("heart-rate") {
			l.WithHeartRate(logHR)
		}
		if cmd.Flags().Changed("temp") {
			l.WithTemperature(logTemp)
		}
		if cmd.Flags().Changed("mood") {
			if logMood < 1 || logMood > 10 {
				return fmt.Errorf("mood must be between 1 and 10")
			}
			l.WithMood(logMood)
		}
		if cmd.Flags().Changed("energy") {
			if logEnergy < 1 || logEnergy > 10 {
				return fmt.Errorf("energy must be between 1 and 10")
			}
			l.WithEnergy(logEnergy)
		}
		if cmd.Flags().Changed("sleep") {
			l.WithSleep(logSleep)
		}
		if cmd.Flags().Changed("exercise") {
			l.WithExercise(logExercise)
		}
		if cmd.Flags().Changed("water") {
			l.WithWater(logWater)
		}
		if logNotes != "" {
			l.WithNotes(logNotes)
		}

		// Merge with any existing entry so partial updates don't erase
		// previously logged measurements for the date
		if existing, err := store.GetHealthLog(userID, date); err == nil {
			mergeLog(l, existing)
		}

		if err := store.UpsertHealthLog(l); err != nil {
			return fmt.Errorf("failed to log vitals: %w", err)
		}

		trackActivity("health-log")
		color.Green("✓ Logged vitals for %s", l.DateString())
		return nil
	},
}

// mergeLog fills nil fields on l from a previous entry for the same date.
func mergeLog(l, prev *models.HealthLog) {
	l.ID = prev.ID
	l.CreatedAt = prev.CreatedAt
	if l.Weight == nil {
		l.Weight = prev.Weight
	}
	if l.SystolicBP == nil {
		l.SystolicBP = prev.SystolicBP
		l.DiastolicBP = prev.DiastolicBP
	}
	if l.HeartRate == nil {
		l.HeartRate = prev.HeartRate
	}
	if l.Temperature == nil {
		l.Temperature = prev.Temperature
	}
	if l.MoodScore == nil {
		l.MoodScore = prev.MoodScore
	}
	if l.EnergyLevel == nil {
		l.EnergyLevel = prev.EnergyLevel
	}
	if l.SleepHours == nil {
		l.SleepHours = prev.SleepHours
	}
	if l.ExerciseMinutes == nil {
		l.ExerciseMinutes = prev.ExerciseMinutes
	}
	if l.WaterIntakeML == nil {
		l.WaterIntakeML = prev.WaterIntakeML
	}
	if l.Notes == nil {
		l.Notes = prev.Notes
	}
}

// parseBloodPressure parses a "systolic/diastolic" pair like "120/80".
func parseBloodPressure(s string) (int, int, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid blood pressure %q (use systolic/diastolic, e.g. 120/80)", s)
	}
	sys, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid systolic value: %s", parts[0])
	}
	dia, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid diastolic value: %s", parts[1])
	}
	return sys, dia, nil
}

func init() {
	logCmd.Flags().StringVar(&logDate, "date", "", "log date (YYYY-MM-DD, default today)")
	logCmd.Flags().Float64Var(&logWeight, "weight", 0, "weight in kg")
	logCmd.Flags().StringVar(&logBP, "bp", "", "blood pressure as systolic/diastolic (e.g. 120/80)")
	logCmd.Flags().IntVar(&logHR, "heart-rate", 0, "resting heart rate in bpm")
	logCmd.Flags().Float64Var(&logTemp, "temp", 0, "body temperature in °C")
	logCmd.Flags().IntVar(&logMood, "mood", 0, "mood score (1-10)")
	logCmd.Flags().IntVar(&logEnergy, "energy", 0, "energy level (1-10)")
	logCmd.Flags().Float64Var(&logSleep, "sleep", 0, "hours slept")
	logCmd.Flags().IntVar(&logExercise, "exercise", 0, "exercise minutes")
	logCmd.Flags().IntVar(&logWater, "water", 0, "water intake in ml")
	logCmd.Flags().StringVar(&logNotes, "notes", "", "free-text notes")
	rootCmd.AddCommand(logCmd)
}
