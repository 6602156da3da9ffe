// ABOUTME: Root Cobra command for vitals CLI.
// ABOUTME: Handles config load and store lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/pulsekit/vitals/internal/analytics"
	"github.com/pulsekit/vitals/internal/config"
	"github.com/pulsekit/vitals/internal/models"
	"github.com/pulsekit/vitals/internal/storage"
)

var (
	cfg    *config.Config
	store  storage.Store
	agg    *analytics.Aggregator
	userID string

	flagUser string
)

var rootCmd = &cobra.Command{
	Use:   "vitals",
	Short: "Personal health metrics and reporting",
	Long: `Vitals tracks daily health data and computes aggregate metrics.

WHAT IT TRACKS:

  Daily logs     weight, blood pressure, heart rate, temperature,
                 mood, energy, sleep, exercise, water, notes
  Scans          medical, food, and medication scan records
  Insights       generated recommendations with severity and confidence
  Medications    dose schedules and taken doses (drives adherence)

QUICK START:

  $ vitals log --weight 82.5 --mood 7        # Log today's vitals
  $ vitals log --bp 120/80 --sleep 7.5       # More of today's vitals
  $ vitals scan add food                     # Record a food scan
  $ vitals metrics                           # 30-day health metrics
  $ vitals metrics --range 7d                # Last week only
  $ vitals report -o report.json             # Full report to file

MEDICATIONS:

  $ vitals meds add lisinopril --doses 1     # Add a daily medication
  $ vitals meds take lisinopril              # Log a dose as taken
  $ vitals meds list                         # Show schedules

MCP INTEGRATION:

  Run 'vitals mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "vitals": { "command": "vitals", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Records live in SQLite at ~/.local/share/vitals/vitals.db by default.
  Set "backend": "charm" in ~/.config/vitals/config.json to sync via
  Charm Cloud instead (E2E encrypted with your SSH key).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		store, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}

		userID = cfg.GetUser()
		if flagUser != "" {
			userID = flagUser
		}

		agg = analytics.New(store)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagUser, "user", "", "user ID to operate on (default from config)")
}

// resolveRange picks the time range from a flag value, falling back to
// the configured default. Unrecognized values resolve to 30d.
func resolveRange(flagValue string) models.TimeRange {
	if flagValue != "" {
		return models.ParseTimeRange(flagValue)
	}
	return cfg.GetDefaultRange()
}

// trackActivity records feature usage for engagement reporting; failures
// never interrupt the command that triggered them.
func trackActivity(feature string) {
	_ = store.RecordActivity(&models.Activity{
		UserID:    userID,
		Name:      feature,
		CreatedAt: time.Now(),
	})
}
