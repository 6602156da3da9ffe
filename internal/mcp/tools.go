// ABOUTME: MCP tool implementations for health records and analytics.
// ABOUTME: Record CRUD plus the metrics and report computations.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/pulsekit/vitals/internal/models"
)

func (s *Server) registerTools() {
	// log_health
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_health",
		Description: "Record daily vitals (weight, blood pressure, mood, energy, sleep, etc.); upserts on date",
	}, s.handleLogHealth)

	// add_scan
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_scan",
		Description: "Record a scan artifact (medical, food, or medication)",
	}, s.handleAddScan)

	// add_insight
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_insight",
		Description: "Record a generated health insight with type, severity, and confidence",
	}, s.handleAddInsight)

	// take_medication
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "take_medication",
		Description: "Log a medication dose as taken",
	}, s.handleTakeMedication)

	// get_health_metrics
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_health_metrics",
		Description: "Compute aggregate health metrics (score, trends, adherence, insight summary) over a time range",
	}, s.handleGetHealthMetrics)

	// generate_health_report
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "generate_health_report",
		Description: "Generate a full health report with engagement data and recommendations",
	}, s.handleGenerateHealthReport)
}

// Tool input/output types

type logHealthInput struct {
	Date            string   `json:"date,omitempty" jsonschema:"Log date (YYYY-MM-DD), defaults to today"`
	Weight          *float64 `json:"weight,omitempty" jsonschema:"Weight in kg"`
	Systolic        *int     `json:"blood_pressure_systolic,omitempty" jsonschema:"Systolic blood pressure in mmHg"`
	Diastolic       *int     `json:"blood_pressure_diastolic,omitempty" jsonschema:"Diastolic blood pressure in mmHg"`
	HeartRate       *int     `json:"heart_rate,omitempty" jsonschema:"Resting heart rate in bpm"`
	Temperature     *float64 `json:"temperature,omitempty" jsonschema:"Body temperature in celsius"`
	MoodScore       *int     `json:"mood_score,omitempty" jsonschema:"Mood on a 1-10 scale"`
	EnergyLevel     *int     `json:"energy_level,omitempty" jsonschema:"Energy on a 1-10 scale"`
	SleepHours      *float64 `json:"sleep_hours,omitempty" jsonschema:"Hours slept"`
	ExerciseMinutes *int     `json:"exercise_minutes,omitempty" jsonschema:"Exercise minutes"`
	WaterIntakeML   *int     `json:"water_intake_ml,omitempty" jsonschema:"Water intake in ml"`
	Notes           string   `json:"notes,omitempty" jsonschema:"Free-text notes"`
}

type addScanInput struct {
	ScanType string `json:"scan_type" jsonschema:"Scan collection (medical, food, medication)"`
	Label    string `json:"label,omitempty" jsonschema:"Display label for the scan"`
}

type addInsightInput struct {
	InsightType string  `json:"insight_type" jsonschema:"Insight category (nutrition, medical, lifestyle, preventive, ...)"`
	Severity    string  `json:"severity" jsonschema:"Severity (info, low, medium, high, critical)"`
	Title       string  `json:"title" jsonschema:"Short insight title"`
	Body        string  `json:"body,omitempty" jsonschema:"Long-form insight text"`
	Confidence  float64 `json:"confidence,omitempty" jsonschema:"Confidence in [0,1]"`
}

type takeMedicationInput struct {
	Medication string `json:"medication" jsonschema:"Medication name or ID prefix"`
}

type timeRangeInput struct {
	TimeRange string `json:"time_range,omitempty" jsonschema:"Lookback window: 7d, 30d, 90d, or 1y (default 30d)"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

// Tool handlers

func (s *Server) handleLogHealth(ctx context.Context, req *mcp.CallToolRequest, input logHealthInput) (*mcp.CallToolResult, simpleOutput, error) {
	date := time.Now()
	if input.Date != "" {
		t, err := time.Parse(models.DateLayout, input.Date)
		if err != nil {
			return nil, simpleOutput{}, fmt.Errorf("invalid date %q (use YYYY-MM-DD)", input.Date)
		}
		date = t
	}

	l := models.NewHealthLog(s.userID, date)
	l.Weight = input.Weight
	l.SystolicBP = input.Systolic
	l.DiastolicBP = input.Diastolic
	l.HeartRate = input.HeartRate
	l.Temperature = input.Temperature
	l.MoodScore = input.MoodScore
	l.EnergyLevel = input.EnergyLevel
	l.SleepHours = input.SleepHours
	l.ExerciseMinutes = input.ExerciseMinutes
	l.WaterIntakeML = input.WaterIntakeML
	if input.Notes != "" {
		l.WithNotes(input.Notes)
	}

	if err := s.store.UpsertHealthLog(l); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log health entry: %w", err)
	}

	s.trackActivity("health-log")
	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged health entry for %s", l.DateString()),
	}, nil
}

func (s *Server) handleAddScan(ctx context.Context, req *mcp.CallToolRequest, input addScanInput) (*mcp.CallToolResult, simpleOutput, error) {
	if !models.IsValidScanType(input.ScanType) {
		return nil, simpleOutput{}, fmt.Errorf("unknown scan type: %s", input.ScanType)
	}

	scan := models.NewScan(s.userID, models.ScanType(input.ScanType))
	if input.Label != "" {
		scan.WithLabel(input.Label)
	}

	if err := s.store.AddScan(scan); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to add scan: %w", err)
	}

	s.trackActivity("scans")
	return nil, simpleOutput{
		Message: fmt.Sprintf("Added %s scan (ID: %s)", input.ScanType, scan.ID.String()[:8]),
	}, nil
}

func (s *Server) handleAddInsight(ctx context.Context, req *mcp.CallToolRequest, input addInsightInput) (*mcp.CallToolResult, simpleOutput, error) {
	if !models.IsValidSeverity(input.Severity) {
		return nil, simpleOutput{}, fmt.Errorf("unknown severity: %s", input.Severity)
	}

	insight := models.NewInsight(s.userID, input.InsightType, models.Severity(input.Severity), input.Title, input.Confidence)
	if input.Body != "" {
		insight.WithBody(input.Body)
	}

	if err := s.store.AddInsight(insight); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to add insight: %w", err)
	}

	s.trackActivity("insights")
	return nil, simpleOutput{
		Message: fmt.Sprintf("Added %s insight (%s severity)", input.InsightType, input.Severity),
	}, nil
}

func (s *Server) handleTakeMedication(ctx context.Context, req *mcp.CallToolRequest, input takeMedicationInput) (*mcp.CallToolResult, simpleOutput, error) {
	meds, err := s.store.ListMedications(s.userID)
	if err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to list medications: %w", err)
	}

	med := matchMedication(meds, input.Medication)
	if med == nil {
		return nil, simpleOutput{}, fmt.Errorf("medication not found: %s", input.Medication)
	}

	if err := s.store.LogIntake(models.NewIntake(s.userID, med.ID)); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to log intake: %w", err)
	}

	s.trackActivity("medications")
	return nil, simpleOutput{
		Message: fmt.Sprintf("Logged dose of %s", med.Name),
	}, nil
}

func (s *Server) handleGetHealthMetrics(ctx context.Context, req *mcp.CallToolRequest, input timeRangeInput) (*mcp.CallToolResult, any, error) {
	metrics, err := s.agg.GetHealthMetrics(ctx, s.userID, models.ParseTimeRange(input.TimeRange))
	if err != nil {
		return nil, nil, err
	}
	return nil, metrics, nil
}

func (s *Server) handleGenerateHealthReport(ctx context.Context, req *mcp.CallToolRequest, input timeRangeInput) (*mcp.CallToolResult, any, error) {
	report, err := s.agg.GenerateHealthReport(ctx, s.userID, models.ParseTimeRange(input.TimeRange))
	if err != nil {
		return nil, nil, err
	}
	return nil, report, nil
}

// matchMedication resolves a name or ID prefix against the schedule list.
func matchMedication(meds []*models.Medication, nameOrID string) *models.Medication {
	for _, m := range meds {
		if m.Name == nameOrID {
			return m
		}
	}
	for _, m := range meds {
		if len(nameOrID) >= 4 && len(m.ID.String()) >= len(nameOrID) &&
			m.ID.String()[:len(nameOrID)] == nameOrID {
			return m
		}
	}
	return nil
}

// trackActivity records feature usage for engagement reporting. Failures
// are logged and swallowed: analytics bookkeeping never blocks a write.
func (s *Server) trackActivity(feature string) {
	a := &models.Activity{
		UserID:    s.userID,
		Name:      feature,
		CreatedAt: time.Now(),
	}
	if err := s.store.RecordActivity(a); err != nil {
		s.log.WithError(err).WithField("feature", feature).Warn("failed to record activity")
	}
}
