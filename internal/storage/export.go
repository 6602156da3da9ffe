// ABOUTME: Export and import functionality for raw health records.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/pulsekit/vitals/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for one user's records.
type ExportData struct {
	Version     string                  `json:"version" yaml:"version"`
	ExportedAt  time.Time               `json:"exported_at" yaml:"exported_at"`
	Tool        string                  `json:"tool" yaml:"tool"`
	UserID      string                  `json:"user_id" yaml:"user_id"`
	HealthLogs  []*models.HealthLog     `json:"health_logs" yaml:"health_logs"`
	Scans       []*models.Scan          `json:"scans" yaml:"scans"`
	Insights    []*models.Insight       `json:"insights" yaml:"insights"`
	Medications []*models.Medication    `json:"medications" yaml:"medications"`
	Intakes     []*models.MedicationIntake `json:"intakes" yaml:"intakes"`
}

// exportEpoch is early enough to cover every stored record.
var exportEpoch = time.Unix(0, 0)

// GetAllData retrieves all of a user's records for export.
func (d *DB) GetAllData(userID string) (*ExportData, error) {
	logs, err := d.HealthLogsSince(userID, exportEpoch)
	if err != nil {
		return nil, fmt.Errorf("export health logs: %w", err)
	}

	scans, err := d.ListScans(userID, 0)
	if err != nil {
		return nil, fmt.Errorf("export scans: %w", err)
	}

	insights, err := d.ListInsights(userID, 0)
	if err != nil {
		return nil, fmt.Errorf("export insights: %w", err)
	}

	meds, err := d.ListMedications(userID)
	if err != nil {
		return nil, fmt.Errorf("export medications: %w", err)
	}

	intakes, err := d.IntakesSince(userID, exportEpoch)
	if err != nil {
		return nil, fmt.Errorf("export intakes: %w", err)
	}

	return &ExportData{
		Version:     "1.0",
		ExportedAt:  time.Now(),
		Tool:        "vitals",
		UserID:      userID,
		HealthLogs:  logs,
		Scans:       scans,
		Insights:    insights,
		Medications: meds,
		Intakes:     intakes,
	}, nil
}

// ImportData imports records from an export file.
func (d *DB) ImportData(data *ExportData) error {
	for _, l := range data.HealthLogs {
		if err := d.UpsertHealthLog(l); err != nil {
			return fmt.Errorf("import health log: %w", err)
		}
	}
	for _, s := range data.Scans {
		if err := d.AddScan(s); err != nil {
			return fmt.Errorf("import scan: %w", err)
		}
	}
	for _, i := range data.Insights {
		if err := d.AddInsight(i); err != nil {
			return fmt.Errorf("import insight: %w", err)
		}
	}
	for _, m := range data.Medications {
		if err := d.AddMedication(m); err != nil {
			return fmt.Errorf("import medication: %w", err)
		}
	}
	for _, in := range data.Intakes {
		if err := d.LogIntake(in); err != nil {
			return fmt.Errorf("import intake: %w", err)
		}
	}
	return nil
}

// MarshalExportJSON renders an export as indented JSON.
func MarshalExportJSON(data *ExportData) ([]byte, error) {
	return json.MarshalIndent(data, "", "  ")
}

// MarshalExportYAML renders an export as YAML.
func MarshalExportYAML(data *ExportData) ([]byte, error) {
	return yaml.Marshal(data)
}

// RenderMarkdown renders an export's health logs as a Markdown table,
// optionally limited to entries on or after since.
func RenderMarkdown(data *ExportData, since *time.Time) string {
	var sb strings.Builder
	now := time.Now()

	sb.WriteString(fmt.Sprintf("# Vitals Export - %s\n\n", now.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))
	sb.WriteString("## Health Logs\n\n")
	sb.WriteString("| Date | Weight | BP | HR | Mood | Energy | Sleep | Notes |\n")
	sb.WriteString("|------|--------|----|----|------|--------|-------|-------|\n")

	for _, l := range data.HealthLogs {
		if since != nil && l.LogDate.Before(*since) {
			continue
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			l.DateString(),
			fmtFloat(l.Weight),
			fmtBP(l.SystolicBP, l.DiastolicBP),
			fmtInt(l.HeartRate),
			fmtInt(l.MoodScore),
			fmtInt(l.EnergyLevel),
			fmtFloat(l.SleepHours),
			fmtStr(l.Notes)))
	}

	return sb.String()
}

// UnmarshalExportJSON parses JSON export bytes.
func UnmarshalExportJSON(data []byte) (*ExportData, error) {
	var exportData ExportData
	if err := json.Unmarshal(data, &exportData); err != nil {
		return nil, fmt.Errorf("unmarshal JSON: %w", err)
	}
	return &exportData, nil
}

func fmtFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%.1f", *v)
}

func fmtInt(v *int) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%d", *v)
}

func fmtBP(sys, dia *int) string {
	if sys == nil || dia == nil {
		return ""
	}
	return fmt.Sprintf("%d/%d", *sys, *dia)
}

func fmtStr(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
