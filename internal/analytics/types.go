// ABOUTME: Derived value objects produced by the metrics aggregator.
// ABOUTME: Ephemeral and JSON-serializable; recomputed on every request.
package analytics

import (
	"time"

	"github.com/pulsekit/vitals/internal/models"
)

// HealthMetrics is the aggregate view of one user's records over a time
// window. It is recomputed on every request and never persisted.
type HealthMetrics struct {
	TotalScans          int             `json:"totalScans"`
	ScansByType         map[string]int  `json:"scansByType"`
	HealthScore         int             `json:"healthScore"`
	HealthTrends        HealthTrends    `json:"healthTrends"`
	MedicationAdherence int             `json:"medicationAdherence"`
	InsightsSummary     InsightsSummary `json:"insightsSummary"`
}

// TrendPoint is one (date, value) pair in a trend series.
type TrendPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// BloodPressurePoint pairs systolic and diastolic readings for one date.
type BloodPressurePoint struct {
	Date      string `json:"date"`
	Systolic  int    `json:"systolic"`
	Diastolic int    `json:"diastolic"`
}

// HealthTrends holds per-metric trend series extracted from health logs.
// Gaps in the underlying logs are simply absent points; there is no
// resampling or interpolation.
type HealthTrends struct {
	Weight        []TrendPoint         `json:"weight"`
	BloodPressure []BloodPressurePoint `json:"bloodPressure"`
	Mood          []TrendPoint         `json:"mood"`
	Energy        []TrendPoint         `json:"energy"`
}

// InsightsSummary tallies insights by type and severity. Keys absent
// from the input never appear in the maps.
type InsightsSummary struct {
	Total      int            `json:"total"`
	ByType     map[string]int `json:"byType"`
	BySeverity map[string]int `json:"bySeverity"`
}

// ReportSummary is the headline block of a health report.
type ReportSummary struct {
	HealthScore         int `json:"healthScore"`
	TotalScans          int `json:"totalScans"`
	InsightsGenerated   int `json:"insightsGenerated"`
	MedicationAdherence int `json:"medicationAdherence"`
}

// HealthReport is a point-in-time report snapshot. Serializing it to a
// file is a caller concern; the structure renders directly as JSON.
type HealthReport struct {
	Period          string            `json:"period"`
	GeneratedAt     time.Time         `json:"generatedAt"`
	Summary         ReportSummary     `json:"summary"`
	Trends          HealthTrends      `json:"trends"`
	TrendDirections map[string]string `json:"trendDirections"`
	Insights        InsightsSummary   `json:"insights"`
	Engagement      *models.Engagement `json:"engagement"`
	Recommendations []string          `json:"recommendations"`
}
