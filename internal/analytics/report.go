// ABOUTME: Health report generation: metrics, engagement, recommendations.
// ABOUTME: Trend directions are fitted with least-squares regression.
package analytics

import (
	"context"
	"fmt"
	"math"

	"github.com/sajari/regression"

	"github.com/pulsekit/vitals/internal/models"
)

// Trend direction labels for report trend series.
const (
	TrendRising  = "rising"
	TrendFalling = "falling"
	TrendStable  = "stable"
)

// Recommendation texts, applied by independent rules: every matching
// rule fires, and zero matches yields an empty list.
const (
	recCheckup    = "Consider scheduling a check-up with your healthcare provider"
	recMonitoring = "Regular health monitoring can provide valuable insights"
	recReminders  = "Set up medication reminders to improve adherence"
	recCritical   = "Address critical health insights with your doctor immediately"
)

// GenerateHealthReport wraps the computed metrics into a report snapshot
// with an engagement summary and rule-based recommendations appended.
// The report is a plain value; writing it to a file is a caller concern.
func (a *Aggregator) GenerateHealthReport(ctx context.Context, userID string, rng models.TimeRange) (*HealthReport, error) {
	metrics, err := a.GetHealthMetrics(ctx, userID, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to generate health report: %w", err)
	}

	engagement, err := a.store.EngagementSnapshot(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user engagement data: %w", err)
	}

	return &HealthReport{
		Period:      string(models.ParseTimeRange(string(rng))),
		GeneratedAt: a.now(),
		Summary: ReportSummary{
			HealthScore:         metrics.HealthScore,
			TotalScans:          metrics.TotalScans,
			InsightsGenerated:   metrics.InsightsSummary.Total,
			MedicationAdherence: metrics.MedicationAdherence,
		},
		Trends:          metrics.HealthTrends,
		TrendDirections: trendDirections(metrics.HealthTrends),
		Insights:        metrics.InsightsSummary,
		Engagement:      engagement,
		Recommendations: generateRecommendations(metrics),
	}, nil
}

// generateRecommendations applies the recommendation rule table to the
// computed metrics. Rules are independent, not mutually exclusive.
func generateRecommendations(m *HealthMetrics) []string {
	recommendations := []string{}

	if m.HealthScore < 70 {
		recommendations = append(recommendations, recCheckup)
	}
	if m.TotalScans < 5 {
		recommendations = append(recommendations, recMonitoring)
	}
	if m.MedicationAdherence < 90 {
		recommendations = append(recommendations, recReminders)
	}
	if m.InsightsSummary.BySeverity[string(models.SeverityCritical)] > 0 {
		recommendations = append(recommendations, recCritical)
	}

	return recommendations
}

// trendDirections fits a direction label to each trend series. Blood
// pressure uses the systolic series.
func trendDirections(t HealthTrends) map[string]string {
	systolic := make([]float64, 0, len(t.BloodPressure))
	for _, p := range t.BloodPressure {
		systolic = append(systolic, float64(p.Systolic))
	}

	return map[string]string{
		"weight":        trendDirection(values(t.Weight)),
		"bloodPressure": trendDirection(systolic),
		"mood":          trendDirection(values(t.Mood)),
		"energy":        trendDirection(values(t.Energy)),
	}
}

func values(points []TrendPoint) []float64 {
	vs := make([]float64, 0, len(points))
	for _, p := range points {
		vs = append(vs, p.Value)
	}
	return vs
}

// trendDirection labels a series rising, falling, or stable based on the
// slope of a least-squares fit. Series too short to fit are stable.
func trendDirection(vs []float64) string {
	if len(vs) < 3 {
		return TrendStable
	}

	r := new(regression.Regression)
	r.SetObserved("value")
	r.SetVar(0, "index")
	for i, v := range vs {
		r.Train(regression.DataPoint(v, []float64{float64(i)}))
	}
	if err := r.Run(); err != nil {
		return TrendStable
	}

	slope := r.Coeff(1)

	// Slopes below 1% of the series mean per sample read as noise
	mean := 0.0
	for _, v := range vs {
		mean += v
	}
	mean /= float64(len(vs))
	threshold := 0.01 * math.Abs(mean)
	if threshold == 0 {
		threshold = 0.01
	}

	switch {
	case slope > threshold:
		return TrendRising
	case slope < -threshold:
		return TrendFalling
	default:
		return TrendStable
	}
}
