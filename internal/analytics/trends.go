// ABOUTME: Trend series extraction and insight tallying.
// ABOUTME: Pure filter+project passes with no resampling or gap filling.
package analytics

import "github.com/pulsekit/vitals/internal/models"

// extractHealthTrends projects log rows into per-metric trend series.
// Only rows where the relevant field is present contribute a point, and
// input row order is preserved (callers supply chronological order).
func extractHealthTrends(logs []*models.HealthLog) HealthTrends {
	t := HealthTrends{
		Weight:        []TrendPoint{},
		BloodPressure: []BloodPressurePoint{},
		Mood:          []TrendPoint{},
		Energy:        []TrendPoint{},
	}

	for _, l := range logs {
		date := l.DateString()
		if l.Weight != nil {
			t.Weight = append(t.Weight, TrendPoint{Date: date, Value: *l.Weight})
		}
		if l.SystolicBP != nil && l.DiastolicBP != nil {
			t.BloodPressure = append(t.BloodPressure, BloodPressurePoint{
				Date:      date,
				Systolic:  *l.SystolicBP,
				Diastolic: *l.DiastolicBP,
			})
		}
		if l.MoodScore != nil {
			t.Mood = append(t.Mood, TrendPoint{Date: date, Value: float64(*l.MoodScore)})
		}
		if l.EnergyLevel != nil {
			t.Energy = append(t.Energy, TrendPoint{Date: date, Value: float64(*l.EnergyLevel)})
		}
	}

	return t
}

// summarizeInsights tallies insights by type and severity. No
// zero-filling: categories absent from the input stay absent.
func summarizeInsights(insights []*models.Insight) InsightsSummary {
	byType := make(map[string]int)
	bySeverity := make(map[string]int)

	for _, i := range insights {
		byType[i.InsightType]++
		bySeverity[string(i.Severity)]++
	}

	return InsightsSummary{
		Total:      len(insights),
		ByType:     byType,
		BySeverity: bySeverity,
	}
}
