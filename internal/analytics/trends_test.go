// ABOUTME: Tests for trend extraction and insight summarization.
// ABOUTME: Verifies missing-value filtering, ordering, and tally invariants.
package analytics

import (
	"testing"
	"time"

	"github.com/pulsekit/vitals/internal/models"
)

func TestExtractHealthTrendsFiltersMissing(t *testing.T) {
	base := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	logs := []*models.HealthLog{
		models.NewHealthLog("u1", base).WithWeight(70).WithMood(6),
		models.NewHealthLog("u1", base.AddDate(0, 0, 1)), // nothing recorded
		models.NewHealthLog("u1", base.AddDate(0, 0, 2)).WithWeight(69.5).WithEnergy(8),
	}

	trends := extractHealthTrends(logs)

	if len(trends.Weight) != 2 {
		t.Fatalf("expected 2 weight points, got %d", len(trends.Weight))
	}
	if trends.Weight[0].Value != 70 || trends.Weight[1].Value != 69.5 {
		t.Errorf("unexpected weight values: %+v", trends.Weight)
	}
	if len(trends.Mood) != 1 {
		t.Errorf("expected 1 mood point, got %d", len(trends.Mood))
	}
	if len(trends.Energy) != 1 {
		t.Errorf("expected 1 energy point, got %d", len(trends.Energy))
	}
	if len(trends.BloodPressure) != 0 {
		t.Errorf("expected no blood pressure points, got %d", len(trends.BloodPressure))
	}
}

func TestExtractHealthTrendsBloodPressureRequiresBoth(t *testing.T) {
	base := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	half := models.NewHealthLog("u1", base)
	sys := 120
	half.SystolicBP = &sys

	full := models.NewHealthLog("u1", base.AddDate(0, 0, 1)).WithBloodPressure(118, 76)

	trends := extractHealthTrends([]*models.HealthLog{half, full})
	if len(trends.BloodPressure) != 1 {
		t.Fatalf("expected 1 blood pressure point, got %d", len(trends.BloodPressure))
	}
	bp := trends.BloodPressure[0]
	if bp.Systolic != 118 || bp.Diastolic != 76 {
		t.Errorf("unexpected blood pressure point: %+v", bp)
	}
}

func TestExtractHealthTrendsPreservesOrder(t *testing.T) {
	base := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	var logs []*models.HealthLog
	for i := 0; i < 5; i++ {
		logs = append(logs, models.NewHealthLog("u1", base.AddDate(0, 0, i)).WithWeight(70+float64(i)))
	}

	trends := extractHealthTrends(logs)
	for i, p := range trends.Weight {
		wantDate := base.AddDate(0, 0, i).Format(models.DateLayout)
		if p.Date != wantDate {
			t.Errorf("point %d: expected date %s, got %s", i, wantDate, p.Date)
		}
	}
}

func TestExtractHealthTrendsEmptySlicesNotNil(t *testing.T) {
	trends := extractHealthTrends(nil)
	if trends.Weight == nil || trends.BloodPressure == nil || trends.Mood == nil || trends.Energy == nil {
		t.Error("expected empty slices, got nil")
	}
}

func TestSummarizeInsights(t *testing.T) {
	insights := []*models.Insight{
		models.NewInsight("u1", "medical", models.SeverityHigh, "a", 0.9),
		models.NewInsight("u1", "medical", models.SeverityLow, "b", 0.5),
		models.NewInsight("u1", "nutrition", models.SeverityHigh, "c", 0.7),
	}

	summary := summarizeInsights(insights)

	if summary.Total != 3 {
		t.Errorf("expected total 3, got %d", summary.Total)
	}
	if summary.ByType["medical"] != 2 || summary.ByType["nutrition"] != 1 {
		t.Errorf("unexpected type tallies: %v", summary.ByType)
	}
	if summary.BySeverity["high"] != 2 || summary.BySeverity["low"] != 1 {
		t.Errorf("unexpected severity tallies: %v", summary.BySeverity)
	}

	// An absent severity must not be zero-filled
	if _, ok := summary.BySeverity["critical"]; ok {
		t.Error("expected no entry for unseen severity")
	}

	// Tallies are partitions of the same set
	var byType, bySeverity int
	for _, n := range summary.ByType {
		byType += n
	}
	for _, n := range summary.BySeverity {
		bySeverity += n
	}
	if byType != summary.Total || bySeverity != summary.Total {
		t.Errorf("tally sums %d/%d do not match total %d", byType, bySeverity, summary.Total)
	}
}

func TestSummarizeInsightsEmpty(t *testing.T) {
	summary := summarizeInsights(nil)
	if summary.Total != 0 {
		t.Errorf("expected total 0, got %d", summary.Total)
	}
	if summary.ByType == nil || summary.BySeverity == nil {
		t.Error("expected empty maps, got nil")
	}
}
