// ABOUTME: Tests for health report generation.
// ABOUTME: Covers recommendation rules, trend directions, and error wrapping.
package analytics

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/pulsekit/vitals/internal/models"
)

func TestGenerateRecommendationsAllRulesFire(t *testing.T) {
	m := &HealthMetrics{
		HealthScore:         50,
		TotalScans:          2,
		MedicationAdherence: 60,
		InsightsSummary: InsightsSummary{
			Total:      1,
			BySeverity: map[string]int{"critical": 1},
		},
	}

	recs := generateRecommendations(m)
	want := []string{recCheckup, recMonitoring, recReminders, recCritical}
	if len(recs) != len(want) {
		t.Fatalf("expected %d recommendations, got %d: %v", len(want), len(recs), recs)
	}
	for i, r := range recs {
		if r != want[i] {
			t.Errorf("recommendation %d: expected %q, got %q", i, want[i], r)
		}
	}
}

func TestGenerateRecommendationsHealthy(t *testing.T) {
	m := &HealthMetrics{
		HealthScore:         95,
		TotalScans:          12,
		MedicationAdherence: 100,
		InsightsSummary:     InsightsSummary{BySeverity: map[string]int{}},
	}

	recs := generateRecommendations(m)
	if recs == nil {
		t.Fatal("expected empty list, got nil")
	}
	if len(recs) != 0 {
		t.Errorf("expected no recommendations, got %v", recs)
	}
}

func TestGenerateRecommendationsBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*HealthMetrics)
		wantRec string
		fires   bool
	}{
		{"score at threshold", func(m *HealthMetrics) { m.HealthScore = 70 }, recCheckup, false},
		{"score below threshold", func(m *HealthMetrics) { m.HealthScore = 69 }, recCheckup, true},
		{"scans at threshold", func(m *HealthMetrics) { m.TotalScans = 5 }, recMonitoring, false},
		{"scans below threshold", func(m *HealthMetrics) { m.TotalScans = 4 }, recMonitoring, true},
		{"adherence at threshold", func(m *HealthMetrics) { m.MedicationAdherence = 90 }, recReminders, false},
		{"adherence below threshold", func(m *HealthMetrics) { m.MedicationAdherence = 89 }, recReminders, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &HealthMetrics{
				HealthScore:         95,
				TotalScans:          12,
				MedicationAdherence: 100,
				InsightsSummary:     InsightsSummary{BySeverity: map[string]int{}},
			}
			tt.mutate(m)

			got := false
			for _, r := range generateRecommendations(m) {
				if r == tt.wantRec {
					got = true
				}
			}
			if got != tt.fires {
				t.Errorf("rule fired=%v, expected %v", got, tt.fires)
			}
		})
	}
}

func TestGenerateHealthReportFields(t *testing.T) {
	store := &fakeStore{
		engagement: &models.Engagement{
			LoginFrequency: 7,
			FeaturesUsed:   []string{"health-log", "reports"},
		},
	}
	base := time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		store.logs = append(store.logs, models.NewHealthLog("u1", base.AddDate(0, 0, i)).WithWeight(70+float64(i)))
	}

	agg := New(store).WithClock(fixedClock())
	report, err := agg.GenerateHealthReport(context.Background(), "u1", models.Range7Days)
	if err != nil {
		t.Fatalf("GenerateHealthReport failed: %v", err)
	}

	if report.Period != "7d" {
		t.Errorf("expected period 7d, got %q", report.Period)
	}
	if !report.GeneratedAt.Equal(fixedClock()()) {
		t.Errorf("unexpected generation time: %v", report.GeneratedAt)
	}
	if report.Engagement == nil || report.Engagement.LoginFrequency != 7 {
		t.Errorf("unexpected engagement: %+v", report.Engagement)
	}
	if report.Summary.HealthScore != 100 {
		t.Errorf("expected summary score 100, got %d", report.Summary.HealthScore)
	}
	// Weight climbs a kilo a day: direction must read rising
	if report.TrendDirections["weight"] != TrendRising {
		t.Errorf("expected rising weight trend, got %q", report.TrendDirections["weight"])
	}
}

func TestGenerateHealthReportNormalizesPeriod(t *testing.T) {
	agg := New(&fakeStore{}).WithClock(fixedClock())
	report, err := agg.GenerateHealthReport(context.Background(), "u1", models.TimeRange("bogus"))
	if err != nil {
		t.Fatalf("GenerateHealthReport failed: %v", err)
	}
	if report.Period != "30d" {
		t.Errorf("expected fallback period 30d, got %q", report.Period)
	}
}

func TestGenerateHealthReportMetricsFailure(t *testing.T) {
	agg := New(&fakeStore{scansErr: errors.New("closed")})

	_, err := agg.GenerateHealthReport(context.Background(), "u1", models.Range30Days)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "failed to generate health report") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestGenerateHealthReportEngagementFailure(t *testing.T) {
	agg := New(&fakeStore{engagementErr: errors.New("closed")})

	_, err := agg.GenerateHealthReport(context.Background(), "u1", models.Range30Days)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "failed to get user engagement data") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestTrendDirection(t *testing.T) {
	tests := []struct {
		name string
		vs   []float64
		want string
	}{
		{"too short", []float64{70, 75}, TrendStable},
		{"empty", nil, TrendStable},
		{"rising", []float64{70, 72, 74, 76, 78}, TrendRising},
		{"falling", []float64{78, 76, 74, 72, 70}, TrendFalling},
		{"flat", []float64{70, 70.1, 69.9, 70, 70}, TrendStable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := trendDirection(tt.vs); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
