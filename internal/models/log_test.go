// ABOUTME: Tests for the HealthLog model.
package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewHealthLogTruncatesDate(t *testing.T) {
	l := NewHealthLog("u1", time.Date(2025, 3, 15, 14, 30, 45, 0, time.UTC))

	want := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)
	if !l.LogDate.Equal(want) {
		t.Errorf("expected date truncated to %v, got %v", want, l.LogDate)
	}
	if l.DateString() != "2025-03-15" {
		t.Errorf("unexpected date string: %s", l.DateString())
	}
	if l.ID == uuid.Nil {
		t.Error("expected a generated ID")
	}
}

func TestHealthLogOptionalFields(t *testing.T) {
	l := NewHealthLog("u1", time.Now())

	if l.Weight != nil || l.MoodScore != nil || l.SystolicBP != nil {
		t.Error("expected all optional fields to start nil")
	}

	l.WithWeight(72.5).WithBloodPressure(120, 80).WithMood(8)

	if l.Weight == nil || *l.Weight != 72.5 {
		t.Errorf("unexpected weight: %v", l.Weight)
	}
	if l.SystolicBP == nil || l.DiastolicBP == nil || *l.SystolicBP != 120 || *l.DiastolicBP != 80 {
		t.Error("unexpected blood pressure")
	}
	if l.MoodScore == nil || *l.MoodScore != 8 {
		t.Error("unexpected mood")
	}
	if l.EnergyLevel != nil {
		t.Error("energy should remain unset")
	}
}

func TestMedicationActiveBetween(t *testing.T) {
	start := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		med  *Medication
		want bool
	}{
		{
			name: "open ended overlapping",
			med:  NewMedication("u1", "a").WithStartDate(start.AddDate(0, 0, -10)),
			want: true,
		},
		{
			name: "starts inside window",
			med:  NewMedication("u1", "b").WithStartDate(start.AddDate(0, 0, 10)),
			want: true,
		},
		{
			name: "starts after window",
			med:  NewMedication("u1", "c").WithStartDate(end.AddDate(0, 0, 1)),
			want: false,
		},
		{
			name: "ended before window",
			med: NewMedication("u1", "d").
				WithStartDate(start.AddDate(0, -2, 0)).
				WithEndDate(start.AddDate(0, -1, 0)),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.med.ActiveBetween(start, end); got != tt.want {
				t.Errorf("ActiveBetween = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewInsightClampsConfidence(t *testing.T) {
	if i := NewInsight("u1", "medical", SeverityHigh, "t", 1.5); i.Confidence != 1 {
		t.Errorf("expected confidence clamped to 1, got %v", i.Confidence)
	}
	if i := NewInsight("u1", "medical", SeverityHigh, "t", -0.2); i.Confidence != 0 {
		t.Errorf("expected confidence clamped to 0, got %v", i.Confidence)
	}
	if i := NewInsight("u1", "medical", SeverityHigh, "t", 0.42); i.Confidence != 0.42 {
		t.Errorf("expected confidence preserved, got %v", i.Confidence)
	}
}
