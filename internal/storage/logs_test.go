// ABOUTME: Tests for health log storage.
// ABOUTME: Covers upsert semantics, date keying, and window queries.
package storage

import (
	"testing"
	"time"

	"github.com/pulsekit/vitals/internal/models"
)

func TestUpsertHealthLogRoundTrip(t *testing.T) {
	db := setupTestDB(t)

	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	l := models.NewHealthLog("u1", date).
		WithWeight(71.2).
		WithBloodPressure(118, 76).
		WithMood(7).
		WithNotes("slept well")

	if err := db.UpsertHealthLog(l); err != nil {
		t.Fatalf("UpsertHealthLog failed: %v", err)
	}

	got, err := db.GetHealthLog("u1", date)
	if err != nil {
		t.Fatalf("GetHealthLog failed: %v", err)
	}
	if got.ID != l.ID {
		t.Errorf("expected ID %s, got %s", l.ID, got.ID)
	}
	if got.Weight == nil || *got.Weight != 71.2 {
		t.Errorf("unexpected weight: %v", got.Weight)
	}
	if got.SystolicBP == nil || *got.SystolicBP != 118 {
		t.Errorf("unexpected systolic: %v", got.SystolicBP)
	}
	if got.Notes == nil || *got.Notes != "slept well" {
		t.Errorf("unexpected notes: %v", got.Notes)
	}
	if got.HeartRate != nil {
		t.Error("expected unset heart rate to stay nil")
	}
}

func TestUpsertHealthLogSameDayUpdates(t *testing.T) {
	db := setupTestDB(t)

	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	first := models.NewHealthLog("u1", date).WithWeight(71.0)
	if err := db.UpsertHealthLog(first); err != nil {
		t.Fatalf("first upsert failed: %v", err)
	}

	second := models.NewHealthLog("u1", date).WithWeight(70.5).WithMood(8)
	if err := db.UpsertHealthLog(second); err != nil {
		t.Fatalf("second upsert failed: %v", err)
	}

	logs, err := db.HealthLogsSince("u1", date.AddDate(0, 0, -1))
	if err != nil {
		t.Fatalf("HealthLogsSince failed: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("expected 1 log after same-day upsert, got %d", len(logs))
	}
	if logs[0].Weight == nil || *logs[0].Weight != 70.5 {
		t.Errorf("expected updated weight, got %v", logs[0].Weight)
	}
	if logs[0].MoodScore == nil || *logs[0].MoodScore != 8 {
		t.Errorf("expected updated mood, got %v", logs[0].MoodScore)
	}
}

func TestHealthLogsSinceWindowAndOrder(t *testing.T) {
	db := setupTestDB(t)

	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 10; i++ {
		l := models.NewHealthLog("u1", base.AddDate(0, 0, i)).WithWeight(70 + float64(i))
		if err := db.UpsertHealthLog(l); err != nil {
			t.Fatalf("upsert %d failed: %v", i, err)
		}
	}
	// Another user's logs must be excluded
	if err := db.UpsertHealthLog(models.NewHealthLog("u2", base.AddDate(0, 0, 5))); err != nil {
		t.Fatalf("upsert for u2 failed: %v", err)
	}

	logs, err := db.HealthLogsSince("u1", base.AddDate(0, 0, 6))
	if err != nil {
		t.Fatalf("HealthLogsSince failed: %v", err)
	}
	if len(logs) != 4 {
		t.Fatalf("expected 4 logs in window, got %d", len(logs))
	}
	for i := 1; i < len(logs); i++ {
		if logs[i].LogDate.Before(logs[i-1].LogDate) {
			t.Error("expected ascending date order")
		}
	}
	for _, l := range logs {
		if l.UserID != "u1" {
			t.Errorf("unexpected user %q in results", l.UserID)
		}
	}
}

func TestGetHealthLogMissing(t *testing.T) {
	db := setupTestDB(t)

	if _, err := db.GetHealthLog("u1", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)); err == nil {
		t.Error("expected an error for a missing log")
	}
}
