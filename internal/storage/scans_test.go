// ABOUTME: Tests for scan storage.
package storage

import (
	"testing"
	"time"

	"github.com/pulsekit/vitals/internal/models"
)

func TestAddAndListScans(t *testing.T) {
	db := setupTestDB(t)

	s1 := models.NewScan("u1", models.ScanMedical).WithLabel("blood panel")
	s2 := models.NewScan("u1", models.ScanFood)
	for _, s := range []*models.Scan{s1, s2} {
		if err := db.AddScan(s); err != nil {
			t.Fatalf("AddScan failed: %v", err)
		}
	}

	scans, err := db.ListScans("u1", 10)
	if err != nil {
		t.Fatalf("ListScans failed: %v", err)
	}
	if len(scans) != 2 {
		t.Fatalf("expected 2 scans, got %d", len(scans))
	}

	var labeled *models.Scan
	for _, s := range scans {
		if s.ID == s1.ID {
			labeled = s
		}
	}
	if labeled == nil {
		t.Fatal("labeled scan missing from list")
	}
	if labeled.Label == nil || *labeled.Label != "blood panel" {
		t.Errorf("unexpected label: %v", labeled.Label)
	}
	if labeled.ScanType != models.ScanMedical {
		t.Errorf("unexpected scan type: %s", labeled.ScanType)
	}
}

func TestScansSinceFiltersByTypeAndWindow(t *testing.T) {
	db := setupTestDB(t)

	old := models.NewScan("u1", models.ScanMedical)
	old.CreatedAt = time.Now().AddDate(0, -2, 0)
	recent := models.NewScan("u1", models.ScanMedical)
	food := models.NewScan("u1", models.ScanFood)
	otherUser := models.NewScan("u2", models.ScanMedical)

	for _, s := range []*models.Scan{old, recent, food, otherUser} {
		if err := db.AddScan(s); err != nil {
			t.Fatalf("AddScan failed: %v", err)
		}
	}

	since := time.Now().AddDate(0, 0, -30)
	scans, err := db.ScansSince(models.ScanMedical, "u1", since)
	if err != nil {
		t.Fatalf("ScansSince failed: %v", err)
	}
	if len(scans) != 1 {
		t.Fatalf("expected 1 scan, got %d", len(scans))
	}
	if scans[0].ID != recent.ID {
		t.Errorf("expected recent scan, got %s", scans[0].ID)
	}
}

func TestListScansHonorsLimit(t *testing.T) {
	db := setupTestDB(t)

	for i := 0; i < 5; i++ {
		if err := db.AddScan(models.NewScan("u1", models.ScanMedication)); err != nil {
			t.Fatalf("AddScan failed: %v", err)
		}
	}

	scans, err := db.ListScans("u1", 3)
	if err != nil {
		t.Fatalf("ListScans failed: %v", err)
	}
	if len(scans) != 3 {
		t.Errorf("expected 3 scans, got %d", len(scans))
	}
}
