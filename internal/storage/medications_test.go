// ABOUTME: Tests for medication and intake storage.
package storage

import (
	"testing"
	"time"

	"github.com/pulsekit/vitals/internal/models"
)

func TestAddAndListMedications(t *testing.T) {
	db := setupTestDB(t)

	m := models.NewMedication("u1", "Lisinopril").
		WithDosage("10mg").
		WithDosesPerDay(2)
	if err := db.AddMedication(m); err != nil {
		t.Fatalf("AddMedication failed: %v", err)
	}

	meds, err := db.ListMedications("u1")
	if err != nil {
		t.Fatalf("ListMedications failed: %v", err)
	}
	if len(meds) != 1 {
		t.Fatalf("expected 1 medication, got %d", len(meds))
	}

	got := meds[0]
	if got.Name != "Lisinopril" || got.DosesPerDay != 2 {
		t.Errorf("unexpected medication: %+v", got)
	}
	if got.Dosage == nil || *got.Dosage != "10mg" {
		t.Errorf("unexpected dosage: %v", got.Dosage)
	}
	if got.EndDate != nil {
		t.Error("expected open-ended medication")
	}
}

func TestMedicationEndDateRoundTrip(t *testing.T) {
	db := setupTestDB(t)

	end := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	m := models.NewMedication("u1", "Amoxicillin").WithEndDate(end)
	if err := db.AddMedication(m); err != nil {
		t.Fatalf("AddMedication failed: %v", err)
	}

	meds, err := db.ListMedications("u1")
	if err != nil {
		t.Fatalf("ListMedications failed: %v", err)
	}
	if meds[0].EndDate == nil || !meds[0].EndDate.Equal(end) {
		t.Errorf("unexpected end date: %v", meds[0].EndDate)
	}
}

func TestLogIntakeAndQueryWindow(t *testing.T) {
	db := setupTestDB(t)

	m := models.NewMedication("u1", "Aspirin")
	if err := db.AddMedication(m); err != nil {
		t.Fatalf("AddMedication failed: %v", err)
	}

	old := models.NewIntake("u1", m.ID).WithTakenAt(time.Now().AddDate(0, -2, 0))
	recent := models.NewIntake("u1", m.ID)
	for _, in := range []*models.MedicationIntake{old, recent} {
		if err := db.LogIntake(in); err != nil {
			t.Fatalf("LogIntake failed: %v", err)
		}
	}

	intakes, err := db.IntakesSince("u1", time.Now().AddDate(0, 0, -30))
	if err != nil {
		t.Fatalf("IntakesSince failed: %v", err)
	}
	if len(intakes) != 1 {
		t.Fatalf("expected 1 intake in window, got %d", len(intakes))
	}
	if intakes[0].MedicationID != m.ID {
		t.Errorf("unexpected medication ID: %s", intakes[0].MedicationID)
	}
}
