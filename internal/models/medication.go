// ABOUTME: Medication schedule and intake models.
// ABOUTME: Schedules plus logged doses drive the adherence computation.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Medication is a scheduled medication: how many doses per day and over
// which date range the schedule is active. A nil EndDate means open-ended.
type Medication struct {
	ID          uuid.UUID  `json:"id"`
	UserID      string     `json:"user_id"`
	Name        string     `json:"name"`
	Dosage      *string    `json:"dosage,omitempty"`
	DosesPerDay int        `json:"doses_per_day"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// NewMedication creates a schedule starting today with one dose per day.
func NewMedication(userID, name string) *Medication {
	now := time.Now()
	y, m, d := now.Date()
	return &Medication{
		ID:          uuid.New(),
		UserID:      userID,
		Name:        name,
		DosesPerDay: 1,
		StartDate:   time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		CreatedAt:   now,
	}
}

// WithDosage sets a human-readable dosage description ("10mg", etc.).
func (m *Medication) WithDosage(dosage string) *Medication {
	m.Dosage = &dosage
	return m
}

// WithDosesPerDay sets the scheduled doses per day.
func (m *Medication) WithDosesPerDay(n int) *Medication {
	m.DosesPerDay = n
	return m
}

// WithStartDate sets a custom schedule start.
func (m *Medication) WithStartDate(t time.Time) *Medication {
	m.StartDate = t
	return m
}

// WithEndDate closes the schedule at the given date.
func (m *Medication) WithEndDate(t time.Time) *Medication {
	m.EndDate = &t
	return m
}

// ActiveBetween reports whether the schedule overlaps [from, to].
func (m *Medication) ActiveBetween(from, to time.Time) bool {
	if m.StartDate.After(to) {
		return false
	}
	if m.EndDate != nil && m.EndDate.Before(from) {
		return false
	}
	return true
}

// MedicationIntake is one logged dose.
type MedicationIntake struct {
	ID           uuid.UUID `json:"id"`
	UserID       string    `json:"user_id"`
	MedicationID uuid.UUID `json:"medication_id"`
	TakenAt      time.Time `json:"taken_at"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewIntake logs a dose taken now.
func NewIntake(userID string, medicationID uuid.UUID) *MedicationIntake {
	now := time.Now()
	return &MedicationIntake{
		ID:           uuid.New(),
		UserID:       userID,
		MedicationID: medicationID,
		TakenAt:      now,
		CreatedAt:    now,
	}
}

// WithTakenAt sets a custom intake timestamp.
func (i *MedicationIntake) WithTakenAt(t time.Time) *MedicationIntake {
	i.TakenAt = t
	return i
}
