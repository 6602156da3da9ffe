// ABOUTME: HealthLog model for daily vitals entries.
// ABOUTME: One row per user per calendar date, all measurements optional.
package models

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the canonical format for log dates.
const DateLayout = "2006-01-02"

// HealthLog is one user's vitals entry for a single calendar date.
// Entries are unique on (UserID, LogDate) and written via upsert; every
// measurement is optional, so absent fields are nil rather than zero.
type HealthLog struct {
	ID              uuid.UUID `json:"id"`
	UserID          string    `json:"user_id"`
	LogDate         time.Time `json:"log_date"`
	Weight          *float64  `json:"weight,omitempty"`
	SystolicBP      *int      `json:"blood_pressure_systolic,omitempty"`
	DiastolicBP     *int      `json:"blood_pressure_diastolic,omitempty"`
	HeartRate       *int      `json:"heart_rate,omitempty"`
	Temperature     *float64  `json:"temperature,omitempty"`
	MoodScore       *int      `json:"mood_score,omitempty"`
	EnergyLevel     *int      `json:"energy_level,omitempty"`
	SleepHours      *float64  `json:"sleep_hours,omitempty"`
	ExerciseMinutes *int      `json:"exercise_minutes,omitempty"`
	WaterIntakeML   *int      `json:"water_intake_ml,omitempty"`
	Notes           *string   `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// NewHealthLog creates an empty log entry for a user and date.
// LogDate is truncated to midnight UTC so upserts key consistently.
func NewHealthLog(userID string, date time.Time) *HealthLog {
	now := time.Now()
	y, m, d := date.Date()
	return &HealthLog{
		ID:        uuid.New(),
		UserID:    userID,
		LogDate:   time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// DateString returns the log date in YYYY-MM-DD form.
func (l *HealthLog) DateString() string {
	return l.LogDate.Format(DateLayout)
}

// WithWeight sets the weight measurement in kg.
func (l *HealthLog) WithWeight(kg float64) *HealthLog {
	l.Weight = &kg
	return l
}

// WithBloodPressure sets the systolic/diastolic pair. Both values are
// required together; a lone reading carries no trend signal.
func (l *HealthLog) WithBloodPressure(systolic, diastolic int) *HealthLog {
	l.SystolicBP = &systolic
	l.DiastolicBP = &diastolic
	return l
}

// WithHeartRate sets the resting heart rate in bpm.
func (l *HealthLog) WithHeartRate(bpm int) *HealthLog {
	l.HeartRate = &bpm
	return l
}

// WithTemperature sets the body temperature in °C.
func (l *HealthLog) WithTemperature(celsius float64) *HealthLog {
	l.Temperature = &celsius
	return l
}

// WithMood sets the mood score on a 1-10 scale.
func (l *HealthLog) WithMood(score int) *HealthLog {
	l.MoodScore = &score
	return l
}

// WithEnergy sets the energy level on a 1-10 scale.
func (l *HealthLog) WithEnergy(level int) *HealthLog {
	l.EnergyLevel = &level
	return l
}

// WithSleep sets hours slept.
func (l *HealthLog) WithSleep(hours float64) *HealthLog {
	l.SleepHours = &hours
	return l
}

// WithExercise sets exercise minutes.
func (l *HealthLog) WithExercise(minutes int) *HealthLog {
	l.ExerciseMinutes = &minutes
	return l
}

// WithWater sets water intake in ml.
func (l *HealthLog) WithWater(ml int) *HealthLog {
	l.WaterIntakeML = &ml
	return l
}

// WithNotes sets free-text notes on the entry.
func (l *HealthLog) WithNotes(notes string) *HealthLog {
	l.Notes = &notes
	return l
}
