// ABOUTME: Health log operations for SQLite storage.
// ABOUTME: Logs are upserted on (user_id, log_date), never deleted here.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pulsekit/vitals/internal/models"
)

const logColumns = `id, user_id, log_date, weight, blood_pressure_systolic,
	blood_pressure_diastolic, heart_rate, temperature, mood_score, energy_level,
	sleep_hours, exercise_minutes, water_intake_ml, notes, created_at, updated_at`

// UpsertHealthLog inserts a log entry, replacing the measurements of an
// existing entry for the same user and date. CreatedAt of the original
// row is preserved on conflict.
func (d *DB) UpsertHealthLog(l *models.HealthLog) error {
	query := `
		INSERT INTO health_logs (` + logColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(user_id, log_date) DO UPDATE SET
			weight = excluded.weight,
			blood_pressure_systolic = excluded.blood_pressure_systolic,
			blood_pressure_diastolic = excluded.blood_pressure_diastolic,
			heart_rate = excluded.heart_rate,
			temperature = excluded.temperature,
			mood_score = excluded.mood_score,
			energy_level = excluded.energy_level,
			sleep_hours = excluded.sleep_hours,
			exercise_minutes = excluded.exercise_minutes,
			water_intake_ml = excluded.water_intake_ml,
			notes = excluded.notes,
			updated_at = excluded.updated_at
	`
	l.UpdatedAt = time.Now()
	_, err := d.db.Exec(query,
		l.ID.String(),
		l.UserID,
		l.DateString(),
		l.Weight,
		l.SystolicBP,
		l.DiastolicBP,
		l.HeartRate,
		l.Temperature,
		l.MoodScore,
		l.EnergyLevel,
		l.SleepHours,
		l.ExerciseMinutes,
		l.WaterIntakeML,
		l.Notes,
		l.CreatedAt.Format(time.RFC3339),
		l.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upsert health log: %w", err)
	}
	return nil
}

// GetHealthLog retrieves one user's log entry for a calendar date.
func (d *DB) GetHealthLog(userID string, date time.Time) (*models.HealthLog, error) {
	query := `SELECT ` + logColumns + ` FROM health_logs WHERE user_id = ? AND log_date = ?`
	row := d.db.QueryRow(query, userID, date.Format(models.DateLayout))
	l, err := scanHealthLog(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("no log for %s", date.Format(models.DateLayout))
		}
		return nil, err
	}
	return l, nil
}

// HealthLogsSince retrieves a user's log entries on or after the given
// date, ordered ascending by log date (oldest first).
func (d *DB) HealthLogsSince(userID string, since time.Time) ([]*models.HealthLog, error) {
	query := `
		SELECT ` + logColumns + `
		FROM health_logs
		WHERE user_id = ? AND log_date >= ?
		ORDER BY log_date ASC
	`
	rows, err := d.db.Query(query, userID, since.Format(models.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("list health logs: %w", err)
	}
	defer rows.Close()

	var logs []*models.HealthLog
	for rows.Next() {
		l, err := scanHealthLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanHealthLog(s scanner) (*models.HealthLog, error) {
	var l models.HealthLog
	var idStr, logDate, createdAt, updatedAt string
	var weight, temperature, sleepHours sql.NullFloat64
	var sys, dia, heartRate, mood, energy, exercise, water sql.NullInt64
	var notes sql.NullString

	err := s.Scan(&idStr, &l.UserID, &logDate, &weight, &sys, &dia, &heartRate,
		&temperature, &mood, &energy, &sleepHours, &exercise, &water, &notes,
		&createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scan health log: %w", err)
	}

	l.ID, _ = uuid.Parse(idStr)
	l.LogDate, _ = time.Parse(models.DateLayout, logDate)
	l.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	l.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAt)

	if weight.Valid {
		l.Weight = &weight.Float64
	}
	if sys.Valid && dia.Valid {
		s := int(sys.Int64)
		di := int(dia.Int64)
		l.SystolicBP = &s
		l.DiastolicBP = &di
	}
	if heartRate.Valid {
		hr := int(heartRate.Int64)
		l.HeartRate = &hr
	}
	if temperature.Valid {
		l.Temperature = &temperature.Float64
	}
	if mood.Valid {
		m := int(mood.Int64)
		l.MoodScore = &m
	}
	if energy.Valid {
		e := int(energy.Int64)
		l.EnergyLevel = &e
	}
	if sleepHours.Valid {
		l.SleepHours = &sleepHours.Float64
	}
	if exercise.Valid {
		ex := int(exercise.Int64)
		l.ExerciseMinutes = &ex
	}
	if water.Valid {
		w := int(water.Int64)
		l.WaterIntakeML = &w
	}
	if notes.Valid {
		l.Notes = &notes.String
	}

	return &l, nil
}
