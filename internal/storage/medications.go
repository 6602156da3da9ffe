// ABOUTME: Medication schedule and intake operations for SQLite storage.
// ABOUTME: Schedules and logged doses feed the adherence computation.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pulsekit/vitals/internal/models"
)

// AddMedication stores a medication schedule.
func (d *DB) AddMedication(m *models.Medication) error {
	var endDate *string
	if m.EndDate != nil {
		s := m.EndDate.Format(models.DateLayout)
		endDate = &s
	}

	query := `
		INSERT INTO medications (id, user_id, name, dosage, doses_per_day, start_date, end_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		m.ID.String(),
		m.UserID,
		m.Name,
		m.Dosage,
		m.DosesPerDay,
		m.StartDate.Format(models.DateLayout),
		endDate,
		m.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("add medication: %w", err)
	}
	return nil
}

// ListMedications retrieves all of a user's medication schedules.
func (d *DB) ListMedications(userID string) ([]*models.Medication, error) {
	query := `
		SELECT id, user_id, name, dosage, doses_per_day, start_date, end_date, created_at
		FROM medications
		WHERE user_id = ?
		ORDER BY created_at ASC
	`
	rows, err := d.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("list medications: %w", err)
	}
	defer rows.Close()

	var meds []*models.Medication
	for rows.Next() {
		var m models.Medication
		var idStr, startDate, createdAt string
		var dosage, endDate sql.NullString

		err := rows.Scan(&idStr, &m.UserID, &m.Name, &dosage, &m.DosesPerDay,
			&startDate, &endDate, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan medication: %w", err)
		}

		m.ID, _ = uuid.Parse(idStr)
		m.StartDate, _ = time.Parse(models.DateLayout, startDate)
		m.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		if dosage.Valid {
			m.Dosage = &dosage.String
		}
		if endDate.Valid {
			t, _ := time.Parse(models.DateLayout, endDate.String)
			m.EndDate = &t
		}

		meds = append(meds, &m)
	}
	return meds, rows.Err()
}

// LogIntake records a taken dose.
func (d *DB) LogIntake(in *models.MedicationIntake) error {
	query := `
		INSERT INTO medication_intakes (id, user_id, medication_id, taken_at, created_at)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		in.ID.String(),
		in.UserID,
		in.MedicationID.String(),
		in.TakenAt.Format(time.RFC3339),
		in.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("log intake: %w", err)
	}
	return nil
}

// IntakesSince retrieves doses taken on or after the given timestamp,
// oldest first.
func (d *DB) IntakesSince(userID string, since time.Time) ([]*models.MedicationIntake, error) {
	query := `
		SELECT id, user_id, medication_id, taken_at, created_at
		FROM medication_intakes
		WHERE user_id = ? AND taken_at >= ?
		ORDER BY taken_at ASC
	`
	rows, err := d.db.Query(query, userID, since.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("list intakes: %w", err)
	}
	defer rows.Close()

	var intakes []*models.MedicationIntake
	for rows.Next() {
		var in models.MedicationIntake
		var idStr, medID, takenAt, createdAt string

		if err := rows.Scan(&idStr, &in.UserID, &medID, &takenAt, &createdAt); err != nil {
			return nil, fmt.Errorf("scan intake: %w", err)
		}

		in.ID, _ = uuid.Parse(idStr)
		in.MedicationID, _ = uuid.Parse(medID)
		in.TakenAt, _ = time.Parse(time.RFC3339, takenAt)
		in.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

		intakes = append(intakes, &in)
	}
	return intakes, rows.Err()
}
