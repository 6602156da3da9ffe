// ABOUTME: Scan record operations for SQLite storage.
// ABOUTME: Analytics reads range-filtered scans; the CLI adds and lists them.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pulsekit/vitals/internal/models"
)

// AddScan stores a new scan record.
func (d *DB) AddScan(s *models.Scan) error {
	query := `
		INSERT INTO scans (id, user_id, scan_type, label, processed, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		s.ID.String(),
		s.UserID,
		string(s.ScanType),
		s.Label,
		s.Processed,
		s.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("add scan: %w", err)
	}
	return nil
}

// ScansSince retrieves one collection's scans for a user created on or
// after the given timestamp, oldest first.
func (d *DB) ScansSince(scanType models.ScanType, userID string, since time.Time) ([]*models.Scan, error) {
	query := `
		SELECT id, user_id, scan_type, label, processed, created_at
		FROM scans
		WHERE user_id = ? AND scan_type = ? AND created_at >= ?
		ORDER BY created_at ASC
	`
	rows, err := d.db.Query(query, userID, string(scanType), since.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("list scans: %w", err)
	}
	defer rows.Close()

	return collectScans(rows)
}

// ListScans retrieves a user's scans across all collections, most recent
// first.
func (d *DB) ListScans(userID string, limit int) ([]*models.Scan, error) {
	query := `
		SELECT id, user_id, scan_type, label, processed, created_at
		FROM scans
		WHERE user_id = ?
		ORDER BY created_at DESC
	`
	args := []interface{}{userID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list scans: %w", err)
	}
	defer rows.Close()

	return collectScans(rows)
}

func collectScans(rows *sql.Rows) ([]*models.Scan, error) {
	var scans []*models.Scan
	for rows.Next() {
		var s models.Scan
		var idStr, scanType, createdAt string
		var label sql.NullString

		if err := rows.Scan(&idStr, &s.UserID, &scanType, &label, &s.Processed, &createdAt); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		s.ID, _ = uuid.Parse(idStr)
		s.ScanType = models.ScanType(scanType)
		s.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		if label.Valid {
			s.Label = &label.String
		}

		scans = append(scans, &s)
	}
	return scans, rows.Err()
}
