// ABOUTME: Activity tracking and engagement snapshot queries.
// ABOUTME: Engagement feeds report generation only, never the metrics core.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pulsekit/vitals/internal/models"
)

// defaultSessionMinutes approximates time per session; real session
// tracking would need client-side instrumentation.
const defaultSessionMinutes = 15

// recentActivityWindow bounds how many activity rows count toward the
// login frequency estimate.
const recentActivityWindow = 10

// RecordActivity stores one user action for engagement tracking.
func (d *DB) RecordActivity(a *models.Activity) error {
	var metadata *string
	if len(a.Metadata) > 0 {
		b, err := json.Marshal(a.Metadata)
		if err != nil {
			return fmt.Errorf("record activity: %w", err)
		}
		s := string(b)
		metadata = &s
	}

	query := `INSERT INTO activities (user_id, activity, metadata, created_at) VALUES (?, ?, ?, ?)`
	if _, err := d.db.Exec(query, a.UserID, a.Name, metadata, a.CreatedAt.Format(time.RFC3339)); err != nil {
		return fmt.Errorf("record activity: %w", err)
	}
	return nil
}

// EngagementSnapshot summarizes recent user activity: how often the user
// has been active lately, which features they touched, and when they
// were last seen.
func (d *DB) EngagementSnapshot(userID string) (*models.Engagement, error) {
	query := `
		SELECT activity, created_at
		FROM activities
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT ?
	`
	rows, err := d.db.Query(query, userID, recentActivityWindow)
	if err != nil {
		return nil, fmt.Errorf("engagement snapshot: %w", err)
	}
	defer rows.Close()

	var count int
	var lastActive time.Time
	seen := make(map[string]bool)
	var features []string

	for rows.Next() {
		var activity, createdAt string
		if err := rows.Scan(&activity, &createdAt); err != nil {
			return nil, fmt.Errorf("engagement snapshot: %w", err)
		}
		t, _ := time.Parse(time.RFC3339, createdAt)
		if t.After(lastActive) {
			lastActive = t
		}
		if !seen[activity] {
			seen[activity] = true
			features = append(features, activity)
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("engagement snapshot: %w", err)
	}

	if lastActive.IsZero() {
		// Fall back to the latest health log for users without activity rows
		var createdAt sql.NullString
		err := d.db.QueryRow(
			`SELECT created_at FROM health_logs WHERE user_id = ? ORDER BY created_at DESC LIMIT 1`,
			userID,
		).Scan(&createdAt)
		if err != nil && err != sql.ErrNoRows {
			return nil, fmt.Errorf("engagement snapshot: %w", err)
		}
		if createdAt.Valid {
			lastActive, _ = time.Parse(time.RFC3339, createdAt.String)
		} else {
			lastActive = time.Now()
		}
	}

	if features == nil {
		features = []string{}
	}

	return &models.Engagement{
		LoginFrequency:      count,
		FeaturesUsed:        features,
		TimeSpentPerSession: defaultSessionMinutes,
		LastActiveDate:      lastActive,
	}, nil
}
