// ABOUTME: Health insight operations for SQLite storage.
// ABOUTME: Insights are immutable except the read flag.
package storage

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pulsekit/vitals/internal/models"
)

// AddInsight stores a generated insight.
func (d *DB) AddInsight(i *models.Insight) error {
	query := `
		INSERT INTO health_insights (id, user_id, insight_type, severity, title, body, confidence, read, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		i.ID.String(),
		i.UserID,
		i.InsightType,
		string(i.Severity),
		i.Title,
		i.Body,
		i.Confidence,
		i.Read,
		i.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("add insight: %w", err)
	}
	return nil
}

// InsightsSince retrieves a user's insights created on or after the
// given timestamp, oldest first.
func (d *DB) InsightsSince(userID string, since time.Time) ([]*models.Insight, error) {
	query := `
		SELECT id, user_id, insight_type, severity, title, body, confidence, read, created_at
		FROM health_insights
		WHERE user_id = ? AND created_at >= ?
		ORDER BY created_at ASC
	`
	rows, err := d.db.Query(query, userID, since.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("list insights: %w", err)
	}
	defer rows.Close()

	return collectInsights(rows)
}

// ListInsights retrieves a user's insights, most recent first.
func (d *DB) ListInsights(userID string, limit int) ([]*models.Insight, error) {
	query := `
		SELECT id, user_id, insight_type, severity, title, body, confidence, read, created_at
		FROM health_insights
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
		return nil, fmt.Errorf("list insights: %w", err)
	}
	defer rows.Close()

	return collectInsights(rows)
}

// MarkInsightRead sets the read flag on an insight by ID or ID prefix.
func (d *DB) MarkInsightRead(userID, idOrPrefix string) error {
	id, err := d.resolveInsightID(userID, idOrPrefix)
	if err != nil {
		return fmt.Errorf("mark insight read: %w", err)
	}

	_, err = d.db.Exec("UPDATE health_insights SET read = 1 WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("mark insight read: %w", err)
	}
	return nil
}

// resolveInsightID finds the full ID from a prefix.
func (d *DB) resolveInsightID(userID, idOrPrefix string) (string, error) {
	// If it looks like a full UUID, use it directly
	if len(idOrPrefix) == 36 && strings.Count(idOrPrefix, "-") == 4 {
		return idOrPrefix, nil
	}

	query := `SELECT id FROM health_insights WHERE user_id = ? AND id LIKE ? || '%'`
	rows, err := d.db.Query(query, userID, idOrPrefix)
	if err != nil {
		return "", fmt.Errorf("resolve insight ID: %w", err)
	}
	defer rows.Close()

	var matches []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("scan insight ID: %w", err)
		}
		matches = append(matches, id)
	}

	if len(matches) == 0 {
		return "", fmt.Errorf("not found: %s", idOrPrefix)
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("ambiguous prefix %s: matches multiple records", idOrPrefix)
	}

	return matches[0], nil
}

func collectInsights(rows *sql.Rows) ([]*models.Insight, error) {
	var insights []*models.Insight
	for rows.Next() {
		var i models.Insight
		var idStr, severity, createdAt string
		var body sql.NullString

		err := rows.Scan(&idStr, &i.UserID, &i.InsightType, &severity, &i.Title,
			&body, &i.Confidence, &i.Read, &createdAt)
		if err != nil {
			return nil, fmt.Errorf("scan insight: %w", err)
		}

		i.ID, _ = uuid.Parse(idStr)
		i.Severity = models.Severity(severity)
		i.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		if body.Valid {
			i.Body = &body.String
		}

		insights = append(insights, &i)
	}
	return insights, rows.Err()
}
