// ABOUTME: Health log, scan, and insight operations for Charm KV storage.
// ABOUTME: Range filtering happens client-side after a prefix list.
package charmkv

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pulsekit/vitals/internal/models"
)

// logKey keys log entries on (user, date) so writes are natural upserts.
func logKey(userID string, date time.Time) string {
	return LogPrefix + userID + ":" + date.Format(models.DateLayout)
}

// UpsertHealthLog stores a log entry, replacing any entry for the same
// user and date.
func (c *Client) UpsertHealthLog(l *models.HealthLog) error {
	l.UpdatedAt = time.Now()
	data, err := marshalJSON(l)
	if err != nil {
		return fmt.Errorf("marshal health log: %w", err)
	}
	return c.set(logKey(l.UserID, l.LogDate), data)
}

// GetHealthLog retrieves one user's log entry for a calendar date.
func (c *Client) GetHealthLog(userID string, date time.Time) (*models.HealthLog, error) {
	c.mu.RLock()
	data, err := c.kv.Get([]byte(logKey(userID, date)))
	c.mu.RUnlock()
	if err != nil {
		return nil, fmt.Errorf("no log for %s", date.Format(models.DateLayout))
	}
	return unmarshalJSON[models.HealthLog](data)
}

// HealthLogsSince retrieves a user's log entries on or after the given
// date, ordered ascending by log date.
func (c *Client) HealthLogsSince(userID string, since time.Time) ([]*models.HealthLog, error) {
	allData, err := c.listByPrefix(LogPrefix + userID + ":")
	if err != nil {
		return nil, fmt.Errorf("list health logs: %w", err)
	}

	var logs []*models.HealthLog
	for _, data := range allData {
		l, err := unmarshalJSON[models.HealthLog](data)
		if err != nil {
			continue // Skip invalid entries
		}
		if l.LogDate.Before(since) {
			continue
		}
		logs = append(logs, l)
	}

	sort.Slice(logs, func(i, j int) bool {
		return logs[i].LogDate.Before(logs[j].LogDate)
	})

	return logs, nil
}

// AddScan stores a new scan record.
func (c *Client) AddScan(s *models.Scan) error {
	data, err := marshalJSON(s)
	if err != nil {
		return fmt.Errorf("marshal scan: %w", err)
	}
	return c.set(ScanPrefix+s.UserID+":"+s.ID.String(), data)
}

// ScansSince retrieves one collection's scans created on or after the
// given timestamp, oldest first.
func (c *Client) ScansSince(scanType models.ScanType, userID string, since time.Time) ([]*models.Scan, error) {
	scans, err := c.listScans(userID)
	if err != nil {
		return nil, err
	}

	var filtered []*models.Scan
	for _, s := range scans {
		if s.ScanType != scanType || s.CreatedAt.Before(since) {
			continue
		}
		filtered = append(filtered, s)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.Before(filtered[j].CreatedAt)
	})

	return filtered, nil
}

// ListScans retrieves a user's scans across all collections, most
// recent first.
func (c *Client) ListScans(userID string, limit int) ([]*models.Scan, error) {
	scans, err := c.listScans(userID)
	if err != nil {
		return nil, err
	}

	sort.Slice(scans, func(i, j int) bool {
		return scans[i].CreatedAt.After(scans[j].CreatedAt)
	})

	if limit > 0 && len(scans) > limit {
		scans = scans[:limit]
	}
	return scans, nil
}

func (c *Client) listScans(userID string) ([]*models.Scan, error) {
	allData, err := c.listByPrefix(ScanPrefix + userID + ":")
	if err != nil {
		return nil, fmt.Errorf("list scans: %w", err)
	}

	var scans []*models.Scan
	for _, data := range allData {
		s, err := unmarshalJSON[models.Scan](data)
		if err != nil {
			continue
		}
		scans = append(scans, s)
	}
	return scans, nil
}

// AddInsight stores a generated insight.
func (c *Client) AddInsight(i *models.Insight) error {
	data, err := marshalJSON(i)
	if err != nil {
		return fmt.Errorf("marshal insight: %w", err)
	}
	return c.set(InsightPrefix+i.UserID+":"+i.ID.String(), data)
}

// InsightsSince retrieves insights created on or after the given
// timestamp, oldest first.
func (c *Client) InsightsSince(userID string, since time.Time) ([]*models.Insight, error) {
	insights, err := c.listInsights(userID)
	if err != nil {
		return nil, err
	}

	var filtered []*models.Insight
	for _, i := range insights {
		if i.CreatedAt.Before(since) {
			continue
		}
		filtered = append(filtered, i)
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.Before(filtered[j].CreatedAt)
	})

	return filtered, nil
}

// ListInsights retrieves a user's insights, most recent first.
func (c *Client) ListInsights(userID string, limit int) ([]*models.Insight, error) {
	insights, err := c.listInsights(userID)
	if err != nil {
		return nil, err
	}

	sort.Slice(insights, func(i, j int) bool {
		return insights[i].CreatedAt.After(insights[j].CreatedAt)
	})

	if limit > 0 && len(insights) > limit {
		insights = insights[:limit]
	}
	return insights, nil
}

// MarkInsightRead sets the read flag on an insight by ID or ID prefix.
func (c *Client) MarkInsightRead(userID, idOrPrefix string) error {
	insights, err := c.listInsights(userID)
	if err != nil {
		return fmt.Errorf("mark insight read: %w", err)
	}

	var match *models.Insight
	for _, i := range insights {
		if !strings.HasPrefix(i.ID.String(), idOrPrefix) {
			continue
		}
		if match != nil {
			return fmt.Errorf("ambiguous prefix %s: matches multiple records", idOrPrefix)
		}
		match = i
	}
	if match == nil {
		return fmt.Errorf("not found: %s", idOrPrefix)
	}

	match.Read = true
	data, err := marshalJSON(match)
	if err != nil {
		return fmt.Errorf("marshal insight: %w", err)
	}
	return c.set(InsightPrefix+userID+":"+match.ID.String(), data)
}

func (c *Client) listInsights(userID string) ([]*models.Insight, error) {
	allData, err := c.listByPrefix(InsightPrefix + userID + ":")
	if err != nil {
		return nil, fmt.Errorf("list insights: %w", err)
	}

	var insights []*models.Insight
	for _, data := range allData {
		i, err := unmarshalJSON[models.Insight](data)
		if err != nil {
			continue
		}
		insights = append(insights, i)
	}
	return insights, nil
}
