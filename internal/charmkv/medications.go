// ABOUTME: Medication schedule, intake, and engagement ops for Charm KV.
// ABOUTME: Also carries export/import so the backend is fully swappable.
package charmkv

import (
	"fmt"
	"sort"
	"time"

	"github.com/pulsekit/vitals/internal/models"
	"github.com/pulsekit/vitals/internal/storage"
)

// AddMedication stores a medication schedule.
func (c *Client) AddMedication(m *models.Medication) error {
	data, err := marshalJSON(m)
	if err != nil {
		return fmt.Errorf("marshal medication: %w", err)
	}
	return c.set(MedPrefix+m.UserID+":"+m.ID.String(), data)
}

// ListMedications retrieves all of a user's medication schedules.
func (c *Client) ListMedications(userID string) ([]*models.Medication, error) {
	allData, err := c.listByPrefix(MedPrefix + userID + ":")
	if err != nil {
		return nil, fmt.Errorf("list medications: %w", err)
	}

	var meds []*models.Medication
	for _, data := range allData {
		m, err := unmarshalJSON[models.Medication](data)
		if err != nil {
			continue
		}
		meds = append(meds, m)
	}

	sort.Slice(meds, func(i, j int) bool {
		return meds[i].CreatedAt.Before(meds[j].CreatedAt)
	})

	return meds, nil
}

// LogIntake records a taken dose.
func (c *Client) LogIntake(in *models.MedicationIntake) error {
	data, err := marshalJSON(in)
	if err != nil {
		return fmt.Errorf("marshal intake: %w", err)
	}
	return c.set(IntakePrefix+in.UserID+":"+in.ID.String(), data)
}

// IntakesSince retrieves doses taken on or after the given timestamp,
// oldest first.
func (c *Client) IntakesSince(userID string, since time.Time) ([]*models.MedicationIntake, error) {
	allData, err := c.listByPrefix(IntakePrefix + userID + ":")
	if err != nil {
		return nil, fmt.Errorf("list intakes: %w", err)
	}

	var intakes []*models.MedicationIntake
	for _, data := range allData {
		in, err := unmarshalJSON[models.MedicationIntake](data)
		if err != nil {
			continue
		}
		if in.TakenAt.Before(since) {
			continue
		}
		intakes = append(intakes, in)
	}

	sort.Slice(intakes, func(i, j int) bool {
		return intakes[i].TakenAt.Before(intakes[j].TakenAt)
	})

	return intakes, nil
}

// RecordActivity stores one user action for engagement tracking.
func (c *Client) RecordActivity(a *models.Activity) error {
	data, err := marshalJSON(a)
	if err != nil {
		return fmt.Errorf("record activity: %w", err)
	}
	key := ActivityPrefix + a.UserID + ":" + a.CreatedAt.Format(time.RFC3339Nano)
	return c.set(key, data)
}

// EngagementSnapshot summarizes recent user activity.
func (c *Client) EngagementSnapshot(userID string) (*models.Engagement, error) {
	allData, err := c.listByPrefix(ActivityPrefix + userID + ":")
	if err != nil {
		return nil, fmt.Errorf("engagement snapshot: %w", err)
	}

	var activities []*models.Activity
	for _, data := range allData {
		a, err := unmarshalJSON[models.Activity](data)
		if err != nil {
			continue
		}
		activities = append(activities, a)
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].CreatedAt.After(activities[j].CreatedAt)
	})
	if len(activities) > 10 {
		activities = activities[:10]
	}

	lastActive := time.Now()
	if len(activities) > 0 {
		lastActive = activities[0].CreatedAt
	}

	seen := make(map[string]bool)
	features := []string{}
	for _, a := range activities {
		if !seen[a.Name] {
			seen[a.Name] = true
			features = append(features, a.Name)
		}
	}

	return &models.Engagement{
		LoginFrequency:      len(activities),
		FeaturesUsed:        features,
		TimeSpentPerSession: 15,
		LastActiveDate:      lastActive,
	}, nil
}

// GetAllData retrieves all of a user's records for export.
func (c *Client) GetAllData(userID string) (*storage.ExportData, error) {
	epoch := time.Unix(0, 0)

	logs, err := c.HealthLogsSince(userID, epoch)
	if err != nil {
		return nil, err
	}
	scans, err := c.ListScans(userID, 0)
	if err != nil {
		return nil, err
	}
	insights, err := c.ListInsights(userID, 0)
	if err != nil {
		return nil, err
	}
	meds, err := c.ListMedications(userID)
	if err != nil {
		return nil, err
	}
	intakes, err := c.IntakesSince(userID, epoch)
	if err != nil {
		return nil, err
	}

	return &storage.ExportData{
		Version:     "1.0",
		ExportedAt:  time.Now(),
		Tool:        "vitals",
		UserID:      userID,
		HealthLogs:  logs,
		Scans:       scans,
		Insights:    insights,
		Medications: meds,
		Intakes:     intakes,
	}, nil
}

// ImportData imports records from an export file.
func (c *Client) ImportData(data *storage.ExportData) error {
	for _, l := range data.HealthLogs {
		if err := c.UpsertHealthLog(l); err != nil {
			return fmt.Errorf("import health log: %w", err)
		}
	}
	for _, s := range data.Scans {
		if err := c.AddScan(s); err != nil {
			return fmt.Errorf("import scan: %w", err)
		}
	}
	for _, i := range data.Insights {
		if err := c.AddInsight(i); err != nil {
			return fmt.Errorf("import insight: %w", err)
		}
	}
	for _, m := range data.Medications {
		if err := c.AddMedication(m); err != nil {
			return fmt.Errorf("import medication: %w", err)
		}
	}
	for _, in := range data.Intakes {
		if err := c.LogIntake(in); err != nil {
			return fmt.Errorf("import intake: %w", err)
		}
	}
	return nil
}
