// ABOUTME: Engagement snapshot of how actively a user logs data.
// ABOUTME: Used only by report generation, never by the metrics core.
package models

import "time"

// Engagement summarizes recent user activity for report generation.
type Engagement struct {
	LoginFrequency      int       `json:"loginFrequency"`
	FeaturesUsed        []string  `json:"featuresUsed"`
	TimeSpentPerSession int       `json:"timeSpentPerSession"`
	LastActiveDate      time.Time `json:"lastActiveDate"`
}

// Activity is one recorded user action, kept for engagement tracking.
type Activity struct {
	UserID    string            `json:"user_id"`
	Name      string            `json:"activity"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}
