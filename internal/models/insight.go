// ABOUTME: Insight model for generated health recommendations.
// ABOUTME: Immutable once created except for the read flag.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Severity grades how urgent an insight is.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// AllSeverities returns all valid severities.
var AllSeverities = []Severity{
	SeverityInfo, SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical,
}

// IsValidSeverity checks if a string is a valid severity.
func IsValidSeverity(s string) bool {
	for _, sv := range AllSeverities {
		if string(sv) == s {
			return true
		}
	}
	return false
}

// Common insight types. The set is open-ended: generators may introduce
// new categories, so InsightType is not validated against this list.
const (
	InsightNutrition  = "nutrition"
	InsightMedical    = "medical"
	InsightLifestyle  = "lifestyle"
	InsightPreventive = "preventive"
)

// Insight is a generated health recommendation.
type Insight struct {
	ID          uuid.UUID `json:"id"`
	UserID      string    `json:"user_id"`
	InsightType string    `json:"insight_type"`
	Severity    Severity  `json:"severity"`
	Title       string    `json:"title"`
	Body        *string   `json:"body,omitempty"`
	Confidence  float64   `json:"confidence"`
	Read        bool      `json:"read"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewInsight creates an unread insight. Confidence is clamped to [0,1].
func NewInsight(userID, insightType string, severity Severity, title string, confidence float64) *Insight {
	if confidence < 0 {
		confidence = 0
	}
	if confidence > 1 {
		confidence = 1
	}
	return &Insight{
		ID:          uuid.New(),
		UserID:      userID,
		InsightType: insightType,
		Severity:    severity,
		Title:       title,
		Confidence:  confidence,
		CreatedAt:   time.Now(),
	}
}

// WithBody sets the long-form insight text.
func (i *Insight) WithBody(body string) *Insight {
	i.Body = &body
	return i
}
