// ABOUTME: Scan model for user-submitted artifacts.
// ABOUTME: Three collections: medical, food, and medication scans.
package models

import (
	"time"

	"github.com/google/uuid"
)

// ScanType identifies which scan collection a record belongs to.
type ScanType string

const (
	ScanMedical    ScanType = "medical"
	ScanFood       ScanType = "food"
	ScanMedication ScanType = "medication"
)

// AllScanTypes returns all valid scan types.
var AllScanTypes = []ScanType{ScanMedical, ScanFood, ScanMedication}

// IsValidScanType checks if a string is a valid scan type.
func IsValidScanType(s string) bool {
	for _, st := range AllScanTypes {
		if string(st) == s {
			return true
		}
	}
	return false
}

// Scan records a user-submitted artifact. Analytics only reads counts
// and timestamps; scan content lives with the upload service.
type Scan struct {
	ID        uuid.UUID `json:"id"`
	UserID    string    `json:"user_id"`
	ScanType  ScanType  `json:"scan_type"`
	Label     *string   `json:"label,omitempty"`
	Processed bool      `json:"processed"`
	CreatedAt time.Time `json:"created_at"`
}

// NewScan creates a new unprocessed scan record.
func NewScan(userID string, scanType ScanType) *Scan {
	return &Scan{
		ID:        uuid.New(),
		UserID:    userID,
		ScanType:  scanType,
		CreatedAt: time.Now(),
	}
}

// WithLabel sets a display label on the scan.
func (s *Scan) WithLabel(label string) *Scan {
	s.Label = &label
	return s
}

// MarkProcessed flags the scan as processed.
func (s *Scan) MarkProcessed() *Scan {
	s.Processed = true
	return s
}
