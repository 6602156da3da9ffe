// ABOUTME: Store interface for health record storage.
// ABOUTME: Defines the contract shared by the SQLite and Charm KV backends.
package storage

import (
	"time"

	"github.com/pulsekit/vitals/internal/models"
)

// Store defines the storage interface for health records.
// This interface allows swapping implementations (e.g., for testing).
type Store interface {
	// Health log operations. Writes are upserts keyed on (userID, date).
	UpsertHealthLog(l *models.HealthLog) error
	GetHealthLog(userID string, date time.Time) (*models.HealthLog, error)
	HealthLogsSince(userID string, since time.Time) ([]*models.HealthLog, error)

	// Scan operations
	AddScan(s *models.Scan) error
	ScansSince(scanType models.ScanType, userID string, since time.Time) ([]*models.Scan, error)
	ListScans(userID string, limit int) ([]*models.Scan, error)

	// Insight operations
	AddInsight(i *models.Insight) error
	InsightsSince(userID string, since time.Time) ([]*models.Insight, error)
	ListInsights(userID string, limit int) ([]*models.Insight, error)
	MarkInsightRead(userID, idOrPrefix string) error

	// Medication operations
	AddMedication(m *models.Medication) error
	ListMedications(userID string) ([]*models.Medication, error)
	LogIntake(in *models.MedicationIntake) error
	IntakesSince(userID string, since time.Time) ([]*models.MedicationIntake, error)

	// Engagement tracking
	RecordActivity(a *models.Activity) error
	EngagementSnapshot(userID string) (*models.Engagement, error)

	// Export/Import
	GetAllData(userID string) (*ExportData, error)
	ImportData(data *ExportData) error

	// Lifecycle
	Close() error
}
