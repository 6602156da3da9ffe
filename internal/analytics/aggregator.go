// ABOUTME: Metrics aggregator: folds raw health records into HealthMetrics.
// ABOUTME: Reads fan out concurrently; any failed read aborts the computation.
package analytics

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pulsekit/vitals/internal/models"
)

// Store is the record-store surface the aggregator reads from. The
// SQLite and Charm KV backends both satisfy it; tests substitute an
// in-memory fake.
type Store interface {
	ScansSince(scanType models.ScanType, userID string, since time.Time) ([]*models.Scan, error)
	HealthLogsSince(userID string, since time.Time) ([]*models.HealthLog, error)
	InsightsSince(userID string, since time.Time) ([]*models.Insight, error)
	ListMedications(userID string) ([]*models.Medication, error)
	IntakesSince(userID string, since time.Time) ([]*models.MedicationIntake, error)
	EngagementSnapshot(userID string) (*models.Engagement, error)
}

// Aggregator computes derived health metrics from raw records. It is
// stateless: every call is a pure function of what the store returns.
type Aggregator struct {
	store Store
	now   func() time.Time
}

// New creates an Aggregator reading from the given store.
func New(store Store) *Aggregator {
	return &Aggregator{store: store, now: time.Now}
}

// WithClock overrides the aggregator's clock. Tests use this to pin the
// query window.
func (a *Aggregator) WithClock(now func() time.Time) *Aggregator {
	a.now = now
	return a
}

// Now returns the aggregator's current time. Callers deriving their own
// windows should use this so clock overrides stay consistent.
func (a *Aggregator) Now() time.Time {
	return a.now()
}

// GetHealthMetrics computes the aggregate metrics for a user over the
// given time range. Unrecognized ranges fall back to the 30-day window.
// The underlying reads have no ordering dependency and run concurrently;
// if any one fails the whole computation is abandoned.
func (a *Aggregator) GetHealthMetrics(ctx context.Context, userID string, rng models.TimeRange) (*HealthMetrics, error) {
	now := a.now()
	start := rng.Start(now)

	var (
		medical, food, medication []*models.Scan
		logs                      []*models.HealthLog
		insights                  []*models.Insight
		meds                      []*models.Medication
		intakes                   []*models.MedicationIntake
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		medical, err = a.store.ScansSince(models.ScanMedical, userID, start)
		return err
	})
	g.Go(func() error {
		var err error
		food, err = a.store.ScansSince(models.ScanFood, userID, start)
		return err
	})
	g.Go(func() error {
		var err error
		medication, err = a.store.ScansSince(models.ScanMedication, userID, start)
		return err
	})
	g.Go(func() error {
		var err error
		logs, err = a.store.HealthLogsSince(userID, start)
		return err
	})
	g.Go(func() error {
		var err error
		insights, err = a.store.InsightsSince(userID, start)
		return err
	})
	g.Go(func() error {
		var err error
		meds, err = a.store.ListMedications(userID)
		return err
	})
	g.Go(func() error {
		var err error
		intakes, err = a.store.IntakesSince(userID, start)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to get health metrics: %w", err)
	}

	return &HealthMetrics{
		TotalScans: len(medical) + len(food) + len(medication),
		ScansByType: map[string]int{
			string(models.ScanMedical):    len(medical),
			string(models.ScanFood):       len(food),
			string(models.ScanMedication): len(medication),
		},
		HealthScore:         calculateHealthScore(logs, insights),
		HealthTrends:        extractHealthTrends(logs),
		MedicationAdherence: calculateAdherence(meds, intakes, start, now),
		InsightsSummary:     summarizeInsights(insights),
	}, nil
}
