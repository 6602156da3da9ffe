// ABOUTME: Medication adherence computed from schedules and logged doses.
// ABOUTME: Taken doses over scheduled doses within the window, as a percentage.
package analytics

import (
	"math"
	"time"

	"github.com/pulsekit/vitals/internal/models"
)

// calculateAdherence estimates the fraction of scheduled doses actually
// taken within [start, end], as an integer percentage clamped to
// [0,100]. A window with no scheduled doses is vacuously adherent.
func calculateAdherence(meds []*models.Medication, intakes []*models.MedicationIntake, start, end time.Time) int {
	scheduled := 0
	for _, m := range meds {
		if !m.ActiveBetween(start, end) {
			continue
		}
		from := m.StartDate
		if from.Before(start) {
			from = start
		}
		to := end
		if m.EndDate != nil && m.EndDate.Before(end) {
			to = *m.EndDate
		}
		days := int(to.Sub(from).Hours()/24) + 1
		if days < 1 {
			continue
		}
		scheduled += days * m.DosesPerDay
	}

	if scheduled == 0 {
		return 100
	}

	pct := float64(len(intakes)) / float64(scheduled) * 100
	return clamp(int(math.Round(pct)), 0, 100)
}
