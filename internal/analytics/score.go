// ABOUTME: Health score computation from logs and insight severity.
// ABOUTME: A derived 0-100 integer, not a medical metric.
package analytics

import (
	"math"

	"github.com/pulsekit/vitals/internal/models"
)

const (
	defaultScore    = 75
	criticalPenalty = 15
	highPenalty     = 10
	consistentBonus = 5
	vitalsBonus     = 5

	// Missing mood/energy values are treated as mid-scale when averaging.
	neutralScale = 5
)

// calculateHealthScore scores recent logging consistency and insight
// severity on a 0-100 scale. An empty log window short-circuits to a
// flat default: no signal, no judgment. Logs are expected in ascending
// date order so the tail slice covers the most recent entries.
func calculateHealthScore(logs []*models.HealthLog, insights []*models.Insight) int {
	if len(logs) == 0 {
		return defaultScore
	}

	score := 100.0

	// Penalties are unbounded downward before the final clamp
	for _, i := range insights {
		switch i.Severity {
		case models.SeverityCritical:
			score -= criticalPenalty
		case models.SeverityHigh:
			score -= highPenalty
		}
	}

	recent := logs
	if len(recent) > 7 {
		recent = recent[len(recent)-7:]
	}

	if len(recent) >= 5 {
		score += consistentBonus
	}
	if averageScale(recent, func(l *models.HealthLog) *int { return l.MoodScore }) >= 7 {
		score += vitalsBonus
	}
	if averageScale(recent, func(l *models.HealthLog) *int { return l.EnergyLevel }) >= 7 {
		score += vitalsBonus
	}

	return clamp(int(math.Round(score)), 0, 100)
}

// averageScale averages an optional 1-10 field over the given logs,
// substituting the neutral mid-scale value for missing entries.
func averageScale(logs []*models.HealthLog, field func(*models.HealthLog) *int) float64 {
	if len(logs) == 0 {
		return 0
	}
	sum := 0
	for _, l := range logs {
		if v := field(l); v != nil {
			sum += *v
		} else {
			sum += neutralScale
		}
	}
	return float64(sum) / float64(len(logs))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
