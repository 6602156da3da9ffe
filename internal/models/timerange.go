// ABOUTME: TimeRange enum for bounding analytics queries.
// ABOUTME: Unrecognized ranges resolve to the default 30-day window.
package models

import "time"

// TimeRange is a fixed lookback window used to bound all analytics reads.
type TimeRange string

const (
	Range7Days  TimeRange = "7d"
	Range30Days TimeRange = "30d"
	Range90Days TimeRange = "90d"
	Range1Year  TimeRange = "1y"
)

// DefaultTimeRange is used when the caller supplies an unrecognized range.
const DefaultTimeRange = Range30Days

var rangeDays = map[TimeRange]int{
	Range7Days:  7,
	Range30Days: 30,
	Range90Days: 90,
	Range1Year:  365,
}

// AllTimeRanges returns all valid time ranges.
var AllTimeRanges = []TimeRange{Range7Days, Range30Days, Range90Days, Range1Year}

// ParseTimeRange resolves a string to a TimeRange. Unrecognized values
// fall back to the 30-day window rather than failing; callers that want
// strict validation should check IsValidTimeRange first.
func ParseTimeRange(s string) TimeRange {
	r := TimeRange(s)
	if _, ok := rangeDays[r]; !ok {
		return DefaultTimeRange
	}
	return r
}

// IsValidTimeRange checks if a string is a recognized time range.
func IsValidTimeRange(s string) bool {
	_, ok := rangeDays[TimeRange(s)]
	return ok
}

// Days returns the number of lookback days for the range, falling back
// to the default window for unrecognized values.
func (r TimeRange) Days() int {
	if d, ok := rangeDays[r]; ok {
		return d
	}
	return rangeDays[DefaultTimeRange]
}

// Start returns the absolute start of the window ending at now.
func (r TimeRange) Start(now time.Time) time.Time {
	return now.AddDate(0, 0, -r.Days())
}
