package health

import (
	"math"
	"sort"
	"time"
)

// AverageIntervalDays computes a vehicle's typical inspection cadence: the
// mean whole-day gap between consecutive inspections, rounded to the
// nearest day. Requires at least two records; ok is false otherwise and
// the caller must fall back to fixed thresholds.
func AverageIntervalDays(inspections []Inspection) (int, bool) {
	if len(inspections) < 2 {
		return 0, false
	}

	sorted := make([]Inspection, len(inspections))
	copy(sorted, inspections)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].OccurredAt.Before(sorted[j].OccurredAt)
	})

	var total int
	for i := 1; i < len(sorted); i++ {
		total += wholeDays(sorted[i-1].OccurredAt, sorted[i].OccurredAt)
	}
	mean := float64(total) / float64(len(sorted)-1)
	return int(math.Round(mean)), true
}

// wholeDays returns the number of whole days from earlier to later.
func wholeDays(earlier, later time.Time) int {
	return int(later.Sub(earlier).Hours() / 24)
}
