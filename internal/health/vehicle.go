package health

import (
	"sort"
	"time"
)

// Engine evaluates vehicle health against a fixed Config and label
// catalog. Safe for concurrent use; it holds no mutable state.
type Engine struct {
	cfg     Config
	resolve LabelResolver
}

// New creates an Engine. Zero-valued Config fields are filled from
// DefaultConfig; a nil resolver falls back to FallbackLabel.
func New(cfg Config, resolve LabelResolver) *Engine {
	cfg.applyDefaults()
	if resolve == nil {
		resolve = FallbackLabel
	}
	return &Engine{cfg: cfg, resolve: resolve}
}

// EvaluateVehicle runs every check over one vehicle's history and
// assembles the result:
//
//	no records at all        -> StateNoData
//	records, no issues       -> StateClear
//	at least one issue       -> StateFlagged
//
// Records may arrive in any order; the engine sorts its own copies.
func (e *Engine) EvaluateVehicle(now time.Time, v Vehicle, inspections []Inspection, maintenance []Maintenance) VehicleHealth {
	if len(inspections) == 0 && len(maintenance) == 0 {
		return VehicleHealth{State: StateNoData}
	}

	inspections = sortedByOccurredAtDesc(inspections)
	maintenance = sortedMaintenanceDesc(maintenance)

	var issues []Issue
	flagged := Flagged{
		VehicleID:   v.ID,
		VehicleCode: v.Code,
		Brand:       v.Brand,
		Model:       v.Model,
	}

	if len(inspections) > 0 {
		latest := inspections[0]
		days := wholeDays(latest.OccurredAt, now)
		flagged.LastInspectionAt = timePtr(latest.OccurredAt)
		flagged.DaysSinceInspection = intPtr(days)

		avg, haveAvg := AverageIntervalDays(inspections)
		if issue, ok := e.inspectionOverdueIssue(days, avg, haveAvg); ok {
			issues = append(issues, issue)
		}
		if issue, ok := e.recentFailureIssue(now, inspections); ok {
			issues = append(issues, issue)
		}
		if issue, ok := e.recurringFailureIssue(inspections); ok {
			issues = append(issues, issue)
		}
		// Missing-maintenance is only flagged when inspections exist.
		// Observed behavior carried over from the legacy checks; see
		// DESIGN.md before changing.
		if len(maintenance) == 0 {
			issues = append(issues, Issue{
				Severity: SeverityWarning,
				Message:  "No service record on record yet",
			})
		}
	} else {
		issues = append(issues, Issue{
			Severity: SeverityWarning,
			Message:  "No inspection on record yet",
		})
	}

	if len(maintenance) > 0 {
		latest := maintenance[0]
		days := wholeDays(latest.OccurredAt, now)
		flagged.LastMaintenanceAt = timePtr(latest.OccurredAt)
		flagged.DaysSinceMaintenance = intPtr(days)

		if issue, ok := e.maintenanceOverdueIssue(days); ok {
			issues = append(issues, issue)
		}
		if len(inspections) > 0 {
			if issue, ok := e.odometerGapIssue(inspections[0], latest); ok {
				issues = append(issues, issue)
			}
		}
	}

	if len(issues) == 0 {
		return VehicleHealth{State: StateClear}
	}

	flagged.Issues = issues
	flagged.Status = overallStatus(issues)
	return VehicleHealth{State: StateFlagged, Flagged: &flagged}
}

// overallStatus is critical iff any issue is critical, warning otherwise.
func overallStatus(issues []Issue) Severity {
	for _, issue := range issues {
		if issue.Severity == SeverityCritical {
			return SeverityCritical
		}
	}
	return SeverityWarning
}

func sortedByOccurredAtDesc(inspections []Inspection) []Inspection {
	sorted := make([]Inspection, len(inspections))
	copy(sorted, inspections)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].OccurredAt.After(sorted[j].OccurredAt)
	})
	return sorted
}

func sortedMaintenanceDesc(maintenance []Maintenance) []Maintenance {
	sorted := make([]Maintenance, len(maintenance))
	copy(sorted, maintenance)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].OccurredAt.After(sorted[j].OccurredAt)
	})
	return sorted
}

func timePtr(t time.Time) *time.Time { return &t }
func intPtr(n int) *int              { return &n }
