package health

import (
	"fmt"
	"math"
)

// adaptiveThresholds derives overdue thresholds from a vehicle's own
// inspection cadence. The critical threshold is always >= the warning
// threshold for any positive interval.
func (c Config) adaptiveThresholds(avgIntervalDays int) (warning, critical int) {
	warning = int(math.Round(float64(avgIntervalDays) * c.InspectionAdaptiveFactor))
	critical = int(math.Round(float64(avgIntervalDays) * c.InspectionAdaptiveFactor * c.InspectionCriticalFactor))
	return warning, critical
}

// severityForDays maps elapsed days onto a severity tier. Zero elapsed
// days never triggers; otherwise the boundary is inclusive.
func severityForDays(days, warningDays, criticalDays int) (Severity, bool) {
	if days <= 0 {
		return "", false
	}
	switch {
	case days >= criticalDays:
		return SeverityCritical, true
	case days >= warningDays:
		return SeverityWarning, true
	}
	return "", false
}

// inspectionOverdueIssue checks how long it has been since the latest
// inspection, using adaptive thresholds when the vehicle's cadence is
// known and the fixed fallback otherwise.
func (e *Engine) inspectionOverdueIssue(daysSince int, avgInterval int, haveInterval bool) (Issue, bool) {
	warnDays := e.cfg.InspectionFallbackWarningDays
	critDays := e.cfg.InspectionFallbackCriticalDays
	if haveInterval {
		warnDays, critDays = e.cfg.adaptiveThresholds(avgInterval)
	}

	sev, ok := severityForDays(daysSince, warnDays, critDays)
	if !ok {
		return Issue{}, false
	}

	msg := fmt.Sprintf("No inspection in %d days", daysSince)
	if haveInterval {
		msg = fmt.Sprintf("No inspection in %d days (typical interval ~%d days)", daysSince, avgInterval)
	}
	return Issue{Severity: sev, Message: msg}, true
}

// maintenanceOverdueIssue checks how long it has been since the latest
// service. Maintenance always uses the fixed policy.
func (e *Engine) maintenanceOverdueIssue(daysSince int) (Issue, bool) {
	sev, ok := severityForDays(daysSince, e.cfg.MaintenanceWarningDays, e.cfg.MaintenanceCriticalDays)
	if !ok {
		return Issue{}, false
	}
	return Issue{
		Severity: sev,
		Message:  fmt.Sprintf("No service in %d days", daysSince),
	}, true
}
