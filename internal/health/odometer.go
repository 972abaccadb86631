package health

import "fmt"

// odometerGapIssue compares the odometer at the latest inspection against
// the odometer at the latest service. A gap at or past the configured
// limit means the vehicle has been driven a long way since it was last
// serviced. Negative gaps (service logged after the inspection reading)
// simply fail the threshold test; they are not treated as data errors.
func (e *Engine) odometerGapIssue(latestInspection Inspection, latestMaintenance Maintenance) (Issue, bool) {
	gap := latestInspection.OdometerKm - latestMaintenance.OdometerKm
	if gap < e.cfg.OdometerGapKm {
		return Issue{}, false
	}
	return Issue{
		Severity: SeverityWarning,
		Message: fmt.Sprintf("%d km driven since last service (odometer at service: %d km)",
			gap, latestMaintenance.OdometerKm),
	}, true
}
