package health

import (
	"sort"
	"time"
)

// EvaluateFleet runs EvaluateVehicle over every vehicle and aggregates
// the results. Vehicles are expected to be pre-filtered to active ones.
// Flagged vehicles are sorted by status (critical first), then issue
// count descending, then vehicle code ascending: a strict total order,
// so the report is deterministic for a given input.
func (e *Engine) EvaluateFleet(
	now time.Time,
	vehicles []Vehicle,
	inspectionsByVehicle map[uint][]Inspection,
	maintenanceByVehicle map[uint][]Maintenance,
) FleetReport {
	report := FleetReport{
		Summary:  FleetSummary{TotalActive: len(vehicles)},
		Vehicles: []Flagged{},
	}

	for _, v := range vehicles {
		result := e.EvaluateVehicle(now, v, inspectionsByVehicle[v.ID], maintenanceByVehicle[v.ID])
		switch result.State {
		case StateNoData:
			report.Summary.NoData++
		case StateClear:
			report.Summary.OK++
		case StateFlagged:
			if result.Flagged.Status == SeverityCritical {
				report.Summary.Critical++
			} else {
				report.Summary.Warning++
			}
			report.Vehicles = append(report.Vehicles, *result.Flagged)
		}
	}

	sort.Slice(report.Vehicles, func(i, j int) bool {
		a, b := report.Vehicles[i], report.Vehicles[j]
		if a.Status != b.Status {
			return a.Status == SeverityCritical
		}
		if len(a.Issues) != len(b.Issues) {
			return len(a.Issues) > len(b.Issues)
		}
		return a.VehicleCode < b.VehicleCode
	})

	return report
}
