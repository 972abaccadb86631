package health

import "time"

// Severity classifies a detected issue.
type Severity string

const (
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// State is the overall outcome of evaluating one vehicle.
type State string

const (
	// StateNoData means the vehicle has neither inspections nor
	// maintenance records.
	StateNoData State = "no_data"
	// StateClear means data exists and no issue crossed a threshold.
	StateClear State = "clear"
	// StateFlagged means at least one issue was detected.
	StateFlagged State = "flagged"
)

// Issue is a single detected problem. The message is pre-formatted with
// concrete numbers and dates; it is never a template.
type Issue struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Vehicle carries the identity fields the engine needs. Owned by the
// storage layer; the engine reads it only.
type Vehicle struct {
	ID    uint
	Code  string
	Brand string
	Model string
}

// ChecklistItem is one yes/no inspection point with optional remarks.
type ChecklistItem struct {
	OK      bool   `json:"ok"`
	Remarks string `json:"remarks"`
}

// Inspection is one inspection event. Checklist keys are unique per
// inspection.
type Inspection struct {
	ID         string
	VehicleID  uint
	OccurredAt time.Time
	OdometerKm int
	Checklist  map[string]ChecklistItem
}

// Maintenance is one service event. Only the most recent record per
// vehicle participates in health scoring.
type Maintenance struct {
	ID         string
	VehicleID  uint
	OccurredAt time.Time
	OdometerKm int
}

// Flagged is the detail record for a vehicle with at least one issue.
type Flagged struct {
	VehicleID            uint       `json:"vehicle_id"`
	VehicleCode          string     `json:"vehicle_code"`
	Brand                string     `json:"brand"`
	Model                string     `json:"model"`
	Status               Severity   `json:"status"`
	Issues               []Issue    `json:"issues"`
	LastInspectionAt     *time.Time `json:"last_inspection_at"`
	LastMaintenanceAt    *time.Time `json:"last_maintenance_at"`
	DaysSinceInspection  *int       `json:"days_since_inspection"`
	DaysSinceMaintenance *int       `json:"days_since_maintenance"`
}

// VehicleHealth is the result of evaluating one vehicle. Flagged is
// non-nil exactly when State == StateFlagged.
type VehicleHealth struct {
	State   State
	Flagged *Flagged
}

// FleetSummary counts vehicles by outcome. Critical and Warning are
// mutually exclusive per vehicle.
type FleetSummary struct {
	Critical    int `json:"critical"`
	Warning     int `json:"warning"`
	OK          int `json:"ok"`
	NoData      int `json:"no_data"`
	TotalActive int `json:"total_active"`
}

// FleetReport is the fleet-wide result, serialized directly as the HTTP
// response body.
type FleetReport struct {
	Summary  FleetSummary `json:"summary"`
	Vehicles []Flagged    `json:"vehicles"`
}
