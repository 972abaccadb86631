// Package health computes per-vehicle and fleet-wide health reports from
// inspection and maintenance history. It is pure: no database access, no
// clock; callers materialize all records up front and pass the evaluation
// time explicitly.
package health

// Config holds every tunable threshold the engine uses. All behavior is
// parameterized here so tests can run with their own threshold sets.
type Config struct {
	// InspectionAdaptiveFactor scales a vehicle's average inspection
	// interval into the warning threshold.
	InspectionAdaptiveFactor float64
	// InspectionCriticalFactor scales the warning threshold into the
	// critical threshold.
	InspectionCriticalFactor float64

	// Fixed fallback thresholds, used when a vehicle has fewer than two
	// inspections and no average interval can be computed.
	InspectionFallbackWarningDays  int
	InspectionFallbackCriticalDays int

	// Maintenance always uses fixed thresholds; service cadence is not
	// assumed to be self-similar the way inspection cadence is.
	MaintenanceWarningDays  int
	MaintenanceCriticalDays int

	// OdometerGapKm is the distance since last service that triggers a
	// warning.
	OdometerGapKm int

	// RecurringWindowSize is how many recent inspections the recurring
	// failure check looks at; RecurringMinCount is how many failures of
	// the same item within that window count as recurring.
	RecurringWindowSize int
	RecurringMinCount   int

	// RecentFailureWindowDays bounds how old the latest inspection may be
	// for its failed items to be reported as "recent".
	RecentFailureWindowDays int

	// SafetyCriticalKeys lists checklist keys whose failure always
	// escalates the resulting issue to critical.
	SafetyCriticalKeys map[string]bool
}

// DefaultConfig returns the production threshold set.
func DefaultConfig() Config {
	return Config{
		InspectionAdaptiveFactor:       1.4,
		InspectionCriticalFactor:       1.5,
		InspectionFallbackWarningDays:  21,
		InspectionFallbackCriticalDays: 45,
		MaintenanceWarningDays:         90,
		MaintenanceCriticalDays:        180,
		OdometerGapKm:                  5000,
		RecurringWindowSize:            3,
		RecurringMinCount:              2,
		RecentFailureWindowDays:        10,
		SafetyCriticalKeys: map[string]bool{
			"brake_lights":      true,
			"foot_brake":        true,
			"seat_belts":        true,
			"dashboard_warning": true,
			"brake_performance": true,
			"steering":          true,
			"tyres":             true,
		},
	}
}

// applyDefaults fills zero-valued fields from DefaultConfig so partial
// overrides in tests and config files stay safe.
func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.InspectionAdaptiveFactor == 0 {
		c.InspectionAdaptiveFactor = d.InspectionAdaptiveFactor
	}
	if c.InspectionCriticalFactor == 0 {
		c.InspectionCriticalFactor = d.InspectionCriticalFactor
	}
	if c.InspectionFallbackWarningDays == 0 {
		c.InspectionFallbackWarningDays = d.InspectionFallbackWarningDays
	}
	if c.InspectionFallbackCriticalDays == 0 {
		c.InspectionFallbackCriticalDays = d.InspectionFallbackCriticalDays
	}
	if c.MaintenanceWarningDays == 0 {
		c.MaintenanceWarningDays = d.MaintenanceWarningDays
	}
	if c.MaintenanceCriticalDays == 0 {
		c.MaintenanceCriticalDays = d.MaintenanceCriticalDays
	}
	if c.OdometerGapKm == 0 {
		c.OdometerGapKm = d.OdometerGapKm
	}
	if c.RecurringWindowSize == 0 {
		c.RecurringWindowSize = d.RecurringWindowSize
	}
	if c.RecurringMinCount == 0 {
		c.RecurringMinCount = d.RecurringMinCount
	}
	if c.RecentFailureWindowDays == 0 {
		c.RecentFailureWindowDays = d.RecentFailureWindowDays
	}
	if c.SafetyCriticalKeys == nil {
		c.SafetyCriticalKeys = d.SafetyCriticalKeys
	}
}
