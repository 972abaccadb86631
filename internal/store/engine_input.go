package store

import (
	"encoding/json"
	"fmt"

	"github.com/zulandar/fleetyard/internal/health"
	"github.com/zulandar/fleetyard/internal/models"
	"gorm.io/gorm"
)

// EngineInput is everything the health engine needs, fully materialized.
type EngineInput struct {
	Vehicles    []health.Vehicle
	Inspections map[uint][]health.Inspection
	Maintenance map[uint][]health.Maintenance
}

// LoadEngineInput reads all active vehicles with their complete
// inspection and maintenance history and converts them into engine
// types. The engine never touches the database itself.
func LoadEngineInput(db *gorm.DB) (*EngineInput, error) {
	if db == nil {
		return nil, fmt.Errorf("store: db is required")
	}

	vehicles, err := ActiveVehicles(db)
	if err != nil {
		return nil, err
	}

	input := &EngineInput{
		Vehicles:    make([]health.Vehicle, len(vehicles)),
		Inspections: make(map[uint][]health.Inspection),
		Maintenance: make(map[uint][]health.Maintenance),
	}
	ids := make([]uint, len(vehicles))
	for i, v := range vehicles {
		input.Vehicles[i] = health.Vehicle{ID: v.ID, Code: v.Code, Brand: v.Brand, Model: v.Model}
		ids[i] = v.ID
	}
	if len(ids) == 0 {
		return input, nil
	}

	var inspections []models.Inspection
	if err := db.Where("vehicle_id IN ?", ids).
		Order("occurred_at DESC").Find(&inspections).Error; err != nil {
		return nil, fmt.Errorf("store: load inspections: %w", err)
	}
	for _, insp := range inspections {
		converted, err := ConvertInspection(insp)
		if err != nil {
			return nil, err
		}
		input.Inspections[insp.VehicleID] = append(input.Inspections[insp.VehicleID], converted)
	}

	var maintenance []models.Maintenance
	if err := db.Where("vehicle_id IN ?", ids).
		Order("occurred_at DESC").Find(&maintenance).Error; err != nil {
		return nil, fmt.Errorf("store: load maintenance: %w", err)
	}
	for _, maint := range maintenance {
		input.Maintenance[maint.VehicleID] = append(input.Maintenance[maint.VehicleID], health.Maintenance{
			ID:         maint.ID,
			VehicleID:  maint.VehicleID,
			OccurredAt: maint.OccurredAt,
			OdometerKm: maint.OdometerKm,
		})
	}

	return input, nil
}

// ConvertInspection maps a stored inspection row onto the engine type,
// decoding the checklist JSON. A missing checklist decodes to nil, which
// the engine treats as all-passing.
func ConvertInspection(insp models.Inspection) (health.Inspection, error) {
	var checklist map[string]health.ChecklistItem
	if insp.Checklist != "" {
		if err := json.Unmarshal([]byte(insp.Checklist), &checklist); err != nil {
			return health.Inspection{}, fmt.Errorf("store: decode checklist for inspection %s: %w", insp.ID, err)
		}
	}
	return health.Inspection{
		ID:         insp.ID,
		VehicleID:  insp.VehicleID,
		OccurredAt: insp.OccurredAt,
		OdometerKm: insp.OdometerKm,
		Checklist:  checklist,
	}, nil
}
