package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/zulandar/fleetyard/internal/health"
	"github.com/zulandar/fleetyard/internal/models"
	"gorm.io/gorm"
)

// AddInspection validates and inserts one inspection. The checklist is
// stored as JSON. Malformed input fails here, before anything reaches
// the health engine.
func AddInspection(db *gorm.DB, vehicleID uint, occurredAt time.Time, odometerKm int, inspector string, checklist map[string]health.ChecklistItem) (*models.Inspection, error) {
	if db == nil {
		return nil, fmt.Errorf("store: db is required")
	}
	if vehicleID == 0 {
		return nil, fmt.Errorf("store: vehicle id is required")
	}
	if occurredAt.IsZero() {
		return nil, fmt.Errorf("store: inspection timestamp is required")
	}
	if odometerKm < 0 {
		return nil, fmt.Errorf("store: odometer must be non-negative, got %d", odometerKm)
	}

	raw, err := json.Marshal(checklist)
	if err != nil {
		return nil, fmt.Errorf("store: marshal checklist: %w", err)
	}

	insp := models.Inspection{
		ID:         uuid.NewString(),
		VehicleID:  vehicleID,
		OccurredAt: occurredAt,
		OdometerKm: odometerKm,
		Inspector:  inspector,
		Checklist:  string(raw),
		CreatedAt:  time.Now(),
	}
	if err := db.Create(&insp).Error; err != nil {
		return nil, fmt.Errorf("store: add inspection: %w", err)
	}
	return &insp, nil
}

// AddMaintenance validates and inserts one service event.
func AddMaintenance(db *gorm.DB, vehicleID uint, occurredAt time.Time, odometerKm int, workshop, description string, costCents int64) (*models.Maintenance, error) {
	if db == nil {
		return nil, fmt.Errorf("store: db is required")
	}
	if vehicleID == 0 {
		return nil, fmt.Errorf("store: vehicle id is required")
	}
	if occurredAt.IsZero() {
		return nil, fmt.Errorf("store: maintenance timestamp is required")
	}
	if odometerKm < 0 {
		return nil, fmt.Errorf("store: odometer must be non-negative, got %d", odometerKm)
	}

	maint := models.Maintenance{
		ID:          uuid.NewString(),
		VehicleID:   vehicleID,
		OccurredAt:  occurredAt,
		OdometerKm:  odometerKm,
		Workshop:    workshop,
		Description: description,
		CostCents:   costCents,
		CreatedAt:   time.Now(),
	}
	if err := db.Create(&maint).Error; err != nil {
		return nil, fmt.Errorf("store: add maintenance: %w", err)
	}
	return &maint, nil
}

// InspectionsForVehicle returns a vehicle's inspections, newest first.
func InspectionsForVehicle(db *gorm.DB, vehicleID uint) ([]models.Inspection, error) {
	var inspections []models.Inspection
	if err := db.Where("vehicle_id = ?", vehicleID).
		Order("occurred_at DESC").Find(&inspections).Error; err != nil {
		return nil, fmt.Errorf("store: inspections for vehicle %d: %w", vehicleID, err)
	}
	return inspections, nil
}

// MaintenanceForVehicle returns a vehicle's service events, newest first.
func MaintenanceForVehicle(db *gorm.DB, vehicleID uint) ([]models.Maintenance, error) {
	var maintenance []models.Maintenance
	if err := db.Where("vehicle_id = ?", vehicleID).
		Order("occurred_at DESC").Find(&maintenance).Error; err != nil {
		return nil, fmt.Errorf("store: maintenance for vehicle %d: %w", vehicleID, err)
	}
	return maintenance, nil
}

// DeleteInspection removes one inspection by ID.
func DeleteInspection(db *gorm.DB, id string) error {
	result := db.Delete(&models.Inspection{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("store: delete inspection %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteMaintenance removes one service event by ID.
func DeleteMaintenance(db *gorm.DB, id string) error {
	result := db.Delete(&models.Maintenance{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("store: delete maintenance %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
