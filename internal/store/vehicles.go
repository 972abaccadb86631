// Package store provides repository access to fleet records.
package store

import (
	"errors"
	"fmt"

	"github.com/zulandar/fleetyard/internal/models"
	"gorm.io/gorm"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("store: not found")

// CreateVehicle inserts a new vehicle. Code must be unique.
func CreateVehicle(db *gorm.DB, v *models.Vehicle) error {
	if db == nil {
		return fmt.Errorf("store: db is required")
	}
	if v.Code == "" {
		return fmt.Errorf("store: vehicle code is required")
	}
	v.Active = true
	if err := db.Create(v).Error; err != nil {
		return fmt.Errorf("store: create vehicle %q: %w", v.Code, err)
	}
	return nil
}

// GetVehicle loads one vehicle by ID.
func GetVehicle(db *gorm.DB, id uint) (*models.Vehicle, error) {
	var v models.Vehicle
	if err := db.First(&v, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: get vehicle %d: %w", id, err)
	}
	return &v, nil
}

// GetVehicleByCode loads one vehicle by display code.
func GetVehicleByCode(db *gorm.DB, code string) (*models.Vehicle, error) {
	var v models.Vehicle
	if err := db.Where("code = ?", code).First(&v).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: get vehicle %q: %w", code, err)
	}
	return &v, nil
}

// UpdateVehicle applies field updates to an existing vehicle.
func UpdateVehicle(db *gorm.DB, id uint, updates map[string]interface{}) error {
	result := db.Model(&models.Vehicle{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("store: update vehicle %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// RetireVehicle marks a vehicle inactive. Its records stay readable but
// it drops out of fleet health reports.
func RetireVehicle(db *gorm.DB, id uint) error {
	return UpdateVehicle(db, id, map[string]interface{}{"active": false})
}

// ActiveVehicles returns active vehicles ordered by code.
func ActiveVehicles(db *gorm.DB) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if err := db.Where("active = ?", true).Order("code ASC").Find(&vehicles).Error; err != nil {
		return nil, fmt.Errorf("store: list active vehicles: %w", err)
	}
	return vehicles, nil
}

// AllVehicles returns every vehicle, retired ones included.
func AllVehicles(db *gorm.DB) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if err := db.Order("code ASC").Find(&vehicles).Error; err != nil {
		return nil, fmt.Errorf("store: list vehicles: %w", err)
	}
	return vehicles, nil
}
