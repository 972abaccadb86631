package store

import (
	"fmt"

	"github.com/zulandar/fleetyard/internal/models"
	"gorm.io/gorm"
)

// LoadCatalogLabels returns the checklist catalog as a key->label map,
// the shape the health engine's label resolver consumes.
func LoadCatalogLabels(db *gorm.DB) (map[string]string, error) {
	if db == nil {
		return nil, fmt.Errorf("store: db is required")
	}
	var fields []models.ChecklistField
	if err := db.Find(&fields).Error; err != nil {
		return nil, fmt.Errorf("store: load catalog: %w", err)
	}
	labels := make(map[string]string, len(fields))
	for _, f := range fields {
		labels[f.Key] = f.Label
	}
	return labels, nil
}

// CatalogCategories returns the full catalog, categories and fields in
// display order, for the admin console.
func CatalogCategories(db *gorm.DB) ([]models.ChecklistCategory, error) {
	var categories []models.ChecklistCategory
	if err := db.Preload("Fields", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("position ASC")
	}).Order("position ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("store: load catalog categories: %w", err)
	}
	return categories, nil
}

// UpdateFieldLabel changes the display label for one checklist field.
func UpdateFieldLabel(db *gorm.DB, key, label string) error {
	if key == "" {
		return fmt.Errorf("store: field key is required")
	}
	if label == "" {
		return fmt.Errorf("store: label is required")
	}
	result := db.Model(&models.ChecklistField{}).Where("key = ?", key).Update("label", label)
	if result.Error != nil {
		return fmt.Errorf("store: update label for %q: %w", key, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
