package db

import (
	"fmt"

	"github.com/zulandar/fleetyard/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AllModels returns the list of all GORM models for migration.
func AllModels() []interface{} {
	return []interface{}{
		&models.Vehicle{},
		&models.Inspection{},
		&models.Maintenance{},
		&models.ChecklistCategory{},
		&models.ChecklistField{},
	}
}

// AutoMigrate creates or updates all tables.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(AllModels()...); err != nil {
		return fmt.Errorf("db: auto-migrate: %w", err)
	}
	return nil
}

// defaultChecklist is the factory inspection form, seeded on init. Admins
// edit it afterwards through the catalog endpoints.
var defaultChecklist = []struct {
	category string
	fields   [][2]string // key, label
}{
	{"Brakes", [][2]string{
		{"foot_brake", "Foot brake"},
		{"hand_brake", "Hand brake"},
		{"brake_performance", "Brake performance (road test)"},
	}},
	{"Lights", [][2]string{
		{"brake_lights", "Brake lights"},
		{"headlights", "Headlights"},
		{"indicators", "Indicators"},
	}},
	{"Cabin", [][2]string{
		{"seat_belts", "Seat belts"},
		{"dashboard_warning", "Dashboard warning lamps"},
		{"horn", "Horn"},
		{"wipers", "Wipers and washers"},
	}},
	{"Running gear", [][2]string{
		{"steering", "Steering"},
		{"tyres", "Tyres (tread and pressure)"},
		{"oil_level", "Oil level (dipstick)"},
	}},
}

// SeedChecklist upserts the default checklist catalog. Existing labels
// are left alone so admin edits survive re-runs.
func SeedChecklist(db *gorm.DB) error {
	for catPos, cat := range defaultChecklist {
		category := models.ChecklistCategory{Name: cat.category, Position: catPos}
		result := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"position"}),
		}).Create(&category)
		if result.Error != nil {
			return fmt.Errorf("db: seed category %q: %w", cat.category, result.Error)
		}
		if category.ID == 0 {
			if err := db.Where("name = ?", cat.category).First(&category).Error; err != nil {
				return fmt.Errorf("db: reload category %q: %w", cat.category, err)
			}
		}

		for fieldPos, kv := range cat.fields {
			field := models.ChecklistField{
				CategoryID: category.ID,
				Key:        kv[0],
				Label:      kv[1],
				Position:   fieldPos,
			}
			result := db.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "key"}},
				DoUpdates: clause.AssignmentColumns([]string{"category_id", "position"}),
			}).Create(&field)
			if result.Error != nil {
				return fmt.Errorf("db: seed field %q: %w", kv[0], result.Error)
			}
		}
	}
	return nil
}
