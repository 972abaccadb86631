package models

import "time"

// Vehicle is a fleet unit. Code is the short display code painted on the
// vehicle; it is what operators search by.
type Vehicle struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Code      string `gorm:"size:32;uniqueIndex;not null"`
	Brand     string `gorm:"size:64"`
	Model     string `gorm:"size:64"`
	Year      int
	Plate     string `gorm:"size:16"`
	Active    bool   `gorm:"default:true;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Inspections []Inspection  `gorm:"foreignKey:VehicleID"`
	Maintenance []Maintenance `gorm:"foreignKey:VehicleID"`
}
