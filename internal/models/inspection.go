package models

import "time"

// Inspection is one recorded inspection event. Checklist holds the
// per-item results as a JSON object keyed by checklist field key:
// {"brake_lights": {"ok": false, "remarks": "left side out"}}.
type Inspection struct {
	ID         string    `gorm:"primaryKey;size:36"`
	VehicleID  uint      `gorm:"index;not null"`
	OccurredAt time.Time `gorm:"index;not null"`
	OdometerKm int       `gorm:"not null"`
	Inspector  string    `gorm:"size:64"`
	Checklist  string    `gorm:"type:json"`
	CreatedAt  time.Time
}

// Maintenance is one recorded service event.
type Maintenance struct {
	ID          string    `gorm:"primaryKey;size:36"`
	VehicleID   uint      `gorm:"index;not null"`
	OccurredAt  time.Time `gorm:"index;not null"`
	OdometerKm  int       `gorm:"not null"`
	Workshop    string    `gorm:"size:128"`
	Description string    `gorm:"type:text"`
	CostCents   int64     `gorm:"default:0"`
	CreatedAt   time.Time
}
