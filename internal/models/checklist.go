package models

// ChecklistCategory groups checklist fields on the inspection form
// ("Brakes", "Lights", "Interior"). Admin-editable.
type ChecklistCategory struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"size:64;uniqueIndex;not null"`
	Position int    `gorm:"default:0"`

	Fields []ChecklistField `gorm:"foreignKey:CategoryID"`
}

// ChecklistField is one named yes/no inspection point. Key is the stable
// identifier stored in inspection checklists; Label is the display text
// and may carry an operator hint in a trailing parenthetical.
type ChecklistField struct {
	ID         uint   `gorm:"primaryKey;autoIncrement"`
	CategoryID uint   `gorm:"index"`
	Key        string `gorm:"size:64;uniqueIndex;not null"`
	Label      string `gorm:"size:128;not null"`
	Position   int    `gorm:"default:0"`
}
