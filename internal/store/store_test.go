package store

import (
	"errors"
	"strings"
	"testing"
	"time"

	fleetdb "github.com/zulandar/fleetyard/internal/db"
	"github.com/zulandar/fleetyard/internal/health"
	"github.com/zulandar/fleetyard/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := fleetdb.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func addVehicle(t *testing.T, db *gorm.DB, code string) *models.Vehicle {
	t.Helper()
	v := &models.Vehicle{Code: code, Brand: "Volvo", Model: "FH16"}
	if err := CreateVehicle(db, v); err != nil {
		t.Fatalf("create vehicle: %v", err)
	}
	return v
}

func TestCreateVehicle_RequiresCode(t *testing.T) {
	db := openTestDB(t)
	err := CreateVehicle(db, &models.Vehicle{})
	if err == nil || !strings.Contains(err.Error(), "code is required") {
		t.Errorf("err = %v", err)
	}
}

func TestCreateVehicle_DuplicateCode(t *testing.T) {
	db := openTestDB(t)
	addVehicle(t, db, "FL-001")
	if err := CreateVehicle(db, &models.Vehicle{Code: "FL-001"}); err == nil {
		t.Error("expected unique constraint error")
	}
}

func TestRetireVehicle(t *testing.T) {
	db := openTestDB(t)
	v := addVehicle(t, db, "FL-001")
	addVehicle(t, db, "FL-002")

	if err := RetireVehicle(db, v.ID); err != nil {
		t.Fatalf("retire: %v", err)
	}

	active, err := ActiveVehicles(db)
	if err != nil {
		t.Fatalf("active: %v", err)
	}
	if len(active) != 1 || active[0].Code != "FL-002" {
		t.Errorf("active = %+v", active)
	}

	all, err := AllVehicles(db)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("all = %d, want 2", len(all))
	}
}

func TestRetireVehicle_NotFound(t *testing.T) {
	db := openTestDB(t)
	if err := RetireVehicle(db, 99); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestAddInspection_Validation(t *testing.T) {
	db := openTestDB(t)
	v := addVehicle(t, db, "FL-001")

	tests := []struct {
		name       string
		vehicleID  uint
		occurredAt time.Time
		odometer   int
		wantErr    string
	}{
		{"zero vehicle", 0, time.Now(), 100, "vehicle id is required"},
		{"zero timestamp", v.ID, time.Time{}, 100, "timestamp is required"},
		{"negative odometer", v.ID, time.Now(), -5, "non-negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AddInspection(db, tt.vehicleID, tt.occurredAt, tt.odometer, "", nil)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestAddInspection_RoundTrip(t *testing.T) {
	db := openTestDB(t)
	v := addVehicle(t, db, "FL-001")

	checklist := map[string]health.ChecklistItem{
		"brake_lights": {OK: false, Remarks: "left side out"},
		"tyres":        {OK: true},
	}
	insp, err := AddInspection(db, v.ID, time.Now().Add(-24*time.Hour), 85000, "j.smith", checklist)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if insp.ID == "" {
		t.Error("inspection ID not assigned")
	}

	listed, err := InspectionsForVehicle(db, v.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("inspections = %d, want 1", len(listed))
	}

	converted, err := ConvertInspection(listed[0])
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	item, ok := converted.Checklist["brake_lights"]
	if !ok || item.OK || item.Remarks != "left side out" {
		t.Errorf("checklist round-trip = %+v", converted.Checklist)
	}
}

func TestInspectionsForVehicle_NewestFirst(t *testing.T) {
	db := openTestDB(t)
	v := addVehicle(t, db, "FL-001")

	now := time.Now()
	for _, daysBack := range []int{30, 5, 60} {
		if _, err := AddInspection(db, v.ID, now.AddDate(0, 0, -daysBack), 1000, "", nil); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	listed, err := InspectionsForVehicle(db, v.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("inspections = %d", len(listed))
	}
	for i := 1; i < len(listed); i++ {
		if listed[i].OccurredAt.After(listed[i-1].OccurredAt) {
			t.Fatal("not sorted newest first")
		}
	}
}

func TestLoadEngineInput(t *testing.T) {
	db := openTestDB(t)
	v1 := addVehicle(t, db, "FL-001")
	v2 := addVehicle(t, db, "FL-002")
	retired := addVehicle(t, db, "FL-099")
	if err := RetireVehicle(db, retired.ID); err != nil {
		t.Fatalf("retire: %v", err)
	}

	now := time.Now()
	if _, err := AddInspection(db, v1.ID, now.AddDate(0, 0, -5), 85000, "", map[string]health.ChecklistItem{"tyres": {OK: true}}); err != nil {
		t.Fatalf("add inspection: %v", err)
	}
	if _, err := AddMaintenance(db, v1.ID, now.AddDate(0, 0, -40), 79000, "Main Depot", "oil change", 12000); err != nil {
		t.Fatalf("add maintenance: %v", err)
	}

	input, err := LoadEngineInput(db)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(input.Vehicles) != 2 {
		t.Fatalf("vehicles = %d, want 2 (retired excluded)", len(input.Vehicles))
	}
	if len(input.Inspections[v1.ID]) != 1 {
		t.Errorf("inspections for v1 = %d", len(input.Inspections[v1.ID]))
	}
	if len(input.Maintenance[v1.ID]) != 1 {
		t.Errorf("maintenance for v1 = %d", len(input.Maintenance[v1.ID]))
	}
	if len(input.Inspections[v2.ID]) != 0 {
		t.Errorf("inspections for v2 = %d", len(input.Inspections[v2.ID]))
	}
}

func TestLoadEngineInput_EmptyFleet(t *testing.T) {
	db := openTestDB(t)
	input, err := LoadEngineInput(db)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(input.Vehicles) != 0 {
		t.Errorf("vehicles = %d", len(input.Vehicles))
	}
}

func TestCatalogLabels(t *testing.T) {
	db := openTestDB(t)
	if err := fleetdb.SeedChecklist(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	labels, err := LoadCatalogLabels(db)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if labels["brake_lights"] != "Brake lights" {
		t.Errorf("labels[brake_lights] = %q", labels["brake_lights"])
	}

	resolve := health.NewCatalogResolver(labels)
	if got := resolve("tyres"); got != "Tyres" {
		t.Errorf("resolve(tyres) = %q, want parenthetical stripped", got)
	}
}

func TestUpdateFieldLabel(t *testing.T) {
	db := openTestDB(t)
	if err := fleetdb.SeedChecklist(db); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := UpdateFieldLabel(db, "horn", "Horn (air)"); err != nil {
		t.Fatalf("update: %v", err)
	}
	labels, _ := LoadCatalogLabels(db)
	if labels["horn"] != "Horn (air)" {
		t.Errorf("label = %q", labels["horn"])
	}

	if err := UpdateFieldLabel(db, "missing_key", "X"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteInspection(t *testing.T) {
	db := openTestDB(t)
	v := addVehicle(t, db, "FL-001")
	insp, err := AddInspection(db, v.ID, time.Now(), 100, "", nil)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if err := DeleteInspection(db, insp.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := DeleteInspection(db, insp.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete = %v, want ErrNotFound", err)
	}
}
