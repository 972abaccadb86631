package models

import (
	"reflect"
	"strings"
	"testing"
)

// gormTag extracts the gorm tag from a struct field.
func gormTag(t *testing.T, typ reflect.Type, fieldName string) string {
	t.Helper()
	f, ok := typ.FieldByName(fieldName)
	if !ok {
		t.Fatalf("%s.%s: field not found", typ.Name(), fieldName)
	}
	return f.Tag.Get("gorm")
}

// assertGormTag checks that a struct field's gorm tag contains the expected value.
func assertGormTag(t *testing.T, typ reflect.Type, fieldName, expected string) {
	t.Helper()
	tag := gormTag(t, typ, fieldName)
	if !strings.Contains(tag, expected) {
		t.Errorf("%s.%s gorm tag = %q, want to contain %q", typ.Name(), fieldName, tag, expected)
	}
}

func TestVehicle_Fields(t *testing.T) {
	typ := reflect.TypeOf(Vehicle{})

	assertGormTag(t, typ, "ID", "primaryKey")
	assertGormTag(t, typ, "Code", "uniqueIndex")
	assertGormTag(t, typ, "Code", "not null")
	assertGormTag(t, typ, "Code", "size:32")
	assertGormTag(t, typ, "Brand", "size:64")
	assertGormTag(t, typ, "Plate", "size:16")
	assertGormTag(t, typ, "Active", "default:true")
	assertGormTag(t, typ, "Active", "index")
}

func TestInspection_Fields(t *testing.T) {
	typ := reflect.TypeOf(Inspection{})

	assertGormTag(t, typ, "ID", "primaryKey")
	assertGormTag(t, typ, "ID", "size:36")
	assertGormTag(t, typ, "VehicleID", "index")
	assertGormTag(t, typ, "VehicleID", "not null")
	assertGormTag(t, typ, "OccurredAt", "index")
	assertGormTag(t, typ, "Checklist", "type:json")
}

func TestMaintenance_Fields(t *testing.T) {
	typ := reflect.TypeOf(Maintenance{})

	assertGormTag(t, typ, "ID", "primaryKey")
	assertGormTag(t, typ, "VehicleID", "index")
	assertGormTag(t, typ, "OccurredAt", "index")
	assertGormTag(t, typ, "Description", "type:text")
	assertGormTag(t, typ, "CostCents", "default:0")
}

func TestChecklistField_Fields(t *testing.T) {
	typ := reflect.TypeOf(ChecklistField{})

	assertGormTag(t, typ, "Key", "uniqueIndex")
	assertGormTag(t, typ, "Key", "not null")
	assertGormTag(t, typ, "Label", "not null")
	assertGormTag(t, typ, "CategoryID", "index")
}
