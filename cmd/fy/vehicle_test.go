package main

import (
	"strings"
	"testing"
)

// initFleet initializes a database and returns the config path.
func initFleet(t *testing.T) string {
	t.Helper()
	cfgPath := writeTestConfig(t)
	if _, err := runFy(t, "db", "init", "--config", cfgPath); err != nil {
		t.Fatalf("db init failed: %v", err)
	}
	return cfgPath
}

func TestVehicleCmd_Help(t *testing.T) {
	out, err := runFy(t, "vehicle", "--help")
	if err != nil {
		t.Fatalf("vehicle --help failed: %v", err)
	}
	if !strings.Contains(out, "Vehicle management") {
		t.Errorf("expected help to mention 'Vehicle management', got: %s", out)
	}
	for _, sub := range []string{"add", "list", "show", "retire"} {
		if !strings.Contains(out, sub) {
			t.Errorf("expected help to list %q subcommand, got: %s", sub, out)
		}
	}
}

func TestVehicleAddAndList(t *testing.T) {
	cfgPath := initFleet(t)

	out, err := runFy(t, "vehicle", "add", "--config", cfgPath,
		"--code", "FL-07", "--brand", "Volvo", "--model", "FH16", "--year", "2021", "--plate", "AB-123-C")
	if err != nil {
		t.Fatalf("vehicle add failed: %v", err)
	}
	if !strings.Contains(out, "Added vehicle FL-07") {
		t.Errorf("expected add confirmation, got: %s", out)
	}

	out, err = runFy(t, "vehicle", "list", "--config", cfgPath)
	if err != nil {
		t.Fatalf("vehicle list failed: %v", err)
	}
	for _, want := range []string{"FL-07", "Volvo", "FH16", "2021", "AB-123-C"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q: %s", want, out)
		}
	}
}

func TestVehicleAdd_RequiresCode(t *testing.T) {
	cfgPath := initFleet(t)

	_, err := runFy(t, "vehicle", "add", "--config", cfgPath, "--brand", "Volvo")
	if err == nil {
		t.Fatal("expected error when --code is missing")
	}
}

func TestVehicleAdd_DuplicateCode(t *testing.T) {
	cfgPath := initFleet(t)

	if _, err := runFy(t, "vehicle", "add", "--config", cfgPath, "--code", "FL-01"); err != nil {
		t.Fatal(err)
	}
	_, err := runFy(t, "vehicle", "add", "--config", cfgPath, "--code", "FL-01")
	if err == nil {
		t.Fatal("expected error for duplicate code")
	}
}

func TestVehicleShow(t *testing.T) {
	cfgPath := initFleet(t)

	if _, err := runFy(t, "vehicle", "add", "--config", cfgPath, "--code", "FL-02", "--brand", "Scania"); err != nil {
		t.Fatal(err)
	}

	out, err := runFy(t, "vehicle", "show", "FL-02", "--config", cfgPath)
	if err != nil {
		t.Fatalf("vehicle show failed: %v", err)
	}
	if !strings.Contains(out, "Vehicle FL-02") {
		t.Errorf("expected details header, got: %s", out)
	}
	if !strings.Contains(out, "Scania") {
		t.Errorf("expected brand, got: %s", out)
	}
	if !strings.Contains(out, "Inspections (0)") {
		t.Errorf("expected empty inspection history, got: %s", out)
	}
}

func TestVehicleRetire(t *testing.T) {
	cfgPath := initFleet(t)

	if _, err := runFy(t, "vehicle", "add", "--config", cfgPath, "--code", "FL-03"); err != nil {
		t.Fatal(err)
	}
	out, err := runFy(t, "vehicle", "retire", "FL-03", "--config", cfgPath)
	if err != nil {
		t.Fatalf("vehicle retire failed: %v", err)
	}
	if !strings.Contains(out, "Retired vehicle FL-03") {
		t.Errorf("expected retire confirmation, got: %s", out)
	}

	out, err = runFy(t, "vehicle", "list", "--config", cfgPath)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "FL-03") {
		t.Errorf("retired vehicle should not appear in default list: %s", out)
	}

	out, err = runFy(t, "vehicle", "list", "--config", cfgPath, "--all")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "FL-03") {
		t.Errorf("retired vehicle should appear with --all: %s", out)
	}
}

func TestVehicleShow_UnknownCode(t *testing.T) {
	cfgPath := initFleet(t)

	_, err := runFy(t, "vehicle", "show", "FL-99", "--config", cfgPath)
	if err == nil {
		t.Fatal("expected error for unknown vehicle code")
	}
}
