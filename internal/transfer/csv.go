// Package transfer handles CSV and Excel import/export of fleet records.
package transfer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/zulandar/fleetyard/internal/models"
	"github.com/zulandar/fleetyard/internal/store"
	"gorm.io/gorm"
)

// timeLayout is the timestamp format used in import/export files.
const timeLayout = "2006-01-02 15:04"

var vehicleHeader = []string{"code", "brand", "model", "year", "plate"}

// ImportVehiclesCSV reads vehicles from CSV and inserts them. The first
// row must be the header. Any malformed row aborts the import with its
// row number; nothing is inserted on failure.
func ImportVehiclesCSV(db *gorm.DB, r io.Reader) (int, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return 0, fmt.Errorf("transfer: read csv: %w", err)
	}
	if len(records) == 0 {
		return 0, fmt.Errorf("transfer: empty file")
	}
	if err := checkHeader(records[0], vehicleHeader); err != nil {
		return 0, err
	}

	vehicles := make([]models.Vehicle, 0, len(records)-1)
	for i, row := range records[1:] {
		rowNum := i + 2 // 1-based, after header
		if len(row) != len(vehicleHeader) {
			return 0, fmt.Errorf("transfer: row %d: expected %d columns, got %d", rowNum, len(vehicleHeader), len(row))
		}
		if row[0] == "" {
			return 0, fmt.Errorf("transfer: row %d: code is required", rowNum)
		}
		year := 0
		if row[3] != "" {
			year, err = strconv.Atoi(row[3])
			if err != nil {
				return 0, fmt.Errorf("transfer: row %d: invalid year %q", rowNum, row[3])
			}
		}
		vehicles = append(vehicles, models.Vehicle{
			Code: row[0], Brand: row[1], Model: row[2], Year: year, Plate: row[4],
		})
	}

	// All-or-nothing: run the inserts in one transaction.
	err = db.Transaction(func(tx *gorm.DB) error {
		for i := range vehicles {
			if err := store.CreateVehicle(tx, &vehicles[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(vehicles), nil
}

// ExportVehiclesCSV writes all vehicles (retired included) as CSV.
func ExportVehiclesCSV(db *gorm.DB, w io.Writer) error {
	vehicles, err := store.AllVehicles(db)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(vehicleHeader); err != nil {
		return fmt.Errorf("transfer: write header: %w", err)
	}
	for _, v := range vehicles {
		row := []string{v.Code, v.Brand, v.Model, strconv.Itoa(v.Year), v.Plate}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("transfer: write vehicle %q: %w", v.Code, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

var maintenanceHeader = []string{"vehicle_code", "occurred_at", "odometer_km", "workshop", "description", "cost_cents"}

// ImportMaintenanceCSV reads service events from CSV. Vehicles are
// matched by code and must already exist.
func ImportMaintenanceCSV(db *gorm.DB, r io.Reader) (int, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return 0, fmt.Errorf("transfer: read csv: %w", err)
	}
	if len(records) == 0 {
		return 0, fmt.Errorf("transfer: empty file")
	}
	if err := checkHeader(records[0], maintenanceHeader); err != nil {
		return 0, err
	}

	count := 0
	err = db.Transaction(func(tx *gorm.DB) error {
		for i, row := range records[1:] {
			rowNum := i + 2
			if len(row) != len(maintenanceHeader) {
				return fmt.Errorf("transfer: row %d: expected %d columns, got %d", rowNum, len(maintenanceHeader), len(row))
			}
			v, err := store.GetVehicleByCode(tx, row[0])
			if err != nil {
				return fmt.Errorf("transfer: row %d: vehicle %q: %w", rowNum, row[0], err)
			}
			occurredAt, err := time.Parse(timeLayout, row[1])
			if err != nil {
				return fmt.Errorf("transfer: row %d: invalid timestamp %q (want %s)", rowNum, row[1], timeLayout)
			}
			odometer, err := strconv.Atoi(row[2])
			if err != nil {
				return fmt.Errorf("transfer: row %d: invalid odometer %q", rowNum, row[2])
			}
			var cost int64
			if row[5] != "" {
				cost, err = strconv.ParseInt(row[5], 10, 64)
				if err != nil {
					return fmt.Errorf("transfer: row %d: invalid cost %q", rowNum, row[5])
				}
			}
			if _, err := store.AddMaintenance(tx, v.ID, occurredAt, odometer, row[3], row[4], cost); err != nil {
				return fmt.Errorf("transfer: row %d: %w", rowNum, err)
			}
			count++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// ExportMaintenanceCSV writes every service event as CSV, joined with
// vehicle codes.
func ExportMaintenanceCSV(db *gorm.DB, w io.Writer) error {
	vehicles, err := store.AllVehicles(db)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(maintenanceHeader); err != nil {
		return fmt.Errorf("transfer: write header: %w", err)
	}
	for _, v := range vehicles {
		maintenance, err := store.MaintenanceForVehicle(db, v.ID)
		if err != nil {
			return err
		}
		for _, m := range maintenance {
			row := []string{
				v.Code,
				m.OccurredAt.Format(timeLayout),
				strconv.Itoa(m.OdometerKm),
				m.Workshop,
				m.Description,
				strconv.FormatInt(m.CostCents, 10),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("transfer: write maintenance for %q: %w", v.Code, err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// checkHeader verifies an import file starts with the expected columns.
func checkHeader(got, want []string) error {
	if len(got) != len(want) {
		return fmt.Errorf("transfer: bad header: expected %v", want)
	}
	for i := range want {
		if got[i] != want[i] {
			return fmt.Errorf("transfer: bad header: column %d is %q, expected %q", i+1, got[i], want[i])
		}
	}
	return nil
}
