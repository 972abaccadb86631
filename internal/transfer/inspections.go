package transfer

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/zulandar/fleetyard/internal/health"
	"github.com/zulandar/fleetyard/internal/store"
	"gorm.io/gorm"
)

var inspectionHeader = []string{"vehicle_code", "occurred_at", "odometer_km", "inspector", "checklist"}

// ImportInspectionsCSV reads inspection events from CSV. The checklist
// column holds the item results as a JSON object
// ({"foot_brake": {"ok": false, "remarks": "soft pedal"}}); an empty
// cell means no items were recorded. Vehicles are matched by code and
// must already exist.
func ImportInspectionsCSV(db *gorm.DB, r io.Reader) (int, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return 0, fmt.Errorf("transfer: read csv: %w", err)
	}
	if len(records) == 0 {
		return 0, fmt.Errorf("transfer: empty file")
	}
	if err := checkHeader(records[0], inspectionHeader); err != nil {
		return 0, err
	}

	count := 0
	err = db.Transaction(func(tx *gorm.DB) error {
		for i, row := range records[1:] {
			rowNum := i + 2
			if len(row) != len(inspectionHeader) {
				return fmt.Errorf("transfer: row %d: expected %d columns, got %d", rowNum, len(inspectionHeader), len(row))
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
			var checklist map[string]health.ChecklistItem
			if row[4] != "" {
				if err := json.Unmarshal([]byte(row[4]), &checklist); err != nil {
					return fmt.Errorf("transfer: row %d: invalid checklist json: %w", rowNum, err)
				}
			}
			if _, err := store.AddInspection(tx, v.ID, occurredAt, odometer, row[3], checklist); err != nil {
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

// ExportInspectionsCSV writes every inspection as CSV, joined with
// vehicle codes. The checklist column carries the stored JSON verbatim.
func ExportInspectionsCSV(db *gorm.DB, w io.Writer) error {
	vehicles, err := store.AllVehicles(db)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(inspectionHeader); err != nil {
		return fmt.Errorf("transfer: write header: %w", err)
	}
	for _, v := range vehicles {
		inspections, err := store.InspectionsForVehicle(db, v.ID)
		if err != nil {
			return err
		}
		for _, insp := range inspections {
			row := []string{
				v.Code,
				insp.OccurredAt.Format(timeLayout),
				strconv.Itoa(insp.OdometerKm),
				insp.Inspector,
				insp.Checklist,
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("transfer: write inspection for %q: %w", v.Code, err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
