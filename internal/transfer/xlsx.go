package transfer

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
	"github.com/zulandar/fleetyard/internal/health"
	"github.com/zulandar/fleetyard/internal/models"
	"github.com/zulandar/fleetyard/internal/store"
	"gorm.io/gorm"
)

// ExportWorkbook writes an Excel workbook with one sheet per record type
// plus a fleet health sheet computed with the given engine config.
func ExportWorkbook(db *gorm.DB, engineCfg health.Config, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeVehicleSheet(f, db); err != nil {
		return err
	}
	if err := writeMaintenanceSheet(f, db); err != nil {
		return err
	}
	if err := writeHealthSheet(f, db, engineCfg); err != nil {
		return err
	}

	// excelize creates a default "Sheet1"; drop it once real sheets exist.
	f.DeleteSheet("Sheet1")

	if err := f.Write(w); err != nil {
		return fmt.Errorf("transfer: write workbook: %w", err)
	}
	return nil
}

func writeVehicleSheet(f *excelize.File, db *gorm.DB) error {
	const sheet = "Vehicles"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("transfer: create sheet %s: %w", sheet, err)
	}

	vehicles, err := store.AllVehicles(db)
	if err != nil {
		return err
	}

	setRow(f, sheet, 1, "Code", "Brand", "Model", "Year", "Plate", "Active")
	for i, v := range vehicles {
		setRow(f, sheet, i+2, v.Code, v.Brand, v.Model, strconv.Itoa(v.Year), v.Plate, strconv.FormatBool(v.Active))
	}
	return nil
}

func writeMaintenanceSheet(f *excelize.File, db *gorm.DB) error {
	const sheet = "Maintenance"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("transfer: create sheet %s: %w", sheet, err)
	}

	vehicles, err := store.AllVehicles(db)
	if err != nil {
		return err
	}

	setRow(f, sheet, 1, "Vehicle", "Date", "Odometer (km)", "Workshop", "Description")
	row := 2
	for _, v := range vehicles {
		maintenance, err := store.MaintenanceForVehicle(db, v.ID)
		if err != nil {
			return err
		}
		for _, m := range maintenance {
			setRow(f, sheet, row, v.Code, m.OccurredAt.Format(timeLayout),
				strconv.Itoa(m.OdometerKm), m.Workshop, m.Description)
			row++
		}
	}
	return nil
}

func writeHealthSheet(f *excelize.File, db *gorm.DB, engineCfg health.Config) error {
	const sheet = "Fleet Health"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("transfer: create sheet %s: %w", sheet, err)
	}

	labels, err := store.LoadCatalogLabels(db)
	if err != nil {
		return err
	}
	input, err := store.LoadEngineInput(db)
	if err != nil {
		return err
	}

	engine := health.New(engineCfg, health.NewCatalogResolver(labels))
	report := engine.EvaluateFleet(time.Now(), input.Vehicles, input.Inspections, input.Maintenance)

	setRow(f, sheet, 1, "Vehicle", "Status", "Issues")
	for i, flagged := range report.Vehicles {
		var issues string
		for j, issue := range flagged.Issues {
			if j > 0 {
				issues += "; "
			}
			issues += fmt.Sprintf("[%s] %s", issue.Severity, issue.Message)
		}
		setRow(f, sheet, i+2, flagged.VehicleCode, string(flagged.Status), issues)
	}

	summaryRow := len(report.Vehicles) + 3
	setRow(f, sheet, summaryRow, "Summary",
		fmt.Sprintf("critical: %d", report.Summary.Critical),
		fmt.Sprintf("warning: %d", report.Summary.Warning),
		fmt.Sprintf("ok: %d", report.Summary.OK),
		fmt.Sprintf("no data: %d", report.Summary.NoData))
	return nil
}

// ImportVehiclesXLSX reads vehicles from the "Vehicles" sheet of an
// Excel workbook, same columns as the CSV import.
func ImportVehiclesXLSX(db *gorm.DB, r io.Reader) (int, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return 0, fmt.Errorf("transfer: open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Vehicles")
	if err != nil {
		return 0, fmt.Errorf("transfer: read Vehicles sheet: %w", err)
	}
	if len(rows) == 0 {
		return 0, fmt.Errorf("transfer: Vehicles sheet is empty")
	}

	// Reuse the CSV row validation by rebuilding a record set. Excel rows
	// can come back short when trailing cells are empty; pad them.
	count := 0
	err = db.Transaction(func(tx *gorm.DB) error {
		for i, row := range rows[1:] {
			rowNum := i + 2
			row = padRow(row, 5)
			if row[0] == "" {
				return fmt.Errorf("transfer: row %d: code is required", rowNum)
			}
			year := 0
			if row[3] != "" {
				year, err = strconv.Atoi(row[3])
				if err != nil {
					return fmt.Errorf("transfer: row %d: invalid year %q", rowNum, row[3])
				}
			}
			v := models.Vehicle{Code: row[0], Brand: row[1], Model: row[2], Year: year, Plate: row[4]}
			if err := store.CreateVehicle(tx, &v); err != nil {
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

// setRow writes string cells starting at column A of the given row.
func setRow(f *excelize.File, sheet string, row int, values ...string) {
	for i, val := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, val)
	}
}

func padRow(row []string, width int) []string {
	for len(row) < width {
		row = append(row, "")
	}
	return row
}
