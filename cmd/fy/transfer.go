package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zulandar/fleetyard/internal/transfer"
)

func newImportCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import records from a CSV or XLSX file",
		Long: "Imports vehicles or maintenance records. The file kind is picked by extension " +
			"(.csv or .xlsx) and the record kind by --kind. Imports are all-or-nothing: " +
			"a bad row rolls back the whole file.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, _ := cmd.Flags().GetString("kind")
			return runImport(cmd, configPath, args[0], kind)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to Fleetyard config file")
	cmd.Flags().String("kind", "vehicles", "record kind to import (vehicles, inspections, maintenance)")
	return cmd
}

func runImport(cmd *cobra.Command, configPath, path, kind string) error {
	_, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var count int
	switch {
	case kind == "vehicles" && strings.HasSuffix(path, ".csv"):
		count, err = transfer.ImportVehiclesCSV(gormDB, f)
	case kind == "vehicles" && strings.HasSuffix(path, ".xlsx"):
		count, err = transfer.ImportVehiclesXLSX(gormDB, f)
	case kind == "inspections" && strings.HasSuffix(path, ".csv"):
		count, err = transfer.ImportInspectionsCSV(gormDB, f)
	case kind == "maintenance" && strings.HasSuffix(path, ".csv"):
		count, err = transfer.ImportMaintenanceCSV(gormDB, f)
	default:
		return fmt.Errorf("cannot import kind %q from %s", kind, path)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d %s records\n", count, kind)
	return nil
}

func newExportCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export records to a CSV or XLSX file",
		Long: "Exports fleet data. A .csv target writes one record kind chosen with --kind; " +
			"a .xlsx target writes a full workbook with vehicle, maintenance and health sheets.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, _ := cmd.Flags().GetString("kind")
			return runExport(cmd, configPath, args[0], kind)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to Fleetyard config file")
	cmd.Flags().String("kind", "vehicles", "record kind for CSV export (vehicles, inspections, maintenance)")
	return cmd
}

func runExport(cmd *cobra.Command, configPath, path, kind string) error {
	cfg, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	switch {
	case strings.HasSuffix(path, ".xlsx"):
		err = transfer.ExportWorkbook(gormDB, cfg.EngineConfig(), f)
	case kind == "vehicles":
		err = transfer.ExportVehiclesCSV(gormDB, f)
	case kind == "inspections":
		err = transfer.ExportInspectionsCSV(gormDB, f)
	case kind == "maintenance":
		err = transfer.ExportMaintenanceCSV(gormDB, f)
	default:
		return fmt.Errorf("cannot export kind %q to %s", kind, path)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", path)
	return nil
}
