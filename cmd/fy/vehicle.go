package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/zulandar/fleetyard/internal/models"
	"github.com/zulandar/fleetyard/internal/store"
)

func newVehicleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vehicle",
		Short: "Vehicle management commands",
	}

	cmd.AddCommand(newVehicleAddCmd())
	cmd.AddCommand(newVehicleListCmd())
	cmd.AddCommand(newVehicleShowCmd())
	cmd.AddCommand(newVehicleRetireCmd())
	return cmd
}

func newVehicleAddCmd() *cobra.Command {
	var (
		configPath string
		code       string
		brand      string
		model      string
		year       int
		plate      string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a vehicle to the fleet",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVehicleAdd(cmd, configPath, models.Vehicle{
				Code:  code,
				Brand: brand,
				Model: model,
				Year:  year,
				Plate: plate,
			})
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to Fleetyard config file")
	cmd.Flags().StringVar(&code, "code", "", "vehicle display code (required)")
	cmd.Flags().StringVar(&brand, "brand", "", "manufacturer")
	cmd.Flags().StringVar(&model, "model", "", "model name")
	cmd.Flags().IntVar(&year, "year", 0, "build year")
	cmd.Flags().StringVar(&plate, "plate", "", "license plate")
	cmd.MarkFlagRequired("code")
	return cmd
}

func runVehicleAdd(cmd *cobra.Command, configPath string, v models.Vehicle) error {
	_, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}

	if err := store.CreateVehicle(gormDB, &v); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added vehicle %s (id %d)\n", v.Code, v.ID)
	return nil
}

func newVehicleListCmd() *cobra.Command {
	var (
		configPath string
		all        bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List vehicles",
		Long:  "Lists active vehicles as a table. Use --all to include retired vehicles.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVehicleList(cmd, configPath, all)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to Fleetyard config file")
	cmd.Flags().BoolVar(&all, "all", false, "include retired vehicles")
	return cmd
}

func runVehicleList(cmd *cobra.Command, configPath string, all bool) error {
	_, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}

	var vehicles []models.Vehicle
	if all {
		vehicles, err = store.AllVehicles(gormDB)
	} else {
		vehicles, err = store.ActiveVehicles(gormDB)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(vehicles) == 0 {
		fmt.Fprintln(out, "No vehicles found.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCODE\tBRAND\tMODEL\tYEAR\tPLATE\tACTIVE")
	for _, v := range vehicles {
		year := "-"
		if v.Year != 0 {
			year = fmt.Sprintf("%d", v.Year)
		}
		plate := v.Plate
		if plate == "" {
			plate = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%t\n",
			v.ID, v.Code, truncate(v.Brand, 24), truncate(v.Model, 24), year, plate, v.Active)
	}
	w.Flush()
	return nil
}

func newVehicleShowCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "show <code>",
		Short: "Show vehicle details",
		Long:  "Displays a vehicle's details along with its inspection and maintenance history.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVehicleShow(cmd, configPath, args[0])
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to Fleetyard config file")
	return cmd
}

func runVehicleShow(cmd *cobra.Command, configPath, code string) error {
	_, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}

	v, err := store.GetVehicleByCode(gormDB, code)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Vehicle %s (id %d)\n", v.Code, v.ID)
	fmt.Fprintf(out, "  Brand:  %s\n", orDash(v.Brand))
	fmt.Fprintf(out, "  Model:  %s\n", orDash(v.Model))
	if v.Year != 0 {
		fmt.Fprintf(out, "  Year:   %d\n", v.Year)
	}
	fmt.Fprintf(out, "  Plate:  %s\n", orDash(v.Plate))
	fmt.Fprintf(out, "  Active: %t\n", v.Active)

	inspections, err := store.InspectionsForVehicle(gormDB, v.ID)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nInspections (%d):\n", len(inspections))
	for _, insp := range inspections {
		fmt.Fprintf(out, "  %s  %s km, inspector %s\n",
			insp.OccurredAt.Format("2006-01-02 15:04"), formatKm(insp.OdometerKm), orDash(insp.Inspector))
	}

	maintenance, err := store.MaintenanceForVehicle(gormDB, v.ID)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nMaintenance (%d):\n", len(maintenance))
	for _, m := range maintenance {
		fmt.Fprintf(out, "  %s  %s km, %s: %s\n",
			m.OccurredAt.Format("2006-01-02 15:04"), formatKm(m.OdometerKm), orDash(m.Workshop), truncate(m.Description, 60))
	}
	return nil
}

func newVehicleRetireCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "retire <code>",
		Short: "Retire a vehicle",
		Long:  "Marks a vehicle inactive. Its records are kept but it no longer appears in health reports.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVehicleRetire(cmd, configPath, args[0])
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to Fleetyard config file")
	return cmd
}

func runVehicleRetire(cmd *cobra.Command, configPath, code string) error {
	_, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}

	v, err := store.GetVehicleByCode(gormDB, code)
	if err != nil {
		return err
	}
	if err := store.RetireVehicle(gormDB, v.ID); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Retired vehicle %s\n", v.Code)
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
