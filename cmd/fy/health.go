package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/zulandar/fleetyard/internal/health"
	"github.com/zulandar/fleetyard/internal/store"
)

func newHealthCmd() *cobra.Command {
	var (
		configPath string
		code       string
	)

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Print the fleet health report",
		Long:  "Evaluates every active vehicle against the overdue, checklist and odometer rules and prints the result. Use --vehicle to report on a single vehicle.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHealth(cmd, configPath, code)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to Fleetyard config file")
	cmd.Flags().StringVar(&code, "vehicle", "", "report on one vehicle by code")
	return cmd
}

func runHealth(cmd *cobra.Command, configPath, code string) error {
	cfg, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}

	labels, err := store.LoadCatalogLabels(gormDB)
	if err != nil {
		return err
	}
	input, err := store.LoadEngineInput(gormDB)
	if err != nil {
		return err
	}

	engine := health.New(cfg.EngineConfig(), health.NewCatalogResolver(labels))
	now := time.Now()
	out := cmd.OutOrStdout()

	if code != "" {
		for _, v := range input.Vehicles {
			if v.Code != code {
				continue
			}
			result := engine.EvaluateVehicle(now, v, input.Inspections[v.ID], input.Maintenance[v.ID])
			printVehicleHealth(out, v, result)
			return nil
		}
		return fmt.Errorf("no active vehicle with code %q", code)
	}

	report := engine.EvaluateFleet(now, input.Vehicles, input.Inspections, input.Maintenance)
	printFleetReport(out, report)
	return nil
}

func printVehicleHealth(out io.Writer, v health.Vehicle, result health.VehicleHealth) {
	switch result.State {
	case health.StateNoData:
		fmt.Fprintf(out, "%s: no data\n", v.Code)
	case health.StateClear:
		fmt.Fprintf(out, "%s: clear\n", v.Code)
	case health.StateFlagged:
		f := result.Flagged
		fmt.Fprintf(out, "%s: %s\n", v.Code, f.Status)
		for _, issue := range f.Issues {
			fmt.Fprintf(out, "  [%s] %s\n", issue.Severity, issue.Message)
		}
	}
}

func printFleetReport(out io.Writer, report health.FleetReport) {
	s := report.Summary
	fmt.Fprintf(out, "Fleet health: %d active (%d critical, %d warning, %d ok, %d no data)\n",
		s.TotalActive, s.Critical, s.Warning, s.OK, s.NoData)

	if len(report.Vehicles) == 0 {
		fmt.Fprintln(out, "All clear.")
		return
	}

	fmt.Fprintln(out)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tSTATUS\tISSUES\tLAST INSPECTION\tLAST SERVICE")
	for _, f := range report.Vehicles {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%s\n",
			f.VehicleCode, f.Status, len(f.Issues), daysLabel(f.DaysSinceInspection), daysLabel(f.DaysSinceMaintenance))
	}
	w.Flush()

	fmt.Fprintln(out)
	for _, f := range report.Vehicles {
		fmt.Fprintf(out, "%s:\n", f.VehicleCode)
		for _, issue := range f.Issues {
			fmt.Fprintf(out, "  [%s] %s\n", issue.Severity, issue.Message)
		}
	}
}

func daysLabel(days *int) string {
	if days == nil {
		return "never"
	}
	if *days == 1 {
		return "1 day ago"
	}
	return fmt.Sprintf("%d days ago", *days)
}
