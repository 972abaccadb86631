package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zulandar/fleetyard/internal/config"
	"github.com/zulandar/fleetyard/internal/db"
	"golang.org/x/term"
	"gorm.io/gorm"
)

const defaultConfigPath = "fleetyard.yaml"

// connectFromConfig loads configuration and opens the database.
func connectFromConfig(configPath string) (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	gormDB, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, nil, err
	}
	return cfg, gormDB, nil
}

func newDBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Database management commands",
	}

	cmd.AddCommand(newDBInitCmd())
	cmd.AddCommand(newDBResetCmd())
	return cmd
}

func newDBInitCmd() *cobra.Command {
	var (
		configPath     string
		promptPassword bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the Fleetyard database",
		Long:  "Migrates all tables and seeds the default inspection checklist.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDBInit(cmd, configPath, promptPassword)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to Fleetyard config file")
	cmd.Flags().BoolVar(&promptPassword, "prompt-password", false, "prompt for the database password instead of reading it from config")
	return cmd
}

func runDBInit(cmd *cobra.Command, configPath string, promptPassword bool) error {
	out := cmd.OutOrStdout()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	fmt.Fprintf(out, "Loaded config from %s (%s)\n", configPath, cfg.DB.Driver)

	if promptPassword {
		fmt.Fprint(out, "Database password: ")
		pw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(out)
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		cfg.DB.Password = string(pw)
	}

	gormDB, err := db.Connect(cfg.DB)
	if err != nil {
		return err
	}

	if err := db.AutoMigrate(gormDB); err != nil {
		return err
	}
	fmt.Fprintln(out, "Migrated tables")

	if err := db.SeedChecklist(gormDB); err != nil {
		return err
	}
	fmt.Fprintln(out, "Seeded checklist catalog")
	fmt.Fprintln(out, "Database ready")
	return nil
}

func newDBResetCmd() *cobra.Command {
	var (
		configPath string
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Drop all Fleetyard tables and re-initialize",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDBReset(cmd, configPath, force)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to Fleetyard config file")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip the confirmation prompt")
	return cmd
}

func runDBReset(cmd *cobra.Command, configPath string, force bool) error {
	out := cmd.OutOrStdout()

	if !force {
		fmt.Fprint(out, "This drops every fleet record. Type 'yes' to continue: ")
		reader := bufio.NewReader(cmd.InOrStdin())
		answer, _ := reader.ReadString('\n')
		if strings.TrimSpace(answer) != "yes" {
			fmt.Fprintln(out, "Aborted")
			return nil
		}
	}

	_, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}

	for _, model := range db.AllModels() {
		if err := gormDB.Migrator().DropTable(model); err != nil {
			return fmt.Errorf("drop table for %T: %w", model, err)
		}
	}
	fmt.Fprintln(out, "Dropped tables")

	if err := db.AutoMigrate(gormDB); err != nil {
		return err
	}
	if err := db.SeedChecklist(gormDB); err != nil {
		return err
	}
	fmt.Fprintln(out, "Database reset")
	return nil
}
