package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/zulandar/fleetyard/internal/config"
	"github.com/zulandar/fleetyard/internal/health"
	"github.com/zulandar/fleetyard/internal/notify"
	"github.com/zulandar/fleetyard/internal/server"
	"github.com/zulandar/fleetyard/internal/store"
	"gorm.io/gorm"
)

func newServeCmd() *cobra.Command {
	var (
		configPath string
		port       int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the Fleetyard API server",
		Long:  "Serves the fleet records API and health reports. Posts scheduled health digests when notify.digest_cron is configured.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, configPath, port)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to Fleetyard config file")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "port to listen on (overrides config)")
	return cmd
}

func runServe(cmd *cobra.Command, configPath string, port int) error {
	cfg, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}
	if port == 0 {
		port = cfg.Server.Port
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		fmt.Fprintf(cmd.OutOrStdout(), "\nReceived %s, shutting down...\n", sig)
		cancel()
	}()

	if cfg.Notify.DigestCron != "" {
		if !notify.ValidCron(cfg.Notify.DigestCron) {
			return fmt.Errorf("invalid digest cron expression %q", cfg.Notify.DigestCron)
		}
		adapters, err := buildAdapters(cfg.Notify)
		if err != nil {
			return err
		}
		if len(adapters) > 0 {
			go runDigestSchedule(ctx, cmd, cfg, gormDB, adapters)
		}
	}

	return server.Start(ctx, server.StartOpts{
		DB:           gormDB,
		Port:         port,
		AdminToken:   cfg.Server.AdminToken,
		EngineConfig: cfg.EngineConfig(),
		Out:          cmd.OutOrStdout(),
	})
}

// runDigestSchedule posts a fleet health digest on the configured cron
// schedule until ctx is cancelled.
func runDigestSchedule(ctx context.Context, cmd *cobra.Command, cfg *config.Config, gormDB *gorm.DB, adapters []notify.Adapter) {
	out := cmd.OutOrStdout()
	for {
		wait := notify.NextCronDuration(cfg.Notify.DigestCron)
		if wait <= 0 {
			wait = time.Minute
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(wait):
		}

		msg, ok, err := buildDigestMessage(gormDB, cfg.EngineConfig())
		if err != nil {
			fmt.Fprintf(out, "digest: %v\n", err)
			continue
		}
		if !ok {
			continue
		}
		if err := notify.SendAll(ctx, adapters, msg); err != nil {
			fmt.Fprintf(out, "digest: %v\n", err)
		}
	}
}

// buildDigestMessage computes the current fleet report and formats it.
func buildDigestMessage(gormDB *gorm.DB, engineCfg health.Config) (notify.Message, bool, error) {
	labels, err := store.LoadCatalogLabels(gormDB)
	if err != nil {
		return notify.Message{}, false, err
	}
	input, err := store.LoadEngineInput(gormDB)
	if err != nil {
		return notify.Message{}, false, err
	}

	engine := health.New(engineCfg, health.NewCatalogResolver(labels))
	report := engine.EvaluateFleet(time.Now(), input.Vehicles, input.Inspections, input.Maintenance)
	msg, ok := notify.BuildDigest(report)
	return msg, ok, nil
}
