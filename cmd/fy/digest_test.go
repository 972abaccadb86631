package main

import (
	"strings"
	"testing"
	"time"

	"github.com/zulandar/fleetyard/internal/config"
	"github.com/zulandar/fleetyard/internal/health"
	"github.com/zulandar/fleetyard/internal/store"
)

func TestDigestCmd_ClearFleet(t *testing.T) {
	cfgPath := initFleet(t)

	out, err := runFy(t, "digest", "--config", cfgPath, "--dry-run")
	if err != nil {
		t.Fatalf("digest failed: %v", err)
	}
	if !strings.Contains(out, "nothing to send") {
		t.Errorf("expected suppression notice, got: %s", out)
	}
}

func TestDigestCmd_DryRun(t *testing.T) {
	cfgPath := initFleet(t)
	if _, err := runFy(t, "vehicle", "add", "--config", cfgPath, "--code", "FL-01", "--brand", "Volvo", "--model", "FH16"); err != nil {
		t.Fatal(err)
	}

	gormDB := openFleetDB(t, cfgPath)
	v, err := store.GetVehicleByCode(gormDB, "FL-01")
	if err != nil {
		t.Fatal(err)
	}
	occurred := time.Now().Add(-100 * 24 * time.Hour).Add(-time.Hour)
	checklist := map[string]health.ChecklistItem{"foot_brake": {OK: true}}
	if _, err := store.AddInspection(gormDB, v.ID, occurred, 80000, "tester", checklist); err != nil {
		t.Fatal(err)
	}

	out, err := runFy(t, "digest", "--config", cfgPath, "--dry-run")
	if err != nil {
		t.Fatalf("digest --dry-run failed: %v", err)
	}
	if !strings.Contains(out, "Fleet health: 1 critical") {
		t.Errorf("expected digest title, got: %s", out)
	}
	if !strings.Contains(out, "[!] FL-01 (Volvo FH16)") {
		t.Errorf("expected flagged vehicle line, got: %s", out)
	}
}

func TestDigestCmd_NoChannelsConfigured(t *testing.T) {
	cfgPath := initFleet(t)
	if _, err := runFy(t, "vehicle", "add", "--config", cfgPath, "--code", "FL-01"); err != nil {
		t.Fatal(err)
	}

	gormDB := openFleetDB(t, cfgPath)
	v, err := store.GetVehicleByCode(gormDB, "FL-01")
	if err != nil {
		t.Fatal(err)
	}
	occurred := time.Now().Add(-50 * 24 * time.Hour)
	checklist := map[string]health.ChecklistItem{"foot_brake": {OK: true}}
	if _, err := store.AddInspection(gormDB, v.ID, occurred, 80000, "tester", checklist); err != nil {
		t.Fatal(err)
	}

	_, err = runFy(t, "digest", "--config", cfgPath)
	if err == nil {
		t.Fatal("expected error when no channels are configured")
	}
	if !strings.Contains(err.Error(), "no notification channels") {
		t.Errorf("error = %q", err.Error())
	}
}

func TestBuildAdapters(t *testing.T) {
	adapters, err := buildAdapters(config.NotifyConfig{})
	if err != nil {
		t.Fatal(err)
	}
	if len(adapters) != 0 {
		t.Errorf("expected no adapters for empty config, got %d", len(adapters))
	}

	cfg := config.NotifyConfig{
		Slack:   config.SlackConfig{BotToken: "xoxb-test", Channel: "C123"},
		Discord: config.DiscordConfig{BotToken: "token", ChannelID: "456"},
	}
	adapters, err = buildAdapters(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(adapters) != 2 {
		t.Fatalf("expected two adapters, got %d", len(adapters))
	}
	if adapters[0].Name() != "slack" || adapters[1].Name() != "discord" {
		t.Errorf("adapter names = %s, %s", adapters[0].Name(), adapters[1].Name())
	}
}
