// Package config provides YAML-based configuration loading for Fleetyard.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/zulandar/fleetyard/internal/health"
	"gopkg.in/yaml.v3"
)

// Config is the top-level Fleetyard configuration, loaded from
// fleetyard.yaml.
type Config struct {
	DB     DBConfig     `yaml:"db"`
	Server ServerConfig `yaml:"server"`
	Health HealthConfig `yaml:"health"`
	Notify NotifyConfig `yaml:"notify"`
}

// DBConfig holds database connection settings. Driver is "sqlite"
// (default, file path) or "mysql".
type DBConfig struct {
	Driver   string `yaml:"driver"`
	Path     string `yaml:"path"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

// ServerConfig holds HTTP server settings. AdminToken guards mutating
// endpoints; leave empty to disable writes over HTTP.
type ServerConfig struct {
	Port       int    `yaml:"port"`
	AdminToken string `yaml:"admin_token"`
}

// HealthConfig overrides health engine thresholds. Zero values fall back
// to the engine defaults.
type HealthConfig struct {
	InspectionAdaptiveFactor       float64  `yaml:"inspection_adaptive_factor"`
	InspectionCriticalFactor       float64  `yaml:"inspection_critical_factor"`
	InspectionFallbackWarningDays  int      `yaml:"inspection_fallback_warning_days"`
	InspectionFallbackCriticalDays int      `yaml:"inspection_fallback_critical_days"`
	MaintenanceWarningDays         int      `yaml:"maintenance_warning_days"`
	MaintenanceCriticalDays        int      `yaml:"maintenance_critical_days"`
	OdometerGapKm                  int      `yaml:"odometer_gap_km"`
	RecurringWindowSize            int      `yaml:"recurring_window_size"`
	RecurringMinCount              int      `yaml:"recurring_min_count"`
	RecentFailureWindowDays        int      `yaml:"recent_failure_window_days"`
	SafetyCriticalKeys             []string `yaml:"safety_critical_keys"`
}

// NotifyConfig holds alert delivery settings.
type NotifyConfig struct {
	DigestCron string        `yaml:"digest_cron"`
	Slack      SlackConfig   `yaml:"slack"`
	Discord    DiscordConfig `yaml:"discord"`
}

// SlackConfig holds Slack bot credentials for posting digests.
type SlackConfig struct {
	BotToken string `yaml:"bot_token"`
	Channel  string `yaml:"channel"`
}

// DiscordConfig holds Discord bot credentials for posting digests.
type DiscordConfig struct {
	BotToken  string `yaml:"bot_token"`
	ChannelID string `yaml:"channel_id"`
}

// Load reads a YAML config file from path and returns a validated Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse unmarshals YAML bytes into a validated Config.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults fills in derived and default values.
func (c *Config) applyDefaults() {
	if c.DB.Driver == "" {
		c.DB.Driver = "sqlite"
	}
	if c.DB.Driver == "sqlite" && c.DB.Path == "" {
		c.DB.Path = "fleetyard.db"
	}
	if c.DB.Driver == "mysql" {
		if c.DB.Host == "" {
			c.DB.Host = "127.0.0.1"
		}
		if c.DB.Port == 0 {
			c.DB.Port = 3306
		}
		if c.DB.User == "" {
			c.DB.User = "root"
		}
		if c.DB.Database == "" {
			c.DB.Database = "fleetyard"
		}
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
}

// validate checks that all required fields are present and consistent.
func (c *Config) validate() error {
	var errs []string
	switch c.DB.Driver {
	case "sqlite", "mysql":
	default:
		errs = append(errs, fmt.Sprintf("db.driver %q is not supported (sqlite, mysql)", c.DB.Driver))
	}
	if c.Notify.Slack.BotToken != "" && c.Notify.Slack.Channel == "" {
		errs = append(errs, "notify.slack.channel is required when a slack token is set")
	}
	if c.Notify.Discord.BotToken != "" && c.Notify.Discord.ChannelID == "" {
		errs = append(errs, "notify.discord.channel_id is required when a discord token is set")
	}
	h := c.Health
	if h.InspectionFallbackCriticalDays != 0 && h.InspectionFallbackWarningDays > h.InspectionFallbackCriticalDays {
		errs = append(errs, "health: inspection fallback warning days exceed critical days")
	}
	if h.MaintenanceCriticalDays != 0 && h.MaintenanceWarningDays > h.MaintenanceCriticalDays {
		errs = append(errs, "health: maintenance warning days exceed critical days")
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// EngineConfig converts the YAML overrides into a health.Config. Unset
// fields keep the engine defaults.
func (c *Config) EngineConfig() health.Config {
	h := c.Health
	cfg := health.Config{
		InspectionAdaptiveFactor:       h.InspectionAdaptiveFactor,
		InspectionCriticalFactor:       h.InspectionCriticalFactor,
		InspectionFallbackWarningDays:  h.InspectionFallbackWarningDays,
		InspectionFallbackCriticalDays: h.InspectionFallbackCriticalDays,
		MaintenanceWarningDays:         h.MaintenanceWarningDays,
		MaintenanceCriticalDays:        h.MaintenanceCriticalDays,
		OdometerGapKm:                  h.OdometerGapKm,
		RecurringWindowSize:            h.RecurringWindowSize,
		RecurringMinCount:              h.RecurringMinCount,
		RecentFailureWindowDays:        h.RecentFailureWindowDays,
	}
	if len(h.SafetyCriticalKeys) > 0 {
		cfg.SafetyCriticalKeys = make(map[string]bool, len(h.SafetyCriticalKeys))
		for _, key := range h.SafetyCriticalKeys {
			cfg.SafetyCriticalKeys[key] = true
		}
	}
	return cfg
}
