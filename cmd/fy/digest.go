package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zulandar/fleetyard/internal/config"
	"github.com/zulandar/fleetyard/internal/notify"
	"github.com/zulandar/fleetyard/internal/notify/discord"
	"github.com/zulandar/fleetyard/internal/notify/slack"
)

func newDigestCmd() *cobra.Command {
	var (
		configPath string
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "digest",
		Short: "Send the fleet health digest now",
		Long:  "Builds the fleet health digest and posts it to every configured notification channel. Nothing is sent when the whole fleet is clear.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDigest(cmd, configPath, dryRun)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", defaultConfigPath, "path to Fleetyard config file")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the digest instead of sending it")
	return cmd
}

func runDigest(cmd *cobra.Command, configPath string, dryRun bool) error {
	cfg, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	msg, ok, err := buildDigestMessage(gormDB, cfg.EngineConfig())
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(out, "Fleet is clear; nothing to send.")
		return nil
	}

	if dryRun {
		fmt.Fprintf(out, "%s\n\n%s\n", msg.Title, msg.Body)
		return nil
	}

	adapters, err := buildAdapters(cfg.Notify)
	if err != nil {
		return err
	}
	if len(adapters) == 0 {
		return fmt.Errorf("no notification channels configured")
	}

	if err := notify.SendAll(cmd.Context(), adapters, msg); err != nil {
		return err
	}
	for _, a := range adapters {
		fmt.Fprintf(out, "Sent digest via %s\n", a.Name())
	}
	return nil
}

// buildAdapters creates one notify Adapter per configured platform.
func buildAdapters(cfg config.NotifyConfig) ([]notify.Adapter, error) {
	var adapters []notify.Adapter

	if cfg.Slack.BotToken != "" {
		a, err := slack.New(slack.AdapterOpts{
			BotToken:  cfg.Slack.BotToken,
			ChannelID: cfg.Slack.Channel,
		})
		if err != nil {
			return nil, err
		}
		adapters = append(adapters, a)
	}

	if cfg.Discord.BotToken != "" {
		a, err := discord.New(discord.AdapterOpts{
			BotToken:  cfg.Discord.BotToken,
			ChannelID: cfg.Discord.ChannelID,
		})
		if err != nil {
			return nil, err
		}
		adapters = append(adapters, a)
	}

	return adapters, nil
}
