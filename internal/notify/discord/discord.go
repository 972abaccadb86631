// Package discord implements the notify Adapter for Discord.
package discord

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/zulandar/fleetyard/internal/notify"
)

// session abstracts the discordgo.Session methods we use, enabling test mocks.
type session interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// Adapter posts digests to a single Discord channel via the REST API;
// no gateway connection is needed for outbound-only delivery.
type Adapter struct {
	session   session
	channelID string
}

// AdapterOpts holds parameters for creating a Discord Adapter.
type AdapterOpts struct {
	BotToken  string
	ChannelID string
	// For testing: inject a mock session instead of the real API.
	Session session
}

// New creates a Discord Adapter.
func New(opts AdapterOpts) (*Adapter, error) {
	if opts.Session == nil && opts.BotToken == "" {
		return nil, fmt.Errorf("discord: bot token is required")
	}
	if opts.ChannelID == "" {
		return nil, fmt.Errorf("discord: channel id is required")
	}

	sess := opts.Session
	if sess == nil {
		s, err := discordgo.New("Bot " + opts.BotToken)
		if err != nil {
			return nil, fmt.Errorf("discord: create session: %w", err)
		}
		sess = s
	}
	return &Adapter{session: sess, channelID: opts.ChannelID}, nil
}

// Name implements notify.Adapter.
func (a *Adapter) Name() string { return "discord" }

// Send posts the digest as an embed with the severity color.
func (a *Adapter) Send(ctx context.Context, msg notify.Message) error {
	embed := &discordgo.MessageEmbed{
		Title:       msg.Title,
		Description: msg.Body,
		Color:       hexColor(msg.Color),
	}
	_, err := a.session.ChannelMessageSendEmbed(a.channelID, embed, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("discord: post digest: %w", err)
	}
	return nil
}

// hexColor converts "#rrggbb" to the integer form Discord embeds use.
func hexColor(color string) int {
	trimmed := strings.TrimPrefix(color, "#")
	n, err := strconv.ParseInt(trimmed, 16, 32)
	if err != nil {
		return 0
	}
	return int(n)
}
