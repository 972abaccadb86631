// Package slack implements the notify Adapter for Slack using the Web API.
package slack

import (
	"context"
	"fmt"

	slackapi "github.com/slack-go/slack"
	"github.com/zulandar/fleetyard/internal/notify"
)

// slackClient abstracts the Slack API methods we use, enabling test mocks.
type slackClient interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error)
}

// Adapter posts digests to a single Slack channel.
type Adapter struct {
	client    slackClient
	channelID string
}

// AdapterOpts holds parameters for creating a Slack Adapter.
type AdapterOpts struct {
	BotToken  string // xoxb-... Slack bot token
	ChannelID string // channel to post digests to
	// For testing: inject a mock client instead of the real Slack API.
	Client slackClient
}

// New creates a Slack Adapter.
func New(opts AdapterOpts) (*Adapter, error) {
	if opts.Client == nil && opts.BotToken == "" {
		return nil, fmt.Errorf("slack: bot token is required")
	}
	if opts.ChannelID == "" {
		return nil, fmt.Errorf("slack: channel is required")
	}

	client := opts.Client
	if client == nil {
		client = slackapi.New(opts.BotToken)
	}
	return &Adapter{client: client, channelID: opts.ChannelID}, nil
}

// Name implements notify.Adapter.
func (a *Adapter) Name() string { return "slack" }

// Send posts the digest as an attachment so the severity color shows as
// a sidebar.
func (a *Adapter) Send(ctx context.Context, msg notify.Message) error {
	attachment := slackapi.Attachment{
		Title: msg.Title,
		Text:  msg.Body,
		Color: msg.Color,
	}
	_, _, err := a.client.PostMessageContext(ctx, a.channelID,
		slackapi.MsgOptionAttachments(attachment))
	if err != nil {
		return fmt.Errorf("slack: post digest: %w", err)
	}
	return nil
}
