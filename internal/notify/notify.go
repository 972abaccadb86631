// Package notify delivers fleet health digests to chat platforms.
package notify

import "context"

// Adapter is the interface platform-specific senders must satisfy.
// Digest delivery is one-way; there is no inbound traffic.
type Adapter interface {
	// Name identifies the platform ("slack", "discord") in logs.
	Name() string

	// Send delivers one digest message to the platform's configured
	// channel.
	Send(ctx context.Context, msg Message) error
}

// Message is a formatted digest ready for delivery.
type Message struct {
	Title string // headline, e.g. "Fleet health: 2 critical, 3 warnings"
	Body  string // detail text, platform-agnostic plain formatting
	Color string // sidebar color hint for platforms that support it
}

// Severity color hints shared by all adapters.
const (
	ColorCritical = "#d00000"
	ColorWarning  = "#e8a13c"
	ColorOK       = "#36a64f"
)
