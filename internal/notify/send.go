package notify

import (
	"context"
	"fmt"
	"strings"
)

// SendAll delivers one message through every adapter, collecting
// per-platform failures so one broken integration does not silence the
// others.
func SendAll(ctx context.Context, adapters []Adapter, msg Message) error {
	var errs []string
	for _, adapter := range adapters {
		if err := adapter.Send(ctx, msg); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", adapter.Name(), err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("notify: %s", strings.Join(errs, "; "))
	}
	return nil
}
