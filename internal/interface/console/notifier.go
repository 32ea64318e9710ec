package console

import (
	"context"
	"fmt"
	"io"

	"github.com/progress-hub/learning-tracker/internal/domain/notification"
	"github.com/progress-hub/learning-tracker/internal/interface/console/presenter"
)

// ══════════════════════════════════════════════════════════════════════════════
// CONSOLE DELIVERY CHANNEL
// ══════════════════════════════════════════════════════════════════════════════

// Channel delivers notifications by printing them to the session output.
type Channel struct {
	out io.Writer
}

// NewChannel creates a console delivery channel.
func NewChannel(out io.Writer) *Channel {
	return &Channel{out: out}
}

// Deliver implements notification.Channel.
func (c *Channel) Deliver(ctx context.Context, n *notification.Notification) error {
	_, err := fmt.Fprintln(c.out, presenter.NotificationMessage(n))
	return err
}

// Type implements notification.Channel.
func (c *Channel) Type() notification.ChannelType {
	return notification.ChannelTypeConsole
}
