package notifications

import (
	"context"
	"fmt"
)

// Router dispatches a message to the sender registered for its channel.
// Only email is implemented; SMS and WhatsApp are routed but unconfigured.
type Router struct {
	email Sender
}

// NewRouter creates a new notification router
func NewRouter(email Sender) *Router {
	return &Router{email: email}
}

// Send routes the message by channel
func (r *Router) Send(ctx context.Context, msg *Message) error {
	switch msg.Channel {
	case ChannelEmail:
		return r.email.Send(ctx, msg)
	case ChannelSMS, ChannelWhatsApp:
		return fmt.Errorf("no sender configured for channel %s", msg.Channel)
	default:
		return fmt.Errorf("unsupported channel: %s", msg.Channel)
	}
}
