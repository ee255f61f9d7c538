package notifications

import (
	"context"
	"time"
)

// Channel selects the delivery mechanism for a notification
type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelSMS      Channel = "sms"
	ChannelWhatsApp Channel = "whatsapp"
)

// Message is a human-readable event handed to the notification gateway
type Message struct {
	Title       string            `json:"title"`
	Body        string            `json:"body"`
	RecipientID string            `json:"recipient_id"`
	Channel     Channel           `json:"channel"`
	CreatedAt   time.Time         `json:"created_at"`
	Data        map[string]string `json:"data,omitempty"`
}

// Sender delivers a notification over a single channel
type Sender interface {
	Send(ctx context.Context, msg *Message) error
}
