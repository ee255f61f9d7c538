package notifications

import (
	"context"

	"football-manager-backend/internal/logger"
)

// EmailSender is a stand-in email delivery backend. No real mail provider is
// wired up, so it logs the rendered message instead of sending it.
type EmailSender struct {
	log *logger.Logger
}

// NewEmailSender creates a new email sender
func NewEmailSender() *EmailSender {
	return &EmailSender{log: logger.New().WithField("component", "email-sender")}
}

// Send delivers the message, honoring context cancellation
func (s *EmailSender) Send(ctx context.Context, msg *Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.log.WithFields(map[string]interface{}{
		"to":      msg.RecipientID,
		"subject": msg.Title,
		"body":    msg.Body,
	}).Info("mock email notification sent")
	return nil
}
