package notifications

import (
	"context"
	"sync"
	"time"

	"football-manager-backend/internal/logger"
)

// Dispatcher hands notifications to a background goroutine so delivery never
// blocks or fails the operation that produced them. Delivery errors are
// logged and swallowed.
type Dispatcher struct {
	sender  Sender
	timeout time.Duration
	log     *logger.Logger
	wg      sync.WaitGroup
}

// NewDispatcher creates a new dispatcher. Each delivery is bounded by the
// given timeout.
func NewDispatcher(sender Sender, timeout time.Duration) *Dispatcher {
	return &Dispatcher{
		sender:  sender,
		timeout: timeout,
		log:     logger.New().WithField("component", "notification-dispatcher"),
	}
}

// Dispatch sends the message asynchronously and returns immediately
func (d *Dispatcher) Dispatch(msg *Message) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		if err := d.sender.Send(ctx, msg); err != nil {
			d.log.WithError(err).WithFields(map[string]interface{}{
				"recipient": msg.RecipientID,
				"channel":   msg.Channel,
				"title":     msg.Title,
			}).Warn("notification delivery failed")
		}
	}()
}

// Wait blocks until all in-flight deliveries have finished. Used on shutdown
// and in tests.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
