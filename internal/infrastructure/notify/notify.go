package notify

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Sender delivers one message to an external channel
type Sender interface {
	Send(ctx context.Context, text string) error
}

// Dispatcher sends admin notifications on a best-effort basis. Dispatch
// returns before the send happens; delivery failures are logged and
// swallowed. An order must never fail or slow down because a notification
// channel is down.
type Dispatcher struct {
	sender  Sender
	timeout time.Duration
	logger  *zap.Logger
}

// NewDispatcher creates a dispatcher; a nil sender disables notifications
func NewDispatcher(sender Sender, timeout time.Duration, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		sender:  sender,
		timeout: timeout,
		logger:  logger,
	}
}

// Dispatch hands the message to a goroutine and returns immediately. The
// send gets its own context so it survives the originating request.
func (d *Dispatcher) Dispatch(text string) {
	if d.sender == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		if err := d.sender.Send(ctx, text); err != nil {
			d.logger.Warn("notification delivery failed", zap.Error(err))
		}
	}()
}
