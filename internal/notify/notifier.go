package notify

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

const sendTimeout = 5 * time.Second

// Notifier delivers league announcements to the configured delegates.
type Notifier interface {
	Notify(ctx context.Context, subject, body string) error
}

// LogNotifier writes notifications to the log. It backs development and test
// environments where no delivery channel is configured.
type LogNotifier struct{}

func (LogNotifier) Notify(ctx context.Context, subject, body string) error {
	log.Ctx(ctx).Info().
		Str("subject", subject).
		Str("body", body).
		Msg("Notification")
	return nil
}

func newSendContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	// Detach cancellation so handler-scoped contexts don't abort async sends.
	parent = context.WithoutCancel(parent)
	return context.WithTimeout(parent, sendTimeout)
}

// Async fires a notification in the background. Delivery failures are logged,
// never returned: a fixture announcement must not fail the operation that
// produced it.
func Async(ctx context.Context, n Notifier, subject, body string) {
	if n == nil || subject == "" {
		return
	}
	logger := log.Ctx(ctx).With().Str("subject", subject).Logger()
	go func() {
		sendCtx, cancel := newSendContext(ctx)
		defer cancel()
		if sendCtx.Err() != nil {
			return
		}
		if err := n.Notify(sendCtx, subject, body); err != nil {
			logger.Error().Err(err).Msg("Failed to send notification")
		}
	}()
}
