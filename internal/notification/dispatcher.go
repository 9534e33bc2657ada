package notification

import (
	"context"

	"github.com/sourcegraph/conc"

	"github.com/nvamotors/dealership-api/internal/config"
	"github.com/nvamotors/dealership-api/internal/email"
	"github.com/nvamotors/dealership-api/internal/logger"
	"github.com/nvamotors/dealership-api/internal/sms"
)

// Notifier fans a notification out to the configured channels.
// Delivery is best effort: a failing or unconfigured channel never
// surfaces as an error to the caller.
type Notifier interface {
	// Dispatch sends the event on every configured channel and reports
	// whether at least one delivery succeeded.
	Dispatch(ctx context.Context, event Event) bool

	// DispatchAsync sends the event in the background, detached from the
	// caller's request lifecycle.
	DispatchAsync(event Event)
}

type dispatcher struct {
	email  *email.Client
	sms    *sms.Client
	cfg    *config.Configuration
	logger *logger.Logger
}

func NewDispatcher(
	emailClient *email.Client,
	smsClient *sms.Client,
	cfg *config.Configuration,
	logger *logger.Logger,
) Notifier {
	return &dispatcher{
		email:  emailClient,
		sms:    smsClient,
		cfg:    cfg,
		logger: logger,
	}
}

func (d *dispatcher) Dispatch(ctx context.Context, event Event) bool {
	var (
		emailOK bool
		smsOK   bool
		wg      conc.WaitGroup
	)

	wg.Go(func() {
		emailOK = d.sendEmail(ctx, event)
	})
	wg.Go(func() {
		smsOK = d.sendSMS(event)
	})
	wg.Wait()

	if !emailOK && !smsOK {
		d.logger.Warnw("notification not delivered on any channel",
			"event_kind", event.Kind)
	}
	return emailOK || smsOK
}

func (d *dispatcher) DispatchAsync(event Event) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				d.logger.Errorw("notification dispatch panicked",
					"event_kind", event.Kind, "panic", r)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), d.cfg.Notification.GetDispatchTimeout())
		defer cancel()

		d.Dispatch(ctx, event)
	}()
}

func (d *dispatcher) sendEmail(ctx context.Context, event Event) bool {
	if d.email == nil || !d.email.IsEnabled() {
		return false
	}

	id, err := d.email.Send(ctx, event.Subject, event.HTMLBody)
	if err != nil {
		d.logger.Errorw("failed to send notification email",
			"event_kind", event.Kind, "error", err)
		return false
	}

	d.logger.Debugw("notification email sent",
		"event_kind", event.Kind, "email_id", id)
	return true
}

func (d *dispatcher) sendSMS(event Event) bool {
	if d.sms == nil || !d.sms.IsEnabled() {
		return false
	}

	sid, err := d.sms.Send(event.SMSBody)
	if err != nil {
		d.logger.Errorw("failed to send notification sms",
			"event_kind", event.Kind, "error", err)
		return false
	}

	d.logger.Debugw("notification sms sent",
		"event_kind", event.Kind, "message_sid", sid)
	return true
}
