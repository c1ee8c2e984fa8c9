package notify

import (
	"context"
	"time"

	"github.com/GanonMaor/spectra-salon-website-sub004/internal/jobs"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/observability"
)

const inlineSendTimeout = 15 * time.Second

type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, htmlContent string) (string, error)
}

type WhatsAppSender interface {
	SendMessage(ctx context.Context, phone, body string) (string, error)
}

// InlineDispatcher delivers from the API process when no job queue is
// configured. Sends run in the background so the request never waits on the
// provider; a failed send is logged and dropped.
type InlineDispatcher struct {
	email    EmailSender
	whatsapp WhatsAppSender
	logger   *observability.Logger
	run      func(func())
}

func NewInlineDispatcher(email EmailSender, whatsapp WhatsAppSender, logger *observability.Logger) *InlineDispatcher {
	return &InlineDispatcher{
		email:    email,
		whatsapp: whatsapp,
		logger:   logger,
		run:      func(f func()) { go f() },
	}
}

func (d *InlineDispatcher) EnqueueEmailJob(ctx context.Context, payload jobs.EmailJobPayload) error {
	d.run(func() {
		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), inlineSendTimeout)
		defer cancel()
		if _, err := d.email.SendEmail(sendCtx, payload.To, payload.Subject, payload.HTML); err != nil {
			d.logger.WarnWithError(sendCtx, "inline email delivery failed", err)
			observability.RecordNotification("email", "failed")
			return
		}
		observability.RecordNotification("email", "sent")
	})
	return nil
}

func (d *InlineDispatcher) EnqueueWhatsAppJob(ctx context.Context, payload jobs.WhatsAppJobPayload) error {
	d.run(func() {
		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), inlineSendTimeout)
		defer cancel()
		if _, err := d.whatsapp.SendMessage(sendCtx, payload.Phone, payload.Body); err != nil {
			d.logger.WarnWithError(sendCtx, "inline whatsapp delivery failed", err)
			observability.RecordNotification("whatsapp", "failed")
			return
		}
		observability.RecordNotification("whatsapp", "sent")
	})
	return nil
}
