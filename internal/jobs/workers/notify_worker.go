package workers

//go:generate go run go.uber.org/mock/mockgen@latest -source=notify_worker.go -destination=mocks_test.go -package=workers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/GanonMaor/spectra-salon-website-sub004/internal/clients/mail"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/clients/whatsapp"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/jobs"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/observability"

	"github.com/hibiken/asynq"
)

type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, htmlContent string) (string, error)
}

type WhatsAppSender interface {
	SendMessage(ctx context.Context, phone, body string) (string, error)
}

// NotificationWorker delivers queued notifications.
type NotificationWorker struct {
	email    EmailSender
	whatsapp WhatsAppSender
	logger   *observability.Logger
}

// NewNotificationWorker creates a new notification worker
func NewNotificationWorker(email EmailSender, whatsapp WhatsAppSender, logger *observability.Logger) *NotificationWorker {
	return &NotificationWorker{
		email:    email,
		whatsapp: whatsapp,
		logger:   logger,
	}
}

// ProcessEmailTask processes a notify:email task
func (w *NotificationWorker) ProcessEmailTask(ctx context.Context, task *asynq.Task) error {
	var payload jobs.EmailJobPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		w.logger.Error(ctx, "failed to unmarshal email job payload", err)
		return fmt.Errorf("failed to unmarshal email job payload: %v: %w", err, asynq.SkipRetry)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "notification_kind", Value: payload.Kind},
		observability.Field{Key: "channel", Value: "email"},
	)

	if _, err := w.email.SendEmail(ctx, payload.To, payload.Subject, payload.HTML); err != nil {
		observability.RecordNotification("email", "failed")
		if errors.Is(err, mail.ErrNotConfigured) {
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		return fmt.Errorf("failed to send email: %w", err)
	}

	observability.RecordNotification("email", "sent")
	return nil
}

// ProcessWhatsAppTask processes a notify:whatsapp task
func (w *NotificationWorker) ProcessWhatsAppTask(ctx context.Context, task *asynq.Task) error {
	var payload jobs.WhatsAppJobPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		w.logger.Error(ctx, "failed to unmarshal whatsapp job payload", err)
		return fmt.Errorf("failed to unmarshal whatsapp job payload: %v: %w", err, asynq.SkipRetry)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "notification_kind", Value: payload.Kind},
		observability.Field{Key: "channel", Value: "whatsapp"},
	)

	if _, err := w.whatsapp.SendMessage(ctx, payload.Phone, payload.Body); err != nil {
		observability.RecordNotification("whatsapp", "failed")
		if errors.Is(err, whatsapp.ErrNotConfigured) {
			return fmt.Errorf("%v: %w", err, asynq.SkipRetry)
		}
		return fmt.Errorf("failed to send whatsapp message: %w", err)
	}

	observability.RecordNotification("whatsapp", "sent")
	return nil
}

// Register wires the handlers into mux.
func (w *NotificationWorker) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(jobs.TypeNotifyEmail, w.ProcessEmailTask)
	mux.HandleFunc(jobs.TypeNotifyWhatsApp, w.ProcessWhatsAppTask)
}
