package jobs

import (
	"context"
	"fmt"

	"github.com/GanonMaor/spectra-salon-website-sub004/internal/observability"

	"github.com/hibiken/asynq"
)

// Client handles enqueueing background jobs
type Client struct {
	client *asynq.Client
	logger *observability.Logger
}

// NewClient creates a new job client
func NewClient(redisOpt asynq.RedisClientOpt, logger *observability.Logger) *Client {
	return &Client{
		client: asynq.NewClient(redisOpt),
		logger: logger,
	}
}

// Close closes the client connection
func (c *Client) Close() error {
	return c.client.Close()
}

// EnqueueEmailJob enqueues an email job
func (c *Client) EnqueueEmailJob(ctx context.Context, payload EmailJobPayload) error {
	task, err := NewEmailTask(payload, queueFor(payload.Kind))
	if err != nil {
		c.logger.Error(ctx, "failed to create email task", err)
		return fmt.Errorf("failed to create email task: %w", err)
	}
	return c.enqueue(ctx, task)
}

// EnqueueWhatsAppJob enqueues a WhatsApp job
func (c *Client) EnqueueWhatsAppJob(ctx context.Context, payload WhatsAppJobPayload) error {
	task, err := NewWhatsAppTask(payload, queueFor(payload.Kind))
	if err != nil {
		c.logger.Error(ctx, "failed to create whatsapp task", err)
		return fmt.Errorf("failed to create whatsapp task: %w", err)
	}
	return c.enqueue(ctx, task)
}

func (c *Client) enqueue(ctx context.Context, task *asynq.Task) error {
	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		c.logger.Error(ctx, "failed to enqueue task", err)
		return fmt.Errorf("failed to enqueue %s task: %w", task.Type(), err)
	}

	c.logger.Debug(ctx, fmt.Sprintf("enqueued %s task: %s (queue: %s)", task.Type(), info.ID, info.Queue))
	return nil
}

// Replies to customers waiting on a ticket jump ahead of internal notices.
func queueFor(kind string) string {
	switch kind {
	case KindSupportReply:
		return QueueHigh
	default:
		return QueueLow
	}
}

// Notification kinds carried on payloads for logging and metrics.
const (
	KindSubscriptionStarted = "subscription_started"
	KindPaymentFailed       = "payment_failed"
	KindTicketCreated       = "ticket_created"
	KindSupportReply        = "support_reply"
)
