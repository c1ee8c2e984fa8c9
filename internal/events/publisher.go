package events

import (
	"context"
	"time"

	"github.com/GanonMaor/spectra-salon-website-sub004/internal/clients/kafka"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/observability"

	"github.com/google/uuid"
)

const (
	TypeLeadStageRecorded       = "lead.stage_recorded"
	TypeSubscriberCreated       = "subscriber.created"
	TypeSubscriberStatusChanged = "subscriber.status_changed"
	TypeSupportMessageAppended  = "support.message_appended"
)

// Publisher publishes domain events to Kafka. A Publisher without a producer
// drops every event, which is how the service runs when Kafka is not configured.
// Publish failures are logged and never returned to the caller.
type Publisher struct {
	kafkaProducer *kafka.Producer
	logger        *observability.Logger
	now           func() time.Time
}

// NewPublisher creates a new event publisher
func NewPublisher(kafkaProducer *kafka.Producer, logger *observability.Logger) *Publisher {
	return &Publisher{
		kafkaProducer: kafkaProducer,
		logger:        logger,
		now:           time.Now,
	}
}

// PublishLeadStageRecorded publishes a lead.stage_recorded event
func (p *Publisher) PublishLeadStageRecorded(ctx context.Context, leadID uuid.UUID, stage string, advanced bool) {
	p.publish(ctx, TypeLeadStageRecorded, leadID.String(), map[string]interface{}{
		"lead_id":  leadID.String(),
		"stage":    stage,
		"advanced": advanced,
	})
}

// PublishSubscriberCreated publishes a subscriber.created event
func (p *Publisher) PublishSubscriberCreated(ctx context.Context, subscriberID uuid.UUID, leadID *uuid.UUID, planCode, status string) {
	data := map[string]interface{}{
		"subscriber_id": subscriberID.String(),
		"plan_code":     planCode,
		"status":        status,
	}
	if leadID != nil {
		data["lead_id"] = leadID.String()
	}
	p.publish(ctx, TypeSubscriberCreated, subscriberID.String(), data)
}

// PublishSubscriberStatusChanged publishes a subscriber.status_changed event
func (p *Publisher) PublishSubscriberStatusChanged(ctx context.Context, subscriberID uuid.UUID, from, to string) {
	p.publish(ctx, TypeSubscriberStatusChanged, subscriberID.String(), map[string]interface{}{
		"subscriber_id": subscriberID.String(),
		"from":          from,
		"to":            to,
	})
}

// PublishSupportMessageAppended publishes a support.message_appended event
func (p *Publisher) PublishSupportMessageAppended(ctx context.Context, ticketID uuid.UUID, senderType, status string) {
	p.publish(ctx, TypeSupportMessageAppended, ticketID.String(), map[string]interface{}{
		"ticket_id":   ticketID.String(),
		"sender_type": senderType,
		"status":      status,
	})
}

func (p *Publisher) publish(ctx context.Context, eventType, key string, data map[string]interface{}) {
	if p == nil || p.kafkaProducer == nil {
		return
	}

	event := kafka.EventMessage{
		ID:        uuid.New().String(),
		Type:      eventType,
		Key:       key,
		Data:      data,
		Timestamp: p.now().UTC().Format(time.RFC3339),
	}

	if err := p.kafkaProducer.PublishEvent(ctx, event); err != nil {
		p.logger.WarnWithError(ctx, "failed to publish domain event", err)
	}
}
