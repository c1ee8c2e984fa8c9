package processor

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/GanonMaor/spectra-salon-website-sub004/internal/observability"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/store"
)

const webhookProvider = "sumit"

// A processing claim older than this is assumed abandoned by a crashed or
// timed out delivery and may be taken over by a retry.
const webhookClaimLease = 5 * time.Minute

// Webhook event types
const (
	EventChargeSucceeded      = "charge.succeeded"
	EventChargeFailed         = "charge.failed"
	EventSubscriptionCanceled = "subscription.canceled"
	EventSubscriptionUpdated  = "subscription.updated"
)

// WebhookEvent is the provider payload. Only these fields are interpreted;
// the raw body is stored as received.
type WebhookEvent struct {
	EventID    string          `json:"event_id"`
	EventType  string          `json:"event_type"`
	CustomerID json.RawMessage `json:"customer_id"`
	Status     string          `json:"status"`
	Amount     json.RawMessage `json:"amount"`
	Currency   string          `json:"currency"`
}

// WebhookResult tells the handler what happened to a delivery.
type WebhookResult struct {
	Duplicate bool
	Outcome   string
}

// VerifySignature checks a hex HMAC-SHA256 of the raw body. Verification is
// skipped when no secret is configured.
func (p *BillingProcessor) VerifySignature(body []byte, signature string) error {
	if p.webhookSecret == "" {
		return nil
	}
	mac := hmac.New(sha256.New, []byte(p.webhookSecret))
	mac.Write(body)
	expected := mac.Sum(nil)

	given, err := hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(signature), "sha256="))
	if err != nil || !hmac.Equal(expected, given) {
		return ErrInvalidSignature
	}
	return nil
}

// HandleWebhook verifies, records and applies one provider delivery. A
// delivery whose (provider, event id) already reached applied or ignored
// changes nothing. Any other stored row is claimed and processed again;
// ErrWebhookInProgress is returned while another delivery holds the claim.
// Events that can never apply are marked ignored and acknowledged so the
// provider stops retrying; only internal failures return an error.
func (p *BillingProcessor) HandleWebhook(ctx context.Context, body []byte, signature string) (WebhookResult, error) {
	if err := p.VerifySignature(body, signature); err != nil {
		p.logger.Warn(ctx, "rejected billing webhook with bad signature")
		observability.RecordBillingWebhook("rejected")
		return WebhookResult{}, err
	}

	var event WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return WebhookResult{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if event.EventType == "" {
		return WebhookResult{}, fmt.Errorf("%w: event_type is required", ErrInvalidPayload)
	}

	var payload store.JSONB
	if err := json.Unmarshal(body, &payload); err != nil {
		return WebhookResult{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	eventID := event.EventID
	if eventID == "" {
		sum := sha256.Sum256(body)
		eventID = "sha256:" + hex.EncodeToString(sum[:])
	}
	customerID := customerIDString(event.CustomerID)

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "event_id", Value: eventID},
		observability.Field{Key: "event_type", Value: event.EventType},
		observability.Field{Key: "customer_id", Value: customerID},
	)

	params := store.CreateBillingWebhookEventParams{
		Provider:  webhookProvider,
		EventID:   eventID,
		EventType: event.EventType,
		Payload:   payload,
		ClaimedAt: p.now(),
	}
	if customerID != "" {
		params.CustomerID = &customerID
	}
	record, inserted, err := p.store.InsertBillingWebhookEvent(ctx, params)
	if err != nil {
		p.logger.Error(ctx, "failed to record billing webhook", err)
		return WebhookResult{}, fmt.Errorf("failed to record billing webhook: %w", err)
	}
	if !inserted {
		if isFinalOutcome(record.Outcome) {
			p.logger.Info(ctx, "duplicate billing webhook",
				observability.Field{Key: "outcome", Value: record.Outcome})
			observability.RecordBillingWebhook("duplicate")
			return WebhookResult{Duplicate: true, Outcome: record.Outcome}, nil
		}

		now := p.now()
		claimed, err := p.store.ClaimBillingWebhookEvent(ctx, record.ID, now, now.Add(-webhookClaimLease))
		if err != nil {
			p.logger.Error(ctx, "failed to claim billing webhook", err)
			return WebhookResult{}, fmt.Errorf("failed to claim billing webhook: %w", err)
		}
		if !claimed {
			p.logger.Warn(ctx, "billing webhook is held by another delivery",
				observability.Field{Key: "outcome", Value: record.Outcome})
			observability.RecordBillingWebhook("in_progress")
			return WebhookResult{}, ErrWebhookInProgress
		}
		p.logger.Info(ctx, "reprocessing unfinished billing webhook",
			observability.Field{Key: "previous_outcome", Value: record.Outcome})
	}

	outcome, reason, applyErr := p.applyEvent(ctx, event, customerID)
	if applyErr != nil {
		outcome = store.WebhookOutcomeFailed
		reason = applyErr.Error()
	}

	var reasonPtr *string
	if reason != "" {
		reasonPtr = &reason
	}
	if err := p.store.MarkBillingWebhookEvent(ctx, record.ID, outcome, reasonPtr, p.now()); err != nil {
		p.logger.Error(ctx, "failed to mark billing webhook", err)
		if applyErr == nil {
			applyErr = err
		}
	}

	observability.RecordBillingWebhook(outcome)
	if applyErr != nil {
		p.logger.Error(ctx, "failed to apply billing webhook", applyErr)
		return WebhookResult{Outcome: outcome}, fmt.Errorf("failed to apply billing webhook: %w", applyErr)
	}

	p.logger.Info(ctx, "billing webhook processed",
		observability.Field{Key: "outcome", Value: outcome},
		observability.Field{Key: "reason", Value: reason},
	)
	return WebhookResult{Outcome: outcome}, nil
}

// applyEvent returns the outcome to record. A non-nil error means the event
// should be retried.
func (p *BillingProcessor) applyEvent(ctx context.Context, event WebhookEvent, customerID string) (outcome, reason string, err error) {
	target, ok := targetStatus(event)
	if !ok {
		return store.WebhookOutcomeIgnored, "unsupported event: " + event.EventType + statusSuffix(event), nil
	}
	if customerID == "" {
		return store.WebhookOutcomeIgnored, "missing customer_id", nil
	}

	subscriber, err := p.store.GetSubscriberBySumitCustomerID(ctx, customerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.WebhookOutcomeIgnored, "unknown customer", nil
		}
		return "", "", err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "subscriber_id", Value: subscriber.ID.String()})

	now := p.now()

	// renewal of an already active subscription
	if event.EventType == EventChargeSucceeded && subscriber.Status == store.SubscriberStatusActive {
		if _, err := p.store.RecordSubscriberCharge(ctx, subscriber.ID, now); err != nil {
			return "", "", err
		}
		return store.WebhookOutcomeApplied, "renewal", nil
	}

	if subscriber.Status == target {
		return store.WebhookOutcomeIgnored, "already " + target, nil
	}
	if !CanTransition(subscriber.Status, target) {
		p.logger.Warn(ctx, "webhook requested an illegal transition",
			observability.Field{Key: "from", Value: subscriber.Status},
			observability.Field{Key: "to", Value: target},
		)
		return store.WebhookOutcomeIgnored, fmt.Sprintf("illegal transition %s -> %s", subscriber.Status, target), nil
	}

	params := store.TransitionSubscriberParams{
		ID:         subscriber.ID,
		FromStatus: subscriber.Status,
		ToStatus:   target,
		Now:        now,
	}
	if event.EventType == EventChargeSucceeded {
		params.LastChargeAt = &now
	}
	if target == store.SubscriberStatusCanceled {
		params.CanceledAt = &now
	}

	updated, err := p.store.TransitionSubscriber(ctx, params)
	if err != nil {
		// a concurrent change is retried by the provider and re-evaluated then
		return "", "", err
	}

	p.statusChanged(ctx, subscriber.Status, updated)
	return store.WebhookOutcomeApplied, "", nil
}

func (p *BillingProcessor) statusChanged(ctx context.Context, from string, subscriber store.Subscriber) {
	observability.RecordSubscriberTransition(from, subscriber.Status)
	p.publisher.PublishSubscriberStatusChanged(ctx, subscriber.ID, from, subscriber.Status)

	if subscriber.Status != store.SubscriberStatusPastDue || subscriber.LeadID == nil {
		return
	}
	lead, err := p.store.GetLeadByID(ctx, *subscriber.LeadID)
	if err != nil {
		p.logger.WarnWithError(ctx, "could not load lead for payment failed notice", err)
		return
	}
	if lead.Email != nil {
		p.notifier.PaymentFailed(ctx, *lead.Email, deref(lead.FullName), subscriber.PlanCode)
	}
}

func isFinalOutcome(outcome string) bool {
	return outcome == store.WebhookOutcomeApplied || outcome == store.WebhookOutcomeIgnored
}

func targetStatus(event WebhookEvent) (string, bool) {
	switch event.EventType {
	case EventChargeSucceeded:
		return store.SubscriberStatusActive, true
	case EventChargeFailed:
		return store.SubscriberStatusPastDue, true
	case EventSubscriptionCanceled:
		return store.SubscriberStatusCanceled, true
	case EventSubscriptionUpdated:
		if IsValidStatus(event.Status) {
			return event.Status, true
		}
	}
	return "", false
}

func statusSuffix(event WebhookEvent) string {
	if event.EventType == EventSubscriptionUpdated {
		return " with status " + fmt.Sprintf("%q", event.Status)
	}
	return ""
}

// customerIDString accepts the id as a JSON string or number.
func customerIDString(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}
