package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const billingEventColumns = `id, provider, event_id, event_type, customer_id, payload, outcome, reason, received_at, claimed_at, processed_at`

type CreateBillingWebhookEventParams struct {
	Provider   string
	EventID    string
	EventType  string
	CustomerID *string
	Payload    JSONB
	ClaimedAt  time.Time
}

const sqlInsertBillingWebhookEvent = `
INSERT INTO billing_webhook_events (provider, event_id, event_type, customer_id, payload, outcome, claimed_at)
VALUES ($1, $2, $3, $4, $5, 'processing', $6)
ON CONFLICT (provider, event_id) DO NOTHING
RETURNING ` + billingEventColumns

const sqlGetBillingWebhookEvent = `
SELECT ` + billingEventColumns + `
FROM billing_webhook_events
WHERE provider = $1 AND event_id = $2`

// InsertBillingWebhookEvent records a delivery already claimed by the caller.
// inserted is false when the (provider, event_id) pair was already stored; the
// stored row is returned then and is not claimed.
func (s *Store) InsertBillingWebhookEvent(ctx context.Context, params CreateBillingWebhookEventParams) (event BillingWebhookEvent, inserted bool, err error) {
	err = s.db.GetContext(ctx, &event, sqlInsertBillingWebhookEvent,
		params.Provider,
		params.EventID,
		params.EventType,
		params.CustomerID,
		params.Payload,
		params.ClaimedAt,
	)
	if err == nil {
		return event, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		s.logger.Error(ctx, "failed to insert billing webhook event", err)
		return BillingWebhookEvent{}, false, fmt.Errorf("failed to insert billing webhook event: %w", err)
	}

	err = s.db.GetContext(ctx, &event, sqlGetBillingWebhookEvent, params.Provider, params.EventID)
	if err != nil {
		s.logger.Error(ctx, "failed to load duplicate billing webhook event", err)
		return BillingWebhookEvent{}, false, fmt.Errorf("failed to load duplicate billing webhook event: %w", err)
	}
	return event, false, nil
}

const sqlClaimBillingWebhookEvent = `
UPDATE billing_webhook_events
SET outcome = 'processing', claimed_at = $2
WHERE id = $1
  AND (outcome IN ('received', 'failed')
       OR (outcome = 'processing' AND (claimed_at IS NULL OR claimed_at < $3)))`

// ClaimBillingWebhookEvent takes over an unfinished delivery for processing.
// Rows still received or failed are claimable, as are processing rows whose
// claim is older than staleBefore. claimed is false when another delivery
// holds a live claim or the row already reached a final outcome.
func (s *Store) ClaimBillingWebhookEvent(ctx context.Context, id uuid.UUID, claimedAt, staleBefore time.Time) (claimed bool, err error) {
	result, err := s.db.ExecContext(ctx, sqlClaimBillingWebhookEvent, id, claimedAt, staleBefore)
	if err != nil {
		s.logger.Error(ctx, "failed to claim billing webhook event", err)
		return false, fmt.Errorf("failed to claim billing webhook event: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rowsAffected == 1, nil
}

const sqlMarkBillingWebhookEvent = `
UPDATE billing_webhook_events
SET outcome = $2, reason = $3, processed_at = $4
WHERE id = $1`

func (s *Store) MarkBillingWebhookEvent(ctx context.Context, id uuid.UUID, outcome string, reason *string, processedAt time.Time) error {
	result, err := s.db.ExecContext(ctx, sqlMarkBillingWebhookEvent, id, outcome, reason, processedAt)
	if err != nil {
		s.logger.Error(ctx, "failed to mark billing webhook event", err)
		return fmt.Errorf("failed to mark billing webhook event: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
