package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const subscriberColumns = `id, lead_id, plan_code, currency, amount_minor, status,
sumit_customer_id, sumit_payment_method, sumit_subscription_id,
trial_start, trial_end, last_charge_at, canceled_at, created_at, updated_at`

type CreateSubscriberParams struct {
	LeadID              *uuid.UUID
	PlanCode            string
	Currency            string
	AmountMinor         int64
	Status              string
	SumitCustomerID     string
	SumitPaymentMethod  *string
	SumitSubscriptionID *string
	TrialStart          *time.Time
	TrialEnd            *time.Time
	LastChargeAt        *time.Time
}

const sqlCreateSubscriber = `
INSERT INTO subscribers (
	lead_id, plan_code, currency, amount_minor, status,
	sumit_customer_id, sumit_payment_method, sumit_subscription_id,
	trial_start, trial_end, last_charge_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (lead_id) WHERE lead_id IS NOT NULL DO NOTHING
RETURNING ` + subscriberColumns

// CreateSubscriber returns ErrAlreadyExists when the lead already has a subscriber.
func (s *Store) CreateSubscriber(ctx context.Context, params CreateSubscriberParams) (Subscriber, error) {
	var subscriber Subscriber
	err := s.db.GetContext(ctx, &subscriber, sqlCreateSubscriber,
		params.LeadID,
		params.PlanCode,
		params.Currency,
		params.AmountMinor,
		params.Status,
		params.SumitCustomerID,
		params.SumitPaymentMethod,
		params.SumitSubscriptionID,
		params.TrialStart,
		params.TrialEnd,
		params.LastChargeAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Subscriber{}, ErrAlreadyExists
		}
		s.logger.Error(ctx, "failed to create subscriber", err)
		return Subscriber{}, fmt.Errorf("failed to create subscriber: %w", err)
	}
	return subscriber, nil
}

const sqlGetSubscriberByID = `SELECT ` + subscriberColumns + ` FROM subscribers WHERE id = $1`

func (s *Store) GetSubscriberByID(ctx context.Context, id uuid.UUID) (Subscriber, error) {
	return s.getSubscriber(ctx, "failed to get subscriber by id", sqlGetSubscriberByID, id)
}

const sqlGetSubscriberByLeadID = `SELECT ` + subscriberColumns + ` FROM subscribers WHERE lead_id = $1`

func (s *Store) GetSubscriberByLeadID(ctx context.Context, leadID uuid.UUID) (Subscriber, error) {
	return s.getSubscriber(ctx, "failed to get subscriber by lead id", sqlGetSubscriberByLeadID, leadID)
}

// A SUMIT customer can in principle own several subscriptions; the most recent one is the live one.
const sqlGetSubscriberBySumitCustomerID = `
SELECT ` + subscriberColumns + `
FROM subscribers
WHERE sumit_customer_id = $1
ORDER BY created_at DESC
LIMIT 1`

func (s *Store) GetSubscriberBySumitCustomerID(ctx context.Context, customerID string) (Subscriber, error) {
	return s.getSubscriber(ctx, "failed to get subscriber by sumit customer id", sqlGetSubscriberBySumitCustomerID, customerID)
}

func (s *Store) getSubscriber(ctx context.Context, msg, query string, arg interface{}) (Subscriber, error) {
	var subscriber Subscriber
	err := s.db.GetContext(ctx, &subscriber, query, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Subscriber{}, ErrNotFound
		}
		s.logger.Error(ctx, msg, err)
		return Subscriber{}, fmt.Errorf("%s: %w", msg, err)
	}
	return subscriber, nil
}

// TransitionSubscriberParams moves a subscriber from FromStatus to ToStatus.
// Nil timestamps leave the column unchanged.
type TransitionSubscriberParams struct {
	ID           uuid.UUID
	FromStatus   string
	ToStatus     string
	LastChargeAt *time.Time
	CanceledAt   *time.Time
	Now          time.Time
}

const sqlTransitionSubscriber = `
UPDATE subscribers SET
	status = $3,
	last_charge_at = COALESCE($4, last_charge_at),
	canceled_at = COALESCE($5, canceled_at),
	updated_at = $6
WHERE id = $1 AND status = $2
RETURNING ` + subscriberColumns

// TransitionSubscriber returns ErrStaleState when the subscriber is no longer in FromStatus.
func (s *Store) TransitionSubscriber(ctx context.Context, params TransitionSubscriberParams) (Subscriber, error) {
	var subscriber Subscriber
	err := s.db.GetContext(ctx, &subscriber, sqlTransitionSubscriber,
		params.ID,
		params.FromStatus,
		params.ToStatus,
		params.LastChargeAt,
		params.CanceledAt,
		params.Now,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Subscriber{}, ErrStaleState
		}
		s.logger.Error(ctx, "failed to transition subscriber", err)
		return Subscriber{}, fmt.Errorf("failed to transition subscriber: %w", err)
	}
	return subscriber, nil
}

const sqlRecordSubscriberCharge = `
UPDATE subscribers SET last_charge_at = $2, updated_at = $2
WHERE id = $1
RETURNING ` + subscriberColumns

// RecordSubscriberCharge stamps a renewal without touching status.
func (s *Store) RecordSubscriberCharge(ctx context.Context, id uuid.UUID, chargedAt time.Time) (Subscriber, error) {
	var subscriber Subscriber
	err := s.db.GetContext(ctx, &subscriber, sqlRecordSubscriberCharge, id, chargedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Subscriber{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to record subscriber charge", err)
		return Subscriber{}, fmt.Errorf("failed to record subscriber charge: %w", err)
	}
	return subscriber, nil
}

// ListSubscribersParams filters the admin subscriber list. An empty Statuses means all.
type ListSubscribersParams struct {
	Statuses []string
	Limit    int
	Offset   int
}

const sqlListSubscribers = `
SELECT ` + subscriberColumns + `
FROM subscribers
WHERE (cardinality($1::text[]) = 0 OR status = ANY($1::text[]))
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

func (s *Store) ListSubscribers(ctx context.Context, params ListSubscribersParams) ([]Subscriber, error) {
	subscribers := []Subscriber{}
	err := s.db.SelectContext(ctx, &subscribers, sqlListSubscribers,
		pq.Array(nonNilStrings(params.Statuses)), params.Limit, params.Offset)
	if err != nil {
		s.logger.Error(ctx, "failed to list subscribers", err)
		return nil, fmt.Errorf("failed to list subscribers: %w", err)
	}
	return subscribers, nil
}

const sqlCountSubscribers = `
SELECT COUNT(*)
FROM subscribers
WHERE (cardinality($1::text[]) = 0 OR status = ANY($1::text[]))`

func (s *Store) CountSubscribers(ctx context.Context, statuses []string) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountSubscribers, pq.Array(nonNilStrings(statuses)))
	if err != nil {
		s.logger.Error(ctx, "failed to count subscribers", err)
		return 0, fmt.Errorf("failed to count subscribers: %w", err)
	}
	return count, nil
}

// pq.Array encodes a nil slice as NULL, and cardinality(NULL) is NULL.
func nonNilStrings(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
