package processor

import (
	"context"
	"time"

	"github.com/GanonMaor/spectra-salon-website-sub004/internal/clients/sumit"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/store"

	"github.com/google/uuid"
)

// BillingStore defines the database operations required by BillingProcessor
type BillingStore interface {
	GetLeadByID(ctx context.Context, id uuid.UUID) (store.Lead, error)
	CreateSubscriber(ctx context.Context, params store.CreateSubscriberParams) (store.Subscriber, error)
	GetSubscriberByID(ctx context.Context, id uuid.UUID) (store.Subscriber, error)
	GetSubscriberByLeadID(ctx context.Context, leadID uuid.UUID) (store.Subscriber, error)
	GetSubscriberBySumitCustomerID(ctx context.Context, customerID string) (store.Subscriber, error)
	TransitionSubscriber(ctx context.Context, params store.TransitionSubscriberParams) (store.Subscriber, error)
	RecordSubscriberCharge(ctx context.Context, id uuid.UUID, chargedAt time.Time) (store.Subscriber, error)
	ListSubscribers(ctx context.Context, params store.ListSubscribersParams) ([]store.Subscriber, error)
	CountSubscribers(ctx context.Context, statuses []string) (int, error)
	CreateCheckoutCharge(ctx context.Context, params store.CreateCheckoutChargeParams) (store.CheckoutCharge, error)
	GetLatestCheckoutCharge(ctx context.Context, leadID uuid.UUID) (store.CheckoutCharge, error)
	InsertBillingWebhookEvent(ctx context.Context, params store.CreateBillingWebhookEventParams) (store.BillingWebhookEvent, bool, error)
	ClaimBillingWebhookEvent(ctx context.Context, id uuid.UUID, claimedAt, staleBefore time.Time) (bool, error)
	MarkBillingWebhookEvent(ctx context.Context, id uuid.UUID, outcome string, reason *string, processedAt time.Time) error
}

// PaymentProvider defines the SUMIT operations required by BillingProcessor
type PaymentProvider interface {
	IsEnabled() bool
	Charge(ctx context.Context, req sumit.ChargeRequest) (sumit.ChargeResult, error)
}

// EventPublisher defines the domain events emitted by BillingProcessor
type EventPublisher interface {
	PublishSubscriberCreated(ctx context.Context, subscriberID uuid.UUID, leadID *uuid.UUID, planCode, status string)
	PublishSubscriberStatusChanged(ctx context.Context, subscriberID uuid.UUID, from, to string)
}

// Notifier defines the customer notifications sent by BillingProcessor
type Notifier interface {
	SubscriptionStarted(ctx context.Context, to, fullName, planCode string, trialEnd *time.Time)
	PaymentFailed(ctx context.Context, to, fullName, planCode string)
}
