package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Storer defines all public methods available on the Store
type Storer interface {
	// Database
	DB() *sqlx.DB
	Ping(ctx context.Context) error
	Close() error

	// Migrations
	MigrateUp(ctx context.Context) error
	MigrateDown(ctx context.Context) error
	MigrationStatus(ctx context.Context) error

	// Lead operations
	CreateLead(ctx context.Context, params CreateLeadParams) (Lead, error)
	GetLeadByID(ctx context.Context, id uuid.UUID) (Lead, error)
	AdvanceLead(ctx context.Context, params AdvanceLeadParams) (Lead, error)
	ListLeads(ctx context.Context, params ListLeadsParams) ([]Lead, error)
	CountLeads(ctx context.Context, params ListLeadsParams) (int, error)
	CreateCTAClick(ctx context.Context, params CreateCTAClickParams) (CTAClick, error)
	GetFunnelSummary(ctx context.Context) (FunnelSummary, error)
	GetDailyFunnel(ctx context.Context, from, to time.Time) ([]DailyFunnelRow, error)

	// Subscriber operations
	CreateSubscriber(ctx context.Context, params CreateSubscriberParams) (Subscriber, error)
	GetSubscriberByID(ctx context.Context, id uuid.UUID) (Subscriber, error)
	GetSubscriberByLeadID(ctx context.Context, leadID uuid.UUID) (Subscriber, error)
	GetSubscriberBySumitCustomerID(ctx context.Context, customerID string) (Subscriber, error)
	TransitionSubscriber(ctx context.Context, params TransitionSubscriberParams) (Subscriber, error)
	RecordSubscriberCharge(ctx context.Context, id uuid.UUID, chargedAt time.Time) (Subscriber, error)
	ListSubscribers(ctx context.Context, params ListSubscribersParams) ([]Subscriber, error)
	CountSubscribers(ctx context.Context, statuses []string) (int, error)

	// Checkout charge operations
	CreateCheckoutCharge(ctx context.Context, params CreateCheckoutChargeParams) (CheckoutCharge, error)
	GetLatestCheckoutCharge(ctx context.Context, leadID uuid.UUID) (CheckoutCharge, error)

	// Billing webhook operations
	InsertBillingWebhookEvent(ctx context.Context, params CreateBillingWebhookEventParams) (BillingWebhookEvent, bool, error)
	ClaimBillingWebhookEvent(ctx context.Context, id uuid.UUID, claimedAt, staleBefore time.Time) (bool, error)
	MarkBillingWebhookEvent(ctx context.Context, id uuid.UUID, outcome string, reason *string, processedAt time.Time) error

	// Support operations
	CreateTicketWithMessage(ctx context.Context, params CreateTicketParams) (Ticket, TicketMessage, error)
	AppendTicketMessage(ctx context.Context, params AppendTicketMessageParams) (Ticket, TicketMessage, error)
	GetTicketByID(ctx context.Context, id uuid.UUID) (Ticket, error)
	FindLatestOpenTicketByPhone(ctx context.Context, phone string) (Ticket, error)
	ListTicketMessages(ctx context.Context, ticketID uuid.UUID) ([]TicketMessage, error)
	ListTickets(ctx context.Context, params ListTicketsParams) ([]Ticket, error)
	CountTickets(ctx context.Context, statuses []string) (int, error)
	UpdateTicketStatus(ctx context.Context, id uuid.UUID, status string, now time.Time) (Ticket, error)
	RecordContactHit(ctx context.Context, key string, limit int, window time.Duration, now time.Time) (ContactHit, error)

	// User operations
	CreateUser(ctx context.Context, email, passwordHash, fullName, role string) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (User, error)
}

// Ensure Store implements Storer
var _ Storer = (*Store)(nil)
