package processor

import (
	"context"
	"time"

	"github.com/GanonMaor/spectra-salon-website-sub004/internal/store"

	"github.com/google/uuid"
)

// SupportStore defines the database operations required by SupportProcessor
type SupportStore interface {
	CreateTicketWithMessage(ctx context.Context, params store.CreateTicketParams) (store.Ticket, store.TicketMessage, error)
	AppendTicketMessage(ctx context.Context, params store.AppendTicketMessageParams) (store.Ticket, store.TicketMessage, error)
	GetTicketByID(ctx context.Context, id uuid.UUID) (store.Ticket, error)
	FindLatestOpenTicketByPhone(ctx context.Context, phone string) (store.Ticket, error)
	ListTicketMessages(ctx context.Context, ticketID uuid.UUID) ([]store.TicketMessage, error)
	ListTickets(ctx context.Context, params store.ListTicketsParams) ([]store.Ticket, error)
	CountTickets(ctx context.Context, statuses []string) (int, error)
	UpdateTicketStatus(ctx context.Context, id uuid.UUID, status string, now time.Time) (store.Ticket, error)
}

// CaptchaVerifier checks a Turnstile token
type CaptchaVerifier interface {
	IsEnabled() bool
	Verify(ctx context.Context, token string, remoteIP string) error
}

// ContactLimiter throttles submissions per email and phone
type ContactLimiter interface {
	AllowContact(ctx context.Context, email, phone string) error
}

// SignatureValidator checks inbound Twilio webhooks
type SignatureValidator interface {
	ValidateSignature(url string, params map[string]string, signature string) bool
}

type Notifier interface {
	TicketCreated(ctx context.Context, ticket store.Ticket, message store.TicketMessage)
	SupportReply(ctx context.Context, ticket store.Ticket, message store.TicketMessage)
}

type EventPublisher interface {
	PublishSupportMessageAppended(ctx context.Context, ticketID uuid.UUID, senderType, status string)
}

// Broadcaster pushes new messages to connected dashboards
type Broadcaster interface {
	Broadcast(ctx context.Context, ticket store.Ticket, message store.TicketMessage)
}
