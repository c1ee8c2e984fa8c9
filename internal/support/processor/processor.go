package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/GanonMaor/spectra-salon-website-sub004/internal/clients/whatsapp"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/observability"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/store"

	"github.com/google/uuid"
)

var (
	ErrTicketNotFound    = errors.New("ticket not found")
	ErrContactRequired   = errors.New("email or phone is required")
	ErrInvalidSenderType = errors.New("invalid sender type")
	ErrInvalidStatus     = errors.New("invalid ticket status")
	ErrEmptyMessage      = errors.New("message is empty")
	ErrCaptchaRequired   = errors.New("captcha token is required")
	ErrCaptchaFailed     = errors.New("captcha verification failed")
	ErrInvalidSignature  = errors.New("invalid webhook signature")
)

const (
	maxMessageLength = 5000
	whatsappSource   = "whatsapp"
)

func IsValidSenderType(senderType string) bool {
	switch senderType {
	case store.SenderTypeCustomer, store.SenderTypeAgent, store.SenderTypeSystem:
		return true
	}
	return false
}

func IsValidStatus(status string) bool {
	switch status {
	case store.TicketStatusOpen, store.TicketStatusPending, store.TicketStatusClosed:
		return true
	}
	return false
}

// statusAfter is the ticket status after a message from senderType. An empty
// result leaves the status unchanged.
func statusAfter(senderType string) string {
	switch senderType {
	case store.SenderTypeCustomer:
		return store.TicketStatusOpen
	case store.SenderTypeAgent:
		return store.TicketStatusPending
	}
	return ""
}

type SupportProcessor struct {
	store       SupportStore
	captcha     CaptchaVerifier
	limiter     ContactLimiter
	validator   SignatureValidator
	notifier    Notifier
	publisher   EventPublisher
	broadcaster Broadcaster
	logger      *observability.Logger
	now         func() time.Time
}

func New(
	store SupportStore,
	captcha CaptchaVerifier,
	limiter ContactLimiter,
	validator SignatureValidator,
	notifier Notifier,
	publisher EventPublisher,
	broadcaster Broadcaster,
	logger *observability.Logger,
) SupportProcessor {
	return SupportProcessor{
		store:       store,
		captcha:     captcha,
		limiter:     limiter,
		validator:   validator,
		notifier:    notifier,
		publisher:   publisher,
		broadcaster: broadcaster,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

type CreateTicketRequest struct {
	Name         string
	Email        *string
	Phone        *string
	Message      string
	SourcePage   string
	CaptchaToken string
	RemoteIP     string
}

// CreateTicket opens a web ticket with the customer's first message.
func (p *SupportProcessor) CreateTicket(ctx context.Context, req CreateTicketRequest) (store.Ticket, error) {
	message, err := cleanMessage(req.Message)
	if err != nil {
		return store.Ticket{}, err
	}
	email := normalizeEmail(req.Email)
	phone := trimmedOrNil(req.Phone)
	if email == nil && phone == nil {
		return store.Ticket{}, ErrContactRequired
	}

	if p.captcha.IsEnabled() {
		if req.CaptchaToken == "" {
			return store.Ticket{}, ErrCaptchaRequired
		}
		if err := p.captcha.Verify(ctx, req.CaptchaToken, req.RemoteIP); err != nil {
			p.logger.Warn(ctx, "captcha rejected support ticket")
			return store.Ticket{}, fmt.Errorf("%w: %v", ErrCaptchaFailed, err)
		}
	}

	if err := p.limiter.AllowContact(ctx, deref(email), deref(phone)); err != nil {
		return store.Ticket{}, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = contactLabel(email, phone)
	}

	ticket, first, err := p.store.CreateTicketWithMessage(ctx, store.CreateTicketParams{
		Name:       name,
		Email:      email,
		Phone:      phone,
		Channel:    store.TicketChannelWeb,
		SourcePage: strings.TrimSpace(req.SourcePage),
		Message:    message,
		Now:        p.now(),
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create ticket", err)
		return store.Ticket{}, fmt.Errorf("failed to create ticket: %w", err)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "ticket_id", Value: ticket.ID.String()})
	p.notifier.TicketCreated(ctx, ticket, first)
	p.appended(ctx, ticket, first)
	p.logger.Info(ctx, "support ticket created")
	return ticket, nil
}

type AppendMessageRequest struct {
	TicketID   uuid.UUID
	SenderType string
	SenderName string
	Message    string
}

// AppendMessage adds a message to a ticket and moves its status: customer
// messages open (or reopen) it, agent replies mark it pending.
func (p *SupportProcessor) AppendMessage(ctx context.Context, req AppendMessageRequest) (store.TicketMessage, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "ticket_id", Value: req.TicketID.String()})

	if !IsValidSenderType(req.SenderType) {
		return store.TicketMessage{}, ErrInvalidSenderType
	}
	message, err := cleanMessage(req.Message)
	if err != nil {
		return store.TicketMessage{}, err
	}

	ticket, err := p.store.GetTicketByID(ctx, req.TicketID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.TicketMessage{}, ErrTicketNotFound
		}
		p.logger.Error(ctx, "failed to get ticket", err)
		return store.TicketMessage{}, fmt.Errorf("failed to get ticket: %w", err)
	}

	if req.SenderType == store.SenderTypeCustomer {
		if err := p.limiter.AllowContact(ctx, deref(ticket.Email), deref(ticket.Phone)); err != nil {
			return store.TicketMessage{}, err
		}
	}

	senderName := strings.TrimSpace(req.SenderName)
	if senderName == "" {
		senderName = defaultSenderName(req.SenderType, ticket)
	}

	updated, msg, err := p.store.AppendTicketMessage(ctx, store.AppendTicketMessageParams{
		TicketID:   ticket.ID,
		SenderType: req.SenderType,
		SenderName: senderName,
		Message:    message,
		Status:     statusAfter(req.SenderType),
		Now:        p.now(),
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.TicketMessage{}, ErrTicketNotFound
		}
		p.logger.Error(ctx, "failed to append message", err)
		return store.TicketMessage{}, fmt.Errorf("failed to append message: %w", err)
	}

	if req.SenderType == store.SenderTypeAgent {
		p.notifier.SupportReply(ctx, updated, msg)
	}
	p.appended(ctx, updated, msg)
	return msg, nil
}

// InboundWhatsAppRequest is a Twilio form post.
type InboundWhatsAppRequest struct {
	URL       string
	Params    map[string]string
	Signature string
}

// HandleInboundWhatsApp threads an inbound WhatsApp message onto the latest
// non-closed ticket for the sender's phone, or opens a new one.
func (p *SupportProcessor) HandleInboundWhatsApp(ctx context.Context, req InboundWhatsAppRequest) error {
	if !p.validator.ValidateSignature(req.URL, req.Params, req.Signature) {
		p.logger.Warn(ctx, "rejected whatsapp webhook with bad signature")
		return ErrInvalidSignature
	}

	phone := strings.TrimSpace(whatsapp.Phone(req.Params["From"]))
	if phone == "" {
		return ErrContactRequired
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "whatsapp_from", Value: phone},
		observability.Field{Key: "message_sid", Value: req.Params["MessageSid"]},
	)

	body := strings.TrimSpace(req.Params["Body"])
	if body == "" {
		// media-only messages carry no text to thread
		p.logger.Info(ctx, "ignoring whatsapp message without text")
		return nil
	}
	body = truncateMessage(body)
	name := strings.TrimSpace(req.Params["ProfileName"])
	if name == "" {
		name = phone
	}

	ticket, err := p.store.FindLatestOpenTicketByPhone(ctx, phone)
	switch {
	case err == nil:
		updated, msg, err := p.store.AppendTicketMessage(ctx, store.AppendTicketMessageParams{
			TicketID:   ticket.ID,
			SenderType: store.SenderTypeCustomer,
			SenderName: name,
			Message:    body,
			Status:     store.TicketStatusOpen,
			Now:        p.now(),
		})
		if err != nil {
			p.logger.Error(ctx, "failed to append whatsapp message", err)
			return fmt.Errorf("failed to append whatsapp message: %w", err)
		}
		p.appended(ctx, updated, msg)
		return nil

	case errors.Is(err, store.ErrNotFound):
		created, first, err := p.store.CreateTicketWithMessage(ctx, store.CreateTicketParams{
			Name:       name,
			Phone:      &phone,
			Channel:    store.TicketChannelWhatsApp,
			SourcePage: whatsappSource,
			Message:    body,
			Now:        p.now(),
		})
		if err != nil {
			p.logger.Error(ctx, "failed to create whatsapp ticket", err)
			return fmt.Errorf("failed to create whatsapp ticket: %w", err)
		}
		p.notifier.TicketCreated(ctx, created, first)
		p.appended(ctx, created, first)
		p.logger.Info(ctx, "whatsapp ticket created",
			observability.Field{Key: "ticket_id", Value: created.ID.String()})
		return nil

	default:
		p.logger.Error(ctx, "failed to look up whatsapp ticket", err)
		return fmt.Errorf("failed to look up whatsapp ticket: %w", err)
	}
}

func (p *SupportProcessor) appended(ctx context.Context, ticket store.Ticket, msg store.TicketMessage) {
	p.broadcaster.Broadcast(ctx, ticket, msg)
	p.publisher.PublishSupportMessageAppended(ctx, ticket.ID, msg.SenderType, ticket.Status)
}

func cleanMessage(message string) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return "", ErrEmptyMessage
	}
	return truncateMessage(message), nil
}

// truncateMessage caps a message at maxMessageLength characters, counted the
// way the request validators count them, and never splits a UTF-8 sequence.
func truncateMessage(message string) string {
	message = strings.ToValidUTF8(message, "\uFFFD")
	if utf8.RuneCountInString(message) <= maxMessageLength {
		return message
	}
	n := 0
	for i := range message {
		if n == maxMessageLength {
			return message[:i]
		}
		n++
	}
	return message
}

func defaultSenderName(senderType string, ticket store.Ticket) string {
	switch senderType {
	case store.SenderTypeCustomer:
		return ticket.Name
	case store.SenderTypeAgent:
		return "Spectra Support"
	}
	return "System"
}

func contactLabel(email, phone *string) string {
	if email != nil {
		return *email
	}
	return deref(phone)
}

func normalizeEmail(email *string) *string {
	if email == nil {
		return nil
	}
	normalized := strings.ToLower(strings.TrimSpace(*email))
	if normalized == "" {
		return nil
	}
	return &normalized
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
