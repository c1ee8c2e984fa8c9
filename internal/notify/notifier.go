package notify

//go:generate go run go.uber.org/mock/mockgen@latest -source=notifier.go -destination=mocks_test.go -package=notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/GanonMaor/spectra-salon-website-sub004/internal/jobs"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/observability"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/store"
)

// Dispatcher hands a rendered notification to a delivery mechanism.
// jobs.Client queues it; InlineDispatcher sends it from the API process.
type Dispatcher interface {
	EnqueueEmailJob(ctx context.Context, payload jobs.EmailJobPayload) error
	EnqueueWhatsAppJob(ctx context.Context, payload jobs.WhatsAppJobPayload) error
}

// Notifier renders customer and staff notifications. Every method is
// fire-and-forget: failures are logged and counted, never returned.
type Notifier struct {
	dispatcher   Dispatcher
	supportInbox string
	webAppURI    string
	logger       *observability.Logger
}

func NewNotifier(dispatcher Dispatcher, supportInbox, webAppURI string, logger *observability.Logger) *Notifier {
	return &Notifier{
		dispatcher:   dispatcher,
		supportInbox: supportInbox,
		webAppURI:    strings.TrimRight(webAppURI, "/"),
		logger:       logger,
	}
}

// SubscriptionStarted emails the new subscriber.
func (n *Notifier) SubscriptionStarted(ctx context.Context, to, fullName, planCode string, trialEnd *time.Time) {
	data := TemplateData{FullName: fullName, PlanCode: planCode}
	if trialEnd != nil {
		data.TrialEnd = trialEnd.UTC().Format("January 2, 2006")
	}
	n.email(ctx, jobs.KindSubscriptionStarted, to, "Welcome to Spectra", templateSubscriptionStarted, data)
}

// PaymentFailed emails a subscriber whose charge failed.
func (n *Notifier) PaymentFailed(ctx context.Context, to, fullName, planCode string) {
	data := TemplateData{FullName: fullName, PlanCode: planCode}
	n.email(ctx, jobs.KindPaymentFailed, to, "Action needed: payment failed", templatePaymentFailed, data)
}

// TicketCreated alerts the support inbox about a new ticket.
func (n *Notifier) TicketCreated(ctx context.Context, ticket store.Ticket, message store.TicketMessage) {
	if n.supportInbox == "" {
		return
	}
	data := TemplateData{
		TicketID:   ticket.ID.String(),
		TicketName: ticket.Name,
		Contact:    contactOf(ticket),
		SourcePage: ticket.SourcePage,
		Message:    message.Message,
	}
	if n.webAppURI != "" {
		data.DashboardURL = fmt.Sprintf("%s/admin/support/%s", n.webAppURI, ticket.ID)
	}
	subject := fmt.Sprintf("New %s ticket from %s", ticket.Channel, ticket.Name)
	n.email(ctx, jobs.KindTicketCreated, n.supportInbox, subject, templateTicketCreated, data)
}

// SupportReply relays an agent reply to the customer on the ticket's channel.
func (n *Notifier) SupportReply(ctx context.Context, ticket store.Ticket, message store.TicketMessage) {
	if ticket.Channel == store.TicketChannelWhatsApp && ticket.Phone != nil {
		n.whatsapp(ctx, jobs.KindSupportReply, *ticket.Phone, message.Message)
		return
	}
	if ticket.Email != nil {
		data := TemplateData{TicketName: ticket.Name, SenderName: message.SenderName, Message: message.Message}
		n.email(ctx, jobs.KindSupportReply, *ticket.Email, "Re: your message to Spectra", templateSupportReply, data)
		return
	}
	n.logger.Warn(ctx, "support reply has no deliverable contact",
		observability.Field{Key: "ticket_id", Value: ticket.ID.String()},
	)
}

func (n *Notifier) email(ctx context.Context, kind, to, subject, templateName string, data TemplateData) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "notification_kind", Value: kind},
		observability.Field{Key: "channel", Value: "email"},
	)
	if to == "" {
		return
	}

	html, err := renderTemplate(templateName, data)
	if err != nil {
		n.logger.Error(ctx, "failed to render notification", err)
		observability.RecordNotification("email", "failed")
		return
	}

	err = n.dispatcher.EnqueueEmailJob(ctx, jobs.EmailJobPayload{Kind: kind, To: to, Subject: subject, HTML: html})
	if err != nil {
		n.logger.Error(ctx, "failed to dispatch email notification", err)
		observability.RecordNotification("email", "failed")
		return
	}
	observability.RecordNotification("email", "dispatched")
}

func (n *Notifier) whatsapp(ctx context.Context, kind, phone, body string) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "notification_kind", Value: kind},
		observability.Field{Key: "channel", Value: "whatsapp"},
	)

	err := n.dispatcher.EnqueueWhatsAppJob(ctx, jobs.WhatsAppJobPayload{Kind: kind, Phone: phone, Body: body})
	if err != nil {
		n.logger.Error(ctx, "failed to dispatch whatsapp notification", err)
		observability.RecordNotification("whatsapp", "failed")
		return
	}
	observability.RecordNotification("whatsapp", "dispatched")
}

func contactOf(ticket store.Ticket) string {
	var parts []string
	if ticket.Email != nil {
		parts = append(parts, *ticket.Email)
	}
	if ticket.Phone != nil {
		parts = append(parts, *ticket.Phone)
	}
	return strings.Join(parts, " / ")
}
