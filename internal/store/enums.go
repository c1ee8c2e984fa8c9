package store

// Lead stage ENUMs, in funnel order
const (
	LeadStageCTAClicked       = "cta_clicked"
	LeadStageAccountCompleted = "account_completed"
	LeadStageAddressCompleted = "address_completed"
	LeadStagePaymentViewed    = "payment_viewed"
)

// Subscriber status ENUMs
const (
	SubscriberStatusTrialActive = "trial_active"
	SubscriberStatusActive      = "active"
	SubscriberStatusPastDue     = "past_due"
	SubscriberStatusCanceled    = "canceled"
)

// Billing webhook event outcomes
const (
	WebhookOutcomeReceived   = "received"
	WebhookOutcomeProcessing = "processing"
	WebhookOutcomeApplied    = "applied"
	WebhookOutcomeIgnored    = "ignored"
	WebhookOutcomeFailed     = "failed"
)

// Support ticket ENUMs
const (
	TicketChannelWeb      = "web"
	TicketChannelWhatsApp = "whatsapp"
)

const (
	TicketStatusOpen    = "open"
	TicketStatusPending = "pending"
	TicketStatusClosed  = "closed"
)

const (
	SenderTypeCustomer = "customer"
	SenderTypeAgent    = "agent"
	SenderTypeSystem   = "system"
)

// User role ENUMs
const (
	UserRoleAdmin   = "admin"
	UserRoleSupport = "support"
)
