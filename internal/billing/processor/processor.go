package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/GanonMaor/spectra-salon-website-sub004/internal/clients/sumit"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/config"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/observability"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/store"

	"github.com/google/uuid"
)

var (
	ErrLeadNotFound       = errors.New("lead not found")
	ErrSubscriberNotFound = errors.New("subscriber not found")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrInvalidStatus      = errors.New("invalid subscriber status")
	ErrUnknownPlan        = errors.New("unknown plan")
	ErrInvalidAmount      = errors.New("amount_minor must be non-negative")
	ErrInvalidPayload     = errors.New("invalid billing payload")
	ErrInvalidSignature   = errors.New("invalid webhook signature")
	ErrPaymentProvider    = errors.New("payment provider error")
	ErrWebhookInProgress  = errors.New("billing webhook is being processed")
)

// transitions is the subscriber status machine. canceled is terminal.
var transitions = map[string][]string{
	store.SubscriberStatusTrialActive: {store.SubscriberStatusActive, store.SubscriberStatusCanceled},
	store.SubscriberStatusActive:      {store.SubscriberStatusPastDue, store.SubscriberStatusCanceled},
	store.SubscriberStatusPastDue:     {store.SubscriberStatusActive, store.SubscriberStatusCanceled},
}

// CanTransition is the only place subscriber status moves are validated.
func CanTransition(from, to string) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func IsValidStatus(status string) bool {
	switch status {
	case store.SubscriberStatusTrialActive, store.SubscriberStatusActive,
		store.SubscriberStatusPastDue, store.SubscriberStatusCanceled:
		return true
	}
	return false
}

type BillingProcessor struct {
	store         BillingStore
	provider      PaymentProvider
	publisher     EventPublisher
	notifier      Notifier
	plans         map[string]config.Plan
	webhookSecret string
	logger        *observability.Logger
	now           func() time.Time
}

func New(
	store BillingStore,
	provider PaymentProvider,
	publisher EventPublisher,
	notifier Notifier,
	plans map[string]config.Plan,
	webhookSecret string,
	logger *observability.Logger,
) BillingProcessor {
	return BillingProcessor{
		store:         store,
		provider:      provider,
		publisher:     publisher,
		notifier:      notifier,
		plans:         plans,
		webhookSecret: webhookSecret,
		logger:        logger,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

// BillingDetails is a confirmed checkout. AmountMinor and Currency override
// the plan catalog when set.
type BillingDetails struct {
	PlanCode            string
	SumitCustomerID     string
	SumitPaymentMethod  *string
	SumitSubscriptionID *string
	AmountMinor         *int64
	Currency            string
	ChargeNow           bool
}

// PromoteToSubscriber creates the subscriber for a lead that reached
// payment_viewed. The lead itself is not modified. Promoting the same lead
// twice returns the existing subscriber.
func (p *BillingProcessor) PromoteToSubscriber(ctx context.Context, leadID uuid.UUID, details BillingDetails) (store.Subscriber, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "lead_id", Value: leadID.String()},
		observability.Field{Key: "plan_code", Value: details.PlanCode},
	)

	plan, ok := p.plans[details.PlanCode]
	if !ok {
		return store.Subscriber{}, ErrUnknownPlan
	}
	amount := plan.AmountMinor
	if details.AmountMinor != nil {
		amount = *details.AmountMinor
	}
	if amount < 0 {
		return store.Subscriber{}, ErrInvalidAmount
	}
	currency := plan.Currency
	if details.Currency != "" {
		currency = strings.ToUpper(details.Currency)
	}
	if strings.TrimSpace(details.SumitCustomerID) == "" {
		return store.Subscriber{}, fmt.Errorf("%w: sumit_customer_id is required", ErrInvalidPayload)
	}

	lead, err := p.payableLead(ctx, leadID)
	if err != nil {
		return store.Subscriber{}, err
	}

	now := p.now()
	params := store.CreateSubscriberParams{
		LeadID:              &lead.ID,
		PlanCode:            plan.Code,
		Currency:            currency,
		AmountMinor:         amount,
		SumitCustomerID:     strings.TrimSpace(details.SumitCustomerID),
		SumitPaymentMethod:  details.SumitPaymentMethod,
		SumitSubscriptionID: details.SumitSubscriptionID,
	}
	if details.ChargeNow {
		params.Status = store.SubscriberStatusActive
		params.LastChargeAt = &now
	} else {
		trialEnd := now.AddDate(0, 0, plan.TrialDays)
		params.Status = store.SubscriberStatusTrialActive
		params.TrialStart = &now
		params.TrialEnd = &trialEnd
	}

	subscriber, err := p.store.CreateSubscriber(ctx, params)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			p.logger.Info(ctx, "lead already promoted, returning existing subscriber")
			return p.existingSubscriber(ctx, lead.ID)
		}
		p.logger.Error(ctx, "failed to create subscriber", err)
		return store.Subscriber{}, fmt.Errorf("failed to create subscriber: %w", err)
	}

	observability.RecordSubscriberTransition("none", subscriber.Status)
	p.publisher.PublishSubscriberCreated(ctx, subscriber.ID, subscriber.LeadID, subscriber.PlanCode, subscriber.Status)
	if lead.Email != nil {
		p.notifier.SubscriptionStarted(ctx, *lead.Email, deref(lead.FullName), subscriber.PlanCode, subscriber.TrialEnd)
	}
	p.logger.Info(ctx, "lead promoted to subscriber",
		observability.Field{Key: "subscriber_id", Value: subscriber.ID.String()},
		observability.Field{Key: "status", Value: subscriber.Status},
	)
	return subscriber, nil
}

// CheckoutRequest is a public checkout from the pricing flow. CardToken is
// the single-use token produced by the provider's browser SDK.
type CheckoutRequest struct {
	LeadID    uuid.UUID
	PlanCode  string
	CardToken string
	ChargeNow bool
}

// Checkout charges or tokenizes the card with the payment provider and then
// promotes the lead. Nothing is written when the provider call fails. A card
// the provider accepted is recorded before promotion, so a retry after a
// failed promotion resumes from that record instead of charging again.
func (p *BillingProcessor) Checkout(ctx context.Context, req CheckoutRequest) (store.Subscriber, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "lead_id", Value: req.LeadID.String()},
		observability.Field{Key: "plan_code", Value: req.PlanCode},
	)

	plan, ok := p.plans[req.PlanCode]
	if !ok {
		return store.Subscriber{}, ErrUnknownPlan
	}

	lead, err := p.payableLead(ctx, req.LeadID)
	if err != nil {
		return store.Subscriber{}, err
	}

	// a retried checkout must not charge the card twice
	existing, err := p.store.GetSubscriberByLeadID(ctx, lead.ID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to check existing subscriber", err)
		return store.Subscriber{}, fmt.Errorf("failed to check existing subscriber: %w", err)
	}

	recorded, err := p.store.GetLatestCheckoutCharge(ctx, lead.ID)
	if err == nil {
		p.logger.Warn(ctx, "resuming checkout from a recorded charge",
			observability.Field{Key: "transaction_id", Value: deref(recorded.TransactionID)},
			observability.Field{Key: "recorded_plan_code", Value: recorded.PlanCode},
		)
		return p.promoteCharged(ctx, lead.ID, BillingDetails{
			PlanCode:           recorded.PlanCode,
			SumitCustomerID:    recorded.SumitCustomerID,
			SumitPaymentMethod: recorded.SumitPaymentMethod,
			ChargeNow:          recorded.ChargeNow,
		}, deref(recorded.TransactionID))
	}
	if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to check recorded checkout charge", err)
		return store.Subscriber{}, fmt.Errorf("failed to check recorded checkout charge: %w", err)
	}

	if !p.provider.IsEnabled() {
		return store.Subscriber{}, fmt.Errorf("%w: provider not configured", ErrPaymentProvider)
	}

	result, err := p.provider.Charge(ctx, sumit.ChargeRequest{
		CustomerName: deref(lead.FullName),
		Email:        deref(lead.Email),
		CardToken:    req.CardToken,
		Description:  "Spectra " + plan.Code,
		AmountMinor:  plan.AmountMinor,
		Currency:     plan.Currency,
		ChargeNow:    req.ChargeNow,
	})
	if err != nil {
		p.logger.Error(ctx, "payment provider call failed", err)
		return store.Subscriber{}, fmt.Errorf("%w: %v", ErrPaymentProvider, err)
	}

	details := BillingDetails{
		PlanCode:        plan.Code,
		SumitCustomerID: result.CustomerID,
		ChargeNow:       req.ChargeNow,
	}
	if result.PaymentMethodToken != "" {
		details.SumitPaymentMethod = &result.PaymentMethodToken
	}

	charge := store.CreateCheckoutChargeParams{
		LeadID:             lead.ID,
		PlanCode:           plan.Code,
		ChargeNow:          req.ChargeNow,
		SumitCustomerID:    result.CustomerID,
		SumitPaymentMethod: details.SumitPaymentMethod,
	}
	if result.TransactionID != "" {
		charge.TransactionID = &result.TransactionID
	}
	if _, err := p.store.CreateCheckoutCharge(ctx, charge); err != nil {
		// promotion is still attempted; the subscriber row then carries the customer
		p.logger.Error(ctx, "failed to record accepted checkout charge", err)
	}

	return p.promoteCharged(ctx, lead.ID, details, result.TransactionID)
}

// promoteCharged promotes a lead whose card the provider already accepted.
// Failures are logged with the provider transaction so they can be reconciled.
func (p *BillingProcessor) promoteCharged(ctx context.Context, leadID uuid.UUID, details BillingDetails, transactionID string) (store.Subscriber, error) {
	subscriber, err := p.PromoteToSubscriber(ctx, leadID, details)
	if err != nil {
		p.logger.Error(observability.WithFields(ctx,
			observability.Field{Key: "transaction_id", Value: transactionID},
			observability.Field{Key: "sumit_customer_id", Value: details.SumitCustomerID},
		), "card accepted but subscriber was not created", err)
		return store.Subscriber{}, err
	}
	return subscriber, nil
}

func (p *BillingProcessor) payableLead(ctx context.Context, leadID uuid.UUID) (store.Lead, error) {
	lead, err := p.store.GetLeadByID(ctx, leadID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Lead{}, ErrLeadNotFound
		}
		p.logger.Error(ctx, "failed to get lead", err)
		return store.Lead{}, fmt.Errorf("failed to get lead: %w", err)
	}
	if lead.Stage != store.LeadStagePaymentViewed {
		p.logger.Warn(ctx, "lead has not reached payment_viewed",
			observability.Field{Key: "stage", Value: lead.Stage})
		return store.Lead{}, fmt.Errorf("%w: lead is at %s", ErrInvalidTransition, lead.Stage)
	}
	return lead, nil
}

func (p *BillingProcessor) existingSubscriber(ctx context.Context, leadID uuid.UUID) (store.Subscriber, error) {
	subscriber, err := p.store.GetSubscriberByLeadID(ctx, leadID)
	if err != nil {
		p.logger.Error(ctx, "failed to load existing subscriber", err)
		return store.Subscriber{}, fmt.Errorf("failed to load existing subscriber: %w", err)
	}
	return subscriber, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
