package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// JSONB is a custom type for JSONB object fields
type JSONB map[string]interface{}

// Value implements the driver.Valuer interface for JSONB
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements the sql.Scanner interface for JSONB
func (j *JSONB) Scan(value interface{}) error {
	bytes, err := scanBytes(value)
	if err != nil {
		return err
	}
	if len(bytes) == 0 || string(bytes) == "null" {
		*j = make(JSONB)
		return nil
	}
	result := make(JSONB)
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*j = result
	return nil
}

// LeadEvent is one entry of a lead's append-only touch log. Meta is stored as
// given and never interpreted.
type LeadEvent struct {
	TS   time.Time       `json:"ts"`
	Step string          `json:"step"`
	Meta json.RawMessage `json:"meta,omitempty"`
}

// LeadEvents maps the events JSONB array.
type LeadEvents []LeadEvent

// Value implements the driver.Valuer interface for LeadEvents
func (e LeadEvents) Value() (driver.Value, error) {
	if e == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(e)
}

// Scan implements the sql.Scanner interface for LeadEvents
func (e *LeadEvents) Scan(value interface{}) error {
	bytes, err := scanBytes(value)
	if err != nil {
		return err
	}
	if len(bytes) == 0 || string(bytes) == "null" {
		*e = LeadEvents{}
		return nil
	}
	var result LeadEvents
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*e = result
	return nil
}

func scanBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, errors.New("incompatible type for JSONB")
	}
}

type Lead struct {
	ID                 uuid.UUID  `db:"id" json:"lead_id"`
	SourcePage         string     `db:"source_page" json:"source_page"`
	UTMSource          *string    `db:"utm_source" json:"utm_source,omitempty"`
	UTMMedium          *string    `db:"utm_medium" json:"utm_medium,omitempty"`
	UTMCampaign        *string    `db:"utm_campaign" json:"utm_campaign,omitempty"`
	Email              *string    `db:"email" json:"email,omitempty"`
	FullName           *string    `db:"full_name" json:"full_name,omitempty"`
	Stage              string     `db:"stage" json:"stage"`
	CTAClickedAt       *time.Time `db:"cta_clicked_at" json:"cta_clicked_at,omitempty"`
	AccountCompletedAt *time.Time `db:"account_completed_at" json:"account_completed_at,omitempty"`
	AddressCompletedAt *time.Time `db:"address_completed_at" json:"address_completed_at,omitempty"`
	PaymentViewedAt    *time.Time `db:"payment_viewed_at" json:"payment_viewed_at,omitempty"`
	DeviceType         string     `db:"device_type" json:"device_type"`
	DeviceOS           string     `db:"device_os" json:"device_os"`
	Events             LeadEvents `db:"events" json:"events"`
	CreatedAt          time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at" json:"updated_at"`
}

type CTAClick struct {
	ID          uuid.UUID `db:"id" json:"id"`
	CTAID       string    `db:"cta_id" json:"cta_id"`
	SourcePage  string    `db:"source_page" json:"source_page"`
	UTMSource   *string   `db:"utm_source" json:"utm_source,omitempty"`
	UTMMedium   *string   `db:"utm_medium" json:"utm_medium,omitempty"`
	UTMCampaign *string   `db:"utm_campaign" json:"utm_campaign,omitempty"`
	DeviceType  string    `db:"device_type" json:"device_type"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

type Subscriber struct {
	ID                  uuid.UUID  `db:"id" json:"subscriber_id"`
	LeadID              *uuid.UUID `db:"lead_id" json:"lead_id,omitempty"`
	PlanCode            string     `db:"plan_code" json:"plan_code"`
	Currency            string     `db:"currency" json:"currency"`
	AmountMinor         int64      `db:"amount_minor" json:"amount_minor"`
	Status              string     `db:"status" json:"status"`
	SumitCustomerID     string     `db:"sumit_customer_id" json:"sumit_customer_id"`
	SumitPaymentMethod  *string    `db:"sumit_payment_method" json:"sumit_payment_method,omitempty"`
	SumitSubscriptionID *string    `db:"sumit_subscription_id" json:"sumit_subscription_id,omitempty"`
	TrialStart          *time.Time `db:"trial_start" json:"trial_start,omitempty"`
	TrialEnd            *time.Time `db:"trial_end" json:"trial_end,omitempty"`
	LastChargeAt        *time.Time `db:"last_charge_at" json:"last_charge_at,omitempty"`
	CanceledAt          *time.Time `db:"canceled_at" json:"canceled_at,omitempty"`
	CreatedAt           time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at" json:"updated_at"`
}

type BillingWebhookEvent struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	Provider    string     `db:"provider" json:"provider"`
	EventID     string     `db:"event_id" json:"event_id"`
	EventType   string     `db:"event_type" json:"event_type"`
	CustomerID  *string    `db:"customer_id" json:"customer_id,omitempty"`
	Payload     JSONB      `db:"payload" json:"payload"`
	Outcome     string     `db:"outcome" json:"outcome"`
	Reason      *string    `db:"reason" json:"reason,omitempty"`
	ReceivedAt  time.Time  `db:"received_at" json:"received_at"`
	ClaimedAt   *time.Time `db:"claimed_at" json:"claimed_at,omitempty"`
	ProcessedAt *time.Time `db:"processed_at" json:"processed_at,omitempty"`
}

type CheckoutCharge struct {
	ID                 uuid.UUID `db:"id" json:"id"`
	LeadID             uuid.UUID `db:"lead_id" json:"lead_id"`
	PlanCode           string    `db:"plan_code" json:"plan_code"`
	ChargeNow          bool      `db:"charge_now" json:"charge_now"`
	SumitCustomerID    string    `db:"sumit_customer_id" json:"sumit_customer_id"`
	SumitPaymentMethod *string   `db:"sumit_payment_method" json:"sumit_payment_method,omitempty"`
	TransactionID      *string   `db:"transaction_id" json:"transaction_id,omitempty"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
}

type Ticket struct {
	ID            uuid.UUID  `db:"id" json:"id"`
	Name          string     `db:"name" json:"name"`
	Email         *string    `db:"email" json:"email,omitempty"`
	Phone         *string    `db:"phone" json:"phone,omitempty"`
	Channel       string     `db:"channel" json:"channel"`
	Status        string     `db:"status" json:"status"`
	SourcePage    string     `db:"source_page" json:"source_page"`
	LastMessage   *string    `db:"last_message" json:"last_message,omitempty"`
	LastMessageAt *time.Time `db:"last_message_at" json:"last_message_at,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at" json:"updated_at"`
}

type TicketMessage struct {
	ID         uuid.UUID `db:"id" json:"id"`
	TicketID   uuid.UUID `db:"ticket_id" json:"ticket_id"`
	SenderType string    `db:"sender_type" json:"sender_type"`
	SenderName string    `db:"sender_name" json:"sender_name"`
	Message    string    `db:"message" json:"message"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         string    `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// FunnelSummary is the admin dashboard headline: leads per stage, CTA clicks, subscribers per status.
type FunnelSummary struct {
	LeadsByStage        map[string]int `json:"leads_by_stage"`
	CTAClicks           int            `json:"cta_clicks"`
	SubscribersByStatus map[string]int `json:"subscribers_by_status"`
}

// DailyFunnelRow counts, for one UTC day, how many leads reached each stage and how many subscribers were created.
type DailyFunnelRow struct {
	Day              time.Time `db:"day" json:"day"`
	CTAClicked       int       `db:"cta_clicked" json:"cta_clicked"`
	AccountCompleted int       `db:"account_completed" json:"account_completed"`
	AddressCompleted int       `db:"address_completed" json:"address_completed"`
	PaymentViewed    int       `db:"payment_viewed" json:"payment_viewed"`
	Subscribed       int       `db:"subscribed" json:"subscribed"`
}
