package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const checkoutChargeColumns = `id, lead_id, plan_code, charge_now, sumit_customer_id, sumit_payment_method, transaction_id, created_at`

type CreateCheckoutChargeParams struct {
	LeadID             uuid.UUID
	PlanCode           string
	ChargeNow          bool
	SumitCustomerID    string
	SumitPaymentMethod *string
	TransactionID      *string
}

const sqlCreateCheckoutCharge = `
INSERT INTO checkout_charges (lead_id, plan_code, charge_now, sumit_customer_id, sumit_payment_method, transaction_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + checkoutChargeColumns

// CreateCheckoutCharge records a card the provider already accepted for a lead.
func (s *Store) CreateCheckoutCharge(ctx context.Context, params CreateCheckoutChargeParams) (CheckoutCharge, error) {
	var charge CheckoutCharge
	err := s.db.GetContext(ctx, &charge, sqlCreateCheckoutCharge,
		params.LeadID,
		params.PlanCode,
		params.ChargeNow,
		params.SumitCustomerID,
		params.SumitPaymentMethod,
		params.TransactionID,
	)
	if err != nil {
		s.logger.Error(ctx, "failed to create checkout charge", err)
		return CheckoutCharge{}, fmt.Errorf("failed to create checkout charge: %w", err)
	}
	return charge, nil
}

const sqlGetLatestCheckoutCharge = `
SELECT ` + checkoutChargeColumns + `
FROM checkout_charges
WHERE lead_id = $1
ORDER BY created_at DESC
LIMIT 1`

func (s *Store) GetLatestCheckoutCharge(ctx context.Context, leadID uuid.UUID) (CheckoutCharge, error) {
	var charge CheckoutCharge
	err := s.db.GetContext(ctx, &charge, sqlGetLatestCheckoutCharge, leadID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CheckoutCharge{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get checkout charge", err)
		return CheckoutCharge{}, fmt.Errorf("failed to get checkout charge: %w", err)
	}
	return charge, nil
}
