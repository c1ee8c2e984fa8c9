package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const leadColumns = `id, source_page, utm_source, utm_medium, utm_campaign, email, full_name, stage,
cta_clicked_at, account_completed_at, address_completed_at, payment_viewed_at,
device_type, device_os, events, created_at, updated_at`

// CreateLeadParams creates a lead directly at Stage. CTAClickedAt is always set;
// StageAt is written to the column of Stage when Stage is past cta_clicked.
type CreateLeadParams struct {
	SourcePage  string
	UTMSource   *string
	UTMMedium   *string
	UTMCampaign *string
	Email       *string
	FullName    *string
	Stage       string
	DeviceType  string
	DeviceOS    string
	Event       LeadEvent
	Now         time.Time
}

const sqlCreateLead = `
INSERT INTO leads (
	source_page, utm_source, utm_medium, utm_campaign, email, full_name, stage,
	cta_clicked_at,
	account_completed_at,
	address_completed_at,
	payment_viewed_at,
	device_type, device_os, events, created_at, updated_at
)
VALUES (
	$1, $2, $3, $4, $5, $6, $7::text,
	$8,
	CASE WHEN $7::text = 'account_completed' THEN $8::timestamptz END,
	CASE WHEN $7::text = 'address_completed' THEN $8::timestamptz END,
	CASE WHEN $7::text = 'payment_viewed' THEN $8::timestamptz END,
	$9, $10, jsonb_build_array($11::jsonb), $8, $8
)
RETURNING ` + leadColumns

func (s *Store) CreateLead(ctx context.Context, params CreateLeadParams) (Lead, error) {
	event, err := json.Marshal(params.Event)
	if err != nil {
		return Lead{}, fmt.Errorf("failed to encode lead event: %w", err)
	}

	var lead Lead
	err = s.db.GetContext(ctx, &lead, sqlCreateLead,
		params.SourcePage,
		params.UTMSource,
		params.UTMMedium,
		params.UTMCampaign,
		params.Email,
		params.FullName,
		params.Stage,
		params.Now,
		params.DeviceType,
		params.DeviceOS,
		string(event),
	)
	if err != nil {
		s.logger.Error(ctx, "failed to create lead", err)
		return Lead{}, fmt.Errorf("failed to create lead: %w", err)
	}
	return lead, nil
}

const sqlGetLeadByID = `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`

func (s *Store) GetLeadByID(ctx context.Context, id uuid.UUID) (Lead, error) {
	var lead Lead
	err := s.db.GetContext(ctx, &lead, sqlGetLeadByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Lead{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get lead by id", err)
		return Lead{}, fmt.Errorf("failed to get lead by id: %w", err)
	}
	return lead, nil
}

// AdvanceLeadParams describes one touch on an existing lead. When Advance is
// false NewStage must equal ExpectedStage and only the event is appended.
type AdvanceLeadParams struct {
	ID            uuid.UUID
	ExpectedStage string
	NewStage      string
	Advance       bool
	Email         *string
	FullName      *string
	Event         LeadEvent
	Now           time.Time
}

// Stage, stage timestamp, contact fields and the event append are a single
// statement guarded by the stage the caller observed.
const sqlAdvanceLead = `
UPDATE leads SET
	stage = $3::text,
	account_completed_at = CASE WHEN $4::boolean AND $3::text = 'account_completed' THEN $5::timestamptz ELSE account_completed_at END,
	address_completed_at = CASE WHEN $4::boolean AND $3::text = 'address_completed' THEN $5::timestamptz ELSE address_completed_at END,
	payment_viewed_at = CASE WHEN $4::boolean AND $3::text = 'payment_viewed' THEN $5::timestamptz ELSE payment_viewed_at END,
	email = COALESCE($6::text, email),
	full_name = COALESCE($7::text, full_name),
	events = events || jsonb_build_array($8::jsonb),
	updated_at = $5::timestamptz
WHERE id = $1 AND stage = $2
RETURNING ` + leadColumns

// AdvanceLead returns ErrStaleState when the lead's stage no longer matches ExpectedStage.
func (s *Store) AdvanceLead(ctx context.Context, params AdvanceLeadParams) (Lead, error) {
	event, err := json.Marshal(params.Event)
	if err != nil {
		return Lead{}, fmt.Errorf("failed to encode lead event: %w", err)
	}

	var lead Lead
	err = s.db.GetContext(ctx, &lead, sqlAdvanceLead,
		params.ID,
		params.ExpectedStage,
		params.NewStage,
		params.Advance,
		params.Now,
		params.Email,
		params.FullName,
		string(event),
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Lead{}, ErrStaleState
		}
		s.logger.Error(ctx, "failed to advance lead", err)
		return Lead{}, fmt.Errorf("failed to advance lead: %w", err)
	}
	return lead, nil
}

// ListLeadsParams filters the admin lead list. Empty strings mean no filter.
type ListLeadsParams struct {
	Stage      string
	SourcePage string
	Limit      int
	Offset     int
}

const sqlListLeads = `
SELECT ` + leadColumns + `
FROM leads
WHERE ($1 = '' OR stage = $1)
  AND ($2 = '' OR source_page = $2)
ORDER BY created_at DESC
LIMIT $3 OFFSET $4`

func (s *Store) ListLeads(ctx context.Context, params ListLeadsParams) ([]Lead, error) {
	leads := []Lead{}
	err := s.db.SelectContext(ctx, &leads, sqlListLeads, params.Stage, params.SourcePage, params.Limit, params.Offset)
	if err != nil {
		s.logger.Error(ctx, "failed to list leads", err)
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	return leads, nil
}

const sqlCountLeads = `
SELECT COUNT(*)
FROM leads
WHERE ($1 = '' OR stage = $1)
  AND ($2 = '' OR source_page = $2)`

func (s *Store) CountLeads(ctx context.Context, params ListLeadsParams) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountLeads, params.Stage, params.SourcePage)
	if err != nil {
		s.logger.Error(ctx, "failed to count leads", err)
		return 0, fmt.Errorf("failed to count leads: %w", err)
	}
	return count, nil
}
