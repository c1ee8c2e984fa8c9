package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/GanonMaor/spectra-salon-website-sub004/internal/observability"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/store"

	"github.com/google/uuid"
)

var (
	ErrInvalidStage       = errors.New("invalid stage")
	ErrMissingAttribution = errors.New("source_page is required to create a lead")
	ErrEmailRequired      = errors.New("email is required from account_completed onward")
	ErrLeadNotFound       = errors.New("lead not found")
	ErrConcurrentUpdate   = errors.New("lead was modified concurrently")
	ErrInvalidDateRange   = errors.New("invalid date range")
)

// maxAdvanceAttempts bounds the optimistic retry loop in RecordStageEvent.
const maxAdvanceAttempts = 3

// stageOrder is the funnel order. A lead's stage only ever moves forward.
var stageOrder = map[string]int{
	store.LeadStageCTAClicked:       0,
	store.LeadStageAccountCompleted: 1,
	store.LeadStageAddressCompleted: 2,
	store.LeadStagePaymentViewed:    3,
}

// IsValidStage reports whether stage is one of the four funnel stages.
func IsValidStage(stage string) bool {
	_, ok := stageOrder[stage]
	return ok
}

// IsLaterStage reports whether next comes after current in funnel order.
func IsLaterStage(current, next string) bool {
	return stageOrder[next] > stageOrder[current]
}

type FunnelProcessor struct {
	store     FunnelStore
	publisher EventPublisher
	logger    *observability.Logger
	now       func() time.Time
}

func New(store FunnelStore, publisher EventPublisher, logger *observability.Logger) FunnelProcessor {
	return FunnelProcessor{
		store:     store,
		publisher: publisher,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// StageEventRequest is one funnel touch from the marketing site. A nil LeadID
// or an ID that matches no lead starts a new lead.
type StageEventRequest struct {
	LeadID      *uuid.UUID
	Stage       string
	SourcePage  string
	UTMSource   *string
	UTMMedium   *string
	UTMCampaign *string
	Email       *string
	FullName    *string
	Meta        json.RawMessage
	DeviceType  string
	DeviceOS    string
}

// RecordStageEvent creates or advances a lead and always appends exactly one event.
func (p *FunnelProcessor) RecordStageEvent(ctx context.Context, req StageEventRequest) (store.Lead, error) {
	stage := req.Stage
	if stage == "" {
		stage = store.LeadStageCTAClicked
	}
	if !IsValidStage(stage) {
		return store.Lead{}, ErrInvalidStage
	}
	req.Stage = stage
	req.Email = normalizeEmail(req.Email)
	req.FullName = trimmedOrNil(req.FullName)

	ctx = observability.WithFields(ctx, observability.Field{Key: "stage", Value: stage})

	if req.LeadID != nil {
		lead, err := p.store.GetLeadByID(ctx, *req.LeadID)
		switch {
		case err == nil:
			return p.advanceLead(ctx, lead, req)
		case errors.Is(err, store.ErrNotFound):
			p.logger.Info(ctx, "unknown lead id, starting a new lead",
				observability.Field{Key: "lead_id", Value: req.LeadID.String()})
		default:
			p.logger.Error(ctx, "failed to get lead", err)
			return store.Lead{}, fmt.Errorf("failed to get lead: %w", err)
		}
	}

	return p.createLead(ctx, req)
}

func (p *FunnelProcessor) createLead(ctx context.Context, req StageEventRequest) (store.Lead, error) {
	sourcePage := strings.TrimSpace(req.SourcePage)
	if sourcePage == "" {
		return store.Lead{}, ErrMissingAttribution
	}
	if stageOrder[req.Stage] >= stageOrder[store.LeadStageAccountCompleted] && req.Email == nil {
		return store.Lead{}, ErrEmailRequired
	}

	now := p.now()
	lead, err := p.store.CreateLead(ctx, store.CreateLeadParams{
		SourcePage:  sourcePage,
		UTMSource:   trimmedOrNil(req.UTMSource),
		UTMMedium:   trimmedOrNil(req.UTMMedium),
		UTMCampaign: trimmedOrNil(req.UTMCampaign),
		Email:       req.Email,
		FullName:    req.FullName,
		Stage:       req.Stage,
		DeviceType:  req.DeviceType,
		DeviceOS:    req.DeviceOS,
		Event:       store.LeadEvent{TS: now, Step: req.Stage, Meta: req.Meta},
		Now:         now,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create lead", err)
		return store.Lead{}, fmt.Errorf("failed to create lead: %w", err)
	}

	p.recorded(ctx, lead, true)
	return lead, nil
}

// advanceLead applies the touch guarded by the stage it last observed. A
// concurrent writer makes the guard miss; the lead is reloaded and the
// decision is taken again.
func (p *FunnelProcessor) advanceLead(ctx context.Context, lead store.Lead, req StageEventRequest) (store.Lead, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "lead_id", Value: lead.ID.String()})

	for attempt := 1; attempt <= maxAdvanceAttempts; attempt++ {
		advance := IsLaterStage(lead.Stage, req.Stage)
		newStage := lead.Stage
		if advance {
			newStage = req.Stage
		}
		if stageOrder[newStage] >= stageOrder[store.LeadStageAccountCompleted] && lead.Email == nil && req.Email == nil {
			return store.Lead{}, ErrEmailRequired
		}

		now := p.now()
		updated, err := p.store.AdvanceLead(ctx, store.AdvanceLeadParams{
			ID:            lead.ID,
			ExpectedStage: lead.Stage,
			NewStage:      newStage,
			Advance:       advance,
			Email:         req.Email,
			FullName:      req.FullName,
			Event:         store.LeadEvent{TS: now, Step: req.Stage, Meta: req.Meta},
			Now:           now,
		})
		if err == nil {
			p.recorded(ctx, updated, advance)
			return updated, nil
		}
		if !errors.Is(err, store.ErrStaleState) {
			p.logger.Error(ctx, "failed to advance lead", err)
			return store.Lead{}, fmt.Errorf("failed to advance lead: %w", err)
		}

		p.logger.Warn(ctx, "lead stage changed concurrently, retrying",
			observability.Field{Key: "attempt", Value: attempt})
		lead, err = p.store.GetLeadByID(ctx, lead.ID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return store.Lead{}, ErrLeadNotFound
			}
			p.logger.Error(ctx, "failed to reload lead", err)
			return store.Lead{}, fmt.Errorf("failed to reload lead: %w", err)
		}
	}

	return store.Lead{}, ErrConcurrentUpdate
}

func (p *FunnelProcessor) recorded(ctx context.Context, lead store.Lead, advanced bool) {
	observability.RecordLeadTouch(lead.Stage, advanced)
	p.publisher.PublishLeadStageRecorded(ctx, lead.ID, lead.Stage, advanced)
	p.logger.Info(ctx, "lead stage recorded",
		observability.Field{Key: "lead_id", Value: lead.ID.String()},
		observability.Field{Key: "advanced", Value: advanced},
	)
}

// GetLead returns the lead so the signup flow can resume.
func (p *FunnelProcessor) GetLead(ctx context.Context, id uuid.UUID) (store.Lead, error) {
	lead, err := p.store.GetLeadByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Lead{}, ErrLeadNotFound
		}
		p.logger.Error(ctx, "failed to get lead", err)
		return store.Lead{}, fmt.Errorf("failed to get lead: %w", err)
	}
	return lead, nil
}

func normalizeEmail(email *string) *string {
	email = trimmedOrNil(email)
	if email == nil {
		return nil
	}
	lower := strings.ToLower(*email)
	return &lower
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
