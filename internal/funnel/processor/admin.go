package processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/GanonMaor/spectra-salon-website-sub004/internal/observability"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/store"

	"github.com/google/uuid"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	maxReportDays   = 366
)

type ListLeadsRequest struct {
	Stage      string
	SourcePage string
	Page       int
	Limit      int
}

// Pagination represents pagination metadata
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalCount int `json:"total_count"`
	TotalPages int `json:"total_pages"`
}

type ListLeadsResponse struct {
	Leads      []store.Lead `json:"leads"`
	Pagination Pagination   `json:"pagination"`
}

// LeadDetail is a lead with the subscriber it was promoted to, if any.
type LeadDetail struct {
	Lead       store.Lead        `json:"lead"`
	Subscriber *store.Subscriber `json:"subscriber"`
}

type CTAClickRequest struct {
	CTAID       string
	SourcePage  string
	UTMSource   *string
	UTMMedium   *string
	UTMCampaign *string
	DeviceType  string
}

// ListLeads retrieves leads with filters and pagination
func (p *FunnelProcessor) ListLeads(ctx context.Context, req ListLeadsRequest) (ListLeadsResponse, error) {
	if req.Stage != "" && !IsValidStage(req.Stage) {
		return ListLeadsResponse{}, ErrInvalidStage
	}
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 || req.Limit > maxPageSize {
		req.Limit = defaultPageSize
	}

	params := store.ListLeadsParams{
		Stage:      req.Stage,
		SourcePage: strings.TrimSpace(req.SourcePage),
		Limit:      req.Limit,
		Offset:     (req.Page - 1) * req.Limit,
	}

	leads, err := p.store.ListLeads(ctx, params)
	if err != nil {
		p.logger.Error(ctx, "failed to list leads", err)
		return ListLeadsResponse{}, err
	}
	if leads == nil {
		leads = []store.Lead{}
	}

	totalCount, err := p.store.CountLeads(ctx, params)
	if err != nil {
		p.logger.Error(ctx, "failed to count leads", err)
		return ListLeadsResponse{}, err
	}

	return ListLeadsResponse{
		Leads: leads,
		Pagination: Pagination{
			Page:       req.Page,
			Limit:      req.Limit,
			TotalCount: totalCount,
			TotalPages: (totalCount + req.Limit - 1) / req.Limit,
		},
	}, nil
}

func (p *FunnelProcessor) GetLeadDetail(ctx context.Context, id uuid.UUID) (LeadDetail, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "lead_id", Value: id.String()})

	lead, err := p.GetLead(ctx, id)
	if err != nil {
		return LeadDetail{}, err
	}

	detail := LeadDetail{Lead: lead}
	subscriber, err := p.store.GetSubscriberByLeadID(ctx, id)
	switch {
	case err == nil:
		detail.Subscriber = &subscriber
	case errors.Is(err, store.ErrNotFound):
	default:
		p.logger.Error(ctx, "failed to get subscriber for lead", err)
		return LeadDetail{}, fmt.Errorf("failed to get subscriber for lead: %w", err)
	}
	return detail, nil
}

// RecordCTAClick stores an anonymous CTA click. Clicks are counted, not tied to leads.
func (p *FunnelProcessor) RecordCTAClick(ctx context.Context, req CTAClickRequest) (store.CTAClick, error) {
	sourcePage := strings.TrimSpace(req.SourcePage)
	if sourcePage == "" {
		return store.CTAClick{}, ErrMissingAttribution
	}

	click, err := p.store.CreateCTAClick(ctx, store.CreateCTAClickParams{
		CTAID:       strings.TrimSpace(req.CTAID),
		SourcePage:  sourcePage,
		UTMSource:   trimmedOrNil(req.UTMSource),
		UTMMedium:   trimmedOrNil(req.UTMMedium),
		UTMCampaign: trimmedOrNil(req.UTMCampaign),
		DeviceType:  req.DeviceType,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to record cta click", err)
		return store.CTAClick{}, fmt.Errorf("failed to record cta click: %w", err)
	}
	return click, nil
}

func (p *FunnelProcessor) GetSummary(ctx context.Context) (store.FunnelSummary, error) {
	summary, err := p.store.GetFunnelSummary(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to get funnel summary", err)
		return store.FunnelSummary{}, fmt.Errorf("failed to get funnel summary: %w", err)
	}
	return summary, nil
}

// GetDailyFunnel reports per-day stage counts for the inclusive range
// [from, to], both YYYY-MM-DD. Empty bounds default to the last 30 days.
func (p *FunnelProcessor) GetDailyFunnel(ctx context.Context, from, to string) ([]store.DailyFunnelRow, error) {
	today := p.now().Truncate(24 * time.Hour)

	toDay := today
	if to != "" {
		parsed, err := time.Parse(time.DateOnly, to)
		if err != nil {
			return nil, ErrInvalidDateRange
		}
		toDay = parsed
	}
	fromDay := toDay.AddDate(0, 0, -29)
	if from != "" {
		parsed, err := time.Parse(time.DateOnly, from)
		if err != nil {
			return nil, ErrInvalidDateRange
		}
		fromDay = parsed
	}
	if fromDay.After(toDay) || toDay.Sub(fromDay) > maxReportDays*24*time.Hour {
		return nil, ErrInvalidDateRange
	}

	rows, err := p.store.GetDailyFunnel(ctx, fromDay, toDay)
	if err != nil {
		p.logger.Error(ctx, "failed to get daily funnel", err)
		return nil, fmt.Errorf("failed to get daily funnel: %w", err)
	}
	if rows == nil {
		rows = []store.DailyFunnelRow{}
	}
	return rows, nil
}
