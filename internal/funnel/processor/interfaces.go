package processor

import (
	"context"
	"time"

	"github.com/GanonMaor/spectra-salon-website-sub004/internal/store"

	"github.com/google/uuid"
)

// FunnelStore defines the database operations required by FunnelProcessor
type FunnelStore interface {
	CreateLead(ctx context.Context, params store.CreateLeadParams) (store.Lead, error)
	GetLeadByID(ctx context.Context, id uuid.UUID) (store.Lead, error)
	AdvanceLead(ctx context.Context, params store.AdvanceLeadParams) (store.Lead, error)
	ListLeads(ctx context.Context, params store.ListLeadsParams) ([]store.Lead, error)
	CountLeads(ctx context.Context, params store.ListLeadsParams) (int, error)
	GetSubscriberByLeadID(ctx context.Context, leadID uuid.UUID) (store.Subscriber, error)
	CreateCTAClick(ctx context.Context, params store.CreateCTAClickParams) (store.CTAClick, error)
	GetFunnelSummary(ctx context.Context) (store.FunnelSummary, error)
	GetDailyFunnel(ctx context.Context, from, to time.Time) ([]store.DailyFunnelRow, error)
}

// EventPublisher defines the domain events emitted by FunnelProcessor
type EventPublisher interface {
	PublishLeadStageRecorded(ctx context.Context, leadID uuid.UUID, stage string, advanced bool)
}
