package store

import (
	"context"
	"fmt"
	"time"
)

type countRow struct {
	Key   string `db:"key"`
	Count int    `db:"count"`
}

const sqlCountLeadsByStage = `SELECT stage AS key, COUNT(*) AS count FROM leads GROUP BY stage`

const sqlCountSubscribersByStatus = `SELECT status AS key, COUNT(*) AS count FROM subscribers GROUP BY status`

const sqlCountCTAClicks = `SELECT COUNT(*) FROM cta_clicks`

// GetFunnelSummary returns totals for every stage and status, zero-filled.
func (s *Store) GetFunnelSummary(ctx context.Context) (FunnelSummary, error) {
	summary := FunnelSummary{
		LeadsByStage: map[string]int{
			LeadStageCTAClicked:       0,
			LeadStageAccountCompleted: 0,
			LeadStageAddressCompleted: 0,
			LeadStagePaymentViewed:    0,
		},
		SubscribersByStatus: map[string]int{
			SubscriberStatusTrialActive: 0,
			SubscriberStatusActive:      0,
			SubscriberStatusPastDue:     0,
			SubscriberStatusCanceled:    0,
		},
	}

	var stages []countRow
	if err := s.db.SelectContext(ctx, &stages, sqlCountLeadsByStage); err != nil {
		s.logger.Error(ctx, "failed to count leads by stage", err)
		return FunnelSummary{}, fmt.Errorf("failed to count leads by stage: %w", err)
	}
	for _, row := range stages {
		summary.LeadsByStage[row.Key] = row.Count
	}

	var statuses []countRow
	if err := s.db.SelectContext(ctx, &statuses, sqlCountSubscribersByStatus); err != nil {
		s.logger.Error(ctx, "failed to count subscribers by status", err)
		return FunnelSummary{}, fmt.Errorf("failed to count subscribers by status: %w", err)
	}
	for _, row := range statuses {
		summary.SubscribersByStatus[row.Key] = row.Count
	}

	if err := s.db.GetContext(ctx, &summary.CTAClicks, sqlCountCTAClicks); err != nil {
		s.logger.Error(ctx, "failed to count cta clicks", err)
		return FunnelSummary{}, fmt.Errorf("failed to count cta clicks: %w", err)
	}
	return summary, nil
}

const sqlGetDailyFunnel = `
WITH days AS (
	SELECT generate_series($1::date, $2::date, INTERVAL '1 day')::date AS day
)
SELECT
	d.day::timestamp AT TIME ZONE 'UTC' AS day,
	(SELECT COUNT(*) FROM leads WHERE (cta_clicked_at AT TIME ZONE 'UTC')::date = d.day) AS cta_clicked,
	(SELECT COUNT(*) FROM leads WHERE (account_completed_at AT TIME ZONE 'UTC')::date = d.day) AS account_completed,
	(SELECT COUNT(*) FROM leads WHERE (address_completed_at AT TIME ZONE 'UTC')::date = d.day) AS address_completed,
	(SELECT COUNT(*) FROM leads WHERE (payment_viewed_at AT TIME ZONE 'UTC')::date = d.day) AS payment_viewed,
	(SELECT COUNT(*) FROM subscribers WHERE (created_at AT TIME ZONE 'UTC')::date = d.day) AS subscribed
FROM days d
ORDER BY d.day`

// GetDailyFunnel returns one row per UTC day in [from, to], days without activity included.
func (s *Store) GetDailyFunnel(ctx context.Context, from, to time.Time) ([]DailyFunnelRow, error) {
	rows := []DailyFunnelRow{}
	err := s.db.SelectContext(ctx, &rows, sqlGetDailyFunnel, from.Format("2006-01-02"), to.Format("2006-01-02"))
	if err != nil {
		s.logger.Error(ctx, "failed to get daily funnel", err)
		return nil, fmt.Errorf("failed to get daily funnel: %w", err)
	}
	return rows, nil
}
