package store

import (
	"context"
	"fmt"
)

type CreateCTAClickParams struct {
	CTAID       string
	SourcePage  string
	UTMSource   *string
	UTMMedium   *string
	UTMCampaign *string
	DeviceType  string
}

const sqlCreateCTAClick = `
INSERT INTO cta_clicks (cta_id, source_page, utm_source, utm_medium, utm_campaign, device_type)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, cta_id, source_page, utm_source, utm_medium, utm_campaign, device_type, created_at`

func (s *Store) CreateCTAClick(ctx context.Context, params CreateCTAClickParams) (CTAClick, error) {
	var click CTAClick
	err := s.db.GetContext(ctx, &click, sqlCreateCTAClick,
		params.CTAID,
		params.SourcePage,
		params.UTMSource,
		params.UTMMedium,
		params.UTMCampaign,
		params.DeviceType,
	)
	if err != nil {
		s.logger.Error(ctx, "failed to create cta click", err)
		return CTAClick{}, fmt.Errorf("failed to create cta click: %w", err)
	}
	return click, nil
}
