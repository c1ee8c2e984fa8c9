package processor

import (
	"context"
	"errors"
	"fmt"

	"github.com/GanonMaor/spectra-salon-website-sub004/internal/observability"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/store"

	"github.com/google/uuid"
)

type ListSubscribersRequest struct {
	Statuses []string
	Page     int
	Limit    int
}

// Pagination represents pagination metadata
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalCount int `json:"total_count"`
	TotalPages int `json:"total_pages"`
}

type ListSubscribersResponse struct {
	Subscribers []store.Subscriber `json:"subscribers"`
	Pagination  Pagination         `json:"pagination"`
}

// ListSubscribers retrieves subscribers with an optional status filter and pagination
func (p *BillingProcessor) ListSubscribers(ctx context.Context, req ListSubscribersRequest) (ListSubscribersResponse, error) {
	for _, status := range req.Statuses {
		if !IsValidStatus(status) {
			return ListSubscribersResponse{}, ErrInvalidStatus
		}
	}
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 || req.Limit > 100 {
		req.Limit = 20
	}

	subscribers, err := p.store.ListSubscribers(ctx, store.ListSubscribersParams{
		Statuses: req.Statuses,
		Limit:    req.Limit,
		Offset:   (req.Page - 1) * req.Limit,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to list subscribers", err)
		return ListSubscribersResponse{}, err
	}
	if subscribers == nil {
		subscribers = []store.Subscriber{}
	}

	totalCount, err := p.store.CountSubscribers(ctx, req.Statuses)
	if err != nil {
		p.logger.Error(ctx, "failed to count subscribers", err)
		return ListSubscribersResponse{}, err
	}

	return ListSubscribersResponse{
		Subscribers: subscribers,
		Pagination: Pagination{
			Page:       req.Page,
			Limit:      req.Limit,
			TotalCount: totalCount,
			TotalPages: (totalCount + req.Limit - 1) / req.Limit,
		},
	}, nil
}

// CancelSubscriber cancels on behalf of an admin. The row is kept.
func (p *BillingProcessor) CancelSubscriber(ctx context.Context, id uuid.UUID) (store.Subscriber, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "subscriber_id", Value: id.String()})

	subscriber, err := p.store.GetSubscriberByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Subscriber{}, ErrSubscriberNotFound
		}
		p.logger.Error(ctx, "failed to get subscriber", err)
		return store.Subscriber{}, fmt.Errorf("failed to get subscriber: %w", err)
	}
	if !CanTransition(subscriber.Status, store.SubscriberStatusCanceled) {
		return store.Subscriber{}, fmt.Errorf("%w: subscriber is %s", ErrInvalidTransition, subscriber.Status)
	}

	now := p.now()
	updated, err := p.store.TransitionSubscriber(ctx, store.TransitionSubscriberParams{
		ID:         subscriber.ID,
		FromStatus: subscriber.Status,
		ToStatus:   store.SubscriberStatusCanceled,
		CanceledAt: &now,
		Now:        now,
	})
	if err != nil {
		if errors.Is(err, store.ErrStaleState) {
			return store.Subscriber{}, fmt.Errorf("%w: subscriber changed concurrently", ErrInvalidTransition)
		}
		p.logger.Error(ctx, "failed to cancel subscriber", err)
		return store.Subscriber{}, fmt.Errorf("failed to cancel subscriber: %w", err)
	}

	p.statusChanged(ctx, subscriber.Status, updated)
	p.logger.Info(ctx, "subscriber canceled by admin")
	return updated, nil
}
