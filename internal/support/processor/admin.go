package processor

import (
	"context"
	"errors"
	"fmt"

	"github.com/GanonMaor/spectra-salon-website-sub004/internal/observability"
	"github.com/GanonMaor/spectra-salon-website-sub004/internal/store"

	"github.com/google/uuid"
)

type ListTicketsRequest struct {
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

type ListTicketsResponse struct {
	Tickets    []store.Ticket `json:"tickets"`
	Pagination Pagination     `json:"pagination"`
}

type TicketDetail struct {
	Ticket   store.Ticket          `json:"ticket"`
	Messages []store.TicketMessage `json:"messages"`
}

// ListTickets returns tickets, most recently active first
func (p *SupportProcessor) ListTickets(ctx context.Context, req ListTicketsRequest) (ListTicketsResponse, error) {
	for _, status := range req.Statuses {
		if !IsValidStatus(status) {
			return ListTicketsResponse{}, ErrInvalidStatus
		}
	}
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 || req.Limit > 100 {
		req.Limit = 20
	}

	tickets, err := p.store.ListTickets(ctx, store.ListTicketsParams{
		Statuses: req.Statuses,
		Limit:    req.Limit,
		Offset:   (req.Page - 1) * req.Limit,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to list tickets", err)
		return ListTicketsResponse{}, err
	}
	if tickets == nil {
		tickets = []store.Ticket{}
	}

	totalCount, err := p.store.CountTickets(ctx, req.Statuses)
	if err != nil {
		p.logger.Error(ctx, "failed to count tickets", err)
		return ListTicketsResponse{}, err
	}

	return ListTicketsResponse{
		Tickets: tickets,
		Pagination: Pagination{
			Page:       req.Page,
			Limit:      req.Limit,
			TotalCount: totalCount,
			TotalPages: (totalCount + req.Limit - 1) / req.Limit,
		},
	}, nil
}

func (p *SupportProcessor) GetTicket(ctx context.Context, id uuid.UUID) (TicketDetail, error) {
	ticket, err := p.store.GetTicketByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return TicketDetail{}, ErrTicketNotFound
		}
		p.logger.Error(ctx, "failed to get ticket", err)
		return TicketDetail{}, fmt.Errorf("failed to get ticket: %w", err)
	}

	messages, err := p.store.ListTicketMessages(ctx, id)
	if err != nil {
		p.logger.Error(ctx, "failed to list ticket messages", err)
		return TicketDetail{}, fmt.Errorf("failed to list ticket messages: %w", err)
	}
	return TicketDetail{Ticket: ticket, Messages: messages}, nil
}

// SetStatus is an explicit status change by an agent.
func (p *SupportProcessor) SetStatus(ctx context.Context, id uuid.UUID, status string) (store.Ticket, error) {
	if !IsValidStatus(status) {
		return store.Ticket{}, ErrInvalidStatus
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "ticket_id", Value: id.String()},
		observability.Field{Key: "status", Value: status},
	)

	ticket, err := p.store.UpdateTicketStatus(ctx, id, status, p.now())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Ticket{}, ErrTicketNotFound
		}
		p.logger.Error(ctx, "failed to update ticket status", err)
		return store.Ticket{}, fmt.Errorf("failed to update ticket status: %w", err)
	}

	p.logger.Info(ctx, "ticket status updated")
	return ticket, nil
}
