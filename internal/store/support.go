package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const ticketColumns = `id, name, email, phone, channel, status, source_page, last_message, last_message_at, created_at, updated_at`

const messageColumns = `id, ticket_id, sender_type, sender_name, message, created_at`

type CreateTicketParams struct {
	Name       string
	Email      *string
	Phone      *string
	Channel    string
	SourcePage string
	// First message, always from the customer.
	Message string
	Now     time.Time
}

const sqlCreateTicket = `
INSERT INTO support_tickets (name, email, phone, channel, status, source_page, last_message, last_message_at, created_at, updated_at)
VALUES ($1, $2, $3, $4, 'open', $5, $6, $7, $7, $7)
RETURNING ` + ticketColumns

const sqlInsertTicketMessage = `
INSERT INTO support_messages (ticket_id, sender_type, sender_name, message, created_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + messageColumns

// CreateTicketWithMessage writes the ticket and its first message in one transaction.
func (s *Store) CreateTicketWithMessage(ctx context.Context, params CreateTicketParams) (Ticket, TicketMessage, error) {
	var ticket Ticket
	var message TicketMessage
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &ticket, sqlCreateTicket,
			params.Name,
			params.Email,
			params.Phone,
			params.Channel,
			params.SourcePage,
			params.Message,
			params.Now,
		)
		if err != nil {
			return fmt.Errorf("failed to insert ticket: %w", err)
		}
		err = tx.GetContext(ctx, &message, sqlInsertTicketMessage,
			ticket.ID, SenderTypeCustomer, params.Name, params.Message, params.Now)
		if err != nil {
			return fmt.Errorf("failed to insert first message: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error(ctx, "failed to create ticket", err)
		return Ticket{}, TicketMessage{}, err
	}
	return ticket, message, nil
}

// AppendTicketMessageParams appends one message. An empty Status keeps the ticket's status.
type AppendTicketMessageParams struct {
	TicketID   uuid.UUID
	SenderType string
	SenderName string
	Message    string
	Status     string
	Now        time.Time
}

const sqlLockTicket = `SELECT ` + ticketColumns + ` FROM support_tickets WHERE id = $1 FOR UPDATE`

const sqlTouchTicket = `
UPDATE support_tickets SET
	last_message = $2,
	last_message_at = $3,
	status = COALESCE(NULLIF($4, ''), status),
	updated_at = $3
WHERE id = $1
RETURNING ` + ticketColumns

// AppendTicketMessage inserts the message and updates the ticket summary in one transaction.
func (s *Store) AppendTicketMessage(ctx context.Context, params AppendTicketMessageParams) (Ticket, TicketMessage, error) {
	var ticket Ticket
	var message TicketMessage
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := tx.GetContext(ctx, &ticket, sqlLockTicket, params.TicketID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to lock ticket: %w", err)
		}
		err := tx.GetContext(ctx, &message, sqlInsertTicketMessage,
			params.TicketID, params.SenderType, params.SenderName, params.Message, params.Now)
		if err != nil {
			return fmt.Errorf("failed to insert message: %w", err)
		}
		err = tx.GetContext(ctx, &ticket, sqlTouchTicket,
			params.TicketID, params.Message, params.Now, params.Status)
		if err != nil {
			return fmt.Errorf("failed to update ticket: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Ticket{}, TicketMessage{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to append ticket message", err)
		return Ticket{}, TicketMessage{}, err
	}
	return ticket, message, nil
}

const sqlGetTicketByID = `SELECT ` + ticketColumns + ` FROM support_tickets WHERE id = $1`

func (s *Store) GetTicketByID(ctx context.Context, id uuid.UUID) (Ticket, error) {
	var ticket Ticket
	err := s.db.GetContext(ctx, &ticket, sqlGetTicketByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Ticket{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get ticket by id", err)
		return Ticket{}, fmt.Errorf("failed to get ticket by id: %w", err)
	}
	return ticket, nil
}

const sqlFindLatestOpenTicketByPhone = `
SELECT ` + ticketColumns + `
FROM support_tickets
WHERE phone = $1 AND status <> 'closed'
ORDER BY COALESCE(last_message_at, created_at) DESC
LIMIT 1`

// FindLatestOpenTicketByPhone returns the most recently active non-closed ticket for phone.
func (s *Store) FindLatestOpenTicketByPhone(ctx context.Context, phone string) (Ticket, error) {
	var ticket Ticket
	err := s.db.GetContext(ctx, &ticket, sqlFindLatestOpenTicketByPhone, phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Ticket{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to find open ticket by phone", err)
		return Ticket{}, fmt.Errorf("failed to find open ticket by phone: %w", err)
	}
	return ticket, nil
}

const sqlListTicketMessages = `
SELECT ` + messageColumns + `
FROM support_messages
WHERE ticket_id = $1
ORDER BY created_at ASC, id ASC`

func (s *Store) ListTicketMessages(ctx context.Context, ticketID uuid.UUID) ([]TicketMessage, error) {
	messages := []TicketMessage{}
	err := s.db.SelectContext(ctx, &messages, sqlListTicketMessages, ticketID)
	if err != nil {
		s.logger.Error(ctx, "failed to list ticket messages", err)
		return nil, fmt.Errorf("failed to list ticket messages: %w", err)
	}
	return messages, nil
}

type ListTicketsParams struct {
	Statuses []string
	Limit    int
	Offset   int
}

const sqlListTickets = `
SELECT ` + ticketColumns + `
FROM support_tickets
WHERE (cardinality($1::text[]) = 0 OR status = ANY($1::text[]))
ORDER BY COALESCE(last_message_at, created_at) DESC
LIMIT $2 OFFSET $3`

func (s *Store) ListTickets(ctx context.Context, params ListTicketsParams) ([]Ticket, error) {
	tickets := []Ticket{}
	err := s.db.SelectContext(ctx, &tickets, sqlListTickets,
		pq.Array(nonNilStrings(params.Statuses)), params.Limit, params.Offset)
	if err != nil {
		s.logger.Error(ctx, "failed to list tickets", err)
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return tickets, nil
}

const sqlCountTickets = `
SELECT COUNT(*)
FROM support_tickets
WHERE (cardinality($1::text[]) = 0 OR status = ANY($1::text[]))`

func (s *Store) CountTickets(ctx context.Context, statuses []string) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountTickets, pq.Array(nonNilStrings(statuses)))
	if err != nil {
		s.logger.Error(ctx, "failed to count tickets", err)
		return 0, fmt.Errorf("failed to count tickets: %w", err)
	}
	return count, nil
}

const sqlUpdateTicketStatus = `
UPDATE support_tickets SET status = $2, updated_at = $3
WHERE id = $1
RETURNING ` + ticketColumns

func (s *Store) UpdateTicketStatus(ctx context.Context, id uuid.UUID, status string, now time.Time) (Ticket, error) {
	var ticket Ticket
	err := s.db.GetContext(ctx, &ticket, sqlUpdateTicketStatus, id, status, now)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Ticket{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update ticket status", err)
		return Ticket{}, fmt.Errorf("failed to update ticket status: %w", err)
	}
	return ticket, nil
}
