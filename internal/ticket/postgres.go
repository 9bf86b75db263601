package ticket

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"ticket-service/internal/db"
)

type PostgresStore struct {
	db *db.DB
}

func NewPostgresStore(db *db.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) ListAll(ctx context.Context) ([]Ticket, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, price, created_at
		FROM tickets
		ORDER BY created_at
	`)
	if err != nil {
		return nil, fmt.Errorf("ticket: list: %w", err)
	}
	defer rows.Close()

	var tickets []Ticket
	for rows.Next() {
		var t Ticket
		if err := rows.Scan(&t.ID, &t.Title, &t.Price, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("ticket: scan: %w", err)
		}
		tickets = append(tickets, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ticket: list: %w", err)
	}

	return tickets, nil
}

func (s *PostgresStore) FindByID(ctx context.Context, id string) (*Ticket, error) {
	// Reject malformed ids before they reach the database; the uuid
	// column would error on them anyway.
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidID
	}

	t := &Ticket{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, price, created_at
		FROM tickets
		WHERE id = $1
	`, id).Scan(&t.ID, &t.Title, &t.Price, &t.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ticket: find %q: %w", id, err)
	}

	return t, nil
}
