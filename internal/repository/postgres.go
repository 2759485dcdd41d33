package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Nagendar23/CampusConnect/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

// PostgresSource reads the starting attendee set of an event from Postgres.
// Check-ins are kept in the ledger only and are never written back.
type PostgresSource struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewPostgresSource(db *dbpg.DB) *PostgresSource {
	return &PostgresSource{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *PostgresSource) ListEvents(ctx context.Context) ([]domain.Event, error) {
	query := `SELECT id, title, location, starts_at
			  FROM events
			  ORDER BY starts_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []domain.Event
	for rows.Next() {
		var e domain.Event
		if err = rows.Scan(&e.ID, &e.Title, &e.Location, &e.StartsAt); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func (r *PostgresSource) Load(ctx context.Context, eventID string) (*domain.Event, []domain.Attendee, error) {
	event, err := r.getEvent(ctx, eventID)
	if err != nil {
		return nil, nil, err
	}

	query := `SELECT id, name, email, student_id, registration_status, payment_status,
					 ticket_type, checked_in_at, registered_at
			  FROM attendees
			  WHERE event_id = $1 AND registration_status = ANY($2)
			  ORDER BY seq`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID, pq.Array(domain.RegistrationStatuses))
	if err != nil {
		return nil, nil, fmt.Errorf("list attendees: %w", err)
	}
	defer rows.Close()

	var res []domain.Attendee
	for rows.Next() {
		var (
			a           domain.Attendee
			checkedInAt sql.NullTime
		)
		if err = rows.Scan(
			&a.ID, &a.Name, &a.Email, &a.StudentID, &a.RegistrationStatus,
			&a.PaymentStatus, &a.TicketType, &checkedInAt, &a.RegisteredAt,
		); err != nil {
			return nil, nil, fmt.Errorf("scan attendee: %w", err)
		}
		if checkedInAt.Valid {
			at := checkedInAt.Time.UTC()
			a.CheckedIn = true
			a.CheckedInAt = &at
		}
		a.RegisteredAt = a.RegisteredAt.UTC()
		res = append(res, a)
	}
	if err = rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterate attendees: %w", err)
	}

	return event, res, nil
}

func (r *PostgresSource) getEvent(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT id, title, location, starts_at
			  FROM events
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	var e domain.Event
	if err = row.Scan(&e.ID, &e.Title, &e.Location, &e.StartsAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return &e, nil
}
