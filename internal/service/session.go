package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/Nagendar23/CampusConnect/internal/domain"
	"github.com/Nagendar23/CampusConnect/internal/repository"
	"github.com/Nagendar23/CampusConnect/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// Session is the check-in ledger of one event: the event itself and the
// store owning its attendee records.
type Session struct {
	Event domain.Event
	Store *repository.AttendeeStore
}

// SessionRegistry opens one Session per event on first use and keeps it for
// the lifetime of the process. Concurrent opens of the same event share a
// single load.
type SessionRegistry struct {
	source ports.AttendeeSource
	logger logger.Logger

	mu       sync.Mutex
	sessions map[string]*sessionEntry
}

type sessionEntry struct {
	done    chan struct{}
	session *Session
	err     error
}

func NewSessionRegistry(source ports.AttendeeSource, logger logger.Logger) *SessionRegistry {
	return &SessionRegistry{
		source:   source,
		logger:   logger,
		sessions: make(map[string]*sessionEntry),
	}
}

func (r *SessionRegistry) Open(ctx context.Context, eventID string) (*Session, error) {
	r.mu.Lock()
	e, ok := r.sessions[eventID]
	if !ok {
		e = &sessionEntry{done: make(chan struct{})}
		r.sessions[eventID] = e
		r.mu.Unlock()

		e.session, e.err = r.load(context.WithoutCancel(ctx), eventID)
		if e.err != nil {
			// failed loads are not cached so the next request retries
			r.mu.Lock()
			delete(r.sessions, eventID)
			r.mu.Unlock()
		}
		close(e.done)
	} else {
		r.mu.Unlock()
	}

	select {
	case <-e.done:
		return e.session, e.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (r *SessionRegistry) load(ctx context.Context, eventID string) (*Session, error) {
	event, attendees, err := r.source.Load(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("load event %s: %w", eventID, err)
	}

	store, err := repository.NewAttendeeStore(eventID, attendees)
	if err != nil {
		return nil, fmt.Errorf("%w: build store: %w", domain.ErrLedgerUnavailable, err)
	}

	r.logger.Info("ledger session opened",
		logger.String("event_id", eventID),
		logger.Int("attendees", store.Len()),
	)

	return &Session{Event: *event, Store: store}, nil
}

// Active returns the sessions loaded so far.
func (r *SessionRegistry) Active() []*Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	res := make([]*Session, 0, len(r.sessions))
	for _, e := range r.sessions {
		select {
		case <-e.done:
			if e.err == nil {
				res = append(res, e.session)
			}
		default:
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Event.ID < res[j].Event.ID })
	return res
}

func (r *SessionRegistry) Events(ctx context.Context) ([]domain.Event, error) {
	events, err := r.source.ListEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}
