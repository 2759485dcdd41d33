package repository

import (
	"fmt"
	"strings"
	"sync"

	"github.com/Nagendar23/CampusConnect/internal/domain"
)

// AttendeeStore holds the attendee records of one event in memory.
// The set of records is fixed at construction; each record carries its own
// lock so updates to one attendee are serialized while others proceed.
type AttendeeStore struct {
	order   []*attendeeEntry
	byID    map[string]*attendeeEntry
	eventID string
}

type attendeeEntry struct {
	mu       sync.Mutex
	attendee domain.Attendee
}

func NewAttendeeStore(eventID string, attendees []domain.Attendee) (*AttendeeStore, error) {
	s := &AttendeeStore{
		order:   make([]*attendeeEntry, 0, len(attendees)),
		byID:    make(map[string]*attendeeEntry, len(attendees)),
		eventID: eventID,
	}

	for i := range attendees {
		a := attendees[i].Clone()
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("event %s: %w", eventID, err)
		}
		if _, ok := s.byID[a.ID]; ok {
			return nil, fmt.Errorf("%w: event %s: %w: %s", domain.ErrValidation, eventID, domain.ErrDuplicateAttendee, a.ID)
		}
		e := &attendeeEntry{attendee: a}
		s.order = append(s.order, e)
		s.byID[a.ID] = e
	}

	return s, nil
}

func (s *AttendeeStore) EventID() string {
	return s.eventID
}

func (s *AttendeeStore) Len() int {
	return len(s.order)
}

func (s *AttendeeStore) Get(id string) (domain.Attendee, error) {
	e, ok := s.byID[id]
	if !ok {
		return domain.Attendee{}, domain.ErrAttendeeNotFound
	}
	return e.snapshot(), nil
}

// FindByIdentifier resolves a scanned code or typed identifier. An exact
// case-insensitive match on student id or email wins; otherwise the first
// record whose student id or email contains the query.
func (s *AttendeeStore) FindByIdentifier(query string) (domain.Attendee, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return domain.Attendee{}, domain.ErrAttendeeNotFound
	}

	var partial *domain.Attendee
	for _, e := range s.order {
		a := e.snapshot()
		studentID := strings.ToLower(a.StudentID)
		email := strings.ToLower(a.Email)
		if studentID == q || email == q {
			return a, nil
		}
		if partial == nil && (strings.Contains(studentID, q) || strings.Contains(email, q)) {
			partial = &a
		}
	}

	if partial == nil {
		return domain.Attendee{}, domain.ErrAttendeeNotFound
	}
	return *partial, nil
}

// Update applies mutate to the record under its lock. If mutate fails or
// leaves the record invalid, the record is left untouched.
func (s *AttendeeStore) Update(id string, mutate func(a *domain.Attendee) error) (domain.Attendee, error) {
	e, ok := s.byID[id]
	if !ok {
		return domain.Attendee{}, domain.ErrAttendeeNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	next := e.attendee.Clone()
	if err := mutate(&next); err != nil {
		return e.attendee.Clone(), err
	}
	next.ID = e.attendee.ID
	next.RegisteredAt = e.attendee.RegisteredAt
	if err := next.Validate(); err != nil {
		return e.attendee.Clone(), err
	}

	e.attendee = next
	return next.Clone(), nil
}

// List returns copies of all records in insertion order.
func (s *AttendeeStore) List() []domain.Attendee {
	res := make([]domain.Attendee, 0, len(s.order))
	for _, e := range s.order {
		res = append(res, e.snapshot())
	}
	return res
}

func (e *attendeeEntry) snapshot() domain.Attendee {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.attendee.Clone()
}
