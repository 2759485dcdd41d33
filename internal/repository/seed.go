package repository

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/Nagendar23/CampusConnect/internal/domain"
	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Events []seedEvent `yaml:"events"`
}

type seedEvent struct {
	ID        string         `yaml:"id"`
	Title     string         `yaml:"title"`
	Location  string         `yaml:"location"`
	StartsAt  string         `yaml:"starts_at"`
	Attendees []seedAttendee `yaml:"attendees"`
}

type seedAttendee struct {
	ID            string `yaml:"id"`
	Name          string `yaml:"name"`
	Email         string `yaml:"email"`
	StudentID     string `yaml:"student_id"`
	Status        string `yaml:"status"`
	PaymentStatus string `yaml:"payment_status"`
	TicketType    string `yaml:"ticket_type"`
	CheckedIn     bool   `yaml:"checked_in"`
	CheckedInAt   string `yaml:"checked_in_at"`
	RegisteredAt  string `yaml:"registered_at"`
}

// SeedSource serves events and attendees from a YAML fixture. It is the
// default data source when no database is configured.
type SeedSource struct {
	events    []domain.Event
	attendees map[string][]domain.Attendee
}

func NewSeedSource(path string) (*SeedSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(data)
}

func ParseSeed(data []byte) (*SeedSource, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: decode seed: %v", domain.ErrValidation, err)
	}

	src := &SeedSource{
		events:    make([]domain.Event, 0, len(f.Events)),
		attendees: make(map[string][]domain.Attendee, len(f.Events)),
	}
	for _, se := range f.Events {
		if se.ID == "" {
			return nil, fmt.Errorf("%w: seed event without id", domain.ErrValidation)
		}
		if _, ok := src.attendees[se.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate seed event %s", domain.ErrValidation, se.ID)
		}

		startsAt, err := parseSeedTime(se.StartsAt)
		if err != nil {
			return nil, fmt.Errorf("event %s starts_at: %w", se.ID, err)
		}
		src.events = append(src.events, domain.Event{
			ID:       se.ID,
			Title:    se.Title,
			Location: se.Location,
			StartsAt: startsAt,
		})

		list := make([]domain.Attendee, 0, len(se.Attendees))
		for _, sa := range se.Attendees {
			a, err := sa.toDomain()
			if err != nil {
				return nil, fmt.Errorf("event %s: %w", se.ID, err)
			}
			list = append(list, a)
		}
		src.attendees[se.ID] = list
	}

	return src, nil
}

func (sa seedAttendee) toDomain() (domain.Attendee, error) {
	status, err := domain.ParseRegistrationStatus(sa.Status)
	if err != nil {
		return domain.Attendee{}, fmt.Errorf("attendee %s: %w", sa.ID, err)
	}
	payment, err := domain.ParsePaymentStatus(sa.PaymentStatus)
	if err != nil {
		return domain.Attendee{}, fmt.Errorf("attendee %s: %w", sa.ID, err)
	}
	registeredAt, err := parseSeedTime(sa.RegisteredAt)
	if err != nil {
		return domain.Attendee{}, fmt.Errorf("attendee %s registered_at: %w", sa.ID, err)
	}

	ticket := domain.TicketType(sa.TicketType)
	if ticket == "" {
		ticket = domain.TicketRegular
	}

	a := domain.Attendee{
		ID:                 sa.ID,
		Name:               sa.Name,
		Email:              sa.Email,
		StudentID:          sa.StudentID,
		RegistrationStatus: status,
		PaymentStatus:      payment,
		TicketType:         ticket,
		CheckedIn:          sa.CheckedIn,
		RegisteredAt:       registeredAt,
	}
	if sa.CheckedInAt != "" {
		at, err := parseSeedTime(sa.CheckedInAt)
		if err != nil {
			return domain.Attendee{}, fmt.Errorf("attendee %s checked_in_at: %w", sa.ID, err)
		}
		a.CheckedInAt = &at
	}

	if err = a.Validate(); err != nil {
		return domain.Attendee{}, err
	}
	return a, nil
}

func parseSeedTime(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return t.UTC(), nil
}

func (s *SeedSource) ListEvents(_ context.Context) ([]domain.Event, error) {
	res := make([]domain.Event, len(s.events))
	copy(res, s.events)
	return res, nil
}

func (s *SeedSource) Load(_ context.Context, eventID string) (*domain.Event, []domain.Attendee, error) {
	list, ok := s.attendees[eventID]
	if !ok {
		return nil, nil, domain.ErrEventNotFound
	}

	var event domain.Event
	for _, e := range s.events {
		if e.ID == eventID {
			event = e
			break
		}
	}

	res := make([]domain.Attendee, 0, len(list))
	for i := range list {
		res = append(res, list[i].Clone())
	}
	return &event, res, nil
}
