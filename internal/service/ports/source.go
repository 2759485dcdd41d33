package ports

import (
	"context"

	"github.com/Nagendar23/CampusConnect/internal/domain"
)

// AttendeeSource supplies the starting attendee set of an event.
type AttendeeSource interface {
	ListEvents(ctx context.Context) ([]domain.Event, error)
	Load(ctx context.Context, eventID string) (*domain.Event, []domain.Attendee, error)
}
