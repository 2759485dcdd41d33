package ports

import (
	"context"

	"github.com/Nagendar23/CampusConnect/internal/domain"
)

type CheckInNotifier interface {
	NotifyCheckedIn(ctx context.Context, event *domain.Event, attendee *domain.Attendee)
}

type AttendeeMailer interface {
	SendReminder(ctx context.Context, event *domain.Event, attendee *domain.Attendee) error
}
