package notification

import (
	"context"

	"github.com/Nagendar23/CampusConnect/internal/domain"
)

type checkInNotifier interface {
	NotifyCheckedIn(ctx context.Context, event *domain.Event, attendee *domain.Attendee)
}

// Fanout delivers a check-in to every notifier in order.
type Fanout []checkInNotifier

func NewFanout(notifiers ...checkInNotifier) Fanout {
	return Fanout(notifiers)
}

func (f Fanout) NotifyCheckedIn(ctx context.Context, event *domain.Event, attendee *domain.Attendee) {
	for _, n := range f {
		n.NotifyCheckedIn(ctx, event, attendee)
	}
}
