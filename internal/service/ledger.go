package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/Nagendar23/CampusConnect/internal/domain"
	"github.com/Nagendar23/CampusConnect/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const defaultRecentLimit = 5

type LedgerService struct {
	sessions *SessionRegistry
	notifier ports.CheckInNotifier
	mailer   ports.AttendeeMailer
	metrics  ports.LedgerMetrics
	logger   logger.Logger

	now func() time.Time
	run Runner
}

type Option func(*LedgerService)

// WithClock replaces the wall clock used to stamp check-ins.
func WithClock(now func() time.Time) Option {
	return func(s *LedgerService) { s.now = now }
}

// WithRunner replaces the runner used for post check-in hooks.
func WithRunner(run Runner) Option {
	return func(s *LedgerService) { s.run = run }
}

func NewLedgerService(
	sessions *SessionRegistry,
	notifier ports.CheckInNotifier,
	mailer ports.AttendeeMailer,
	metrics ports.LedgerMetrics,
	logger logger.Logger,
	opts ...Option,
) *LedgerService {
	s := &LedgerService{
		sessions: sessions,
		notifier: notifier,
		mailer:   mailer,
		metrics:  metrics,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
		run:      Async,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *LedgerService) Events(ctx context.Context) ([]domain.Event, error) {
	return s.sessions.Events(ctx)
}

func (s *LedgerService) ListAttendees(ctx context.Context, eventID string, filter domain.AttendeeFilter) ([]domain.Attendee, error) {
	sess, err := s.sessions.Open(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return domain.FilterAttendees(sess.Store.List(), filter)
}

func (s *LedgerService) GetAttendee(ctx context.Context, eventID, attendeeID string) (*domain.Attendee, error) {
	sess, err := s.sessions.Open(ctx, eventID)
	if err != nil {
		return nil, err
	}

	a, err := sess.Store.Get(attendeeID)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *LedgerService) GetStats(ctx context.Context, eventID string) (domain.EventStats, error) {
	sess, err := s.sessions.Open(ctx, eventID)
	if err != nil {
		return domain.EventStats{}, err
	}
	return domain.ComputeStats(sess.Store.List()), nil
}

// CheckIn resolves identifier (a scanned code, student id or email) and
// moves the attendee to checked in. The check and the flip happen under
// the record lock, so of two stations racing on one attendee exactly one
// gets CheckInSuccess. NotFound and AlreadyCheckedIn are outcomes, not
// errors; err is only set when the event cannot be opened.
func (s *LedgerService) CheckIn(ctx context.Context, eventID, identifier string) (domain.CheckInResult, error) {
	sess, err := s.sessions.Open(ctx, eventID)
	if err != nil {
		return domain.CheckInResult{}, err
	}

	found, err := sess.Store.FindByIdentifier(identifier)
	if err != nil {
		return s.finish(ctx, sess, domain.CheckInResult{Outcome: domain.CheckInNotFound}), nil
	}
	return s.checkInByID(ctx, sess, found.ID)
}

func (s *LedgerService) checkInByID(ctx context.Context, sess *Session, attendeeID string) (domain.CheckInResult, error) {
	outcome := domain.CheckInAlreadyCheckedIn
	updated, err := sess.Store.Update(attendeeID, func(a *domain.Attendee) error {
		if a.CheckedIn {
			return nil
		}
		a.MarkCheckedIn(s.now())
		outcome = domain.CheckInSuccess
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAttendeeNotFound) {
			return s.finish(ctx, sess, domain.CheckInResult{Outcome: domain.CheckInNotFound}), nil
		}
		return domain.CheckInResult{}, fmt.Errorf("check in %s: %w", attendeeID, err)
	}

	return s.finish(ctx, sess, domain.CheckInResult{Outcome: outcome, Attendee: &updated}), nil
}

// ManualCheckIn is the operator's search box: the first attendee matching
// term by name, email or student id who is not checked in yet gets checked
// in.
func (s *LedgerService) ManualCheckIn(ctx context.Context, eventID, term string) (domain.CheckInResult, error) {
	sess, err := s.sessions.Open(ctx, eventID)
	if err != nil {
		return domain.CheckInResult{}, err
	}
	if term == "" {
		return s.finish(ctx, sess, domain.CheckInResult{Outcome: domain.CheckInNotFound}), nil
	}

	var matched *domain.Attendee
	for _, a := range sess.Store.List() {
		if !domain.MatchesSearch(&a, term) {
			continue
		}
		if !a.CheckedIn {
			return s.checkInByID(ctx, sess, a.ID)
		}
		if matched == nil {
			matched = &a
		}
	}

	if matched == nil {
		return s.finish(ctx, sess, domain.CheckInResult{Outcome: domain.CheckInNotFound}), nil
	}
	return s.finish(ctx, sess, domain.CheckInResult{Outcome: domain.CheckInAlreadyCheckedIn, Attendee: matched}), nil
}

func (s *LedgerService) finish(ctx context.Context, sess *Session, res domain.CheckInResult) domain.CheckInResult {
	s.metrics.ObserveCheckIn(sess.Event.ID, res.Outcome)

	switch res.Outcome {
	case domain.CheckInSuccess:
		s.logger.Info("attendee checked in",
			logger.String("event_id", sess.Event.ID),
			logger.String("attendee_id", res.Attendee.ID),
		)
		event := sess.Event
		attendee := res.Attendee.Clone()
		notifyCtx := context.WithoutCancel(ctx)
		s.run(func() {
			s.notifier.NotifyCheckedIn(notifyCtx, &event, &attendee)
		})
	case domain.CheckInAlreadyCheckedIn:
		s.logger.Debug("attendee already checked in",
			logger.String("event_id", sess.Event.ID),
			logger.String("attendee_id", res.Attendee.ID),
		)
	case domain.CheckInNotFound:
		s.logger.Debug("check-in identifier not found",
			logger.String("event_id", sess.Event.ID),
		)
	}

	return res
}

// RecentCheckIns returns checked-in attendees, most recent first.
func (s *LedgerService) RecentCheckIns(ctx context.Context, eventID string, limit int) ([]domain.Attendee, error) {
	sess, err := s.sessions.Open(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	checked, err := domain.FilterAttendees(sess.Store.List(), domain.AttendeeFilter{CheckedIn: domain.CheckedInOnly})
	if err != nil {
		return nil, err
	}
	sort.SliceStable(checked, func(i, j int) bool {
		return checked[i].CheckedInAt.After(*checked[j].CheckedInAt)
	})

	if len(checked) > limit {
		checked = checked[:limit]
	}
	return checked, nil
}

func (s *LedgerService) SendEmail(ctx context.Context, eventID, attendeeID string) error {
	sess, err := s.sessions.Open(ctx, eventID)
	if err != nil {
		return err
	}

	a, err := sess.Store.Get(attendeeID)
	if err != nil {
		return err
	}

	if err = s.mailer.SendReminder(ctx, &sess.Event, &a); err != nil {
		return fmt.Errorf("send reminder: %w", err)
	}

	s.logger.Info("reminder sent",
		logger.String("event_id", eventID),
		logger.String("attendee_id", attendeeID),
	)
	return nil
}

// Remove is accepted for an existing attendee but does not change the
// ledger: cancelling a registration is owned by the registration system.
func (s *LedgerService) Remove(ctx context.Context, eventID, attendeeID string) error {
	sess, err := s.sessions.Open(ctx, eventID)
	if err != nil {
		return err
	}

	if _, err = sess.Store.Get(attendeeID); err != nil {
		return err
	}

	s.logger.Warn("remove requested, no change applied",
		logger.String("event_id", eventID),
		logger.String("attendee_id", attendeeID),
	)
	return nil
}

// ReportStats publishes the current snapshot of every open session.
func (s *LedgerService) ReportStats(ctx context.Context) error {
	for _, sess := range s.sessions.Active() {
		if err := ctx.Err(); err != nil {
			return err
		}

		stats := domain.ComputeStats(sess.Store.List())
		s.metrics.SetStats(sess.Event.ID, stats)
		s.logger.Debug("ledger stats",
			logger.String("event_id", sess.Event.ID),
			logger.Int("total", stats.TotalRegistered),
			logger.Int("checked_in", stats.CheckedIn),
			logger.Int("rate", stats.CheckInRate),
		)
	}
	return nil
}
