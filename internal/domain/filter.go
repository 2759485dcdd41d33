package domain

import (
	"fmt"
	"strings"
)

type StatusFilter string

const (
	StatusAll       StatusFilter = "all"
	StatusConfirmed StatusFilter = StatusFilter(RegistrationConfirmed)
	StatusPending   StatusFilter = StatusFilter(RegistrationPending)
	StatusWaitlist  StatusFilter = StatusFilter(RegistrationWaitlist)
)

type CheckedInFilter string

const (
	CheckedInAll     CheckedInFilter = "all"
	CheckedInOnly    CheckedInFilter = "checked-in"
	NotCheckedInOnly CheckedInFilter = "not-checked-in"
)

// AttendeeFilter is the attendee list view: free-text search plus the
// status and check-in facets. Zero values mean "all".
type AttendeeFilter struct {
	Search    string
	Status    StatusFilter
	CheckedIn CheckedInFilter
}

func (f AttendeeFilter) Validate() error {
	switch f.Status {
	case "", StatusAll, StatusConfirmed, StatusPending, StatusWaitlist:
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidFilter, f.Status)
	}
	switch f.CheckedIn {
	case "", CheckedInAll, CheckedInOnly, NotCheckedInOnly:
	default:
		return fmt.Errorf("%w: unknown checked-in value %q", ErrInvalidFilter, f.CheckedIn)
	}
	return nil
}

func (f AttendeeFilter) Matches(a *Attendee) bool {
	return MatchesSearch(a, f.Search) && f.matchesStatus(a) && f.matchesCheckedIn(a)
}

func (f AttendeeFilter) matchesStatus(a *Attendee) bool {
	if f.Status == "" || f.Status == StatusAll {
		return true
	}
	return StatusFilter(a.RegistrationStatus) == f.Status
}

func (f AttendeeFilter) matchesCheckedIn(a *Attendee) bool {
	switch f.CheckedIn {
	case CheckedInOnly:
		return a.CheckedIn
	case NotCheckedInOnly:
		return !a.CheckedIn
	default:
		return true
	}
}

// MatchesSearch reports whether term is a case-insensitive substring of the
// attendee's name, email or student id. An empty term matches everyone.
func MatchesSearch(a *Attendee, term string) bool {
	term = strings.ToLower(term)
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(a.Name), term) ||
		strings.Contains(strings.ToLower(a.Email), term) ||
		strings.Contains(strings.ToLower(a.StudentID), term)
}

// FilterAttendees returns the records matching f in their original order.
// The input slice is not modified.
func FilterAttendees(records []Attendee, f AttendeeFilter) ([]Attendee, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	res := make([]Attendee, 0, len(records))
	for i := range records {
		if f.Matches(&records[i]) {
			res = append(res, records[i])
		}
	}
	return res, nil
}
