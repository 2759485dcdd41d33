package domain

import (
	"fmt"
	"time"
)

type RegistrationStatus string

const (
	RegistrationConfirmed RegistrationStatus = "confirmed"
	RegistrationPending   RegistrationStatus = "pending"
	RegistrationWaitlist  RegistrationStatus = "waitlist"
)

func (s RegistrationStatus) Valid() bool {
	switch s {
	case RegistrationConfirmed, RegistrationPending, RegistrationWaitlist:
		return true
	}
	return false
}

func ParseRegistrationStatus(s string) (RegistrationStatus, error) {
	status := RegistrationStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("%w: unknown registration status %q", ErrValidation, s)
	}
	return status, nil
}

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentPending PaymentStatus = "pending"
)

func (s PaymentStatus) Valid() bool {
	return s == PaymentPaid || s == PaymentPending
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	status := PaymentStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("%w: unknown payment status %q", ErrValidation, s)
	}
	return status, nil
}

// TicketType is an open set: the known values get constants, anything
// else non-empty is carried through as is.
type TicketType string

const (
	TicketRegular TicketType = "regular"
	TicketVIP     TicketType = "vip"
)

func (t TicketType) Valid() bool {
	return t != ""
}

type Attendee struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Email              string             `json:"email"`
	StudentID          string             `json:"student_id"`
	RegistrationStatus RegistrationStatus `json:"registration_status"`
	PaymentStatus      PaymentStatus      `json:"payment_status"`
	TicketType         TicketType         `json:"ticket_type"`
	CheckedIn          bool               `json:"checked_in"`
	CheckedInAt        *time.Time         `json:"checked_in_at,omitempty"`
	RegisteredAt       time.Time          `json:"registered_at"`
}

// Validate checks the enum fields and the check-in invariant:
// CheckedInAt is set iff CheckedIn, and never precedes RegisteredAt.
func (a *Attendee) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("%w: attendee id is required", ErrValidation)
	}
	if !a.RegistrationStatus.Valid() {
		return fmt.Errorf("%w: attendee %s: unknown registration status %q", ErrValidation, a.ID, a.RegistrationStatus)
	}
	if !a.PaymentStatus.Valid() {
		return fmt.Errorf("%w: attendee %s: unknown payment status %q", ErrValidation, a.ID, a.PaymentStatus)
	}
	if !a.TicketType.Valid() {
		return fmt.Errorf("%w: attendee %s: ticket type is required", ErrValidation, a.ID)
	}
	if a.CheckedIn != (a.CheckedInAt != nil) {
		return fmt.Errorf("%w: attendee %s: checked_in_at must be set iff checked_in", ErrValidation, a.ID)
	}
	if a.CheckedInAt != nil && a.CheckedInAt.Before(a.RegisteredAt) {
		return fmt.Errorf("%w: attendee %s: checked_in_at precedes registered_at", ErrValidation, a.ID)
	}
	return nil
}

// MarkCheckedIn flips the attendee to checked in at now. A clock running
// behind RegisteredAt is clamped so the invariant holds.
func (a *Attendee) MarkCheckedIn(now time.Time) {
	if now.Before(a.RegisteredAt) {
		now = a.RegisteredAt
	}
	a.CheckedIn = true
	a.CheckedInAt = &now
}

// Clone returns a deep copy; CheckedInAt is the only shared pointer.
func (a *Attendee) Clone() Attendee {
	c := *a
	if a.CheckedInAt != nil {
		at := *a.CheckedInAt
		c.CheckedInAt = &at
	}
	return c
}

// RegistrationStatuses lists the statuses a ledger tracks; registrations in
// any other state (cancelled, refunded) are not loaded.
var RegistrationStatuses = []RegistrationStatus{RegistrationConfirmed, RegistrationPending, RegistrationWaitlist}
