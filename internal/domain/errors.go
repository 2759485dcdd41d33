package domain

import "errors"

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrAttendeeNotFound = errors.New("attendee not found")
)

var (
	ErrDuplicateAttendee = errors.New("duplicate attendee id")
	ErrInvalidFilter     = errors.New("invalid filter")
)

var (
	ErrValidation = errors.New("validation error")
)

var (
	ErrLedgerUnavailable = errors.New("ledger unavailable")
	ErrMailerDisabled    = errors.New("mailer is not configured")
)
