package domain

type CheckInOutcome string

const (
	CheckInSuccess          CheckInOutcome = "success"
	CheckInAlreadyCheckedIn CheckInOutcome = "already_checked_in"
	CheckInNotFound         CheckInOutcome = "not_found"
)

// Message is the operator-facing notice for the outcome.
func (o CheckInOutcome) Message() string {
	switch o {
	case CheckInSuccess:
		return "successfully checked in"
	case CheckInAlreadyCheckedIn:
		return "this attendee is already checked in"
	case CheckInNotFound:
		return "attendee not found, please verify the identifier"
	default:
		return string(o)
	}
}

// CheckInResult carries the outcome of a check-in attempt. Attendee is nil
// for CheckInNotFound.
type CheckInResult struct {
	Outcome  CheckInOutcome
	Attendee *Attendee
}
