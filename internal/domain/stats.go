package domain

type EventStats struct {
	TotalRegistered int `json:"total_registered"`
	CheckedIn       int `json:"checked_in"`
	Confirmed       int `json:"confirmed"`
	Pending         int `json:"pending"`
	Waitlist        int `json:"waitlist"`
	CheckInRate     int `json:"check_in_rate"`
}

// ComputeStats aggregates the snapshot in one pass. It keeps no state, so
// the counts can never drift from the records.
func ComputeStats(records []Attendee) EventStats {
	var s EventStats
	for i := range records {
		s.TotalRegistered++
		if records[i].CheckedIn {
			s.CheckedIn++
		}
		switch records[i].RegistrationStatus {
		case RegistrationConfirmed:
			s.Confirmed++
		case RegistrationPending:
			s.Pending++
		case RegistrationWaitlist:
			s.Waitlist++
		}
	}
	s.CheckInRate = CheckInRate(s.CheckedIn, s.TotalRegistered)
	return s
}

// CheckInRate is checkedIn/total as a percentage rounded half up; 0 when
// total is 0.
func CheckInRate(checkedIn, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*checkedIn + total) / (2 * total)
}
