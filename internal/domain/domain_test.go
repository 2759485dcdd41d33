package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleAttendees() []Attendee {
	registered := time.Date(2024, 12, 15, 10, 30, 0, 0, time.UTC)
	checkedAt := time.Date(2025, 1, 15, 9, 15, 0, 0, time.UTC)
	return []Attendee{
		{ID: "1", Name: "Alice Johnson", Email: "alice@university.edu", StudentID: "STU001",
			RegistrationStatus: RegistrationConfirmed, PaymentStatus: PaymentPaid, TicketType: TicketRegular,
			CheckedIn: true, CheckedInAt: &checkedAt, RegisteredAt: registered},
		{ID: "2", Name: "Bob Smith", Email: "bob@university.edu", StudentID: "STU002",
			RegistrationStatus: RegistrationConfirmed, PaymentStatus: PaymentPaid, TicketType: TicketRegular,
			RegisteredAt: registered},
		{ID: "3", Name: "Carol Davis", Email: "carol@university.edu", StudentID: "STU003",
			RegistrationStatus: RegistrationPending, PaymentStatus: PaymentPending, TicketType: TicketRegular,
			RegisteredAt: registered},
		{ID: "4", Name: "David Wilson", Email: "david@university.edu", StudentID: "STU004",
			RegistrationStatus: RegistrationConfirmed, PaymentStatus: PaymentPaid, TicketType: TicketVIP,
			CheckedIn: true, CheckedInAt: &checkedAt, RegisteredAt: registered},
		{ID: "5", Name: "Eva Brown", Email: "eva@university.edu", StudentID: "STU005",
			RegistrationStatus: RegistrationWaitlist, PaymentStatus: PaymentPending, TicketType: TicketRegular,
			RegisteredAt: registered},
	}
}

func ids(records []Attendee) []string {
	res := make([]string, 0, len(records))
	for _, r := range records {
		res = append(res, r.ID)
	}
	return res
}

func TestAttendee_Validate(t *testing.T) {
	registered := time.Date(2024, 12, 15, 10, 30, 0, 0, time.UTC)
	before := registered.Add(-time.Hour)

	valid := sampleAttendees()[0]
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(a *Attendee)
	}{
		{"missing id", func(a *Attendee) { a.ID = "" }},
		{"unknown status", func(a *Attendee) { a.RegistrationStatus = "cancelled" }},
		{"unknown payment", func(a *Attendee) { a.PaymentStatus = "refunded" }},
		{"empty ticket", func(a *Attendee) { a.TicketType = "" }},
		{"checked in without time", func(a *Attendee) { a.CheckedInAt = nil }},
		{"time without checked in", func(a *Attendee) { a.CheckedIn = false }},
		{"checked in before registration", func(a *Attendee) { a.CheckedInAt = &before }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := valid.Clone()
			tt.mutate(&a)
			assert.ErrorIs(t, a.Validate(), ErrValidation)
		})
	}
}

func TestAttendee_OpenTicketType(t *testing.T) {
	a := sampleAttendees()[1]
	a.TicketType = "early-bird"
	assert.NoError(t, a.Validate())
}

func TestAttendee_MarkCheckedIn_ClampsToRegistration(t *testing.T) {
	a := sampleAttendees()[1]
	a.MarkCheckedIn(a.RegisteredAt.Add(-time.Minute))

	require.True(t, a.CheckedIn)
	require.NotNil(t, a.CheckedInAt)
	assert.Equal(t, a.RegisteredAt, *a.CheckedInAt)
	assert.NoError(t, a.Validate())
}

func TestAttendee_CloneDoesNotAlias(t *testing.T) {
	a := sampleAttendees()[0]
	c := a.Clone()
	*c.CheckedInAt = c.CheckedInAt.Add(time.Hour)

	assert.NotEqual(t, *a.CheckedInAt, *c.CheckedInAt)
}

func TestParseStatuses(t *testing.T) {
	s, err := ParseRegistrationStatus("waitlist")
	require.NoError(t, err)
	assert.Equal(t, RegistrationWaitlist, s)

	_, err = ParseRegistrationStatus("maybe")
	assert.ErrorIs(t, err, ErrValidation)

	p, err := ParsePaymentStatus("paid")
	require.NoError(t, err)
	assert.Equal(t, PaymentPaid, p)

	_, err = ParsePaymentStatus("")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestFilterAttendees_Identity(t *testing.T) {
	records := sampleAttendees()

	res, err := FilterAttendees(records, AttendeeFilter{Status: StatusAll, CheckedIn: CheckedInAll})
	require.NoError(t, err)
	assert.Equal(t, records, res)

	res, err = FilterAttendees(records, AttendeeFilter{})
	require.NoError(t, err)
	assert.Equal(t, records, res)
}

func TestFilterAttendees_Search(t *testing.T) {
	records := sampleAttendees()

	tests := []struct {
		term string
		want []string
	}{
		{"alice", []string{"1"}},
		{"ALICE@", []string{"1"}},
		{"stu00", []string{"1", "2", "3", "4", "5"}},
		{"stu003", []string{"3"}},
		{"university.edu", []string{"1", "2", "3", "4", "5"}},
		{"nobody", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			res, err := FilterAttendees(records, AttendeeFilter{Search: tt.term})
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(res))
		})
	}
}

func TestFilterAttendees_Facets(t *testing.T) {
	records := sampleAttendees()

	res, err := FilterAttendees(records, AttendeeFilter{Status: StatusConfirmed})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "4"}, ids(res))

	res, err = FilterAttendees(records, AttendeeFilter{CheckedIn: NotCheckedInOnly})
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "3", "5"}, ids(res))

	res, err = FilterAttendees(records, AttendeeFilter{Status: StatusConfirmed, CheckedIn: CheckedInOnly})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "4"}, ids(res))
}

func TestFilterAttendees_Conjunctive(t *testing.T) {
	records := sampleAttendees()

	// Carol matches the search but is pending, not confirmed.
	res, err := FilterAttendees(records, AttendeeFilter{Search: "carol", Status: StatusConfirmed})
	require.NoError(t, err)
	assert.Empty(t, res)
}

func TestFilterAttendees_InvalidFilter(t *testing.T) {
	_, err := FilterAttendees(sampleAttendees(), AttendeeFilter{Status: "cancelled"})
	assert.ErrorIs(t, err, ErrInvalidFilter)

	_, err = FilterAttendees(sampleAttendees(), AttendeeFilter{CheckedIn: "maybe"})
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestFilterAttendees_DoesNotMutate(t *testing.T) {
	records := sampleAttendees()
	before := sampleAttendees()

	_, err := FilterAttendees(records, AttendeeFilter{Search: "bob", CheckedIn: NotCheckedInOnly})
	require.NoError(t, err)
	assert.Equal(t, before, records)
}

func TestComputeStats(t *testing.T) {
	s := ComputeStats(sampleAttendees())

	assert.Equal(t, EventStats{
		TotalRegistered: 5,
		CheckedIn:       2,
		Confirmed:       3,
		Pending:         1,
		Waitlist:        1,
		CheckInRate:     40,
	}, s)
}

func TestComputeStats_Empty(t *testing.T) {
	assert.Equal(t, EventStats{}, ComputeStats(nil))
}

func TestComputeStats_Idempotent(t *testing.T) {
	records := sampleAttendees()
	assert.Equal(t, ComputeStats(records), ComputeStats(records))
}

func TestComputeStats_CountsBounded(t *testing.T) {
	records := sampleAttendees()
	for n := 0; n <= len(records); n++ {
		s := ComputeStats(records[:n])
		assert.LessOrEqual(t, s.CheckedIn, s.TotalRegistered)
		assert.LessOrEqual(t, s.Confirmed+s.Pending+s.Waitlist, s.TotalRegistered)
		assert.GreaterOrEqual(t, s.CheckInRate, 0)
		assert.LessOrEqual(t, s.CheckInRate, 100)
	}
}

func TestCheckInRate(t *testing.T) {
	tests := []struct {
		checkedIn, total, want int
	}{
		{0, 0, 0},
		{0, 10, 0},
		{89, 156, 57},
		{90, 156, 58},
		{1, 8, 13},
		{1, 3, 33},
		{2, 3, 67},
		{2, 2, 100},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CheckInRate(tt.checkedIn, tt.total), "%d/%d", tt.checkedIn, tt.total)
	}
}

func TestCheckInOutcome_Message(t *testing.T) {
	assert.Contains(t, CheckInNotFound.Message(), "not found")
	assert.Contains(t, CheckInAlreadyCheckedIn.Message(), "already checked in")
	assert.Contains(t, CheckInSuccess.Message(), "checked in")
}
