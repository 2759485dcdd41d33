package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Nagendar23/CampusConnect/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSeed = `
events:
  - id: e1
    title: Workshop
    location: Lab 3
    starts_at: "2025-01-15T09:00:00Z"
    attendees:
      - id: "1"
        name: Alice Johnson
        email: alice@university.edu
        student_id: STU001
        status: confirmed
        payment_status: paid
        checked_in: true
        checked_in_at: "2025-01-15T09:15:00Z"
        registered_at: "2024-12-15T10:30:00Z"
      - id: "2"
        name: Eva Brown
        email: eva@university.edu
        student_id: STU005
        status: waitlist
        payment_status: pending
        ticket_type: vip
        registered_at: "2024-12-11T13:25:00Z"
`

func TestParseSeed(t *testing.T) {
	src, err := ParseSeed([]byte(testSeed))
	require.NoError(t, err)

	events, err := src.ListEvents(context.Background())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Workshop", events[0].Title)

	event, attendees, err := src.Load(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, "e1", event.ID)
	require.Len(t, attendees, 2)

	assert.True(t, attendees[0].CheckedIn)
	require.NotNil(t, attendees[0].CheckedInAt)
	assert.Equal(t, domain.TicketRegular, attendees[0].TicketType)
	assert.Equal(t, domain.RegistrationWaitlist, attendees[1].RegistrationStatus)
	assert.Equal(t, domain.TicketVIP, attendees[1].TicketType)
	assert.Nil(t, attendees[1].CheckedInAt)
}

func TestSeedSource_LoadReturnsCopies(t *testing.T) {
	src, err := ParseSeed([]byte(testSeed))
	require.NoError(t, err)

	_, first, err := src.Load(context.Background(), "e1")
	require.NoError(t, err)
	first[0].Name = "changed"

	_, second, err := src.Load(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, "Alice Johnson", second[0].Name)
}

func TestSeedSource_UnknownEvent(t *testing.T) {
	src, err := ParseSeed([]byte(testSeed))
	require.NoError(t, err)

	_, _, err = src.Load(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestParseSeed_Invalid(t *testing.T) {
	tests := map[string]string{
		"bad yaml":                "events: [",
		"missing id":              "events:\n  - title: x\n",
		"unknown status":          "events:\n  - id: e1\n    attendees:\n      - id: \"1\"\n        status: cancelled\n        payment_status: paid\n",
		"checked_in without time": "events:\n  - id: e1\n    attendees:\n      - id: \"1\"\n        status: confirmed\n        payment_status: paid\n        checked_in: true\n",
		"bad time":                "events:\n  - id: e1\n    starts_at: tomorrow\n",
		"duplicate event":         "events:\n  - id: e1\n  - id: e1\n",
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseSeed([]byte(data))
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestNewSeedSource_BundledFixture(t *testing.T) {
	src, err := NewSeedSource(filepath.Join("..", "..", "seed", "attendees.yaml"))
	require.NoError(t, err)

	events, err := src.ListEvents(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, events)

	for _, e := range events {
		_, attendees, err := src.Load(context.Background(), e.ID)
		require.NoError(t, err)
		_, err = NewAttendeeStore(e.ID, attendees)
		require.NoError(t, err, "event %s", e.ID)
	}
}

func TestNewSeedSource_MissingFile(t *testing.T) {
	_, err := NewSeedSource(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
