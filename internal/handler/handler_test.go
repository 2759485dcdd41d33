package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Nagendar23/CampusConnect/internal/domain"
	"github.com/Nagendar23/CampusConnect/internal/handler/dto"
	hmocks "github.com/Nagendar23/CampusConnect/internal/handler/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockLedgerSvc, *hmocks.MockCheckInSvc, http.Handler) {
	t.Helper()
	ledgerSvc := hmocks.NewMockLedgerSvc(t)
	checkInSvc := hmocks.NewMockCheckInSvc(t)

	h := NewHandler(ledgerSvc, checkInSvc)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.GET("/events", h.ListEvents)
		api.GET("/events/:id/stats", h.GetStats)
		api.GET("/events/:id/export", h.ExportAttendees)
		api.GET("/events/:id/attendees", h.ListAttendees)
		api.GET("/events/:id/attendees/:attendee_id", h.GetAttendee)
		api.POST("/events/:id/attendees/:attendee_id/email", h.SendEmail)
		api.POST("/events/:id/attendees/:attendee_id/remove", h.RemoveAttendee)
		api.POST("/events/:id/check-in", h.CheckIn)
		api.POST("/events/:id/check-in/manual", h.ManualCheckIn)
		api.GET("/events/:id/check-ins/recent", h.RecentCheckIns)
	}

	return ledgerSvc, checkInSvc, r
}

func sampleAttendee(checkedIn bool) *domain.Attendee {
	a := &domain.Attendee{
		ID:                 "1",
		Name:               "Alice Johnson",
		Email:              "alice.johnson@university.edu",
		StudentID:          "STU001",
		RegistrationStatus: domain.RegistrationConfirmed,
		PaymentStatus:      domain.PaymentPaid,
		TicketType:         domain.TicketRegular,
		RegisteredAt:       time.Date(2024, 12, 15, 10, 30, 0, 0, time.UTC),
	}
	if checkedIn {
		at := time.Date(2025, 1, 15, 9, 15, 0, 0, time.UTC)
		a.CheckedIn = true
		a.CheckedInAt = &at
	}
	return a
}

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

// --- Events ---

func TestHandler_ListEvents_Success(t *testing.T) {
	ledgerSvc, _, r := setupRouter(t)

	events := []domain.Event{
		{ID: uuid.New().String(), Title: "Tech Talk", StartsAt: time.Now()},
		{ID: uuid.New().String(), Title: "Career Fair", StartsAt: time.Now()},
	}
	ledgerSvc.EXPECT().Events(mock.Anything).Return(events, nil)

	w := get(r, "/api/events")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, "Career Fair", resp[1].Title)
}

func TestHandler_GetStats_Success(t *testing.T) {
	ledgerSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	ledgerSvc.EXPECT().GetStats(mock.Anything, eventID).Return(domain.EventStats{
		TotalRegistered: 5, CheckedIn: 2, Confirmed: 3, Pending: 1, Waitlist: 1, CheckInRate: 40,
	}, nil)

	w := get(r, "/api/events/"+eventID+"/stats")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.TotalRegistered)
	assert.Equal(t, 40, resp.CheckInRate)
}

func TestHandler_GetStats_InvalidID(t *testing.T) {
	_, _, r := setupRouter(t)

	w := get(r, "/api/events/not-a-uuid/stats")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetStats_EventNotFound(t *testing.T) {
	ledgerSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	ledgerSvc.EXPECT().GetStats(mock.Anything, eventID).
		Return(domain.EventStats{}, fmt.Errorf("load event %s: %w", eventID, domain.ErrEventNotFound))

	w := get(r, "/api/events/"+eventID+"/stats")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Attendees ---

func TestHandler_ListAttendees_PassesFilter(t *testing.T) {
	ledgerSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	want := domain.AttendeeFilter{
		Search:    "alice",
		Status:    domain.StatusConfirmed,
		CheckedIn: domain.NotCheckedInOnly,
	}
	ledgerSvc.EXPECT().ListAttendees(mock.Anything, eventID, want).
		Return([]domain.Attendee{*sampleAttendee(false)}, nil)

	w := get(r, "/api/events/"+eventID+"/attendees?search=alice&status=confirmed&checked_in=not-checked-in")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.AttendeeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "STU001", resp[0].StudentID)
	assert.Nil(t, resp[0].CheckedInAt)
}

func TestHandler_ListAttendees_EmptyIsArray(t *testing.T) {
	ledgerSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	ledgerSvc.EXPECT().ListAttendees(mock.Anything, eventID, domain.AttendeeFilter{}).Return(nil, nil)

	w := get(r, "/api/events/"+eventID+"/attendees")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestHandler_ListAttendees_InvalidFilter(t *testing.T) {
	ledgerSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	ledgerSvc.EXPECT().ListAttendees(mock.Anything, eventID, mock.Anything).
		Return(nil, fmt.Errorf("%w: status %q", domain.ErrInvalidFilter, "cancelled"))

	w := get(r, "/api/events/"+eventID+"/attendees?status=cancelled")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetAttendee(t *testing.T) {
	ledgerSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	ledgerSvc.EXPECT().GetAttendee(mock.Anything, eventID, "1").Return(sampleAttendee(true), nil)
	ledgerSvc.EXPECT().GetAttendee(mock.Anything, eventID, "42").Return(nil, domain.ErrAttendeeNotFound)

	w := get(r, "/api/events/"+eventID+"/attendees/1")
	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AttendeeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.CheckedInAt)
	assert.Equal(t, "2025-01-15T09:15:00Z", *resp.CheckedInAt)

	w = get(r, "/api/events/"+eventID+"/attendees/42")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ExportAttendees(t *testing.T) {
	ledgerSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	ledgerSvc.EXPECT().ExportCSV(mock.Anything, eventID, domain.AttendeeFilter{CheckedIn: domain.CheckedInOnly}, mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, _ domain.AttendeeFilter, w io.Writer) error {
			_, err := io.WriteString(w, "id,name\n1,Alice Johnson\n")
			return err
		})

	w := get(r, "/api/events/"+eventID+"/export?checked_in=checked-in")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attendees-"+eventID+".csv")
	assert.Equal(t, "id,name\n1,Alice Johnson\n", w.Body.String())
}

func TestHandler_SendEmail(t *testing.T) {
	_, checkInSvc, r := setupRouter(t)

	eventID := uuid.New().String()
	checkInSvc.EXPECT().SendEmail(mock.Anything, eventID, "1").Return(nil)
	checkInSvc.EXPECT().SendEmail(mock.Anything, eventID, "2").Return(domain.ErrMailerDisabled)

	w := postJSON(r, "/api/events/"+eventID+"/attendees/1/email", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = postJSON(r, "/api/events/"+eventID+"/attendees/2/email", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestHandler_RemoveAttendee_IsAccepted(t *testing.T) {
	_, checkInSvc, r := setupRouter(t)

	eventID := uuid.New().String()
	checkInSvc.EXPECT().Remove(mock.Anything, eventID, "1").Return(nil)

	w := postJSON(r, "/api/events/"+eventID+"/attendees/1/remove", "")

	assert.Equal(t, http.StatusAccepted, w.Code)
}

// --- Check-in ---

func TestHandler_CheckIn_Success(t *testing.T) {
	ledgerSvc, checkInSvc, r := setupRouter(t)

	eventID := uuid.New().String()
	checkInSvc.EXPECT().CheckIn(mock.Anything, eventID, "STU001").Return(domain.CheckInResult{
		Outcome:  domain.CheckInSuccess,
		Attendee: sampleAttendee(true),
	}, nil)
	ledgerSvc.EXPECT().GetStats(mock.Anything, eventID).Return(domain.EventStats{
		TotalRegistered: 2, CheckedIn: 2, Confirmed: 2, CheckInRate: 100,
	}, nil)

	w := postJSON(r, "/api/events/"+eventID+"/check-in", `{"identifier":"STU001"}`)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CheckInResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Outcome)
	assert.Equal(t, domain.CheckInSuccess.Message(), resp.Message)
	require.NotNil(t, resp.Attendee)
	assert.True(t, resp.Attendee.CheckedIn)
	require.NotNil(t, resp.Stats)
	assert.Equal(t, 100, resp.Stats.CheckInRate)
}

func TestHandler_CheckIn_AlreadyCheckedIn(t *testing.T) {
	ledgerSvc, checkInSvc, r := setupRouter(t)

	eventID := uuid.New().String()
	checkInSvc.EXPECT().CheckIn(mock.Anything, eventID, "STU001").Return(domain.CheckInResult{
		Outcome:  domain.CheckInAlreadyCheckedIn,
		Attendee: sampleAttendee(true),
	}, nil)
	ledgerSvc.EXPECT().GetStats(mock.Anything, eventID).Return(domain.EventStats{}, nil)

	w := postJSON(r, "/api/events/"+eventID+"/check-in", `{"identifier":"STU001"}`)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp dto.CheckInResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "already_checked_in", resp.Outcome)
}

func TestHandler_CheckIn_NotFound(t *testing.T) {
	ledgerSvc, checkInSvc, r := setupRouter(t)

	eventID := uuid.New().String()
	checkInSvc.EXPECT().CheckIn(mock.Anything, eventID, "STU999").
		Return(domain.CheckInResult{Outcome: domain.CheckInNotFound}, nil)
	ledgerSvc.EXPECT().GetStats(mock.Anything, eventID).Return(domain.EventStats{}, nil)

	w := postJSON(r, "/api/events/"+eventID+"/check-in", `{"identifier":"STU999"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp dto.CheckInResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "not_found", resp.Outcome)
	assert.Nil(t, resp.Attendee)
}

func TestHandler_CheckIn_BadRequest(t *testing.T) {
	_, _, r := setupRouter(t)

	eventID := uuid.New().String()

	w := postJSON(r, "/api/events/"+eventID+"/check-in", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(r, "/api/events/bad-id/check-in", `{"identifier":"STU001"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CheckIn_LedgerUnavailable(t *testing.T) {
	_, checkInSvc, r := setupRouter(t)

	eventID := uuid.New().String()
	err := fmt.Errorf("%w: build store: %w", domain.ErrLedgerUnavailable,
		fmt.Errorf("%w: duplicate", domain.ErrValidation))
	checkInSvc.EXPECT().CheckIn(mock.Anything, eventID, "STU001").Return(domain.CheckInResult{}, err)

	w := postJSON(r, "/api/events/"+eventID+"/check-in", `{"identifier":"STU001"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandler_ManualCheckIn(t *testing.T) {
	ledgerSvc, checkInSvc, r := setupRouter(t)

	eventID := uuid.New().String()
	checkInSvc.EXPECT().ManualCheckIn(mock.Anything, eventID, "alice").Return(domain.CheckInResult{
		Outcome:  domain.CheckInSuccess,
		Attendee: sampleAttendee(true),
	}, nil)
	ledgerSvc.EXPECT().GetStats(mock.Anything, eventID).Return(domain.EventStats{}, nil)

	w := postJSON(r, "/api/events/"+eventID+"/check-in/manual", `{"search":"alice"}`)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_RecentCheckIns(t *testing.T) {
	ledgerSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	ledgerSvc.EXPECT().RecentCheckIns(mock.Anything, eventID, 3).
		Return([]domain.Attendee{*sampleAttendee(true)}, nil)

	w := get(r, "/api/events/"+eventID+"/check-ins/recent?limit=3")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.AttendeeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_RecentCheckIns_BadLimit(t *testing.T) {
	_, _, r := setupRouter(t)

	w := get(r, "/api/events/"+uuid.New().String()+"/check-ins/recent?limit=500")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = get(r, "/api/events/"+uuid.New().String()+"/check-ins/recent?limit=abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	ledgerSvc, _, r := setupRouter(t)

	ledgerSvc.EXPECT().Events(mock.Anything).Return(nil, assert.AnError)

	w := get(r, "/api/events")

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp.Error)
}
