package handler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/Nagendar23/CampusConnect/internal/domain"
	"github.com/Nagendar23/CampusConnect/internal/handler/dto"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type LedgerSvc interface {
	Events(ctx context.Context) ([]domain.Event, error)
	ListAttendees(ctx context.Context, eventID string, filter domain.AttendeeFilter) ([]domain.Attendee, error)
	GetAttendee(ctx context.Context, eventID, attendeeID string) (*domain.Attendee, error)
	GetStats(ctx context.Context, eventID string) (domain.EventStats, error)
	RecentCheckIns(ctx context.Context, eventID string, limit int) ([]domain.Attendee, error)
	ExportCSV(ctx context.Context, eventID string, filter domain.AttendeeFilter, w io.Writer) error
}

type CheckInSvc interface {
	CheckIn(ctx context.Context, eventID, identifier string) (domain.CheckInResult, error)
	ManualCheckIn(ctx context.Context, eventID, term string) (domain.CheckInResult, error)
	SendEmail(ctx context.Context, eventID, attendeeID string) error
	Remove(ctx context.Context, eventID, attendeeID string) error
}

type Handler struct {
	ledgerService  LedgerSvc
	checkInService CheckInSvc
}

func NewHandler(ledgerService LedgerSvc, checkInService CheckInSvc) *Handler {
	return &Handler{
		ledgerService:  ledgerService,
		checkInService: checkInService,
	}
}

// Events

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.ledgerService.Events(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		resp = append(resp, dto.ToEventResponse(&events[i]))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetStats(c *ginext.Context) {
	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}

	stats, err := h.ledgerService.GetStats(c.Request.Context(), eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatsResponse(stats))
}

// Attendees

func (h *Handler) ListAttendees(c *ginext.Context) {
	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}

	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	attendees, err := h.ledgerService.ListAttendees(c.Request.Context(), eventID, filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAttendeeListResponse(attendees))
}

func (h *Handler) GetAttendee(c *ginext.Context) {
	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}

	attendee, err := h.ledgerService.GetAttendee(c.Request.Context(), eventID, c.Param("attendee_id"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAttendeeResponse(attendee))
}

func (h *Handler) ExportAttendees(c *ginext.Context) {
	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}

	filter, ok := bindFilter(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.ledgerService.ExportCSV(c.Request.Context(), eventID, filter, &buf); err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="attendees-%s.csv"`, eventID))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func (h *Handler) SendEmail(c *ginext.Context) {
	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}

	if err := h.checkInService.SendEmail(c.Request.Context(), eventID, c.Param("attendee_id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "sent"})
}

func (h *Handler) RemoveAttendee(c *ginext.Context) {
	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}

	if err := h.checkInService.Remove(c.Request.Context(), eventID, c.Param("attendee_id")); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, ginext.H{"status": "unchanged"})
}

// Check-in

func (h *Handler) CheckIn(c *ginext.Context) {
	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}

	var req dto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.checkInService.CheckIn(c.Request.Context(), eventID, req.Identifier)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respondCheckIn(c, eventID, res)
}

func (h *Handler) ManualCheckIn(c *ginext.Context) {
	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}

	var req dto.ManualCheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.checkInService.ManualCheckIn(c.Request.Context(), eventID, req.Search)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.respondCheckIn(c, eventID, res)
}

func (h *Handler) RecentCheckIns(c *ginext.Context) {
	eventID, ok := eventIDParam(c)
	if !ok {
		return
	}

	var q dto.RecentCheckInsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	attendees, err := h.ledgerService.RecentCheckIns(c.Request.Context(), eventID, q.Limit)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAttendeeListResponse(attendees))
}

func (h *Handler) respondCheckIn(c *ginext.Context, eventID string, res domain.CheckInResult) {
	resp := dto.ToCheckInResponse(res)

	stats, err := h.ledgerService.GetStats(c.Request.Context(), eventID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	s := dto.ToStatsResponse(stats)
	resp.Stats = &s

	switch res.Outcome {
	case domain.CheckInSuccess:
		c.JSON(http.StatusOK, resp)
	case domain.CheckInAlreadyCheckedIn:
		c.JSON(http.StatusConflict, resp)
	default:
		c.JSON(http.StatusNotFound, resp)
	}
}

func eventIDParam(c *ginext.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return "", false
	}
	return id, true
}

func bindFilter(c *ginext.Context) (domain.AttendeeFilter, bool) {
	var q dto.ListAttendeesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return domain.AttendeeFilter{}, false
	}

	return domain.AttendeeFilter{
		Search:    q.Search,
		Status:    domain.StatusFilter(q.Status),
		CheckedIn: domain.CheckedInFilter(q.CheckedIn),
	}, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrLedgerUnavailable):
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})

	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrAttendeeNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidFilter):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrMailerDisabled):
		c.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
