package dto

import (
	"time"

	"github.com/Nagendar23/CampusConnect/internal/domain"
)

type EventResponse struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Location string `json:"location"`
	StartsAt string `json:"starts_at"`
}

type AttendeeResponse struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Email              string  `json:"email"`
	StudentID          string  `json:"student_id"`
	RegistrationStatus string  `json:"registration_status"`
	PaymentStatus      string  `json:"payment_status"`
	TicketType         string  `json:"ticket_type"`
	CheckedIn          bool    `json:"checked_in"`
	CheckedInAt        *string `json:"checked_in_at,omitempty"`
	RegisteredAt       string  `json:"registered_at"`
}

type StatsResponse struct {
	TotalRegistered int `json:"total_registered"`
	CheckedIn       int `json:"checked_in"`
	Confirmed       int `json:"confirmed"`
	Pending         int `json:"pending"`
	Waitlist        int `json:"waitlist"`
	CheckInRate     int `json:"check_in_rate"`
}

type CheckInResponse struct {
	Outcome  string            `json:"outcome"`
	Message  string            `json:"message"`
	Attendee *AttendeeResponse `json:"attendee,omitempty"`
	Stats    *StatsResponse    `json:"stats,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:       e.ID,
		Title:    e.Title,
		Location: e.Location,
		StartsAt: e.StartsAt.Format(time.RFC3339),
	}
}

func ToAttendeeResponse(a *domain.Attendee) AttendeeResponse {
	resp := AttendeeResponse{
		ID:                 a.ID,
		Name:               a.Name,
		Email:              a.Email,
		StudentID:          a.StudentID,
		RegistrationStatus: string(a.RegistrationStatus),
		PaymentStatus:      string(a.PaymentStatus),
		TicketType:         string(a.TicketType),
		CheckedIn:          a.CheckedIn,
		RegisteredAt:       a.RegisteredAt.Format(time.RFC3339),
	}
	if a.CheckedInAt != nil {
		at := a.CheckedInAt.Format(time.RFC3339)
		resp.CheckedInAt = &at
	}
	return resp
}

func ToAttendeeListResponse(attendees []domain.Attendee) []AttendeeResponse {
	resp := make([]AttendeeResponse, 0, len(attendees))
	for i := range attendees {
		resp = append(resp, ToAttendeeResponse(&attendees[i]))
	}
	return resp
}

func ToStatsResponse(s domain.EventStats) StatsResponse {
	return StatsResponse{
		TotalRegistered: s.TotalRegistered,
		CheckedIn:       s.CheckedIn,
		Confirmed:       s.Confirmed,
		Pending:         s.Pending,
		Waitlist:        s.Waitlist,
		CheckInRate:     s.CheckInRate,
	}
}

func ToCheckInResponse(r domain.CheckInResult) CheckInResponse {
	resp := CheckInResponse{
		Outcome: string(r.Outcome),
		Message: r.Outcome.Message(),
	}
	if r.Attendee != nil {
		a := ToAttendeeResponse(r.Attendee)
		resp.Attendee = &a
	}
	return resp
}
