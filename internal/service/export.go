package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/Nagendar23/CampusConnect/internal/domain"
)

var exportHeader = []string{
	"id", "name", "email", "student_id", "status", "payment",
	"ticket", "checked_in", "checked_in_at", "registered_at",
}

// ExportCSV writes the attendees matching filter to w, one row per attendee
// in ledger order.
func (s *LedgerService) ExportCSV(ctx context.Context, eventID string, filter domain.AttendeeFilter, w io.Writer) error {
	attendees, err := s.ListAttendees(ctx, eventID, filter)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err = cw.Write(exportHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i := range attendees {
		if err = cw.Write(exportRow(&attendees[i])); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	cw.Flush()
	if err = cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}

	return nil
}

func exportRow(a *domain.Attendee) []string {
	checkedInAt := ""
	if a.CheckedInAt != nil {
		checkedInAt = a.CheckedInAt.Format(time.RFC3339)
	}
	return []string{
		a.ID,
		a.Name,
		a.Email,
		a.StudentID,
		string(a.RegistrationStatus),
		string(a.PaymentStatus),
		string(a.TicketType),
		strconv.FormatBool(a.CheckedIn),
		checkedInAt,
		a.RegisteredAt.Format(time.RFC3339),
	}
}
