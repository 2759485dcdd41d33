package notification

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/Nagendar23/CampusConnect/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer sends event reminders to attendees.
type SMTPMailer struct {
	addr   string
	from   string
	auth   smtp.Auth
	send   sendFunc
	logger logger.Logger
}

func NewSMTPMailer(host string, port int, username, password, from string, logger logger.Logger) *SMTPMailer {
	m := &SMTPMailer{from: from, send: smtp.SendMail, logger: logger}
	if host == "" {
		logger.Warn("smtp host is empty, reminders disabled")
		return m
	}

	m.addr = net.JoinHostPort(host, strconv.Itoa(port))
	if username != "" {
		m.auth = smtp.PlainAuth("", username, password, host)
	}
	return m
}

func (m *SMTPMailer) SendReminder(ctx context.Context, event *domain.Event, attendee *domain.Attendee) error {
	if m.addr == "" {
		return domain.ErrMailerDisabled
	}
	if attendee.Email == "" {
		return fmt.Errorf("%w: attendee %s has no email", domain.ErrValidation, attendee.ID)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := reminderMessage(m.from, event, attendee)
	if err := m.send(m.addr, m.auth, m.from, []string{attendee.Email}, msg); err != nil {
		m.logger.Warn("failed to send reminder",
			logger.String("attendee_id", attendee.ID),
			logger.String("error", err.Error()),
		)
		return fmt.Errorf("send email: %w", err)
	}

	m.logger.Debug("reminder delivered",
		logger.String("attendee_id", attendee.ID),
	)
	return nil
}

func reminderMessage(from string, event *domain.Event, attendee *domain.Attendee) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", attendee.Email)
	fmt.Fprintf(&b, "Subject: Reminder: %s\r\n", event.Title)
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")

	fmt.Fprintf(&b, "Hello %s,\r\n\r\n", attendee.Name)
	fmt.Fprintf(&b, "This is a reminder about %s", event.Title)
	if !event.StartsAt.IsZero() {
		fmt.Fprintf(&b, " on %s (UTC)", event.StartsAt.UTC().Format("02 Jan 2006 15:04"))
	}
	if event.Location != "" {
		fmt.Fprintf(&b, " at %s", event.Location)
	}
	b.WriteString(".\r\n")
	if attendee.StudentID != "" {
		fmt.Fprintf(&b, "Show your student ID %s at the check-in desk.\r\n", attendee.StudentID)
	}
	return []byte(b.String())
}
