package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Nagendar23/CampusConnect/internal/domain"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/logger"
)

const checkedInRoutingKey = "attendee.checked_in"

type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// CheckInMessage is the body published for every successful check-in.
type CheckInMessage struct {
	EventID     string    `json:"event_id"`
	EventTitle  string    `json:"event_title"`
	AttendeeID  string    `json:"attendee_id"`
	StudentID   string    `json:"student_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	TicketType  string    `json:"ticket_type"`
	CheckedInAt time.Time `json:"checked_in_at"`
}

// AMQPPublisher emits check-ins to a topic exchange for downstream
// consumers such as badge printers.
type AMQPPublisher struct {
	conn     *amqp.Connection
	channel  publisher
	exchange string
	logger   logger.Logger
}

func NewAMQPPublisher(url, exchange string, log logger.Logger) (*AMQPPublisher, error) {
	if url == "" {
		log.Warn("rabbitmq url is empty, check-in events disabled")
		return &AMQPPublisher{logger: log}, nil
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open rabbitmq channel: %w", err)
	}

	if err = ch.ExchangeDeclare(
		exchange,
		amqp.ExchangeTopic,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("declare exchange %s: %w", exchange, err)
	}

	log.Info("rabbitmq publisher initialized", logger.String("exchange", exchange))

	return &AMQPPublisher{conn: conn, channel: ch, exchange: exchange, logger: log}, nil
}

func (p *AMQPPublisher) NotifyCheckedIn(ctx context.Context, event *domain.Event, attendee *domain.Attendee) {
	if p.channel == nil {
		p.logger.Debug("check-in event skipped (publisher disabled)",
			logger.String("attendee_id", attendee.ID),
		)
		return
	}

	msg := CheckInMessage{
		EventID:    event.ID,
		EventTitle: event.Title,
		AttendeeID: attendee.ID,
		StudentID:  attendee.StudentID,
		Name:       attendee.Name,
		Email:      attendee.Email,
		TicketType: string(attendee.TicketType),
	}
	if attendee.CheckedInAt != nil {
		msg.CheckedInAt = *attendee.CheckedInAt
	}

	body, err := json.Marshal(msg)
	if err != nil {
		p.logger.Error("failed to encode check-in event", logger.String("error", err.Error()))
		return
	}

	err = p.channel.PublishWithContext(ctx,
		p.exchange,
		checkedInRoutingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    msg.CheckedInAt,
			Body:         body,
		},
	)
	if err != nil {
		p.logger.Error("failed to publish check-in event",
			logger.String("exchange", p.exchange),
			logger.String("attendee_id", attendee.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	p.logger.Debug("check-in event published",
		logger.String("exchange", p.exchange),
		logger.String("attendee_id", attendee.ID),
	)
}

func (p *AMQPPublisher) Close() error {
	if p.conn == nil {
		return nil
	}
	return p.conn.Close()
}
