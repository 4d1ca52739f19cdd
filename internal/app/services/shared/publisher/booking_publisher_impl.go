package publisher

import (
	"booking-service/internal/app/contracts"
	"booking-service/internal/app/models"
	"booking-service/internal/pkg/constvars"
	"booking-service/internal/pkg/exceptions"
	"context"
	"sync"
	"time"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// BookingEvent is the message body written to the booking queue.
type BookingEvent struct {
	Event       string         `json:"event"`
	Booking     models.Booking `json:"booking"`
	PublishedAt time.Time      `json:"published_at"`
}

type amqpPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type bookingEventPublisher struct {
	ch    amqpPublisher
	queue string
	log   *zap.Logger
	mu    sync.Mutex
}

// NewBookingEventPublisher declares the durable queue and publishes to it
// through the default exchange.
func NewBookingEventPublisher(conn *amqp.Connection, queue string, logger *zap.Logger) (contracts.BookingEventPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, exceptions.ErrRabbitMQPublishMessage(err, queue)
	}
	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		ch.Close()
		return nil, exceptions.ErrRabbitMQPublishMessage(err, queue)
	}
	return newBookingEventPublisher(ch, queue, logger), nil
}

func newBookingEventPublisher(ch amqpPublisher, queue string, logger *zap.Logger) *bookingEventPublisher {
	return &bookingEventPublisher{
		ch:    ch,
		queue: queue,
		log:   logger,
	}
}

func (p *bookingEventPublisher) PublishBookingConfirmed(ctx context.Context, booking *models.Booking) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	body, err := json.Marshal(BookingEvent{
		Event:       constvars.BookingEventConfirmed,
		Booking:     *booking,
		PublishedAt: time.Now().UTC(),
	})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	msg := amqp.Publishing{
		ContentType:   constvars.MIMEApplicationJSON,
		Body:          body,
		DeliveryMode:  amqp.Persistent,
		Type:          constvars.BookingEventConfirmed,
		MessageId:     booking.ConfirmationID,
		CorrelationId: requestID,
		Timestamp:     time.Now().UTC(),
	}

	// amqp channels are not safe for concurrent publishing.
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.queue)
	}

	p.log.Info("bookingEventPublisher.PublishBookingConfirmed succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, p.queue),
		zap.String(constvars.LoggingConfirmationIDKey, booking.ConfirmationID),
	)
	return nil
}

type noopBookingEventPublisher struct{}

// NewNoopBookingEventPublisher is used when booking events are disabled.
func NewNoopBookingEventPublisher() contracts.BookingEventPublisher {
	return noopBookingEventPublisher{}
}

func (noopBookingEventPublisher) PublishBookingConfirmed(ctx context.Context, booking *models.Booking) error {
	return nil
}
