package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"guarderia-felina/internal/domain/billing"
	"guarderia-felina/internal/platform/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	DefaultQueue       = "guarderia.pagos"
	DefaultDialTimeout = 2 * time.Second
)

var ErrNotConfigured = errors.New("rabbitmq url not configured")

// Publisher publica eventos de pagos en una cola durable. La conexión se abre
// en el primer uso y se reabre si el broker la cerró; cada publish usa su
// propio canal.
type Publisher struct {
	url   string
	queue string
	log   logger.Logger
	now   func() time.Time

	// dialTimeout acota TCP y handshake AMQP; se publica dentro del request.
	dialTimeout time.Duration

	mu   sync.Mutex
	conn *amqp.Connection
}

var _ billing.Notifier = (*Publisher)(nil)

func NewPublisher(url, queue string, log logger.Logger) *Publisher {
	if strings.TrimSpace(queue) == "" {
		queue = DefaultQueue
	}
	return &Publisher{
		url:   strings.TrimSpace(url),
		queue: queue,
		log:   log.With(map[string]any{"component": "rabbitmq"}),
		now:   time.Now,

		dialTimeout: DefaultDialTimeout,
	}
}

func (p *Publisher) PaymentRecorded(ctx context.Context, pay billing.Payment, s billing.Summary) error {
	return p.publish(ctx, paymentEvent(EventPaymentRecorded, pay, s, p.now()))
}

func (p *Publisher) PaymentRemoved(ctx context.Context, pay billing.Payment, s billing.Summary) error {
	return p.publish(ctx, paymentEvent(EventPaymentRemoved, pay, s, p.now()))
}

func (p *Publisher) BookingDeleted(ctx context.Context, bookingID string) error {
	return p.publish(ctx, Event{
		Type:        EventBookingDeleted,
		GuarderiaID: bookingID,
		OccurredAt:  p.now().UTC().Format(time.RFC3339),
	})
}

func (p *Publisher) publish(ctx context.Context, ev Event) error {
	if p.url == "" {
		return ErrNotConfigured
	}

	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	// Otro request pudo tener el lock mientras el broker no respondía.
	if err := ctx.Err(); err != nil {
		return err
	}

	conn, err := p.connLocked()
	if err != nil {
		return err
	}

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	// Idempotente. Durable para sobrevivir reinicios del broker.
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    p.now().UTC(),
		Type:         ev.Type,
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, pub); err != nil {
		return fmt.Errorf("publish: %w", err)
	}

	p.log.Debug("event published", map[string]any{"type": ev.Type, "guarderia_id": ev.GuarderiaID})
	return nil
}

func (p *Publisher) connLocked() (*amqp.Connection, error) {
	if p.conn != nil && !p.conn.IsClosed() {
		return p.conn, nil
	}
	conn, err := amqp.DialConfig(p.url, amqp.Config{
		Heartbeat: 10 * time.Second,
		Locale:    "en_US",
		Dial:      amqp.DefaultDial(p.dialTimeout),
	})
	if err != nil {
		return nil, fmt.Errorf("dial broker: %w", err)
	}
	p.conn = conn
	return conn, nil
}

// Close cierra la conexión si está abierta.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.conn == nil || p.conn.IsClosed() {
		return nil
	}
	return p.conn.Close()
}
