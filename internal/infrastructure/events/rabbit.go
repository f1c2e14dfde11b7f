package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/shopkit/commerce-api/internal/application"
	"github.com/shopkit/commerce-api/internal/domain/event"
	"github.com/shopkit/commerce-api/pkg/helpers"
)

// Envelope is the JSON shape of one domain event on the queue.
type Envelope struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    event.Event `json:"payload"`
}

// RabbitEventPublisher delivers domain events to a durable RabbitMQ queue,
// one message per event. Delivery is best-effort; handlers log and continue
// when it fails.
type RabbitEventPublisher struct {
	pub *helpers.RabbitPublisher
}

func NewRabbitEventPublisher(pub *helpers.RabbitPublisher) *RabbitEventPublisher {
	return &RabbitEventPublisher{pub: pub}
}

func (p *RabbitEventPublisher) Publish(ctx context.Context, events []event.Event) error {
	for _, e := range events {
		env := Envelope{
			ID:         uuid.NewString(),
			Name:       e.EventName(),
			OccurredAt: time.Now().UTC(),
			Payload:    e,
		}
		if err := p.pub.PublishJSON(ctx, env); err != nil {
			return err
		}
	}
	return nil
}

var _ application.EventPublisher = (*RabbitEventPublisher)(nil)
