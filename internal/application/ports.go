package application

import (
	"context"

	"github.com/shopkit/commerce-api/internal/domain/event"
)

// PasswordHasher hashes and verifies credentials. The core treats the hash
// as opaque; the concrete algorithm lives in infrastructure.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}

// IDGenerator hands out unique integer identifiers for new aggregates.
type IDGenerator interface {
	NextID(ctx context.Context) (int64, error)
}

// EventPublisher receives the domain events a handler pulled from an
// aggregate after a successful save. Delivery is best-effort; the core never
// depends on it.
type EventPublisher interface {
	Publish(ctx context.Context, events []event.Event) error
}

// NopPublisher discards events. It is the default sink when no broker is
// wired.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, events []event.Event) error { return nil }
