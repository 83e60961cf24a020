package events

import (
	"context"
	"time"
)

// Event types published by the POS and inventory modules.
const (
	TypeTransactionCreated = "transaction.created"
	TypeInventoryAdjusted  = "inventory.adjusted"
)

// Event is the envelope written to the sales event stream. Consumers are
// dashboards and reporting jobs; delivery is best-effort after commit.
type Event struct {
	EventID   string         `json:"event_id"`
	Type      string         `json:"type"`
	RiderID   string         `json:"rider_id,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	Payload   map[string]any `json:"payload,omitempty"`
}

// Publisher emits domain events to an external stream.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// NopPublisher discards events. Used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) Publish(ctx context.Context, e Event) error { return nil }
func (NopPublisher) Close() error                               { return nil }
