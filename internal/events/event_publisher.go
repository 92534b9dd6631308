package events

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// EventPublisher defines the interface for publishing domain events
type EventPublisher interface {
	Publish(ctx context.Context, event interface{}) error
}

// InvoiceCreatedEvent is emitted after an invoice is persisted and committed
type InvoiceCreatedEvent struct {
	InvoiceID  int             `json:"invoice_id"`
	CustomerID int             `json:"customer_id"`
	ItemCount  int             `json:"item_count"`
	Total      decimal.Decimal `json:"total"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// StockReducedEvent is emitted for each line item whose stock was decremented
type StockReducedEvent struct {
	ProductID  int       `json:"product_id"`
	Quantity   int       `json:"quantity"`
	Remaining  int       `json:"remaining"`
	OccurredAt time.Time `json:"occurred_at"`
}

// InMemoryEventPublisher keeps events in memory and logs them. It backs
// local development and tests when no Kafka broker is reachable.
type InMemoryEventPublisher struct {
	logger *zap.Logger
	events []interface{}
}

func NewEventPublisher(logger *zap.Logger) *InMemoryEventPublisher {
	return &InMemoryEventPublisher{
		logger: logger,
		events: make([]interface{}, 0),
	}
}

func (p *InMemoryEventPublisher) Publish(ctx context.Context, event interface{}) error {
	p.events = append(p.events, event)
	p.logger.Info("Event published (in-memory)", zap.Any("event", event))
	return nil
}

// Events returns everything published so far
func (p *InMemoryEventPublisher) Events() []interface{} {
	return p.events
}
