package events

import (
	"testing"
	"time"

	"pos-service/internal/config"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// The sync producer needs a live broker, so these tests cover the event
// type, topic and partition key mapping only.

func newTestPublisher() *KafkaEventPublisher {
	return &KafkaEventPublisher{
		logger: zap.NewNop(),
		config: &config.Config{
			KafkaTopicInvoices: "pos.invoices",
			KafkaTopicStock:    "pos.stock",
		},
	}
}

func TestKafkaEventPublisher_InvoiceCreatedEventMapping(t *testing.T) {
	publisher := newTestPublisher()
	event := InvoiceCreatedEvent{
		InvoiceID:  1001,
		CustomerID: 7,
		ItemCount:  1,
		Total:      decimal.RequireFromString("29.97"),
		OccurredAt: time.Now(),
	}

	assert.Equal(t, "InvoiceCreated", publisher.getEventType(event))

	topic, err := publisher.getTopicForEvent(event)
	assert.NoError(t, err)
	assert.Equal(t, "pos.invoices", topic)

	assert.Equal(t, "1001", publisher.getPartitionKey(event))
}

func TestKafkaEventPublisher_StockReducedEventMapping(t *testing.T) {
	publisher := newTestPublisher()
	event := StockReducedEvent{
		ProductID:  5,
		Quantity:   2,
		Remaining:  3,
		OccurredAt: time.Now(),
	}

	assert.Equal(t, "StockReduced", publisher.getEventType(event))

	topic, err := publisher.getTopicForEvent(event)
	assert.NoError(t, err)
	assert.Equal(t, "pos.stock", topic)

	assert.Equal(t, "5", publisher.getPartitionKey(event))
}

func TestKafkaEventPublisher_UnknownEventType(t *testing.T) {
	publisher := newTestPublisher()

	topic, err := publisher.getTopicForEvent("not an event")
	assert.Error(t, err)
	assert.Empty(t, topic)
	assert.Equal(t, "Unknown", publisher.getEventType("not an event"))
}
