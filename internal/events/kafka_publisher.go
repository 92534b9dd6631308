package events

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"pos-service/internal/config"

	"github.com/IBM/sarama"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// KafkaEventPublisher implements EventPublisher using Kafka
type KafkaEventPublisher struct {
	producer sarama.SyncProducer
	logger   *zap.Logger
	config   *config.Config
}

// NewKafkaEventPublisher creates a new Kafka event publisher
func NewKafkaEventPublisher(cfg *config.Config, logger *zap.Logger) (*KafkaEventPublisher, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Retry.Max = cfg.KafkaRetries
	saramaConfig.Producer.Idempotent = true
	saramaConfig.Net.MaxOpenRequests = 1

	switch cfg.KafkaAcks {
	case "0":
		saramaConfig.Producer.RequiredAcks = sarama.NoResponse
	case "1":
		saramaConfig.Producer.RequiredAcks = sarama.WaitForLocal
	default:
		saramaConfig.Producer.RequiredAcks = sarama.WaitForAll
	}

	producer, err := sarama.NewSyncProducer(cfg.KafkaBrokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &KafkaEventPublisher{
		producer: producer,
		logger:   logger,
		config:   cfg,
	}, nil
}

// Publish publishes an event to the topic matching its type
func (p *KafkaEventPublisher) Publish(ctx context.Context, event interface{}) error {
	topic, err := p.getTopicForEvent(event)
	if err != nil {
		return fmt.Errorf("failed to determine topic: %w", err)
	}

	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.ByteEncoder(eventJSON),
		Headers: []sarama.RecordHeader{
			{
				Key:   []byte("event-type"),
				Value: []byte(p.getEventType(event)),
			},
			{
				Key:   []byte("event-id"),
				Value: []byte(uuid.New().String()),
			},
			{
				Key:   []byte("timestamp"),
				Value: []byte(time.Now().UTC().Format(time.RFC3339)),
			},
		},
	}

	if partitionKey := p.getPartitionKey(event); partitionKey != "" {
		message.Key = sarama.StringEncoder(partitionKey)
	}

	select {
	case <-ctx.Done():
		return fmt.Errorf("context cancelled: %w", ctx.Err())
	default:
	}

	partition, offset, err := p.producer.SendMessage(message)
	if err != nil {
		return fmt.Errorf("failed to publish event to Kafka: %w", err)
	}

	p.logger.Info("Event published to Kafka",
		zap.String("topic", topic),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset),
		zap.String("event-type", p.getEventType(event)),
	)
	return nil
}

// Close closes the Kafka producer
func (p *KafkaEventPublisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}

// getTopicForEvent determines the Kafka topic based on event type
func (p *KafkaEventPublisher) getTopicForEvent(event interface{}) (string, error) {
	switch event.(type) {
	case InvoiceCreatedEvent:
		return p.config.KafkaTopicInvoices, nil
	case StockReducedEvent:
		return p.config.KafkaTopicStock, nil
	default:
		return "", fmt.Errorf("unknown event type: %T", event)
	}
}

// getEventType returns the event type as string
func (p *KafkaEventPublisher) getEventType(event interface{}) string {
	switch event.(type) {
	case InvoiceCreatedEvent:
		return "InvoiceCreated"
	case StockReducedEvent:
		return "StockReduced"
	default:
		return "Unknown"
	}
}

// getPartitionKey returns the partition key for the event so all events for
// one invoice or product land on the same partition
func (p *KafkaEventPublisher) getPartitionKey(event interface{}) string {
	switch e := event.(type) {
	case InvoiceCreatedEvent:
		return strconv.Itoa(e.InvoiceID)
	case StockReducedEvent:
		return strconv.Itoa(e.ProductID)
	}
	return ""
}
