// Package legacy propagates committed store changes to the legacy store
// manager over Kafka. Delivery is best-effort and at-most-once: the publisher
// is invoked after the owning transaction has committed, and its errors are
// logged by the caller, never propagated.
package legacy

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"fulfilment/internal/core/domain/model/store"
	"fulfilment/internal/core/ports"

	"github.com/IBM/sarama"
)

// storeEventMessage is the wire format consumed by the legacy store manager.
type storeEventMessage struct {
	StoreID                 string `json:"storeId"`
	Name                    string `json:"name"`
	QuantityProductsInStock int    `json:"quantityProductsInStock"`
	EventType               string `json:"eventType"`
}

// KafkaStoreEventPublisher publishes store change events to a Kafka topic.
type KafkaStoreEventPublisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   *slog.Logger
}

// NewKafkaStoreEventPublisher creates a publisher connected to the given brokers.
func NewKafkaStoreEventPublisher(brokers []string, topic string) (*KafkaStoreEventPublisher, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 3
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}

	return &KafkaStoreEventPublisher{
		producer: producer,
		topic:    topic,
		logger:   slog.With("component", "store-event-publisher"),
	}, nil
}

// Publish sends the store change event to the legacy topic, keyed by store
// identifier so events for one store stay ordered within a partition.
func (p *KafkaStoreEventPublisher) Publish(_ context.Context, event store.Event) error {
	payload, err := json.Marshal(storeEventMessage{
		StoreID:                 event.Store().ID().String(),
		Name:                    event.Store().Name(),
		QuantityProductsInStock: event.Store().QuantityProductsInStock(),
		EventType:               string(event.Type()),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal store event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic:     p.topic,
		Key:       sarama.StringEncoder(event.Store().ID().String()),
		Value:     sarama.ByteEncoder(payload),
		Timestamp: time.Now(),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to send store event: %w", err)
	}

	p.logger.Debug("store event sent",
		"topic", p.topic,
		"storeId", event.Store().ID().String(),
		"eventType", string(event.Type()),
		"partition", partition,
		"offset", offset,
	)

	return nil
}

// Close shuts the underlying producer down.
func (p *KafkaStoreEventPublisher) Close() error {
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("failed to close kafka producer: %w", err)
	}
	return nil
}

var _ ports.StoreEventPublisher = (*KafkaStoreEventPublisher)(nil)
