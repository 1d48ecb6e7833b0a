package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("services")

// Event kinds published to the order-events topic.
const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

// OrderEvent is the JSON payload pushed to Kafka when an order changes.
type OrderEvent struct {
	Kind      string    `json:"kind"`
	OrderID   uint      `json:"order_id"`
	UserID    uint      `json:"user_id"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// IEventService defines the interface for publishing order events.
type IEventService interface {
	PublishOrderEvent(event OrderEvent) error
}

// KafkaEventService implements IEventService using a Sarama sync producer.
type KafkaEventService struct {
	producer sarama.SyncProducer
	topic    string
}

// NewKafkaEventService creates a producer connected to the given brokers.
func NewKafkaEventService(brokers []string, topic string) (IEventService, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second

	producer, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, fmt.Errorf("failed to start Sarama producer: %w", err)
	}

	log.Info("Kafka producer connected")
	return &KafkaEventService{producer: producer, topic: topic}, nil
}

// PublishOrderEvent sends one event to the configured topic.
func (s *KafkaEventService) PublishOrderEvent(event OrderEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(fmt.Sprintf("%d", event.OrderID)),
		Value: sarama.ByteEncoder(payload),
	}

	partition, offset, err := s.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to send order event: %w", err)
	}
	log.Debugf("order event %s sent to %s partition %d offset %d", event.Kind, s.topic, partition, offset)
	return nil
}

// NoopEventService is used when Kafka is disabled in the configuration.
type NoopEventService struct{}

// NewNoopEventService creates an event service that drops every event.
func NewNoopEventService() IEventService {
	return &NoopEventService{}
}

func (s *NoopEventService) PublishOrderEvent(event OrderEvent) error {
	return nil
}
