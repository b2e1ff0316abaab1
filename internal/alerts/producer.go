package alerts

import (
	"context"
	"fmt"
	"time"

	"github.com/IBM/sarama"
)

// EventProducer publishes alert events for downstream consumers (paging,
// dashboards, audit). Persisting the alert never depends on it: publishing is
// best effort on top of the database write.
type EventProducer interface {
	Publish(ctx context.Context, event *Event) error
	Close() error
}

type ProducerConfig struct {
	Brokers          []string
	Topic            string
	RetryMax         int
	Timeout          time.Duration
	RequiredAcks     sarama.RequiredAcks
	Compression      sarama.CompressionCodec
	IdempotentWrites bool
}

func DefaultProducerConfig(brokers []string, topic string) *ProducerConfig {
	return &ProducerConfig{
		Brokers:          brokers,
		Topic:            topic,
		RetryMax:         3,
		Timeout:          10 * time.Second,
		RequiredAcks:     sarama.WaitForAll,
		Compression:      sarama.CompressionSnappy,
		IdempotentWrites: true,
	}
}

type kafkaEventProducer struct {
	producer sarama.SyncProducer
	config   *ProducerConfig
}

func NewKafkaEventProducer(config *ProducerConfig) (EventProducer, error) {
	saramaConfig := sarama.NewConfig()
	saramaConfig.Producer.Return.Successes = true
	saramaConfig.Producer.Return.Errors = true
	saramaConfig.Producer.RequiredAcks = config.RequiredAcks
	saramaConfig.Producer.Compression = config.Compression
	saramaConfig.Producer.Retry.Max = config.RetryMax
	saramaConfig.Producer.Timeout = config.Timeout
	saramaConfig.Producer.Idempotent = config.IdempotentWrites
	if config.IdempotentWrites {
		saramaConfig.Net.MaxOpenRequests = 1
	}

	// Hash partitioner keeps each hospital's alerts on one partition.
	saramaConfig.Producer.Partitioner = sarama.NewHashPartitioner

	producer, err := sarama.NewSyncProducer(config.Brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}

	return &kafkaEventProducer{producer: producer, config: config}, nil
}

func (p *kafkaEventProducer) Publish(ctx context.Context, event *Event) error {
	messageBytes, err := event.ToJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal alert event: %w", err)
	}

	message := &sarama.ProducerMessage{
		Topic:     p.config.Topic,
		Key:       sarama.StringEncoder(event.PartitionKey()),
		Value:     sarama.ByteEncoder(messageBytes),
		Timestamp: event.CreatedAt,
		Headers: []sarama.RecordHeader{
			{Key: []byte("kind"), Value: []byte(event.Kind)},
		},
	}

	if _, _, err := p.producer.SendMessage(message); err != nil {
		return fmt.Errorf("failed to publish alert event: %w", err)
	}
	return nil
}

func (p *kafkaEventProducer) Close() error {
	return p.producer.Close()
}
