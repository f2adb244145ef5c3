// Package kafka publishes and consumes site events.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"ai-solutions-go/internal/config"
	"ai-solutions-go/pkg/log"
	"ai-solutions-go/pkg/tasks"

	"github.com/segmentio/kafka-go"
)

// maxAttempts is the number of failed processing attempts after which a message is committed anyway.
const maxAttempts = 3

// retryBackoff is multiplied by the attempt number between in-place retries.
var retryBackoff = time.Second

// TaskProcessor handles one consumed event.
type TaskProcessor interface {
	Process(ctx context.Context, event tasks.Event) error
}

// AttemptCounter counts failed attempts per event key.
type AttemptCounter interface {
	Incr(ctx context.Context, key string) (int64, error)
	Clear(ctx context.Context, key string) error
}

// Producer writes site events to the configured topic.
type Producer struct {
	writer *kafka.Writer
}

// NewProducer creates a Producer.
func NewProducer(cfg config.KafkaConfig) *Producer {
	return &Producer{writer: &kafka.Writer{
		Addr:                   kafka.TCP(brokers(cfg.Brokers)...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}}
}

// Publish writes event keyed by kind and id so updates to one item stay ordered.
func (p *Producer) Publish(ctx context.Context, event tasks.Event) error {
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{Key: []byte(event.Key()), Value: value})
}

// Close flushes and closes the writer.
func (p *Producer) Close() error {
	return p.writer.Close()
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// StartConsumer reads events until ctx is cancelled. A failing message is retried in place before the
// reader moves on, and committed once it succeeds or has failed maxAttempts times. Attempts are
// counted in Redis, so a message redelivered after a restart keeps its earlier failures.
func StartConsumer(ctx context.Context, cfg config.KafkaConfig, processor TaskProcessor, attempts AttemptCounter) {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers(cfg.Brokers),
		Topic:    cfg.Topic,
		GroupID:  cfg.GroupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	log.Infof("Kafka consumer started on topic '%s'", cfg.Topic)
	consume(ctx, r, processor, attempts)
}

func consume(ctx context.Context, r messageReader, processor TaskProcessor, attempts AttemptCounter) {
	defer func() {
		if err := r.Close(); err != nil {
			log.Error("failed to close Kafka reader", err)
		}
	}()

	for {
		m, err := r.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				log.Info("Kafka consumer stopped")
				return
			}
			log.Error("failed to fetch Kafka message", err)
			return
		}
		handleMessage(ctx, r, m, processor, attempts)
	}
}

func handleMessage(ctx context.Context, r messageReader, m kafka.Message, processor TaskProcessor, attempts AttemptCounter) {
	var event tasks.Event
	if err := json.Unmarshal(m.Value, &event); err != nil {
		log.Errorf("malformed Kafka message at offset %d: %v", m.Offset, err)
		commit(ctx, r, m)
		return
	}

	for attempt := int64(1); ; attempt++ {
		err := processor.Process(ctx, event)
		if err == nil {
			_ = attempts.Clear(ctx, event.Key())
			commit(ctx, r, m)
			return
		}
		log.Warnw("failed to process site event", "key", event.Key(), "type", event.Type, "error", err)

		n, incErr := attempts.Incr(ctx, event.Key())
		if incErr != nil {
			log.Error("failed to count site event attempt", incErr)
			n = attempt
		}
		if n >= maxAttempts {
			log.Errorf("site event %s failed %d times, giving up", event.Key(), n)
			_ = attempts.Clear(ctx, event.Key())
			commit(ctx, r, m)
			return
		}

		select {
		case <-ctx.Done():
			// left uncommitted, the group redelivers it after a restart
			return
		case <-time.After(retryBackoff * time.Duration(n)):
		}
	}
}

func commit(ctx context.Context, r messageReader, m kafka.Message) {
	if err := r.CommitMessages(ctx, m); err != nil {
		log.Errorf("failed to commit Kafka offset %d: %v", m.Offset, err)
	}
}

func brokers(list string) []string {
	var out []string
	for _, b := range strings.Split(list, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

