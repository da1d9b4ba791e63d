// Package messaging publishes click telemetry to Kafka. Delivery is
// fire-and-forget from the caller's point of view: publish failures are
// logged and dropped, never surfaced.
package messaging

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"

	"github.com/vistream/discovery/internal/config"
)

const (
	ClickKindRecommendation = "recommendation"
	ClickKindSearch         = "search"
)

// ClickEvent is one tracked interaction with a surfaced item.
type ClickEvent struct {
	EventID   uuid.UUID `json:"event_id"`
	Kind      string    `json:"kind"`
	ItemID    string    `json:"item_id"`
	Query     string    `json:"query,omitempty"`
	Reason    string    `json:"reason,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// TelemetryBus writes click events to a single Kafka topic. A nil bus is
// valid and drops everything, which is how the engine runs without brokers.
type TelemetryBus struct {
	writer *kafka.Writer
	logger *logrus.Logger
}

// NewTelemetryBus returns nil when no brokers are configured.
func NewTelemetryBus(cfg *config.Config, logger *logrus.Logger) *TelemetryBus {
	if len(cfg.Kafka.Brokers) == 0 {
		logger.Info("No Kafka brokers configured, click telemetry disabled")
		return nil
	}

	return &TelemetryBus{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(cfg.Kafka.Brokers...),
			Topic:        cfg.Kafka.Topics.ClickEvents,
			Balancer:     &kafka.Hash{}, // key by item id
			RequiredAcks: kafka.RequireOne,
			Async:        true,
			BatchTimeout: 10 * time.Millisecond,
			BatchSize:    100,
		},
		logger: logger,
	}
}

// Publish enqueues one click event. Never returns an error to the caller.
func (b *TelemetryBus) Publish(ctx context.Context, event ClickEvent) {
	if b == nil {
		return
	}

	event.EventID = uuid.New()
	event.Timestamp = time.Now()

	data, err := json.Marshal(event)
	if err != nil {
		b.logger.WithError(err).Error("Failed to marshal click event")
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.ItemID),
		Value: data,
	}
	if err := b.writer.WriteMessages(ctx, msg); err != nil {
		b.logger.WithError(err).WithField("kind", event.Kind).Warn("Failed to publish click event")
	}
}

func (b *TelemetryBus) Close() error {
	if b == nil || b.writer == nil {
		return nil
	}
	return b.writer.Close()
}
