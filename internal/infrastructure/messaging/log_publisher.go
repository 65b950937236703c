package messaging

import (
	"context"
	"log/slog"

	"github.com/Beckdotan/BuildingsRiskAssesment/pkg/events"
)

// LogPublisher implements port.EventPublisher by logging events
// instead of sending them. It is the default when no Kafka broker is
// configured, which keeps local development broker-free.
type LogPublisher struct {
	logger *slog.Logger
}

// NewLogPublisher creates a new log-only event publisher.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// Publish logs each domain event at debug level.
func (p *LogPublisher) Publish(ctx context.Context, domainEvents ...events.DomainEvent) error {
	for _, evt := range domainEvents {
		p.logger.DebugContext(ctx, "event (publishing disabled)",
			slog.String("event_type", evt.EventType()),
			slog.String("aggregate_id", evt.AggregateID().String()),
			slog.String("payload", string(evt.Payload())),
		)
	}
	return nil
}
