package port

import (
	"context"

	"github.com/Beckdotan/BuildingsRiskAssesment/pkg/events"
)

// EventPublisher defines the port for publishing domain events.
type EventPublisher interface {
	// Publish sends one or more domain events to the messaging
	// infrastructure.
	Publish(ctx context.Context, events ...events.DomainEvent) error
}
