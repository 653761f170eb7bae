package events

import (
	"time"

	"github.com/google/uuid"
)

// DomainEvent is the contract every published event satisfies. The aggregate
// ID doubles as the partitioning key on the wire, so it is carried as a
// string rather than a typed identifier.
type DomainEvent interface {
	EventID() uuid.UUID
	EventType() string
	AggregateID() string
	AggregateType() string
	OccurredAt() time.Time
	Payload() []byte
}

// BaseEvent carries the metadata common to all domain events. Embed it and
// add the event-specific fields on top.
type BaseEvent struct {
	id            uuid.UUID
	eventType     string
	aggregateID   string
	aggregateType string
	occurredAt    time.Time
	payload       []byte
}

// NewBaseEvent stamps a fresh event ID and occurrence time onto the given
// metadata. The payload is the serialized event body, opaque at this layer.
func NewBaseEvent(eventType, aggregateID, aggregateType string, payload []byte) BaseEvent {
	return BaseEvent{
		id:            uuid.New(),
		eventType:     eventType,
		aggregateID:   aggregateID,
		aggregateType: aggregateType,
		occurredAt:    time.Now().UTC(),
		payload:       payload,
	}
}

// EventID returns the unique identifier of this event instance.
func (e BaseEvent) EventID() uuid.UUID {
	return e.id
}

// EventType returns the dotted event type name.
func (e BaseEvent) EventType() string {
	return e.eventType
}

// AggregateID returns the identifier of the aggregate that emitted the event.
func (e BaseEvent) AggregateID() string {
	return e.aggregateID
}

// AggregateType returns the kind of aggregate that emitted the event.
func (e BaseEvent) AggregateType() string {
	return e.aggregateType
}

// OccurredAt returns when the event was emitted.
func (e BaseEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// Payload returns the serialized event body.
func (e BaseEvent) Payload() []byte {
	return e.payload
}
