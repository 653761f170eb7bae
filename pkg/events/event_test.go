package events

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewBaseEvent(t *testing.T) {
	aggregateID := uuid.NewString()
	payload := []byte(`{"risk_level":"HIGH"}`)

	evt := NewBaseEvent("analytics.prediction.completed", aggregateID, "Prediction", payload)

	assert.NotEqual(t, uuid.Nil, evt.EventID())
	assert.Equal(t, "analytics.prediction.completed", evt.EventType())
	assert.Equal(t, aggregateID, evt.AggregateID())
	assert.Equal(t, "Prediction", evt.AggregateType())
	assert.Equal(t, payload, evt.Payload())
	assert.WithinDuration(t, time.Now().UTC(), evt.OccurredAt(), time.Second)
}

func TestBaseEventImplementsDomainEvent(t *testing.T) {
	var _ DomainEvent = BaseEvent{}
}
