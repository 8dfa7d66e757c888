package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventQueueOrdersByTime(t *testing.T) {
	eq := NewEventQueue()
	base := time.Date(2024, 6, 3, 8, 0, 0, 0, time.UTC)

	eq.Enqueue(&Event{Time: base.Add(2 * time.Second), Type: EventSpawnCheck})
	eq.Enqueue(&Event{Time: base, Type: EventDayStarted})
	eq.Enqueue(&Event{Time: base.Add(time.Second), Type: EventToggleFastForward})

	require.Equal(t, 3, eq.Len())
	assert.Equal(t, EventDayStarted, eq.Dequeue().Type)
	assert.Equal(t, EventToggleFastForward, eq.Dequeue().Type)
	assert.Equal(t, EventSpawnCheck, eq.Dequeue().Type)
	assert.True(t, eq.IsEmpty())
}

func TestEventQueuePeekDoesNotRemove(t *testing.T) {
	eq := NewEventQueue()
	eq.Enqueue(&Event{Time: time.Now(), Type: EventSpawnCheck})

	assert.NotNil(t, eq.Peek())
	assert.Equal(t, 1, eq.Len())
}

func TestEventQueueEmptyBehaviour(t *testing.T) {
	eq := NewEventQueue()

	assert.Nil(t, eq.Dequeue())
	assert.Nil(t, eq.Peek())
	assert.True(t, eq.IsEmpty())
}
