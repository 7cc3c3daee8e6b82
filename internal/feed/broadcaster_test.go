package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"FormRelay_LandingProject/internal/models"
)

func TestPublishReachesAllSubscribers(t *testing.T) {
	b := NewBroadcaster()
	first, cancelFirst := b.Subscribe()
	second, cancelSecond := b.Subscribe()
	defer cancelFirst()
	defer cancelSecond()

	b.Publish(models.Submission{ID: "event-1"})

	assert.Equal(t, "event-1", (<-first).ID)
	assert.Equal(t, "event-1", (<-second).ID)
}

func TestCancelRemovesSubscriber(t *testing.T) {
	b := NewBroadcaster()
	events, cancel := b.Subscribe()
	require.Equal(t, 1, b.SubscriberCount())

	cancel()
	assert.Equal(t, 0, b.SubscriberCount())

	_, open := <-events
	assert.False(t, open)

	// second cancel is a no-op
	cancel()
}

func TestPublishDoesNotBlockOnSlowSubscriber(t *testing.T) {
	b := NewBroadcaster()
	events, cancel := b.Subscribe()
	defer cancel()

	// fill the buffer and keep going; the extra events are dropped
	for i := 0; i < subscriberBuffer+5; i++ {
		b.Publish(models.Submission{ID: "evt"})
	}

	received := 0
	for len(events) > 0 {
		<-events
		received++
	}
	assert.Equal(t, subscriberBuffer, received)
}
