package feed

import (
	"log"
	"sync"

	"FormRelay_LandingProject/internal/models"
)

const subscriberBuffer = 16

// Broadcaster fans accepted submissions out to live feed subscribers.
// A subscriber whose buffer is full misses the event; the feed is a
// convenience view, not a delivery guarantee.
type Broadcaster struct {
	mu          sync.Mutex
	subscribers map[chan models.Submission]struct{}
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[chan models.Submission]struct{}),
	}
}

// Subscribe registers a new feed subscriber. The returned cancel
// function removes the subscription and closes the channel.
func (b *Broadcaster) Subscribe() (<-chan models.Submission, func()) {
	ch := make(chan models.Submission, subscriberBuffer)

	b.mu.Lock()
	b.subscribers[ch] = struct{}{}
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		if _, ok := b.subscribers[ch]; ok {
			delete(b.subscribers, ch)
			close(ch)
		}
		b.mu.Unlock()
	}
	return ch, cancel
}

// Publish delivers the submission to every current subscriber.
func (b *Broadcaster) Publish(record models.Submission) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for ch := range b.subscribers {
		select {
		case ch <- record:
		default:
			log.Printf("Broadcaster.Publish(): dropping event %s for slow subscriber", record.ID)
		}
	}
}

// SubscriberCount reports how many feed clients are connected.
func (b *Broadcaster) SubscriberCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subscribers)
}
