// Package events fans ledger events out to live subscribers such as the
// explorer websocket feed.
package events

import (
	"sync"

	"github.com/and161185/ijazah-ledger/internal/model"
)

// Broker delivers published events to every subscriber. Slow subscribers
// drop events rather than stalling writers.
type Broker struct {
	mu     sync.Mutex
	subs   map[chan model.LedgerEvent]struct{}
	buf    int
	closed bool
}

// NewBroker creates a broker whose subscriber channels hold buf events.
func NewBroker(buf int) *Broker {
	if buf <= 0 {
		buf = 16
	}
	return &Broker{subs: make(map[chan model.LedgerEvent]struct{}), buf: buf}
}

// Publish hands ev to each subscriber without blocking.
func (b *Broker) Publish(ev model.LedgerEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Subscribe registers a new subscriber. The returned cancel func is idempotent
// and closes the channel.
func (b *Broker) Subscribe() (<-chan model.LedgerEvent, func()) {
	ch := make(chan model.LedgerEvent, b.buf)

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(ch)
		return ch, func() {}
	}
	b.subs[ch] = struct{}{}

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if _, ok := b.subs[ch]; ok {
				delete(b.subs, ch)
				close(ch)
			}
		})
	}
}

// Subscribers returns the number of live subscriptions.
func (b *Broker) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Close ends all subscriptions. Later publishes are dropped.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for ch := range b.subs {
		delete(b.subs, ch)
		close(ch)
	}
}
