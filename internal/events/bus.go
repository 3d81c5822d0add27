// Package events is the process-wide change broadcast. Every successful
// mutation publishes one ChangeEvent; live views subscribe for the
// lifetime of their connection.
package events

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/ryanfaricy/wherearethey-sub001/internal/domain"
)

type Handler func(domain.ChangeEvent)

type subscriber struct {
	id     int64
	fn     Handler
	closed atomic.Bool
}

// Bus delivers events synchronously to subscribers in registration order.
// The subscriber list may be mutated concurrently with Publish; delivery
// iterates over a snapshot taken under the lock, so an unsubscribe during
// a publish never corrupts iteration. There is no history: a subscriber
// that joins after an event was published never sees it.
type Bus struct {
	mu     sync.Mutex
	subs   []*subscriber
	nextID int64
	logger *slog.Logger
}

func NewBus(logger *slog.Logger) *Bus {
	return &Bus{logger: logger}
}

// Subscription is the handle returned by Subscribe. Every subscriber must
// Close on disconnect to avoid unbounded growth of the subscriber list.
type Subscription struct {
	bus  *Bus
	sub  *subscriber
	once sync.Once
}

func (s *Subscription) Close() {
	s.once.Do(func() {
		s.sub.closed.Store(true)
		s.bus.remove(s.sub.id)
	})
}

func (b *Bus) Subscribe(fn Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	sub := &subscriber{id: b.nextID, fn: fn}
	b.subs = append(b.subs, sub)
	return &Subscription{bus: b, sub: sub}
}

func (b *Bus) remove(id int64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, s := range b.subs {
		if s.id == id {
			b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
			return
		}
	}
}

// Publish delivers ev to every currently registered subscriber. A panic in
// one subscriber is recovered and logged so it cannot break delivery to
// the others or abort the publisher.
func (b *Bus) Publish(ev domain.ChangeEvent) {
	b.mu.Lock()
	snapshot := make([]*subscriber, len(b.subs))
	copy(snapshot, b.subs)
	b.mu.Unlock()

	for _, s := range snapshot {
		if s.closed.Load() {
			continue
		}
		b.deliver(s, ev)
	}
}

func (b *Bus) deliver(s *subscriber, ev domain.ChangeEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event subscriber panicked",
				slog.Int64("subscriber_id", s.id),
				slog.String("entity", string(ev.Entity)),
				slog.String("change", string(ev.Change)),
				slog.Any("panic", r),
			)
		}
	}()
	s.fn(ev)
}
