// Package live maintains per-client in-memory views of the currently
// visible reports and alerts, reconciled incrementally from change events
// instead of reloading on every update.
package live

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ryanfaricy/wherearethey-sub001/internal/geo"
)

// Entity is the per-kind configuration of a Projection: how to identify a
// snapshot, read its deletion mark and locate it. One generic projection
// plus these three funcs replaces a per-entity-type hierarchy.
type Entity[T any] struct {
	ID        func(T) uuid.UUID
	DeletedAt func(T) *time.Time
	Coords    func(T) (lat, lng float64)
}

// Projection is an ordered-by-recency, id-keyed set of entity snapshots
// belonging to one connected client. Applying a change can race with a
// render reading the set, so every access goes through the mutex. The
// projection itself is never shared between clients.
type Projection[T any] struct {
	mu             sync.Mutex
	order          []uuid.UUID
	items          map[uuid.UUID]T
	includeDeleted bool
	cfg            Entity[T]
}

func NewProjection[T any](cfg Entity[T], includeDeleted bool) *Projection[T] {
	return &Projection[T]{
		items:          make(map[uuid.UUID]T),
		includeDeleted: includeDeleted,
		cfg:            cfg,
	}
}

// Load replaces the tracked set with a snapshot read straight from the
// store, most recent first. Used on connect, before event application.
func (p *Projection[T]) Load(items []T) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.order = p.order[:0]
	p.items = make(map[uuid.UUID]T, len(items))
	for _, it := range items {
		id := p.cfg.ID(it)
		p.order = append(p.order, id)
		p.items[id] = it
	}
}

// ApplyAdded inserts at the front unless the id is already tracked.
func (p *Projection[T]) ApplyAdded(it T) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.cfg.ID(it)
	if _, ok := p.items[id]; ok {
		return
	}
	p.order = append([]uuid.UUID{id}, p.order...)
	p.items[id] = it
}

// ApplyUpdated replaces the tracked snapshot by id. An id that is not
// currently tracked is inserted as new; it may have been excluded by an
// earlier page or filter boundary.
func (p *Projection[T]) ApplyUpdated(it T) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.cfg.ID(it)
	if _, ok := p.items[id]; ok {
		p.items[id] = it
		return
	}
	p.order = append([]uuid.UUID{id}, p.order...)
	p.items[id] = it
}

// ApplyDeleted removes the entry for non-admin projections. Admin
// projections retain the entry so deleted items stay visible with their
// deletion mark; the matching Updated event is expected to have already
// stored the copy carrying DeletedAt.
func (p *Projection[T]) ApplyDeleted(id uuid.UUID) {
	if p.includeDeleted {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.items[id]; !ok {
		return
	}
	delete(p.items, id)
	for i, oid := range p.order {
		if oid == id {
			p.order = append(p.order[:i:i], p.order[i+1:]...)
			break
		}
	}
}

// Items returns the visible snapshots in recency order.
func (p *Projection[T]) Items() []T {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]T, 0, len(p.order))
	for _, id := range p.order {
		if it, ok := p.items[id]; ok {
			out = append(out, it)
		}
	}
	return out
}

// Get returns the tracked snapshot for id, if any.
func (p *Projection[T]) Get(id uuid.UUID) (T, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	it, ok := p.items[id]
	return it, ok
}

func (p *Projection[T]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.items)
}

// FindNearby returns tracked snapshots within radiusKm of the given
// point, linear scan in recency order.
func (p *Projection[T]) FindNearby(lat, lng, radiusKm float64) []T {
	p.mu.Lock()
	defer p.mu.Unlock()

	var out []T
	for _, id := range p.order {
		it, ok := p.items[id]
		if !ok {
			continue
		}
		ilat, ilng := p.cfg.Coords(it)
		if geo.DistanceKM(lat, lng, ilat, ilng) <= radiusKm {
			out = append(out, it)
		}
	}
	return out
}
