package game

import (
	"slices"

	"github.com/solarlune/resolv"
)

// CollisionSystem tracks dynamic entity overlap. Broadphase is a resolv space;
// the narrowphase is an exact rectangle test. Each entity remembers the
// handles it currently touches so handlers fire once per contact episode.
type CollisionSystem struct {
	space  *resolv.Space
	offset float64
	store  *Store
}

// NewCollisionSystem creates a broadphase covering bounds plus margin on every side.
func NewCollisionSystem(store *Store, bounds Rect, margin float64, cellSize int) *CollisionSystem {
	w := int(bounds.W + 2*margin)
	h := int(bounds.H + 2*margin)
	return &CollisionSystem{
		space:  resolv.NewSpace(w, h, cellSize, cellSize),
		offset: margin,
		store:  store,
	}
}

// Add registers e in the broadphase.
func (c *CollisionSystem) Add(e *Entity) {
	obj := resolv.NewObject(e.Pos.X+c.offset, e.Pos.Y+c.offset, e.Size.X, e.Size.Y, e.Kind.String())
	obj.Data = e
	e.body = obj
	c.space.Add(obj)
}

// Remove drops e from the broadphase and from every partner's contact memory.
func (c *CollisionSystem) Remove(e *Entity) {
	if e.body != nil {
		c.space.Remove(e.body)
		e.body = nil
	}
	for h := range e.contacts {
		if other, ok := c.store.Get(h); ok {
			delete(other.contacts, e.handle)
		}
	}
	clear(e.contacts)
}

// Sync moves e's broadphase object to its current transform.
func (c *CollisionSystem) Sync(e *Entity) {
	if e.body == nil {
		return
	}
	e.body.X = e.Pos.X + c.offset
	e.body.Y = e.Pos.Y + c.offset
	e.body.W = e.Size.X
	e.body.H = e.Size.Y
	e.body.Update()
}

// Overlapping returns the live entities of the given kinds whose rectangles
// overlap e, ordered by handle.
func (c *CollisionSystem) Overlapping(e *Entity, kinds ...Kind) []*Entity {
	if e.body == nil {
		return nil
	}
	r := e.Rect()
	var out []*Entity
	for _, k := range kinds {
		hit := e.body.Check(0, 0, k.String())
		if hit == nil {
			continue
		}
		for _, obj := range hit.Objects {
			other, ok := obj.Data.(*Entity)
			if !ok || other == e || other.dead || other.Kind != k {
				continue
			}
			if r.Intersects(other.Rect()) && !slices.Contains(out, other) {
				out = append(out, other)
			}
		}
	}
	slices.SortFunc(out, func(a, b *Entity) int {
		return int(a.handle.index) - int(b.handle.index)
	})
	return out
}

// Check compares e against the given kinds. New overlaps call handle once for
// the pair and enter both contact memories; overlaps that ended are forgotten
// on both sides. Dead entities neither trigger nor receive handlers.
func (c *CollisionSystem) Check(e *Entity, handle func(a, b *Entity), kinds ...Kind) {
	if e.dead {
		return
	}
	touching := c.Overlapping(e, kinds...)

	for h := range e.contacts {
		other, ok := c.store.Get(h)
		if !ok {
			delete(e.contacts, h)
			continue
		}
		if !slices.Contains(kinds, other.Kind) {
			continue
		}
		if !slices.Contains(touching, other) {
			delete(e.contacts, h)
			delete(other.contacts, e.handle)
		}
	}

	for _, other := range touching {
		if e.dead {
			return
		}
		if other.dead || e.Touching(other) {
			continue
		}
		e.contacts[other.handle] = struct{}{}
		other.contacts[e.handle] = struct{}{}
		handle(e, other)
	}
}

// forgetContacts ends e's contact episodes with entities of kind, so pairs
// that still overlap are handled again on the next pass.
func (e *Entity) forgetContacts(w *World, kind Kind) {
	for h := range e.contacts {
		if o, ok := w.Get(h); ok && o.Kind == kind {
			delete(e.contacts, h)
			delete(o.contacts, e.handle)
		}
	}
}
