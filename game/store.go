package game

// Handle is a stable reference to an entity in a Store. A handle whose entity
// was compacted away no longer resolves, even if its slot is reused.
type Handle struct {
	index uint32
	gen   uint32
}

// Valid reports whether h was ever issued by a Store.
func (h Handle) Valid() bool {
	return h.gen != 0
}

type slot struct {
	entity *Entity
	gen    uint32
}

// Store owns every live entity. Each kind has its own ordered collection.
// Killing only marks an entity; Compact removes marked entities at the end of
// a frame, so loops over a collection can kill freely.
type Store struct {
	slots []slot
	free  []uint32
	lists [kindCount][]Handle
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{slots: make([]slot, 0, 256)}
}

// Insert adds e to the collection for its kind and returns its handle.
func (s *Store) Insert(e *Entity) Handle {
	var idx uint32
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		idx = uint32(len(s.slots))
		s.slots = append(s.slots, slot{})
	}
	sl := &s.slots[idx]
	sl.gen++
	sl.entity = e

	h := Handle{index: idx, gen: sl.gen}
	e.handle = h
	s.lists[e.Kind] = append(s.lists[e.Kind], h)
	return h
}

// Get resolves h. Dead entities still resolve until compaction.
func (s *Store) Get(h Handle) (*Entity, bool) {
	if !h.Valid() || int(h.index) >= len(s.slots) {
		return nil, false
	}
	sl := s.slots[h.index]
	if sl.gen != h.gen || sl.entity == nil {
		return nil, false
	}
	return sl.entity, true
}

// Snapshot returns the live entities of kind in insertion order.
func (s *Store) Snapshot(kind Kind) []*Entity {
	list := s.lists[kind]
	out := make([]*Entity, 0, len(list))
	for _, h := range list {
		if e, ok := s.Get(h); ok && !e.dead {
			out = append(out, e)
		}
	}
	return out
}

// Each calls fn for every live entity of kind. The collection is snapshotted
// first: entities inserted by fn are not visited, entities killed by fn are
// skipped if not yet visited.
func (s *Store) Each(kind Kind, fn func(*Entity)) {
	for _, e := range s.Snapshot(kind) {
		if e.dead {
			continue
		}
		fn(e)
	}
}

// Count returns the number of live entities of kind.
func (s *Store) Count(kind Kind) int {
	n := 0
	for _, h := range s.lists[kind] {
		if e, ok := s.Get(h); ok && !e.dead {
			n++
		}
	}
	return n
}

// Len returns the number of entities held, dead or alive.
func (s *Store) Len() int {
	return len(s.slots) - len(s.free)
}

// Compact drops dead entities from their collections and frees their slots.
// onRemove, if set, sees each entity before its handle goes stale.
func (s *Store) Compact(onRemove func(*Entity)) {
	for k := range s.lists {
		list := s.lists[k]
		kept := list[:0]
		for _, h := range list {
			e, ok := s.Get(h)
			if !ok {
				continue
			}
			if !e.dead {
				kept = append(kept, h)
				continue
			}
			if onRemove != nil {
				onRemove(e)
			}
			s.slots[h.index].entity = nil
			s.free = append(s.free, h.index)
		}
		clear(list[len(kept):])
		s.lists[k] = kept
	}
}

// Clear removes every entity. Handles issued before Clear never resolve again.
func (s *Store) Clear() {
	for i := range s.slots {
		if s.slots[i].entity != nil {
			s.slots[i].entity = nil
			s.free = append(s.free, uint32(i))
		}
	}
	for k := range s.lists {
		s.lists[k] = s.lists[k][:0]
	}
}
