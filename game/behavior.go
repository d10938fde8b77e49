package game

import "fmt"

// behavior holds the per-kind hooks. update runs once per frame for live
// entities, collide once per new contact with the partner, removed just before
// compaction drops the entity.
type behavior struct {
	update  func(w *World, e *Entity, dt float64)
	collide func(w *World, e, other *Entity)
	removed func(w *World, e *Entity)
}

var behaviors [kindCount]behavior

func init() {
	behaviors = [kindCount]behavior{
		KindPlayer:     {update: updatePlayer, collide: collidePlayer},
		KindProjectile: {update: updateProjectile, collide: collideProjectile},
		KindUFO:        {update: updateUFO, collide: collideUFO, removed: removedUFO},
		KindAsteroid:   {update: updateAsteroid, collide: collideAsteroid},
		KindArrow:      {update: updateArrow},
		KindExplosion:  {update: updateExplosion},
		KindItem:       {update: updateItem, removed: removedItem},
	}
}

// behaviorOf returns the hooks for k and panics on a kind outside the enum.
func behaviorOf(k Kind) *behavior {
	switch k {
	case KindPlayer, KindProjectile, KindUFO, KindAsteroid, KindArrow, KindExplosion, KindItem:
		return &behaviors[k]
	default:
		panic(fmt.Sprintf("game: no behavior for %s", k))
	}
}

// handleCollision runs the collide hook of both members of a new contact.
// Both hooks run even if the first one kills a member.
func (w *World) handleCollision(a, b *Entity) {
	if a.dead || b.dead {
		return
	}
	if h := behaviorOf(a.Kind).collide; h != nil {
		h(w, a, b)
	}
	if h := behaviorOf(b.Kind).collide; h != nil {
		h(w, b, a)
	}
}
