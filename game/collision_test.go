package game

import "testing"

type collisionFixture struct {
	store *Store
	cs    *CollisionSystem
	calls int
}

func newCollisionFixture() *collisionFixture {
	store := NewStore()
	return &collisionFixture{
		store: store,
		cs:    NewCollisionSystem(store, Rect{W: 200, H: 200}, 16, 16),
	}
}

func (f *collisionFixture) add(kind Kind, pos Vec2) *Entity {
	e := NewEntity(kind, kind.String(), pos, V(10, 10), 0, nil)
	f.store.Insert(e)
	f.cs.Add(e)
	return e
}

func (f *collisionFixture) move(e *Entity, pos Vec2) {
	e.Pos = pos
	f.cs.Sync(e)
}

func (f *collisionFixture) handle(a, b *Entity) {
	f.calls++
}

func TestCollisionFiresOncePerEpisode(t *testing.T) {
	f := newCollisionFixture()
	a := f.add(KindProjectile, V(10, 10))
	b := f.add(KindAsteroid, V(15, 15))

	f.cs.Check(a, f.handle, KindAsteroid)
	if f.calls != 1 {
		t.Fatalf("calls = %d after first overlap, want 1", f.calls)
	}
	if !a.Touching(b) || !b.Touching(a) {
		t.Error("contact memory not symmetric after a new overlap")
	}

	f.cs.Check(a, f.handle, KindAsteroid)
	f.cs.Check(a, f.handle, KindAsteroid)
	if f.calls != 1 {
		t.Errorf("calls = %d while overlap persists, want 1", f.calls)
	}

	f.move(b, V(100, 100))
	f.cs.Check(a, f.handle, KindAsteroid)
	if a.Touching(b) || b.Touching(a) {
		t.Error("contact memory kept after separation")
	}

	f.move(b, V(12, 12))
	f.cs.Check(a, f.handle, KindAsteroid)
	if f.calls != 2 {
		t.Errorf("calls = %d after re-entry, want 2", f.calls)
	}
}

func TestCollisionSharedEdgeIsNotOverlap(t *testing.T) {
	f := newCollisionFixture()
	a := f.add(KindProjectile, V(10, 10))
	f.add(KindAsteroid, V(20, 10))

	f.cs.Check(a, f.handle, KindAsteroid)
	if f.calls != 0 {
		t.Errorf("calls = %d for edge contact, want 0", f.calls)
	}
}

func TestCollisionIgnoresDeadEntities(t *testing.T) {
	f := newCollisionFixture()
	a := f.add(KindProjectile, V(10, 10))
	b := f.add(KindAsteroid, V(15, 15))

	b.Kill()
	f.cs.Check(a, f.handle, KindAsteroid)
	if f.calls != 0 {
		t.Errorf("calls = %d with a dead partner, want 0", f.calls)
	}

	c := f.add(KindAsteroid, V(12, 12))
	a.Kill()
	f.cs.Check(a, f.handle, KindAsteroid)
	if f.calls != 0 || c.Touching(a) {
		t.Error("dead entity triggered a collision")
	}
}

func TestCollisionOnlyForgetsCheckedKinds(t *testing.T) {
	f := newCollisionFixture()
	a := f.add(KindPlayer, V(50, 50))
	ufo := f.add(KindUFO, V(55, 55))

	f.cs.Check(a, f.handle, KindUFO)
	f.move(ufo, V(150, 150))

	f.cs.Check(a, f.handle, KindAsteroid)
	if !a.Touching(ufo) {
		t.Error("contact with an unchecked kind was forgotten")
	}
	f.cs.Check(a, f.handle, KindUFO)
	if a.Touching(ufo) {
		t.Error("contact kept after checking its kind")
	}
}

func TestCollisionRemovePurgesPartners(t *testing.T) {
	f := newCollisionFixture()
	a := f.add(KindProjectile, V(10, 10))
	b := f.add(KindAsteroid, V(15, 15))

	f.cs.Check(a, f.handle, KindAsteroid)
	f.cs.Remove(b)
	if a.Touching(b) {
		t.Error("partner still remembers a removed entity")
	}
	if got := f.cs.Overlapping(a, KindAsteroid); len(got) != 0 {
		t.Errorf("Overlapping after Remove = %d entities, want 0", len(got))
	}
}

func TestOverlappingOrderedByHandle(t *testing.T) {
	f := newCollisionFixture()
	a := f.add(KindPlayer, V(50, 50))
	first := f.add(KindAsteroid, V(52, 52))
	second := f.add(KindUFO, V(54, 54))
	third := f.add(KindAsteroid, V(56, 56))

	got := f.cs.Overlapping(a, KindUFO, KindAsteroid)
	want := []*Entity{first, second, third}
	if len(got) != len(want) {
		t.Fatalf("Overlapping = %d entities, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Overlapping[%d] = %v, want %v", i, got[i].Handle(), want[i].Handle())
		}
	}
}

func TestHandleCollisionRunsBothHooks(t *testing.T) {
	w := newTestWorld(t, testConfig())
	p := w.Player()
	a := placeAsteroid(w, p.Center())

	w.Step(InputSnapshot{}, frameDT)

	if want := w.cfg.Player.Health - GetEnemyConfig(KindAsteroid).ContactDamage; p.Health != want {
		t.Errorf("player Health = %d, want %d", p.Health, want)
	}
	if !a.Dead() {
		t.Error("asteroid survived ramming the player")
	}
}
