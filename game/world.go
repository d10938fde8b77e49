package game

import (
	"log"

	"github.com/google/uuid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

const (
	defaultDT     = 1.0 / 60
	maxDT         = 0.1
	wallThickness = 32.0
)

// RoundState is the gameplay state of the current round.
type RoundState int

const (
	Running RoundState = iota
	Paused
	GameOver
)

func (s RoundState) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	}
	return "unknown"
}

// Stats accumulates per-round counters.
type Stats struct {
	Score              int
	AsteroidsDestroyed int
	UFOsDestroyed      int
	ShotsFired         int
	DamageTaken        int
}

// World owns every simulated object of a round: the entity store, the
// collision space, particles, the event bus and the wave scheduler.
type World struct {
	cfg   Config
	anims AnimationProvider

	// Bounds is the playfield; entities are culled outside it plus the margin
	Bounds Rect
	walls  []Rect

	store      *Store
	collisions *CollisionSystem
	events     donburi.World
	rng        *Rand

	Particles *ParticleSystem
	Waves     *WaveSystem
	Stats     Stats
	State     RoundState

	// RunID identifies the round in log lines
	RunID string

	player Handle
	input  InputSnapshot
	shake  float64
	time   float64
}

// NewWorld creates a world and starts the first round.
func NewWorld(cfg Config, anims AnimationProvider) *World {
	w := &World{
		cfg:    cfg,
		anims:  anims,
		Bounds: Rect{W: cfg.World.Width, H: cfg.World.Height},
		rng:    NewRand(cfg.Seed),
	}
	w.walls = BoundaryWalls(w.Bounds, wallThickness)
	w.Reset()
	return w
}

// Reset clears the world and starts a fresh round with a new player and wave 0.
// Events still queued from the previous round are dropped.
func (w *World) Reset() {
	w.events = donburi.NewWorld()
	w.subscribeEvents()
	w.store = NewStore()
	w.collisions = NewCollisionSystem(w.store, w.Bounds, w.cfg.World.OutOfBoundsMargin, w.cfg.World.CellSize)
	w.Particles = NewParticleSystem(w.cfg.World.MaxParticles)
	w.Stats = Stats{}
	w.State = Running
	w.RunID = uuid.New().String()
	w.shake = 0
	w.time = 0

	p := w.NewPlayer(w.Bounds.Center())
	w.player = w.Insert(p)

	w.Waves = NewWaveSystem(w.cfg.Waves)
	w.Waves.Start(w)
	log.Printf("[%s] round started (seed %d)", w.RunID, w.rng.Seed())
}

// Config returns the configuration the world was built with.
func (w *World) Config() Config {
	return w.cfg
}

// Rand returns the world's random source.
func (w *World) Rand() *Rand {
	return w.rng
}

// Time returns simulated seconds since the round started.
func (w *World) Time() float64 {
	return w.time
}

// Insert adds e to the store and the collision space.
func (w *World) Insert(e *Entity) Handle {
	h := w.store.Insert(e)
	w.collisions.Add(e)
	return h
}

// Get resolves a handle.
func (w *World) Get(h Handle) (*Entity, bool) {
	return w.store.Get(h)
}

// Each visits the live entities of kind over a snapshot.
func (w *World) Each(kind Kind, fn func(*Entity)) {
	w.store.Each(kind, fn)
}

// Entities returns a snapshot of the live entities of kind.
func (w *World) Entities(kind Kind) []*Entity {
	return w.store.Snapshot(kind)
}

// Count returns the number of live entities of kind.
func (w *World) Count(kind Kind) int {
	return w.store.Count(kind)
}

// Player returns the player entity, or nil once it is gone.
func (w *World) Player() *Entity {
	e, ok := w.store.Get(w.player)
	if !ok {
		return nil
	}
	return e
}

// DamageEntity subtracts health from an enemy and destroys it at zero.
// UFOs are immune while their spawn grace lasts.
func (w *World) DamageEntity(e *Entity, amount int) {
	if e.dead || amount <= 0 {
		return
	}
	if e.Kind == KindUFO && e.UFO.Protected() {
		return
	}
	e.Health -= amount
	if e.Health <= 0 {
		w.destroyEnemy(e, true)
	}
}

// destroyEnemy kills an asteroid or UFO and announces it.
func (w *World) destroyEnemy(e *Entity, byPlayer bool) {
	if e.dead {
		return
	}
	e.Kill()
	EnemyDestroyedEvent.Publish(w.events, EnemyDestroyed{
		Kind:     e.Kind,
		Pos:      e.Center(),
		ByPlayer: byPlayer,
		Score:    GetEnemyConfig(e.Kind).Score,
	})
}

// RequestShake asks the window for at least amount pixels of screen shake.
func (w *World) RequestShake(amount float64) {
	w.shake = max(w.shake, amount)
}

// TakeShake returns and clears the pending shake request.
func (w *World) TakeShake() float64 {
	s := w.shake
	w.shake = 0
	return s
}

// TogglePause switches between running and paused. It does nothing after game over.
func (w *World) TogglePause() {
	switch w.State {
	case Running:
		w.State = Paused
	case Paused:
		w.State = Running
	}
}

func (w *World) endRound() {
	if w.State == GameOver {
		return
	}
	w.State = GameOver
	if p := w.Player(); p != nil {
		p.Hidden = true
		w.SpawnExplosion(p.Center())
	}
	log.Printf("[%s] round over: wave %d, score %d, %d asteroids, %d ufos, %d shots",
		w.RunID, w.Waves.Number(), w.Stats.Score, w.Stats.AsteroidsDestroyed, w.Stats.UFOsDestroyed, w.Stats.ShotsFired)
}

// Step advances the simulation by dt using the input snapshot in.
func (w *World) Step(in InputSnapshot, dt float64) {
	if dt <= 0 {
		dt = defaultDT
	}
	dt = min(dt, maxDT)
	w.input = in

	if in.Pause {
		w.TogglePause()
	}
	if w.State == Paused {
		return
	}
	w.time += dt

	if w.State == Running {
		w.Each(KindPlayer, func(e *Entity) { updatePlayer(w, e, dt) })
	}
	for k := KindProjectile; k < kindCount; k++ {
		update := behaviorOf(k).update
		if update == nil {
			continue
		}
		w.Each(k, func(e *Entity) { update(w, e, dt) })
	}

	for k := Kind(0); k < kindCount; k++ {
		w.Each(k, w.collisions.Sync)
	}
	w.collide()
	events.ProcessAllEvents(w.events)

	if w.State == Running {
		w.Waves.Update(w, dt)
	}
	w.Particles.Update(dt)
	w.store.Compact(w.remove)
}

// collide runs the per-frame collision rules.
func (w *World) collide() {
	w.Each(KindProjectile, func(e *Entity) {
		w.collisions.Check(e, w.handleCollision, KindAsteroid, KindUFO)
	})
	if w.State == Running {
		w.Each(KindPlayer, func(e *Entity) {
			w.collisions.Check(e, w.handleCollision, KindAsteroid, KindUFO, KindItem)
		})
	}
	w.Each(KindUFO, func(e *Entity) {
		w.collisions.Check(e, w.handleCollision, KindAsteroid)
	})
}

func (w *World) remove(e *Entity) {
	if h := behaviorOf(e.Kind).removed; h != nil {
		h(w, e)
	}
	w.collisions.Remove(e)
}

// SpawnExplosion plays a one-shot explosion centered at pos.
func (w *World) SpawnExplosion(pos Vec2) *Entity {
	e := NewEntity(KindExplosion, TagExplosion, Vec2{}, Vec2{X: 32, Y: 32}, LayerParticles, w.anims)
	e.SetCenter(pos)
	w.Insert(e)
	return e
}

const explosionMaxAge = 1.0

func updateExplosion(w *World, e *Entity, dt float64) {
	e.age += dt
	e.updateAnimation(dt)
	if e.AnimationDone() || e.age >= explosionMaxAge {
		e.Kill()
	}
}
