package game

import (
	"image/color"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// EnemyDestroyed is published when an asteroid or UFO dies.
type EnemyDestroyed struct {
	Kind Kind
	Pos  Vec2

	// ByPlayer is false when the enemy died by ramming the player; no score is awarded then.
	ByPlayer bool
	Score    int
}

// PlayerDamaged is published after the player loses health.
type PlayerDamaged struct {
	Amount int
	Health int
	Pos    Vec2
}

// Detonation is published when a missile explodes.
type Detonation struct {
	Pos    Vec2
	Radius float64
}

// PowerUpCollected is published when the player picks up an item.
type PowerUpCollected struct {
	Effect PowerUpEffect
	Pos    Vec2
}

var (
	EnemyDestroyedEvent   = events.NewEventType[EnemyDestroyed]()
	PlayerDamagedEvent    = events.NewEventType[PlayerDamaged]()
	DetonationEvent       = events.NewEventType[Detonation]()
	PowerUpCollectedEvent = events.NewEventType[PowerUpCollected]()
)

var (
	debrisColors = []color.RGBA{{170, 150, 130, 255}, {120, 100, 80, 255}, {200, 190, 170, 255}}
	ufoColors    = []color.RGBA{{120, 255, 140, 255}, {255, 255, 255, 255}, {60, 200, 90, 255}}
	hurtColors   = []color.RGBA{{255, 60, 60, 255}, {255, 140, 80, 255}}
	fireColors   = []color.RGBA{{255, 255, 0, 255}, {255, 200, 0, 255}, {255, 100, 0, 255}}
	pickupColors = []color.RGBA{{255, 255, 255, 255}, {255, 220, 0, 255}}
)

// subscribeEvents wires the combat feedback: score, particles, shake and drops.
// Handlers run during ProcessEvents, after the collision pass.
func (w *World) subscribeEvents() {
	EnemyDestroyedEvent.Subscribe(w.events, func(_ donburi.World, ev EnemyDestroyed) {
		colors := debrisColors
		if ev.Kind == KindUFO {
			colors = ufoColors
		}
		w.Particles.Burst(w.rng, ev.Pos, 18, 60, 3, 3, colors, LayerParticles)
		w.SpawnExplosion(ev.Pos)
		w.RequestShake(3)

		if !ev.ByPlayer {
			return
		}
		w.Stats.Score += ev.Score
		switch ev.Kind {
		case KindAsteroid:
			w.Stats.AsteroidsDestroyed++
		case KindUFO:
			w.Stats.UFOsDestroyed++
			if w.rng.Chance(powerUpDropChance) {
				w.SpawnPowerUp(ev.Pos, PowerUpEffect(w.rng.Intn(int(powerUpEffectCount))))
			}
		}
	})

	PlayerDamagedEvent.Subscribe(w.events, func(_ donburi.World, ev PlayerDamaged) {
		w.Stats.DamageTaken += ev.Amount
		w.Particles.Burst(w.rng, ev.Pos, 10, 80, 2, 4, hurtColors, LayerParticles)
		w.RequestShake(6)
		if ev.Health <= 0 {
			w.endRound()
		}
	})

	DetonationEvent.Subscribe(w.events, func(_ donburi.World, ev Detonation) {
		w.Particles.Ring(ev.Pos, 16, ev.Radius*2, 3, 4, fireColors, LayerParticles)
		w.RequestShake(8)
	})

	PowerUpCollectedEvent.Subscribe(w.events, func(_ donburi.World, ev PowerUpCollected) {
		w.Particles.Ring(ev.Pos, 10, 40, 2, 3, pickupColors, LayerParticles)
	})
}
