package game

import "image/color"

// PlayerState is the player variant payload.
type PlayerState struct {
	cfg PlayerConfig

	Weapons []*Weapon
	Active  int

	dashTimer    float64
	dashCooldown float64
	dashDir      Vec2

	invulnTimer float64
	thrustTimer float64
}

// NewPlayer creates the player ship centered at center with the configured inventory.
func (w *World) NewPlayer(center Vec2) *Entity {
	cfg := w.cfg.Player
	e := NewEntity(KindPlayer, TagPlayer, Vec2{}, Vec2{X: 16, Y: 16}, LayerPlayer, w.anims)
	e.SetCenter(center)
	e.Rotation = 90
	e.Health = cfg.Health
	e.MaxHealth = cfg.Health

	ps := &PlayerState{cfg: cfg}
	for _, name := range cfg.Weapons {
		if wc, ok := LookupWeapon(name); ok {
			ps.Weapons = append(ps.Weapons, NewWeapon(wc))
		}
	}
	if len(ps.Weapons) == 0 {
		ps.Weapons = append(ps.Weapons, NewWeapon(DefaultWeapon()))
	}
	e.Player = ps
	return e
}

// Weapon returns the active weapon.
func (p *PlayerState) Weapon() *Weapon {
	return p.Weapons[p.Active]
}

// SwapWeapon makes the next weapon in the inventory active.
func (p *PlayerState) SwapWeapon() {
	p.Active = (p.Active + 1) % len(p.Weapons)
}

// CanBeDamaged reports whether the invulnerability window after the last hit is over.
func (p *PlayerState) CanBeDamaged() bool {
	return p.invulnTimer <= 0
}

// Dashing reports whether a dash is in progress.
func (p *PlayerState) Dashing() bool {
	return p.dashTimer > 0
}

// DashReady reports whether a dash can start.
func (p *PlayerState) DashReady() bool {
	return p.dashCooldown <= 0 && !p.Dashing()
}

// HurtPlayer applies damage unless the player is inside the invulnerability
// window. Health is clamped at zero. Returns whether damage was applied.
func (w *World) HurtPlayer(e *Entity, amount int) bool {
	ps := e.Player
	if ps == nil || e.dead || !ps.CanBeDamaged() || amount <= 0 {
		return false
	}
	e.Health = max(e.Health-amount, 0)
	ps.invulnTimer = ps.cfg.Invulnerability
	PlayerDamagedEvent.Publish(w.events, PlayerDamaged{Amount: amount, Health: e.Health, Pos: e.Center()})
	return true
}

func updatePlayer(w *World, e *Entity, dt float64) {
	ps := e.Player
	in := w.input
	cfg := ps.cfg

	if ps.invulnTimer > 0 {
		ps.invulnTimer -= dt
	}
	if ps.dashCooldown > 0 {
		ps.dashCooldown -= dt
	}
	if ps.dashTimer > 0 {
		ps.dashTimer -= dt
	}

	dir := in.Direction()
	if in.Dash && ps.DashReady() {
		ps.dashDir = dir
		if ps.dashDir.IsZero() {
			ps.dashDir = Heading(e.Rotation)
		}
		ps.dashTimer = cfg.DashDuration
		ps.dashCooldown = cfg.DashCooldown
	}

	if ps.Dashing() {
		e.Velocity = ps.dashDir.Scale(cfg.MaxSpeed * cfg.DashMultiplier)
	} else {
		e.Velocity = e.Velocity.Add(dir.Scale(cfg.Acceleration * dt))
		e.Velocity = applyFriction(e.Velocity, cfg.Friction, dt)
		e.Velocity = e.Velocity.ClampLen(cfg.MaxSpeed)
	}

	e.Move(e.Velocity, w.walls, dt)
	if e.Collisions.Left || e.Collisions.Right {
		e.Velocity.X = 0
	}
	if e.Collisions.Top || e.Collisions.Bottom {
		e.Velocity.Y = 0
	}

	switch {
	case in.HasCursor:
		e.Rotation = e.AngleTo(in.CursorWorld)
	case in.Aim.Len() > stickDeadzone:
		e.Rotation = in.Aim.Angle()
	}
	e.updateAnimation(dt)

	if !dir.IsZero() || ps.Dashing() {
		emitThruster(w, e, dt)
	}

	if in.Swap {
		ps.SwapWeapon()
	}
	// every weapon keeps reloading and cooling down; only the active one sees the trigger
	for i, wp := range ps.Weapons {
		if i != ps.Active {
			wp.Update(dt, false, false)
			continue
		}
		if in.Reload {
			wp.Reload()
		}
		if wp.Update(dt, in.FireHeld, in.FireDown) {
			w.FireWeapon(e, wp)
		}
	}
}

var thrusterColors = []color.RGBA{{255, 255, 0, 255}, {255, 100, 0, 255}, {255, 200, 0, 255}}

// emitThruster leaves a short exhaust trail behind the ship.
func emitThruster(w *World, e *Entity, dt float64) {
	ps := e.Player
	ps.thrustTimer -= dt
	if ps.thrustTimer > 0 {
		return
	}
	ps.thrustTimer = 1.0 / 60
	back := Heading(e.Rotation + 180)
	origin := e.Center().Add(back.Scale(e.Size.X / 2))
	for i, c := range thrusterColors {
		side := Heading(e.Rotation + 90).Scale(w.rng.Range(-15, 15))
		w.Particles.Add(Particle{
			Pos:    origin,
			Vel:    back.Scale(40).Add(side),
			Radius: 2 + 0.5*float64(i),
			Shrink: w.rng.Range(1.5, 4),
			Color:  c,
			Layer:  LayerParticles,
		})
	}
}

func collidePlayer(w *World, e, other *Entity) {
	switch other.Kind {
	case KindAsteroid:
		w.HurtPlayer(e, GetEnemyConfig(KindAsteroid).ContactDamage)
	case KindUFO:
		if !other.UFO.Protected() {
			w.HurtPlayer(e, GetEnemyConfig(KindUFO).ContactDamage)
		}
	case KindItem:
		w.pickUp(other, e)
	case KindPlayer, KindProjectile, KindArrow, KindExplosion:
	default:
		panic("unhandled kind " + other.Kind.String())
	}
}
