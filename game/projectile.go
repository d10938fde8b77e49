package game

import "math"

// ProjectileKind selects the hit and lifetime policy of a projectile.
type ProjectileKind int

const (
	// ProjectileDirect stops on the first target, plays its hit animation, then dies.
	ProjectileDirect ProjectileKind = iota
	// ProjectilePiercing passes through targets, damaging each once per contact.
	ProjectilePiercing
	// ProjectileSpread dies on contact or when its lifetime runs out.
	ProjectileSpread
	// ProjectileMissile homes, then explodes after a countdown on contact.
	ProjectileMissile
	projectileKindCount
)

func (k ProjectileKind) String() string {
	switch k {
	case ProjectileDirect:
		return "direct"
	case ProjectilePiercing:
		return "piercing"
	case ProjectileSpread:
		return "spread"
	case ProjectileMissile:
		return "missile"
	}
	return "unknown"
}

// ProjectileState is the projectile variant payload.
type ProjectileState struct {
	cfg   *ProjectileConfig
	Owner Handle

	// Hit is set once the projectile has struck and is finishing
	Hit bool

	frozen     bool
	age        float64
	countdown  float64
	burstTimer float64
	bursts     int
}

// Config returns the template the projectile was spawned from.
func (p *ProjectileState) Config() *ProjectileConfig {
	return p.cfg
}

// Age returns seconds since spawn.
func (p *ProjectileState) Age() float64 {
	return p.age
}

// projectilePolicy holds the per-variant hooks. hit runs on first contact with
// an enemy; finished runs every update after movement.
type projectilePolicy struct {
	hit      func(w *World, p, target *Entity)
	finished func(w *World, p *Entity, dt float64)
}

var projectilePolicies [projectileKindCount]projectilePolicy

func init() {
	projectilePolicies = [projectileKindCount]projectilePolicy{
		ProjectileDirect:   {hit: hitDirect, finished: finishDirect},
		ProjectilePiercing: {hit: hitPiercing, finished: finishLifetime},
		ProjectileSpread:   {hit: hitSpread, finished: finishLifetime},
		ProjectileMissile:  {hit: hitMissile, finished: finishMissile},
	}
}

// SpawnProjectile creates a projectile centered at pos heading at rotation degrees.
func (w *World) SpawnProjectile(cfg *ProjectileConfig, pos Vec2, rotation float64, owner Handle) *Entity {
	e := NewEntity(KindProjectile, cfg.Tag, Vec2{}, cfg.Size, LayerProjectile, w.anims)
	e.SetCenter(pos)
	e.Rotation = rotation
	e.Velocity = Heading(rotation).Scale(cfg.Speed)
	e.Projectile = &ProjectileState{cfg: cfg, Owner: owner}
	w.Insert(e)
	return e
}

func updateProjectile(w *World, e *Entity, dt float64) {
	ps := e.Projectile
	ps.age += dt
	e.updateAnimation(dt)

	if ps.cfg.Kind == ProjectileMissile && !ps.Hit {
		if target := w.nearestEnemy(e.Center()); target != nil {
			e.Rotation = RotateTowards(e.Rotation, e.AngleTo(target.Center()), ps.cfg.TurnRate*dt)
		}
	}

	if ps.frozen {
		e.Velocity = Vec2{}
	} else {
		e.Velocity = Heading(e.Rotation).Scale(ps.cfg.Speed)
	}
	e.Move(e.Velocity, nil, dt)

	if !e.Rect().Intersects(w.Bounds.Inflate(w.cfg.World.OutOfBoundsMargin)) {
		e.Kill()
		return
	}
	projectilePolicies[ps.cfg.Kind].finished(w, e, dt)
}

func collideProjectile(w *World, e, other *Entity) {
	switch other.Kind {
	case KindAsteroid, KindUFO:
		projectilePolicies[e.Projectile.cfg.Kind].hit(w, e, other)
	case KindPlayer, KindProjectile, KindArrow, KindExplosion, KindItem:
	default:
		panic("unhandled kind " + other.Kind.String())
	}
}

func hitDirect(w *World, p, target *Entity) {
	ps := p.Projectile
	if ps.Hit {
		return
	}
	w.DamageEntity(target, ps.cfg.Damage)
	ps.Hit = true
	ps.frozen = true
	p.SetAction(ActionHit)
}

func finishDirect(w *World, p *Entity, dt float64) {
	if p.Projectile.Hit && p.AnimationDone() {
		p.Kill()
	}
}

func hitPiercing(w *World, p, target *Entity) {
	w.DamageEntity(target, p.Projectile.cfg.Damage)
}

func hitSpread(w *World, p, target *Entity) {
	ps := p.Projectile
	if ps.Hit {
		return
	}
	w.DamageEntity(target, ps.cfg.Damage)
	ps.Hit = true
	ps.frozen = true
	p.Kill()
}

func finishLifetime(w *World, p *Entity, dt float64) {
	ps := p.Projectile
	if ps.cfg.MaxLifetime > 0 && ps.age >= ps.cfg.MaxLifetime {
		p.Kill()
	}
}

func hitMissile(w *World, p, target *Entity) {
	if p.Projectile.Hit {
		return
	}
	w.DamageEntity(target, p.Projectile.cfg.Damage)
	detonate(w, p, target)
}

// detonate freezes and hides the missile, applies splash damage and starts
// the explosion countdown.
func detonate(w *World, p, direct *Entity) {
	ps := p.Projectile
	ps.Hit = true
	ps.frozen = true
	ps.countdown = ps.cfg.Countdown
	ps.burstTimer = 0
	p.Hidden = true

	center := p.Center()
	for _, kind := range []Kind{KindAsteroid, KindUFO} {
		w.Each(kind, func(o *Entity) {
			if o == direct || o.DistanceTo(center) > ps.cfg.SplashRadius {
				return
			}
			w.DamageEntity(o, ps.cfg.SplashDamage)
		})
	}
	DetonationEvent.Publish(w.events, Detonation{Pos: center, Radius: ps.cfg.SplashRadius})
}

func finishMissile(w *World, p *Entity, dt float64) {
	ps := p.Projectile
	if !ps.Hit {
		if ps.cfg.MaxLifetime > 0 && ps.age >= ps.cfg.MaxLifetime {
			detonate(w, p, nil)
		}
		return
	}

	ps.burstTimer -= dt
	if ps.burstTimer <= 0 {
		ps.burstTimer = ps.cfg.BurstInterval
		ps.bursts++
		// each ring leaves faster than the last
		w.Particles.Ring(p.Center(), 12, 40*float64(ps.bursts), 2.5, 3, fireColors, LayerParticles)
	}

	ps.countdown -= dt
	if ps.countdown <= 0 {
		p.Kill()
	}
}

// nearestEnemy returns the closest live asteroid or UFO to pos, or nil.
func (w *World) nearestEnemy(pos Vec2) *Entity {
	var best *Entity
	bestDist := math.Inf(1)
	for _, kind := range []Kind{KindAsteroid, KindUFO} {
		w.Each(kind, func(o *Entity) {
			if d := o.DistanceTo(pos); d < bestDist {
				best, bestDist = o, d
			}
		})
	}
	return best
}
