package game

// Weapon is one wielder's instance of a WeaponConfig. It owns all mutable
// firing state; the config is never modified.
type Weapon struct {
	cfg WeaponConfig

	Magazine int

	reloadTimer float64
	shootTimer  float64

	// rateScale multiplies ShootTime (power-ups lower it)
	rateScale float64
}

// NewWeapon builds a weapon from a template with a full magazine and idle timers.
func NewWeapon(cfg WeaponConfig) *Weapon {
	cfg.Muzzles = append([]Vec2(nil), cfg.Muzzles...)
	return &Weapon{
		cfg:       cfg,
		Magazine:  cfg.MaxMagazine,
		rateScale: 1,
	}
}

// Config returns the template the weapon was built from.
func (w *Weapon) Config() WeaponConfig {
	return w.cfg
}

// Copy returns an independent weapon with the same template and fresh state.
func (w *Weapon) Copy() *Weapon {
	return NewWeapon(w.cfg)
}

func (w *Weapon) Reloading() bool {
	return w.reloadTimer > 0
}

// CanShoot reports whether a trigger this frame would fire.
func (w *Weapon) CanShoot() bool {
	return !w.Reloading() && w.shootTimer <= 0 && w.Magazine > 0
}

// Reload starts a reload. It is ignored when the magazine is full or a reload
// is already running.
func (w *Weapon) Reload() bool {
	if w.Reloading() || w.Magazine >= w.cfg.MaxMagazine {
		return false
	}
	if w.cfg.ReloadTime <= 0 {
		w.Magazine = w.cfg.MaxMagazine
		return true
	}
	w.reloadTimer = w.cfg.ReloadTime
	return true
}

// SetRateScale scales the time between shots.
func (w *Weapon) SetRateScale(s float64) {
	if s <= 0 {
		s = 1
	}
	w.rateScale = s
}

// Update advances the weapon by dt and reports whether it fires this frame.
// held is the continuous trigger state, pressed the trigger edge.
// Readiness is judged on the timers carried in from the previous frame: a
// frame that counts a timer down never fires, so consecutive shots are at
// least ShootTime apart.
func (w *Weapon) Update(dt float64, held, pressed bool) bool {
	if w.reloadTimer > 0 {
		w.reloadTimer -= dt
		if w.reloadTimer <= 0 {
			w.reloadTimer = 0
			w.Magazine = w.cfg.MaxMagazine
		}
		return false
	}
	if w.shootTimer > 0 {
		w.shootTimer -= dt
		return false
	}

	trigger := pressed
	if w.cfg.Automatic {
		trigger = held
	}
	if !trigger || w.Magazine <= 0 {
		return false
	}

	w.Magazine--
	w.shootTimer = w.cfg.ShootTime * w.rateScale
	return true
}

// MuzzlePositions returns the world positions of the muzzles for a wielder
// centered at center facing rotation degrees.
func (w *Weapon) MuzzlePositions(center Vec2, rotation float64) []Vec2 {
	if len(w.cfg.Muzzles) == 0 {
		return []Vec2{center}
	}
	out := make([]Vec2, len(w.cfg.Muzzles))
	for i, m := range w.cfg.Muzzles {
		out[i] = center.Add(m.Rotate(rotation))
	}
	return out
}

// FireWeapon spawns the projectiles for one shot of wp from wielder and
// returns how many were created. Spread weapons give each pellet its own
// random deviation inside the cone.
func (w *World) FireWeapon(wielder *Entity, wp *Weapon) int {
	cfg := &wp.cfg
	pellets := max(cfg.Pellets, 1)
	n := 0
	for _, muzzle := range wp.MuzzlePositions(wielder.Center(), wielder.Rotation) {
		for i := 0; i < pellets; i++ {
			rot := wielder.Rotation
			if cfg.Spread > 0 {
				rot += w.rng.Range(-cfg.Spread, cfg.Spread)
			}
			w.SpawnProjectile(&cfg.Projectile, muzzle, rot, wielder.handle)
			n++
		}
	}
	w.Stats.ShotsFired++
	return n
}
