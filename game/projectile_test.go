package game

import "testing"

func TestProjectileRemovedWhenLeavingMargin(t *testing.T) {
	w := newTestWorld(t, testConfig())
	margin := w.cfg.World.OutOfBoundsMargin
	p := w.SpawnProjectile(projectileConfig(t, WeaponBlaster), V(-margin, 100), 180, Handle{})

	updateProjectile(w, p, frameDT)
	if !p.Dead() {
		t.Fatalf("projectile at %v alive outside the margin", p.Pos)
	}
	w.Step(InputSnapshot{}, frameDT)
	if w.Count(KindProjectile) != 0 {
		t.Errorf("projectiles = %d, want 0", w.Count(KindProjectile))
	}
}

func TestDirectProjectileFreezesThenDies(t *testing.T) {
	w := newTestWorld(t, testConfig())
	a := placeAsteroid(w, V(200, 100))
	cfg := projectileConfig(t, WeaponBlaster)
	p := w.SpawnProjectile(cfg, a.Center(), 0, Handle{})

	w.Step(InputSnapshot{}, frameDT)
	ps := p.Projectile
	if !ps.Hit || !p.Velocity.IsZero() {
		t.Fatalf("after contact Hit = %v, Velocity = %v; want true and zero", ps.Hit, p.Velocity)
	}
	if p.Action != ActionHit {
		t.Errorf("Action = %q, want %q", p.Action, ActionHit)
	}
	if a.Health != a.MaxHealth-cfg.Damage {
		t.Errorf("asteroid Health = %d, want %d", a.Health, a.MaxHealth-cfg.Damage)
	}

	pos := p.Pos
	stepN(w, InputSnapshot{}, 5, frameDT)
	if p.Pos != pos {
		t.Errorf("frozen projectile moved from %v to %v", pos, p.Pos)
	}
	stepN(w, InputSnapshot{}, 15, frameDT)
	if !p.Dead() {
		t.Error("projectile alive after its hit animation")
	}
	if a.Health != a.MaxHealth-cfg.Damage {
		t.Errorf("asteroid hit more than once: Health = %d", a.Health)
	}
}

func TestPiercingProjectilePassesThrough(t *testing.T) {
	w := newTestWorld(t, testConfig())
	first := placeAsteroid(w, V(150, 100))
	second := placeAsteroid(w, V(250, 100))
	cfg := projectileConfig(t, WeaponLance)
	p := w.SpawnProjectile(cfg, V(50, 100), 0, Handle{})

	stepN(w, InputSnapshot{}, 40, frameDT)

	want := GetEnemyConfig(KindAsteroid).Health - cfg.Damage
	if first.Health != want || second.Health != want {
		t.Errorf("Health = %d, %d; want %d each", first.Health, second.Health, want)
	}
	if _, ok := w.Get(p.Handle()); !ok {
		t.Error("piercing projectile died on contact")
	}
}

func TestSpreadProjectileLifetime(t *testing.T) {
	w := newTestWorld(t, testConfig())
	p := w.SpawnProjectile(projectileConfig(t, WeaponScatter), w.Bounds.Center(), 90, Handle{})

	stepN(w, InputSnapshot{}, 30, frameDT)
	if p.Dead() {
		t.Fatalf("pellet died early at age %v", p.Projectile.Age())
	}
	stepN(w, InputSnapshot{}, 10, frameDT)
	if !p.Dead() {
		t.Errorf("pellet alive at age %v", p.Projectile.Age())
	}
}

func TestSpreadProjectileDiesOnContact(t *testing.T) {
	w := newTestWorld(t, testConfig())
	a := placeAsteroid(w, V(200, 100))
	cfg := projectileConfig(t, WeaponScatter)
	p := w.SpawnProjectile(cfg, a.Center(), 0, Handle{})

	w.Step(InputSnapshot{}, frameDT)
	if !p.Dead() {
		t.Error("pellet survived contact")
	}
	if a.Health != a.MaxHealth-cfg.Damage {
		t.Errorf("asteroid Health = %d, want %d", a.Health, a.MaxHealth-cfg.Damage)
	}
}

func TestMissileSplashDamage(t *testing.T) {
	w := newTestWorld(t, testConfig())
	direct := placeAsteroid(w, V(300, 100))
	near := placeAsteroid(w, V(330, 100))
	far := placeAsteroid(w, V(500, 100))
	cfg := projectileConfig(t, WeaponLauncher)
	p := w.SpawnProjectile(cfg, direct.Center(), 0, Handle{})

	w.Step(InputSnapshot{}, frameDT)

	full := GetEnemyConfig(KindAsteroid).Health
	if direct.Health != full-cfg.Damage {
		t.Errorf("direct Health = %d, want %d", direct.Health, full-cfg.Damage)
	}
	if near.Health != full-cfg.SplashDamage {
		t.Errorf("near Health = %d, want %d", near.Health, full-cfg.SplashDamage)
	}
	if far.Health != full {
		t.Errorf("far Health = %d, want %d", far.Health, full)
	}
	if !p.Hidden || !p.Projectile.Hit {
		t.Error("missile not hidden after detonating")
	}

	stepN(w, InputSnapshot{}, 40, frameDT)
	if !p.Dead() {
		t.Error("missile alive after its countdown")
	}
	if w.Particles.Len() == 0 {
		t.Error("no particles from the detonation")
	}
}

func TestMissileTurnsTowardNearestEnemy(t *testing.T) {
	w := newTestWorld(t, testConfig())
	placeAsteroid(w, V(100, 100))
	cfg := projectileConfig(t, WeaponLauncher)
	p := w.SpawnProjectile(cfg, V(100, 400), 0, Handle{})

	w.Step(InputSnapshot{}, frameDT)
	if want := cfg.TurnRate * frameDT; !approxEqual(p.Rotation, want, 1e-9) {
		t.Errorf("Rotation after one frame = %v, want %v", p.Rotation, want)
	}
	stepN(w, InputSnapshot{}, 20, frameDT)
	if p.Rotation <= 0 || p.Rotation > 90 {
		t.Errorf("Rotation = %v, want turning up toward the asteroid", p.Rotation)
	}
}

func TestMissileDetonatesAtEndOfLifetime(t *testing.T) {
	w := newTestWorld(t, testConfig())
	cfg := projectileConfig(t, WeaponLauncher)
	p := w.SpawnProjectile(cfg, w.Bounds.Center(), 90, Handle{})
	p.Projectile.age = cfg.MaxLifetime

	w.Step(InputSnapshot{}, frameDT)
	if !p.Projectile.Hit || !p.Hidden {
		t.Error("missile did not detonate when its lifetime ran out")
	}
}
