package game

import "testing"

func mustWeapon(t *testing.T, name string) *Weapon {
	t.Helper()
	cfg, ok := LookupWeapon(name)
	if !ok {
		t.Fatalf("LookupWeapon(%q) not found", name)
	}
	return NewWeapon(cfg)
}

func TestBlasterHeldFiresThreeShotsIn21Frames(t *testing.T) {
	wp := NewWeapon(DefaultWeapon())
	shots := 0
	for i := 0; i < 21; i++ {
		if wp.Update(frameDT, true, i == 0) {
			shots++
		}
	}
	if shots != 3 {
		t.Errorf("shots = %d, want 3", shots)
	}
	if want := DefaultWeapon().MaxMagazine - 3; wp.Magazine != want {
		t.Errorf("Magazine = %d, want %d", wp.Magazine, want)
	}
}

func TestPlayerHoldingFireSpawnsThreeProjectiles(t *testing.T) {
	w := newTestWorld(t, testConfig())
	stepN(w, InputSnapshot{FireHeld: true}, 21, frameDT)

	if n := w.Count(KindProjectile); n != 3 {
		t.Errorf("projectiles = %d, want 3", n)
	}
	if w.Stats.ShotsFired != 3 {
		t.Errorf("ShotsFired = %d, want 3", w.Stats.ShotsFired)
	}
}

func TestMagazineNeverNegative(t *testing.T) {
	wp := mustWeapon(t, WeaponLance)
	shots := 0
	for i := 0; i < 200; i++ {
		if wp.Update(0.1, true, true) {
			shots++
		}
		if wp.Magazine < 0 {
			t.Fatalf("frame %d: Magazine = %d", i, wp.Magazine)
		}
	}
	if shots != wp.Config().MaxMagazine {
		t.Errorf("shots = %d, want %d", shots, wp.Config().MaxMagazine)
	}
	if wp.CanShoot() {
		t.Error("CanShoot() = true with an empty magazine")
	}
	if wp.Update(0.1, true, true) {
		t.Error("empty weapon fired")
	}
}

func TestReloadRefillsAndBlocksFiring(t *testing.T) {
	wp := NewWeapon(DefaultWeapon())
	if !wp.Update(frameDT, true, true) {
		t.Fatal("first shot did not fire")
	}
	if !wp.Reload() {
		t.Fatal("Reload() = false with a partial magazine")
	}
	if !wp.Reloading() {
		t.Fatal("Reloading() = false after Reload")
	}
	if wp.Reload() {
		t.Error("second Reload() accepted while reloading")
	}
	for i := 0; i < 30; i++ {
		if wp.Update(frameDT, true, true) {
			t.Fatalf("fired while reloading at frame %d", i)
		}
		if wp.CanShoot() && wp.Reloading() {
			t.Fatal("CanShoot() = true while reloading")
		}
	}
	for i := 0; i < 60 && wp.Reloading(); i++ {
		wp.Update(frameDT, false, false)
	}
	if wp.Reloading() {
		t.Fatal("still reloading after ReloadTime")
	}
	if wp.Magazine != wp.Config().MaxMagazine {
		t.Errorf("Magazine = %d, want %d", wp.Magazine, wp.Config().MaxMagazine)
	}
}

func TestReloadIgnoredWhenFull(t *testing.T) {
	wp := NewWeapon(DefaultWeapon())
	if wp.Reload() {
		t.Error("Reload() = true with a full magazine")
	}
	if wp.Reloading() {
		t.Error("Reloading() = true after ignored Reload")
	}
}

func TestSemiAutomaticNeedsFreshPress(t *testing.T) {
	wp := mustWeapon(t, WeaponLance)
	shots := 0
	for i := 0; i < 120; i++ {
		if wp.Update(frameDT, true, i == 0) {
			shots++
		}
	}
	if shots != 1 {
		t.Fatalf("held semi-automatic shots = %d, want 1", shots)
	}
	if !wp.Update(frameDT, true, true) {
		t.Error("new press after cooldown did not fire")
	}
}

func TestSemiAutomaticPressDuringCooldownIsLost(t *testing.T) {
	wp := mustWeapon(t, WeaponLance)
	if !wp.Update(frameDT, true, true) {
		t.Fatal("first press did not fire")
	}
	if wp.Update(frameDT, true, true) {
		t.Fatal("press during cooldown fired")
	}
	for i := 0; i < 60; i++ {
		if wp.Update(frameDT, true, false) {
			t.Fatalf("fired at frame %d without a press", i)
		}
	}
}

func TestRateScaleShortensInterval(t *testing.T) {
	wp := NewWeapon(DefaultWeapon())
	wp.SetRateScale(rapidFireScale)
	shots := 0
	for i := 0; i < 21; i++ {
		if wp.Update(frameDT, true, false) {
			shots++
		}
	}
	if shots <= 3 {
		t.Errorf("rapid fire shots = %d, want more than 3", shots)
	}
	wp.SetRateScale(0)
	if wp.rateScale != 1 {
		t.Errorf("rateScale = %v after SetRateScale(0), want 1", wp.rateScale)
	}
}

func TestWeaponCopyHasFreshState(t *testing.T) {
	wp := NewWeapon(DefaultWeapon())
	wp.Update(frameDT, true, true)
	wp.Reload()

	c := wp.Copy()
	if c.Magazine != c.Config().MaxMagazine {
		t.Errorf("copy Magazine = %d, want %d", c.Magazine, c.Config().MaxMagazine)
	}
	if !c.CanShoot() {
		t.Error("copy CanShoot() = false")
	}
	c.cfg.Muzzles[0].X = 99
	if wp.cfg.Muzzles[0].X == 99 {
		t.Error("copy shares muzzle offsets with the original")
	}
}

func TestMuzzlePositionsFollowRotation(t *testing.T) {
	center := V(100, 100)

	blaster := NewWeapon(DefaultWeapon())
	got := blaster.MuzzlePositions(center, 90)
	if len(got) != 1 || !approxEqual(got[0].X, 100, 1e-9) || !approxEqual(got[0].Y, 92, 1e-9) {
		t.Errorf("blaster muzzles at 90 = %v, want [(100, 92)]", got)
	}

	launcher := mustWeapon(t, WeaponLauncher)
	got = launcher.MuzzlePositions(center, 0)
	want := []Vec2{V(104, 94), V(104, 106)}
	if len(got) != len(want) {
		t.Fatalf("launcher muzzles = %v, want %v", got, want)
	}
	for i := range want {
		if !approxEqual(got[i].X, want[i].X, 1e-9) || !approxEqual(got[i].Y, want[i].Y, 1e-9) {
			t.Errorf("muzzle %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestScatterFiresPelletsInsideCone(t *testing.T) {
	w := newTestWorld(t, testConfig())
	p := w.Player()
	wp := mustWeapon(t, WeaponScatter)

	n := w.FireWeapon(p, wp)
	cfg := wp.Config()
	if n != cfg.Pellets {
		t.Fatalf("FireWeapon = %d, want %d", n, cfg.Pellets)
	}
	if w.Count(KindProjectile) != cfg.Pellets {
		t.Errorf("projectiles = %d, want %d", w.Count(KindProjectile), cfg.Pellets)
	}
	if w.Stats.ShotsFired != 1 {
		t.Errorf("ShotsFired = %d, want 1", w.Stats.ShotsFired)
	}
	for _, e := range w.Entities(KindProjectile) {
		if d := e.Rotation - p.Rotation; d < -cfg.Spread || d > cfg.Spread {
			t.Errorf("pellet rotation %v outside %v±%v", e.Rotation, p.Rotation, cfg.Spread)
		}
	}
}

func TestLauncherFiresFromEachMuzzle(t *testing.T) {
	w := newTestWorld(t, testConfig())
	if n := w.FireWeapon(w.Player(), mustWeapon(t, WeaponLauncher)); n != 2 {
		t.Errorf("FireWeapon = %d, want 2", n)
	}
}
