package game

import "testing"

func TestPlayerInvulnerabilityWindow(t *testing.T) {
	w := newTestWorld(t, testConfig())
	p := w.Player()
	full := p.Health

	if !w.HurtPlayer(p, 20) {
		t.Fatal("first hit ignored")
	}
	if w.HurtPlayer(p, 20) {
		t.Error("second hit inside the window applied")
	}
	if p.Health != full-20 {
		t.Fatalf("Health = %d, want %d", p.Health, full-20)
	}

	// window is 0.3s
	stepN(w, InputSnapshot{}, 5, 0.05)
	if p.Player.CanBeDamaged() {
		t.Error("CanBeDamaged() = true 0.25s after a hit")
	}
	stepN(w, InputSnapshot{}, 2, 0.05)
	if !p.Player.CanBeDamaged() {
		t.Error("CanBeDamaged() = false 0.35s after a hit")
	}
	if !w.HurtPlayer(p, 20) {
		t.Error("hit after the window ignored")
	}
	if w.Stats.DamageTaken != 20 {
		t.Errorf("DamageTaken = %d, want 20", w.Stats.DamageTaken)
	}
}

func TestPlayerHealthClampedAndRoundEnds(t *testing.T) {
	w := newTestWorld(t, testConfig())
	p := w.Player()

	w.HurtPlayer(p, 10*p.Health)
	if p.Health != 0 {
		t.Fatalf("Health = %d, want 0", p.Health)
	}
	w.Step(InputSnapshot{}, frameDT)
	if w.State != GameOver {
		t.Fatalf("State = %v, want %v", w.State, GameOver)
	}
	if !p.Hidden {
		t.Error("player still visible after game over")
	}

	pos := p.Pos
	stepN(w, InputSnapshot{Right: true, FireHeld: true}, 10, frameDT)
	if p.Pos != pos || w.Count(KindProjectile) != 0 {
		t.Error("player acted after game over")
	}
}

func TestPlayerSpeedCappedAndKeptInside(t *testing.T) {
	w := newTestWorld(t, testConfig())
	p := w.Player()
	limit := w.cfg.Player.MaxSpeed

	for i := 0; i < 600; i++ {
		w.Step(InputSnapshot{Right: true, Down: true}, frameDT)
		if v := p.Velocity.Len(); v > limit+1e-9 {
			t.Fatalf("frame %d: speed %v over %v", i, v, limit)
		}
	}
	r := p.Rect()
	if !approxEqual(r.Right(), w.Bounds.Right(), 1e-9) || !approxEqual(r.Bottom(), w.Bounds.Bottom(), 1e-9) {
		t.Errorf("Rect = %+v, want pressed into the bottom-right corner", r)
	}
}

func TestPlayerDash(t *testing.T) {
	w := newTestWorld(t, testConfig())
	p := w.Player()
	cfg := w.cfg.Player

	w.Step(InputSnapshot{Right: true, Dash: true}, frameDT)
	ps := p.Player
	if !ps.Dashing() {
		t.Fatal("Dashing() = false after a dash press")
	}
	want := cfg.MaxSpeed * cfg.DashMultiplier
	if !approxEqual(p.Velocity.X, want, 1e-9) || p.Velocity.Y != 0 {
		t.Errorf("dash Velocity = %v, want (%v, 0)", p.Velocity, want)
	}

	stepN(w, InputSnapshot{}, 12, frameDT)
	if ps.Dashing() {
		t.Fatal("dash outlasted its duration")
	}
	if ps.DashReady() {
		t.Error("DashReady() = true during the cooldown")
	}
	w.Step(InputSnapshot{Left: true, Dash: true}, frameDT)
	if ps.Dashing() {
		t.Error("dash started during the cooldown")
	}
}

func TestPlayerDashWithoutDirectionUsesFacing(t *testing.T) {
	w := newTestWorld(t, testConfig())
	p := w.Player()

	w.Step(InputSnapshot{Dash: true}, frameDT)
	if p.Velocity.Y >= 0 || !approxEqual(p.Velocity.X, 0, 1e-9) {
		t.Errorf("Velocity = %v, want straight up along the facing", p.Velocity)
	}
}

func TestPlayerAimsAtCursor(t *testing.T) {
	w := newTestWorld(t, testConfig())
	p := w.Player()

	w.Step(InputSnapshot{HasCursor: true, CursorWorld: p.Center().Add(V(100, 0))}, frameDT)
	if !approxEqual(p.Rotation, 0, 1e-9) {
		t.Errorf("Rotation = %v aiming right, want 0", p.Rotation)
	}
	w.Step(InputSnapshot{Aim: V(0, -1)}, frameDT)
	if !approxEqual(p.Rotation, 90, 1e-9) {
		t.Errorf("Rotation = %v with the stick up, want 90", p.Rotation)
	}
	w.Step(InputSnapshot{Aim: V(0.1, 0)}, frameDT)
	if !approxEqual(p.Rotation, 90, 1e-9) {
		t.Errorf("Rotation = %v after a stick inside the deadzone, want 90", p.Rotation)
	}
}

func TestPlayerSwapCyclesInventory(t *testing.T) {
	w := newTestWorld(t, testConfig())
	ps := w.Player().Player
	n := len(ps.Weapons)
	if n != len(w.cfg.Player.Weapons) {
		t.Fatalf("inventory = %d weapons, want %d", n, len(w.cfg.Player.Weapons))
	}
	for i := 1; i <= n; i++ {
		w.Step(InputSnapshot{Swap: true}, frameDT)
		if ps.Active != i%n {
			t.Errorf("after %d swaps Active = %d, want %d", i, ps.Active, i%n)
		}
	}
}

func TestInactiveWeaponKeepsReloading(t *testing.T) {
	w := newTestWorld(t, testConfig())
	ps := w.Player().Player
	blaster := ps.Weapon()
	blaster.Magazine = 0
	blaster.Reload()

	w.Step(InputSnapshot{Swap: true}, frameDT)
	stepN(w, InputSnapshot{FireHeld: true}, 70, frameDT)

	if blaster.Reloading() || blaster.Magazine != blaster.Config().MaxMagazine {
		t.Errorf("holstered blaster Magazine = %d, Reloading = %v", blaster.Magazine, blaster.Reloading())
	}
}

func TestPlayerWithUnknownWeaponsFallsBack(t *testing.T) {
	cfg := testConfig()
	cfg.Player.Weapons = []string{"slingshot"}
	w := newTestWorld(t, cfg)
	ps := w.Player().Player
	if len(ps.Weapons) != 1 || ps.Weapon().Config().Name != WeaponBlaster {
		t.Errorf("inventory = %d weapons, active %q; want the blaster alone", len(ps.Weapons), ps.Weapon().Config().Name)
	}
}

func TestInputDirection(t *testing.T) {
	d := InputSnapshot{Up: true, Right: true}.Direction()
	if !approxEqual(d.Len(), 1, 1e-9) || d.X <= 0 || d.Y >= 0 {
		t.Errorf("Direction = %v, want unit up-right", d)
	}
	d = InputSnapshot{Left: true, Right: true}.Direction()
	if !d.IsZero() {
		t.Errorf("opposite keys Direction = %v, want zero", d)
	}
	d = InputSnapshot{Right: true, Move: V(0, 0.5)}.Direction()
	if d != V(0, 0.5) {
		t.Errorf("stick Direction = %v, want (0, 0.5)", d)
	}
}
