package game

import "testing"

func TestRapidFireAppliesThenExpires(t *testing.T) {
	w := newTestWorld(t, testConfig())
	p := w.Player()
	item := w.SpawnPowerUp(p.Center(), PowerUpRapidFire)

	w.Step(InputSnapshot{}, frameDT)
	if !item.Item.PickedUp || !item.Hidden {
		t.Fatal("item not picked up on contact")
	}
	wp := p.Player.Weapon()
	if wp.rateScale != rapidFireScale {
		t.Fatalf("rateScale = %v, want %v", wp.rateScale, rapidFireScale)
	}

	stepN(w, InputSnapshot{}, 195, 0.1)
	if _, ok := w.Get(item.Handle()); !ok {
		t.Fatal("item expired early")
	}
	stepN(w, InputSnapshot{}, 10, 0.1)
	if _, ok := w.Get(item.Handle()); ok {
		t.Fatal("item outlived its duration")
	}
	if wp.rateScale != 1 {
		t.Errorf("rateScale = %v after expiry, want 1", wp.rateScale)
	}
}

func TestRapidFireOverlappingPickups(t *testing.T) {
	w := newTestWorld(t, testConfig())
	p := w.Player()
	wp := p.Player.Weapon()

	first := w.SpawnPowerUp(p.Center(), PowerUpRapidFire)
	w.Step(InputSnapshot{}, frameDT)
	stepN(w, InputSnapshot{}, 100, 0.1)
	second := w.SpawnPowerUp(p.Center(), PowerUpRapidFire)
	w.Step(InputSnapshot{}, frameDT)
	if !second.Item.PickedUp {
		t.Fatal("second item not picked up")
	}

	// first expires, second has about 9.5s left
	stepN(w, InputSnapshot{}, 105, 0.1)
	if _, ok := w.Get(first.Handle()); ok {
		t.Fatal("first item outlived its duration")
	}
	if _, ok := w.Get(second.Handle()); !ok {
		t.Fatal("second item expired early")
	}
	if wp.rateScale != rapidFireScale {
		t.Errorf("rateScale = %v while the second item is active, want %v", wp.rateScale, rapidFireScale)
	}

	stepN(w, InputSnapshot{}, 100, 0.1)
	if _, ok := w.Get(second.Handle()); ok {
		t.Fatal("second item outlived its duration")
	}
	if wp.rateScale != 1 {
		t.Errorf("rateScale = %v after both expired, want 1", wp.rateScale)
	}
}

func TestRepairCappedAtMax(t *testing.T) {
	w := newTestWorld(t, testConfig())
	p := w.Player()

	p.Health = p.MaxHealth - 10
	w.SpawnPowerUp(p.Center(), PowerUpRepair)
	w.Step(InputSnapshot{}, frameDT)
	if p.Health != p.MaxHealth {
		t.Errorf("Health = %d, want %d", p.Health, p.MaxHealth)
	}

	p.Health = 100
	w.SpawnPowerUp(p.Center(), PowerUpRepair)
	w.Step(InputSnapshot{}, frameDT)
	if p.Health != 100+repairAmount {
		t.Errorf("Health = %d, want %d", p.Health, 100+repairAmount)
	}
}

func TestPowerUpPickedUpOnce(t *testing.T) {
	w := newTestWorld(t, testConfig())
	p := w.Player()
	p.Health = 10
	w.SpawnPowerUp(p.Center(), PowerUpRepair)

	stepN(w, InputSnapshot{}, 30, frameDT)
	if p.Health != 10+repairAmount {
		t.Errorf("Health = %d, want %d", p.Health, 10+repairAmount)
	}
}

func TestUncollectedPowerUpVanishes(t *testing.T) {
	w := newTestWorld(t, testConfig())
	item := w.SpawnPowerUp(V(50, 50), PowerUpRapidFire)

	stepN(w, InputSnapshot{}, 95, 0.1)
	if item.Dead() {
		t.Fatal("item vanished early")
	}
	stepN(w, InputSnapshot{}, 10, 0.1)
	if w.Count(KindItem) != 0 {
		t.Error("item still floating after its float time")
	}
}

func TestPowerUpEffectTags(t *testing.T) {
	for e := PowerUpRapidFire; e < powerUpEffectCount; e++ {
		if e.Tag() == "" {
			t.Errorf("%s has no tag", e)
		}
	}
}
