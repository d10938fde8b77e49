package game

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

const frameDT = 1.0 / 60

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// stubAnimations hands out short imageless animations for any key not listed
// in missing, and counts lookups.
type stubAnimations struct {
	missing map[AnimationKey]bool
	gets    int
}

func (s *stubAnimations) Get(tag, action string) (AnimationHandle, error) {
	s.gets++
	if s.missing[AnimationKey{tag, action}] {
		return nil, missingAnimation(tag, action)
	}
	return NewAnimation(make([]*ebiten.Image, 4), 0.1, action == ActionIdle), nil
}

func missingAnimation(tag, action string) error {
	_, err := NewAnimationLibrary().Get(tag, action)
	return err
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Seed = 42
	return cfg
}

// newTestWorld builds a world whose wave system never spawns, so tests only
// see the player and what they insert themselves.
func newTestWorld(t *testing.T, cfg Config) *World {
	t.Helper()
	w := NewWorld(cfg, HeadlessAnimations())
	w.Waves = NewWaveSystem(cfg.Waves)
	return w
}

func stepN(w *World, in InputSnapshot, n int, dt float64) {
	for i := 0; i < n; i++ {
		w.Step(in, dt)
	}
}

// placeAsteroid inserts a motionless asteroid centered at c.
func placeAsteroid(w *World, c Vec2) *Entity {
	a := w.NewAsteroid()
	a.SetCenter(c)
	a.Asteroid.Spin = 0
	w.Insert(a)
	return a
}

// placeUFO inserts a UFO centered at c with its grace already over.
func placeUFO(w *World, c Vec2, heading float64) *Entity {
	u := w.NewUFO()
	u.SetCenter(c)
	u.UFO.Grace = 0
	u.UFO.Heading = heading
	w.Insert(u)
	return u
}

func projectileConfig(t *testing.T, weapon string) *ProjectileConfig {
	t.Helper()
	cfg, ok := LookupWeapon(weapon)
	if !ok {
		t.Fatalf("LookupWeapon(%q) not found", weapon)
	}
	return &cfg.Projectile
}
