package game

import (
	"image/color"
	"testing"
)

var testColors = []color.RGBA{{255, 0, 0, 255}, {0, 255, 0, 255}}

func TestParticlesRemovedAtZeroRadius(t *testing.T) {
	ps := NewParticleSystem(16)
	ps.Add(
		Particle{Radius: 1, Shrink: 10},
		Particle{Radius: 5, Shrink: 1, Vel: V(10, 0)},
	)

	ps.Update(0.1)
	if ps.Len() != 1 {
		t.Fatalf("Len = %d, want 1", ps.Len())
	}
	p := ps.Particles()[0]
	if !approxEqual(p.Radius, 4.9, 1e-9) || !approxEqual(p.Pos.X, 1, 1e-9) {
		t.Errorf("survivor = %+v, want radius 4.9 at x 1", p)
	}
}

func TestParticleGravity(t *testing.T) {
	ps := NewParticleSystem(4)
	ps.Add(Particle{Radius: 10, Gravity: 100})
	ps.Update(0.5)
	if got := ps.Particles()[0].Vel.Y; !approxEqual(got, 50, 1e-9) {
		t.Errorf("Vel.Y = %v, want 50", got)
	}
}

func TestParticleCapacity(t *testing.T) {
	ps := NewParticleSystem(3)
	for i := 0; i < 5; i++ {
		ps.Add(Particle{Radius: 1, Shrink: 1})
	}
	if ps.Len() != 3 {
		t.Errorf("Len = %d, want 3", ps.Len())
	}
	ps.Clear()
	if ps.Len() != 0 {
		t.Errorf("Len = %d after Clear, want 0", ps.Len())
	}
}

func TestRingSpreadsEvenly(t *testing.T) {
	ps := NewParticleSystem(64)
	ps.Ring(V(10, 10), 4, 20, 2, 1, testColors, LayerParticles)

	want := []Vec2{V(20, 0), V(0, -20), V(-20, 0), V(0, 20)}
	got := ps.Particles()
	if len(got) != len(want) {
		t.Fatalf("Len = %d, want %d", len(got), len(want))
	}
	for i, p := range got {
		if !approxEqual(p.Vel.X, want[i].X, 1e-9) || !approxEqual(p.Vel.Y, want[i].Y, 1e-9) {
			t.Errorf("particle %d Vel = %v, want %v", i, p.Vel, want[i])
		}
		if p.Color != testColors[i%len(testColors)] {
			t.Errorf("particle %d Color = %v", i, p.Color)
		}
	}
}

func TestBurstSpeedsBounded(t *testing.T) {
	ps := NewParticleSystem(64)
	ps.Burst(NewRand(5), V(0, 0), 20, 50, 2, 1, testColors, LayerParticles)
	if ps.Len() != 20 {
		t.Fatalf("Len = %d, want 20", ps.Len())
	}
	for _, p := range ps.Particles() {
		if v := p.Vel.Len(); v < 50*0.3-1e-9 || v > 50 {
			t.Errorf("speed %v outside [15, 50]", v)
		}
	}
}

func TestParticlesDrawQueuesCircles(t *testing.T) {
	ps := NewParticleSystem(8)
	ps.Ring(Vec2{}, 3, 10, 2, 1, testColors, LayerParticles)
	cam := newTestCamera()
	ps.Draw(cam)
	for _, cmd := range cam.Drain() {
		if cmd.Kind != CmdCircle || cmd.Layer != LayerParticles {
			t.Errorf("queued %v on layer %d, want circles on %d", cmd.Kind, cmd.Layer, LayerParticles)
		}
	}
}
