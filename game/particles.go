package game

import (
	"image/color"
	"math"
)

// Particle is a shrinking filled circle.
type Particle struct {
	Pos Vec2
	Vel Vec2

	// Radius shrinks by Shrink per second; the particle is removed at zero
	Radius float64
	Shrink float64

	// Gravity pulls the particle down in pixels per second squared
	Gravity float64

	Color color.RGBA
	Layer int
}

// ParticleSystem is a bounded pool of particles.
type ParticleSystem struct {
	particles []Particle
	max       int
}

// NewParticleSystem creates a system holding at most limit particles.
func NewParticleSystem(limit int) *ParticleSystem {
	if limit <= 0 {
		limit = 1024
	}
	return &ParticleSystem{
		particles: make([]Particle, 0, min(limit, 1024)),
		max:       limit,
	}
}

// Add appends particles; those beyond capacity are dropped.
func (ps *ParticleSystem) Add(particles ...Particle) {
	for _, p := range particles {
		if len(ps.particles) >= ps.max {
			return
		}
		ps.particles = append(ps.particles, p)
	}
}

// Len returns the number of live particles.
func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}

// Particles returns the live particles. The slice is only valid until the next Update.
func (ps *ParticleSystem) Particles() []Particle {
	return ps.particles
}

// Update moves and shrinks every particle, dropping those whose radius reached zero.
func (ps *ParticleSystem) Update(dt float64) {
	for i := len(ps.particles) - 1; i >= 0; i-- {
		p := &ps.particles[i]
		p.Vel.Y += p.Gravity * dt
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		p.Radius -= p.Shrink * dt
		if p.Radius <= 0 {
			last := len(ps.particles) - 1
			ps.particles[i] = ps.particles[last]
			ps.particles = ps.particles[:last]
		}
	}
}

// Clear drops every particle.
func (ps *ParticleSystem) Clear() {
	ps.particles = ps.particles[:0]
}

// Burst scatters count particles from pos in random directions.
func (ps *ParticleSystem) Burst(rng *Rand, pos Vec2, count int, speed, radius, shrink float64, colors []color.RGBA, layer int) {
	for i := 0; i < count; i++ {
		dir := Heading(rng.Range(0, 360))
		ps.Add(Particle{
			Pos:    pos,
			Vel:    dir.Scale(speed * rng.Range(0.3, 1)),
			Radius: radius * rng.Range(0.6, 1.2),
			Shrink: shrink,
			Color:  colors[i%len(colors)],
			Layer:  layer,
		})
	}
}

// Ring sends count particles outward from pos at evenly spaced angles.
func (ps *ParticleSystem) Ring(pos Vec2, count int, speed, radius, shrink float64, colors []color.RGBA, layer int) {
	step := 360 / float64(count)
	for i := 0; i < count; i++ {
		ps.Add(Particle{
			Pos:    pos,
			Vel:    Heading(step * float64(i)).Scale(speed),
			Radius: radius,
			Shrink: shrink,
			Color:  colors[i%len(colors)],
			Layer:  layer,
		})
	}
}

// Draw queues every particle on cam.
func (ps *ParticleSystem) Draw(cam *Camera) {
	for _, p := range ps.particles {
		cam.Circle(p.Pos, math.Max(p.Radius, 0.5), p.Color, p.Layer)
	}
}
