package main

import (
	"math"

	"spacewaves/game"
)

const (
	swapEvery  = 60 * 15 // frames between weapon swaps
	tapEvery   = 8       // frames between semi-automatic trigger taps
	dashRadius = 40.0
)

// autopilot flies a slow circle around the middle of the field and shoots
// at the nearest enemy.
type autopilot struct {
	frame int
}

func (a *autopilot) next(w *game.World, dt float64) game.InputSnapshot {
	a.frame++
	var in game.InputSnapshot
	p := w.Player()
	if p == nil || w.State != game.Running {
		return in
	}
	center := p.Center()

	if target, dist := nearestEnemy(w, center); target != nil {
		speed := p.Player.Weapon().Config().Projectile.Speed
		in.HasCursor = true
		in.CursorWorld = game.LeadTarget(center, target.Center(), target.Velocity, speed)
		in.FireHeld = true
		in.FireDown = a.frame%tapEvery == 0
		in.Dash = dist < dashRadius
	}

	t := float64(a.frame) * dt
	goal := w.Bounds.Center().Add(game.Heading(t * 20).Scale(w.Bounds.H / 3))
	d := goal.Sub(center)
	in.Left, in.Right = d.X < -4, d.X > 4
	in.Up, in.Down = d.Y < -4, d.Y > 4

	wp := p.Player.Weapon()
	in.Reload = wp.Magazine == 0 && !wp.Reloading()
	in.Swap = a.frame%swapEvery == 0
	return in
}

// nearestEnemy finds the closest asteroid or attackable UFO.
func nearestEnemy(w *game.World, from game.Vec2) (*game.Entity, float64) {
	var best *game.Entity
	bestDist := math.Inf(1)
	for _, kind := range []game.Kind{game.KindAsteroid, game.KindUFO} {
		for _, e := range w.Entities(kind) {
			if e.UFO != nil && e.UFO.Protected() {
				continue
			}
			if d := e.DistanceTo(from); d < bestDist {
				best, bestDist = e, d
			}
		}
	}
	return best, bestDist
}
