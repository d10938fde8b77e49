package game

import "math"

// LeadTarget returns the point to aim at so a projectile fired from `from` at
// speed meets a target at pos moving with vel. Stationary or very close
// targets are aimed at directly.
func LeadTarget(from, pos, vel Vec2, speed float64) Vec2 {
	if vel.Len() < 0.1 || speed <= 0 {
		return pos
	}
	dist := from.Distance(pos)
	if dist < 1 {
		return pos
	}

	// fixed-point refinement of the flight time
	t := dist / speed
	for i := 0; i < 5; i++ {
		next := from.Distance(pos.Add(vel.Scale(t))) / speed
		if math.Abs(next-t) < 0.001 {
			t = next
			break
		}
		t = next
	}
	return pos.Add(vel.Scale(t))
}
