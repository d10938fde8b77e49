package game

// Move displaces the entity by movement*dt, resolving against static obstacles
// one axis at a time: X first, then Y. On overlap the leading edge is clamped to
// the obstacle's near edge and the touched side is recorded in Collisions.
// A displacement larger than an obstacle can tunnel through it.
func (e *Entity) Move(movement Vec2, obstacles []Rect, dt float64) {
	e.Collisions = Sides{}

	e.Pos.X += movement.X * dt
	for _, o := range obstacles {
		if !e.Rect().Intersects(o) {
			continue
		}
		if movement.X > 0 {
			e.Pos.X = o.Left() - e.Size.X
			e.Collisions.Right = true
		} else if movement.X < 0 {
			e.Pos.X = o.Right()
			e.Collisions.Left = true
		}
	}

	e.Pos.Y += movement.Y * dt
	for _, o := range obstacles {
		if !e.Rect().Intersects(o) {
			continue
		}
		if movement.Y > 0 {
			e.Pos.Y = o.Top() - e.Size.Y
			e.Collisions.Bottom = true
		} else if movement.Y < 0 {
			e.Pos.Y = o.Bottom()
			e.Collisions.Top = true
		}
	}
}

// BoundaryWalls returns four obstacle rectangles of the given thickness
// enclosing bounds from the outside.
func BoundaryWalls(bounds Rect, thickness float64) []Rect {
	return []Rect{
		{X: bounds.X - thickness, Y: bounds.Y - thickness, W: bounds.W + 2*thickness, H: thickness},
		{X: bounds.X - thickness, Y: bounds.Bottom(), W: bounds.W + 2*thickness, H: thickness},
		{X: bounds.X - thickness, Y: bounds.Y, W: thickness, H: bounds.H},
		{X: bounds.Right(), Y: bounds.Y, W: thickness, H: bounds.H},
	}
}

// applyFriction damps v continuously at rate per second.
func applyFriction(v Vec2, rate, dt float64) Vec2 {
	if rate <= 0 {
		return v
	}
	return v.Scale(1 / (1 + rate*dt))
}
