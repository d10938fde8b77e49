package game

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Edge is a side of the playfield a UFO enters from.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeTop
	EdgeBottom
	edgeCount
)

func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	}
	return "unknown"
}

// inward returns the heading in degrees pointing from the edge into the playfield.
func (e Edge) inward() float64 {
	switch e {
	case EdgeRight:
		return 180
	case EdgeTop:
		return -90
	case EdgeBottom:
		return 90
	}
	return 0
}

const defaultUFOGrace = 1.0

// UFOState is the UFO variant payload.
type UFOState struct {
	Edge Edge

	// Grace counts down the spawn grace; the UFO neither moves nor hurts while it runs
	Grace float64

	// Heading is the travel direction in degrees
	Heading float64
	Speed   float64

	// Arrow is the entry indicator, alive only during the grace
	Arrow Handle

	wobbleDir float64
	elapsed   float64
}

// Protected reports whether the UFO is still inside its spawn grace.
func (u *UFOState) Protected() bool {
	return u.Grace > 0
}

// ArrowState is the entry indicator payload.
type ArrowState struct {
	UFO  Handle
	fade *gween.Tween
}

// NewUFO builds a UFO that is not yet in the world.
func (w *World) NewUFO() *Entity {
	cfg := GetEnemyConfig(KindUFO)
	e := NewEntity(KindUFO, TagUFO, Vec2{}, cfg.Size, LayerEnemies, w.anims)
	e.Health = cfg.Health
	e.MaxHealth = cfg.Health
	e.UFO = &UFOState{
		Grace:     w.ufoGrace(),
		Speed:     w.rng.Range(cfg.MinSpeed, cfg.MaxSpeed),
		wobbleDir: 1,
	}
	return e
}

// SpawnUFO places e just inside edge, inserts it together with its arrow
// indicator and starts the spawn grace.
func (w *World) SpawnUFO(e *Entity, edge Edge) {
	b := w.Bounds
	var c Vec2
	switch edge {
	case EdgeLeft:
		c = Vec2{X: b.Left() + e.Size.X, Y: w.rng.Range(b.Top()+0.15*b.H, b.Top()+0.9*b.H)}
	case EdgeRight:
		c = Vec2{X: b.Right() - e.Size.X, Y: w.rng.Range(b.Top()+0.15*b.H, b.Top()+0.9*b.H)}
	case EdgeTop:
		c = Vec2{X: w.rng.Range(b.Left()+0.1*b.W, b.Left()+0.85*b.W), Y: b.Top() + e.Size.Y}
	case EdgeBottom:
		c = Vec2{X: w.rng.Range(b.Left()+0.1*b.W, b.Left()+0.85*b.W), Y: b.Bottom() - e.Size.Y}
	default:
		panic("unknown edge " + edge.String())
	}
	e.SetCenter(c)

	us := e.UFO
	us.Edge = edge
	us.Grace = w.ufoGrace()
	us.elapsed = 0
	us.Heading = edge.inward() + w.rng.Range(-ufoHeadingJit, ufoHeadingJit)
	e.Velocity = Vec2{}
	w.Insert(e)

	arrow := NewEntity(KindArrow, TagArrow, Vec2{}, Vec2{X: 16, Y: 16}, LayerIndicators, w.anims)
	arrow.Rotation = edge.inward()
	arrow.SetCenter(c.Add(Heading(arrow.Rotation).Scale(max(e.Size.X, e.Size.Y))))
	arrow.SetAction(ActionEnter)
	arrow.Arrow = &ArrowState{UFO: e.handle}
	us.Arrow = w.Insert(arrow)
}

func (w *World) ufoGrace() float64 {
	if g := w.cfg.Waves.UFOGrace; g > 0 {
		return g
	}
	return defaultUFOGrace
}

func updateUFO(w *World, e *Entity, dt float64) {
	us := e.UFO
	e.updateAnimation(dt)

	if us.Grace > 0 {
		us.Grace -= dt
		us.elapsed += dt
		e.Velocity = Vec2{}
		w.stepArrow(us)
		if us.Grace > 0 {
			return
		}
		// a player still overlapping when the grace ends counts as a fresh contact
		e.forgetContacts(w, KindPlayer)
	}

	e.Rotation += us.wobbleDir * ufoWobbleSpeed * dt
	if e.Rotation > ufoWobbleLimit {
		e.Rotation = ufoWobbleLimit
		us.wobbleDir = -1
	} else if e.Rotation < -ufoWobbleLimit {
		e.Rotation = -ufoWobbleLimit
		us.wobbleDir = 1
	}

	e.Velocity = Heading(us.Heading).Scale(us.Speed)
	e.Move(e.Velocity, nil, dt)

	// bounce off the playfield edges
	r, b := e.Rect(), w.Bounds
	if (r.Left() < b.Left() && e.Velocity.X < 0) || (r.Right() > b.Right() && e.Velocity.X > 0) {
		us.Heading = NormalizeAngle(180 - us.Heading)
	}
	if (r.Top() < b.Top() && e.Velocity.Y < 0) || (r.Bottom() > b.Bottom() && e.Velocity.Y > 0) {
		us.Heading = NormalizeAngle(-us.Heading)
	}
}

// stepArrow drives the indicator from enter to idle to exit over the grace
// and removes it when the grace ends.
func (w *World) stepArrow(us *UFOState) {
	arrow, ok := w.Get(us.Arrow)
	if !ok || arrow.dead {
		return
	}
	switch {
	case us.Grace <= 0:
		arrow.Kill()
	case us.Grace <= ufoArrowExit:
		if arrow.Action != ActionExit {
			arrow.SetAction(ActionExit)
			arrow.Arrow.fade = gween.New(float32(arrow.Alpha), 0, float32(us.Grace), ease.Linear)
		}
	case arrow.Action == ActionEnter && (arrow.AnimationDone() || us.elapsed >= ufoArrowEnter):
		arrow.SetAction(ActionIdle)
	}
}

func updateArrow(w *World, e *Entity, dt float64) {
	e.updateAnimation(dt)
	as := e.Arrow
	if as.fade != nil {
		alpha, _ := as.fade.Update(float32(dt))
		e.Alpha = float64(alpha)
	}
	if _, ok := w.Get(as.UFO); !ok {
		e.Kill()
	}
}

func collideUFO(w *World, e, other *Entity) {
	us := e.UFO
	switch other.Kind {
	case KindAsteroid:
		us.Heading = w.rng.Range(-180, 180)
	case KindPlayer:
		if !us.Protected() {
			w.destroyEnemy(e, false)
		}
	case KindUFO, KindProjectile, KindArrow, KindExplosion, KindItem:
	default:
		panic("unhandled kind " + other.Kind.String())
	}
}

func removedUFO(w *World, e *Entity) {
	if arrow, ok := w.Get(e.UFO.Arrow); ok {
		arrow.Kill()
	}
}
