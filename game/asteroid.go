package game

// AsteroidState is the asteroid variant payload.
type AsteroidState struct {
	// Target is the point below the playfield the asteroid was aimed at
	Target Vec2
	Speed  float64
	Spin   float64
}

// NewAsteroid builds an asteroid that is not yet in the world.
func (w *World) NewAsteroid() *Entity {
	cfg := GetEnemyConfig(KindAsteroid)
	e := NewEntity(KindAsteroid, TagAsteroid, Vec2{}, cfg.Size, LayerEnemies, w.anims)
	e.Health = cfg.Health
	e.MaxHealth = cfg.Health
	e.Asteroid = &AsteroidState{
		Speed: w.rng.Range(cfg.MinSpeed, cfg.MaxSpeed),
		Spin:  w.rng.Range(-asteroidSpinMax, asteroidSpinMax),
	}
	return e
}

// SpawnAsteroid places e just above the playfield at a random column, aims it
// at a random point below the playfield and inserts it. The heading is fixed
// from then on.
func (w *World) SpawnAsteroid(e *Entity) {
	b := w.Bounds
	e.Pos = Vec2{
		X: w.rng.Range(b.Left(), b.Right()-e.Size.X),
		Y: b.Top() - e.Size.Y,
	}
	as := e.Asteroid
	as.Target = Vec2{
		X: w.rng.Range(b.Left(), b.Right()),
		Y: b.Bottom() + e.Size.Y,
	}
	e.Rotation = w.rng.Range(0, 360)
	e.Velocity = Heading(e.AngleTo(as.Target)).Scale(as.Speed)
	w.Insert(e)
}

func updateAsteroid(w *World, e *Entity, dt float64) {
	e.updateAnimation(dt)
	e.Rotation = NormalizeAngle(e.Rotation + e.Asteroid.Spin*dt)
	e.Move(e.Velocity, nil, dt)
	if !e.Rect().Intersects(w.Bounds.Inflate(w.cfg.World.OutOfBoundsMargin)) {
		e.Kill()
	}
}

func collideAsteroid(w *World, e, other *Entity) {
	switch other.Kind {
	case KindPlayer:
		w.destroyEnemy(e, false)
	case KindAsteroid, KindUFO, KindProjectile, KindArrow, KindExplosion, KindItem:
	default:
		panic("unhandled kind " + other.Kind.String())
	}
}
