package game

// PowerUpEffect is what an item does to the player that picks it up.
type PowerUpEffect int

const (
	// PowerUpRapidFire halves the active weapon's shot interval while it lasts.
	PowerUpRapidFire PowerUpEffect = iota
	// PowerUpRepair restores health once.
	PowerUpRepair
	powerUpEffectCount
)

func (p PowerUpEffect) String() string {
	switch p {
	case PowerUpRapidFire:
		return "rapidfire"
	case PowerUpRepair:
		return "repair"
	}
	return "unknown"
}

// Tag returns the animation tag of the item.
func (p PowerUpEffect) Tag() string {
	switch p {
	case PowerUpRapidFire:
		return TagRapidFire
	case PowerUpRepair:
		return TagRepair
	}
	panic("unknown power-up " + p.String())
}

const (
	powerUpMaxDuration = 20.0
	powerUpFloatTime   = 10.0 // an item nobody picks up vanishes after this
	repairAmount       = 50
	rapidFireScale     = 0.5
)

// ItemState is the power-up item payload.
type ItemState struct {
	Effect PowerUpEffect

	// Remaining counts the effect down once picked up
	Remaining float64
	PickedUp  bool

	age    float64
	weapon *Weapon
}

// SpawnPowerUp drops an item centered at pos.
func (w *World) SpawnPowerUp(pos Vec2, effect PowerUpEffect) *Entity {
	e := NewEntity(KindItem, effect.Tag(), Vec2{}, Vec2{X: 10, Y: 10}, LayerItems, w.anims)
	e.SetCenter(pos)
	e.Item = &ItemState{Effect: effect, Remaining: powerUpMaxDuration}
	w.Insert(e)
	return e
}

// pickUp hides the item, drops it from collision and applies its effect.
func (w *World) pickUp(item, player *Entity) {
	is := item.Item
	if is.PickedUp || item.dead {
		return
	}
	is.PickedUp = true
	item.Hidden = true
	w.collisions.Remove(item)

	switch is.Effect {
	case PowerUpRapidFire:
		is.weapon = player.Player.Weapon()
		is.weapon.SetRateScale(rapidFireScale)
	case PowerUpRepair:
		player.Health = min(player.Health+repairAmount, player.MaxHealth)
	default:
		panic("unknown power-up " + is.Effect.String())
	}
	PowerUpCollectedEvent.Publish(w.events, PowerUpCollected{Effect: is.Effect, Pos: item.Center()})
}

func updateItem(w *World, e *Entity, dt float64) {
	e.updateAnimation(dt)
	is := e.Item
	if !is.PickedUp {
		is.age += dt
		if is.age >= powerUpFloatTime {
			e.Kill()
		}
		return
	}
	is.Remaining -= dt
	if is.Remaining < 0 {
		e.Kill()
	}
}

// removedItem revokes the item's effect. A weapon keeps rapid fire while
// another picked-up item still boosts it.
func removedItem(w *World, e *Entity) {
	is := e.Item
	if is.weapon == nil {
		return
	}
	scale := 1.0
	w.Each(KindItem, func(o *Entity) {
		if o != e && o.Item.weapon == is.weapon {
			scale = rapidFireScale
		}
	})
	is.weapon.SetRateScale(scale)
	is.weapon = nil
}
