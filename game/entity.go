package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
)

// Kind identifies which collection an entity belongs to and which behavior drives it.
type Kind int

const (
	KindPlayer Kind = iota
	KindProjectile
	KindUFO
	KindAsteroid
	KindArrow
	KindExplosion
	KindItem
	kindCount
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindProjectile:
		return "projectile"
	case KindUFO:
		return "ufo"
	case KindAsteroid:
		return "asteroid"
	case KindArrow:
		return "arrow"
	case KindExplosion:
		return "explosion"
	case KindItem:
		return "item"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Animation tags
const (
	TagPlayer    = "player"
	TagUFO       = "ufo"
	TagAsteroid  = "asteroid"
	TagArrow     = "arrow"
	TagExplosion = "explosion"
	TagRapidFire = "rapidfire"
	TagRepair    = "repair"
)

// Animation actions
const (
	ActionIdle  = "idle"
	ActionHit   = "hit"
	ActionEnter = "enter"
	ActionExit  = "exit"
)

// Camera layers
const (
	LayerBackground = -10
	LayerParticles  = 0
	LayerItems      = 1
	LayerEnemies    = 2
	LayerProjectile = 3
	LayerPlayer     = 4
	LayerIndicators = 5
	LayerDebug      = 50
)

// Sides records which edges touched a static obstacle during the last Move.
type Sides struct {
	Top, Bottom, Left, Right bool
}

// Any reports whether any side collided.
func (s Sides) Any() bool {
	return s.Top || s.Bottom || s.Left || s.Right
}

// Entity is any simulated object. Kind-specific state lives in exactly one of
// the variant pointers; the rest is shared by every kind.
type Entity struct {
	handle Handle

	Kind Kind
	Tag  string

	// Pos is the top-left corner of the bounding box in world pixels
	Pos  Vec2
	Size Vec2

	// Rotation in degrees, 0 = right, 90 = up
	Rotation float64

	Layer  int
	Action string
	Flip   bool

	// Hidden entities are simulated but not drawn
	Hidden bool

	// Alpha scales the sprite opacity
	Alpha float64

	Velocity  Vec2
	Health    int
	MaxHealth int

	// Collisions holds the obstacle sides touched during the last Move
	Collisions Sides

	anims    AnimationProvider
	anim     AnimationHandle
	dead     bool
	age      float64
	contacts map[Handle]struct{}
	body     *resolv.Object

	Player     *PlayerState
	Projectile *ProjectileState
	UFO        *UFOState
	Asteroid   *AsteroidState
	Arrow      *ArrowState
	Item       *ItemState
}

// NewEntity creates an entity playing the idle action of tag.
func NewEntity(kind Kind, tag string, pos, size Vec2, layer int, anims AnimationProvider) *Entity {
	e := &Entity{
		Kind:     kind,
		Tag:      tag,
		Pos:      pos,
		Size:     size,
		Layer:    layer,
		Alpha:    1,
		anims:    anims,
		contacts: make(map[Handle]struct{}),
	}
	e.SetAction(ActionIdle)
	return e
}

// Handle returns the store handle, or the zero Handle before insertion.
func (e *Entity) Handle() Handle {
	return e.handle
}

// SetAction switches animation when action differs from the current one.
// Re-setting the same action keeps frame progress. Asking for an animation the
// provider does not have panics: ValidateAnimations is expected to have run.
func (e *Entity) SetAction(action string) {
	if action == e.Action && (e.anim != nil || e.anims == nil) {
		return
	}
	e.Action = action
	if e.anims == nil {
		return
	}
	anim, err := e.anims.Get(e.Tag, action)
	if err != nil {
		panic(fmt.Errorf("entity %s: %w", e.Kind, err))
	}
	e.anim = anim
}

// Frame returns the current animation frame, or nil without an animation.
func (e *Entity) Frame() *ebiten.Image {
	if e.anim == nil {
		return nil
	}
	return e.anim.Frame()
}

// AnimationDone reports whether the current non-looping animation finished.
// Entities without an animation report true.
func (e *Entity) AnimationDone() bool {
	return e.anim == nil || e.anim.Done()
}

func (e *Entity) updateAnimation(dt float64) {
	if e.anim != nil {
		e.anim.Update(dt)
	}
}

// Rect returns the bounding box derived from the current transform.
func (e *Entity) Rect() Rect {
	return RectFrom(e.Pos, e.Size)
}

// Center returns the middle of the bounding box.
func (e *Entity) Center() Vec2 {
	return e.Pos.Add(e.Size.Scale(0.5))
}

// SetCenter moves the entity so its bounding box is centered on c.
func (e *Entity) SetCenter(c Vec2) {
	e.Pos = c.Sub(e.Size.Scale(0.5))
}

// AngleTo returns the angle in degrees from the entity center to p, up positive.
func (e *Entity) AngleTo(p Vec2) float64 {
	return AngleBetween(e.Center(), p)
}

// DistanceTo returns the distance from the entity center to p.
func (e *Entity) DistanceTo(p Vec2) float64 {
	return e.Center().Distance(p)
}

// Kill marks the entity for removal at the end of the frame.
func (e *Entity) Kill() {
	e.dead = true
}

// Dead reports whether Kill was called.
func (e *Entity) Dead() bool {
	return e.dead
}

// Touching reports whether o is in e's contact memory.
func (e *Entity) Touching(o *Entity) bool {
	_, ok := e.contacts[o.handle]
	return ok
}
