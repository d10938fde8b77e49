package game

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrMissingAnimation is returned when no animation is registered for a tag/action pair.
var ErrMissingAnimation = errors.New("missing animation")

// AnimationHandle is one entity's playback cursor over shared frames.
type AnimationHandle interface {
	// Copy returns an independent cursor over the same frames, rewound.
	Copy() AnimationHandle

	// Frame returns the current frame image.
	Frame() *ebiten.Image

	// Update advances playback by dt seconds.
	Update(dt float64)

	// Done reports whether a non-looping sequence has played to the end.
	Done() bool
}

// AnimationProvider looks up animations by entity tag and action.
type AnimationProvider interface {
	Get(tag, action string) (AnimationHandle, error)
}

// AnimationKey names one tag/action pair.
type AnimationKey struct {
	Tag    string
	Action string
}

func (k AnimationKey) String() string {
	return k.Tag + "/" + k.Action
}

// Animation is a frame sequence played at a fixed frame duration.
type Animation struct {
	frames        []*ebiten.Image
	frameDuration float64
	loop          bool

	elapsed float64
	done    bool
}

// NewAnimation creates an animation template. frameDuration <= 0 defaults to 0.1s.
func NewAnimation(frames []*ebiten.Image, frameDuration float64, loop bool) *Animation {
	if frameDuration <= 0 {
		frameDuration = 0.1
	}
	return &Animation{
		frames:        frames,
		frameDuration: frameDuration,
		loop:          loop,
	}
}

// Copy returns a rewound animation sharing the same frames.
func (a *Animation) Copy() AnimationHandle {
	return &Animation{
		frames:        a.frames,
		frameDuration: a.frameDuration,
		loop:          a.loop,
	}
}

// Index returns the current frame index.
func (a *Animation) Index() int {
	n := len(a.frames)
	if n == 0 {
		return 0
	}
	i := int(a.elapsed / a.frameDuration)
	if a.loop {
		return i % n
	}
	return min(i, n-1)
}

// Frame returns the image for the current frame, nil when there are no frames.
func (a *Animation) Frame() *ebiten.Image {
	if len(a.frames) == 0 {
		return nil
	}
	return a.frames[a.Index()]
}

// Update advances playback by dt, wrapping loops and stopping one-shots on the last frame.
func (a *Animation) Update(dt float64) {
	if a.done {
		return
	}
	a.elapsed += dt
	total := a.frameDuration * float64(len(a.frames))
	if a.loop {
		if total > 0 && a.elapsed >= total {
			a.elapsed -= total * float64(int(a.elapsed/total))
		}
		return
	}
	if a.elapsed >= total {
		a.elapsed = total
		a.done = true
	}
}

// Done reports whether a one-shot animation has played through.
func (a *Animation) Done() bool {
	return a.done
}

// AnimationLibrary is an AnimationProvider backed by a map of templates.
type AnimationLibrary struct {
	anims map[AnimationKey]*Animation
}

// NewAnimationLibrary creates an empty library.
func NewAnimationLibrary() *AnimationLibrary {
	return &AnimationLibrary{anims: make(map[AnimationKey]*Animation)}
}

// Add registers a template for tag/action, replacing any previous one.
func (l *AnimationLibrary) Add(tag, action string, a *Animation) {
	l.anims[AnimationKey{tag, action}] = a
}

// Get returns a fresh cursor for tag/action.
func (l *AnimationLibrary) Get(tag, action string) (AnimationHandle, error) {
	a, ok := l.anims[AnimationKey{tag, action}]
	if !ok {
		return nil, fmt.Errorf("%w: %s/%s", ErrMissingAnimation, tag, action)
	}
	return a.Copy(), nil
}

// RequiredAnimations lists every tag/action pair the simulation can request.
func RequiredAnimations() []AnimationKey {
	keys := []AnimationKey{
		{TagPlayer, ActionIdle},
		{TagUFO, ActionIdle},
		{TagAsteroid, ActionIdle},
		{TagArrow, ActionEnter},
		{TagArrow, ActionIdle},
		{TagArrow, ActionExit},
		{TagExplosion, ActionIdle},
	}
	for _, tag := range []string{TagRapidFire, TagRepair} {
		keys = append(keys, AnimationKey{tag, ActionIdle})
	}
	for _, name := range WeaponNames() {
		cfg, _ := LookupWeapon(name)
		p := cfg.Projectile
		keys = append(keys, AnimationKey{p.Tag, ActionIdle})
		if p.Kind == ProjectileDirect {
			keys = append(keys, AnimationKey{p.Tag, ActionHit})
		}
	}
	return keys
}

// ValidateAnimations checks that p can serve every key. All missing keys are
// reported together.
func ValidateAnimations(p AnimationProvider, keys []AnimationKey) error {
	var errs []error
	seen := make(map[AnimationKey]bool, len(keys))
	for _, k := range keys {
		if seen[k] {
			continue
		}
		seen[k] = true
		if _, err := p.Get(k.Tag, k.Action); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("validate animations: %w", errors.Join(errs...))
	}
	return nil
}
