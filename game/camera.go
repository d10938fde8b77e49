package game

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds an active ScrollTo tween for both axes.
type scrollAnim struct {
	x, y         *gween.Tween
	doneX, doneY bool
}

// Camera maps world pixels to a render target. It keeps a float scroll and
// hands out the floored value for drawing; the fraction is reapplied when the
// finished frame is blitted so motion stays smooth without texel shimmer.
type Camera struct {
	// Width and Height are the output size in screen pixels
	Width, Height int

	Scale        float64
	desiredScale float64
	MinScale     float64
	MaxScale     float64

	// ZoomSpeed is the fraction of the remaining zoom covered per 60 Hz frame
	ZoomSpeed float64

	// PanStrength divides the remaining distance to the target each 60 Hz frame
	PanStrength float64

	// FollowMargin pads the box around follow targets, in world pixels
	FollowMargin float64

	trueScroll Vec2
	scroll     *scrollAnim
	queue      []DrawCommand
}

// NewCamera creates a camera from cfg rendering to a width x height target.
func NewCamera(width, height int, cfg CameraConfig) *Camera {
	c := &Camera{
		Width:        width,
		Height:       height,
		MinScale:     cfg.MinScale,
		MaxScale:     cfg.MaxScale,
		ZoomSpeed:    cfg.ZoomSpeed,
		PanStrength:  cfg.PanStrength,
		FollowMargin: cfg.FollowMargin,
		queue:        make([]DrawCommand, 0, 512),
	}
	if c.MinScale <= 0 {
		c.MinScale = cfg.Scale
	}
	if c.MaxScale < c.MinScale {
		c.MaxScale = c.MinScale
	}
	c.Scale = clamp(cfg.Scale, c.MinScale, c.MaxScale)
	c.desiredScale = c.Scale
	return c
}

// View returns the size of the visible area in world pixels.
func (c *Camera) View() Vec2 {
	return Vec2{X: float64(c.Width) / c.Scale, Y: float64(c.Height) / c.Scale}
}

// TrueScroll returns the unrounded top-left of the view in world pixels.
func (c *Camera) TrueScroll() Vec2 {
	return c.trueScroll
}

// Scroll returns the floored scroll used to place draw commands.
func (c *Camera) Scroll() Vec2 {
	return c.trueScroll.Floor()
}

// ScrollDiff returns the fractional part dropped by Scroll.
func (c *Camera) ScrollDiff() Vec2 {
	return c.trueScroll.Sub(c.Scroll())
}

// SetScroll jumps the view so its top-left is at p.
func (c *Camera) SetScroll(p Vec2) {
	c.trueScroll = p
	c.scroll = nil
}

// CenterOn jumps the view so it is centered on p.
func (c *Camera) CenterOn(p Vec2) {
	c.SetScroll(p.Sub(c.View().Scale(0.5)))
}

// ScreenToWorld converts a point on the camera's output to world pixels.
func (c *Camera) ScreenToWorld(p Vec2) Vec2 {
	return p.Scale(1 / c.Scale).Add(c.trueScroll)
}

// WorldToScreen converts a world point to the camera's output.
func (c *Camera) WorldToScreen(p Vec2) Vec2 {
	return p.Sub(c.trueScroll).Scale(c.Scale)
}

// Scrolling reports whether a ScrollTo tween is running.
func (c *Camera) Scrolling() bool {
	return c.scroll != nil
}

// ScrollTo tweens the view center to p over duration seconds. Follow is
// ignored while the tween runs.
func (c *Camera) ScrollTo(p Vec2, duration float32, easeFn ease.TweenFunc) {
	to := p.Sub(c.View().Scale(0.5))
	c.scroll = &scrollAnim{
		x: gween.New(float32(c.trueScroll.X), float32(to.X), duration, easeFn),
		y: gween.New(float32(c.trueScroll.Y), float32(to.Y), duration, easeFn),
	}
}

// smoothing converts a per-60Hz-frame blend factor to one for dt seconds.
// At dt = 1/60 it returns perFrame unchanged.
func smoothing(perFrame, dt float64) float64 {
	perFrame = clamp(perFrame, 0, 1)
	return 1 - math.Pow(1-perFrame, dt*60)
}

// Follow pans the view toward centering target.
func (c *Camera) Follow(target Vec2, dt float64) {
	if c.scroll != nil || c.PanStrength <= 0 {
		return
	}
	k := smoothing(1/c.PanStrength, dt)
	offset := target.Sub(c.trueScroll).Sub(c.View().Scale(0.5))
	c.trueScroll = c.trueScroll.Add(offset.Scale(k))
}

// FollowTargets pans toward the middle of the box around targets and sets the
// desired scale so the box plus FollowMargin fits the view.
func (c *Camera) FollowTargets(targets []Rect, dt float64) {
	if len(targets) == 0 {
		return
	}
	box := targets[0]
	for _, r := range targets[1:] {
		box = box.Union(r)
	}
	fitW := float64(c.Width) / (box.W + 2*c.FollowMargin)
	fitH := float64(c.Height) / (box.H + 2*c.FollowMargin)
	c.SetDesiredScale(math.Min(fitW, fitH))
	c.Follow(box.Center(), dt)
}

// SetDesiredScale sets the zoom target, clamped to the scale bounds.
func (c *Camera) SetDesiredScale(s float64) {
	c.desiredScale = clamp(s, c.MinScale, c.MaxScale)
}

// DesiredScale returns the zoom target.
func (c *Camera) DesiredScale() float64 {
	return c.desiredScale
}

// Update advances the zoom and any running ScrollTo tween.
func (c *Camera) Update(dt float64) {
	c.Scale += (c.desiredScale - c.Scale) * smoothing(c.ZoomSpeed, dt)
	c.Scale = clamp(c.Scale, c.MinScale, c.MaxScale)

	if s := c.scroll; s != nil {
		if !s.doneX {
			v, done := s.x.Update(float32(dt))
			c.trueScroll.X = float64(v)
			s.doneX = done
		}
		if !s.doneY {
			v, done := s.y.Update(float32(dt))
			c.trueScroll.Y = float64(v)
			s.doneY = done
		}
		if s.doneX && s.doneY {
			c.scroll = nil
		}
	}
}
