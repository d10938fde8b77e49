package game

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Window composes the frame: the world camera renders into an offscreen
// canvas at world resolution, which is scaled onto the screen with the
// scroll fraction and screen shake applied, then the foreground camera draws
// on top at screen resolution.
type Window struct {
	Width, Height int

	World      *Camera
	Foreground *Camera

	// ShakeDecay is the shake magnitude lost per second
	ShakeDecay float64
	shake      float64

	// rng is separate from the world's so drawing never shifts a seeded run
	rng    *Rand
	canvas *ebiten.Image
}

// NewWindow creates the two cameras for a screen of the configured size.
func NewWindow(cfg Config) *Window {
	fg := cfg.Camera
	fg.Scale, fg.MinScale, fg.MaxScale = 1, 1, 1
	return &Window{
		Width:      cfg.Screen.Width,
		Height:     cfg.Screen.Height,
		World:      NewCamera(cfg.Screen.Width, cfg.Screen.Height, cfg.Camera),
		Foreground: NewCamera(cfg.Screen.Width, cfg.Screen.Height, fg),
		ShakeDecay: cfg.Camera.ShakeDecay,
		rng:        NewRand(0),
	}
}

// Rand returns the presentation random source used for shake and backdrops.
func (w *Window) Rand() *Rand {
	return w.rng
}

// Shake raises the shake magnitude to amount. Smaller requests are ignored.
func (w *Window) Shake(amount float64) {
	w.shake = max(w.shake, amount)
}

// ShakeMagnitude returns the current shake in screen pixels.
func (w *Window) ShakeMagnitude() float64 {
	return w.shake
}

// Update decays the shake and steps both cameras.
func (w *Window) Update(dt float64) {
	w.shake = max(w.shake-w.ShakeDecay*dt, 0)
	w.World.Update(dt)
	w.Foreground.Update(dt)
}

// ShakeOffset returns a random offset within the current magnitude.
func (w *Window) ShakeOffset() Vec2 {
	if w.shake <= 0 {
		return Vec2{}
	}
	return Vec2{
		X: math.Round(w.rng.Range(-w.shake, w.shake)),
		Y: math.Round(w.rng.Range(-w.shake, w.shake)),
	}
}

// Present flushes both cameras onto screen.
func (w *Window) Present(screen *ebiten.Image) {
	cam := w.World
	view := cam.View()
	vw, vh := int(math.Ceil(view.X))+1, int(math.Ceil(view.Y))+1

	// sized for the widest zoom so zooming never reallocates
	cw := int(math.Ceil(float64(w.Width)/cam.MinScale)) + 1
	ch := int(math.Ceil(float64(w.Height)/cam.MinScale)) + 1
	if w.canvas == nil || w.canvas.Bounds().Dx() < cw || w.canvas.Bounds().Dy() < ch {
		w.canvas = ebiten.NewImage(cw, ch)
	}
	canvas := subImage(w.canvas, min(vw, cw), min(vh, ch))
	canvas.Clear()
	cam.Flush(canvas)

	diff := cam.ScrollDiff()
	shake := w.ShakeOffset()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-diff.X, -diff.Y)
	op.GeoM.Scale(cam.Scale, cam.Scale)
	op.GeoM.Translate(shake.X, shake.Y)
	screen.DrawImage(canvas, op)

	w.Foreground.Flush(screen)
}
