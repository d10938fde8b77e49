package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// PlaceholderAnimations builds a library of generated shapes covering
// RequiredAnimations, so the game runs without an asset pack.
func PlaceholderAnimations() *AnimationLibrary {
	return buildAnimations(true)
}

// HeadlessAnimations has the same keys and timings as PlaceholderAnimations
// but no images, for simulating without a display.
func HeadlessAnimations() *AnimationLibrary {
	return buildAnimations(false)
}

func buildAnimations(draw bool) *AnimationLibrary {
	lib := NewAnimationLibrary()

	// frames only renders when drawing; otherwise it keeps the frame count
	frames := func(n int, render func() []*ebiten.Image) []*ebiten.Image {
		if !draw {
			return make([]*ebiten.Image, n)
		}
		return render()
	}
	still := func(tag string, w, h int, shape shapeFunc) {
		img := frames(1, func() []*ebiten.Image { return []*ebiten.Image{placeholder(w, h, shape)} })
		lib.Add(tag, ActionIdle, NewAnimation(img, 0, true))
	}

	still(TagPlayer, 16, 16, triangleShape(color.RGBA{100, 150, 255, 255}))
	still(TagUFO, 24, 19, ellipseShape(color.RGBA{120, 255, 140, 255}))
	still(TagAsteroid, 40, 38, ellipseShape(color.RGBA{120, 100, 80, 255}))
	still(TagRapidFire, 10, 10, ellipseShape(color.RGBA{255, 220, 0, 255}))
	still(TagRepair, 10, 10, ellipseShape(color.RGBA{255, 80, 120, 255}))

	arrowShape := triangleShape(color.RGBA{255, 60, 60, 255})
	arrow := func() []*ebiten.Image { return []*ebiten.Image{placeholder(16, 16, arrowShape)} }
	blink := func() []*ebiten.Image { return blinkFrames(arrow()[0], 4) }
	lib.Add(TagArrow, ActionEnter, NewAnimation(frames(4, blink), 0.06, false))
	lib.Add(TagArrow, ActionIdle, NewAnimation(frames(1, arrow), 0, true))
	lib.Add(TagArrow, ActionExit, NewAnimation(frames(4, blink), 0.06, true))

	explosion := func() []*ebiten.Image { return ringFrames(32, 6, color.RGBA{255, 180, 60, 255}) }
	lib.Add(TagExplosion, ActionIdle, NewAnimation(frames(6, explosion), 0.07, false))

	for _, name := range WeaponNames() {
		cfg, _ := LookupWeapon(name)
		p := cfg.Projectile
		still(p.Tag, int(p.Size.X), int(p.Size.Y), rectShape(p.Color))
		if p.Kind == ProjectileDirect {
			hit := func() []*ebiten.Image { return ringFrames(8, 3, p.Color) }
			lib.Add(p.Tag, ActionHit, NewAnimation(frames(3, hit), 0.05, false))
		}
	}
	return lib
}

type shapeFunc func(x, y, w, h int) color.Color

func placeholder(w, h int, shape shapeFunc) *ebiten.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if c := shape(x, y, w, h); c != nil {
				img.Set(x, y, c)
			}
		}
	}
	return ebiten.NewImageFromImage(img)
}

func rectShape(clr color.Color) shapeFunc {
	return func(x, y, w, h int) color.Color { return clr }
}

// triangleShape points right, matching rotation 0.
func triangleShape(clr color.Color) shapeFunc {
	dark := color.RGBA{0, 0, 0, 255}
	return func(x, y, w, h int) color.Color {
		relY := math.Abs(float64(y)+0.5-float64(h)/2) / (float64(h) / 2)
		edge := 1 - (float64(x)+0.5)/float64(w)
		switch {
		case relY < edge-0.15:
			return clr
		case relY <= edge:
			return dark
		}
		return nil
	}
}

func ellipseShape(clr color.Color) shapeFunc {
	return func(x, y, w, h int) color.Color {
		dx := (float64(x) + 0.5 - float64(w)/2) / (float64(w) / 2)
		dy := (float64(y) + 0.5 - float64(h)/2) / (float64(h) / 2)
		if dx*dx+dy*dy <= 1 {
			return clr
		}
		return nil
	}
}

func ringFrames(size, n int, clr color.RGBA) []*ebiten.Image {
	frames := make([]*ebiten.Image, n)
	for i := range frames {
		r := float64(size) / 2 * float64(i+1) / float64(n)
		fade := uint8(255 * (n - i) / n)
		c := color.RGBA{clr.R, clr.G, clr.B, fade}
		frames[i] = placeholder(size, size, func(x, y, w, h int) color.Color {
			d := math.Hypot(float64(x)+0.5-float64(w)/2, float64(y)+0.5-float64(h)/2)
			if d <= r && d >= r-2 {
				return c
			}
			return nil
		})
	}
	return frames
}

func blinkFrames(img *ebiten.Image, n int) []*ebiten.Image {
	blank := ebiten.NewImage(img.Bounds().Dx(), img.Bounds().Dy())
	frames := make([]*ebiten.Image, n)
	for i := range frames {
		if i%2 == 0 {
			frames[i] = img
		} else {
			frames[i] = blank
		}
	}
	return frames
}

// Starfield returns a w x h tile of scattered dim stars for the background.
func Starfield(rng *Rand, w, h, stars int) *ebiten.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < stars; i++ {
		v := uint8(rng.IntRange(60, 200))
		img.Set(rng.Intn(w), rng.Intn(h), color.RGBA{v, v, v + (255-v)/4, 255})
	}
	return ebiten.NewImageFromImage(img)
}
