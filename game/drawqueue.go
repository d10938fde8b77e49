package game

import (
	"image"
	"image/color"
	"math"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// CommandKind selects how a DrawCommand is executed.
type CommandKind int

const (
	CmdLine CommandKind = iota
	CmdCircle
	CmdRect
	CmdImage
	CmdBackground
	CmdSprite
)

func (k CommandKind) String() string {
	switch k {
	case CmdLine:
		return "line"
	case CmdCircle:
		return "circle"
	case CmdRect:
		return "rect"
	case CmdImage:
		return "image"
	case CmdBackground:
		return "background"
	case CmdSprite:
		return "sprite"
	}
	return "unknown"
}

// DrawCommand is one queued draw. Which fields matter depends on Kind.
type DrawCommand struct {
	Kind  CommandKind
	Layer int

	// Screen commands are in output pixels and ignore the scroll
	Screen bool

	From, To Vec2 // line ends; To unused otherwise
	Pos      Vec2 // circle center, image top-left
	Rect     Rect
	Radius   float64

	// Width is the stroke width; 0 fills circles and rects
	Width float64
	Color color.RGBA

	Image *ebiten.Image

	// Parallax scales the scroll applied to a background (1 = moves with the world)
	Parallax float64

	Entity *Entity
}

// Enqueue adds cmd to this frame's queue.
func (c *Camera) Enqueue(cmd DrawCommand) {
	if cmd.Kind == CmdSprite && cmd.Entity != nil {
		cmd.Layer = cmd.Entity.Layer
	}
	c.queue = append(c.queue, cmd)
}

// Line queues a world-space line.
func (c *Camera) Line(from, to Vec2, width float64, clr color.RGBA, layer int) {
	c.Enqueue(DrawCommand{Kind: CmdLine, From: from, To: to, Width: width, Color: clr, Layer: layer})
}

// Circle queues a filled world-space circle.
func (c *Camera) Circle(center Vec2, radius float64, clr color.RGBA, layer int) {
	c.Enqueue(DrawCommand{Kind: CmdCircle, Pos: center, Radius: radius, Color: clr, Layer: layer})
}

// RectOutline queues a world-space rectangle outline.
func (c *Camera) RectOutline(r Rect, width float64, clr color.RGBA, layer int) {
	c.Enqueue(DrawCommand{Kind: CmdRect, Rect: r, Width: width, Color: clr, Layer: layer})
}

// FillRect queues a filled world-space rectangle.
func (c *Camera) FillRect(r Rect, clr color.RGBA, layer int) {
	c.Enqueue(DrawCommand{Kind: CmdRect, Rect: r, Color: clr, Layer: layer})
}

// Image queues img with its top-left at pos.
func (c *Camera) Image(img *ebiten.Image, pos Vec2, layer int) {
	c.Enqueue(DrawCommand{Kind: CmdImage, Image: img, Pos: pos, Layer: layer})
}

// Background queues img tiled over the whole target, scrolled by parallax.
func (c *Camera) Background(img *ebiten.Image, parallax float64, layer int) {
	c.Enqueue(DrawCommand{Kind: CmdBackground, Image: img, Parallax: parallax, Layer: layer})
}

// Sprite queues e's current frame on e's layer.
func (c *Camera) Sprite(e *Entity) {
	c.Enqueue(DrawCommand{Kind: CmdSprite, Entity: e})
}

// Len returns the number of queued commands.
func (c *Camera) Len() int {
	return len(c.queue)
}

// Drain returns the queued commands stable-sorted by layer and empties the
// queue. Commands on the same layer keep their enqueue order.
func (c *Camera) Drain() []DrawCommand {
	out := slices.Clone(c.queue)
	slices.SortStableFunc(out, func(a, b DrawCommand) int {
		return a.Layer - b.Layer
	})
	clear(c.queue)
	c.queue = c.queue[:0]
	return out
}

// Flush executes the queued commands onto dst in layer order and clears the queue.
func (c *Camera) Flush(dst *ebiten.Image) {
	scroll := c.Scroll()
	for _, cmd := range c.Drain() {
		offset := scroll
		if cmd.Screen {
			offset = Vec2{}
		}
		c.execute(dst, cmd, offset)
	}
}

func (c *Camera) execute(dst *ebiten.Image, cmd DrawCommand, offset Vec2) {
	switch cmd.Kind {
	case CmdLine:
		a, b := cmd.From.Sub(offset), cmd.To.Sub(offset)
		vector.StrokeLine(dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(max(cmd.Width, 1)), cmd.Color, false)
	case CmdCircle:
		p := cmd.Pos.Sub(offset)
		if cmd.Width > 0 {
			vector.StrokeCircle(dst, float32(p.X), float32(p.Y), float32(cmd.Radius), float32(cmd.Width), cmd.Color, true)
			return
		}
		vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), float32(cmd.Radius), cmd.Color, true)
	case CmdRect:
		p := cmd.Rect.Pos().Sub(offset)
		if cmd.Width > 0 {
			vector.StrokeRect(dst, float32(p.X), float32(p.Y), float32(cmd.Rect.W), float32(cmd.Rect.H), float32(cmd.Width), cmd.Color, false)
			return
		}
		vector.DrawFilledRect(dst, float32(p.X), float32(p.Y), float32(cmd.Rect.W), float32(cmd.Rect.H), cmd.Color, false)
	case CmdImage:
		if cmd.Image == nil {
			return
		}
		op := &ebiten.DrawImageOptions{}
		p := cmd.Pos.Sub(offset)
		op.GeoM.Translate(p.X, p.Y)
		dst.DrawImage(cmd.Image, op)
	case CmdBackground:
		drawTiled(dst, cmd.Image, offset.Scale(cmd.Parallax))
	case CmdSprite:
		drawSprite(dst, cmd.Entity, offset)
	default:
		panic("unknown draw command " + cmd.Kind.String())
	}
}

// drawTiled covers dst with img, shifted by scroll.
func drawTiled(dst, img *ebiten.Image, scroll Vec2) {
	if img == nil {
		return
	}
	tw, th := float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
	if tw == 0 || th == 0 {
		return
	}
	b := dst.Bounds()
	startX := -math.Mod(scroll.X, tw)
	startY := -math.Mod(scroll.Y, th)
	if startX > 0 {
		startX -= tw
	}
	if startY > 0 {
		startY -= th
	}
	op := &ebiten.DrawImageOptions{}
	for y := startY; y < float64(b.Dy()); y += th {
		for x := startX; x < float64(b.Dx()); x += tw {
			op.GeoM.Reset()
			op.GeoM.Translate(x+float64(b.Min.X), y+float64(b.Min.Y))
			dst.DrawImage(img, op)
		}
	}
}

// drawSprite draws e's frame centered on its box, flipped, rotated and faded.
func drawSprite(dst *ebiten.Image, e *Entity, offset Vec2) {
	if e == nil || e.Hidden {
		return
	}
	frame := e.Frame()
	if frame == nil {
		return
	}
	fw, fh := float64(frame.Bounds().Dx()), float64(frame.Bounds().Dy())
	c := e.Center().Sub(offset)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-fw/2, -fh/2)
	if e.Flip {
		op.GeoM.Scale(-1, 1)
	}
	op.GeoM.Rotate(-Radians(e.Rotation))
	op.GeoM.Translate(math.Floor(c.X), math.Floor(c.Y))
	op.ColorScale.ScaleAlpha(float32(e.Alpha))
	dst.DrawImage(frame, op)
}

// subImage returns the top-left w x h region of img.
func subImage(img *ebiten.Image, w, h int) *ebiten.Image {
	return img.SubImage(image.Rect(0, 0, w, h)).(*ebiten.Image)
}
