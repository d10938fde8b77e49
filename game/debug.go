package game

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// DebugState holds debug flags that persist across round resets
type DebugState struct {
	ShowColliders bool // outline every entity's bounding box
	ShowContacts  bool // line between entities in each other's contact memory
}

var globalDebugState = &DebugState{}

// GetDebugState returns the shared debug state
func GetDebugState() *DebugState {
	return globalDebugState
}

var debugColors = [kindCount]color.RGBA{
	KindPlayer:     {0, 255, 0, 255},
	KindProjectile: {255, 255, 0, 255},
	KindUFO:        {255, 0, 255, 255},
	KindAsteroid:   {255, 0, 0, 255},
	KindArrow:      {0, 200, 255, 255},
	KindExplosion:  {255, 128, 0, 255},
	KindItem:       {255, 255, 255, 255},
}

// DrawDebug queues collider outlines and contact lines on cam.
func (w *World) DrawDebug(cam *Camera) {
	dbg := GetDebugState()
	if !dbg.ShowColliders && !dbg.ShowContacts {
		return
	}
	for k := Kind(0); k < kindCount; k++ {
		w.Each(k, func(e *Entity) {
			if dbg.ShowColliders {
				cam.RectOutline(e.Rect(), 1, debugColors[k], LayerDebug)
			}
			if !dbg.ShowContacts {
				return
			}
			for h := range e.contacts {
				// each pair is stored on both sides; draw it once
				if h.index < e.handle.index {
					continue
				}
				if o, ok := w.Get(h); ok {
					cam.Line(e.Center(), o.Center(), 1, debugColors[k], LayerDebug)
				}
			}
		})
	}
	cam.RectOutline(w.Bounds, 1, color.RGBA{80, 80, 80, 255}, LayerDebug)
}

// debugCounts lists the live entity count per kind on one line.
func (w *World) debugCounts() string {
	var b strings.Builder
	for k := Kind(0); k < kindCount; k++ {
		if k > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%s:%d", k, w.Count(k))
	}
	return b.String()
}

// DrawDebugText prints frame rates and entity counts in the bottom-left corner
// while collider outlines are on.
func (w *World) DrawDebugText(screen *ebiten.Image) {
	if !GetDebugState().ShowColliders {
		return
	}
	msg := fmt.Sprintf("FPS %.1f TPS %.1f\n%s", ebiten.ActualFPS(), ebiten.ActualTPS(), w.debugCounts())
	ebitenutil.DebugPrintAt(screen, msg, 8, screen.Bounds().Dy()-40)
}
