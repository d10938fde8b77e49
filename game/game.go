package game

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

const stallFPS = 45

// drawOrder lists the kinds in the order their sprites are queued. The
// layer sort decides the final order; this only fixes ties.
var drawOrder = []Kind{KindItem, KindAsteroid, KindUFO, KindProjectile, KindPlayer, KindExplosion, KindArrow}

// Game is the ebiten.Game wrapping a World, the window cameras and the HUD.
type Game struct {
	cfg    Config
	world  *World
	window *Window
	hud    *HUD
	stars  *ebiten.Image

	monitor  *FrameMonitor
	profiler *Profiler

	lastUpdate time.Time
}

// NewGame builds the world and presentation layer. anims must already have
// passed ValidateAnimations.
func NewGame(cfg Config, anims AnimationProvider) (*Game, error) {
	hud, err := NewHUD()
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	world := NewWorld(cfg, anims)
	window := NewWindow(cfg)
	g := &Game{
		cfg:     cfg,
		world:   world,
		window:  window,
		hud:     hud,
		stars:   Starfield(window.Rand(), 256, 256, 90),
		monitor: NewFrameMonitor(stallFPS),
	}
	if cfg.ProfileOnStall {
		g.profiler = NewProfiler("profiles")
	}
	GetDebugState().ShowColliders = cfg.Debug
	if p := world.Player(); p != nil {
		g.window.World.CenterOn(p.Center())
	}
	return g, nil
}

// World returns the simulated world.
func (g *Game) World() *World {
	return g.world
}

// Update polls input and steps the world, then the cameras.
func (g *Game) Update() error {
	now := time.Now()
	var dt float64
	if !g.lastUpdate.IsZero() {
		dt = now.Sub(g.lastUpdate).Seconds()
	}
	g.lastUpdate = now
	if dt <= 0 {
		dt = defaultDT
	}
	dt = min(dt, maxDT)

	in := PollInput(g.window.World)
	if in.ToggleDebug {
		dbg := GetDebugState()
		dbg.ShowColliders = !dbg.ShowColliders
		dbg.ShowContacts = dbg.ShowColliders
	}
	if in.Restart && g.world.State == GameOver {
		g.restart()
	}

	g.world.Step(in, dt)
	g.window.Shake(g.world.TakeShake())

	if p := g.world.Player(); p != nil && g.world.State == Running {
		g.window.World.FollowTargets([]Rect{p.Rect()}, dt)
	}
	g.window.Update(dt)

	if g.monitor.Tick(dt) && g.profiler != nil {
		reason := fmt.Sprintf("fps%.0f-wave%d", g.monitor.FPS(), g.world.Waves.Number())
		if err := g.profiler.Capture(reason); err == nil {
			log.Printf("[%s] frame rate dropped to %.0f, capturing profile", g.world.RunID, g.monitor.FPS())
		}
	}
	return nil
}

func (g *Game) restart() {
	g.world.Reset()
	if p := g.world.Player(); p != nil {
		g.window.World.ScrollTo(p.Center(), 0.6, ease.OutQuad)
	}
}

// Draw queues the frame and presents it.
func (g *Game) Draw(screen *ebiten.Image) {
	cam := g.window.World
	cam.Background(g.stars, 0.5, LayerBackground)
	for _, k := range drawOrder {
		g.world.Each(k, func(e *Entity) {
			if !e.Hidden {
				cam.Sprite(e)
			}
		})
	}
	g.world.Particles.Draw(cam)
	g.world.DrawDebug(cam)

	g.window.Present(screen)
	g.hud.Draw(screen, g.world.HUD())
	g.world.DrawDebugText(screen)
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Screen.Width, g.cfg.Screen.Height
}

// RunGame opens the window and runs until it is closed.
func RunGame(cfg Config, anims AnimationProvider) error {
	g, err := NewGame(cfg, anims)
	if err != nil {
		return err
	}
	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle(cfg.Screen.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
