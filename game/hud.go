package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// WeaponAmmo is the HUD view of one inventory slot.
type WeaponAmmo struct {
	Name        string
	Icon        string
	Magazine    int
	MaxMagazine int
	Reloading   bool
}

// HUDState is everything the HUD shows, read from the world once per frame.
type HUDState struct {
	Health    int
	MaxHealth int

	Weapons    []WeaponAmmo
	Active     int
	ActiveIcon string

	Wave  int
	Score int
	State RoundState
}

// HUD reads the values the overlay shows.
func (w *World) HUD() HUDState {
	s := HUDState{
		Wave:  w.Waves.Number(),
		Score: w.Stats.Score,
		State: w.State,
	}
	p := w.Player()
	if p == nil {
		return s
	}
	s.Health, s.MaxHealth = p.Health, p.MaxHealth
	ps := p.Player
	s.Active = ps.Active
	s.ActiveIcon = ps.Weapon().Config().Icon
	for _, wp := range ps.Weapons {
		cfg := wp.Config()
		s.Weapons = append(s.Weapons, WeaponAmmo{
			Name:        cfg.Name,
			Icon:        cfg.Icon,
			Magazine:    wp.Magazine,
			MaxMagazine: cfg.MaxMagazine,
			Reloading:   wp.Reloading(),
		})
	}
	return s
}

var (
	hudText     = color.RGBA{255, 255, 255, 255}
	hudDim      = color.RGBA{140, 140, 160, 255}
	hudHealth   = color.RGBA{220, 60, 60, 255}
	hudHealthBG = color.RGBA{60, 20, 20, 255}
	hudReload   = color.RGBA{255, 200, 0, 255}
	hudShade    = color.RGBA{0, 0, 0, 160}
)

// HUD draws HUDState on the screen.
type HUD struct {
	face  font.Face
	large font.Face
}

// NewHUD loads the HUD fonts.
func NewHUD() (*HUD, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse hud font: %w", err)
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{Size: 18, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("hud face: %w", err)
	}
	large, err := opentype.NewFace(tt, &opentype.FaceOptions{Size: 48, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("hud title face: %w", err)
	}
	return &HUD{face: face, large: large}, nil
}

// Draw renders s in screen pixels.
func (h *HUD) Draw(screen *ebiten.Image, s HUDState) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()

	// health bar
	const barW, barH = 200, 14
	vector.DrawFilledRect(screen, 16, 16, barW, barH, hudHealthBG, false)
	if s.MaxHealth > 0 {
		frac := float32(s.Health) / float32(s.MaxHealth)
		vector.DrawFilledRect(screen, 16, 16, barW*frac, barH, hudHealth, false)
	}
	text.Draw(screen, fmt.Sprintf("%d/%d", s.Health, s.MaxHealth), h.face, 16+barW+8, 29, hudText)

	text.Draw(screen, fmt.Sprintf("WAVE %d", s.Wave), h.face, sw/2-40, 29, hudText)
	text.Draw(screen, fmt.Sprintf("SCORE %d", s.Score), h.face, sw-160, 29, hudText)

	y := sh - 16 - 22*(len(s.Weapons)-1)
	for i, wa := range s.Weapons {
		clr := hudDim
		if i == s.Active {
			clr = hudText
		}
		label := fmt.Sprintf("%s %d/%d", wa.Name, wa.Magazine, wa.MaxMagazine)
		if wa.Reloading {
			label += " reloading"
			if i == s.Active {
				clr = hudReload
			}
		}
		text.Draw(screen, label, h.face, 16, y+22*i, clr)
	}

	var banner string
	switch s.State {
	case Paused:
		banner = "PAUSED"
	case GameOver:
		banner = "GAME OVER - press Enter"
	}
	if banner != "" {
		vector.DrawFilledRect(screen, 0, float32(sh/2-48), float32(sw), 72, hudShade, false)
		b := text.BoundString(h.large, banner)
		text.Draw(screen, banner, h.large, (sw-b.Dx())/2, sh/2, hudText)
	}
}
