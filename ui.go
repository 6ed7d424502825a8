package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

type fonts struct {
	hud   font.Face
	menu  font.Face
	title font.Face
}

func loadFonts() (*fonts, error) {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	face := func(size float64) font.Face {
		return truetype.NewFace(tt, &truetype.Options{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}
	return &fonts{
		hud:   face(16),
		menu:  face(24),
		title: face(48),
	}, nil
}

var hudColor = color.RGBA{0xf0, 0xf0, 0xe0, 0xff}

func (g *Game) drawUI(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %0.2f", ebiten.ActualFPS()), 10, 10)

	p := g.world.player
	lines := []string{
		fmt.Sprintf("position: %.0f, %.0f", p.Position.X, p.Position.Y),
		fmt.Sprintf("heading: %.0f°", p.Angle*180/math.Pi),
	}
	if a := g.world.result.Anchor; a.Found {
		lines = append(lines, fmt.Sprintf("goal in sight: %.0f", a.Distance))
	}

	h := g.settings.Window.Height
	for i, line := range lines {
		text.Draw(screen, line, g.fonts.hud, 10, 44+i*20, hudColor)
	}
	text.Draw(screen, "WASD move, mouse look, TAB map, M minimap, ESC exit", g.fonts.hud, 10, h-12, hudColor)
}
