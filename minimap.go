package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"maze3d/engine"
)

const (
	minimapScale  int = 6
	minimapMargin int = 10
	sparseRays    int = 48
)

var (
	mapOpenColor = color.RGBA{0x8c, 0x8c, 0x8c, 0xff}
	mapGoalColor = color.RGBA{0xff, 0xd7, 0x00, 0xff}
	mapWallColor = map[engine.Symbol]color.RGBA{
		'+': {0x6e, 0x2a, 0x1e, 0xff},
		'-': {0x32, 0x32, 0x48, 0xff},
	}
	mapDefaultWall = color.RGBA{0x32, 0x32, 0x32, 0xff}
)

// mapView owns the buffers of the top-down views. The block layers never
// change after a level loads and are copied under each frame.
type mapView struct {
	base  *engine.Image
	frame *engine.Image
	scene *ebiten.Image

	miniBase  *engine.Image
	mini      *engine.Image
	miniScene *ebiten.Image
}

func newMapView(grid *engine.Grid) *mapView {
	pw, ph := grid.PixelWidth(), grid.PixelHeight()
	mw, mh := grid.Width()*minimapScale, grid.Height()*minimapScale

	m := &mapView{
		base:      engine.NewImage(pw, ph),
		frame:     engine.NewImage(pw, ph),
		scene:     ebiten.NewImage(pw, ph),
		miniBase:  engine.NewImage(mw, mh),
		mini:      engine.NewImage(mw, mh),
		miniScene: ebiten.NewImage(mw, mh),
	}
	drawBlocks(m.base, grid, grid.BlockSize())
	drawBlocks(m.miniBase, grid, minimapScale)
	return m
}

// drawBlocks paints every cell as a scale×scale block. The goal is drawn as
// a half-size block on open floor.
func drawBlocks(dst *engine.Image, grid *engine.Grid, scale int) {
	for row := 0; row < grid.Height(); row++ {
		for col := 0; col < grid.Width(); col++ {
			x, y := col*scale, row*scale
			switch {
			case grid.IsGoal(col, row):
				dst.FillRect(x, y, scale, scale, mapOpenColor)
				dst.FillRect(x+scale/4, y+scale/4, scale/2, scale/2, mapGoalColor)
			case grid.IsWall(col, row):
				c, ok := mapWallColor[grid.SymbolAt(col, row)]
				if !ok {
					c = mapDefaultWall
				}
				dst.FillRect(x, y, scale, scale, c)
			default:
				dst.FillRect(x, y, scale, scale, mapOpenColor)
			}
		}
	}
}

// updateMapView redraws the full-screen top-down debug view: the maze, the
// player and a fan of rays traced through the same caster as the 3D view.
func (g *Game) updateMapView() error {
	m := g.maps
	m.frame.DrawImage(m.base, nil)

	rays := sparseRays
	if g.settings.Debug.Rays {
		rays = g.settings.Window.Width
	}
	return g.world.traceMap(m.frame, rays)
}

func (g *Game) drawMapView(screen *ebiten.Image) {
	w, m := g.world, g.maps
	m.scene.WritePixels(m.frame.Pix())

	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	scale := math.Min(float64(sw)/float64(w.grid.PixelWidth()), float64(sh)/float64(w.grid.PixelHeight()))
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(
		(float64(sw)-float64(w.grid.PixelWidth())*scale)/2,
		(float64(sh)-float64(w.grid.PixelHeight())*scale)/2,
	)
	screen.DrawImage(m.scene, op)
}

func (g *Game) drawMinimap(screen *ebiten.Image) {
	w, m := g.world, g.maps
	m.mini.DrawImage(m.miniBase, nil)

	// player dot and a short heading tick
	bs := float64(w.grid.BlockSize())
	px := w.player.Position.X / bs * float64(minimapScale)
	py := w.player.Position.Y / bs * float64(minimapScale)
	for i := 0; i <= minimapScale; i++ {
		d := float64(i)
		m.mini.Set(int(px+d*math.Cos(w.player.Angle)), int(py+d*math.Sin(w.player.Angle)), w.player.MapColor)
	}
	m.mini.FillRect(int(px)-1, int(py)-1, 3, 3, w.player.MapColor)

	m.miniScene.WritePixels(m.mini.Pix())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx()-m.mini.Bounds().Dx()-minimapMargin), float64(minimapMargin))
	screen.DrawImage(m.miniScene, op)
}
