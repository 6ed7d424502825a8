package main

import (
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"

	"maze3d/engine"
	"maze3d/logger"
)

type gameState int

const (
	stateHome gameState = iota
	statePlaying
	stateVictory
)

func (s gameState) String() string {
	switch s {
	case stateHome:
		return "home"
	case statePlaying:
		return "playing"
	case stateVictory:
		return "victory"
	}
	return fmt.Sprintf("gameState(%d)", int(s))
}

// main game object
type Game struct {
	settings *Settings
	world    *world
	textures *TextureStore
	sound    *Sound
	fonts    *fonts

	state        gameState
	victoryTicks int
	quitting     bool

	// scene receives the software-rendered frame each tick
	scene *ebiten.Image
	maps  *mapView

	homeMenu      *ebitenui.UI
	victoryMenu   *ebitenui.UI
	victorySprite *ebiten.Image
	crosshairs    *Crosshairs

	showMap     bool
	showMinimap bool
	mouseX      int
}

// NewGame loads the level and assets described by s.
func NewGame(s *Settings) (*Game, error) {
	logger.Log.Info("initializing game")

	level, err := OpenLevel(s.Map.File)
	if err != nil {
		return nil, err
	}

	assets := os.DirFS(s.Assets.Dir)
	textures := LoadTextures(assets)

	w, err := newWorld(s, level, textures)
	if err != nil {
		return nil, err
	}

	f, err := loadFonts()
	if err != nil {
		return nil, err
	}

	g := &Game{
		settings:      s,
		world:         w,
		textures:      textures,
		sound:         LoadSound(assets, s.Audio.Enabled),
		fonts:         f,
		scene:         ebiten.NewImage(s.Window.Width, s.Window.Height),
		maps:          newMapView(w.grid),
		victorySprite: spriteImage(textures.Goal),
		crosshairs:    NewCrosshairs(10, 20),
		showMinimap:   s.Debug.Minimap,
		mouseX:        math.MinInt32,
	}
	g.buildMenus()
	return g, nil
}

// Run is the Ebiten Run loop caller
func (g *Game) Run() error {
	ebiten.SetWindowSize(g.settings.Window.Width, g.settings.Window.Height)
	ebiten.SetWindowTitle(g.settings.Window.Title)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

func (g *Game) setState(s gameState) {
	logger.Log.WithField("state", s).Debug("state change")
	g.state = s
	if s == statePlaying {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)
		g.mouseX = math.MinInt32
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
}

func (g *Game) startPlaying() {
	if g.state == stateVictory {
		g.world.respawn()
	}
	g.setState(statePlaying)
}

func (g *Game) quit() {
	g.quitting = true
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.settings.Window.Width, g.settings.Window.Height
}

// Update is called every tick (1/60 [s] by default).
func (g *Game) Update() error {
	if g.quitting {
		return ebiten.Termination
	}

	switch g.state {
	case stateHome:
		g.homeMenu.Update()
		g.menuShortcuts()

	case statePlaying:
		g.handleInput()
		if g.quitting {
			return ebiten.Termination
		}
		if g.showMap {
			if err := g.updateMapView(); err != nil {
				return err
			}
		} else if err := g.world.render(); err != nil {
			return err
		}
		if g.world.result.Anchor.Found {
			g.crosshairs.ActivateSightIndicator()
		}
		g.crosshairs.Update()

		if g.world.won {
			g.victoryTicks = 0
			g.sound.PlayVictory()
			g.setState(stateVictory)
		}

	case stateVictory:
		g.victoryTicks++
		g.victoryMenu.Update()
		g.menuShortcuts()
	}
	return nil
}

// Draw is called every frame (typically 1/60[s] for 60Hz display).
func (g *Game) Draw(screen *ebiten.Image) {
	switch g.state {
	case stateHome:
		g.homeMenu.Draw(screen)

	case statePlaying:
		if g.showMap {
			screen.Fill(color.Black)
			g.drawMapView(screen)
		} else {
			g.scene.WritePixels(g.world.frame.Pix())
			screen.DrawImage(g.scene, nil)
			g.crosshairs.Draw(screen)
			if g.showMinimap {
				g.drawMinimap(screen)
			}
		}
		g.drawUI(screen)

	case stateVictory:
		g.drawVictory(screen)
		g.victoryMenu.Draw(screen)
	}
}

// drawVictory pulses the background and spins the goal sprite behind the
// victory menu.
func (g *Game) drawVictory(screen *ebiten.Image) {
	t := float64(g.victoryTicks) / 60
	pulse := 0.5 + 0.5*math.Sin(t*3)
	screen.Fill(color.RGBA{
		R: uint8(0x20 + 0x30*pulse),
		G: uint8(0x18 + 0x20*pulse),
		B: 0x10,
		A: 0xff,
	})

	b := screen.Bounds()
	scale := 3 * math.Abs(math.Cos(t*2))
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	sw, sh := g.victorySprite.Bounds().Dx(), g.victorySprite.Bounds().Dy()
	op.GeoM.Translate(-float64(sw)/2, -float64(sh)/2)
	op.GeoM.Scale(math.Max(scale, 0.05), 3)
	op.GeoM.Translate(float64(b.Dx())/2, float64(b.Dy())/5)
	screen.DrawImage(g.victorySprite, op)
}

// spriteImage uploads a keyed texture with its key color made transparent.
func spriteImage(t *engine.Texture) *ebiten.Image {
	pix := make([]byte, 0, t.Width()*t.Height()*4)
	for y := 0; y < t.Height(); y++ {
		for x := 0; x < t.Width(); x++ {
			c := t.Pixel(x, y)
			if t.IsTransparent(c) {
				pix = append(pix, 0, 0, 0, 0)
				continue
			}
			pix = append(pix, c.R, c.G, c.B, c.A)
		}
	}
	img := ebiten.NewImage(t.Width(), t.Height())
	img.WritePixels(pix)
	return img
}
