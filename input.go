package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const keyRotateSpeed = math.Pi / 60

func (g *Game) handleInput() {
	// if escape, exit game
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.quit()
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.showMap = !g.showMap
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.showMinimap = !g.showMinimap
	}

	moveModifier := 1.0
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		moveModifier = 2.0
	}

	if ebiten.CursorMode() != ebiten.CursorModeCaptured {
		ebiten.SetCursorMode(ebiten.CursorModeCaptured)

		// reset initial mouse capture position
		g.mouseX = math.MinInt32
	}

	turn := 0.0
	x, _ := ebiten.CursorPosition()
	if g.mouseX == math.MinInt32 {
		g.mouseX = x
	} else {
		turn += float64(x-g.mouseX) * g.settings.Player.RotateSpeed
		g.mouseX = x
	}
	if ebiten.IsKeyPressed(ebiten.KeyLeft) {
		turn -= keyRotateSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) {
		turn += keyRotateSpeed
	}

	forward, strafe := 0.0, 0.0
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp) {
		forward++
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown) {
		forward--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		strafe++
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		strafe--
	}

	g.world.step(forward, strafe, turn, moveModifier)
}

// menuShortcuts lets the keyboard drive the menu screens.
func (g *Game) menuShortcuts() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.startPlaying()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		g.quit()
	}
}
