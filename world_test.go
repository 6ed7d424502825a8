package main

import (
	"errors"
	"math"
	"strings"
	"testing"
	"testing/fstest"

	"maze3d/engine"
)

func newTestWorld(t *testing.T, rows string) *world {
	t.Helper()
	level, err := ParseLevel("test", strings.NewReader(rows))
	if err != nil {
		t.Fatalf("ParseLevel: %v", err)
	}
	s := &Settings{
		Window: WindowSettings{Width: 64, Height: 48},
		Map:    MapSettings{BlockSize: 64},
		Render: RenderSettings{FOVDegrees: 60, RefineIterations: 8},
		Player: PlayerSettings{MoveSpeed: 0.1},
	}
	w, err := newWorld(s, level, LoadTextures(fstest.MapFS{}))
	if err != nil {
		t.Fatalf("newWorld: %v", err)
	}
	return w
}

func TestWorld_SpawnAtCellCenter(t *testing.T) {
	w := newTestWorld(t, "+++++\n+p g+\n+++++\n")
	if w.player.Position.X != 96 || w.player.Position.Y != 96 {
		t.Fatalf("spawn = (%v, %v), want (96, 96)", w.player.Position.X, w.player.Position.Y)
	}
	if w.won {
		t.Fatal("won at spawn")
	}
}

func TestWorld_WinOnEnteringGoalCell(t *testing.T) {
	w := newTestWorld(t, "+++++\n+p g+\n+++++\n")
	w.player.Rotate(-w.player.Angle)
	for i := 0; i < 30 && !w.won; i++ {
		w.step(1, 0, 0, 1)
	}
	if !w.won {
		t.Fatalf("not won at (%v, %v)", w.player.Position.X, w.player.Position.Y)
	}
}

func TestWorld_RenderReportsGoal(t *testing.T) {
	w := newTestWorld(t, "+++++++\n+p   g+\n+++++++\n")
	w.player.Rotate(-w.player.Angle)

	if err := w.render(); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !w.result.Anchor.Found || w.result.Billboard == nil {
		t.Fatalf("goal not seen: %+v", w.result)
	}
	if w.won {
		t.Fatal("won from across the room")
	}
	if math.Abs(w.goalDistance()-4*64) > 1e-9 {
		t.Fatalf("goalDistance = %v, want 256", w.goalDistance())
	}
}

func TestWorld_RespawnClearsWin(t *testing.T) {
	w := newTestWorld(t, "+++++\n+p g+\n+++++\n")
	w.win("test")
	w.respawn()
	if w.won || w.result.Anchor.Found {
		t.Fatal("respawn kept session state")
	}
}

func TestWorld_TraceMapClearsSight(t *testing.T) {
	w := newTestWorld(t, "+++++++\n+p   g+\n+++++++\n")
	w.player.Rotate(-w.player.Angle)
	if err := w.render(); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !w.result.Anchor.Found {
		t.Fatal("goal not seen before switching views")
	}

	dst := engine.NewImage(w.grid.PixelWidth(), w.grid.PixelHeight())
	if err := w.traceMap(dst, 8); err != nil {
		t.Fatalf("traceMap: %v", err)
	}
	if w.result.Anchor.Found || w.result.Billboard != nil {
		t.Fatalf("stale first-person result kept: %+v", w.result)
	}
	if got := dst.RGBAAt(int(w.player.Position.X), int(w.player.Position.Y)); got != w.player.MapColor {
		t.Fatalf("player pixel = %v, want %v", got, w.player.MapColor)
	}
}

func TestWorld_TraceMapReturnsCastError(t *testing.T) {
	w := newTestWorld(t, "+++++\n+p g+\n+++++\n")
	w.caster = engine.NewCaster(w.grid, &w.goal, engine.CasterConfig{MaxSteps: 1})

	dst := engine.NewImage(w.grid.PixelWidth(), w.grid.PixelHeight())
	err := w.traceMap(dst, 4)
	if !errors.Is(err, engine.ErrUnboundedMarch) {
		t.Fatalf("err = %v, want ErrUnboundedMarch", err)
	}
}
