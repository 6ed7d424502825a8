package model

import (
	"math"
	"testing"

	"maze3d/engine"
)

func testGrid(t *testing.T) *engine.Grid {
	t.Helper()
	g, err := engine.NewGrid([]string{
		"+++++",
		"+   +",
		"+   +",
		"+++++",
	}, 64)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	return g
}

func TestRotate_WrapsHeading(t *testing.T) {
	p := NewPlayer(0, 0, 0, 0)
	p.Rotate(3 * math.Pi / 2)
	if math.Abs(p.Angle-(-math.Pi/2)) > 1e-12 {
		t.Fatalf("Angle = %v, want -π/2", p.Angle)
	}
	p.Rotate(-math.Pi / 2)
	if p.Angle != math.Pi {
		t.Fatalf("Angle = %v, want π", p.Angle)
	}
	if !p.Moved {
		t.Fatal("rotation did not flag the player as moved")
	}
}

func TestMove_Forward(t *testing.T) {
	g := testGrid(t)
	p := NewPlayer(96, 96, 0, 8)
	if !p.Move(10, 0, g) {
		t.Fatal("Move reported no change in an open room")
	}
	if math.Abs(p.Position.X-106) > 1e-9 || math.Abs(p.Position.Y-96) > 1e-9 {
		t.Fatalf("position = (%v, %v), want (106, 96)", p.Position.X, p.Position.Y)
	}
}

func TestMove_StrafeIsToTheRight(t *testing.T) {
	g := testGrid(t)
	p := NewPlayer(96, 96, 0, 8)
	p.Move(0, 10, g)
	// heading east, right is +y on screen
	if math.Abs(p.Position.Y-106) > 1e-9 || math.Abs(p.Position.X-96) > 1e-9 {
		t.Fatalf("position = (%v, %v), want (96, 106)", p.Position.X, p.Position.Y)
	}
}

func TestMove_BlockedByWall(t *testing.T) {
	g := testGrid(t)
	p := NewPlayer(96, 96, math.Pi, 8)
	// the west wall starts at x = 64, the collision box reaches 8px ahead
	p.Move(30, 0, g)
	if p.Position.X != 96 {
		t.Fatalf("X = %v, want 96", p.Position.X)
	}
}

func TestMove_SlidesAlongWall(t *testing.T) {
	g := testGrid(t)
	p := NewPlayer(96, 80, -math.Pi/4, 8)
	p.Move(20, 0, g)
	if p.Position.X <= 96 {
		t.Errorf("X = %v, want the free axis to advance", p.Position.X)
	}
	if p.Position.Y != 80 {
		t.Errorf("Y = %v, want the blocked axis unchanged", p.Position.Y)
	}
}

func TestViewer(t *testing.T) {
	p := NewPlayer(12, 34, 1, 0)
	v := p.Viewer(math.Pi / 3)
	if v.X != 12 || v.Y != 34 || v.Heading != 1 || v.FOV != math.Pi/3 {
		t.Fatalf("Viewer = %+v", v)
	}
}
