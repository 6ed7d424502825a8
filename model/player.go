package model

import (
	"image/color"
	"math"

	"github.com/harbdog/raycaster-go/geom"

	"maze3d/engine"
)

// Walls is the collision view of the maze a player moves through.
type Walls interface {
	IsWall(col, row int) bool
	CellAt(x, y float64) (int, int)
}

type Player struct {
	*Entity
	Moved bool
}

func NewPlayer(x, y, angle, collisionRadius float64) *Player {
	p := &Player{
		Entity: &Entity{
			Position:        &geom.Vector2{X: x, Y: y},
			Angle:           normalizeAngle(angle),
			CollisionRadius: collisionRadius,
			MapColor:        color.RGBA{0xff, 0x33, 0x33, 0xff},
		},
	}
	return p
}

// Rotate turns the player by delta radians. The heading stays in (-π, π].
func (p *Player) Rotate(delta float64) {
	if delta == 0 {
		return
	}
	p.Angle = normalizeAngle(p.Angle + delta)
	p.Moved = true
}

// Move advances the player forward along its heading and sideways to its
// right, both in pixels. Each axis is resolved on its own, so running into
// a wall at an angle slides along it. Reports whether the position changed.
func (p *Player) Move(forward, strafe float64, walls Walls) bool {
	x, y := p.Position.X, p.Position.Y
	if forward != 0 {
		line := geom.LineFromAngle(x, y, p.Angle, forward)
		x, y = line.X2, line.Y2
	}
	if strafe != 0 {
		line := geom.LineFromAngle(x, y, p.Angle+math.Pi/2, strafe)
		x, y = line.X2, line.Y2
	}

	moved := false
	if x != p.Position.X && !p.blocked(x, p.Position.Y, walls) {
		p.Position.X = x
		moved = true
	}
	if y != p.Position.Y && !p.blocked(p.Position.X, y, walls) {
		p.Position.Y = y
		moved = true
	}
	if moved {
		p.Moved = true
	}
	return moved
}

// blocked checks the corners of the player's collision box.
func (p *Player) blocked(x, y float64, walls Walls) bool {
	r := p.CollisionRadius
	for _, c := range [4][2]float64{{x - r, y - r}, {x + r, y - r}, {x - r, y + r}, {x + r, y + r}} {
		if walls.IsWall(walls.CellAt(c[0], c[1])) {
			return true
		}
	}
	return false
}

// Viewer is the camera pose the renderer casts from.
func (p *Player) Viewer(fov float64) engine.Viewer {
	return engine.Viewer{
		X:       p.Position.X,
		Y:       p.Position.Y,
		Heading: p.Angle,
		FOV:     geom.Clamp(fov, 0.01, math.Pi-0.01),
	}
}

func normalizeAngle(a float64) float64 {
	a = math.Remainder(a, 2*math.Pi)
	if a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
