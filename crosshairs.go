package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Crosshairs marks the screen center. It lights up while the goal is in
// sight and stays lit for a few ticks after it leaves the view.
type Crosshairs struct {
	size      float32
	sightTime int
	sightHold int
}

func NewCrosshairs(size float32, hold int) *Crosshairs {
	return &Crosshairs{size: size, sightHold: hold}
}

func (c *Crosshairs) ActivateSightIndicator() {
	c.sightTime = c.sightHold
}

func (c *Crosshairs) IsSightIndicatorActive() bool {
	return c.sightTime > 0
}

func (c *Crosshairs) Update() {
	if c.sightTime > 0 {
		c.sightTime--
	}
}

func (c *Crosshairs) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	cx, cy := float32(b.Dx())/2, float32(b.Dy())/2

	clr := color.RGBA{0xff, 0xff, 0xff, 0xb0}
	if c.IsSightIndicatorActive() {
		clr = color.RGBA{0xff, 0xd7, 0x00, 0xff}
	}
	gap := c.size / 3
	vector.StrokeLine(screen, cx-c.size, cy, cx-gap, cy, 2, clr, false)
	vector.StrokeLine(screen, cx+gap, cy, cx+c.size, cy, 2, clr, false)
	vector.StrokeLine(screen, cx, cy-c.size, cx, cy-gap, 2, clr, false)
	vector.StrokeLine(screen, cx, cy+gap, cx, cy+c.size, 2, clr, false)
}
