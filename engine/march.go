package engine

import (
	"fmt"
	"image/color"
	"math"
)

// CasterConfig tunes the ray march.
type CasterConfig struct {
	// StepFraction is the march increment as a fraction of the block size.
	StepFraction float64
	// RefineIterations bisects between the last open sample and the wall
	// sample to pull the hit point onto the struck face. 0 disables it.
	RefineIterations int
	// TrailColor is used when a cast plots its path.
	TrailColor color.RGBA
	// MaxSteps caps the samples per ray. 0 derives the cap from the grid
	// diagonal, which no ray inside a closed grid can exceed.
	MaxSteps int
}

func DefaultCasterConfig() CasterConfig {
	return CasterConfig{
		StepFraction:     0.01,
		RefineIterations: 8,
		TrailColor:       color.RGBA{0xff, 0xf3, 0x33, 0xff},
	}
}

// Caster casts rays through a grid. It holds no mutable state, so one caster
// may be shared by any number of goroutines.
type Caster struct {
	grid       *Grid
	goal       *Goal
	step       float64
	maxSteps   int
	refine     int
	trailColor color.RGBA
}

// NewCaster builds a caster for grid. goal may be nil for levels without one.
func NewCaster(grid *Grid, goal *Goal, cfg CasterConfig) *Caster {
	def := DefaultCasterConfig()
	if cfg.StepFraction <= 0 {
		cfg.StepFraction = def.StepFraction
	}
	if cfg.RefineIterations < 0 {
		cfg.RefineIterations = 0
	}
	if cfg.TrailColor == (color.RGBA{}) {
		cfg.TrailColor = def.TrailColor
	}

	step := float64(grid.BlockSize()) * cfg.StepFraction
	if cfg.MaxSteps <= 0 {
		cfg.MaxSteps = int(math.Ceil(grid.Diagonal()/step)) + 2
	}
	return &Caster{
		grid:       grid,
		goal:       goal,
		step:       step,
		maxSteps:   cfg.MaxSteps,
		refine:     cfg.RefineIterations,
		trailColor: cfg.TrailColor,
	}
}

func (c *Caster) Grid() *Grid { return c.grid }
func (c *Caster) Goal() *Goal { return c.goal }

// Step is the march increment in pixels.
func (c *Caster) Step() float64 { return c.step }

// march is the raw outcome of one ray before projection.
type march struct {
	distance float64
	x, y     float64
	col, row int

	crossed      bool
	goalDistance float64
	goalX, goalY float64
}

func (c *Caster) march(ox, oy, angle float64, trail Surface) (march, error) {
	dx, dy := math.Cos(angle), math.Sin(angle)
	lastX, lastY := math.MinInt, math.MinInt

	var m march
	for i := 0; i <= c.maxSteps; i++ {
		// d is derived from the step index, not accumulated, so equal inputs
		// give bit-identical samples
		d := float64(i) * c.step
		x, y := ox+d*dx, oy+d*dy
		col, row := c.grid.CellAt(x, y)

		if c.grid.IsWall(col, row) {
			if i > 0 && c.refine > 0 {
				d = c.bisect(ox, oy, dx, dy, d-c.step, d)
				x, y = ox+d*dx, oy+d*dy
				col, row = c.grid.CellAt(x, y)
			}
			m.distance, m.x, m.y, m.col, m.row = d, x, y, col, row
			return m, nil
		}

		if !m.crossed && c.grid.IsGoal(col, row) {
			m.crossed = true
			m.goalDistance, m.goalX, m.goalY = d, x, y
		}

		if trail != nil {
			px, py := int(math.Floor(x)), int(math.Floor(y))
			if px != lastX || py != lastY {
				trail.Set(px, py, c.trailColor)
				lastX, lastY = px, py
			}
		}
	}

	return m, fmt.Errorf("%w: origin (%.2f, %.2f) angle %.4f exceeded %d steps", ErrUnboundedMarch, ox, oy, angle, c.maxSteps)
}

// bisect narrows [lo, hi], lo open and hi inside a wall, and returns the
// wall-side bound.
func (c *Caster) bisect(ox, oy, dx, dy, lo, hi float64) float64 {
	for i := 0; i < c.refine; i++ {
		mid := (lo + hi) / 2
		col, row := c.grid.CellAt(ox+mid*dx, oy+mid*dy)
		if c.grid.IsWall(col, row) {
			hi = mid
		} else {
			lo = mid
		}
	}
	return hi
}
