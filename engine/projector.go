package engine

import (
	"fmt"
	"image/color"
	"math"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ProjectorConfig tunes the column sweep.
type ProjectorConfig struct {
	// NearClamp is the smallest distance used for slice heights, so walls
	// touching the viewer do not blow up.
	NearClamp float64
	// WinDistance is the goal distance under which the sweep reports a win
	// instead of drawing the goal billboard.
	WinDistance float64
	// Scale multiplies every projected height. 0 means the block size.
	Scale float64
	// SpriteScale is the size of the goal billboard relative to a wall slice
	// at the same depth.
	SpriteScale float64
	// Workers bounds the goroutines casting rays during a sweep.
	Workers int
	// Background is the base color of the floor and ceiling gradients.
	Background color.RGBA
	// WallColor paints walls that have no texture.
	WallColor color.RGBA
}

func DefaultProjectorConfig() ProjectorConfig {
	return ProjectorConfig{
		NearClamp:   10,
		WinDistance: 10,
		SpriteScale: 0.5,
		Workers:     runtime.NumCPU(),
		Background:  color.RGBA{0x32, 0x36, 0x38, 0xff},
		WallColor:   color.RGBA{100, 100, 100, 255},
	}
}

// Projector renders the first-person view one ray per screen column. A
// projector is not safe for concurrent Render calls.
type Projector struct {
	caster   *Caster
	textures *TextureSet
	cfg      ProjectorConfig
	scale    float64
	hits     []Intersection
}

// NewProjector wires a caster to the wall textures. textures may be nil, in
// which case walls are painted flat.
func NewProjector(caster *Caster, textures *TextureSet, cfg ProjectorConfig) *Projector {
	def := DefaultProjectorConfig()
	if cfg.NearClamp <= 0 {
		cfg.NearClamp = def.NearClamp
	}
	if cfg.WinDistance <= 0 {
		cfg.WinDistance = def.WinDistance
	}
	if cfg.SpriteScale <= 0 {
		cfg.SpriteScale = def.SpriteScale
	}
	if cfg.Workers <= 0 {
		cfg.Workers = def.Workers
	}
	if cfg.Background == (color.RGBA{}) {
		cfg.Background = def.Background
	}
	if cfg.WallColor == (color.RGBA{}) {
		cfg.WallColor = def.WallColor
	}

	scale := cfg.Scale
	if scale <= 0 {
		scale = float64(caster.Grid().BlockSize())
	}

	return &Projector{
		caster:   caster,
		textures: textures,
		cfg:      cfg,
		scale:    scale,
	}
}

func (p *Projector) Config() ProjectorConfig { return p.cfg }

// GoalAnchor is the column nearest the goal's angular center among the
// columns whose ray crossed the goal.
type GoalAnchor struct {
	Found    bool
	Column   int
	Distance float64
}

// SweepResult is what a frame hands back to the game state.
type SweepResult struct {
	Anchor GoalAnchor
	// WinTriggered asks the caller to set the session win flag.
	WinTriggered bool
	// Billboard is the goal sprite placement, nil when none was drawn.
	Billboard *Billboard
}

// ColumnAngle is the ray angle of screen column i out of columns.
func ColumnAngle(v Viewer, i, columns int) float64 {
	return v.Heading - v.FOV/2 + v.FOV*(float64(i)/float64(columns))
}

// SliceHeight is the projected height of a wall at distance on a screen
// screenHeight pixels tall.
func (p *Projector) SliceHeight(distance float64, screenHeight int) float64 {
	return float64(screenHeight) / math.Max(distance, p.cfg.NearClamp) * p.scale
}

// Sweep casts one ray per column. Rays run in parallel, each result lands in
// its own column slot.
func (p *Projector) Sweep(v Viewer, columns int) ([]Intersection, error) {
	if cap(p.hits) < columns {
		p.hits = make([]Intersection, columns)
	}
	hits := p.hits[:columns]

	workers := min(p.cfg.Workers, columns)
	if workers < 1 {
		return hits, nil
	}
	chunk := (columns + workers - 1) / workers

	var eg errgroup.Group
	eg.SetLimit(workers)
	for start := 0; start < columns; start += chunk {
		eg.Go(func() error {
			end := min(start+chunk, columns)
			for i := start; i < end; i++ {
				hit, err := p.caster.Cast(v, ColumnAngle(v, i, columns), nil)
				if err != nil {
					return fmt.Errorf("column %d: %w", i, err)
				}
				hits[i] = hit
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return hits, nil
}

// Render draws a full frame of the viewer's sight onto dst.
func (p *Projector) Render(dst Surface, v Viewer) (SweepResult, error) {
	b := dst.Bounds()
	width, height := b.Dx(), b.Dy()

	hits, err := p.Sweep(v, width)
	if err != nil {
		return SweepResult{}, err
	}

	for i := range hits {
		p.paintColumn(dst, b.Min.X+i, b.Min.Y, height, &hits[i])
	}

	res := SweepResult{Anchor: p.anchor(hits, v)}
	if !res.Anchor.Found {
		return res, nil
	}
	if res.Anchor.Distance < p.cfg.WinDistance {
		res.WinTriggered = true
		return res, nil
	}

	goal := p.caster.Goal()
	if goal != nil && goal.Sprite != nil {
		bb := PlaceBillboard(width, height, res.Anchor.Column, res.Anchor.Distance, p.scale*p.cfg.SpriteScale)
		DrawBillboard(dst, bb, goal.Sprite)
		res.Billboard = &bb
	}
	return res, nil
}

func (p *Projector) paintColumn(dst Surface, x, minY, height int, hit *Intersection) {
	hh := float64(height) / 2
	slice := p.SliceHeight(hit.Distance, height)
	top, bottom := hh-slice/2, hh+slice/2

	var tex *Texture
	if p.textures != nil {
		tex = p.textures.For(hit.Impact)
	}

	bg := p.cfg.Background
	for y := 0; y < height; y++ {
		fy := float64(y)
		var c color.RGBA
		switch {
		case fy > top && fy < bottom:
			if tex != nil {
				c = tex.Sample(hit.TextureCoord, (fy-top)/slice)
			} else {
				c = p.cfg.WallColor
				if hit.Face == FaceHorizontal {
					c = shade(c, 0.5)
				}
			}
		case fy <= top:
			c = shade(bg, 1.5-fy/hh)
		default:
			c = shade(bg, fy/hh-0.5)
		}
		dst.Set(x, minY+y, c)
	}
}

func (p *Projector) anchor(hits []Intersection, v Viewer) GoalAnchor {
	var a GoalAnchor
	goal := p.caster.Goal()
	if goal == nil {
		return a
	}

	center := math.Atan2(goal.Y-v.Y, goal.X-v.X)
	best := math.Inf(1)
	for i := range hits {
		if !hits[i].InGoal {
			continue
		}
		off := math.Abs(math.Remainder(ColumnAngle(v, i, len(hits))-center, 2*math.Pi))
		if off < best {
			best = off
			a = GoalAnchor{Found: true, Column: i, Distance: hits[i].DistanceToGoal}
		}
	}
	return a
}

// shade scales the color channels by f, clamped to the byte range.
func shade(c color.RGBA, f float64) color.RGBA {
	scale := func(v uint8) uint8 {
		return uint8(math.Max(0, math.Min(255, float64(v)*f)))
	}
	return color.RGBA{scale(c.R), scale(c.G), scale(c.B), c.A}
}
