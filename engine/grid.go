package engine

import (
	"fmt"
	"math"
)

// Symbol is the tag of a grid cell. The open and goal symbols are walkable,
// every other symbol is a wall and doubles as its material.
type Symbol = rune

const (
	OpenSymbol Symbol = ' '
	GoalSymbol Symbol = 'g'

	// Boundary is reported for cells outside the grid.
	Boundary Symbol = 0
)

// Grid is a rectangular, row-major maze. It is never mutated after NewGrid.
type Grid struct {
	cells     [][]Symbol
	width     int
	height    int
	blockSize int
}

// NewGrid validates rows and builds a grid whose cells are blockSize pixels
// on each edge.
func NewGrid(rows []string, blockSize int) (*Grid, error) {
	if blockSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBlockSize, blockSize)
	}
	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}

	cells := make([][]Symbol, len(rows))
	for y, row := range rows {
		cells[y] = []Symbol(row)
	}

	width := len(cells[0])
	if width == 0 {
		return nil, ErrEmptyGrid
	}
	for y := range cells {
		if len(cells[y]) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrRaggedGrid, y, len(cells[y]), width)
		}
	}

	return &Grid{
		cells:     cells,
		width:     width,
		height:    len(cells),
		blockSize: blockSize,
	}, nil
}

func (g *Grid) Width() int     { return g.width }
func (g *Grid) Height() int    { return g.height }
func (g *Grid) BlockSize() int { return g.blockSize }

func (g *Grid) PixelWidth() int  { return g.width * g.blockSize }
func (g *Grid) PixelHeight() int { return g.height * g.blockSize }

// Diagonal is the pixel length of the grid's diagonal, the longest distance
// a ray can travel while inside the grid.
func (g *Grid) Diagonal() float64 {
	return math.Hypot(float64(g.PixelWidth()), float64(g.PixelHeight()))
}

func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && row >= 0 && col < g.width && row < g.height
}

// SymbolAt returns the tag of the cell, or Boundary outside the grid.
func (g *Grid) SymbolAt(col, row int) Symbol {
	if !g.InBounds(col, row) {
		return Boundary
	}
	return g.cells[row][col]
}

// IsWall reports whether the cell blocks rays. Everything outside the grid is
// a wall.
func (g *Grid) IsWall(col, row int) bool {
	if !g.InBounds(col, row) {
		return true
	}
	s := g.cells[row][col]
	return s != OpenSymbol && s != GoalSymbol
}

func (g *Grid) IsGoal(col, row int) bool {
	return g.InBounds(col, row) && g.cells[row][col] == GoalSymbol
}

// CellAt converts a pixel position to the cell containing it.
func (g *Grid) CellAt(x, y float64) (col, row int) {
	bs := float64(g.blockSize)
	return int(math.Floor(x / bs)), int(math.Floor(y / bs))
}

// CellCenter returns the pixel position of the center of a cell.
func (g *Grid) CellCenter(col, row int) (x, y float64) {
	bs := float64(g.blockSize)
	return (float64(col) + 0.5) * bs, (float64(row) + 0.5) * bs
}

// LocateGoal scans for the goal marker and returns the goal positioned at the
// center of its cell. The first marker in row-major order wins.
func (g *Grid) LocateGoal(sprite *Texture) (Goal, error) {
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			if g.cells[row][col] == GoalSymbol {
				x, y := g.CellCenter(col, row)
				return Goal{X: x, Y: y, Col: col, Row: row, Sprite: sprite}, nil
			}
		}
	}
	return Goal{}, ErrNoGoal
}

// Goal is the single billboard object of a level.
type Goal struct {
	X, Y     float64
	Col, Row int
	Sprite   *Texture
}
