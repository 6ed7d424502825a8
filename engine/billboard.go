package engine

import "math"

// Billboard is the on-screen placement of a forward-facing sprite. Origin and
// Size describe the unclipped square; the Start/End bounds are clipped to the
// screen and End is exclusive.
type Billboard struct {
	OriginX, OriginY int
	Size             int

	StartX, EndX int
	StartY, EndY int
}

// Empty reports whether nothing of the billboard is on screen.
func (b Billboard) Empty() bool {
	return b.Size <= 0 || b.StartX >= b.EndX || b.StartY >= b.EndY
}

// PlaceBillboard centers a square on column anchor and on the horizontal
// midline. Its size follows the wall projection law: screenHeight / distance
// * scale.
func PlaceBillboard(screenWidth, screenHeight, anchor int, distance, scale float64) Billboard {
	if distance <= 0 || screenWidth <= 0 || screenHeight <= 0 {
		return Billboard{}
	}

	size := float64(screenHeight) / distance * scale
	half := size / 2
	hh := float64(screenHeight) / 2

	bb := Billboard{
		OriginX: anchor - int(half),
		OriginY: int(hh - half),
		Size:    int(math.Max(1, size)),
	}
	endX := bb.OriginX + bb.Size
	endY := bb.OriginY + bb.Size

	bb.StartX = max(bb.OriginX, 0)
	bb.StartY = max(bb.OriginY, 0)
	bb.EndX = min(endX, screenWidth-1)
	bb.EndY = min(endY, screenHeight-1)
	return bb
}

// DrawBillboard samples sprite nearest-neighbour into the billboard area.
// Pixels equal to the sprite's transparency key are not drawn.
func DrawBillboard(dst Surface, bb Billboard, sprite *Texture) {
	if bb.Empty() || sprite == nil {
		return
	}
	origin := dst.Bounds().Min
	size := float64(bb.Size)

	for x := bb.StartX; x < bb.EndX; x++ {
		u := float64(x-bb.OriginX) / size
		for y := bb.StartY; y < bb.EndY; y++ {
			c := sprite.Sample(u, float64(y-bb.OriginY)/size)
			if sprite.IsTransparent(c) {
				continue
			}
			dst.Set(origin.X+x, origin.Y+y, c)
		}
	}
}
