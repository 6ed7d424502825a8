package engine

import "math"

// Viewer is the camera pose in pixel space. Angles are in radians.
type Viewer struct {
	X, Y    float64
	Heading float64
	FOV     float64
}

// Face tells which side of a cell a ray struck.
type Face int

const (
	// FaceVertical is a west or east side, the texture runs along y.
	FaceVertical Face = iota
	// FaceHorizontal is a north or south side, the texture runs along x.
	FaceHorizontal
)

// Intersection describes the first wall struck by a ray.
type Intersection struct {
	// Distance is perpendicular to the view plane, in pixels.
	Distance float64
	// RawDistance is measured along the ray.
	RawDistance float64

	Impact     Symbol
	HitX, HitY float64
	Col, Row   int

	Face         Face
	TextureCoord float64

	// InGoal is set when the ray crossed the goal cell before the wall.
	// The goal fields below are meaningless otherwise.
	InGoal             bool
	DistanceToGoal     float64
	GoalCenterDistance float64
}

// Cast marches a ray from the viewer at angle. When trail is non-nil the
// path is plotted onto it; the result does not depend on trail.
func (c *Caster) Cast(v Viewer, angle float64, trail Surface) (Intersection, error) {
	m, err := c.march(v.X, v.Y, angle, trail)
	if err != nil {
		return Intersection{}, err
	}
	return c.build(m, v, angle), nil
}

func (c *Caster) build(m march, v Viewer, angle float64) Intersection {
	// fisheye correction
	cosOffset := math.Cos(angle - v.Heading)

	hit := Intersection{
		Distance:    m.distance * cosOffset,
		RawDistance: m.distance,
		Impact:      c.grid.SymbolAt(m.col, m.row),
		HitX:        m.x,
		HitY:        m.y,
		Col:         m.col,
		Row:         m.row,
	}
	hit.Face, hit.TextureCoord = faceCoord(m.x, m.y, m.col, m.row, float64(c.grid.BlockSize()))

	if m.crossed {
		hit.InGoal = true
		hit.DistanceToGoal = m.goalDistance * cosOffset
		if c.goal != nil {
			hit.GoalCenterDistance = math.Hypot(c.goal.X-v.X, c.goal.Y-v.Y)
		}
	}
	return hit
}

// faceCoord picks the struck face from the hit's offset inside its cell. The
// axis whose cell boundary is nearer wins, and an exact tie goes to the
// vertical face. The coordinate is the offset along the face in [0, 1).
func faceCoord(x, y float64, col, row int, blockSize float64) (Face, float64) {
	ox := x - float64(col)*blockSize
	oy := y - float64(row)*blockSize
	bx := math.Min(ox, blockSize-ox)
	by := math.Min(oy, blockSize-oy)

	if bx <= by {
		return FaceVertical, unitFraction(oy / blockSize)
	}
	return FaceHorizontal, unitFraction(ox / blockSize)
}

func unitFraction(t float64) float64 {
	t -= math.Floor(t)
	if t >= 1 {
		return 0
	}
	return t
}
