package model

import (
	"image/color"

	"github.com/harbdog/raycaster-go/geom"
)

// Entity is anything with a pose on the map, in pixel coordinates.
type Entity struct {
	Position        *geom.Vector2
	Angle           float64
	CollisionRadius float64
	MapColor        color.RGBA
}
