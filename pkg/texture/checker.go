package texture

import (
	"math"

	"github.com/dlrobertson/gopathtracer/pkg/core"
)

// Checker is a procedural 3-D checkerboard: even/odd is chosen by the
// floor-hash of the scaled point's component sum, so the pattern is
// consistent across any surface the point lies on (not just axis-aligned
// planes).
type Checker struct {
	InvScale float64
	Even     core.Texture
	Odd      core.Texture
}

// NewChecker builds a Checker texture whose cells have the given world-space
// size.
func NewChecker(scale float64, even, odd core.Texture) *Checker {
	return &Checker{InvScale: 1.0 / scale, Even: even, Odd: odd}
}

// NewCheckerColors is a convenience constructor taking solid colors
// directly.
func NewCheckerColors(scale float64, evenColor, oddColor core.Vec3) *Checker {
	return NewChecker(scale, NewSolid(evenColor), NewSolid(oddColor))
}

// Value implements core.Texture.
func (c *Checker) Value(u, v float64, p core.Vec3) core.Vec3 {
	x := int64(math.Floor(p.X * c.InvScale))
	y := int64(math.Floor(p.Y * c.InvScale))
	z := int64(math.Floor(p.Z * c.InvScale))

	if (x+y+z)%2 == 0 {
		return c.Even.Value(u, v, p)
	}
	return c.Odd.Value(u, v, p)
}
