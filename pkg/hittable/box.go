package hittable

import "github.com/dlrobertson/gopathtracer/pkg/core"

// NewBox builds an axis-aligned box as a Composite of six quads, from two
// opposite corner points. Use Translate/RotateY to place or orient it.
func NewBox(a, b core.Vec3, mat core.Material) *Composite {
	min := core.NewVec3(minF(a.X, b.X), minF(a.Y, b.Y), minF(a.Z, b.Z))
	max := core.NewVec3(maxF(a.X, b.X), maxF(a.Y, b.Y), maxF(a.Z, b.Z))

	dx := core.NewVec3(max.X-min.X, 0, 0)
	dy := core.NewVec3(0, max.Y-min.Y, 0)
	dz := core.NewVec3(0, 0, max.Z-min.Z)

	sides := NewComposite(
		NewQuad(core.NewVec3(min.X, min.Y, max.Z), dx, dy, mat),  // front
		NewQuad(core.NewVec3(max.X, min.Y, max.Z), dz.Negate(), dy, mat), // right
		NewQuad(core.NewVec3(max.X, min.Y, min.Z), dx.Negate(), dy, mat), // back
		NewQuad(core.NewVec3(min.X, min.Y, min.Z), dz, dy, mat),  // left
		NewQuad(core.NewVec3(min.X, max.Y, max.Z), dx, dz.Negate(), mat), // top
		NewQuad(core.NewVec3(min.X, min.Y, min.Z), dx, dz, mat),  // bottom
	)
	return sides
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
