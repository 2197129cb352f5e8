// Package texture implements the Texture capability (core.Texture):
// value(u, v, p) -> Color lookups used by materials. Variants are solid
// colors, a procedural 3-D checker, image-backed lookup and Perlin-noise
// marble/turbulence patterns.
package texture

import "github.com/dlrobertson/gopathtracer/pkg/core"

// Solid is a texture that returns a constant color regardless of surface
// parameters.
type Solid struct {
	Color core.Vec3
}

// NewSolid constructs a Solid texture.
func NewSolid(color core.Vec3) *Solid {
	return &Solid{Color: color}
}

// Value implements core.Texture.
func (s *Solid) Value(u, v float64, p core.Vec3) core.Vec3 {
	return s.Color
}
