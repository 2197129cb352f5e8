package hittable

import (
	"math"
	"math/rand"

	"github.com/dlrobertson/gopathtracer/pkg/core"
	"github.com/dlrobertson/gopathtracer/pkg/material"
)

// ConstantMedium is a volume of uniform density (fog, smoke) bounded by an
// arbitrary hittable. A ray passing through scatters at a distance drawn
// from an exponential distribution governed by the density, regardless of
// where inside the boundary it enters.
type ConstantMedium struct {
	Boundary    core.Hittable
	NegInvDensity float64
	PhaseFunction core.Material
}

// NewConstantMedium builds a ConstantMedium with a textured phase function.
func NewConstantMedium(boundary core.Hittable, density float64, albedo core.Texture) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		NegInvDensity: -1.0 / density,
		PhaseFunction: material.NewIsotropic(albedo),
	}
}

// NewConstantMediumColor builds a ConstantMedium with a solid-color phase
// function.
func NewConstantMediumColor(boundary core.Hittable, density float64, color core.Vec3) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		NegInvDensity: -1.0 / density,
		PhaseFunction: material.NewIsotropic(solidColorTexture{color}),
	}
}

// Hit implements core.Hittable. UV coordinates are left at zero; the point
// inside the medium carries no meaningful surface parameterization. The
// scatter distance is drawn from the package-level random source since
// Hittable.Hit carries no rng of its own; math/rand's top-level generator
// is safe for concurrent use.
func (cm *ConstantMedium) Hit(r core.Ray, rayT core.Interval) (core.HitRecord, bool) {
	rec1, ok := cm.Boundary.Hit(r, core.UniverseInterval())
	if !ok {
		return core.HitRecord{}, false
	}

	rec2, ok := cm.Boundary.Hit(r, core.NewInterval(rec1.T+0.0001, math.Inf(1)))
	if !ok {
		return core.HitRecord{}, false
	}

	if rec1.T < rayT.Min {
		rec1.T = rayT.Min
	}
	if rec2.T > rayT.Max {
		rec2.T = rayT.Max
	}
	if rec1.T >= rec2.T {
		return core.HitRecord{}, false
	}
	if rec1.T < 0 {
		rec1.T = 0
	}

	rayLength := r.Direction.Length()
	distanceInsideBoundary := (rec2.T - rec1.T) * rayLength
	hitDistance := cm.NegInvDensity * math.Log(rand.Float64())
	if hitDistance > distanceInsideBoundary {
		return core.HitRecord{}, false
	}

	t := rec1.T + hitDistance/rayLength
	return core.HitRecord{
		Point:     r.At(t),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary; isotropic scattering ignores it
		Material:  cm.PhaseFunction,
		T:         t,
		FrontFace: true,
	}, true
}

// BoundingBox implements core.Hittable.
func (cm *ConstantMedium) BoundingBox() core.AABB {
	return cm.Boundary.BoundingBox()
}

// solidColorTexture is a tiny local core.Texture so this file doesn't need
// to import pkg/texture for a single constant-color convenience path.
type solidColorTexture struct{ color core.Vec3 }

func (s solidColorTexture) Value(u, v float64, p core.Vec3) core.Vec3 { return s.color }
