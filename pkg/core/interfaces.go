package core

import "math/rand"

// HitRecord carries the surface data produced by a successful intersection.
// Normal is oriented against the incident ray ("outward" semantics): it
// equals the geometric outward normal when FrontFace is true, and its
// negation otherwise.
type HitRecord struct {
	Point     Vec3
	Normal    Vec3
	Material  Material
	T         float64
	U, V      float64
	FrontFace bool
}

// SetFaceNormal resolves FrontFace and Normal from the ray direction and the
// geometric outward normal. outwardNormal must already be unit length.
func (h *HitRecord) SetFaceNormal(r Ray, outwardNormal Vec3) {
	h.FrontFace = r.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// Hittable is anything that can report a bounding box and be intersected by
// a ray over a parameter interval.
type Hittable interface {
	// Hit returns the closest intersection with t in rayInterval, if any.
	Hit(r Ray, rayInterval Interval) (HitRecord, bool)
	// BoundingBox returns the AABB enclosing the hittable for all time.
	BoundingBox() AABB
}

// ScatterResult is the outcome of a Material.Scatter call that chose to
// scatter the incident ray.
type ScatterResult struct {
	Scattered   Ray
	Attenuation Vec3
}

// Material is the scatter/emit contract every surface material satisfies.
// Scatter returns (result, true) when the ray scatters, or (zero, false)
// when the material absorbs it (a pure light source, or an absorbed ray).
type Material interface {
	Scatter(rIn Ray, rec HitRecord, rng *rand.Rand) (ScatterResult, bool)
	// Emitted returns the radiance this material emits at the given
	// surface parameters; non-emissive materials return the zero vector.
	Emitted(u, v float64, p Vec3) Vec3
}

// Texture maps surface parameters to a color.
type Texture interface {
	Value(u, v float64, p Vec3) Vec3
}

// Logger is the sink the renderer reports progress and diagnostics
// through; never written to directly by hot-path code.
type Logger interface {
	Printf(format string, args ...interface{})
}

// Scene bundles the root hittable a render traverses with the background
// color returned when a ray escapes the scene entirely.
type Scene struct {
	Root       Hittable
	Background Vec3
}
