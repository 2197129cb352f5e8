// Package hittable implements the surface primitives that can be intersected
// by a ray: spheres, quads, boxes, and the composite/transform/volume
// wrappers that combine them into scenes.
package hittable

import (
	"math"

	"github.com/dlrobertson/gopathtracer/pkg/core"
)

// Sphere is a sphere of fixed center and radius.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere builds a Sphere. Radius may be negative to flip the sphere's
// normals inward, which is used to carve dielectric shells.
func NewSphere(center core.Vec3, radius float64, mat core.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: mat}
}

// Hit implements core.Hittable.
func (s *Sphere) Hit(r core.Ray, rayT core.Interval) (core.HitRecord, bool) {
	oc := s.Center.Sub(r.Origin)
	a := r.Direction.LengthSquared()
	halfB := r.Direction.Dot(oc)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return core.HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (halfB - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (halfB + sqrtD) / a
		if !rayT.Surrounds(root) {
			return core.HitRecord{}, false
		}
	}

	point := r.At(root)
	outwardNormal := point.Sub(s.Center).Scale(1.0 / s.Radius)
	u, v := sphereUV(outwardNormal)

	rec := core.HitRecord{Point: point, T: root, Material: s.Material, U: u, V: v}
	rec.SetFaceNormal(r, outwardNormal)
	return rec, true
}

// sphereUV computes texture coordinates for a point p on the unit sphere,
// where theta is measured from the south pole (-Y) and phi runs around Y.
func sphereUV(p core.Vec3) (u, v float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}

// BoundingBox implements core.Hittable.
func (s *Sphere) BoundingBox() core.AABB {
	r := core.NewVec3(math.Abs(s.Radius), math.Abs(s.Radius), math.Abs(s.Radius))
	return core.NewAABBFromPoints(s.Center.Sub(r), s.Center.Add(r))
}
