package hittable

import (
	"math"

	"github.com/dlrobertson/gopathtracer/pkg/core"
)

// RotateY rotates a hittable around the Y axis without actually rotating its
// geometry: the incident ray is rotated into object space by -theta, and the
// resulting hit point and normal are rotated back into world space by theta.
type RotateY struct {
	Object core.Hittable
	Theta  float64
	bbox   core.AABB
}

// NewRotateY wraps object, rotating it angleRadians around the Y axis.
func NewRotateY(object core.Hittable, angleRadians float64) *RotateY {
	bbox := object.BoundingBox()

	min := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	max := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))

	corners := bbox.Corners()
	for _, corner := range corners {
		rotated := corner.RotateY(angleRadians)
		min = core.NewVec3(minF(min.X, rotated.X), minF(min.Y, rotated.Y), minF(min.Z, rotated.Z))
		max = core.NewVec3(maxF(max.X, rotated.X), maxF(max.Y, rotated.Y), maxF(max.Z, rotated.Z))
	}

	return &RotateY{
		Object: object,
		Theta:  angleRadians,
		bbox:   core.NewAABBFromPoints(min, max),
	}
}

// Hit implements core.Hittable.
func (rot *RotateY) Hit(r core.Ray, rayT core.Interval) (core.HitRecord, bool) {
	rotatedRay := core.NewRay(
		r.Origin.RotateY(-rot.Theta),
		r.Direction.RotateY(-rot.Theta),
		r.Time,
	)

	rec, ok := rot.Object.Hit(rotatedRay, rayT)
	if !ok {
		return core.HitRecord{}, false
	}

	rec.Point = rec.Point.RotateY(rot.Theta)
	rec.Normal = rec.Normal.RotateY(rot.Theta)
	return rec, true
}

// BoundingBox implements core.Hittable.
func (rot *RotateY) BoundingBox() core.AABB {
	return rot.bbox
}
