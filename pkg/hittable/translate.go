package hittable

import "github.com/dlrobertson/gopathtracer/pkg/core"

// Translate displaces a hittable by a fixed offset without actually moving
// its geometry: the incident ray is translated into object space, and the
// resulting hit point is translated back into world space.
type Translate struct {
	Object core.Hittable
	Offset core.Vec3
	bbox   core.AABB
}

// NewTranslate wraps object so it appears displaced by offset.
func NewTranslate(object core.Hittable, offset core.Vec3) *Translate {
	bbox := object.BoundingBox()
	return &Translate{
		Object: object,
		Offset: offset,
		bbox:   core.NewAABBFromPoints(bbox.Min().Add(offset), bbox.Max().Add(offset)),
	}
}

// Hit implements core.Hittable.
func (t *Translate) Hit(r core.Ray, rayT core.Interval) (core.HitRecord, bool) {
	offsetRay := core.NewRay(r.Origin.Sub(t.Offset), r.Direction, r.Time)

	rec, ok := t.Object.Hit(offsetRay, rayT)
	if !ok {
		return core.HitRecord{}, false
	}
	rec.Point = rec.Point.Add(t.Offset)
	return rec, true
}

// BoundingBox implements core.Hittable.
func (t *Translate) BoundingBox() core.AABB {
	return t.bbox
}
