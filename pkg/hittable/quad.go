package hittable

import (
	"math"

	"github.com/dlrobertson/gopathtracer/pkg/core"
)

// Quad is a planar parallelogram defined by a corner point and two edge
// vectors. Its normal is u cross v, normalized.
type Quad struct {
	Corner   core.Vec3
	U, V     core.Vec3
	Material core.Material

	normal core.Vec3
	d      float64
	w      core.Vec3
	bbox   core.AABB
}

// NewQuad builds a Quad from a corner and two edge vectors.
func NewQuad(corner, u, v core.Vec3, mat core.Material) *Quad {
	n := u.Cross(v)
	normal := n.Unit()
	d := normal.Dot(corner)
	w := n.Scale(1.0 / n.Dot(n))

	q := &Quad{Corner: corner, U: u, V: v, Material: mat, normal: normal, d: d, w: w}
	q.bbox = core.NewAABBFromPoints(
		corner,
		corner.Add(u),
		corner.Add(v),
		corner.Add(u).Add(v),
	)
	return q
}

// Hit implements core.Hittable.
func (q *Quad) Hit(r core.Ray, rayT core.Interval) (core.HitRecord, bool) {
	denom := q.normal.Dot(r.Direction)
	if math.Abs(denom) < 1e-8 {
		return core.HitRecord{}, false
	}

	t := (q.d - q.normal.Dot(r.Origin)) / denom
	if !rayT.Surrounds(t) {
		return core.HitRecord{}, false
	}

	point := r.At(t)
	hitVec := point.Sub(q.Corner)
	alpha := q.w.Dot(hitVec.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(hitVec))

	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return core.HitRecord{}, false
	}

	rec := core.HitRecord{Point: point, T: t, Material: q.Material, U: alpha, V: beta}
	rec.SetFaceNormal(r, q.normal)
	return rec, true
}

// BoundingBox implements core.Hittable.
func (q *Quad) BoundingBox() core.AABB {
	return q.bbox
}
