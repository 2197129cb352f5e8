package hittable

import "github.com/dlrobertson/gopathtracer/pkg/core"

// Composite is an unordered collection of hittables tested by brute-force
// linear scan, usable on its own for small object counts where a BVH would
// be overhead. BVH leaves are the bare hittables, not Composites.
type Composite struct {
	Objects []core.Hittable
	bbox    core.AABB
}

// NewComposite builds a Composite from zero or more hittables.
func NewComposite(objects ...core.Hittable) *Composite {
	c := &Composite{bbox: core.EmptyAABB()}
	for _, o := range objects {
		c.Add(o)
	}
	return c
}

// Add appends a hittable and grows the cached bounding box.
func (c *Composite) Add(object core.Hittable) {
	c.Objects = append(c.Objects, object)
	c.bbox = c.bbox.Union(object.BoundingBox())
}

// Hit implements core.Hittable: returns the closest hit among all members,
// truncating the search interval to the closest T found so far.
func (c *Composite) Hit(r core.Ray, rayT core.Interval) (core.HitRecord, bool) {
	var closest core.HitRecord
	hitAnything := false
	closestSoFar := rayT.Max

	for _, object := range c.Objects {
		if rec, ok := object.Hit(r, core.NewInterval(rayT.Min, closestSoFar)); ok {
			hitAnything = true
			closestSoFar = rec.T
			closest = rec
		}
	}

	return closest, hitAnything
}

// BoundingBox implements core.Hittable.
func (c *Composite) BoundingBox() core.AABB {
	return c.bbox
}
