package hittable

import (
	"sort"

	"github.com/dlrobertson/gopathtracer/pkg/core"
)

// bvhNode is one node of a Bounding Volume Hierarchy: an internal node
// with two children, which may themselves be leaves (bare hittables) or
// further bvhNodes.
type bvhNode struct {
	bbox  core.AABB
	left  core.Hittable
	right core.Hittable
}

// BVH accelerates ray intersection against a large set of hittables by
// recursively partitioning them into a binary tree of bounding boxes.
type BVH struct {
	root core.Hittable
	bbox core.AABB
}

// NewBVH builds a BVH over objects. An empty input yields a BVH with an
// empty bounding box that never reports a hit.
func NewBVH(objects []core.Hittable) *BVH {
	if len(objects) == 0 {
		return &BVH{bbox: core.EmptyAABB()}
	}

	objectsCopy := make([]core.Hittable, len(objects))
	copy(objectsCopy, objects)

	root := buildBVH(objectsCopy)
	return &BVH{root: root, bbox: root.BoundingBox()}
}

// buildBVH recursively partitions objects along the longest axis of their
// combined bounding box: sort by the min of that axis and split at the
// count-based median. A span of 1 makes both children the same leaf; a
// span of 2 orders the pair by the axis comparator instead of recursing.
func buildBVH(objects []core.Hittable) core.Hittable {
	span := len(objects)

	if span == 1 {
		return &bvhNode{bbox: objects[0].BoundingBox(), left: objects[0], right: objects[0]}
	}

	bbox := core.EmptyAABB()
	for _, o := range objects {
		bbox = bbox.Union(o.BoundingBox())
	}
	axis := bbox.LongestAxis()
	less := func(i, j int) bool {
		return objects[i].BoundingBox().Axis(axis).Min < objects[j].BoundingBox().Axis(axis).Min
	}

	if span == 2 {
		left, right := objects[0], objects[1]
		if !less(0, 1) {
			left, right = right, left
		}
		return &bvhNode{bbox: bbox, left: left, right: right}
	}

	sort.Slice(objects, less)
	mid := span / 2

	return &bvhNode{
		bbox:  bbox,
		left:  buildBVH(objects[:mid]),
		right: buildBVH(objects[mid:]),
	}
}

// Hit implements core.Hittable.
func (b *BVH) Hit(r core.Ray, rayT core.Interval) (core.HitRecord, bool) {
	if b.root == nil {
		return core.HitRecord{}, false
	}
	return b.root.Hit(r, rayT)
}

// BoundingBox implements core.Hittable.
func (b *BVH) BoundingBox() core.AABB {
	return b.bbox
}

// Hit implements core.Hittable for a single BVH tree node.
func (n *bvhNode) Hit(r core.Ray, rayT core.Interval) (core.HitRecord, bool) {
	if !n.bbox.Hit(r, rayT) {
		return core.HitRecord{}, false
	}

	leftRec, leftHit := n.left.Hit(r, rayT)
	closest := rayT.Max
	if leftHit {
		closest = leftRec.T
	}

	rightRec, rightHit := n.right.Hit(r, core.NewInterval(rayT.Min, closest))
	if rightHit {
		return rightRec, true
	}
	return leftRec, leftHit
}

// BoundingBox implements core.Hittable for a single BVH tree node.
func (n *bvhNode) BoundingBox() core.AABB {
	return n.bbox
}
