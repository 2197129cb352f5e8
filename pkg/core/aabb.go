package core

import "math"

// minAABBWidth is the minimum extent enforced per axis so that slab tests
// never divide by a truly zero-width interval.
const minAABBWidth = 1e-4

// AABB is an axis-aligned bounding box: one Interval per axis.
type AABB struct {
	X, Y, Z Interval
}

// NewAABB builds an AABB from three per-axis intervals, padding any
// degenerate (too-thin) axis.
func NewAABB(x, y, z Interval) AABB {
	return AABB{X: padAxis(x), Y: padAxis(y), Z: padAxis(z)}
}

// NewAABBFromPoints builds the smallest AABB enclosing all given points,
// ordering min/max per axis regardless of the order they're given in. At
// least one point must be given.
func NewAABBFromPoints(points ...Vec3) AABB {
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		min = Vec3{minF(min.X, p.X), minF(min.Y, p.Y), minF(min.Z, p.Z)}
		max = Vec3{maxF(max.X, p.X), maxF(max.Y, p.Y), maxF(max.Z, p.Z)}
	}
	return NewAABB(
		Interval{Min: min.X, Max: max.X},
		Interval{Min: min.Y, Max: max.Y},
		Interval{Min: min.Z, Max: max.Z},
	)
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

func padAxis(iv Interval) Interval {
	if iv.Len() < minAABBWidth {
		padded := iv.Expand(minAABBWidth)
		// Rounding in Expand can leave the width a few ulps short of
		// minAABBWidth; nudge Max up until the minimum holds.
		for padded.Len() < minAABBWidth && !math.IsInf(padded.Max, 0) {
			padded.Max = math.Nextafter(padded.Max, math.Inf(1))
		}
		return padded
	}
	return iv
}

// EmptyAABB returns an AABB that contains no points, suitable as the seed
// for a running union.
func EmptyAABB() AABB {
	return AABB{X: EmptyInterval(), Y: EmptyInterval(), Z: EmptyInterval()}
}

// Axis returns the Interval for the given axis index (0=X, 1=Y, 2=Z). It
// panics on an out-of-range index: an invalid axis is a programmer error,
// never external input.
func (b AABB) Axis(axis int) Interval {
	switch axis {
	case 0:
		return b.X
	case 1:
		return b.Y
	case 2:
		return b.Z
	default:
		panic("core: AABB axis index out of range")
	}
}

// Union returns the AABB bounding both operands.
func (b AABB) Union(o AABB) AABB {
	return AABB{X: b.X.Union(o.X), Y: b.Y.Union(o.Y), Z: b.Z.Union(o.Z)}
}

// Min returns the minimum corner.
func (b AABB) Min() Vec3 { return Vec3{b.X.Min, b.Y.Min, b.Z.Min} }

// Max returns the maximum corner.
func (b AABB) Max() Vec3 { return Vec3{b.X.Max, b.Y.Max, b.Z.Max} }

// Center returns the AABB's centroid.
func (b AABB) Center() Vec3 { return b.Min().Add(b.Max()).Scale(0.5) }

// LongestAxis returns the axis index (0/1/2) with the largest extent.
func (b AABB) LongestAxis() int {
	lx, ly, lz := b.X.Len(), b.Y.Len(), b.Z.Len()
	if lx > ly && lx > lz {
		return 0
	}
	if ly > lz {
		return 1
	}
	return 2
}

// Corners returns all 8 corners of the box, used to re-bound a transformed
// AABB (e.g. after RotateY).
func (b AABB) Corners() [8]Vec3 {
	var c [8]Vec3
	i := 0
	for _, x := range [2]float64{b.X.Min, b.X.Max} {
		for _, y := range [2]float64{b.Y.Min, b.Y.Max} {
			for _, z := range [2]float64{b.Z.Min, b.Z.Max} {
				c[i] = Vec3{x, y, z}
				i++
			}
		}
	}
	return c
}

// Hit tests whether a ray intersects the box within rayInterval, using the
// slab method. Division by a zero direction component is intentionally left
// to IEEE signed-infinity arithmetic rather than special-cased: an axis the
// ray is parallel to either trivially contains the origin (t range stays
// unbounded) or trivially misses (t range becomes empty), and float64
// division by zero produces the correctly-signed infinity for both cases
// without panicking or producing NaN, as long as the ray does not originate
// exactly on the slab boundary.
func (b AABB) Hit(r Ray, rayInterval Interval) bool {
	for axis := 0; axis < 3; axis++ {
		ivl := b.Axis(axis)
		origin := component(r.Origin, axis)
		dir := component(r.Direction, axis)

		invD := 1.0 / dir
		t0 := (ivl.Min - origin) * invD
		t1 := (ivl.Max - origin) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}

		if t0 > rayInterval.Min {
			rayInterval.Min = t0
		}
		if t1 < rayInterval.Max {
			rayInterval.Max = t1
		}
		if rayInterval.Max <= rayInterval.Min {
			return false
		}
	}
	return true
}

func component(v Vec3, axis int) float64 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Contains reports whether p lies within the box on every axis (inclusive).
func (b AABB) Contains(p Vec3) bool {
	return b.X.Contains(p.X) && b.Y.Contains(p.Y) && b.Z.Contains(p.Z)
}

// IsValid reports whether min <= max holds on every axis.
func (b AABB) IsValid() bool {
	return b.X.Min <= b.X.Max && b.Y.Min <= b.Y.Max && b.Z.Min <= b.Z.Max
}
