package hittable

import (
	"math"
	"testing"

	"github.com/dlrobertson/gopathtracer/pkg/core"
)

func TestBoxHitFromOutside(t *testing.T) {
	b := NewBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), solidLambertian(core.NewVec3(1, 1, 1)))
	r := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 0)

	rec, ok := b.Hit(r, core.NewInterval(0.001, math.Inf(1)))
	if !ok {
		t.Fatalf("expected a ray through the box's center to hit")
	}
	if math.Abs(rec.T-4) > 1e-9 {
		t.Fatalf("t = %v, want 4 (front face at z=1)", rec.T)
	}
}

func TestBoxMissesRayOutsideExtent(t *testing.T) {
	b := NewBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), solidLambertian(core.NewVec3(1, 1, 1)))
	r := core.NewRay(core.NewVec3(10, 10, 5), core.NewVec3(0, 0, -1), 0)
	if _, ok := b.Hit(r, core.NewInterval(0.001, math.Inf(1))); ok {
		t.Fatalf("expected miss")
	}
}

func TestBoxBoundingBoxMatchesCorners(t *testing.T) {
	b := NewBox(core.NewVec3(-2, -1, -3), core.NewVec3(2, 1, 3), solidLambertian(core.NewVec3(1, 1, 1)))
	box := b.BoundingBox()
	if !box.Contains(core.NewVec3(-2, -1, -3)) || !box.Contains(core.NewVec3(2, 1, 3)) {
		t.Fatalf("bounding box should contain both opposite corners")
	}
}
