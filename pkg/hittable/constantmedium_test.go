package hittable

import (
	"math"
	"testing"

	"github.com/dlrobertson/gopathtracer/pkg/core"
)

func TestConstantMediumStaysWithinBoundary(t *testing.T) {
	boundary := NewBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), solidLambertian(core.NewVec3(1, 1, 1)))
	medium := NewConstantMediumColor(boundary, 1.0, core.NewVec3(0.8, 0.8, 0.8))

	r := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 0)
	boundaryBox := boundary.BoundingBox()

	hits := 0
	for i := 0; i < 200; i++ {
		rec, ok := medium.Hit(r, core.NewInterval(0.001, math.Inf(1)))
		if !ok {
			continue
		}
		hits++
		if !boundaryBox.Contains(rec.Point) {
			t.Fatalf("scatter point %+v should lie within the medium's boundary", rec.Point)
		}
		if rec.Material != medium.PhaseFunction {
			t.Fatalf("scatter should use the medium's phase function material")
		}
	}
	if hits == 0 {
		t.Fatalf("expected at least one scatter event across 200 trials through a dense medium")
	}
}

func TestConstantMediumMissesWhenRayMissesBoundary(t *testing.T) {
	boundary := NewBox(core.NewVec3(-1, -1, -1), core.NewVec3(1, 1, 1), solidLambertian(core.NewVec3(1, 1, 1)))
	medium := NewConstantMediumColor(boundary, 1.0, core.NewVec3(0.8, 0.8, 0.8))

	r := core.NewRay(core.NewVec3(100, 100, 5), core.NewVec3(0, 0, -1), 0)
	if _, ok := medium.Hit(r, core.NewInterval(0.001, math.Inf(1))); ok {
		t.Fatalf("a ray missing the boundary entirely should never scatter")
	}
}

func TestConstantMediumBoundingBoxMatchesBoundary(t *testing.T) {
	boundary := NewSphere(core.Vec3{}, 2, solidLambertian(core.NewVec3(1, 1, 1)))
	medium := NewConstantMediumColor(boundary, 0.5, core.NewVec3(1, 1, 1))
	if medium.BoundingBox() != boundary.BoundingBox() {
		t.Fatalf("medium bounding box should equal its boundary's")
	}
}
