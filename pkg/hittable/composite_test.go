package hittable

import (
	"math"
	"testing"

	"github.com/dlrobertson/gopathtracer/pkg/core"
)

func TestCompositeReturnsClosestHit(t *testing.T) {
	near := NewSphere(core.NewVec3(0, 0, -1), 0.5, solidLambertian(core.NewVec3(1, 0, 0)))
	far := NewSphere(core.NewVec3(0, 0, -5), 0.5, solidLambertian(core.NewVec3(0, 1, 0)))
	c := NewComposite(far, near) // intentionally out of distance order

	r := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1), 0)
	rec, ok := c.Hit(r, core.NewInterval(0.001, math.Inf(1)))
	if !ok {
		t.Fatalf("expected hit")
	}
	if math.Abs(rec.T-0.5) > 1e-9 {
		t.Fatalf("t = %v, want 0.5 (the nearer sphere)", rec.T)
	}
}

func TestCompositeEmptyNeverHits(t *testing.T) {
	c := NewComposite()
	r := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1), 0)
	if _, ok := c.Hit(r, core.NewInterval(0.001, math.Inf(1))); ok {
		t.Fatalf("empty composite should never report a hit")
	}
}

func TestCompositeBoundingBoxUnionsMembers(t *testing.T) {
	a := NewSphere(core.NewVec3(-10, 0, 0), 1, solidLambertian(core.NewVec3(1, 1, 1)))
	b := NewSphere(core.NewVec3(10, 0, 0), 1, solidLambertian(core.NewVec3(1, 1, 1)))
	c := NewComposite(a, b)

	box := c.BoundingBox()
	if !box.Contains(core.NewVec3(-10, 0, 0)) || !box.Contains(core.NewVec3(10, 0, 0)) {
		t.Fatalf("composite bounding box should contain both members' centers")
	}
}
