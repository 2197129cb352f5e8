package camera

import (
	"math"
	"math/rand"
	"testing"

	"github.com/dlrobertson/gopathtracer/pkg/core"
	"github.com/dlrobertson/gopathtracer/pkg/hittable"
	"github.com/dlrobertson/gopathtracer/pkg/material"
	"github.com/dlrobertson/gopathtracer/pkg/texture"
)

func TestRayColorZeroDepthReturnsBlack(t *testing.T) {
	scene := core.Scene{Root: hittable.NewComposite(), Background: core.NewVec3(0.5, 0.7, 1.0)}
	rng := rand.New(rand.NewSource(1))
	got := RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1), 0), scene, 0, rng)
	if got != (core.Vec3{}) {
		t.Fatalf("RayColor at depth 0 = %+v, want zero", got)
	}
}

func TestRayColorEscapingRayReturnsBackground(t *testing.T) {
	background := core.NewVec3(0.5, 0.7, 1.0)
	scene := core.Scene{Root: hittable.NewComposite(), Background: background}
	rng := rand.New(rand.NewSource(1))
	got := RayColor(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1), 0), scene, 5, rng)
	if got != background {
		t.Fatalf("RayColor for an empty scene = %+v, want background %+v", got, background)
	}
}

func TestRayColorEmissiveSurfaceReturnsJustEmission(t *testing.T) {
	light := material.NewDiffuseLightColor(core.NewVec3(4, 4, 4))
	sphere := hittable.NewSphere(core.NewVec3(0, 0, -2), 1, light)
	scene := core.Scene{Root: hittable.NewComposite(sphere), Background: core.Vec3{}}

	rng := rand.New(rand.NewSource(1))
	r := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1), 0)
	got := RayColor(r, scene, 5, rng)
	if got != (core.Vec3{4, 4, 4}) {
		t.Fatalf("RayColor hitting a pure light = %+v, want (4,4,4)", got)
	}
}

func TestRayColorLambertianSphereProducesNonNegativeFiniteColor(t *testing.T) {
	lam := material.NewLambertian(texture.NewSolid(core.NewVec3(0.5, 0.5, 0.5)))
	sphere := hittable.NewSphere(core.NewVec3(0, 0, -2), 1, lam)
	scene := core.Scene{Root: hittable.NewComposite(sphere), Background: core.NewVec3(0.5, 0.7, 1.0)}

	rng := rand.New(rand.NewSource(3))
	r := core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1), 0)
	got := RayColor(r, scene, 8, rng)

	if got.X < 0 || got.Y < 0 || got.Z < 0 {
		t.Fatalf("color should never be negative, got %+v", got)
	}
	if math.IsNaN(got.X) || math.IsInf(got.X, 0) {
		t.Fatalf("color component is not finite: %+v", got)
	}
}
