package material

import (
	"math/rand"

	"github.com/dlrobertson/gopathtracer/pkg/core"
)

// Metal reflects incident rays about the surface normal, perturbed by a
// fuzz radius.
type Metal struct {
	Albedo core.Vec3
	Fuzz   float64
}

// NewMetal builds a Metal material. Fuzz is clamped to [0,1].
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	if fuzz > 1 {
		fuzz = 1
	}
	if fuzz < 0 {
		fuzz = 0
	}
	return &Metal{Albedo: albedo, Fuzz: fuzz}
}

// Scatter implements core.Material. The reflected ray is rejected (no
// scatter) if fuzz perturbation sends it below the surface.
func (m *Metal) Scatter(rIn core.Ray, rec core.HitRecord, rng *rand.Rand) (core.ScatterResult, bool) {
	reflected := rIn.Direction.Unit().Reflect(rec.Normal)
	reflected = reflected.Add(core.RandomUnitVector(rng).Scale(m.Fuzz))

	if reflected.Dot(rec.Normal) <= 0 {
		return core.ScatterResult{}, false
	}

	return core.ScatterResult{
		Scattered:   core.NewRay(rec.Point, reflected, rIn.Time),
		Attenuation: m.Albedo,
	}, true
}

// Emitted implements core.Material; Metal never emits.
func (m *Metal) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}
