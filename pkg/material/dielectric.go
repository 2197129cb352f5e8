package material

import (
	"math"
	"math/rand"

	"github.com/dlrobertson/gopathtracer/pkg/core"
)

// Dielectric is a refractive material (glass, water, diamond) described by
// its index of refraction. Attenuation is always (1,1,1): dielectrics do
// not absorb, only redirect.
type Dielectric struct {
	RefractionIndex float64
}

// NewDielectric builds a Dielectric material with the given index of
// refraction (e.g. 1.5 for glass).
func NewDielectric(refractionIndex float64) *Dielectric {
	return &Dielectric{RefractionIndex: refractionIndex}
}

// Scatter implements core.Material: refracts or reflects using Schlick's
// approximation for reflectance, choosing reflection whenever total
// internal reflection is geometrically forced or the stochastic reflectance
// test fires.
func (d *Dielectric) Scatter(rIn core.Ray, rec core.HitRecord, rng *rand.Rand) (core.ScatterResult, bool) {
	eta := d.RefractionIndex
	if rec.FrontFace {
		eta = 1.0 / d.RefractionIndex
	}

	unitDir := rIn.Direction.Unit()
	cosTheta := math.Min(unitDir.Negate().Dot(rec.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := eta*sinTheta > 1.0
	var direction core.Vec3
	if cannotRefract || reflectance(cosTheta, eta) > core.RandomFloat(rng) {
		direction = unitDir.Reflect(rec.Normal)
	} else {
		direction = unitDir.Refract(rec.Normal, eta)
	}

	return core.ScatterResult{
		Scattered:   core.NewRay(rec.Point, direction, rIn.Time),
		Attenuation: core.NewVec3(1, 1, 1),
	}, true
}

// Emitted implements core.Material; Dielectric never emits.
func (d *Dielectric) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// reflectance computes Schlick's approximation to the Fresnel reflectance.
func reflectance(cosine, refractionIndex float64) float64 {
	r0 := (1 - refractionIndex) / (1 + refractionIndex)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
