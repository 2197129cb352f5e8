package material

import (
	"math/rand"

	"github.com/dlrobertson/gopathtracer/pkg/core"
)

// Isotropic scatters uniformly in every direction, regardless of the
// surface normal. Used as the phase function inside participating media
// (ConstantMedium).
type Isotropic struct {
	Albedo core.Texture
}

// NewIsotropic builds an Isotropic material from a texture.
func NewIsotropic(albedo core.Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter implements core.Material: always scatters in a uniform random
// direction on the unit sphere.
func (i *Isotropic) Scatter(rIn core.Ray, rec core.HitRecord, rng *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{
		Scattered:   core.NewRay(rec.Point, core.RandomUnitVector(rng), rIn.Time),
		Attenuation: i.Albedo.Value(rec.U, rec.V, rec.Point),
	}, true
}

// Emitted implements core.Material; Isotropic never emits.
func (i *Isotropic) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}
