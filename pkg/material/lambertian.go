// Package material implements the Material capability (core.Material):
// perfectly diffuse, metallic, dielectric, isotropic and emissive surfaces.
package material

import (
	"math/rand"

	"github.com/dlrobertson/gopathtracer/pkg/core"
)

// Lambertian is a perfectly diffuse material whose scatter direction is
// biased toward the surface normal.
type Lambertian struct {
	Albedo core.Texture
}

// NewLambertian builds a Lambertian material from a texture.
func NewLambertian(albedo core.Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements core.Material. The direction is normal +
// random-on-unit-sphere; a near-zero result (the random vector nearly
// cancelling the normal) is replaced by the normal itself so the scattered
// ray never has a degenerate direction.
func (l *Lambertian) Scatter(rIn core.Ray, rec core.HitRecord, rng *rand.Rand) (core.ScatterResult, bool) {
	direction := rec.Normal.Add(core.RandomUnitVector(rng))
	if direction.NearZero() {
		direction = rec.Normal
	}
	return core.ScatterResult{
		Scattered:   core.NewRay(rec.Point, direction, rIn.Time),
		Attenuation: l.Albedo.Value(rec.U, rec.V, rec.Point),
	}, true
}

// Emitted implements core.Material; Lambertian never emits.
func (l *Lambertian) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}
