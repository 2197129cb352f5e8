package material

import (
	"math/rand"

	"github.com/dlrobertson/gopathtracer/pkg/core"
)

// DiffuseLight never scatters incident rays; it only emits its texture's
// value. Backgrounds behind an emissive surface are never visible through
// it because Scatter always reports no scattering.
type DiffuseLight struct {
	Emit core.Texture
}

// NewDiffuseLight builds a DiffuseLight material from a texture.
func NewDiffuseLight(emit core.Texture) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

// NewDiffuseLightColor is a convenience constructor for a solid-color light.
func NewDiffuseLightColor(color core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: solidTexture{color}}
}

// Scatter implements core.Material; DiffuseLight always absorbs.
func (d *DiffuseLight) Scatter(rIn core.Ray, rec core.HitRecord, rng *rand.Rand) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// Emitted implements core.Material.
func (d *DiffuseLight) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return d.Emit.Value(u, v, p)
}

// solidTexture is a tiny local core.Texture so NewDiffuseLightColor doesn't
// need to import the texture package, keeping material's imports to core.
// (Importing texture would not create a cycle, since texture never imports
// material.)
type solidTexture struct{ color core.Vec3 }

func (s solidTexture) Value(u, v float64, p core.Vec3) core.Vec3 { return s.color }
