package camera

import (
	"math"
	"math/rand"

	"github.com/dlrobertson/gopathtracer/pkg/core"
)

// RenderRay samples a single camera ray for (row, col) and estimates its
// radiance against scene, recursing up to depth bounces.
func (c *Camera) RenderRay(row, col int, scene core.Scene, depth int, rng *rand.Rand) core.Vec3 {
	r := c.GenerateRay(row, col, rng)
	return RayColor(r, scene, depth, rng)
}

// RayColor is the recursive Monte-Carlo radiance estimator: it terminates
// the recursion at depth 0, returns the scene's background color for rays
// that escape, and otherwise accumulates emitted light plus attenuated
// recursive radiance from whatever direction the hit material scatters
// into. Self-intersection is avoided by the epsilon lower bound on the hit
// interval, not by offsetting the hit point.
func RayColor(r core.Ray, scene core.Scene, depth int, rng *rand.Rand) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	rec, ok := scene.Root.Hit(r, core.NewInterval(core.ShadowEpsilon, math.Inf(1)))
	if !ok {
		return scene.Background
	}

	emitted := rec.Material.Emitted(rec.U, rec.V, rec.Point)

	scatter, didScatter := rec.Material.Scatter(r, rec, rng)
	if !didScatter {
		return emitted
	}

	recursive := RayColor(scatter.Scattered, scene, depth-1, rng)
	return emitted.Add(scatter.Attenuation.Mul(recursive))
}
