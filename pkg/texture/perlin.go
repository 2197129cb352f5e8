package texture

import (
	"math"
	"math/rand"

	"github.com/dlrobertson/gopathtracer/pkg/core"
)

const perlinPointCount = 256

// perlinNoise holds the 256-entry gradient table and three independent axis
// permutations that drive the noise lattice lookup, matching the classic
// Perlin-noise-via-random-gradient-vectors construction.
type perlinNoise struct {
	randVec        []core.Vec3
	permX, permY, permZ []int
}

func newPerlinNoise(rng *rand.Rand) *perlinNoise {
	rv := make([]core.Vec3, perlinPointCount)
	for i := range rv {
		rv[i] = core.RandomVec3Range(rng, -1, 1).Unit()
	}
	return &perlinNoise{
		randVec: rv,
		permX:   generatePerlinPermutation(rng),
		permY:   generatePerlinPermutation(rng),
		permZ:   generatePerlinPermutation(rng),
	}
}

func generatePerlinPermutation(rng *rand.Rand) []int {
	p := make([]int, perlinPointCount)
	for i := range p {
		p[i] = i
	}
	for i := len(p) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}
	return p
}

// noise samples the noise field at an arbitrary point, producing a signed
// value via trilinear Hermite-smoothed interpolation of lattice gradients.
func (pn *perlinNoise) noise(p core.Vec3) float64 {
	u := p.X - math.Floor(p.X)
	v := p.Y - math.Floor(p.Y)
	w := p.Z - math.Floor(p.Z)

	i := int(math.Floor(p.X))
	j := int(math.Floor(p.Y))
	k := int(math.Floor(p.Z))

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				idx := pn.permX[(i+di)&255] ^ pn.permY[(j+dj)&255] ^ pn.permZ[(k+dk)&255]
				c[di][dj][dk] = pn.randVec[idx]
			}
		}
	}

	return perlinInterpolate(c, u, v, w)
}

func perlinInterpolate(c [2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				weight := core.NewVec3(u-float64(i), v-float64(j), w-float64(k))
				fi, fj, fk := float64(i), float64(j), float64(k)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// turbulence sums |noise(2^n * p)| * 2^-n over depth octaves, producing the
// marble-like composite used by the Noise texture.
func (pn *perlinNoise) turbulence(p core.Vec3, depth int) float64 {
	accum := 0.0
	weight := 1.0
	point := p
	for i := 0; i < depth; i++ {
		accum += weight * math.Abs(pn.noise(point))
		weight *= 0.5
		point = point.Scale(2)
	}
	return math.Abs(accum)
}

// Noise is a Perlin-turbulence texture producing marble-like veins: a
// sinusoid of (Scale*p.Z + 10*turbulence) maps to [0,1] of a
// base color.
type Noise struct {
	pn              *perlinNoise
	Scale           float64
	TurbulenceDepth int
	Color           core.Vec3
}

// NewNoise builds a marble-patterned Perlin texture seeded from rng.
func NewNoise(rng *rand.Rand, scale float64, turbulenceDepth int, color core.Vec3) *Noise {
	return &Noise{
		pn:              newPerlinNoise(rng),
		Scale:           scale,
		TurbulenceDepth: turbulenceDepth,
		Color:           color,
	}
}

// Value implements core.Texture.
func (n *Noise) Value(u, v float64, p core.Vec3) core.Vec3 {
	marble := 1 + math.Sin(n.Scale*p.Z+10*n.pn.turbulence(p, n.TurbulenceDepth))
	return n.Color.Scale(0.5 * marble)
}
