// Package core holds the hot-path math and the small set of capability
// interfaces (Hittable, Material, Texture) that the rest of the renderer
// is built against.
package core

import (
	"fmt"
	"math"
	"math/rand"
)

// Vec3 is a 3-vector used for positions, directions and linear-RGB colors.
// It is a value type: operations return new Vec3s rather than mutating the
// receiver, so it stays stack-allocated on the hot path.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec3 constructs a Vec3 from its components.
func NewVec3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func (v Vec3) String() string {
	return fmt.Sprintf("{%.4g, %.4g, %.4g}", v.X, v.Y, v.Z)
}

// Add returns the sum of two vectors.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns the difference of two vectors.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Mul returns the component-wise product of two vectors (used for colors).
func (v Vec3) Mul(o Vec3) Vec3 { return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z} }

// Scale returns the vector scaled by a scalar.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// Div returns the vector divided by a scalar.
func (v Vec3) Div(s float64) Vec3 { return v.Scale(1.0 / s) }

// Negate returns the additive inverse of the vector.
func (v Vec3) Negate() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product of two vectors.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean length of the vector.
func (v Vec3) Length() float64 { return math.Sqrt(v.LengthSquared()) }

// LengthSquared returns the squared Euclidean length, avoiding a sqrt.
func (v Vec3) LengthSquared() float64 { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }

// Unit returns a unit-length vector in the same direction. The zero vector
// maps to itself.
func (v Vec3) Unit() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1.0 / l)
}

// nearZeroThreshold is used to detect degenerate scatter directions.
const nearZeroThreshold = 1e-8

// NearZero reports whether every component is close enough to zero that the
// vector should be treated as degenerate (e.g. a cancelled scatter direction).
func (v Vec3) NearZero() bool {
	return math.Abs(v.X) < nearZeroThreshold &&
		math.Abs(v.Y) < nearZeroThreshold &&
		math.Abs(v.Z) < nearZeroThreshold
}

// Clamp clamps each component to [lo, hi].
func (v Vec3) Clamp(lo, hi float64) Vec3 {
	return Vec3{
		X: math.Max(lo, math.Min(hi, v.X)),
		Y: math.Max(lo, math.Min(hi, v.Y)),
		Z: math.Max(lo, math.Min(hi, v.Z)),
	}
}

// Reflect reflects v about a unit normal n.
func (v Vec3) Reflect(n Vec3) Vec3 {
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// Refract refracts the unit incident vector v across a unit normal n whose
// refraction-index ratio (incident-over-transmitted) is etaiOverEtat, using
// the standard Snell-law perpendicular/parallel split.
func (v Vec3) Refract(n Vec3, etaiOverEtat float64) Vec3 {
	cosTheta := math.Min(v.Negate().Dot(n), 1.0)
	rOutPerp := v.Add(n.Scale(cosTheta)).Scale(etaiOverEtat)
	rOutParallel := n.Scale(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// RotateY rotates v around the Y axis by theta radians.
func (v Vec3) RotateY(theta float64) Vec3 {
	cos, sin := math.Cos(theta), math.Sin(theta)
	return Vec3{
		X: cos*v.X + sin*v.Z,
		Y: v.Y,
		Z: -sin*v.X + cos*v.Z,
	}
}

// RotateRodrigues rotates v by theta radians around an arbitrary unit axis,
// using Rodrigues' rotation formula. Used by the sphereflake generator,
// which needs rotation about axes other than the coordinate axes.
func (v Vec3) RotateRodrigues(theta float64, axis Vec3) Vec3 {
	axis = axis.Unit()
	cos, sin := math.Cos(theta), math.Sin(theta)
	term1 := v.Scale(cos)
	term2 := axis.Cross(v).Scale(sin)
	term3 := axis.Scale(axis.Dot(v) * (1 - cos))
	return term1.Add(term2).Add(term3)
}

// --- RNG helpers (§4.1) ---

// RandomFloat returns a uniform float64 in [0, 1).
func RandomFloat(rng *rand.Rand) float64 { return rng.Float64() }

// RandomFloatRange returns a uniform float64 in [a, b).
func RandomFloatRange(rng *rand.Rand, a, b float64) float64 {
	return a + (b-a)*rng.Float64()
}

// RandomVec3Range returns a vector whose components are independently
// uniform in [a, b).
func RandomVec3Range(rng *rand.Rand, a, b float64) Vec3 {
	return Vec3{
		X: RandomFloatRange(rng, a, b),
		Y: RandomFloatRange(rng, a, b),
		Z: RandomFloatRange(rng, a, b),
	}
}

// RandomInUnitSphere returns a uniform random point inside the unit sphere
// via rejection sampling.
func RandomInUnitSphere(rng *rand.Rand) Vec3 {
	for {
		p := RandomVec3Range(rng, -1, 1)
		if p.LengthSquared() < 1 {
			return p
		}
	}
}

// RandomUnitVector returns a uniform random unit vector on the sphere.
func RandomUnitVector(rng *rand.Rand) Vec3 {
	return RandomInUnitSphere(rng).Unit()
}

// RandomInUnitDisk returns a uniform random point in the z=0 unit disk via
// rejection sampling, used for the camera's defocus disk.
func RandomInUnitDisk(rng *rand.Rand) Vec3 {
	for {
		p := Vec3{X: RandomFloatRange(rng, -1, 1), Y: RandomFloatRange(rng, -1, 1)}
		if p.LengthSquared() < 1 {
			return p
		}
	}
}
