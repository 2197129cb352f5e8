package core

import (
	"math"
	"math/rand"
	"testing"
)

func approxEqual(a, b, eps float64) bool { return math.Abs(a-b) < eps }

func TestVec3BasicOps(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	if got := a.Add(b); got != (Vec3{5, 7, 9}) {
		t.Fatalf("Add = %+v", got)
	}
	if got := b.Sub(a); got != (Vec3{3, 3, 3}) {
		t.Fatalf("Sub = %+v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Fatalf("Dot = %v, want 32", got)
	}
	if got := a.Cross(b); got != (Vec3{-3, 6, -3}) {
		t.Fatalf("Cross = %+v", got)
	}
}

func TestVec3UnitLength(t *testing.T) {
	v := NewVec3(3, 4, 0).Unit()
	if !approxEqual(v.Length(), 1, 1e-12) {
		t.Fatalf("unit vector length = %v, want 1", v.Length())
	}
}

func TestVec3NearZero(t *testing.T) {
	if !(Vec3{1e-9, -1e-9, 0}).NearZero() {
		t.Fatalf("expected near-zero vector to be detected")
	}
	if (Vec3{0.1, 0, 0}).NearZero() {
		t.Fatalf("0.1 should not be near-zero")
	}
}

func TestVec3ReflectAboutNormal(t *testing.T) {
	incident := NewVec3(1, -1, 0).Unit()
	normal := NewVec3(0, 1, 0)
	reflected := incident.Reflect(normal)
	// Reflecting about the Y axis should flip the Y component's sign and
	// leave X unchanged.
	if !approxEqual(reflected.X, incident.X, 1e-9) {
		t.Fatalf("reflected.X = %v, want %v", reflected.X, incident.X)
	}
	if !approxEqual(reflected.Y, -incident.Y, 1e-9) {
		t.Fatalf("reflected.Y = %v, want %v", reflected.Y, -incident.Y)
	}
}

func TestVec3RotateYPreservesLength(t *testing.T) {
	v := NewVec3(1, 2, 3)
	r := v.RotateY(0.7)
	if !approxEqual(r.Length(), v.Length(), 1e-9) {
		t.Fatalf("RotateY changed length: %v vs %v", r.Length(), v.Length())
	}
}

func TestVec3RotateYRoundTrip(t *testing.T) {
	v := NewVec3(1, 2, 3)
	theta := 0.9
	r := v.RotateY(theta).RotateY(-theta)
	if !approxEqual(r.X, v.X, 1e-9) || !approxEqual(r.Y, v.Y, 1e-9) || !approxEqual(r.Z, v.Z, 1e-9) {
		t.Fatalf("RotateY(theta) then RotateY(-theta) = %+v, want %+v", r, v)
	}
}

func TestVec3RotateRodriguesPreservesAxisComponentAndLength(t *testing.T) {
	v := NewVec3(1, 2, 3)
	axis := NewVec3(0, 1, 0)
	r := v.RotateRodrigues(1.234, axis)
	// Component along the axis is unchanged.
	if !approxEqual(r.Y, v.Y, 1e-9) {
		t.Fatalf("rotation around Y should preserve the Y component: %v vs %v", r.Y, v.Y)
	}
	if !approxEqual(r.Length(), v.Length(), 1e-9) {
		t.Fatalf("rotation should preserve length")
	}
}

func TestRandomInUnitSphereStaysInside(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		p := RandomInUnitSphere(rng)
		if p.LengthSquared() >= 1 {
			t.Fatalf("point %+v outside unit sphere", p)
		}
	}
}

func TestRandomUnitVectorIsUnitLength(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		v := RandomUnitVector(rng)
		if !approxEqual(v.Length(), 1, 1e-9) {
			t.Fatalf("RandomUnitVector length = %v, want 1", v.Length())
		}
	}
}

func TestRandomInUnitDiskStaysFlat(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		p := RandomInUnitDisk(rng)
		if p.Z != 0 {
			t.Fatalf("disk sample should have Z=0, got %v", p.Z)
		}
		if p.LengthSquared() >= 1 {
			t.Fatalf("point %+v outside unit disk", p)
		}
	}
}
