package core

import (
	"math"
	"testing"
)

func TestEmptyIntervalIsEmpty(t *testing.T) {
	iv := EmptyInterval()
	if !iv.Empty() {
		t.Fatalf("expected empty interval, got %+v", iv)
	}
	if iv.Contains(0) {
		t.Fatalf("empty interval should contain nothing")
	}
}

func TestIntervalContainsSurrounds(t *testing.T) {
	iv := NewInterval(1, 3)
	if !iv.Contains(1) || !iv.Contains(3) {
		t.Fatalf("Contains should be closed at the bounds")
	}
	if iv.Surrounds(1) || iv.Surrounds(3) {
		t.Fatalf("Surrounds should be open at the bounds")
	}
	if !iv.Surrounds(2) {
		t.Fatalf("Surrounds should include interior points")
	}
}

func TestIntervalClampExpandUnion(t *testing.T) {
	iv := NewInterval(0, 10)
	if got := iv.Clamp(-5); got != 0 {
		t.Fatalf("Clamp(-5) = %v, want 0", got)
	}
	if got := iv.Clamp(15); got != 10 {
		t.Fatalf("Clamp(15) = %v, want 10", got)
	}

	expanded := iv.Expand(4)
	if expanded.Min != -2 || expanded.Max != 12 {
		t.Fatalf("Expand(4) = %+v, want [-2, 12]", expanded)
	}

	u := NewInterval(-1, 2).Union(NewInterval(5, 6))
	if u.Min != -1 || u.Max != 6 {
		t.Fatalf("Union = %+v, want [-1, 6]", u)
	}
}

func TestIntervalIntersect(t *testing.T) {
	a := NewInterval(0, 5)
	b := NewInterval(3, 10)
	x := a.Intersect(b)
	if x.Min != 3 || x.Max != 5 {
		t.Fatalf("Intersect = %+v, want [3, 5]", x)
	}

	disjoint := NewInterval(0, 1).Intersect(NewInterval(2, 3))
	if !disjoint.Empty() {
		t.Fatalf("disjoint intervals should intersect to empty, got %+v", disjoint)
	}
}

func TestUniverseInterval(t *testing.T) {
	u := UniverseInterval()
	if !math.IsInf(u.Min, -1) || !math.IsInf(u.Max, 1) {
		t.Fatalf("UniverseInterval should span all reals, got %+v", u)
	}
}
