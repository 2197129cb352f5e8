package core

import "math"

// Interval is a scalar range [Min, Max]. The zero value is not empty; use
// EmptyInterval for that. ShadowEpsilon is the canonical lower bound used on
// ray-parameter intervals to avoid shadow acne from self-intersection.
const ShadowEpsilon = 1e-3

// Interval represents a closed scalar range.
type Interval struct {
	Min, Max float64
}

// NewInterval constructs an interval from its bounds.
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// EmptyInterval returns the canonical empty interval (min=+Inf, max=-Inf).
func EmptyInterval() Interval {
	return Interval{Min: math.Inf(1), Max: math.Inf(-1)}
}

// UniverseInterval returns the interval spanning all reals.
func UniverseInterval() Interval {
	return Interval{Min: math.Inf(-1), Max: math.Inf(1)}
}

// Len returns the length of the interval (may be negative if empty).
func (iv Interval) Len() float64 { return iv.Max - iv.Min }

// Contains reports whether x lies in the closed interval.
func (iv Interval) Contains(x float64) bool { return iv.Min <= x && x <= iv.Max }

// Surrounds reports whether x lies in the open interval.
func (iv Interval) Surrounds(x float64) bool { return iv.Min < x && x < iv.Max }

// Clamp clamps x into the interval.
func (iv Interval) Clamp(x float64) float64 {
	if x < iv.Min {
		return iv.Min
	}
	if x > iv.Max {
		return iv.Max
	}
	return x
}

// Expand returns the interval padded by delta/2 on each side.
func (iv Interval) Expand(delta float64) Interval {
	pad := delta / 2
	return Interval{Min: iv.Min - pad, Max: iv.Max + pad}
}

// Union returns the smallest interval containing both operands.
func (iv Interval) Union(other Interval) Interval {
	return Interval{Min: math.Min(iv.Min, other.Min), Max: math.Max(iv.Max, other.Max)}
}

// Intersect returns the overlap of two intervals (may come out empty, i.e.
// Min > Max).
func (iv Interval) Intersect(other Interval) Interval {
	return Interval{Min: math.Max(iv.Min, other.Min), Max: math.Min(iv.Max, other.Max)}
}

// Empty reports whether the interval contains no points.
func (iv Interval) Empty() bool { return iv.Min > iv.Max }
