package core

// Ray is a parametric ray: origin + t*direction. Direction need not be
// unit-length; all intersection code must remain correct without that
// assumption. Time supports motion blur even though no shipped scene moves
// a primitive.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Time      float64
}

// NewRay constructs a ray with the given time.
func NewRay(origin, direction Vec3, time float64) Ray {
	return Ray{Origin: origin, Direction: direction, Time: time}
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}
