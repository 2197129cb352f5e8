package hittable

import (
	"math"

	"github.com/dlrobertson/gopathtracer/pkg/core"
)

// NewSphereflakeUpright builds a sphereflake standing upright (its main
// branch axis along +Y, rotated around +X) at the given center, radius,
// material, and recursion depth.
func NewSphereflakeUpright(center core.Vec3, radius float64, mat core.Material, recursionLevel int) core.Hittable {
	initial := Sphere{Center: center, Radius: radius, Material: mat}
	return NewSphereflake(initial, core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0), recursionLevel)
}

// NewSphereflake recursively builds a sphereflake: a sphere surrounded by
// nine child sphereflakes, six spaced evenly around its equator (relative to
// normal) and three clustered near its pole, each a third of the parent's
// radius. normal orients the flake's pole; rotationAxis is the axis each
// child's own normal is derived by rotating around. At recursionLevel 0 this
// degenerates to a plain Sphere.
func NewSphereflake(initial Sphere, normal, rotationAxis core.Vec3, recursionLevel int) core.Hittable {
	if recursionLevel == 0 {
		s := initial
		return &s
	}

	childRadius := initial.Radius / 3.0
	children := NewComposite(&Sphere{Center: initial.Center, Radius: initial.Radius, Material: initial.Material})

	const equatorTheta = math.Pi / 3.0
	initialRotVec := normal.Unit().RotateRodrigues(-math.Pi/2.0, rotationAxis).Scale(initial.Radius + childRadius)

	for i := 0; i < 6; i++ {
		childTheta := float64(i) * equatorTheta
		childNormal := initialRotVec.RotateRodrigues(childTheta, normal)

		childSphere := Sphere{
			Center:   initial.Center.Add(childNormal),
			Radius:   childRadius,
			Material: initial.Material,
		}

		children.Add(NewSphereflake(
			childSphere,
			childNormal.Unit(),
			rotationAxis.RotateRodrigues(childTheta, normal),
			recursionLevel-1,
		))
	}

	poleRotationAxis := rotationAxis.RotateRodrigues(math.Pi/6.0, normal)
	poleRotVec := initialRotVec.
		RotateRodrigues(math.Pi/6.0, normal).
		RotateRodrigues(math.Pi/3.5, poleRotationAxis)

	const poleTheta = 2.0 * math.Pi / 3.0
	for i := 0; i < 3; i++ {
		childTheta := float64(i) * poleTheta
		childNormal := poleRotVec.RotateRodrigues(childTheta, normal)

		childSphere := Sphere{
			Center:   initial.Center.Add(childNormal),
			Radius:   childRadius,
			Material: initial.Material,
		}

		children.Add(NewSphereflake(
			childSphere,
			childNormal.Unit(),
			rotationAxis.RotateRodrigues(childTheta, normal),
			recursionLevel-1,
		))
	}

	return NewBVH(children.Objects)
}
