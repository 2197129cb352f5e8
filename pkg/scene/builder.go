// Package scene assembles hittables, materials, and textures into a single
// root core.Scene ready for rendering, either programmatically via Builder
// or declaratively from a YAML scene description.
package scene

import (
	"github.com/dlrobertson/gopathtracer/pkg/core"
	"github.com/dlrobertson/gopathtracer/pkg/hittable"
)

// Builder accumulates hittables and produces a BVH-wrapped core.Scene.
type Builder struct {
	objects    []core.Hittable
	background core.Vec3
}

// NewBuilder creates an empty Builder with the given background color
// (returned by the integrator for rays that escape the scene).
func NewBuilder(background core.Vec3) *Builder {
	return &Builder{background: background}
}

// Add appends one or more hittables to the scene under construction.
func (b *Builder) Add(objects ...core.Hittable) *Builder {
	b.objects = append(b.objects, objects...)
	return b
}

// Build wraps the accumulated objects in a BVH and returns the finished
// scene. Calling Build does not consume the builder; further Add calls and
// another Build are valid, though typical use calls Build once.
func (b *Builder) Build() core.Scene {
	return core.Scene{
		Root:       hittable.NewBVH(b.objects),
		Background: b.background,
	}
}

// AddSphere builds and adds a Sphere.
func (b *Builder) AddSphere(center core.Vec3, radius float64, mat core.Material) *Builder {
	return b.Add(hittable.NewSphere(center, radius, mat))
}

// AddQuad builds and adds a Quad.
func (b *Builder) AddQuad(corner, u, v core.Vec3, mat core.Material) *Builder {
	return b.Add(hittable.NewQuad(corner, u, v, mat))
}

// AddBox builds and adds an axis-aligned Box from two opposite corners.
func (b *Builder) AddBox(a, c core.Vec3, mat core.Material) *Builder {
	return b.Add(hittable.NewBox(a, c, mat))
}

// AddTranslated wraps object in a Translate and adds it.
func (b *Builder) AddTranslated(object core.Hittable, offset core.Vec3) *Builder {
	return b.Add(hittable.NewTranslate(object, offset))
}

// AddRotatedY wraps object in a RotateY and adds it.
func (b *Builder) AddRotatedY(object core.Hittable, angleRadians float64) *Builder {
	return b.Add(hittable.NewRotateY(object, angleRadians))
}

// AddConstantMedium wraps boundary in a ConstantMedium and adds it.
func (b *Builder) AddConstantMedium(boundary core.Hittable, density float64, color core.Vec3) *Builder {
	return b.Add(hittable.NewConstantMediumColor(boundary, density, color))
}

// AddSphereflake builds and adds a sphereflake rooted at center.
func (b *Builder) AddSphereflake(center core.Vec3, radius float64, mat core.Material, recursionLevel int) *Builder {
	return b.Add(hittable.NewSphereflakeUpright(center, radius, mat, recursionLevel))
}
