package scene

import (
	"math"

	"github.com/dlrobertson/gopathtracer/pkg/core"
	"github.com/dlrobertson/gopathtracer/pkg/hittable"
)

// The newXFromConfig helpers translate a parsed primitiveConfig into the
// corresponding hittable.NewX call. They're kept separate from the YAML
// parsing itself so buildPrimitive reads as a plain dispatch table.

func newSphereFromConfig(p primitiveConfig, mat core.Material) core.Hittable {
	return hittable.NewSphere(vecFrom(p.Center), p.Radius, mat)
}

func newQuadFromConfig(p primitiveConfig, mat core.Material) core.Hittable {
	return hittable.NewQuad(vecFrom(p.Corner), vecFrom(p.U), vecFrom(p.V), mat)
}

func newBoxFromConfig(p primitiveConfig, mat core.Material) core.Hittable {
	return hittable.NewBox(vecFrom(p.A), vecFrom(p.C), mat)
}

func newSphereflakeFromConfig(p primitiveConfig, mat core.Material) core.Hittable {
	return hittable.NewSphereflakeUpright(vecFrom(p.Center), p.Radius, mat, p.Level)
}

func newTranslateFromConfig(p primitiveConfig, child core.Hittable) core.Hittable {
	return hittable.NewTranslate(child, vecFrom(p.Offset))
}

func newRotateYFromConfig(p primitiveConfig, child core.Hittable) core.Hittable {
	return hittable.NewRotateY(child, p.Angle*math.Pi/180)
}

func newConstantMediumFromConfig(p primitiveConfig, child core.Hittable) core.Hittable {
	return hittable.NewConstantMediumColor(child, p.Density, vecFrom(p.Color))
}
