package scene

import (
	"math"

	"github.com/dlrobertson/gopathtracer/pkg/core"
	"github.com/dlrobertson/gopathtracer/pkg/hittable"
	"github.com/dlrobertson/gopathtracer/pkg/material"
	"github.com/dlrobertson/gopathtracer/pkg/texture"
)

// CornellBox builds the classic light-box test scene: five walls, a light
// panel set into the ceiling, and two rotated boxes, grounded on
// tracer/src/scenes.rs's cornell_box. It returns a suggested look-from
// position, the aim point a camera should be pointed at, and a vertical
// field of view (degrees) alongside the scene so callers can set up a
// Camera without re-deriving the geometry.
func CornellBox() (s core.Scene, lookFrom, lookAt core.Vec3, vfov float64) {
	red := material.NewLambertian(texture.NewSolid(core.NewVec3(0.65, 0.05, 0.05)))
	green := material.NewLambertian(texture.NewSolid(core.NewVec3(0.12, 0.45, 0.15)))
	white := material.NewLambertian(texture.NewSolid(core.NewVec3(0.73, 0.73, 0.73)))
	light := material.NewDiffuseLightColor(core.NewVec3(15, 15, 15))

	const width = 100.0
	const height = width
	const length = width
	const lightWidth = width * 0.2
	const lightLength = lightWidth

	bottomLeft := core.NewVec3(-(width / 2), -(height / 2), 0)

	b := NewBuilder(core.Vec3{})
	b.AddQuad(bottomLeft, core.NewVec3(width, 0, 0), core.NewVec3(0, height, 0), white) // front
	b.AddQuad(bottomLeft, core.NewVec3(width, 0, 0), core.NewVec3(0, 0, length), white)  // floor
	b.AddQuad(bottomLeft.Add(core.NewVec3(0, height, 0)), core.NewVec3(width, 0, 0), core.NewVec3(0, 0, length), white) // ceiling
	b.AddQuad(
		bottomLeft.Add(core.NewVec3((width-lightWidth)/2, height-1, (length-lightLength)/2)),
		core.NewVec3(lightWidth, 0, 0),
		core.NewVec3(0, 0, lightLength),
		light,
	)
	b.AddQuad(bottomLeft, core.NewVec3(0, 0, length), core.NewVec3(0, height, 0), green) // left
	b.AddQuad(bottomLeft.Add(core.NewVec3(width, 0, 0)), core.NewVec3(0, 0, length), core.NewVec3(0, height, 0), red) // right

	tallBoxCorner := bottomLeft.Add(core.NewVec3(width/6, 0, length/4))
	tallBox := hittable.NewBox(core.Vec3{}, core.NewVec3(width/3.5, height/1.8, width/3.5), white)
	b.AddTranslated(hittable.NewRotateY(tallBox, degreesToRadians(15)), tallBoxCorner)

	cubeBoxSide := width / 3.5
	cubeBoxCorner := bottomLeft.Add(core.NewVec3(width/1.7, 0, length/2))
	cubeBox := hittable.NewBox(core.Vec3{}, core.NewVec3(cubeBoxSide, cubeBoxSide, cubeBoxSide), white)
	b.AddTranslated(hittable.NewRotateY(cubeBox, degreesToRadians(-18)), cubeBoxCorner)

	return b.Build(), core.NewVec3(0, 0, length*2.70), core.Vec3{}, 35
}

// SphereGrid builds a gridSize x gridSize grid of small spheres (mostly
// diffuse, some metal and glass) over
// a large ground sphere, stressing BVH construction and traversal with many
// small disjoint leaves. Grounded on tracer/src/scenes.rs's
// one_weekend_endgame grid-of-spheres layout.
func SphereGrid(gridSize int, rng RandFn) core.Scene {
	ground := material.NewLambertian(texture.NewCheckerColors(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9)))

	b := NewBuilder(core.NewVec3(0.7, 0.8, 1.0))
	b.AddSphere(core.NewVec3(0, -1000, 0), 1000, ground)

	half := float64(gridSize) / 2
	for a := 0; a < gridSize; a++ {
		for bIdx := 0; bIdx < gridSize; bIdx++ {
			center := core.NewVec3(float64(a)-half+rng(), 0.2, float64(bIdx)-half+rng())
			if center.Sub(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}
			choice := rng()
			var mat core.Material
			switch {
			case choice < 0.8:
				albedo := core.NewVec3(rng()*rng(), rng()*rng(), rng()*rng())
				mat = material.NewLambertian(texture.NewSolid(albedo))
			case choice < 0.95:
				albedo := core.NewVec3(0.5+0.5*rng(), 0.5+0.5*rng(), 0.5+0.5*rng())
				mat = material.NewMetal(albedo, 0.5*rng())
			default:
				mat = material.NewDielectric(1.5)
			}
			b.AddSphere(center, 0.2, mat)
		}
	}

	glassMat := material.NewDielectric(1.5)
	diffuseMat := material.NewLambertian(texture.NewSolid(core.NewVec3(0.4, 0.2, 0.1)))
	metalMat := material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)

	b.AddSphere(core.NewVec3(0, 1, 0), 1.0, glassMat)
	b.AddSphere(core.NewVec3(-4, 1, 0), 1.0, diffuseMat)
	b.AddSphere(core.NewVec3(4, 1, 0), 1.0, metalMat)

	return b.Build()
}

// RandFn supplies uniform [0,1) randomness to a demo-scene builder without
// tying the scene package to a particular rand.Rand instance.
type RandFn func() float64

// SphereflakeDemo builds a single recursive sphereflake sitting on a ground
// plane, grounded on tracer/src/scenes.rs's sphereflake_on_sandy_plane.
func SphereflakeDemo(recursionLevel int) core.Scene {
	sand := material.NewLambertian(texture.NewSolid(core.NewVec3(0.73, 0.62, 0.42)))
	metal := material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 0.05)

	b := NewBuilder(core.NewVec3(0.5, 0.7, 1.0))
	b.AddSphere(core.NewVec3(0, -1000, 0), 1000, sand)
	b.AddSphereflake(core.NewVec3(0, 1, 0), 1.0, metal, recursionLevel)

	return b.Build()
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
