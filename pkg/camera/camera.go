// Package camera turns pixel coordinates into sampled rays and owns the
// recursive radiance integrator that turns those rays into color.
package camera

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/dlrobertson/gopathtracer/pkg/core"
)

// Camera holds the optics and positioning parameters that initialize
// derives the ray-generation basis from. Exported fields are free to set
// before calling Initialize; Initialize must be called again after any of
// them change.
type Camera struct {
	VFOV          float64   // vertical field of view, degrees
	AspectRatio   float64   // image width / image height
	ImageWidth    int
	ImageHeight   int
	LookFrom      core.Vec3
	LookAt        core.Vec3
	VUp           core.Vec3
	DefocusAngle  float64 // degrees; <= 0 disables the defocus disk
	FocusDist     float64

	center               core.Vec3
	pixel00Loc           core.Vec3
	pixelDeltaHorizontal core.Vec3
	pixelDeltaVertical   core.Vec3
	basisRight           core.Vec3
	basisUp              core.Vec3
	basisView            core.Vec3
	defocusDiskHorizontal core.Vec3
	defocusDiskVertical   core.Vec3
	initialized          bool
}

// NewCamera builds a Camera with the RTNW-standard defaults (60 degree
// vfov, looking down -Z, focus distance 10, defocus disabled). Callers
// override fields and then call Initialize.
func NewCamera(imageWidth, imageHeight int) *Camera {
	return &Camera{
		VFOV:        60,
		AspectRatio: float64(imageWidth) / float64(imageHeight),
		ImageWidth:  imageWidth,
		ImageHeight: imageHeight,
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		VUp:         core.NewVec3(0, 1, 0),
		FocusDist:   10,
	}
}

// Initialize computes the camera's ray-generation basis from its current
// field values. It must be called at least once before GenerateRay, and
// again after any field mutation.
func (c *Camera) Initialize() {
	c.center = c.LookFrom

	theta := c.VFOV * math.Pi / 180
	h := math.Tan(theta / 2)

	viewportHeight := 2 * h * c.FocusDist
	viewportWidth := viewportHeight * (float64(c.ImageWidth) / float64(c.ImageHeight))

	c.basisView = c.LookFrom.Sub(c.LookAt).Unit()
	c.basisRight = c.VUp.Cross(c.basisView).Unit()
	c.basisUp = c.basisView.Cross(c.basisRight)

	viewportHorizontal := c.basisRight.Scale(viewportWidth)
	viewportVertical := c.basisUp.Negate().Scale(viewportHeight)

	c.pixelDeltaHorizontal = viewportHorizontal.Scale(1.0 / float64(c.ImageWidth))
	c.pixelDeltaVertical = viewportVertical.Scale(1.0 / float64(c.ImageHeight))

	defocusRadius := c.FocusDist * math.Tan((c.DefocusAngle/2)*math.Pi/180)
	c.defocusDiskHorizontal = c.basisRight.Scale(defocusRadius)
	c.defocusDiskVertical = c.basisUp.Scale(defocusRadius)

	viewportUpperLeft := c.center.
		Sub(c.basisView.Scale(c.FocusDist)).
		Sub(viewportHorizontal.Scale(0.5)).
		Sub(viewportVertical.Scale(0.5))

	c.pixel00Loc = viewportUpperLeft.Add(
		c.pixelDeltaHorizontal.Add(c.pixelDeltaVertical).Scale(0.5),
	)
	c.initialized = true
}

// GenerateRay samples a ray for the pixel at (row, col), jittered within
// the pixel square and, if DefocusAngle > 0, originating from a random
// point on the defocus disk. Calling GenerateRay before Initialize is a
// programmer error and panics.
func (c *Camera) GenerateRay(row, col int, rng *rand.Rand) core.Ray {
	if !c.initialized {
		panic(fmt.Sprintf("camera: GenerateRay called before Initialize (row=%d col=%d)", row, col))
	}

	pixelCenter := c.pixel00Loc.
		Add(c.pixelDeltaVertical.Scale(float64(row))).
		Add(c.pixelDeltaHorizontal.Scale(float64(col)))
	pixelSample := pixelCenter.Add(c.samplePixelSquare(rng))

	origin := c.center
	if c.DefocusAngle > 0 {
		origin = c.sampleDefocusDisk(rng)
	}
	direction := pixelSample.Sub(origin)

	return core.NewRay(origin, direction, core.RandomFloat(rng))
}

func (c *Camera) samplePixelSquare(rng *rand.Rand) core.Vec3 {
	px := -0.5 + core.RandomFloat(rng)
	py := -0.5 + core.RandomFloat(rng)
	return c.pixelDeltaHorizontal.Scale(px).Add(c.pixelDeltaVertical.Scale(py))
}

func (c *Camera) sampleDefocusDisk(rng *rand.Rand) core.Vec3 {
	p := core.RandomInUnitDisk(rng)
	return c.center.
		Add(c.defocusDiskHorizontal.Scale(p.X)).
		Add(c.defocusDiskVertical.Scale(p.Y))
}
