package texture

import "github.com/dlrobertson/gopathtracer/pkg/core"

// Image is a texture backed by a 2-D grid of colors decoded from a raster
// image file. Pixels are stored row-major, Pixels[y*Width+x], as the 0..1
// channel values the loader decoded; no sRGB-to-linear conversion is applied.
type Image struct {
	Width, Height int
	Pixels        []core.Vec3
	Bilinear      bool
}

// NewImage constructs an Image texture from already-decoded pixels.
func NewImage(width, height int, pixels []core.Vec3, bilinear bool) *Image {
	return &Image{Width: width, Height: height, Pixels: pixels, Bilinear: bilinear}
}

// Value implements core.Texture. UVs are flipped and clamped to [0,1] per
// §4.3: (u, 1-v) mapped to pixel indices, since image row 0 is the top of
// the picture but v=0 is conventionally the bottom of a texture.
func (t *Image) Value(u, v float64, p core.Vec3) core.Vec3 {
	if t.Width <= 0 || t.Height <= 0 {
		return core.NewVec3(0, 1, 1) // loud cyan: unmistakably "no texture data"
	}

	u = clamp01(u)
	v = 1.0 - clamp01(v)

	if t.Bilinear {
		return t.bilinear(u, v)
	}
	return t.nearest(u, v)
}

func (t *Image) nearest(u, v float64) core.Vec3 {
	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))
	x = clampInt(x, 0, t.Width-1)
	y = clampInt(y, 0, t.Height-1)
	return t.at(x, y)
}

func (t *Image) bilinear(u, v float64) core.Vec3 {
	fx := u*float64(t.Width) - 0.5
	fy := v*float64(t.Height) - 0.5

	x0 := clampInt(int(floorF(fx)), 0, t.Width-1)
	y0 := clampInt(int(floorF(fy)), 0, t.Height-1)
	x1 := clampInt(x0+1, 0, t.Width-1)
	y1 := clampInt(y0+1, 0, t.Height-1)

	tx := fx - floorF(fx)
	ty := fy - floorF(fy)
	if tx < 0 {
		tx = 0
	}
	if ty < 0 {
		ty = 0
	}

	c00 := t.at(x0, y0)
	c10 := t.at(x1, y0)
	c01 := t.at(x0, y1)
	c11 := t.at(x1, y1)

	top := c00.Scale(1 - tx).Add(c10.Scale(tx))
	bottom := c01.Scale(1 - tx).Add(c11.Scale(tx))
	return top.Scale(1 - ty).Add(bottom.Scale(ty))
}

func (t *Image) at(x, y int) core.Vec3 {
	return t.Pixels[y*t.Width+x]
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

func clampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func floorF(x float64) float64 {
	i := int64(x)
	if x < 0 && float64(i) != x {
		i--
	}
	return float64(i)
}
