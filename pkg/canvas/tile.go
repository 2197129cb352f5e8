package canvas

import (
	"math"

	"github.com/dlrobertson/gopathtracer/pkg/core"
)

// Tile is a non-overlapping rectangular region of the final image, owned by
// a single worker for the duration of a render. Accum holds the running
// linear-radiance sum for each pixel (row major, relative to the tile's own
// origin); Pixels holds the tone-mapped sRGB8 bytes written by Rasterize.
type Tile struct {
	Row, Col      int // absolute offset into the framebuffer
	Width, Height int
	Accum         []core.Vec3
	Pixels        []byte
}

// NewTile allocates an empty tile at the given framebuffer offset.
func NewTile(row, col, width, height int) *Tile {
	return &Tile{
		Row:    row,
		Col:    col,
		Width:  width,
		Height: height,
		Accum:  make([]core.Vec3, width*height),
		Pixels: make([]byte, width*height*3),
	}
}

// AddSample accumulates a single sample's radiance into pixel (localRow,
// localCol), which is relative to the tile's own origin.
func (t *Tile) AddSample(localRow, localCol int, c core.Vec3) {
	i := localRow*t.Width + localCol
	t.Accum[i] = t.Accum[i].Add(c)
}

// Rasterize tone-maps every accumulated pixel (dividing by samples, gamma-2,
// clamping, and scaling to byte range) into Pixels.
func (t *Tile) Rasterize(samples int) {
	for i, c := range t.Accum {
		r, g, b := rasterizeChannel(c, samples)
		t.Pixels[i*3], t.Pixels[i*3+1], t.Pixels[i*3+2] = r, g, b
	}
}

// rasterizeChannel implements rasterize(accumulator, samples) -> sRGB8:
// normalize by sample count, apply gamma-2 (square root), clamp to
// [0,0.999], and scale by 256 with a floor cast.
func rasterizeChannel(accum core.Vec3, samples int) (r, g, b byte) {
	inv := 1.0 / float64(samples)
	return toByte(accum.X * inv), toByte(accum.Y * inv), toByte(accum.Z * inv)
}

func toByte(v float64) byte {
	gammaCorrected := sqrtNonNegative(v)
	const intensityMax = 0.999
	if gammaCorrected < 0 {
		gammaCorrected = 0
	}
	if gammaCorrected > intensityMax {
		gammaCorrected = intensityMax
	}
	return byte(256 * gammaCorrected)
}

func sqrtNonNegative(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Sqrt(v)
}
