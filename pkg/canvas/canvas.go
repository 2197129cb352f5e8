// Package canvas holds the rendered framebuffer, the tile abstraction
// workers render into, and the tone-mapping step that turns accumulated
// linear radiance into sRGB8 pixels.
package canvas

import (
	"fmt"
	"image"
	"image/color"

	"github.com/dlrobertson/gopathtracer/pkg/core"
)

// Framebuffer is the final rendered image: one RGB triple per pixel, row
// major, origin at the top-left. Linear holds the same pixels before
// tone-mapping (sample-averaged, not gamma-corrected), kept around for
// HDR export where values above 1.0 are meaningful rather than clipped.
type Framebuffer struct {
	Width, Height int
	Pixels        []byte      // len == Width*Height*3
	Linear        []core.Vec3 // len == Width*Height
}

// NewFramebuffer allocates a black framebuffer of the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]byte, width*height*3),
		Linear: make([]core.Vec3, width*height),
	}
}

// WriteTile copies a rendered Tile's pixels into the framebuffer at the
// tile's own (Row, Col) offset. It is the caller's responsibility to ensure
// no two tiles overlap; WriteTile validates only that the tile fits within
// the framebuffer's bounds. samples is the sample count the tile was
// rasterized with, used to average Accum into Linear.
func (fb *Framebuffer) WriteTile(t *Tile, samples int) error {
	if t.Col < 0 || t.Row < 0 || t.Col+t.Width > fb.Width || t.Row+t.Height > fb.Height {
		return fmt.Errorf("canvas: tile at (row=%d,col=%d) size %dx%d does not fit in %dx%d framebuffer",
			t.Row, t.Col, t.Width, t.Height, fb.Width, fb.Height)
	}

	inv := 1.0 / float64(samples)
	for y := 0; y < t.Height; y++ {
		srcOff := y * t.Width * 3
		dstOff := ((t.Row+y)*fb.Width + t.Col) * 3
		copy(fb.Pixels[dstOff:dstOff+t.Width*3], t.Pixels[srcOff:srcOff+t.Width*3])

		for x := 0; x < t.Width; x++ {
			fb.Linear[(t.Row+y)*fb.Width+t.Col+x] = t.Accum[y*t.Width+x].Scale(inv)
		}
	}
	return nil
}

// Image renders the framebuffer as a standard library image.Image, ready
// for PNG/JPEG encoding.
func (fb *Framebuffer) Image() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			off := (y*fb.Width + x) * 3
			img.Set(x, y, color.RGBA{
				R: fb.Pixels[off],
				G: fb.Pixels[off+1],
				B: fb.Pixels[off+2],
				A: 255,
			})
		}
	}
	return img
}
