package loaders

import (
	"fmt"
	"image"
	"os"

	"github.com/mdouchement/hdr"
	"github.com/mdouchement/hdr/codec/rgbe"
	"github.com/mdouchement/hdr/hdrcolor"

	"github.com/dlrobertson/gopathtracer/pkg/core"
)

// WriteHDR writes the pre-tone-mapped accumulator (average radiance per
// pixel, samples already divided out, no gamma applied) to path as a
// Radiance RGBE (.hdr) file. Unlike the sRGB PNG output this preserves
// values above 1.0, which emissive surfaces can legitimately produce.
func WriteHDR(path string, width, height int, accum []core.Vec3) error {
	if len(accum) != width*height {
		return fmt.Errorf("loaders: WriteHDR: accum has %d pixels, want %d", len(accum), width*height)
	}

	img := hdr.NewRGB(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := accum[y*width+x]
			img.Set(x, y, hdrcolor.RGB{R: c.X, G: c.Y, B: c.Z})
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("loaders: creating HDR file %q: %w", path, err)
	}
	defer file.Close()

	if err := rgbe.Encode(file, img); err != nil {
		return fmt.Errorf("loaders: encoding HDR file %q: %w", path, err)
	}
	return nil
}
