// Package loaders decodes on-disk assets — raster textures and, on export,
// linear HDR sidecars — into the types pkg/texture and pkg/canvas consume.
package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // register JPEG with image.Decode
	_ "image/png"  // register PNG with image.Decode
	"os"

	_ "golang.org/x/image/bmp"  // register BMP with image.Decode
	_ "golang.org/x/image/webp" // register WebP with image.Decode

	"github.com/dlrobertson/gopathtracer/pkg/core"
	"github.com/dlrobertson/gopathtracer/pkg/texture"
)

// LoadImageTexture decodes a PNG, JPEG, BMP, or WebP file (detected from its
// header, not its extension) and wraps it in a texture.Image. bilinear
// selects the Image's sampling mode.
func LoadImageTexture(path string, bilinear bool) (*texture.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: opening image %q: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("loaders: decoding image %q: %w", path, err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]core.Vec3, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return texture.NewImage(width, height, pixels, bilinear), nil
}
