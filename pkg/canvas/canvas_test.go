package canvas

import (
	"testing"

	"github.com/dlrobertson/gopathtracer/pkg/core"
)

func TestWriteTileCopiesPixelsAtOffset(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	tile := NewTile(1, 2, 2, 2)
	for i := range tile.Accum {
		tile.Accum[i] = core.NewVec3(1, 1, 1) // pure white after tonemap
	}
	tile.Rasterize(1)

	if err := fb.WriteTile(tile, 1); err != nil {
		t.Fatalf("WriteTile: %v", err)
	}

	off := (1*fb.Width + 2) * 3
	if fb.Pixels[off] == 0 {
		t.Fatalf("expected written pixel to be non-zero after tonemap of (1,1,1)")
	}
	// A pixel outside the tile's footprint must remain untouched (black).
	outsideOff := (0*fb.Width + 0) * 3
	if fb.Pixels[outsideOff] != 0 {
		t.Fatalf("pixel outside tile footprint should remain black")
	}
}

func TestWriteTileRejectsOutOfBoundsTile(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	tile := NewTile(3, 3, 4, 4) // extends past the framebuffer edge
	if err := fb.WriteTile(tile, 1); err == nil {
		t.Fatalf("expected an error for a tile that doesn't fit")
	}
}

func TestImageProducesCorrectDimensions(t *testing.T) {
	fb := NewFramebuffer(10, 5)
	img := fb.Image()
	bounds := img.Bounds()
	if bounds.Dx() != 10 || bounds.Dy() != 5 {
		t.Fatalf("image dims = %dx%d, want 10x5", bounds.Dx(), bounds.Dy())
	}
}
