package scheduler

import (
	"testing"

	"github.com/dlrobertson/gopathtracer/pkg/camera"
	"github.com/dlrobertson/gopathtracer/pkg/core"
	"github.com/dlrobertson/gopathtracer/pkg/hittable"
	"github.com/dlrobertson/gopathtracer/pkg/material"
	"github.com/dlrobertson/gopathtracer/pkg/texture"
)

func testScene() core.Scene {
	lam := material.NewLambertian(texture.NewSolid(core.NewVec3(0.5, 0.5, 0.5)))
	ground := hittable.NewSphere(core.NewVec3(0, -100.5, -1), 100, lam)
	sphere := hittable.NewSphere(core.NewVec3(0, 0, -1), 0.5, lam)
	return core.Scene{
		Root:       hittable.NewComposite(ground, sphere),
		Background: core.NewVec3(0.5, 0.7, 1.0),
	}
}

func TestBuildTileGridCoversWholeImage(t *testing.T) {
	tiles := buildTileGrid(70, 50, 32)

	covered := make([][]bool, 50)
	for i := range covered {
		covered[i] = make([]bool, 70)
	}
	for _, tile := range tiles {
		for r := 0; r < tile.Height; r++ {
			for c := 0; c < tile.Width; c++ {
				if covered[tile.Row+r][tile.Col+c] {
					t.Fatalf("pixel (%d,%d) covered by more than one tile", tile.Row+r, tile.Col+c)
				}
				covered[tile.Row+r][tile.Col+c] = true
			}
		}
	}
	for r := range covered {
		for c := range covered[r] {
			if !covered[r][c] {
				t.Fatalf("pixel (%d,%d) not covered by any tile", r, c)
			}
		}
	}
}

func TestRenderProducesFullFramebuffer(t *testing.T) {
	cam := camera.NewCamera(40, 30)
	cam.Initialize()
	scene := testScene()

	fb := Render(cam, scene, Options{Workers: 2, SamplesPerPixel: 4, Depth: 4, Seed: 1})
	if fb.Width != 40 || fb.Height != 30 {
		t.Fatalf("framebuffer dims = %dx%d, want 40x30", fb.Width, fb.Height)
	}

	nonZero := false
	for _, p := range fb.Pixels {
		if p != 0 {
			nonZero = true
			break
		}
	}
	if !nonZero {
		t.Fatalf("expected at least one non-black pixel in a rendered frame")
	}
}
