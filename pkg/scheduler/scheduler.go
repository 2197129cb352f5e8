// Package scheduler fans a render out across a tile grid and a pool of
// worker goroutines, then composites the finished tiles into a single
// framebuffer in deterministic order.
package scheduler

import (
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/dlrobertson/gopathtracer/pkg/camera"
	"github.com/dlrobertson/gopathtracer/pkg/canvas"
	"github.com/dlrobertson/gopathtracer/pkg/core"
)

// defaultTileSize is the edge length, in pixels, of each scheduled tile.
// Smaller tiles balance load better across workers at the cost of more
// scheduling overhead; this value is a reasonable middle ground for image
// sizes from a few hundred to a few thousand pixels per side.
const defaultTileSize = 32

// Options configures a render pass.
type Options struct {
	Workers       int // 0 queries runtime.NumCPU()
	SamplesPerPixel int
	Depth         int
	Seed          int64
	Logger        core.Logger // nil disables progress logging
}

// task pairs a tile with its index in the grid and its own random source.
// Results are reassembled by walking the tile grid in order, independent
// of completion order; the index itself is not read.
type task struct {
	tile  *canvas.Tile
	index int
	rng   *rand.Rand
}

// Render computes a full frame: it builds a tile grid over the image,
// fans the tiles out across Options.Workers goroutines (each sampling its
// own tile independently with its own *rand.Rand), and composites the
// finished tiles into the returned Framebuffer in tile order once every
// worker has finished.
func Render(cam *camera.Camera, scene core.Scene, opts Options) *canvas.Framebuffer {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	fb := canvas.NewFramebuffer(cam.ImageWidth, cam.ImageHeight)
	tiles := buildTileGrid(cam.ImageWidth, cam.ImageHeight, defaultTileSize)

	if opts.Logger != nil {
		opts.Logger.Printf("render: %dx%d image, %d tiles, %d workers, %d spp\n",
			cam.ImageWidth, cam.ImageHeight, len(tiles), workers, opts.SamplesPerPixel)
	}

	tasks := make(chan task, len(tiles))
	seedSource := rand.New(rand.NewSource(opts.Seed))
	for i, t := range tiles {
		tasks <- task{tile: t, index: i, rng: rand.New(rand.NewSource(seedSource.Int63()))}
	}
	close(tasks)

	var wg sync.WaitGroup
	var completed atomic.Int64
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for tk := range tasks {
				renderTile(cam, scene, opts, tk.tile, tk.rng)
				done := completed.Add(1)
				if opts.Logger != nil {
					opts.Logger.Printf("render: worker %d finished tile %d/%d\n", worker, done, len(tiles))
				}
			}
		}(w)
	}
	wg.Wait()

	for _, t := range tiles {
		if err := fb.WriteTile(t, opts.SamplesPerPixel); err != nil {
			// A tile that doesn't fit the framebuffer is a scheduling bug,
			// not a condition a caller can recover from.
			panic(err)
		}
	}

	return fb
}

// renderTile accumulates SamplesPerPixel camera rays into every pixel of
// tile, then tone-maps the result. A tile is owned exclusively by the
// goroutine rendering it; no synchronization is needed within this call.
func renderTile(cam *camera.Camera, scene core.Scene, opts Options, tile *canvas.Tile, rng *rand.Rand) {
	for localRow := 0; localRow < tile.Height; localRow++ {
		row := tile.Row + localRow
		for localCol := 0; localCol < tile.Width; localCol++ {
			col := tile.Col + localCol

			var sum core.Vec3
			for s := 0; s < opts.SamplesPerPixel; s++ {
				sum = sum.Add(cam.RenderRay(row, col, scene, opts.Depth, rng))
			}
			tile.Accum[localRow*tile.Width+localCol] = sum
		}
	}
	tile.Rasterize(opts.SamplesPerPixel)
}

// buildTileGrid partitions a width x height image into non-overlapping
// tileSize x tileSize tiles (the last row/column of tiles may be smaller),
// in row-major order.
func buildTileGrid(width, height, tileSize int) []*canvas.Tile {
	var tiles []*canvas.Tile
	for row := 0; row < height; row += tileSize {
		h := tileSize
		if row+h > height {
			h = height - row
		}
		for col := 0; col < width; col += tileSize {
			w := tileSize
			if col+w > width {
				w = width - col
			}
			tiles = append(tiles, canvas.NewTile(row, col, w, h))
		}
	}
	return tiles
}
