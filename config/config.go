// Package config loads RenderConfig, the set of knobs that control a
// render but aren't part of scene content: image dimensions, sampling
// budget, worker count, and output paths. Values can come from a TOML
// file, from CLI flags, or both — flags parsed after a config file
// override whatever the file set.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// RenderConfig is the full set of render-invocation parameters.
type RenderConfig struct {
	ImageWidth      int     `toml:"image_width"`
	AspectRatio     float64 `toml:"aspect_ratio"`
	VFOVDegrees     float64 `toml:"vfov_degrees"`
	SamplesPerPixel int     `toml:"samples_per_pixel"`
	MaxDepth        int     `toml:"max_depth"`
	WorkerCount     int     `toml:"worker_count"`
	TileSize        int     `toml:"tile_size"`
	Seed            int64   `toml:"seed"`
	ScenePath       string  `toml:"scene_path"`
	OutputPath      string  `toml:"output_path"`
	HDROutputPath   string  `toml:"hdr_output_path"`
}

// Default returns the RenderConfig used when no file or flag overrides a
// field: a modest still-image render, with the worker count (0) left to
// runtime.NumCPU.
func Default() RenderConfig {
	return RenderConfig{
		ImageWidth:      400,
		AspectRatio:     16.0 / 9.0,
		VFOVDegrees:     20,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		WorkerCount:     0,
		TileSize:        32,
		Seed:            1,
		OutputPath:      "render.png",
	}
}

// Load decodes a RenderConfig from a TOML file at path, starting from
// Default() so an incomplete file only overrides the fields it sets.
func Load(path string) (RenderConfig, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return RenderConfig{}, fmt.Errorf("config: decoding %q: %w", path, err)
	}
	return cfg, nil
}
