package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/dlrobertson/gopathtracer/config"
	"github.com/dlrobertson/gopathtracer/pkg/camera"
	"github.com/dlrobertson/gopathtracer/pkg/canvas"
	"github.com/dlrobertson/gopathtracer/pkg/core"
	"github.com/dlrobertson/gopathtracer/pkg/loaders"
	"github.com/dlrobertson/gopathtracer/pkg/scene"
	"github.com/dlrobertson/gopathtracer/pkg/scheduler"
)

func main() {
	cfg, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "gopathtracer: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "gopathtracer: %v\n", err)
		os.Exit(1)
	}
}

// parseArgs merges an optional TOML config file with CLI flags; flags
// explicitly set on the command line override whatever the file set.
func parseArgs(args []string) (config.RenderConfig, error) {
	fs := flag.NewFlagSet("gopathtracer", flag.ContinueOnError)

	configPath := fs.String("config", "", "path to a TOML render config, merged with flags below")
	scenePath := fs.String("scene", "", "path to a YAML scene file (default: built-in demo scene)")
	width := fs.Int("width", 0, "image width in pixels")
	aspect := fs.Float64("aspect", 0, "aspect ratio (width / height)")
	vfov := fs.Float64("vfov", 0, "vertical field of view, in degrees")
	samples := fs.Int("samples", 0, "samples per pixel")
	depth := fs.Int("depth", 0, "maximum bounce depth")
	workers := fs.Int("workers", -1, "worker goroutines (0 = auto-detect CPU count)")
	seed := fs.Int64("seed", 0, "RNG seed, for reproducible renders")
	output := fs.String("out", "", "output PNG path")
	hdrOut := fs.String("hdr-out", "", "optional linear HDR sidecar path")

	if err := fs.Parse(args); err != nil {
		return config.RenderConfig{}, core.NewConfigurationError("parsing flags: %v", err)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return config.RenderConfig{}, core.NewConfigurationError("loading config: %v", err)
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.ImageWidth = *width
		case "aspect":
			cfg.AspectRatio = *aspect
		case "vfov":
			cfg.VFOVDegrees = *vfov
		case "samples":
			cfg.SamplesPerPixel = *samples
		case "depth":
			cfg.MaxDepth = *depth
		case "workers":
			cfg.WorkerCount = *workers
		case "seed":
			cfg.Seed = *seed
		case "scene":
			cfg.ScenePath = *scenePath
		case "out":
			cfg.OutputPath = *output
		case "hdr-out":
			cfg.HDROutputPath = *hdrOut
		}
	})

	if cfg.ImageWidth <= 0 {
		return config.RenderConfig{}, core.NewConfigurationError("image width must be positive, got %d", cfg.ImageWidth)
	}
	if cfg.AspectRatio <= 0 {
		return config.RenderConfig{}, core.NewConfigurationError("aspect ratio must be positive, got %v", cfg.AspectRatio)
	}
	if cfg.SamplesPerPixel <= 0 {
		return config.RenderConfig{}, core.NewConfigurationError("samples per pixel must be positive, got %d", cfg.SamplesPerPixel)
	}
	if cfg.MaxDepth <= 0 {
		return config.RenderConfig{}, core.NewConfigurationError("max depth must be positive, got %d", cfg.MaxDepth)
	}

	return cfg, nil
}

func run(cfg config.RenderConfig) error {
	logger := core.NewDefaultLogger()

	imageHeight := int(float64(cfg.ImageWidth) / cfg.AspectRatio)
	if imageHeight < 1 {
		imageHeight = 1
	}

	builtScene, lookFrom, lookAt, vfov, err := loadScene(cfg)
	if err != nil {
		return err
	}
	if cfg.VFOVDegrees > 0 {
		vfov = cfg.VFOVDegrees
	}

	cam := camera.NewCamera(cfg.ImageWidth, imageHeight)
	cam.VFOV = vfov
	cam.LookFrom = lookFrom
	cam.LookAt = lookAt
	cam.Initialize()

	logger.Printf("gopathtracer: rendering %dx%d, %d spp, depth %d\n",
		cfg.ImageWidth, imageHeight, cfg.SamplesPerPixel, cfg.MaxDepth)
	start := time.Now()

	fb := scheduler.Render(cam, builtScene, scheduler.Options{
		Workers:         cfg.WorkerCount,
		SamplesPerPixel: cfg.SamplesPerPixel,
		Depth:           cfg.MaxDepth,
		Seed:            cfg.Seed,
		Logger:          logger,
	})

	logger.Printf("gopathtracer: render finished in %v\n", time.Since(start))

	outputPath := cfg.OutputPath
	if outputPath == "" {
		outputPath = "output.png"
	}
	if err := writePNG(outputPath, fb); err != nil {
		return fmt.Errorf("writing PNG: %w", err)
	}

	if cfg.HDROutputPath != "" {
		if err := loaders.WriteHDR(cfg.HDROutputPath, fb.Width, fb.Height, fb.Linear); err != nil {
			return fmt.Errorf("writing HDR sidecar: %w", err)
		}
	}

	return nil
}

func loadScene(cfg config.RenderConfig) (core.Scene, core.Vec3, core.Vec3, float64, error) {
	if cfg.ScenePath != "" {
		file, err := os.Open(cfg.ScenePath)
		if err != nil {
			return core.Scene{}, core.Vec3{}, core.Vec3{}, 0, core.NewConfigurationError("opening scene file: %v", err)
		}
		defer file.Close()

		s, cam, err := scene.LoadYAML(file)
		if err != nil {
			return core.Scene{}, core.Vec3{}, core.Vec3{}, 0, core.NewConfigurationError("loading scene: %v", err)
		}
		return s, cam.LookFrom, cam.LookAt, cam.VFOV, nil
	}

	s, lookFrom, lookAt, vfov := scene.CornellBox()
	return s, lookFrom, lookAt, vfov, nil
}

func writePNG(path string, fb *canvas.Framebuffer) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return png.Encode(file, fb.Image())
}
