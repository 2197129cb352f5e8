package canvas

import (
	"math"
	"testing"

	"github.com/dlrobertson/gopathtracer/pkg/core"
)

func TestRasterizeDividesByScaleAndAppliesGamma(t *testing.T) {
	tile := NewTile(0, 0, 1, 1)
	tile.AddSample(0, 0, core.NewVec3(4, 4, 4))
	tile.AddSample(0, 0, core.NewVec3(4, 4, 4)) // accum = (8,8,8), 2 samples -> avg 4 (out of range, clamps)
	tile.Rasterize(2)

	if tile.Pixels[0] != 255 {
		t.Fatalf("an over-bright pixel should clamp to the max byte value, got %d", tile.Pixels[0])
	}
}

func TestRasterizeHalfIntensityMatchesGammaTwoFormula(t *testing.T) {
	tile := NewTile(0, 0, 1, 1)
	tile.AddSample(0, 0, core.NewVec3(0.5, 0.5, 0.5))
	tile.Rasterize(1)

	want := byte(math.Min(0.999, math.Sqrt(0.5)) * 256)
	if tile.Pixels[0] != want {
		t.Fatalf("pixel = %d, want %d (gamma-2 of 0.5)", tile.Pixels[0], want)
	}
}

func TestRasterizeNegativeAccumulationClampsToZero(t *testing.T) {
	tile := NewTile(0, 0, 1, 1)
	tile.AddSample(0, 0, core.NewVec3(-1, -1, -1))
	tile.Rasterize(1)

	if tile.Pixels[0] != 0 {
		t.Fatalf("negative accumulation should clamp to 0, got %d", tile.Pixels[0])
	}
}

func TestAddSampleAccumulatesAcrossCalls(t *testing.T) {
	tile := NewTile(0, 0, 2, 2)
	tile.AddSample(1, 1, core.NewVec3(0.1, 0.2, 0.3))
	tile.AddSample(1, 1, core.NewVec3(0.1, 0.2, 0.3))

	i := 1*tile.Width + 1
	got := tile.Accum[i]
	want := core.NewVec3(0.2, 0.4, 0.6)
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 || math.Abs(got.Z-want.Z) > 1e-9 {
		t.Fatalf("accum = %+v, want %+v", got, want)
	}
}
