package loaders

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dlrobertson/gopathtracer/pkg/core"
)

func TestWriteHDRProducesNonEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.hdr")
	accum := []core.Vec3{
		core.NewVec3(0.1, 0.2, 0.3),
		core.NewVec3(4.0, 4.0, 4.0), // above 1.0, legitimate for emissive pixels
		core.NewVec3(0, 0, 0),
		core.NewVec3(1, 1, 1),
	}

	if err := WriteHDR(path, 2, 2, accum); err != nil {
		t.Fatalf("WriteHDR returned error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat output file: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("expected a non-empty HDR file")
	}
}

func TestWriteHDRRejectsMismatchedDimensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.hdr")
	accum := []core.Vec3{core.NewVec3(1, 1, 1)}
	if err := WriteHDR(path, 2, 2, accum); err == nil {
		t.Fatal("expected an error when accum length doesn't match width*height")
	}
}
