package scene

import (
	"strings"
	"testing"

	"github.com/dlrobertson/gopathtracer/pkg/core"
)

const minimalScene = `
background: [0.5, 0.7, 1.0]
textures:
  ground_even:
    type: solid
    color: [0.2, 0.3, 0.1]
  ground_odd:
    type: solid
    color: [0.9, 0.9, 0.9]
  ground_checker:
    type: checker
    scale: 0.32
    even: ground_even
    odd: ground_odd
materials:
  ground:
    type: lambertian
    texture: ground_checker
  glass:
    type: dielectric
    ir: 1.5
  light:
    type: diffuse_light
    color: [4, 4, 4]
primitives:
  - type: sphere
    material: ground
    center: [0, -1000, 0]
    radius: 1000
  - type: sphere
    material: glass
    center: [0, 1, 0]
    radius: 1
  - type: translate
    offset: [0, 2, 0]
    child:
      type: quad
      material: light
      corner: [-1, 0, -1]
      u: [2, 0, 0]
      v: [0, 0, 2]
`

func TestLoadYAMLBuildsRenderableScene(t *testing.T) {
	s, cam, err := LoadYAML(strings.NewReader(minimalScene))
	if err != nil {
		t.Fatalf("LoadYAML returned error: %v", err)
	}
	if s.Root == nil {
		t.Fatal("expected a non-nil root hittable")
	}
	if cam.VFOV <= 0 {
		t.Fatalf("expected a default camera spec with a positive vfov, got %v", cam.VFOV)
	}

	r := core.Ray{Origin: core.NewVec3(0, 1, 5), Direction: core.NewVec3(0, 0, -1)}
	_, hit := s.Root.Hit(r, core.UniverseInterval())
	if !hit {
		t.Fatal("expected the straight-ahead ray to hit the glass sphere")
	}
}

func TestLoadYAMLUsesCameraBlockWhenPresent(t *testing.T) {
	doc := `
camera:
  look_from: [0, 0, 10]
  look_at: [0, 0, 0]
  vfov_degrees: 40
primitives:
  - type: sphere
    material: m
    center: [0, 0, 0]
    radius: 1
materials:
  m:
    type: lambertian
    color: [1, 0, 0]
`
	_, cam, err := LoadYAML(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("LoadYAML returned error: %v", err)
	}
	if cam.VFOV != 40 {
		t.Fatalf("VFOV = %v, want 40", cam.VFOV)
	}
	if cam.LookFrom != core.NewVec3(0, 0, 10) {
		t.Fatalf("LookFrom = %v, want (0,0,10)", cam.LookFrom)
	}
}

func TestLoadYAMLRejectsUnknownMaterialReference(t *testing.T) {
	doc := `
primitives:
  - type: sphere
    material: nonexistent
    center: [0, 0, 0]
    radius: 1
`
	if _, _, err := LoadYAML(strings.NewReader(doc)); err == nil {
		t.Fatal("expected an error for a primitive referencing an unknown material")
	}
}

func TestLoadYAMLRejectsUnknownTextureType(t *testing.T) {
	doc := `
textures:
  bogus:
    type: fractal
materials:
  m:
    type: lambertian
    texture: bogus
primitives: []
`
	if _, _, err := LoadYAML(strings.NewReader(doc)); err == nil {
		t.Fatal("expected an error for an unsupported texture type")
	}
}

func TestLoadYAMLRejectsMalformedDocument(t *testing.T) {
	if _, _, err := LoadYAML(strings.NewReader("not: [valid, yaml")); err == nil {
		t.Fatal("expected an error for malformed yaml")
	}
}
