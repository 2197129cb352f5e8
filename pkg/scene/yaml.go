package scene

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/dlrobertson/gopathtracer/pkg/core"
	"github.com/dlrobertson/gopathtracer/pkg/material"
	"github.com/dlrobertson/gopathtracer/pkg/texture"
)

// sceneDescription is the on-disk YAML shape: materials and textures are
// declared by name, then primitives reference those names. Unmarshal
// populates this struct directly; LoadYAML replays it against a Builder.
type sceneDescription struct {
	Camera     cameraConfig              `yaml:"camera"`
	Background [3]float64                `yaml:"background"`
	Textures   map[string]textureConfig  `yaml:"textures"`
	Materials  map[string]materialConfig `yaml:"materials"`
	Primitives []primitiveConfig         `yaml:"primitives"`
}

// cameraConfig is the optional on-disk camera block. A document that omits
// it (or leaves vfov_degrees at zero) gets defaultCameraSpec instead.
type cameraConfig struct {
	LookFrom [3]float64 `yaml:"look_from"`
	LookAt   [3]float64 `yaml:"look_at"`
	VFOV     float64    `yaml:"vfov_degrees"`
}

// CameraSpec is the camera placement a loaded scene asks to be rendered
// with: where it sits, what it looks at, and its vertical field of view.
type CameraSpec struct {
	LookFrom core.Vec3
	LookAt   core.Vec3
	VFOV     float64
}

// defaultCameraSpec is used when a scene document has no camera block.
func defaultCameraSpec() CameraSpec {
	return CameraSpec{LookFrom: core.NewVec3(13, 2, 3), LookAt: core.Vec3{}, VFOV: 20}
}

type textureConfig struct {
	Type  string      `yaml:"type"` // solid, checker
	Color [3]float64  `yaml:"color"`
	Even  string      `yaml:"even"` // texture name, for checker
	Odd   string      `yaml:"odd"`
	Scale float64     `yaml:"scale"`
}

type materialConfig struct {
	Type    string  `yaml:"type"` // lambertian, metal, dielectric, diffuse_light, isotropic
	Texture string  `yaml:"texture"`
	Color   [3]float64 `yaml:"color"`
	Fuzz    float64 `yaml:"fuzz"`
	IR      float64 `yaml:"ir"`
}

type primitiveConfig struct {
	Type     string     `yaml:"type"` // sphere, quad, box, sphereflake, translate, rotate_y, constant_medium
	Material string     `yaml:"material"`
	Center   [3]float64 `yaml:"center"`
	Radius   float64    `yaml:"radius"`
	Corner   [3]float64 `yaml:"corner"`
	U        [3]float64 `yaml:"u"`
	V        [3]float64 `yaml:"v"`
	A        [3]float64 `yaml:"a"` // box opposite corner 1
	C        [3]float64 `yaml:"c"` // box opposite corner 2
	Level    int        `yaml:"level"`
	Offset   [3]float64 `yaml:"offset"`
	Angle    float64    `yaml:"angle_degrees"`
	Density  float64    `yaml:"density"`
	Color    [3]float64 `yaml:"color"`
	Child    *primitiveConfig `yaml:"child"`
}

// LoadYAML parses a scene description and replays it against a Builder,
// producing the same kind of root hittable a hand-written builder call
// would, plus the camera placement the document asked for (or
// defaultCameraSpec if it didn't include a camera block). It returns an
// error wrapping any unknown type name or malformed document.
func LoadYAML(r io.Reader) (core.Scene, CameraSpec, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return core.Scene{}, CameraSpec{}, fmt.Errorf("scene: reading yaml: %w", err)
	}

	var desc sceneDescription
	if err := yaml.Unmarshal(data, &desc); err != nil {
		return core.Scene{}, CameraSpec{}, fmt.Errorf("scene: parsing yaml: %w", err)
	}

	textures, err := buildTextures(desc.Textures)
	if err != nil {
		return core.Scene{}, CameraSpec{}, err
	}

	materials, err := buildMaterials(desc.Materials, textures)
	if err != nil {
		return core.Scene{}, CameraSpec{}, err
	}

	builder := NewBuilder(vecFrom(desc.Background))
	for _, p := range desc.Primitives {
		object, err := buildPrimitive(p, materials)
		if err != nil {
			return core.Scene{}, CameraSpec{}, err
		}
		builder.Add(object)
	}

	cam := defaultCameraSpec()
	if desc.Camera.VFOV != 0 {
		cam = CameraSpec{
			LookFrom: vecFrom(desc.Camera.LookFrom),
			LookAt:   vecFrom(desc.Camera.LookAt),
			VFOV:     desc.Camera.VFOV,
		}
	}

	return builder.Build(), cam, nil
}

func vecFrom(a [3]float64) core.Vec3 {
	return core.NewVec3(a[0], a[1], a[2])
}

func buildTextures(cfgs map[string]textureConfig) (map[string]core.Texture, error) {
	textures := make(map[string]core.Texture, len(cfgs))
	// Resolve solids first so checker can reference them by name regardless
	// of map iteration order.
	for name, cfg := range cfgs {
		if cfg.Type == "solid" {
			textures[name] = texture.NewSolid(vecFrom(cfg.Color))
		}
	}
	for name, cfg := range cfgs {
		if cfg.Type != "checker" {
			continue
		}
		even, ok := textures[cfg.Even]
		if !ok {
			return nil, fmt.Errorf("scene: checker texture %q references unknown even texture %q", name, cfg.Even)
		}
		odd, ok := textures[cfg.Odd]
		if !ok {
			return nil, fmt.Errorf("scene: checker texture %q references unknown odd texture %q", name, cfg.Odd)
		}
		textures[name] = texture.NewChecker(cfg.Scale, even, odd)
	}
	for name, cfg := range cfgs {
		if _, ok := textures[name]; !ok {
			return nil, fmt.Errorf("scene: texture %q has unsupported type %q", name, cfg.Type)
		}
	}
	return textures, nil
}

func buildMaterials(cfgs map[string]materialConfig, textures map[string]core.Texture) (map[string]core.Material, error) {
	materials := make(map[string]core.Material, len(cfgs))
	for name, cfg := range cfgs {
		switch cfg.Type {
		case "lambertian":
			tex, err := resolveTexture(cfg, textures, name)
			if err != nil {
				return nil, err
			}
			materials[name] = material.NewLambertian(tex)
		case "metal":
			materials[name] = material.NewMetal(vecFrom(cfg.Color), cfg.Fuzz)
		case "dielectric":
			materials[name] = material.NewDielectric(cfg.IR)
		case "diffuse_light":
			tex, err := resolveTexture(cfg, textures, name)
			if err != nil {
				return nil, err
			}
			materials[name] = material.NewDiffuseLight(tex)
		case "isotropic":
			tex, err := resolveTexture(cfg, textures, name)
			if err != nil {
				return nil, err
			}
			materials[name] = material.NewIsotropic(tex)
		default:
			return nil, fmt.Errorf("scene: material %q has unsupported type %q", name, cfg.Type)
		}
	}
	return materials, nil
}

func resolveTexture(cfg materialConfig, textures map[string]core.Texture, materialName string) (core.Texture, error) {
	if cfg.Texture != "" {
		tex, ok := textures[cfg.Texture]
		if !ok {
			return nil, fmt.Errorf("scene: material %q references unknown texture %q", materialName, cfg.Texture)
		}
		return tex, nil
	}
	return texture.NewSolid(vecFrom(cfg.Color)), nil
}

func buildPrimitive(p primitiveConfig, materials map[string]core.Material) (core.Hittable, error) {
	switch p.Type {
	case "sphere":
		mat, err := lookupMaterial(p.Material, materials)
		if err != nil {
			return nil, err
		}
		return newSphereFromConfig(p, mat), nil
	case "quad":
		mat, err := lookupMaterial(p.Material, materials)
		if err != nil {
			return nil, err
		}
		return newQuadFromConfig(p, mat), nil
	case "box":
		mat, err := lookupMaterial(p.Material, materials)
		if err != nil {
			return nil, err
		}
		return newBoxFromConfig(p, mat), nil
	case "sphereflake":
		mat, err := lookupMaterial(p.Material, materials)
		if err != nil {
			return nil, err
		}
		return newSphereflakeFromConfig(p, mat), nil
	case "translate":
		if p.Child == nil {
			return nil, fmt.Errorf("scene: translate primitive requires a child")
		}
		child, err := buildPrimitive(*p.Child, materials)
		if err != nil {
			return nil, err
		}
		return newTranslateFromConfig(p, child), nil
	case "rotate_y":
		if p.Child == nil {
			return nil, fmt.Errorf("scene: rotate_y primitive requires a child")
		}
		child, err := buildPrimitive(*p.Child, materials)
		if err != nil {
			return nil, err
		}
		return newRotateYFromConfig(p, child), nil
	case "constant_medium":
		if p.Child == nil {
			return nil, fmt.Errorf("scene: constant_medium primitive requires a child")
		}
		child, err := buildPrimitive(*p.Child, materials)
		if err != nil {
			return nil, err
		}
		return newConstantMediumFromConfig(p, child), nil
	default:
		return nil, fmt.Errorf("scene: unsupported primitive type %q", p.Type)
	}
}

func lookupMaterial(name string, materials map[string]core.Material) (core.Material, error) {
	mat, ok := materials[name]
	if !ok {
		return nil, fmt.Errorf("scene: primitive references unknown material %q", name)
	}
	return mat, nil
}
