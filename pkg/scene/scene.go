package scene

import (
	"errors"

	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/geometry"
	"github.com/lumen-render/lumen/pkg/lights"
	"github.com/lumen-render/lumen/pkg/log"
	"github.com/lumen-render/lumen/pkg/material"
)

// ErrEmptyScene is returned when no renderable primitives remain after
// validation. No image can be produced from an empty scene.
var ErrEmptyScene = errors.New("scene contains no valid primitives")

var logger = log.New("scene")

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	Width                     int    // Image width
	Height                    int    // Image height
	SamplesPerPixel           int    // Number of rays per pixel
	MaxDepth                  int    // Maximum ray bounce depth
	RussianRouletteMinBounces int    // Minimum bounces before Russian roulette can activate
	Seed                      uint64 // Global seed for deterministic sampling
}

// Scene contains all the elements needed for rendering. Immutable once
// Preprocess has run; shared read-only across all render workers.
type Scene struct {
	Camera           *geometry.Camera
	Shapes           []geometry.Shape
	Lights           []lights.Light
	LightSampler     lights.LightSampler
	BVH              *geometry.BVH
	SamplingConfig   SamplingConfig
	BackgroundTop    core.Vec3
	BackgroundBottom core.Vec3
}

// AddShape adds a shape to the scene
func (s *Scene) AddShape(shape geometry.Shape) {
	s.Shapes = append(s.Shapes, shape)
}

// AddLight adds a light to the scene. Area lights that are also shapes
// (sphere/quad lights) must be added as shapes separately so BSDF-sampled
// rays can hit them.
func (s *Scene) AddLight(light lights.Light) {
	s.Lights = append(s.Lights, light)
}

// Preprocess validates geometry, builds the acceleration structure, and
// finalizes light sampling. Degenerate primitives are skipped with a
// diagnostic; an empty scene after filtering is a hard failure.
func (s *Scene) Preprocess() error {
	valid := s.Shapes[:0]
	skipped := 0
	for _, shape := range s.Shapes {
		if d, ok := shape.(geometry.Degenerate); ok && d.Degenerate() {
			skipped++
			continue
		}
		valid = append(valid, shape)
	}
	if skipped > 0 {
		logger.Warningf("skipped %d degenerate primitive(s) during scene construction", skipped)
	}
	s.Shapes = valid

	if len(s.Shapes) == 0 {
		return ErrEmptyScene
	}

	s.BVH = geometry.NewBVH(s.Shapes)

	for _, light := range s.Lights {
		if preprocessor, ok := light.(geometry.Preprocessor); ok {
			if err := preprocessor.Preprocess(s.BVH.Center, s.BVH.Radius); err != nil {
				return err
			}
		}
	}

	if s.LightSampler == nil {
		s.LightSampler = lights.NewUniformLightSampler(s.Lights)
	}

	return nil
}

// Background returns the environment radiance for a ray that escapes the
// scene: a vertical gradient between BackgroundBottom and BackgroundTop
func (s *Scene) Background(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return s.BackgroundBottom.Multiply(1.0 - t).Add(s.BackgroundTop.Multiply(t))
}

// NewGroundQuad creates a large horizontal quad centered at the given
// point with its normal pointing up, replacing an infinite ground plane
func NewGroundQuad(center core.Vec3, size float64, mat material.Material) *geometry.Quad {
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z-size/2)
	u := core.NewVec3(0, 0, size)
	v := core.NewVec3(size, 0, 0)
	return geometry.NewQuad(corner, u, v, mat)
}
