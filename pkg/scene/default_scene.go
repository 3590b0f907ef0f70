package scene

import (
	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/geometry"
	"github.com/lumen-render/lumen/pkg/lights"
	"github.com/lumen-render/lumen/pkg/material"
)

// NewDefaultScene creates a scene with a ground quad, a diffuse, a metal
// and a glass sphere, lit by a spherical area light and the sky gradient
func NewDefaultScene(width, height int) *Scene {
	s := &Scene{
		SamplingConfig: SamplingConfig{
			Width:                     width,
			Height:                    height,
			SamplesPerPixel:           64,
			MaxDepth:                  25,
			RussianRouletteMinBounces: 3,
			Seed:                      1,
		},
		BackgroundTop:    core.NewVec3(0.5, 0.7, 1.0),
		BackgroundBottom: core.NewVec3(1.0, 1.0, 1.0),
	}

	s.Camera = geometry.NewCamera(geometry.CameraConfig{
		LookFrom: core.NewVec3(0, 0.8, 2.4),
		LookAt:   core.NewVec3(0, 0.4, 0),
		VFov:     40,
		Width:    width,
		Height:   height,
	})

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s.AddShape(NewGroundQuad(core.NewVec3(0, 0, 0), 40, ground))

	s.AddShape(geometry.NewSphere(core.NewVec3(0, 0.4, 0), 0.4,
		material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))))
	s.AddShape(geometry.NewSphere(core.NewVec3(-0.9, 0.4, -0.2), 0.4,
		material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 0.05)))
	s.AddShape(geometry.NewSphere(core.NewVec3(0.9, 0.4, -0.2), 0.4,
		material.NewDielectric(1.5)))

	// Glossy-diffuse mix sphere exercising lobe selection
	glossy := material.NewMix(
		material.NewLambertian(core.NewVec3(0.1, 0.3, 0.6)),
		material.NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0.0),
		0.7,
	)
	s.AddShape(geometry.NewSphere(core.NewVec3(0, 0.25, 0.9), 0.25, glossy))

	keyLight := lights.NewSphereLight(core.NewVec3(-1.5, 2.5, 1.5), 0.5, core.NewVec3(12, 12, 12))
	s.AddShape(keyLight)
	s.AddLight(keyLight)

	return s
}
