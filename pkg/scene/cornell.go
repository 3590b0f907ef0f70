package scene

import (
	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/geometry"
	"github.com/lumen-render/lumen/pkg/lights"
	"github.com/lumen-render/lumen/pkg/material"
)

// NewCornellScene creates the classic Cornell box: white back/floor/ceiling,
// red and green side walls, two spheres, and a quad light in the ceiling
func NewCornellScene(width, height int) *Scene {
	s := &Scene{
		SamplingConfig: SamplingConfig{
			Width:                     width,
			Height:                    height,
			SamplesPerPixel:           128,
			MaxDepth:                  25,
			RussianRouletteMinBounces: 3,
			Seed:                      1,
		},
		// Closed box: escaping rays see black
		BackgroundTop:    core.Vec3{},
		BackgroundBottom: core.Vec3{},
	}

	s.Camera = geometry.NewCamera(geometry.CameraConfig{
		LookFrom: core.NewVec3(278, 278, -800),
		LookAt:   core.NewVec3(278, 278, 0),
		VFov:     40,
		Width:    width,
		Height:   height,
	})

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	// Walls
	s.AddShape(geometry.NewQuad( // Floor
		core.NewVec3(0, 0, 0), core.NewVec3(556, 0, 0), core.NewVec3(0, 0, 556), white))
	s.AddShape(geometry.NewQuad( // Ceiling
		core.NewVec3(0, 556, 0), core.NewVec3(556, 0, 0), core.NewVec3(0, 0, 556), white))
	s.AddShape(geometry.NewQuad( // Back wall
		core.NewVec3(0, 0, 556), core.NewVec3(556, 0, 0), core.NewVec3(0, 556, 0), white))
	s.AddShape(geometry.NewQuad( // Left wall
		core.NewVec3(556, 0, 0), core.NewVec3(0, 556, 0), core.NewVec3(0, 0, 556), green))
	s.AddShape(geometry.NewQuad( // Right wall
		core.NewVec3(0, 0, 0), core.NewVec3(0, 556, 0), core.NewVec3(0, 0, 556), red))

	// Contents
	s.AddShape(geometry.NewSphere(core.NewVec3(185, 100, 350), 100, white))
	s.AddShape(geometry.NewSphere(core.NewVec3(390, 90, 170), 90,
		material.NewDielectric(1.5)))

	// Ceiling light, slightly below the ceiling plane, facing down
	light := lights.NewQuadLight(
		core.NewVec3(213, 554, 227),
		core.NewVec3(130, 0, 0),
		core.NewVec3(0, 0, 105),
		core.NewVec3(15, 15, 15),
	)
	s.AddShape(light)
	s.AddLight(light)

	return s
}
