package lights

import (
	"math"

	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/geometry"
	"github.com/lumen-render/lumen/pkg/material"
)

// QuadLight is a rectangular area light. It embeds a quad shape so the
// same object serves both as scene geometry and as a sampled light.
type QuadLight struct {
	*geometry.Quad
}

// NewQuadLight creates a quad light with the given emission
func NewQuadLight(corner, u, v core.Vec3, emission core.Vec3) *QuadLight {
	return &QuadLight{
		Quad: geometry.NewQuad(corner, u, v, material.NewEmissive(emission)),
	}
}

// Sample draws a uniform point on the quad. The area density is converted
// to solid angle with distance² / cosθ, accounting for foreshortening and
// the inverse-square falloff.
func (ql *QuadLight) Sample(point core.Vec3, sample core.Vec2) LightSample {
	samplePoint := ql.Corner.
		Add(ql.U.Multiply(sample.X)).
		Add(ql.V.Multiply(sample.Y))

	toSample := samplePoint.Subtract(point)
	distanceSquared := toSample.LengthSquared()
	if distanceSquared == 0 {
		return LightSample{}
	}
	distance := math.Sqrt(distanceSquared)
	direction := toSample.Multiply(1.0 / distance)

	// Foreshortening at the light surface
	cosTheta := math.Abs(direction.Negate().Dot(ql.Normal()))
	if cosTheta < 1e-8 {
		return LightSample{} // Edge-on, zero-probability sample
	}

	return LightSample{
		Point:     samplePoint,
		Normal:    ql.Normal(),
		Direction: direction,
		Distance:  distance,
		Emission:  ql.Emit(core.NewRay(point, direction)),
		PDF:       distanceSquared / (cosTheta * ql.Area()),
	}
}

// PDF returns the density Sample uses for the given direction
func (ql *QuadLight) PDF(point core.Vec3, direction core.Vec3) float64 {
	ray := core.NewRay(point, direction)
	hit, ok := ql.Quad.Hit(ray, 1e-4, math.Inf(1))
	if !ok {
		return 0
	}

	distanceSquared := hit.Point.Subtract(point).LengthSquared()
	cosTheta := math.Abs(direction.Normalize().Negate().Dot(ql.Normal()))
	if cosTheta < 1e-8 {
		return 0
	}
	return distanceSquared / (cosTheta * ql.Area())
}

// IsDelta reports an area light
func (ql *QuadLight) IsDelta() bool {
	return false
}

// Emit returns the surface emission for rays toward the light
func (ql *QuadLight) Emit(ray core.Ray) core.Vec3 {
	if emitter, ok := ql.Material.(material.Emitter); ok {
		return emitter.Emit(ray)
	}
	return core.Vec3{}
}
