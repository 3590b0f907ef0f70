package lights

import (
	"math"

	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/geometry"
	"github.com/lumen-render/lumen/pkg/material"
)

// SphereLight is a spherical area light. It embeds a sphere shape so the
// same object serves both as scene geometry and as a sampled light.
type SphereLight struct {
	*geometry.Sphere
}

// NewSphereLight creates a spherical light with the given emission
func NewSphereLight(center core.Vec3, radius float64, emission core.Vec3) *SphereLight {
	return &SphereLight{
		Sphere: geometry.NewSphere(center, radius, material.NewEmissive(emission)),
	}
}

// Sample draws a point on the light as seen from the shading point.
// Outside the sphere this samples the subtended cone; inside it falls back
// to uniform sphere sampling.
func (sl *SphereLight) Sample(point core.Vec3, sample core.Vec2) LightSample {
	toCenter := sl.Center.Subtract(point)
	distanceToCenter := toCenter.Length()

	if distanceToCenter <= sl.Radius {
		return sl.sampleUniform(point, sample)
	}
	return sl.sampleCone(point, sample)
}

// sampleUniform samples uniformly over the entire sphere surface
func (sl *SphereLight) sampleUniform(point core.Vec3, sample core.Vec2) LightSample {
	localDir := core.SampleUniformSphere(sample)
	samplePoint := sl.Center.Add(localDir.Multiply(sl.Radius))

	toSample := samplePoint.Subtract(point)
	distance := toSample.Length()
	direction := toSample.Multiply(1.0 / distance)

	// Area density converted to solid angle
	areaPDF := 1.0 / (4.0 * math.Pi * sl.Radius * sl.Radius)
	cosTheta := math.Abs(localDir.Dot(direction.Negate()))
	pdf := areaPDF * distance * distance / math.Max(cosTheta, 1e-8)

	return LightSample{
		Point:     samplePoint,
		Normal:    localDir,
		Direction: direction,
		Distance:  distance,
		Emission:  sl.Emit(core.NewRay(point, direction)),
		PDF:       pdf,
	}
}

// sampleCone samples the cone of directions subtended by the sphere
func (sl *SphereLight) sampleCone(point core.Vec3, sample core.Vec2) LightSample {
	toCenter := sl.Center.Subtract(point)
	distanceToCenter := toCenter.Length()
	w := toCenter.Multiply(1.0 / distanceToCenter)

	sinThetaMax := sl.Radius / distanceToCenter
	cosThetaMax := math.Sqrt(math.Max(0, 1.0-sinThetaMax*sinThetaMax))

	direction := core.SampleUniformCone(w, cosThetaMax, sample)

	ray := core.NewRay(point, direction)
	hit, ok := sl.Sphere.Hit(ray, 1e-4, math.Inf(1))
	if !ok {
		// Grazing cone sample missed due to rounding
		return sl.sampleUniform(point, sample)
	}

	return LightSample{
		Point:     hit.Point,
		Normal:    hit.Normal,
		Direction: direction,
		Distance:  hit.T,
		Emission:  sl.Emit(ray),
		PDF:       core.UniformConePDF(cosThetaMax),
	}
}

// PDF returns the density Sample uses for the given direction
func (sl *SphereLight) PDF(point core.Vec3, direction core.Vec3) float64 {
	ray := core.NewRay(point, direction)
	if !sl.Sphere.HitP(ray, 1e-4, math.Inf(1)) {
		return 0
	}

	toCenter := sl.Center.Subtract(point)
	distanceToCenter := toCenter.Length()
	if distanceToCenter <= sl.Radius {
		// Uniform surface sampling converted to solid angle
		hit, ok := sl.Sphere.Hit(ray, 1e-4, math.Inf(1))
		if !ok {
			return 0
		}
		areaPDF := 1.0 / (4.0 * math.Pi * sl.Radius * sl.Radius)
		cosTheta := math.Abs(hit.Normal.Dot(direction.Negate()))
		return areaPDF * hit.T * hit.T / math.Max(cosTheta, 1e-8)
	}

	sinThetaMax := sl.Radius / distanceToCenter
	cosThetaMax := math.Sqrt(math.Max(0, 1.0-sinThetaMax*sinThetaMax))
	return core.UniformConePDF(cosThetaMax)
}

// IsDelta reports an area light
func (sl *SphereLight) IsDelta() bool {
	return false
}

// Emit returns the surface emission for rays toward the light
func (sl *SphereLight) Emit(ray core.Ray) core.Vec3 {
	if emitter, ok := sl.Material.(material.Emitter); ok {
		return emitter.Emit(ray)
	}
	return core.Vec3{}
}
