package lights

import (
	"github.com/lumen-render/lumen/pkg/core"
)

// PointLight is an isotropic delta light at a single position.
// Intensity is radiant intensity; incident radiance falls off with the
// square of the distance.
type PointLight struct {
	Position  core.Vec3
	Intensity core.Vec3
}

// NewPointLight creates a new point light
func NewPointLight(position, intensity core.Vec3) *PointLight {
	return &PointLight{Position: position, Intensity: intensity}
}

// Sample returns the single direction toward the light.
// The sample values are unused: there is nothing to choose.
func (pl *PointLight) Sample(point core.Vec3, sample core.Vec2) LightSample {
	toLight := pl.Position.Subtract(point)
	distanceSquared := toLight.LengthSquared()
	if distanceSquared == 0 {
		return LightSample{}
	}
	distance := toLight.Length()
	direction := toLight.Multiply(1.0 / distance)

	return LightSample{
		Point:     pl.Position,
		Direction: direction,
		Distance:  distance,
		Emission:  pl.Intensity.Multiply(1.0 / distanceSquared),
		PDF:       1, // Sentinel for delta lights
	}
}

// PDF returns 0: a sampled BSDF direction cannot hit a delta light
func (pl *PointLight) PDF(point core.Vec3, direction core.Vec3) float64 {
	return 0
}

// IsDelta reports a delta distribution
func (pl *PointLight) IsDelta() bool {
	return true
}

// Emit returns zero: point lights have no surface to hit
func (pl *PointLight) Emit(ray core.Ray) core.Vec3 {
	return core.Vec3{}
}
