package lights

import (
	"github.com/lumen-render/lumen/pkg/core"
)

// DirectionalLight is a delta light of parallel rays, like a distant sun.
// Direction is the direction the light travels in.
type DirectionalLight struct {
	Direction core.Vec3 // Unit direction of light travel
	Radiance  core.Vec3

	shadowDistance float64 // Set from world bounds in Preprocess
}

// NewDirectionalLight creates a new directional light
func NewDirectionalLight(direction, radiance core.Vec3) *DirectionalLight {
	return &DirectionalLight{
		Direction:      direction.Normalize(),
		Radiance:       radiance,
		shadowDistance: 1e7,
	}
}

// Preprocess sizes the shadow ray so it clears the whole scene
func (dl *DirectionalLight) Preprocess(worldCenter core.Vec3, worldRadius float64) error {
	if worldRadius > 0 {
		dl.shadowDistance = 2 * worldRadius
	}
	return nil
}

// Sample returns the single direction opposing the light's travel
func (dl *DirectionalLight) Sample(point core.Vec3, sample core.Vec2) LightSample {
	direction := dl.Direction.Negate()
	return LightSample{
		Point:     point.Add(direction.Multiply(dl.shadowDistance)),
		Direction: direction,
		Distance:  dl.shadowDistance,
		Emission:  dl.Radiance,
		PDF:       1, // Sentinel for delta lights
	}
}

// PDF returns 0: a sampled BSDF direction cannot hit a delta light
func (dl *DirectionalLight) PDF(point core.Vec3, direction core.Vec3) float64 {
	return 0
}

// IsDelta reports a delta distribution
func (dl *DirectionalLight) IsDelta() bool {
	return true
}

// Emit returns zero: directional lights have no surface to hit
func (dl *DirectionalLight) Emit(ray core.Ray) core.Vec3 {
	return core.Vec3{}
}
