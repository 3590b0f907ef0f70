package lights

import "github.com/lumen-render/lumen/pkg/core"

// Light is a source of illumination that supports importance sampling
// toward a reference point.
type Light interface {
	// Sample draws an incident-radiance sample toward point. The returned
	// direction points from the shading point to the light, PDF is the
	// density with respect to solid angle, and Distance bounds the
	// visibility (shadow) ray. Delta lights report the sentinel PDF of 1.
	Sample(point core.Vec3, sample core.Vec2) LightSample

	// PDF returns the solid-angle density Sample would use for the given
	// direction, for multiple-importance-sampling weights. Delta lights
	// return 0: a BSDF-sampled ray cannot hit them.
	PDF(point core.Vec3, direction core.Vec3) float64

	// IsDelta reports whether this light is a delta distribution
	// (point or directional).
	IsDelta() bool

	// Emit evaluates radiance emitted along the given ray, for rays that
	// hit the light's surface. Delta lights return zero.
	Emit(ray core.Ray) core.Vec3
}

// LightSample contains information about a sampled point on a light
type LightSample struct {
	Point     core.Vec3 // Point on the light source
	Normal    core.Vec3 // Normal at the light sample point
	Direction core.Vec3 // Unit direction from shading point to light
	Distance  float64   // Distance to the light, bounding the shadow ray
	Emission  core.Vec3 // Incident radiance from this sample
	PDF       float64   // Solid-angle density (sentinel 1 for delta lights)
}

// LightSampler selects among the scene's lights
type LightSampler interface {
	// SampleLight picks a light given a uniform value and returns the
	// light, its selection probability, and its index
	SampleLight(u float64) (Light, float64, int)

	// LightProbability returns the selection probability of a light index
	LightProbability(index int) float64

	// Count returns the number of lights
	Count() int
}
