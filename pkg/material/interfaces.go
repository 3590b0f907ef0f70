package material

import (
	"github.com/lumen-render/lumen/pkg/core"
)

// Material describes how light scatters at a surface point.
//
// Direction convention: wo points from the surface toward the viewer
// (opposite the incoming ray), wi points toward the sampled or light
// direction. Both point away from the surface.
type Material interface {
	// Scatter draws an importance-sampled outgoing direction for the
	// incoming ray. Returns false if the ray is absorbed.
	Scatter(rayIn core.Ray, hit SurfaceInteraction, sampler core.Sampler) (ScatterResult, bool)

	// EvaluateBRDF returns the scattering value for a direction pair.
	// Physically plausible implementations are reciprocal:
	// EvaluateBRDF(wo, wi) == EvaluateBRDF(wi, wo).
	EvaluateBRDF(wo, wi core.Vec3, hit *SurfaceInteraction) core.Vec3

	// PDF returns the solid-angle density Scatter uses for this direction
	// pair, and whether the material is a delta distribution. Delta
	// materials report (0, true): their density cannot be represented as
	// an ordinary function.
	PDF(wo, wi, normal core.Vec3) (pdf float64, isDelta bool)
}

// Emitter is implemented by materials that emit light
type Emitter interface {
	Emit(rayIn core.Ray) core.Vec3
}

// ScatterResult contains the result of material scattering.
// For delta (specular) lobes, PDF is the sentinel value 1 and Specular is
// set; Attenuation then carries the full path weight rather than a density.
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // BRDF value (or path weight for specular lobes)
	PDF         float64   // Solid-angle density of the sampled direction
	Specular    bool      // Delta distribution flag
}

// SurfaceInteraction contains information about a ray-surface intersection
type SurfaceInteraction struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Shading normal, flipped to oppose the ray
	T         float64   // Parameter t along the ray
	UV        core.Vec2 // Surface parametric coordinates
	FrontFace bool      // Whether the ray hit the front face
	Material  Material  // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (si *SurfaceInteraction) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	si.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if si.FrontFace {
		si.Normal = outwardNormal
	} else {
		si.Normal = outwardNormal.Negate()
	}
}
