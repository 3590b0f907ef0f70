package material

import (
	"github.com/lumen-render/lumen/pkg/core"
)

// Emissive represents a light-emitting material
type Emissive struct {
	Emission core.Vec3 // Emitted radiance
}

// NewEmissive creates a new emissive material
func NewEmissive(emission core.Vec3) *Emissive {
	return &Emissive{Emission: emission}
}

// Scatter implements the Material interface.
// Emissive materials absorb all incoming rays.
func (e *Emissive) Scatter(rayIn core.Ray, hit SurfaceInteraction, sampler core.Sampler) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emit returns the emitted radiance for this material
func (e *Emissive) Emit(rayIn core.Ray) core.Vec3 {
	return e.Emission
}

// EvaluateBRDF returns zero: lights emit, they do not reflect
func (e *Emissive) EvaluateBRDF(wo, wi core.Vec3, hit *SurfaceInteraction) core.Vec3 {
	return core.Vec3{}
}

// PDF returns zero: emissive materials never scatter
func (e *Emissive) PDF(wo, wi, normal core.Vec3) (float64, bool) {
	return 0, false
}
