package material

import (
	"math"

	"github.com/lumen-render/lumen/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Base reflectance
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering
func (l *Lambertian) Scatter(rayIn core.Ray, hit SurfaceInteraction, sampler core.Sampler) (ScatterResult, bool) {
	scatterDirection := core.SampleCosineHemisphere(hit.Normal, sampler.Get2D())
	scattered := core.NewRay(hit.Point, scatterDirection)

	cosTheta := scatterDirection.Normalize().Dot(hit.Normal)
	pdf := core.CosineHemispherePDF(cosTheta)
	if pdf <= 0 {
		return ScatterResult{}, false
	}

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: l.Albedo.Multiply(1.0 / math.Pi), // BRDF: albedo/π
		PDF:         pdf,
	}, true
}

// EvaluateBRDF evaluates the BRDF for a direction pair
func (l *Lambertian) EvaluateBRDF(wo, wi core.Vec3, hit *SurfaceInteraction) core.Vec3 {
	if wi.Dot(hit.Normal) <= 0 || wo.Dot(hit.Normal) <= 0 {
		return core.Vec3{} // Below surface
	}
	return l.Albedo.Multiply(1.0 / math.Pi)
}

// PDF returns the cosine-weighted hemisphere density for wi
func (l *Lambertian) PDF(wo, wi, normal core.Vec3) (float64, bool) {
	return core.CosineHemispherePDF(wi.Dot(normal)), false
}
