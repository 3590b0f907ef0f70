package integrator

import (
	"math"

	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/lights"
	"github.com/lumen-render/lumen/pkg/material"
	"github.com/lumen-render/lumen/pkg/scene"
)

// Offset applied to secondary/shadow ray intervals to avoid
// self-intersection at the surface the ray leaves from
const shadowEpsilon = 1e-3

// PathTracer implements unidirectional Monte Carlo path tracing with
// next-event estimation, multiple importance sampling, and Russian
// roulette. Paths are built iteratively with a bounded depth counter.
type PathTracer struct {
	maxDepth     int
	rrMinBounces int
}

// NewPathTracer creates a path tracer from the scene's sampling config
func NewPathTracer(config scene.SamplingConfig) *PathTracer {
	maxDepth := config.MaxDepth
	if maxDepth <= 0 {
		maxDepth = 10
	}
	rrMinBounces := config.RussianRouletteMinBounces
	if rrMinBounces <= 0 {
		rrMinBounces = 3
	}
	return &PathTracer{maxDepth: maxDepth, rrMinBounces: rrMinBounces}
}

// RayColor estimates the radiance arriving along ray.
//
// Each loop iteration is one path vertex: intersect, account emission,
// sample direct lighting, sample the BSDF to continue, then Russian
// roulette. The depth cap terminates deterministically regardless of
// roulette outcome.
func (pt *PathTracer) RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler) core.Vec3 {
	radiance := core.Vec3{}
	throughput := core.NewVec3(1, 1, 1)

	// Emission hit via a BSDF-sampled bounce is MIS-weighted against the
	// light sampling density at the previous vertex. Camera rays and
	// specular bounces take full emission: no competing strategy exists.
	specularBounce := true
	var prevPoint core.Vec3
	var prevPdf float64

	for bounce := 0; bounce < pt.maxDepth; bounce++ {
		hit, ok := s.BVH.Hit(ray, shadowEpsilon, math.Inf(1))
		if !ok {
			radiance = radiance.Add(throughput.MultiplyVec(s.Background(ray)))
			break
		}

		if emitter, isEmissive := hit.Material.(material.Emitter); isEmissive {
			emitted := emitter.Emit(ray)
			if specularBounce {
				radiance = radiance.Add(throughput.MultiplyVec(emitted))
			} else {
				lightPDF := lights.CombinedPDF(s.Lights, s.LightSampler, prevPoint, ray.Direction)
				weight := core.PowerHeuristic(1, prevPdf, 1, lightPDF)
				radiance = radiance.Add(throughput.MultiplyVec(emitted).Multiply(weight))
			}
		}

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			break
		}

		wo := ray.Direction.Normalize().Negate()
		wi := scatter.Scattered.Direction.Normalize()

		// Direct lighting keys off the material's aggregate delta status,
		// not the sampled lobe: a mixed material that picked its specular
		// lobe still has an evaluable diffuse component.
		if _, deltaOnly := hit.Material.PDF(wo, wi, hit.Normal); !deltaOnly {
			direct := pt.directLighting(s, hit, wo, sampler)
			radiance = radiance.Add(throughput.MultiplyVec(direct))
		}

		if scatter.Specular {
			throughput = throughput.MultiplyVec(scatter.Attenuation)
			specularBounce = true
		} else {
			cosine := wi.Dot(hit.Normal)
			if cosine <= 0 || scatter.PDF <= 0 {
				break
			}
			throughput = throughput.MultiplyVec(scatter.Attenuation).Multiply(cosine / scatter.PDF)
			specularBounce = false
			prevPoint = hit.Point
			prevPdf = scatter.PDF
		}

		ray = scatter.Scattered

		if bounce+1 >= pt.rrMinBounces {
			survival := math.Min(0.95, math.Max(0.05, throughput.Luminance()))
			if sampler.Get1D() > survival {
				break
			}
			// Rescale survivors so the estimate stays unbiased
			throughput = throughput.Multiply(1.0 / survival)
		}
	}

	return sanitizeRadiance(radiance)
}

// directLighting estimates direct illumination at a hit point via
// next-event estimation: one light sample, occlusion-tested with the
// cheap shadow query, MIS-weighted against the BSDF density
func (pt *PathTracer) directLighting(s *scene.Scene, hit *material.SurfaceInteraction, wo core.Vec3, sampler core.Sampler) core.Vec3 {
	sample, light, ok := lights.SampleLight(s.Lights, s.LightSampler, hit.Point, sampler)
	if !ok || sample.PDF <= 0 {
		return core.Vec3{}
	}

	cosine := sample.Direction.Dot(hit.Normal)
	if cosine <= 0 {
		return core.Vec3{} // Light is behind the surface
	}

	brdf := hit.Material.EvaluateBRDF(wo, sample.Direction, hit)
	if brdf == (core.Vec3{}) {
		return core.Vec3{}
	}

	shadowRay := core.NewRay(hit.Point, sample.Direction)
	if s.BVH.HitP(shadowRay, shadowEpsilon, sample.Distance-shadowEpsilon) {
		return core.Vec3{}
	}

	// Delta lights cannot be hit by BSDF sampling; no competing strategy
	weight := 1.0
	if !light.IsDelta() {
		materialPDF, isDelta := hit.Material.PDF(wo, sample.Direction, hit.Normal)
		if !isDelta {
			weight = core.PowerHeuristic(1, sample.PDF, 1, materialPDF)
		}
	}

	return brdf.MultiplyVec(sample.Emission).Multiply(cosine * weight / sample.PDF)
}

// sanitizeRadiance clamps pathological estimates. A NaN, infinite, or
// negative sample must not corrupt a pixel's mean, so it contributes zero.
func sanitizeRadiance(v core.Vec3) core.Vec3 {
	if !v.IsFinite() {
		return core.Vec3{}
	}
	return core.Vec3{
		X: math.Max(0, v.X),
		Y: math.Max(0, v.Y),
		Z: math.Max(0, v.Z),
	}
}
