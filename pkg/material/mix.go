package material

import (
	"github.com/lumen-render/lumen/pkg/core"
)

// Mix combines two materials with a discrete selection probability.
// Weight is the probability of sampling lobe A.
type Mix struct {
	A, B   Material
	Weight float64
}

// NewMix creates a mix of two materials. weight is clamped to [0,1].
func NewMix(a, b Material, weight float64) *Mix {
	return &Mix{A: a, B: b, Weight: max(0, min(1, weight))}
}

// Scatter selects one lobe by probability, then reports the combined BRDF
// and the probability-weighted sum of the lobe densities so the estimate
// stays unbiased regardless of which lobe was chosen.
func (m *Mix) Scatter(rayIn core.Ray, hit SurfaceInteraction, sampler core.Sampler) (ScatterResult, bool) {
	chosen, prob := m.B, 1.0-m.Weight
	if sampler.Get1D() < m.Weight {
		chosen, prob = m.A, m.Weight
	}
	if prob <= 0 {
		return ScatterResult{}, false
	}

	result, ok := chosen.Scatter(rayIn, hit, sampler)
	if !ok {
		return ScatterResult{}, false
	}

	// Delta lobes cannot be combined with the other lobe's density; the
	// selection probability becomes part of the path weight instead.
	if result.Specular {
		result.Attenuation = result.Attenuation.Multiply(1.0 / prob)
		return result, true
	}

	wo := rayIn.Direction.Normalize().Negate()
	wi := result.Scattered.Direction.Normalize()

	pdf, _ := m.PDF(wo, wi, hit.Normal)
	if pdf <= 0 {
		return ScatterResult{}, false
	}

	return ScatterResult{
		Scattered:   result.Scattered,
		Attenuation: m.EvaluateBRDF(wo, wi, &hit),
		PDF:         pdf,
	}, true
}

// EvaluateBRDF returns the probability-weighted sum of the lobe BRDFs.
// Delta lobes evaluate to zero and drop out.
func (m *Mix) EvaluateBRDF(wo, wi core.Vec3, hit *SurfaceInteraction) core.Vec3 {
	fa := m.A.EvaluateBRDF(wo, wi, hit).Multiply(m.Weight)
	fb := m.B.EvaluateBRDF(wo, wi, hit).Multiply(1.0 - m.Weight)
	return fa.Add(fb)
}

// PDF returns the probability-weighted sum across non-delta lobes.
// The mix is a delta distribution only if both lobes are.
func (m *Mix) PDF(wo, wi, normal core.Vec3) (float64, bool) {
	pdfA, deltaA := m.A.PDF(wo, wi, normal)
	pdfB, deltaB := m.B.PDF(wo, wi, normal)

	pdf := 0.0
	if !deltaA {
		pdf += m.Weight * pdfA
	}
	if !deltaB {
		pdf += (1.0 - m.Weight) * pdfB
	}
	return pdf, deltaA && deltaB
}
