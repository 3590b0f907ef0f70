package lights

import (
	"fmt"

	"github.com/lumen-render/lumen/pkg/core"
)

// WeightedLightSampler selects lights with user-specified weights.
// Weights are normalized at construction; the order matches the scene's
// light list.
type WeightedLightSampler struct {
	lights  []Light
	weights []float64
	cdf     []float64
}

// NewWeightedLightSampler creates a light sampler with the given weights.
// Weights must be non-negative and match the lights slice in length; they
// are normalized to sum to 1.
func NewWeightedLightSampler(lights []Light, weights []float64) *WeightedLightSampler {
	if len(lights) != len(weights) {
		panic(fmt.Sprintf("lights length (%d) must match weights length (%d)", len(lights), len(weights)))
	}

	normalized := make([]float64, len(weights))
	total := 0.0
	for _, w := range weights {
		if w < 0 {
			panic("light weights must be non-negative")
		}
		total += w
	}

	if total == 0 && len(weights) > 0 {
		uniform := 1.0 / float64(len(weights))
		for i := range normalized {
			normalized[i] = uniform
		}
	} else {
		for i, w := range weights {
			normalized[i] = w / total
		}
	}

	cdf := make([]float64, len(normalized))
	running := 0.0
	for i, w := range normalized {
		running += w
		cdf[i] = running
	}

	return &WeightedLightSampler{lights: lights, weights: normalized, cdf: cdf}
}

// NewUniformLightSampler creates a sampler with equal weights for all lights
func NewUniformLightSampler(lights []Light) *WeightedLightSampler {
	weights := make([]float64, len(lights))
	for i := range weights {
		weights[i] = 1
	}
	return NewWeightedLightSampler(lights, weights)
}

// SampleLight picks a light by weight
func (ls *WeightedLightSampler) SampleLight(u float64) (Light, float64, int) {
	if len(ls.lights) == 0 {
		return nil, 0, -1
	}
	for i, c := range ls.cdf {
		if u < c {
			return ls.lights[i], ls.weights[i], i
		}
	}
	last := len(ls.lights) - 1
	return ls.lights[last], ls.weights[last], last
}

// LightProbability returns the selection probability of a light index
func (ls *WeightedLightSampler) LightProbability(index int) float64 {
	if index < 0 || index >= len(ls.weights) {
		return 0
	}
	return ls.weights[index]
}

// Count returns the number of lights in this sampler
func (ls *WeightedLightSampler) Count() int {
	return len(ls.lights)
}

// SampleLight selects and samples one light using the given sampler.
// The returned sample's PDF already includes the selection probability.
func SampleLight(lights []Light, sampler LightSampler, point core.Vec3, rng core.Sampler) (LightSample, Light, bool) {
	if len(lights) == 0 {
		return LightSample{}, nil, false
	}

	light, selectionPdf, _ := sampler.SampleLight(rng.Get1D())
	if light == nil || selectionPdf <= 0 {
		return LightSample{}, nil, false
	}

	sample := light.Sample(point, rng.Get2D())
	sample.PDF *= selectionPdf

	return sample, light, true
}

// CombinedPDF returns the total density of sampling the given direction
// via next-event estimation: each light's PDF weighted by its selection
// probability. Needed for multiple-importance-sampling weights on
// BSDF-sampled rays.
func CombinedPDF(lights []Light, sampler LightSampler, point, direction core.Vec3) float64 {
	total := 0.0
	for i, light := range lights {
		pdf := light.PDF(point, direction)
		if pdf > 0 {
			total += pdf * sampler.LightProbability(i)
		}
	}
	return total
}
