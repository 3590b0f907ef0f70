package core

import (
	"math"
	"math/rand"
)

// Sampler produces uniform sample values in [0,1), consumed in the order
// the integrator requests them.
type Sampler interface {
	Get1D() float64
	Get2D() Vec2
}

// RandomSampler wraps a standard Go random generator.
// Used for tests and for sampling code that needs no pixel identity.
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// PixelSampler is a deterministic per-pixel, per-sample-index sampler.
// The stream is seeded from (x, y, sampleIndex, seed), so re-rendering a
// single pixel reproduces its noise exactly.
//
// The first Get2D call of each sample is stratified over a floor(sqrt(spp))
// grid and is intended for the subpixel position; subsequent dimensions are
// decorrelated pseudorandom values. Sample indices beyond the largest full
// grid fall back to plain jitter, so every stratum is covered exactly once
// before the remainder and no stratum is skipped at non-square counts.
type PixelSampler struct {
	random      *rand.Rand
	strata      int
	stratum     int
	usedPixel2D bool
}

// NewPixelSampler creates a sampler for one (pixel, sample index) pair
func NewPixelSampler(x, y, sampleIndex, samplesPerPixel int, seed uint64) *PixelSampler {
	strata := int(math.Sqrt(float64(max(samplesPerPixel, 1))))
	if (strata+1)*(strata+1) <= samplesPerPixel {
		strata++ // guard against sqrt rounding below the exact root
	}

	state := seed
	state = mixSeed(state, uint64(uint32(x)))
	state = mixSeed(state, uint64(uint32(y)))
	state = mixSeed(state, uint64(uint32(sampleIndex)))

	return &PixelSampler{
		random:  rand.New(rand.NewSource(int64(state))),
		strata:  strata,
		stratum: sampleIndex,
	}
}

// Get1D returns the next value of the stream
func (p *PixelSampler) Get1D() float64 {
	return p.random.Float64()
}

// Get2D returns the next pair of values. The first pair is jittered within
// the sample's stratum of the pixel; later pairs, and samples past the
// last full grid, are unstratified.
func (p *PixelSampler) Get2D() Vec2 {
	if !p.usedPixel2D {
		p.usedPixel2D = true
		if p.stratum < p.strata*p.strata {
			sx := p.stratum % p.strata
			sy := p.stratum / p.strata
			inv := 1.0 / float64(p.strata)
			return NewVec2(
				(float64(sx)+p.random.Float64())*inv,
				(float64(sy)+p.random.Float64())*inv,
			)
		}
	}
	return NewVec2(p.random.Float64(), p.random.Float64())
}

// mixSeed folds a value into a seed using a splitmix64 finalizer step
func mixSeed(state, value uint64) uint64 {
	state += value + 0x9e3779b97f4a7c15
	state = (state ^ (state >> 30)) * 0xbf58476d1ce4e5b9
	state = (state ^ (state >> 27)) * 0x94d049bb133111eb
	return state ^ (state >> 31)
}
