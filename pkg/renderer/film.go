package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/lumen-render/lumen/pkg/core"
)

// Filter weights samples by their subpixel position for image
// reconstruction. Offsets are measured from the pixel center in [-0.5, 0.5].
type Filter interface {
	Weight(offset core.Vec2) float64
}

// BoxFilter weights every sample equally
type BoxFilter struct{}

// Weight returns 1 for any offset inside the pixel
func (BoxFilter) Weight(offset core.Vec2) float64 {
	return 1
}

// GaussianFilter weights samples by a truncated gaussian
// e^(-αd²) − e^(-αr²), clamped to zero at the radius
type GaussianFilter struct {
	Alpha  float64
	Radius float64
}

// NewGaussianFilter creates a gaussian filter with the given falloff and
// support radius
func NewGaussianFilter(alpha, radius float64) *GaussianFilter {
	return &GaussianFilter{Alpha: alpha, Radius: radius}
}

// Weight evaluates the truncated gaussian at the sample offset
func (g *GaussianFilter) Weight(offset core.Vec2) float64 {
	d2 := offset.X*offset.X + offset.Y*offset.Y
	edge := math.Exp(-g.Alpha * g.Radius * g.Radius)
	w := math.Exp(-g.Alpha*d2) - edge
	return math.Max(0, w)
}

// Pixel accumulates weighted radiance contributions and a sample count
type Pixel struct {
	ColorSum    core.Vec3
	WeightSum   float64
	SampleCount int
}

// Film is the 2D radiance accumulator. Tiles own disjoint pixel regions
// during rendering, so concurrent AddSample calls never contend.
type Film struct {
	Width, Height int
	Filter        Filter
	pixels        []Pixel
}

// NewFilm creates a film with the given resolution and reconstruction
// filter. A nil filter defaults to the box filter.
func NewFilm(width, height int, filter Filter) *Film {
	if filter == nil {
		filter = BoxFilter{}
	}
	return &Film{
		Width:  width,
		Height: height,
		Filter: filter,
		pixels: make([]Pixel, width*height),
	}
}

// AddSample accumulates a radiance sample for pixel (x, y). jitter is the
// subpixel position in [0,1)² used to evaluate the filter weight.
func (f *Film) AddSample(x, y int, jitter core.Vec2, radiance core.Vec3) {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return
	}
	weight := f.Filter.Weight(core.NewVec2(jitter.X-0.5, jitter.Y-0.5))

	p := &f.pixels[y*f.Width+x]
	p.ColorSum = p.ColorSum.Add(radiance.Multiply(weight))
	p.WeightSum += weight
	p.SampleCount++
}

// PixelColor returns the reconstructed color of pixel (x, y).
// Unrendered pixels (zero weight, e.g. from a failed tile) stay black.
func (f *Film) PixelColor(x, y int) core.Vec3 {
	p := f.pixels[y*f.Width+x]
	if p.WeightSum <= 0 {
		return core.Vec3{}
	}
	return p.ColorSum.Multiply(1.0 / p.WeightSum)
}

// SampleCount returns the number of samples accumulated at pixel (x, y),
// exposed for diagnostics
func (f *Film) SampleCount(x, y int) int {
	return f.pixels[y*f.Width+x].SampleCount
}

// ClearRegion resets every pixel inside bounds to the unrendered state.
// Used to discard partial contributions of a tile that failed mid-render.
func (f *Film) ClearRegion(bounds image.Rectangle) {
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
				continue
			}
			f.pixels[y*f.Width+x] = Pixel{}
		}
	}
}

// ToImage converts the film to an 8-bit RGBA image with gamma correction
func (f *Film) ToImage(gamma float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width, f.Height))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			img.SetRGBA(x, y, vec3ToRGBA(f.PixelColor(x, y), gamma))
		}
	}
	return img
}

// vec3ToRGBA converts linear radiance to an 8-bit display color
func vec3ToRGBA(v core.Vec3, gamma float64) color.RGBA {
	corrected := v.Clamp(0, 1).GammaCorrect(gamma)
	return color.RGBA{
		R: uint8(corrected.X * 255.999),
		G: uint8(corrected.Y * 255.999),
		B: uint8(corrected.Z * 255.999),
		A: 255,
	}
}
