package lights

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lumen-render/lumen/pkg/core"
)

func TestQuadLight_SamplePointsOnQuad(t *testing.T) {
	light := NewQuadLight(
		core.NewVec3(-1, 5, -1),
		core.NewVec3(2, 0, 0),
		core.NewVec3(0, 0, 2),
		core.NewVec3(10, 10, 10),
	)

	random := rand.New(rand.NewSource(42))
	point := core.NewVec3(0, 0, 0)

	for i := 0; i < 500; i++ {
		sample := light.Sample(point, core.NewVec2(random.Float64(), random.Float64()))

		// All sample points lie in the light's plane
		if math.Abs(sample.Point.Y-5) > 1e-9 {
			t.Fatalf("Sample point %v off the light plane", sample.Point)
		}
		if sample.Point.X < -1-1e-9 || sample.Point.X > 1+1e-9 ||
			sample.Point.Z < -1-1e-9 || sample.Point.Z > 1+1e-9 {
			t.Fatalf("Sample point %v outside the quad", sample.Point)
		}
		if sample.PDF <= 0 {
			t.Fatalf("Expected positive pdf, got %f", sample.PDF)
		}
		if math.Abs(sample.Direction.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit direction, got %v", sample.Direction)
		}
	}
}

func TestQuadLight_SampleAndPDFConsistent(t *testing.T) {
	light := NewQuadLight(
		core.NewVec3(-1, 5, -1),
		core.NewVec3(2, 0, 0),
		core.NewVec3(0, 0, 2),
		core.NewVec3(10, 10, 10),
	)

	random := rand.New(rand.NewSource(7))
	point := core.NewVec3(0.3, 0, -0.2)

	for i := 0; i < 200; i++ {
		sample := light.Sample(point, core.NewVec2(random.Float64(), random.Float64()))
		if sample.PDF <= 0 {
			continue
		}

		pdf := light.PDF(point, sample.Direction)
		if math.Abs(pdf-sample.PDF) > 1e-6*sample.PDF {
			t.Fatalf("Sample pdf %f disagrees with PDF query %f", sample.PDF, pdf)
		}
	}
}

func TestQuadLight_PDFZeroForMissingDirections(t *testing.T) {
	light := NewQuadLight(
		core.NewVec3(-1, 5, -1),
		core.NewVec3(2, 0, 0),
		core.NewVec3(0, 0, 2),
		core.NewVec3(10, 10, 10),
	)

	// Direction pointing away from the light
	if pdf := light.PDF(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0)); pdf != 0 {
		t.Errorf("Expected zero pdf for direction away from light, got %f", pdf)
	}
	// Direction that passes beside the quad
	if pdf := light.PDF(core.NewVec3(0, 0, 0), core.NewVec3(5, 1, 0).Normalize()); pdf != 0 {
		t.Errorf("Expected zero pdf for direction missing the quad, got %f", pdf)
	}
}

// Monte Carlo irradiance from a quad light onto a point below its center
// must match the solid-angle integral estimate computed both ways
func TestQuadLight_SolidAnglePDFNormalized(t *testing.T) {
	light := NewQuadLight(
		core.NewVec3(-1, 5, -1),
		core.NewVec3(2, 0, 0),
		core.NewVec3(0, 0, 2),
		core.NewVec3(1, 1, 1),
	)

	random := rand.New(rand.NewSource(11))
	point := core.NewVec3(0, 0, 0)

	// E[1/pdf] over uniform area samples equals the subtended solid angle.
	// For a rectangle with half-extents (a, b) at height h over the point:
	// Ω = 4·atan(ab / (h·sqrt(a² + b² + h²)))
	exact := 4 * math.Atan(1.0/(5.0*math.Sqrt(27)))

	const n = 200000
	sum := 0.0
	for i := 0; i < n; i++ {
		sample := light.Sample(point, core.NewVec2(random.Float64(), random.Float64()))
		if sample.PDF > 0 {
			sum += 1.0 / sample.PDF
		}
	}
	estimate := sum / n

	if math.Abs(estimate-exact) > 0.01*exact {
		t.Errorf("Expected solid angle ≈ %f, got %f", exact, estimate)
	}
}

func TestQuadLight_EmitAndDelta(t *testing.T) {
	emission := core.NewVec3(3, 4, 5)
	light := NewQuadLight(
		core.NewVec3(0, 1, 0),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 0, 1),
		emission,
	)

	if light.IsDelta() {
		t.Error("Expected area light")
	}
	ray := core.NewRay(core.NewVec3(0.5, 0, 0.5), core.NewVec3(0, 1, 0))
	if got := light.Emit(ray); got != emission {
		t.Errorf("Expected emission %v, got %v", emission, got)
	}
}
