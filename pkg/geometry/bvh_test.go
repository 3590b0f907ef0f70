package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/material"
)

// hitAllLinear is the brute force reference: test every shape, keep closest
func hitAllLinear(shapes []Shape, ray core.Ray, tMin, tMax float64) (*material.SurfaceInteraction, bool) {
	var closest *material.SurfaceInteraction
	closestT := tMax
	for _, shape := range shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestT); isHit {
			closest = hit
			closestT = hit.T
		}
	}
	return closest, closest != nil
}

func randomSpheres(n int, random *rand.Rand) []Shape {
	shapes := make([]Shape, 0, n)
	for i := 0; i < n; i++ {
		center := core.NewVec3(
			random.Float64()*20-10,
			random.Float64()*20-10,
			random.Float64()*20-10,
		)
		shapes = append(shapes, NewSphere(center, 0.2+random.Float64(), testMaterial()))
	}
	return shapes
}

func TestBVH_MatchesBruteForce(t *testing.T) {
	random := rand.New(rand.NewSource(42))
	shapes := randomSpheres(100, random)
	bvh := NewBVH(shapes)

	for i := 0; i < 500; i++ {
		origin := core.NewVec3(
			random.Float64()*40-20,
			random.Float64()*40-20,
			random.Float64()*40-20,
		)
		direction := core.SampleUniformSphere(core.NewVec2(random.Float64(), random.Float64()))
		ray := core.NewRay(origin, direction)

		expected, expectedHit := hitAllLinear(shapes, ray, 0.001, math.Inf(1))
		got, gotHit := bvh.Hit(ray, 0.001, math.Inf(1))

		if gotHit != expectedHit {
			t.Fatalf("Ray %d: expected hit=%v, got %v", i, expectedHit, gotHit)
		}
		if gotHit && math.Abs(got.T-expected.T) > 1e-9 {
			t.Fatalf("Ray %d: expected t=%f, got t=%f", i, expected.T, got.T)
		}
	}
}

func TestBVH_HitP_ConsistentWithHit(t *testing.T) {
	random := rand.New(rand.NewSource(7))
	shapes := randomSpheres(50, random)
	bvh := NewBVH(shapes)

	for i := 0; i < 500; i++ {
		origin := core.NewVec3(
			random.Float64()*40-20,
			random.Float64()*40-20,
			random.Float64()*40-20,
		)
		direction := core.SampleUniformSphere(core.NewVec2(random.Float64(), random.Float64()))
		ray := core.NewRay(origin, direction)

		_, isHit := bvh.Hit(ray, 0.001, 100.0)
		if got := bvh.HitP(ray, 0.001, 100.0); got != isHit {
			t.Fatalf("Ray %d: Hit=%v but HitP=%v", i, isHit, got)
		}
	}
}

func TestBVH_Empty(t *testing.T) {
	bvh := NewBVH(nil)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))
	if _, isHit := bvh.Hit(ray, 0.001, math.Inf(1)); isHit {
		t.Error("Expected no hit from empty BVH")
	}
	if bvh.HitP(ray, 0.001, math.Inf(1)) {
		t.Error("Expected no occlusion from empty BVH")
	}
	if bvh.Count() != 0 {
		t.Errorf("Expected count 0, got %d", bvh.Count())
	}
}

func TestBVH_SingleShape(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 5), 1.0, testMaterial())
	bvh := NewBVH([]Shape{sphere})

	hit, isHit := bvh.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)), 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit")
	}
	if math.Abs(hit.T-4.0) > 1e-9 {
		t.Errorf("Expected t=4, got t=%f", hit.T)
	}
	if bvh.Count() != 1 {
		t.Errorf("Expected count 1, got %d", bvh.Count())
	}
}

func TestBVH_DoesNotMutateInput(t *testing.T) {
	random := rand.New(rand.NewSource(3))
	shapes := randomSpheres(20, random)

	original := make([]Shape, len(shapes))
	copy(original, shapes)

	NewBVH(shapes)

	for i := range shapes {
		if shapes[i] != original[i] {
			t.Fatalf("Input slice reordered at index %d", i)
		}
	}
}

func TestBVH_ReturnsClosestHit(t *testing.T) {
	// Three spheres along one ray; closest must win regardless of order
	shapes := []Shape{
		NewSphere(core.NewVec3(0, 0, 10), 1.0, testMaterial()),
		NewSphere(core.NewVec3(0, 0, 4), 1.0, testMaterial()),
		NewSphere(core.NewVec3(0, 0, 7), 1.0, testMaterial()),
	}
	bvh := NewBVH(shapes)

	hit, isHit := bvh.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)), 0.001, math.Inf(1))
	if !isHit {
		t.Fatal("Expected hit")
	}
	if math.Abs(hit.T-3.0) > 1e-9 {
		t.Errorf("Expected closest hit at t=3, got t=%f", hit.T)
	}
}

func TestBVH_BoundsAndRadius(t *testing.T) {
	shapes := []Shape{
		NewSphere(core.NewVec3(-5, 0, 0), 1.0, testMaterial()),
		NewSphere(core.NewVec3(5, 0, 0), 1.0, testMaterial()),
	}
	bvh := NewBVH(shapes)

	expected := core.NewAABB(core.NewVec3(-6, -1, -1), core.NewVec3(6, 1, 1))
	if bvh.Bounds != expected {
		t.Errorf("Expected bounds %v, got %v", expected, bvh.Bounds)
	}
	if bvh.Center != (core.Vec3{}) {
		t.Errorf("Expected center at origin, got %v", bvh.Center)
	}
	if bvh.Radius <= 0 {
		t.Errorf("Expected positive world radius, got %f", bvh.Radius)
	}
}
