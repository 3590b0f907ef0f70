package geometry

import (
	"math"
	"testing"

	"github.com/lumen-render/lumen/pkg/core"
)

func testCameraConfig() CameraConfig {
	return CameraConfig{
		LookFrom: core.NewVec3(0, 0, 0),
		LookAt:   core.NewVec3(0, 0, -1),
		VUp:      core.NewVec3(0, 1, 0),
		VFov:     90,
		Width:    100,
		Height:   100,
	}
}

func TestCamera_CenterRay(t *testing.T) {
	camera := NewCamera(testCameraConfig())

	// Ray through the exact image center points straight down -z
	ray := camera.GetRay(50, 50, core.NewVec2(0, 0), core.NewVec2(0.5, 0.5))

	if ray.Origin != (core.Vec3{}) {
		t.Errorf("Expected pinhole ray from origin, got %v", ray.Origin)
	}

	dir := ray.Direction.Normalize()
	expected := core.NewVec3(0, 0, -1)
	if dir.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected direction %v, got %v", expected, dir)
	}
}

func TestCamera_ImageOrientation(t *testing.T) {
	camera := NewCamera(testCameraConfig())

	// Pixel row 0 is the top of the image, column 0 the left
	top := camera.GetRay(50, 0, core.NewVec2(0.5, 0.5), core.NewVec2(0.5, 0.5))
	bottom := camera.GetRay(50, 99, core.NewVec2(0.5, 0.5), core.NewVec2(0.5, 0.5))
	left := camera.GetRay(0, 50, core.NewVec2(0.5, 0.5), core.NewVec2(0.5, 0.5))
	right := camera.GetRay(99, 50, core.NewVec2(0.5, 0.5), core.NewVec2(0.5, 0.5))

	if top.Direction.Y <= bottom.Direction.Y {
		t.Error("Expected row 0 rays to point higher than bottom rows")
	}
	if left.Direction.X >= right.Direction.X {
		t.Error("Expected column 0 rays to point left of right columns")
	}
}

func TestCamera_FieldOfView(t *testing.T) {
	camera := NewCamera(testCameraConfig())

	// With 90° vfov the top edge of the viewport is 45° off axis
	edge := camera.GetRay(50, 0, core.NewVec2(0.5, 0), core.NewVec2(0.5, 0.5))
	dir := edge.Direction.Normalize()

	angle := math.Atan2(dir.Y, -dir.Z) * 180 / math.Pi
	if math.Abs(angle-45) > 1.0 {
		t.Errorf("Expected ~45° to top edge, got %f°", angle)
	}
}

func TestCamera_PinholeIgnoresLensSample(t *testing.T) {
	camera := NewCamera(testCameraConfig())

	a := camera.GetRay(10, 10, core.NewVec2(0.3, 0.3), core.NewVec2(0.1, 0.9))
	b := camera.GetRay(10, 10, core.NewVec2(0.3, 0.3), core.NewVec2(0.8, 0.2))

	if a != b {
		t.Error("Expected identical rays from a pinhole camera regardless of lens sample")
	}
}

func TestCamera_ApertureOffsetsOrigin(t *testing.T) {
	config := testCameraConfig()
	config.Aperture = 0.5
	config.FocusDistance = 1.0
	camera := NewCamera(config)

	a := camera.GetRay(50, 50, core.NewVec2(0, 0), core.NewVec2(0.1, 0.9))
	b := camera.GetRay(50, 50, core.NewVec2(0, 0), core.NewVec2(0.9, 0.1))

	if a.Origin == b.Origin {
		t.Error("Expected lens samples to shift the ray origin")
	}

	// All lens origins stay within the lens radius of the camera position
	for _, ray := range []core.Ray{a, b} {
		if ray.Origin.Subtract(core.NewVec3(0, 0, 0)).Length() > 0.25+1e-9 {
			t.Errorf("Ray origin %v outside lens radius", ray.Origin)
		}
	}
}

func TestCamera_FocusPlaneConvergence(t *testing.T) {
	config := testCameraConfig()
	config.Aperture = 0.4
	config.FocusDistance = 3.0
	camera := NewCamera(config)

	// Rays through the same film point from different lens positions must
	// converge at the focus plane
	a := camera.GetRay(50, 50, core.NewVec2(0, 0), core.NewVec2(0.1, 0.9))
	b := camera.GetRay(50, 50, core.NewVec2(0, 0), core.NewVec2(0.9, 0.1))

	// Intersect both rays with the z = -3 plane
	pa := a.At((-3.0 - a.Origin.Z) / a.Direction.Z)
	pb := b.At((-3.0 - b.Origin.Z) / b.Direction.Z)

	if pa.Subtract(pb).Length() > 1e-9 {
		t.Errorf("Expected convergence at focus plane, got %v vs %v", pa, pb)
	}
}
