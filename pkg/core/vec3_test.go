package core

import (
	"math"
	"testing"
)

func TestVec3_BasicOperations(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	tests := []struct {
		name     string
		result   Vec3
		expected Vec3
	}{
		{"Add", a.Add(b), NewVec3(5, 7, 9)},
		{"Subtract", b.Subtract(a), NewVec3(3, 3, 3)},
		{"Multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"MultiplyVec", a.MultiplyVec(b), NewVec3(4, 10, 18)},
		{"Negate", a.Negate(), NewVec3(-1, -2, -3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.result != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, tt.result)
			}
		})
	}
}

func TestVec3_DotAndCross(t *testing.T) {
	a := NewVec3(1, 0, 0)
	b := NewVec3(0, 1, 0)

	if dot := a.Dot(b); dot != 0 {
		t.Errorf("Expected orthogonal dot product 0, got %f", dot)
	}
	if dot := a.Dot(a); dot != 1 {
		t.Errorf("Expected unit dot product 1, got %f", dot)
	}

	cross := a.Cross(b)
	expected := NewVec3(0, 0, 1)
	if cross != expected {
		t.Errorf("Expected cross product %v, got %v", expected, cross)
	}

	// Anti-commutativity
	reversed := b.Cross(a)
	if reversed != expected.Negate() {
		t.Errorf("Expected reversed cross %v, got %v", expected.Negate(), reversed)
	}
}

func TestVec3_Normalize(t *testing.T) {
	tests := []struct {
		name   string
		vector Vec3
	}{
		{"axis aligned", NewVec3(3, 0, 0)},
		{"arbitrary", NewVec3(1, -2, 3)},
		{"tiny", NewVec3(1e-8, 1e-8, 1e-8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalized := tt.vector.Normalize()
			if math.Abs(normalized.Length()-1.0) > 1e-9 {
				t.Errorf("Expected unit length, got %f", normalized.Length())
			}
		})
	}

	// Zero vector normalizes to zero rather than NaN
	zero := Vec3{}.Normalize()
	if zero != (Vec3{}) {
		t.Errorf("Expected zero vector, got %v", zero)
	}
}

func TestVec3_Clamp(t *testing.T) {
	v := NewVec3(-0.5, 0.5, 1.5)
	clamped := v.Clamp(0, 1)
	expected := NewVec3(0, 0.5, 1)
	if clamped != expected {
		t.Errorf("Expected %v, got %v", expected, clamped)
	}
}

func TestVec3_Luminance(t *testing.T) {
	tests := []struct {
		name     string
		color    Vec3
		expected float64
	}{
		{"black", NewVec3(0, 0, 0), 0},
		{"white", NewVec3(1, 1, 1), 1},
		{"pure green", NewVec3(0, 1, 0), 0.587},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if lum := tt.color.Luminance(); math.Abs(lum-tt.expected) > 1e-9 {
				t.Errorf("Expected luminance %f, got %f", tt.expected, lum)
			}
		})
	}
}

func TestVec3_IsFinite(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		expected bool
	}{
		{"finite", NewVec3(1, 2, 3), true},
		{"zero", Vec3{}, true},
		{"NaN component", NewVec3(0, math.NaN(), 0), false},
		{"positive infinity", NewVec3(math.Inf(1), 0, 0), false},
		{"negative infinity", NewVec3(0, 0, math.Inf(-1)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.vector.IsFinite(); got != tt.expected {
				t.Errorf("Expected IsFinite=%v, got %v", tt.expected, got)
			}
		})
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 0, 0), NewVec3(0, 2, 0))

	tests := []struct {
		t        float64
		expected Vec3
	}{
		{0, NewVec3(1, 0, 0)},
		{1, NewVec3(1, 2, 0)},
		{0.5, NewVec3(1, 1, 0)},
		{-1, NewVec3(1, -2, 0)},
	}

	for _, tt := range tests {
		if point := ray.At(tt.t); point != tt.expected {
			t.Errorf("At(%f): expected %v, got %v", tt.t, tt.expected, point)
		}
	}
}
