package geometry

import (
	"math"

	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/material"
)

// Triangle represents a triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3
	Material   material.Material
}

// NewTriangle creates a new triangle
func NewTriangle(v0, v1, v2 core.Vec3, mat material.Material) *Triangle {
	return &Triangle{V0: v0, V1: v1, V2: v2, Material: mat}
}

// hitT runs the Möller–Trumbore test, returning t and barycentric (u, v)
func (tr *Triangle) hitT(ray core.Ray, tMin, tMax float64) (t, u, v float64, ok bool) {
	edge1 := tr.V1.Subtract(tr.V0)
	edge2 := tr.V2.Subtract(tr.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// Ray parallel to the triangle plane
	if math.Abs(a) < 1e-12 {
		return 0, 0, 0, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(tr.V0)
	u = f * s.Dot(h)
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}

	q := s.Cross(edge1)
	v = f * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}

	t = f * edge2.Dot(q)
	if t < tMin || t > tMax {
		return 0, 0, 0, false
	}
	return t, u, v, true
}

// Hit tests if a ray intersects with the triangle
func (tr *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*material.SurfaceInteraction, bool) {
	t, u, v, ok := tr.hitT(ray, tMin, tMax)
	if !ok {
		return nil, false
	}

	hit := &material.SurfaceInteraction{
		T:        t,
		Point:    ray.At(t),
		UV:       core.NewVec2(u, v),
		Material: tr.Material,
	}

	edge1 := tr.V1.Subtract(tr.V0)
	edge2 := tr.V2.Subtract(tr.V0)
	hit.SetFaceNormal(ray, edge1.Cross(edge2).Normalize())

	return hit, true
}

// HitP tests for intersection without building interaction data
func (tr *Triangle) HitP(ray core.Ray, tMin, tMax float64) bool {
	_, _, _, ok := tr.hitT(ray, tMin, tMax)
	return ok
}

// BoundingBox returns the axis-aligned bounding box for this triangle.
// Padded slightly so axis-aligned triangles keep a nonzero extent.
func (tr *Triangle) BoundingBox() core.AABB {
	return core.NewAABBFromPoints(tr.V0, tr.V1, tr.V2).Expand(1e-8)
}

// Degenerate reports triangles with (near) zero area
func (tr *Triangle) Degenerate() bool {
	edge1 := tr.V1.Subtract(tr.V0)
	edge2 := tr.V2.Subtract(tr.V0)
	doubleArea := edge1.Cross(edge2).Length()
	return doubleArea < 1e-12 || math.IsNaN(doubleArea)
}
