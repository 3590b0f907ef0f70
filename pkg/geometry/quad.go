package geometry

import (
	"math"

	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/material"
)

// Quad represents a parallelogram defined by a corner point and two edge
// vectors U and V
type Quad struct {
	Corner   core.Vec3
	U, V     core.Vec3
	Material material.Material

	normal core.Vec3 // Unit normal (U × V normalized)
	w      core.Vec3 // Cached for planar coordinate projection
	d      float64   // Plane equation offset
	area   float64
}

// NewQuad creates a new quad from a corner and two edge vectors
func NewQuad(corner, u, v core.Vec3, mat material.Material) *Quad {
	n := u.Cross(v)
	area := n.Length()

	q := &Quad{Corner: corner, U: u, V: v, Material: mat, area: area}
	if area > 0 {
		q.normal = n.Multiply(1.0 / area)
		q.d = q.normal.Dot(corner)
		q.w = n.Multiply(1.0 / n.Dot(n))
	}
	return q
}

// hitT intersects the quad plane and checks planar coordinates
func (q *Quad) hitT(ray core.Ray, tMin, tMax float64) (t, alpha, beta float64, ok bool) {
	denom := q.normal.Dot(ray.Direction)
	if math.Abs(denom) < 1e-12 {
		return 0, 0, 0, false // Parallel to the plane
	}

	t = (q.d - q.normal.Dot(ray.Origin)) / denom
	if t < tMin || t > tMax {
		return 0, 0, 0, false
	}

	// Planar coordinates of the hit point relative to the corner
	p := ray.At(t).Subtract(q.Corner)
	alpha = q.w.Dot(p.Cross(q.V))
	beta = q.w.Dot(q.U.Cross(p))

	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return 0, 0, 0, false
	}
	return t, alpha, beta, true
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, tMin, tMax float64) (*material.SurfaceInteraction, bool) {
	t, alpha, beta, ok := q.hitT(ray, tMin, tMax)
	if !ok {
		return nil, false
	}

	hit := &material.SurfaceInteraction{
		T:        t,
		Point:    ray.At(t),
		UV:       core.NewVec2(alpha, beta),
		Material: q.Material,
	}
	hit.SetFaceNormal(ray, q.normal)

	return hit, true
}

// HitP tests for intersection without building interaction data
func (q *Quad) HitP(ray core.Ray, tMin, tMax float64) bool {
	_, _, _, ok := q.hitT(ray, tMin, tMax)
	return ok
}

// BoundingBox returns the axis-aligned bounding box for this quad.
// Padded slightly so axis-aligned quads keep a nonzero extent.
func (q *Quad) BoundingBox() core.AABB {
	return core.NewAABBFromPoints(
		q.Corner,
		q.Corner.Add(q.U),
		q.Corner.Add(q.V),
		q.Corner.Add(q.U).Add(q.V),
	).Expand(1e-8)
}

// Degenerate reports quads with (near) zero area
func (q *Quad) Degenerate() bool {
	return q.area < 1e-12 || math.IsNaN(q.area)
}

// Normal returns the unit normal of the quad plane
func (q *Quad) Normal() core.Vec3 {
	return q.normal
}

// Area returns the surface area of the quad
func (q *Quad) Area() float64 {
	return q.area
}
