package geometry

import (
	"sort"

	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/material"
)

// Leaf threshold: nodes with this many or fewer shapes stay leaves and are
// searched linearly
const leafThreshold = 8

// BVHNode is either an interior node (two children) or a leaf (Shapes set)
type BVHNode struct {
	BoundingBox core.AABB
	Left        *BVHNode
	Right       *BVHNode
	Shapes      []Shape // nil for interior nodes
}

// BVH is a bounding volume hierarchy over shapes. Built once per scene and
// read-only afterwards, so concurrent queries need no locking.
type BVH struct {
	Root   *BVHNode
	Bounds core.AABB
	Center core.Vec3
	Radius float64
}

// NewBVH constructs a BVH from a slice of shapes. An empty slice yields a
// valid structure whose queries report no hit.
func NewBVH(shapes []Shape) *BVH {
	if len(shapes) == 0 {
		return &BVH{}
	}

	// Copy so sorting during the build never mutates the caller's slice
	shapesCopy := make([]Shape, len(shapes))
	copy(shapesCopy, shapes)

	root := buildBVH(shapesCopy)
	bounds := root.BoundingBox
	return &BVH{
		Root:   root,
		Bounds: bounds,
		Center: bounds.Center(),
		Radius: bounds.Size().Length() * 0.5,
	}
}

// buildBVH recursively builds the tree using a median split along the
// longest axis, with leaf thresholding for small groups
func buildBVH(shapes []Shape) *BVHNode {
	boundingBox := shapes[0].BoundingBox()
	for i := 1; i < len(shapes); i++ {
		boundingBox = boundingBox.Union(shapes[i].BoundingBox())
	}

	if len(shapes) <= leafThreshold {
		return &BVHNode{BoundingBox: boundingBox, Shapes: shapes}
	}

	axis := boundingBox.LongestAxis()
	sortShapesByAxis(shapes, axis)

	mid := len(shapes) / 2
	return &BVHNode{
		BoundingBox: boundingBox,
		Left:        buildBVH(shapes[:mid]),
		Right:       buildBVH(shapes[mid:]),
	}
}

// sortShapesByAxis orders shapes by bounding box center along an axis.
// SliceStable keeps the build deterministic when centers tie.
func sortShapesByAxis(shapes []Shape, axis int) {
	sort.SliceStable(shapes, func(i, j int) bool {
		centerI := shapes[i].BoundingBox().Center()
		centerJ := shapes[j].BoundingBox().Center()

		switch axis {
		case 0:
			return centerI.X < centerJ.X
		case 1:
			return centerI.Y < centerJ.Y
		default:
			return centerI.Z < centerJ.Z
		}
	})
}

// Hit returns the closest intersection within [tMin, tMax], or false
func (bvh *BVH) Hit(ray core.Ray, tMin, tMax float64) (*material.SurfaceInteraction, bool) {
	if bvh.Root == nil {
		return nil, false
	}
	return hitNode(bvh.Root, ray, tMin, tMax)
}

func hitNode(node *BVHNode, ray core.Ray, tMin, tMax float64) (*material.SurfaceInteraction, bool) {
	if !node.BoundingBox.Hit(ray, tMin, tMax) {
		return nil, false
	}

	var closestHit *material.SurfaceInteraction
	hitAnything := false
	closestSoFar := tMax

	if node.Shapes != nil {
		for _, shape := range node.Shapes {
			if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
				hitAnything = true
				closestSoFar = hit.T
				closestHit = hit
			}
		}
		return closestHit, hitAnything
	}

	if hit, isHit := hitNode(node.Left, ray, tMin, closestSoFar); isHit {
		hitAnything = true
		closestSoFar = hit.T
		closestHit = hit
	}
	if hit, isHit := hitNode(node.Right, ray, tMin, closestSoFar); isHit {
		hitAnything = true
		closestHit = hit
	}

	return closestHit, hitAnything
}

// HitP reports whether anything occludes the ray within [tMin, tMax].
// Shadow rays use this: it stops at the first hit and never constructs
// interaction data.
func (bvh *BVH) HitP(ray core.Ray, tMin, tMax float64) bool {
	if bvh.Root == nil {
		return false
	}
	return hitPNode(bvh.Root, ray, tMin, tMax)
}

func hitPNode(node *BVHNode, ray core.Ray, tMin, tMax float64) bool {
	if !node.BoundingBox.Hit(ray, tMin, tMax) {
		return false
	}

	if node.Shapes != nil {
		for _, shape := range node.Shapes {
			if shape.HitP(ray, tMin, tMax) {
				return true
			}
		}
		return false
	}

	return hitPNode(node.Left, ray, tMin, tMax) || hitPNode(node.Right, ray, tMin, tMax)
}

// Count returns the number of shapes stored in the hierarchy
func (bvh *BVH) Count() int {
	return countNode(bvh.Root)
}

func countNode(node *BVHNode) int {
	if node == nil {
		return 0
	}
	if node.Shapes != nil {
		return len(node.Shapes)
	}
	return countNode(node.Left) + countNode(node.Right)
}
