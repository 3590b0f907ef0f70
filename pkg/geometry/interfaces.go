package geometry

import (
	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/material"
)

// Shape is an object that can be hit by rays.
//
// Hit returns the closest surface interaction within [tMin, tMax].
// HitP is the occlusion-only variant used for shadow rays; it answers the
// same question without constructing interaction data.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*material.SurfaceInteraction, bool)
	HitP(ray core.Ray, tMin, tMax float64) bool
	BoundingBox() core.AABB
}

// Degenerate is implemented by shapes that can detect malformed geometry
// (zero-radius spheres, zero-area triangles). Scene construction skips
// degenerate shapes instead of aborting the build.
type Degenerate interface {
	Degenerate() bool
}

// Preprocessor is implemented by objects that need the scene bounds before
// rendering starts (e.g. directional lights sizing their shadow distance)
type Preprocessor interface {
	Preprocess(worldCenter core.Vec3, worldRadius float64) error
}
