package integrator

import (
	"github.com/lumen-render/lumen/pkg/core"
	"github.com/lumen-render/lumen/pkg/scene"
)

// Integrator estimates radiance arriving along a camera ray.
// Implementations must be safe for concurrent use: all per-path state
// lives on the stack or in the caller-provided sampler.
type Integrator interface {
	RayColor(ray core.Ray, s *scene.Scene, sampler core.Sampler) core.Vec3
}
