package geometry

import (
	"math"

	"github.com/lumen-render/lumen/pkg/core"
)

// CameraConfig describes a look-at thin-lens camera
type CameraConfig struct {
	LookFrom      core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera looks at
	VUp           core.Vec3 // Up direction
	VFov          float64   // Vertical field of view in degrees
	Width         int       // Image width in pixels
	Height        int       // Image height in pixels
	Aperture      float64   // Lens aperture diameter (0 = pinhole)
	FocusDistance float64   // Focus distance (0 = distance to LookAt)
}

// Camera generates primary rays for image pixels
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v            core.Vec3 // Camera basis for lens offsets
	lensRadius      float64
	width, height   int
}

// NewCamera creates a camera from a config
func NewCamera(config CameraConfig) *Camera {
	if config.VUp.Length() == 0 {
		config.VUp = core.NewVec3(0, 1, 0)
	}
	focusDist := config.FocusDistance
	if focusDist <= 0 {
		focusDist = config.LookAt.Subtract(config.LookFrom).Length()
	}

	aspectRatio := float64(config.Width) / float64(config.Height)
	theta := config.VFov * math.Pi / 180.0
	viewportHeight := 2.0 * math.Tan(theta/2)
	viewportWidth := aspectRatio * viewportHeight

	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.VUp.Cross(w).Normalize()
	v := w.Cross(u)

	origin := config.LookFrom
	horizontal := u.Multiply(viewportWidth * focusDist)
	vertical := v.Multiply(viewportHeight * focusDist)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(focusDist))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		lensRadius:      config.Aperture / 2,
		width:           config.Width,
		height:          config.Height,
	}
}

// GetRay generates a ray through pixel (i, j). jitter is the subpixel
// offset in [0,1)², lens the sample for depth-of-field defocus.
func (c *Camera) GetRay(i, j int, jitter, lens core.Vec2) core.Ray {
	s := (float64(i) + jitter.X) / float64(c.width)
	t := 1.0 - (float64(j)+jitter.Y)/float64(c.height) // Image rows go down

	origin := c.origin
	if c.lensRadius > 0 {
		disk := core.SampleConcentricDisk(lens)
		offset := c.u.Multiply(disk.X * c.lensRadius).Add(c.v.Multiply(disk.Y * c.lensRadius))
		origin = origin.Add(offset)
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(origin)

	return core.NewRay(origin, direction)
}
