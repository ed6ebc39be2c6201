package touchstick

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// Container describes the host layout node that a stick widget occupies:
// its laid-out size and its screen-space transform. The host framework owns
// layout; the stick only reads these metrics.
type Container struct {
	// Size is the laid-out width and height in local units.
	Size Vec2
	// Transform maps container-local points (origin top-left) to screen
	// space. Layout is [a, b, c, d, tx, ty].
	Transform [6]float64
	// Visible mirrors the host's computed visibility for the node.
	Visible bool
}

// ContainerAt returns a visible, unrotated container covering r in screen space.
func ContainerAt(r Rect) Container {
	return Container{
		Size:      Vec2{r.Width, r.Height},
		Transform: [6]float64{1, 0, 0, 1, r.X, r.Y},
		Visible:   true,
	}
}

// Place sets the container transform from a position, scale and rotation
// (radians) around the container's top-left corner.
func (c *Container) Place(x, y, scaleX, scaleY, rotation float64) {
	c.Transform = composeTransform(x, y, scaleX, scaleY, rotation)
}

// HasArea reports whether the container has a non-zero laid-out size.
func (c Container) HasArea() bool {
	return c.Size.X != 0 && c.Size.Y != 0
}

// Center returns the container's center point in screen space.
func (c Container) Center() Vec2 {
	x, y := transformPoint(c.transform(), c.Size.X/2, c.Size.Y/2)
	return Vec2{x, y}
}

// WorldToLocal converts a screen-space point to container-local coordinates.
// A container scaled to nothing only undoes its translation.
func (c Container) WorldToLocal(wx, wy float64) (lx, ly float64) {
	m := c.transform()
	dx, dy := wx-m[4], wy-m[5]
	det := m[0]*m[3] - m[2]*m[1]
	if math.Abs(det) < 1e-12 {
		return dx, dy
	}
	return (m[3]*dx - m[2]*dy) / det, (m[0]*dy - m[1]*dx) / det
}

// LocalToWorld converts a container-local point to screen space.
func (c Container) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return transformPoint(c.transform(), lx, ly)
}

// transform treats the zero matrix as identity so that a zero-value
// Container behaves like one placed at the origin.
func (c Container) transform() [6]float64 {
	if c.Transform == ([6]float64{}) {
		return identityTransform
	}
	return c.Transform
}

// composeTransform computes Scale -> Rotate -> Translate(x, y).
// Returns [a, b, c, d, tx, ty].
func composeTransform(x, y, sx, sy, rotation float64) [6]float64 {
	sin, cos := math.Sincos(rotation)
	return [6]float64{cos * sx, sin * sx, -sin * sy, cos * sy, x, y}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
