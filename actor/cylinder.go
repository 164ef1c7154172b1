package actor

import "github.com/go-gl/mathgl/mgl64"

// Cylinder is a view over the state of a rigid cylindrical body.
//
// The cylinder is a single element centered at Position. Director is the
// body's orientation frame: its rows are the local axes d1, d2, d3 expressed
// in world coordinates, with d3 along the cylinder axis. ExternalForce is
// the caller-owned accumulator the contact layer adds into.
type Cylinder struct {
	Position mgl64.Vec3
	Director mgl64.Mat3
	Radius   float64
	Length   float64

	Velocity      mgl64.Vec3
	ExternalForce mgl64.Vec3
}

// DirectorFromAxes builds a director frame from the three local axes
// expressed in world coordinates. The axes are expected to be orthonormal
// with d3 along the cylinder axis; no check is performed.
func DirectorFromAxes(d1, d2, d3 mgl64.Vec3) mgl64.Mat3 {
	return mgl64.Mat3{
		d1.X(), d2.X(), d3.X(),
		d1.Y(), d2.Y(), d3.Y(),
		d1.Z(), d2.Z(), d3.Z(),
	}
}

// Axis returns the cylinder axis direction d3 in world coordinates.
func (c *Cylinder) Axis() mgl64.Vec3 {
	return c.Director.Row(2)
}

// Edge returns the effective edge vector of the cylinder, Length * Axis.
func (c *Cylinder) Edge() mgl64.Vec3 {
	return c.Axis().Mul(c.Length)
}

// Start returns the effective start point of the cylinder segment: the
// center offset by half the edge along the axis.
func (c *Cylinder) Start() mgl64.Vec3 {
	return c.Position.Sub(c.Edge().Mul(0.5))
}

// AABB returns the bounding box of the cylinder, built by rotating the local
// half-extents (radius, radius, length/2) into world axes through the
// director frame and taking center +- |rotated extents|.
func (c *Cylinder) AABB() AABB {
	local := mgl64.Vec3{c.Radius, c.Radius, 0.5 * c.Length}
	world := c.Director.Transpose().Mul3x1(local)

	var extents mgl64.Vec3
	for axis := 0; axis < 3; axis++ {
		extents[axis] = world[axis]
		if extents[axis] < 0 {
			extents[axis] = -extents[axis]
		}
	}

	return AABB{Min: c.Position.Sub(extents), Max: c.Position.Add(extents)}
}
