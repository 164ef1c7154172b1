package actor

import "github.com/go-gl/mathgl/mgl64"

// Rod is a view over the state arrays of a discretized slender rod.
//
// The rod is a chain of n cylindrical elements between n+1 nodes. All slices
// are owned by the surrounding simulation; the contact layer only reads them,
// except ExternalForces which it accumulates into additively (never
// overwrites - elasticity, other contacts and external forcing write to the
// same buffer within a step).
//
// Per-node slices (length n+1): Positions, Velocities, InternalForces,
// ExternalForces. Per-element slices (length n): Tangents, Radii, Lengths.
// Element i starts at Positions[i] and carries the edge Lengths[i]*Tangents[i].
type Rod struct {
	Positions      []mgl64.Vec3
	Velocities     []mgl64.Vec3
	InternalForces []mgl64.Vec3
	ExternalForces []mgl64.Vec3

	Tangents []mgl64.Vec3
	Radii    []float64
	Lengths  []float64
}

// Elements returns the number of cylindrical elements of the rod.
func (r *Rod) Elements() int {
	return len(r.Radii)
}

// Edge returns the edge vector of element i, Lengths[i] * Tangents[i].
func (r *Rod) Edge(i int) mgl64.Vec3 {
	return r.Tangents[i].Mul(r.Lengths[i])
}

// ElementVelocity returns the velocity of element i, averaged at its
// two bounding nodes.
func (r *Rod) ElementVelocity(i int) mgl64.Vec3 {
	return r.Velocities[i].Add(r.Velocities[i+1]).Mul(0.5)
}

// ElementForce returns the current net force acting on element i: half the
// sum of the internal and external forces at both bounding nodes.
func (r *Rod) ElementForce(i int) mgl64.Vec3 {
	f := r.InternalForces[i].Add(r.InternalForces[i+1])
	f = f.Add(r.ExternalForces[i]).Add(r.ExternalForces[i+1])
	return f.Mul(0.5)
}

// AABB returns an axis-aligned bounding box around the rod, padded uniformly
// per axis by max(radius) + max(length). The padding is conservative, not
// tight: it covers every element no matter how the edges are oriented.
func (r *Rod) AABB() AABB {
	min := r.Positions[0]
	max := r.Positions[0]
	for _, p := range r.Positions[1:] {
		for axis := 0; axis < 3; axis++ {
			if p[axis] < min[axis] {
				min[axis] = p[axis]
			}
			if p[axis] > max[axis] {
				max[axis] = p[axis]
			}
		}
	}

	var maxRadius, maxLength float64
	for i := range r.Radii {
		if r.Radii[i] > maxRadius {
			maxRadius = r.Radii[i]
		}
		if r.Lengths[i] > maxLength {
			maxLength = r.Lengths[i]
		}
	}

	pad := maxRadius + maxLength
	padding := mgl64.Vec3{pad, pad, pad}
	return AABB{Min: min.Sub(padding), Max: max.Add(padding)}
}
