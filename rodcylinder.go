package filament

import (
	"math"

	"github.com/akmonengine/filament/actor"
	"github.com/akmonengine/filament/mindist"
)

// contactTolerance lets near-touching pairs register even with a tiny
// numerical separation: only pairs with gamma < -contactTolerance are
// treated as non-contact.
const contactTolerance = 1e-5

// rodCylinderContactForces accumulates penalty contact forces between each
// element of a rod and a rigid cylinder.
//
// For each element the kernel runs a cheap center-distance reject, then the
// closest-point solver between the element segment and the cylinder segment.
// The penetration gamma = radiiSum - distance drives a linear penalty k*gamma
// plus a viscous term nu*(relative velocity . normal), both gated by the
// gamma > 0 heaviside mask. On top of that sits a repulsive-only term derived
// from the force balance between the element and the cylinder, so a rod
// pressed into the cylinder by other loads is pushed back out even before it
// penetrates.
//
// Forces are scattered onto the two nodes bounding the element with weights
// {0.5, 1} at the first element and {1, 0.5} at the last, since a chain-end
// node is not shared with a neighboring element; the opposite sign goes onto
// the cylinder scaled to conserve net force.
func rodCylinderContactForces(rod *actor.Rod, cylinder *actor.Cylinder, k, nu float64) {
	n := rod.Elements()
	xCylinder := cylinder.Start()
	edgeCylinder := cylinder.Edge()

	for i := 0; i < n; i++ {
		radiiSum := rod.Radii[i] + cylinder.Radius
		lengthSum := rod.Lengths[i] + cylinder.Length

		x := rod.Positions[i]
		if x.Sub(xCylinder).Len() >= radiiSum+lengthSum {
			continue
		}

		separation := mindist.Between(x, rod.Edge(i), xCylinder, edgeCylinder)
		distance := separation.Len()
		normal := separation.Mul(1.0 / distance)

		gamma := radiiSum - distance
		if gamma < -contactTolerance {
			continue
		}

		// Cylinder forces are read live: earlier elements of this very loop
		// already accumulated into them.
		equilibriumForces := cylinder.ExternalForce.Sub(rod.ElementForce(i))
		normalForce := math.Max(0.0, -equilibriumForces.Dot(normal))

		mask := 0.0
		if gamma > 0.0 {
			mask = 1.0
		}

		contactForce := k * gamma
		interpenetrationVelocity := rod.ElementVelocity(i).Sub(cylinder.Velocity)
		dampingForce := nu * interpenetrationVelocity.Dot(normal)

		net := normal.Mul(normalForce + 0.5*mask*(dampingForce+contactForce))

		switch {
		case i == 0:
			rod.ExternalForces[i] = rod.ExternalForces[i].Sub(net.Mul(0.5))
			rod.ExternalForces[i+1] = rod.ExternalForces[i+1].Sub(net)
			cylinder.ExternalForce = cylinder.ExternalForce.Add(net.Mul(1.5))
		case i == n-1:
			rod.ExternalForces[i] = rod.ExternalForces[i].Sub(net)
			rod.ExternalForces[i+1] = rod.ExternalForces[i+1].Sub(net.Mul(0.5))
			cylinder.ExternalForce = cylinder.ExternalForce.Add(net.Mul(1.5))
		default:
			rod.ExternalForces[i] = rod.ExternalForces[i].Sub(net)
			rod.ExternalForces[i+1] = rod.ExternalForces[i+1].Sub(net)
			cylinder.ExternalForce = cylinder.ExternalForce.Add(net.Mul(2.0))
		}
	}
}
