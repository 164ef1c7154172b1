package filament

import (
	"math"

	"github.com/akmonengine/filament/actor"
	"github.com/akmonengine/filament/mindist"
)

// rodRodContactForces accumulates penalty contact forces between every
// element pair of two rods.
//
// The accept logic and force magnitude follow rodCylinderContactForces, with
// the equilibrium repulsion term built from both rods' own element forces.
// The node weights differ, though: a boundary element scatters with
// {2/3, 4/3} at index 0 and {4/3, 2/3} at the last index instead of the
// {0.5, 1} pattern of the rigid-body kernel. Both weightings sum to 2 per
// element so net force is conserved either way; they are kept distinct on
// purpose, do not unify them without revisiting the contact physics of both
// kernels.
func rodRodContactForces(rodOne, rodTwo *actor.Rod, k, nu float64) {
	n := rodOne.Elements()
	m := rodTwo.Elements()

	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			radiiSum := rodOne.Radii[i] + rodTwo.Radii[j]
			lengthSum := rodOne.Lengths[i] + rodTwo.Lengths[j]

			xOne := rodOne.Positions[i]
			xTwo := rodTwo.Positions[j]
			if xOne.Sub(xTwo).Len() >= radiiSum+lengthSum {
				continue
			}

			separation := mindist.Between(xOne, rodOne.Edge(i), xTwo, rodTwo.Edge(j))
			distance := separation.Len()
			normal := separation.Mul(1.0 / distance)

			gamma := radiiSum - distance
			if gamma < -contactTolerance {
				continue
			}

			equilibriumForces := rodTwo.ElementForce(j).Sub(rodOne.ElementForce(i))
			normalForce := math.Max(0.0, -equilibriumForces.Dot(normal))

			mask := 0.0
			if gamma > 0.0 {
				mask = 1.0
			}

			contactForce := k * gamma
			interpenetrationVelocity := rodOne.ElementVelocity(i).Sub(rodTwo.ElementVelocity(j))
			dampingForce := nu * interpenetrationVelocity.Dot(normal)

			net := normal.Mul(normalForce + 0.5*mask*(dampingForce+contactForce))

			switch {
			case i == 0:
				rodOne.ExternalForces[i] = rodOne.ExternalForces[i].Sub(net.Mul(2.0 / 3.0))
				rodOne.ExternalForces[i+1] = rodOne.ExternalForces[i+1].Sub(net.Mul(4.0 / 3.0))
			case i == n-1:
				rodOne.ExternalForces[i] = rodOne.ExternalForces[i].Sub(net.Mul(4.0 / 3.0))
				rodOne.ExternalForces[i+1] = rodOne.ExternalForces[i+1].Sub(net.Mul(2.0 / 3.0))
			default:
				rodOne.ExternalForces[i] = rodOne.ExternalForces[i].Sub(net)
				rodOne.ExternalForces[i+1] = rodOne.ExternalForces[i+1].Sub(net)
			}

			switch {
			case j == 0:
				rodTwo.ExternalForces[j] = rodTwo.ExternalForces[j].Add(net.Mul(2.0 / 3.0))
				rodTwo.ExternalForces[j+1] = rodTwo.ExternalForces[j+1].Add(net.Mul(4.0 / 3.0))
			case j == m-1:
				rodTwo.ExternalForces[j] = rodTwo.ExternalForces[j].Add(net.Mul(4.0 / 3.0))
				rodTwo.ExternalForces[j+1] = rodTwo.ExternalForces[j+1].Add(net.Mul(2.0 / 3.0))
			default:
				rodTwo.ExternalForces[j] = rodTwo.ExternalForces[j].Add(net)
				rodTwo.ExternalForces[j+1] = rodTwo.ExternalForces[j+1].Add(net)
			}
		}
	}
}
