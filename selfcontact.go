package filament

import (
	"math"

	"github.com/akmonengine/filament/actor"
	"github.com/akmonengine/filament/mindist"
)

// exclusionArcFactor sizes the self-contact neighbor exclusion band.
// Element i skips its 1 + ceil(exclusionArcFactor * radius/length) nearest
// neighbors on each side, which keeps elements sharing a physical
// cross-section of the rod from registering spurious contact with each
// other. The 0.8*pi arc fraction is an empirical value tied to the rod
// discretization; keep it named so it can be revisited.
const exclusionArcFactor = 0.8 * math.Pi

// neighborExclusion returns the number of index neighbors of an element
// excluded from self-contact on each side.
func neighborExclusion(radius, length float64) int {
	return 1 + int(math.Ceil(exclusionArcFactor*radius/length))
}

// selfContactForces accumulates penalty contact forces between distant
// element pairs of a single rod folding onto itself.
//
// Each element i is tested against elements j walking down from i minus the
// exclusion band to 0, so every unordered pair outside the band is visited
// exactly once. There is no equilibrium repulsion term here: self-contact is
// penalty plus damping only. Both sides of a pair scatter into the same
// rod's force buffer, element i's nodes pushed one way and element j's nodes
// the other. The {4/3, 2/3} boundary correction applies at the terminal
// index only; j is always strictly below i, so index 0 can appear only on
// the j side, where it takes {2/3, 4/3}.
func selfContactForces(rod *actor.Rod, k, nu float64) {
	n := rod.Elements()

	for i := 0; i < n; i++ {
		skip := neighborExclusion(rod.Radii[i], rod.Lengths[i])
		for j := i - skip; j >= 0; j-- {
			radiiSum := rod.Radii[i] + rod.Radii[j]
			lengthSum := rod.Lengths[i] + rod.Lengths[j]

			xI := rod.Positions[i]
			xJ := rod.Positions[j]
			if xI.Sub(xJ).Len() >= radiiSum+lengthSum {
				continue
			}

			separation := mindist.Between(xI, rod.Edge(i), xJ, rod.Edge(j))
			distance := separation.Len()
			normal := separation.Mul(1.0 / distance)

			gamma := radiiSum - distance
			if gamma < -contactTolerance {
				continue
			}

			mask := 0.0
			if gamma > 0.0 {
				mask = 1.0
			}

			contactForce := k * gamma
			interpenetrationVelocity := rod.ElementVelocity(i).Sub(rod.ElementVelocity(j))
			dampingForce := nu * interpenetrationVelocity.Dot(normal)

			net := normal.Mul(0.5 * mask * (dampingForce + contactForce))

			if i == n-1 {
				rod.ExternalForces[i] = rod.ExternalForces[i].Sub(net.Mul(4.0 / 3.0))
				rod.ExternalForces[i+1] = rod.ExternalForces[i+1].Sub(net.Mul(2.0 / 3.0))
			} else {
				rod.ExternalForces[i] = rod.ExternalForces[i].Sub(net)
				rod.ExternalForces[i+1] = rod.ExternalForces[i+1].Sub(net)
			}

			if j == 0 {
				rod.ExternalForces[j] = rod.ExternalForces[j].Add(net.Mul(2.0 / 3.0))
				rod.ExternalForces[j+1] = rod.ExternalForces[j+1].Add(net.Mul(4.0 / 3.0))
			} else {
				rod.ExternalForces[j] = rod.ExternalForces[j].Add(net)
				rod.ExternalForces[j+1] = rod.ExternalForces[j+1].Add(net)
			}
		}
	}
}
