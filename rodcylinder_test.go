package filament

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestRodCylinderForceConservation(t *testing.T) {
	rod := straightRod(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, 5, 1.0, 0.5)
	cylinder := xAxisCylinder(mgl64.Vec3{2.5, 0.8, 0}, 0.5, 5.0)
	for i := range rod.Velocities {
		rod.Velocities[i] = mgl64.Vec3{0, 0.5, 0}
	}

	rodCylinderContactForces(rod, cylinder, 1e3, 2.0)

	sum := totalForce(rod.ExternalForces)
	assert.Greater(t, sum.Len(), 0.0)
	assert.InDelta(t, 0.0, sum.Add(cylinder.ExternalForce).Len(), 1e-9,
		"forces on the rod and cylinder must cancel")
}

func TestRodCylinderSingleElementWeights(t *testing.T) {
	// One element directly under the cylinder: gamma = 1.0 - 0.8 = 0.2, so
	// with k = 1 the net magnitude is 0.1 along +Y and the first-element
	// weighting {0.5, 1} applies, with 1.5x the net on the cylinder.
	rod := straightRod(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, 1, 1.0, 0.5)
	cylinder := xAxisCylinder(mgl64.Vec3{0.5, 0.8, 0}, 0.5, 1.0)

	rodCylinderContactForces(rod, cylinder, 1.0, 0.0)

	assert.InDelta(t, -0.05, rod.ExternalForces[0].Y(), 1e-12)
	assert.InDelta(t, -0.10, rod.ExternalForces[1].Y(), 1e-12)
	assert.InDelta(t, 0.15, cylinder.ExternalForce.Y(), 1e-12)
	assert.InDelta(t, 0.0, cylinder.ExternalForce.X(), 1e-12)
	assert.InDelta(t, 0.0, cylinder.ExternalForce.Z(), 1e-12)
}

func TestRodCylinderTerminalElementWeights(t *testing.T) {
	// A short cylinder floating above the last element only: that element
	// takes the {1, 0.5} weighting and earlier nodes stay untouched.
	rod := straightRod(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, 3, 1.0, 0.5)
	cylinder := xAxisCylinder(mgl64.Vec3{2.85, 0.8, 0}, 0.5, 0.3)

	rodCylinderContactForces(rod, cylinder, 1.0, 0.0)

	assert.Equal(t, mgl64.Vec3{}, rod.ExternalForces[0])
	assert.Equal(t, mgl64.Vec3{}, rod.ExternalForces[1])
	assert.InDelta(t, -0.10, rod.ExternalForces[2].Y(), 1e-12)
	assert.InDelta(t, -0.05, rod.ExternalForces[3].Y(), 1e-12)
	assert.InDelta(t, 0.15, cylinder.ExternalForce.Y(), 1e-12)
}

func TestRodCylinderInteriorElementWeights(t *testing.T) {
	// Contact on the middle element of three: both bounding nodes take the
	// full net and the cylinder twice the net.
	rod := straightRod(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, 3, 1.0, 0.2)
	cylinder := xAxisCylinder(mgl64.Vec3{1.5, 0.3, 0}, 0.2, 0.2)

	rodCylinderContactForces(rod, cylinder, 1.0, 0.0)

	// gamma = 0.4 - 0.3 = 0.1, net = 0.05 along +Y.
	assert.Equal(t, mgl64.Vec3{}, rod.ExternalForces[0])
	assert.InDelta(t, -0.05, rod.ExternalForces[1].Y(), 1e-12)
	assert.InDelta(t, -0.05, rod.ExternalForces[2].Y(), 1e-12)
	assert.Equal(t, mgl64.Vec3{}, rod.ExternalForces[3])
	assert.InDelta(t, 0.10, cylinder.ExternalForce.Y(), 1e-12)
}

func TestRodCylinderSeparatedPairInert(t *testing.T) {
	// Close enough to pass the cheap center reject, but gamma below the
	// acceptance tolerance: no force at all.
	rod := straightRod(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, 2, 1.0, 0.2)
	cylinder := xAxisCylinder(mgl64.Vec3{1, 1.0, 0}, 0.2, 2.0)

	rodCylinderContactForces(rod, cylinder, 1e3, 1.0)

	assert.Equal(t, mgl64.Vec3{}, cylinder.ExternalForce)
	for i, f := range rod.ExternalForces {
		assert.Equalf(t, mgl64.Vec3{}, f, "node %d", i)
	}
}

func TestRodCylinderEquilibriumRepulsion(t *testing.T) {
	// A cylinder already loaded against the rod is pushed back even when
	// the penalty term alone is tiny.
	run := func(loaded bool) float64 {
		rod := straightRod(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, 1, 1.0, 0.5)
		cylinder := xAxisCylinder(mgl64.Vec3{0.5, 0.99, 0}, 0.5, 1.0)
		if loaded {
			cylinder.ExternalForce = mgl64.Vec3{0, -2.0, 0}
		}
		rodCylinderContactForces(rod, cylinder, 1.0, 0.0)
		return -totalForce(rod.ExternalForces).Y()
	}

	assert.Greater(t, run(true), run(false),
		"a cylinder pressed into the rod must be repelled harder")
}

func TestRodCylinderDampingOpposesApproach(t *testing.T) {
	run := func(nu float64) float64 {
		rod := straightRod(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, 1, 1.0, 0.5)
		cylinder := xAxisCylinder(mgl64.Vec3{0.5, 0.8, 0}, 0.5, 1.0)
		// Rod rising into the cylinder.
		for i := range rod.Velocities {
			rod.Velocities[i] = mgl64.Vec3{0, 1, 0}
		}
		rodCylinderContactForces(rod, cylinder, 10.0, nu)
		return cylinder.ExternalForce.Y()
	}

	assert.Greater(t, run(5.0), run(0.0),
		"damping must strengthen the push against an approaching rod")
}
