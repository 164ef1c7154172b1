package main

import (
	"fmt"

	"github.com/akmonengine/filament"
	"github.com/akmonengine/filament/actor"
	"github.com/go-gl/mathgl/mgl64"
)

// buildRod creates a straight horizontal rod of uniform elements.
func buildRod(origin mgl64.Vec3, elements int, elementLength, radius float64) *actor.Rod {
	nodes := elements + 1
	rod := &actor.Rod{
		Positions:      make([]mgl64.Vec3, nodes),
		Velocities:     make([]mgl64.Vec3, nodes),
		InternalForces: make([]mgl64.Vec3, nodes),
		ExternalForces: make([]mgl64.Vec3, nodes),
		Tangents:       make([]mgl64.Vec3, elements),
		Radii:          make([]float64, elements),
		Lengths:        make([]float64, elements),
	}
	for i := 0; i < nodes; i++ {
		rod.Positions[i] = origin.Add(mgl64.Vec3{float64(i) * elementLength, 0, 0})
	}
	for i := 0; i < elements; i++ {
		rod.Tangents[i] = mgl64.Vec3{1, 0, 0}
		rod.Radii[i] = radius
		rod.Lengths[i] = elementLength
	}
	return rod
}

// SetupScene creates two crossing strands falling onto a rigid cylinder.
func SetupScene() (*filament.Registry, []*actor.Rod, *actor.Cylinder) {
	upper := buildRod(mgl64.Vec3{0, 1.2, 0}, 8, 0.5, 0.25)
	lower := buildRod(mgl64.Vec3{0, 0.8, 0}, 8, 0.5, 0.25)

	// A rigid cylinder lying under both strands, axis along X.
	obstacle := &actor.Cylinder{
		Position: mgl64.Vec3{2, 0.2, 0},
		Director: actor.DirectorFromAxes(
			mgl64.Vec3{0, 1, 0},
			mgl64.Vec3{0, 0, 1},
			mgl64.Vec3{1, 0, 0},
		),
		Radius: 0.3,
		Length: 4.0,
	}

	registry := &filament.Registry{Workers: 4}
	registry.Register(
		filament.NewRodRodContact(upper, lower, 1e3, 10.0),
		filament.NewRodCylinderContact(upper, obstacle, 1e3, 10.0),
		filament.NewRodCylinderContact(lower, obstacle, 1e3, 10.0),
	)

	return registry, []*actor.Rod{upper, lower}, obstacle
}

func main() {
	fmt.Println("Two strands falling onto a rigid cylinder")
	fmt.Println("=========================================")

	registry, rods, obstacle := SetupScene()

	const dt float64 = 1.0 / 600.0
	const maxSteps int = 600
	const nodeMass float64 = 0.05

	gravity := mgl64.Vec3{0, -9.81, 0}

	for step := 0; step < maxSteps; step++ {
		// Contact forces accumulate on top of gravity for this step.
		for _, rod := range rods {
			for i := range rod.ExternalForces {
				rod.ExternalForces[i] = gravity.Mul(nodeMass)
			}
		}
		obstacle.ExternalForce = mgl64.Vec3{}

		registry.ApplyForcesParallel()

		// Crude symplectic Euler on the rod nodes; the obstacle stays put.
		for _, rod := range rods {
			for i := range rod.Positions {
				rod.Velocities[i] = rod.Velocities[i].Add(rod.ExternalForces[i].Mul(dt / nodeMass))
				rod.Positions[i] = rod.Positions[i].Add(rod.Velocities[i].Mul(dt))
			}
			// Keep the element frames in sync with the moved nodes.
			for i := 0; i < rod.Elements(); i++ {
				edge := rod.Positions[i+1].Sub(rod.Positions[i])
				rod.Lengths[i] = edge.Len()
				rod.Tangents[i] = edge.Mul(1.0 / rod.Lengths[i])
			}
		}

		if step%100 == 0 {
			fmt.Printf("--- step %d ---\n", step)
			for r, rod := range rods {
				mid := len(rod.Positions) / 2
				fmt.Printf("  rod %d: mid node position %v, velocity %v\n",
					r, rod.Positions[mid], rod.Velocities[mid])
			}
			fmt.Printf("  cylinder reaction: %v\n", obstacle.ExternalForce)
		}
	}

	fmt.Println("Done.")
}
