// Package filament computes contact forces between slender elastic rods
// modeled as chains of cylindrical segments, between such rods and rigid
// cylinders, and between a rod and itself.
//
// The surrounding simulation owns all rod and rigid-body state and drives
// the stepping loop; this package only reads that state and accumulates
// force increments into the caller-owned external-force buffers. Contact
// resolution runs in two stages: a broad phase that prunes whole pairs with
// padded bounding boxes, and a narrow phase that resolves surviving element
// pairs with the closest-point solver of package mindist and a penalty plus
// viscous damping force model.
package filament

import "github.com/akmonengine/filament/actor"

// Contact applies the contact forces of one registered pair of systems for
// the current step. Implementations mutate the systems' external-force
// buffers additively and keep no other state, so a Contact can be applied
// every step with no warm-starting or contact history.
type Contact interface {
	ApplyForces()

	// Systems returns the state views whose force buffers ApplyForces
	// mutates. The Registry batches contacts that share no system.
	Systems() []any
}

// RodRodContact is the contact policy for a pair of distinct rods. The
// penalty stiffness k and damping coefficient nu are fixed at construction
// and shared by every element pair of the rods.
type RodRodContact struct {
	rodOne *actor.Rod
	rodTwo *actor.Rod
	k, nu  float64
}

func NewRodRodContact(rodOne, rodTwo *actor.Rod, k, nu float64) *RodRodContact {
	return &RodRodContact{rodOne: rodOne, rodTwo: rodTwo, k: k, nu: nu}
}

func (c *RodRodContact) ApplyForces() {
	if PruneRodRod(c.rodOne, c.rodTwo) {
		return
	}
	rodRodContactForces(c.rodOne, c.rodTwo, c.k, c.nu)
}

func (c *RodRodContact) Systems() []any {
	return []any{c.rodOne, c.rodTwo}
}

// RodCylinderContact is the contact policy for a rod against a rigid
// cylinder.
type RodCylinderContact struct {
	rod      *actor.Rod
	cylinder *actor.Cylinder
	k, nu    float64
}

func NewRodCylinderContact(rod *actor.Rod, cylinder *actor.Cylinder, k, nu float64) *RodCylinderContact {
	return &RodCylinderContact{rod: rod, cylinder: cylinder, k: k, nu: nu}
}

func (c *RodCylinderContact) ApplyForces() {
	if PruneRodCylinder(c.rod, c.cylinder) {
		return
	}
	rodCylinderContactForces(c.rod, c.cylinder, c.k, c.nu)
}

func (c *RodCylinderContact) Systems() []any {
	return []any{c.rod, c.cylinder}
}

// SelfContact is the contact policy for a rod folding onto itself. No broad
// phase applies: a rod always overlaps its own bounding box, so the kernel
// runs directly with its index exclusion band.
type SelfContact struct {
	rod   *actor.Rod
	k, nu float64
}

func NewSelfContact(rod *actor.Rod, k, nu float64) *SelfContact {
	return &SelfContact{rod: rod, k: k, nu: nu}
}

func (c *SelfContact) ApplyForces() {
	selfContactForces(c.rod, c.k, c.nu)
}

func (c *SelfContact) Systems() []any {
	return []any{c.rod}
}
