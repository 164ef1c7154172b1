package filament

import "github.com/akmonengine/filament/actor"

// PruneRodRod reports whether the padded bounding boxes of the two rods are
// definitely separated, in which case the whole pair can be skipped without
// running the narrow phase.
//
// The answer is conservative: a false return does not mean the rods touch,
// only that they might. A true return is a guarantee that they do not.
func PruneRodRod(rodOne, rodTwo *actor.Rod) bool {
	return rodOne.AABB().Disjoint(rodTwo.AABB())
}

// PruneRodCylinder is the rod/rigid-cylinder variant of PruneRodRod.
func PruneRodCylinder(rod *actor.Rod, cylinder *actor.Cylinder) bool {
	return rod.AABB().Disjoint(cylinder.AABB())
}
