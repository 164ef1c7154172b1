// Package mindist computes the minimum distance between two finite line
// segments in 3D.
//
// A segment is given as an origin point plus an edge vector, parameterized
// by t in [0,1] (segment one) and s in [0,1] (segment two). The solver
// returns the shortest connecting vector, handling two degeneracies
// explicitly: near-parallel segments, and an unconstrained optimum that
// falls outside the unit square in either parameter.
//
// References:
//   - Eberly: "Robust Computation of Distance Between Line Segments" (2018)
//   - Lumelsky: "On fast computation of distance between line segments" (1985)
package mindist

import "github.com/go-gl/mathgl/mgl64"

// ParallelTolerance gates the parallel-segments branch. Two segments count
// as parallel when |1 - (e1.e2)^2 / (e1.e1 * e2.e2)| falls below it. This is
// a tunable epsilon, not a guarantee of accuracy for nearly-parallel input.
const ParallelTolerance = 1e-6

func outOfBounds(x, low, high float64) bool {
	return x < low || x > high
}

// Between returns the shortest vector connecting segment one {x1, e1} to
// segment two {x2, e2}, pointing from one to two.
//
// Both edges must have nonzero length; a zero-length edge divides by zero
// and propagates NaN rather than returning an error.
func Between(x1, e1, x2, e2 mgl64.Vec3) mgl64.Vec3 {
	sep, _, _ := Points(x1, e1, x2, e2)
	return sep
}

// Points is the variant of Between that also reports the closest point of
// segment two, x2 + s*e2, and the point x1 - t*e1 derived from segment one's
// parameter.
func Points(x1, e1, x2, e2 mgl64.Vec3) (sep, onTwo, onOne mgl64.Vec3) {
	e1e1 := e1.Dot(e1)
	e1e2 := e1.Dot(e2)
	e2e2 := e2.Dot(e2)

	x1e1 := x1.Dot(e1)
	x1e2 := x1.Dot(e2)
	x2e1 := e1.Dot(x2)
	x2e2 := x2.Dot(e2)

	var s, t float64

	if parallel := 1.0 - e1e2*e1e2/(e1e1*e2e2); parallel < ParallelTolerance && parallel > -ParallelTolerance {
		// Project x2 onto segment one, then x1 + t*e1 back onto segment two.
		t = mgl64.Clamp((x2e1-x1e1)/e1e1, 0.0, 1.0)
		s = mgl64.Clamp((x1e2+t*e1e2-x2e2)/e2e2, 0.0, 1.0)
	} else {
		// Cauchy-Binet solve of the 2x2 normal equations for the
		// unconstrained minimum.
		s = (e1e1*(x1e2-x2e2) + e1e2*(x2e1-x1e1)) / (e1e1*e2e2 - e1e2*e1e2)
		t = (e1e2*s + x2e1 - x1e1) / e1e1

		if outOfBounds(s, 0.0, 1.0) || outOfBounds(t, 0.0, 1.0) {
			// The true optimum sits on the boundary of the unit square, and
			// it can leave the square in s and t independently. Check all
			// four edges, each time clamping the free parameter, and keep
			// the closest candidate.
			s = 0.0
			t = mgl64.Clamp((x2e1-x1e1)/e1e1, 0.0, 1.0)
			minDist := x1.Add(e1.Mul(t)).Sub(x2).Len()

			candidateT := mgl64.Clamp((x2e1+e1e2-x1e1)/e1e1, 0.0, 1.0)
			if d := x1.Add(e1.Mul(candidateT)).Sub(x2).Sub(e2).Len(); d < minDist {
				s = 1.0
				t = candidateT
				minDist = d
			}

			candidateS := mgl64.Clamp((x1e2-x2e2)/e2e2, 0.0, 1.0)
			if d := x2.Add(e2.Mul(candidateS)).Sub(x1).Len(); d < minDist {
				s = candidateS
				t = 0.0
				minDist = d
			}

			candidateS = mgl64.Clamp((x1e2+e1e2-x2e2)/e2e2, 0.0, 1.0)
			if d := x2.Add(e2.Mul(candidateS)).Sub(x1).Sub(e1).Len(); d < minDist {
				s = candidateS
				t = 1.0
			}
		}
	}

	onTwo = x2.Add(e2.Mul(s))
	sep = onTwo.Sub(x1).Sub(e1.Mul(t))
	onOne = x1.Sub(e1.Mul(t))
	return sep, onTwo, onOne
}
