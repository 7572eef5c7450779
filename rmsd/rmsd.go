// Package rmsd computes the optimal rigid-body superposition of two
// equal-length coordinate sets using the Kabsch algorithm.
package rmsd

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/peptidelab/cycgo/cif"
)

// Transform is a proper rigid-body transform: a rotation followed by a
// translation. Applying it to the "moving" coordinate set of a
// superposition brings that set into least-squares agreement with the
// "fixed" set.
type Transform struct {
	Rotation    [3][3]float64
	Translation [3]float64
}

// Apply maps a single point through the transform: R·c + t.
func (tr Transform) Apply(c cif.Coords) cif.Coords {
	out := tr.rotate(c)
	out[0] += tr.Translation[0]
	out[1] += tr.Translation[1]
	out[2] += tr.Translation[2]
	return out
}

// Superpose computes the rotation and translation minimizing the RMSD
// between the moving set p and the fixed set q, along with that minimal
// RMSD. A brief sketch of the computation:
//
// Center both sets by subtracting their centroids. Build the 3x3
// cross-covariance H = Pᵀ·Q from the centered sets, take its singular
// value decomposition H = U·S·Vᵀ, and form the candidate rotation
// R = V·Uᵀ. If det(R) < 0, the fit found a reflection, which is not a
// physical rigid-body motion; negating the last column of V and
// recomputing yields the optimal proper rotation. The translation is
// whatever carries the rotated centroid of p onto the centroid of q.
//
// The RMSD value is symmetric in p and q, but the transform is not: it
// aligns p onto q, never the reverse.
//
// Note that Superpose will panic if the lengths of p and q differ or if
// they are empty. Unequal lengths mean the caller's stratification is
// broken, and truncating or padding would quietly return a meaningless
// distance.
func Superpose(p, q []cif.Coords) (Transform, float64) {
	if len(p) != len(q) {
		panic(fmt.Sprintf("Computing a superposition of two structures "+
			"requires that they have equal length. But the lengths of the "+
			"two structures provided are %d and %d.", len(p), len(q)))
	}
	if len(p) == 0 {
		panic("Cannot compute the superposition of empty structures.")
	}

	n := len(p)
	cp := centroid(p)
	cq := centroid(q)

	// Centered Nx3 matrices, one point per row.
	P := mat.NewDense(n, 3, nil)
	Q := mat.NewDense(n, 3, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < 3; j++ {
			P.Set(i, j, p[i][j]-cp[j])
			Q.Set(i, j, q[i][j]-cq[j])
		}
	}

	var h mat.Dense
	h.Mul(P.T(), Q)

	var svd mat.SVD
	if !svd.Factorize(&h, mat.SVDFull) {
		panic("SVD of the cross-covariance matrix failed to converge.")
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	var rot mat.Dense
	rot.Mul(&v, u.T())
	if mat.Det(&rot) < 0 {
		for r := 0; r < 3; r++ {
			v.Set(r, 2, -v.At(r, 2))
		}
		rot.Mul(&v, u.T())
	}

	var tr Transform
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			tr.Rotation[r][c] = rot.At(r, c)
		}
	}
	rcp := tr.rotate(cp)
	for r := 0; r < 3; r++ {
		tr.Translation[r] = cq[r] - rcp[r]
	}

	var sum float64
	for i := 0; i < n; i++ {
		moved := tr.Apply(p[i])
		for j := 0; j < 3; j++ {
			d := q[i][j] - moved[j]
			sum += d * d
		}
	}
	return tr, math.Sqrt(sum / float64(n))
}

// RMSD is a convenience function returning only the minimal RMSD of the
// superposition of p onto q.
func RMSD(p, q []cif.Coords) float64 {
	_, r := Superpose(p, q)
	return r
}

// rotate applies only the rotation part of the transform.
func (tr Transform) rotate(c cif.Coords) cif.Coords {
	var out cif.Coords
	for r := 0; r < 3; r++ {
		out[r] = tr.Rotation[r][0]*c[0] +
			tr.Rotation[r][1]*c[1] +
			tr.Rotation[r][2]*c[2]
	}
	return out
}

// centroid calculates the average position of a set of points.
func centroid(points []cif.Coords) cif.Coords {
	var c cif.Coords
	for _, p := range points {
		c[0] += p[0]
		c[1] += p[1]
		c[2] += p[2]
	}
	n := float64(len(points))
	return cif.Coords{c[0] / n, c[1] / n, c[2] / n}
}
