package utils

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Index is a list of zero based labels, e.g. the mesh points of a patch
type Index []int

func NewRange(rmin, rmax int) (r Index) {
	var (
		size = rmax - rmin + 1 // INCLUSIVE RANGE
	)
	if size < 0 {
		size = 0
	}
	r = make(Index, size)
	for i := range r {
		r[i] = i + rmin
	}
	return
}

// Duplicate returns the first label found more than once
func (I Index) Duplicate() (label int, found bool) {
	seen := make(map[int]bool, len(I))
	for _, val := range I {
		if seen[val] {
			return val, true
		}
		seen[val] = true
	}
	return
}

// IndexedAssignRows sets row I[i] of M to row i of Val
func (I Index) IndexedAssignRows(M *mat.Dense, Val *mat.Dense) (err error) {
	var (
		nr, nc   = M.Dims()
		nrV, ncV = Val.Dims()
	)
	switch {
	case nrV != len(I):
		err = fmt.Errorf("dimension mismatch: index has %d entries, values have %d rows", len(I), nrV)
		return
	case nc != ncV:
		err = fmt.Errorf("dimension mismatch: target has %d columns, values have %d", nc, ncV)
		return
	}
	for i, ri := range I {
		if ri < 0 || ri > nr-1 {
			err = fmt.Errorf("dimension bounds error, row index out of range: ri = %v, max = %v", ri, nr-1)
			return
		}
		M.SetRow(ri, Val.RawRowView(i))
	}
	return
}
