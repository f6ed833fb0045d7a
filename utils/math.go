package utils

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

func POW(x float64, pp int) (y float64) {
	var (
		p       = pp
		flipped bool
	)
	if pp > 8 || pp < -8 {
		goto MATHPOW
	}

	if p < 0 {
		p = -pp
		flipped = true
	}
	switch p {
	case 0:
		y = 1
	case 1:
		y = x
	case 2:
		y = x * x
	case 3:
		y = x * x * x
	case 4:
		y = x * x
		y = y * y
	case 5:
		y = x * x
		y = y * y * x
	case 6:
		y = x * x
		y = y * y * y
	case 7:
		y = x * x
		y = y * y * y * x
	case 8:
		y = x * x
		y = y * y * y * y
	}
	if flipped {
		y = 1. / y
	}
	return

MATHPOW:
	y = math.Pow(x, float64(p))
	return
}

func Clamp(x, lo, hi float64) float64 {
	switch {
	case x < lo:
		return lo
	case x > hi:
		return hi
	}
	return x
}

// SetRowsConst assigns the same row to every row of M
func SetRowsConst(M *mat.Dense, row []float64) {
	var (
		nr, _ = M.Dims()
	)
	for i := 0; i < nr; i++ {
		M.SetRow(i, row)
	}
}

// ColumnMeans returns the mean of each column of M, zero for an empty matrix
func ColumnMeans(M *mat.Dense) (m []float64) {
	var (
		nr, nc = M.Dims()
	)
	m = make([]float64, nc)
	if nr == 0 {
		return
	}
	for i := 0; i < nr; i++ {
		for j, val := range M.RawRowView(i) {
			m[j] += val
		}
	}
	for j := range m {
		m[j] /= float64(nr)
	}
	return
}
