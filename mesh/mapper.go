package mesh

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gopointbc/utils"
)

// PatchMapper describes how values on an old point set are carried to a new one.
// A direct mapper copies one old value per new point, an interpolative mapper blends several.
type PatchMapper interface {
	Size() int
	Direct() bool
	DirectAddressing() utils.Index
	Addressing() []utils.Index
	Weights() [][]float64
}

// DirectMapper holds new index -> old index
type DirectMapper utils.Index

func IdentityMapper(n int) DirectMapper {
	return DirectMapper(utils.NewRange(0, n-1))
}

func (dm DirectMapper) Size() int                     { return len(dm) }
func (dm DirectMapper) Direct() bool                  { return true }
func (dm DirectMapper) DirectAddressing() utils.Index { return utils.Index(dm) }
func (dm DirectMapper) Addressing() []utils.Index {
	addr := make([]utils.Index, len(dm))
	for i, old := range dm {
		addr[i] = utils.Index{old}
	}
	return addr
}
func (dm DirectMapper) Weights() [][]float64 {
	w := make([][]float64, len(dm))
	for i := range dm {
		w[i] = []float64{1}
	}
	return w
}

type InterpolativeMapper struct {
	Addr []utils.Index
	W    [][]float64
}

func (im *InterpolativeMapper) Size() int    { return len(im.Addr) }
func (im *InterpolativeMapper) Direct() bool { return false }
func (im *InterpolativeMapper) DirectAddressing() utils.Index {
	panic("interpolative mapper has no direct addressing")
}
func (im *InterpolativeMapper) Addressing() []utils.Index { return im.Addr }
func (im *InterpolativeMapper) Weights() [][]float64      { return im.W }

// MapValues builds the new value rows (Size x nc) from the old rows using the mapper
func MapValues(pm PatchMapper, old *mat.Dense) (R *mat.Dense) {
	var (
		nr, nc = old.Dims()
	)
	R = mat.NewDense(pm.Size(), nc, nil)
	if pm.Direct() {
		for i, o := range pm.DirectAddressing() {
			if o < 0 || o >= nr {
				panic(fmt.Errorf("mapper addresses row %d of %d", o, nr))
			}
			R.SetRow(i, old.RawRowView(o))
		}
		return
	}
	var (
		addr = pm.Addressing()
		w    = pm.Weights()
	)
	for i := range addr {
		row := R.RawRowView(i)
		for k, o := range addr[i] {
			if o < 0 || o >= nr {
				panic(fmt.Errorf("mapper addresses row %d of %d", o, nr))
			}
			for j, val := range old.RawRowView(o) {
				row[j] += w[i][k] * val
			}
		}
	}
	return
}
