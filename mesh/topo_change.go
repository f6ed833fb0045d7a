package mesh

import (
	"fmt"
	"math"

	"github.com/notargets/gopointbc/utils"
)

// PointInsertion adds one point to a patch. The new point's coordinate and any field value on it
// are the weighted blend of existing patch points From (patch local indices).
type PointInsertion struct {
	From    []int
	Weights []float64
}

// MapPointMesh carries fields across a topology change
type MapPointMesh struct {
	PointMap PatchMapper   // new mesh point -> old mesh points
	PatchMap []PatchMapper // indexed by patch Index
}

/*
InsertPoints refines the named patch by appending points. The mesh and patch are modified in place and
the returned MapPointMesh is used to remap every field defined on the mesh.
*/
func (m *PointMesh) InsertPoints(patchName string, ins []PointInsertion) (mpm *MapPointMesh, err error) {
	var (
		pp *PointPatch
	)
	if pp, err = m.Patch(patchName); err != nil {
		return
	}
	var (
		nOld    = m.NPoints()
		nNew    = nOld + len(ins)
		nPatch  = pp.Size()
		direct  = true
		addr    = make([]utils.Index, nNew)
		weights = make([][]float64, nNew)
	)
	for i := 0; i < nOld; i++ {
		addr[i] = utils.Index{i}
		weights[i] = []float64{1}
	}
	for n, pi := range ins {
		if len(pi.From) == 0 || len(pi.From) != len(pi.Weights) {
			err = fmt.Errorf("insertion %d: need matching, non empty source and weight lists", n)
			return
		}
		var wsum float64
		a := make(utils.Index, len(pi.From))
		for k, local := range pi.From {
			if local < 0 || local >= nPatch {
				err = fmt.Errorf("insertion %d: patch local index %d out of range [0,%d)", n, local, nPatch)
				return
			}
			a[k] = pp.MeshPoints[local]
			wsum += pi.Weights[k]
		}
		if math.Abs(wsum-1) > utils.NODETOL*1e3 {
			err = fmt.Errorf("insertion %d: weights sum to %g, not 1", n, wsum)
			return
		}
		if len(a) > 1 {
			direct = false
		}
		addr[nOld+n] = a
		weights[nOld+n] = append([]float64{}, pi.Weights...)
	}
	mpm = &MapPointMesh{
		PointMap: toMapper(direct, addr, weights),
		PatchMap: make([]PatchMapper, len(m.Patches)),
	}
	// Coordinates follow the same blend as the fields
	m.Points = MapValues(mpm.PointMap, m.Points)
	for _, p := range m.Patches {
		if p != pp {
			mpm.PatchMap[p.Index] = IdentityMapper(p.Size())
			continue
		}
		pAddr := make([]utils.Index, nPatch+len(ins))
		pW := make([][]float64, nPatch+len(ins))
		for i := 0; i < nPatch; i++ {
			pAddr[i] = utils.Index{i}
			pW[i] = []float64{1}
		}
		for n, pi := range ins {
			pAddr[nPatch+n] = append(utils.Index{}, pi.From...)
			pW[nPatch+n] = weights[nOld+n]
			p.MeshPoints = append(p.MeshPoints, nOld+n)
		}
		mpm.PatchMap[p.Index] = toMapper(direct, pAddr, pW)
	}
	return
}

func toMapper(direct bool, addr []utils.Index, w [][]float64) PatchMapper {
	if direct {
		dm := make(DirectMapper, len(addr))
		for i, a := range addr {
			dm[i] = a[0]
		}
		return dm
	}
	return &InterpolativeMapper{Addr: addr, W: w}
}

