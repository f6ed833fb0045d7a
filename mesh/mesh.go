package mesh

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gopointbc/types"
	"github.com/notargets/gopointbc/utils"
)

// PointPatch is a named set of boundary points, addressed by their mesh point labels
type PointPatch struct {
	Name       string
	Type       types.PatchType
	Index      int         // position in PointMesh.Patches
	MeshPoints utils.Index // patch local index -> mesh point label
	mesh       *PointMesh
}

func (pp *PointPatch) Size() int { return len(pp.MeshPoints) }

// LocalPoints returns the patch point coordinates, one row per patch point
func (pp *PointPatch) LocalPoints() (X *mat.Dense) {
	X = mat.NewDense(len(pp.MeshPoints), 3, nil)
	for i, label := range pp.MeshPoints {
		X.SetRow(i, pp.mesh.Points.RawRowView(label))
	}
	return
}

type PatchSpec struct {
	Name   string
	Type   types.PatchType
	Points []int
}

type PointMesh struct {
	Points  *mat.Dense // NPoints x 3
	Patches []*PointPatch
}

func NewPointMesh(points [][3]float64, patches []PatchSpec) (m *PointMesh, err error) {
	if len(points) == 0 {
		err = fmt.Errorf("a point mesh needs at least one point")
		return
	}
	m = &PointMesh{
		Points: mat.NewDense(len(points), 3, nil),
	}
	for i, p := range points {
		m.Points.SetRow(i, p[:])
	}
	names := make(map[string]bool)
	for i, ps := range patches {
		if names[ps.Name] {
			return nil, fmt.Errorf("duplicate patch name %q", ps.Name)
		}
		names[ps.Name] = true
		if len(ps.Points) == 0 {
			return nil, fmt.Errorf("patch %q has no points", ps.Name)
		}
		for _, label := range ps.Points {
			if label < 0 || label >= len(points) {
				return nil, fmt.Errorf("patch %q: point label %d out of range [0,%d)", ps.Name, label, len(points))
			}
		}
		if label, dup := utils.Index(ps.Points).Duplicate(); dup {
			return nil, fmt.Errorf("patch %q: point label %d appears twice", ps.Name, label)
		}
		m.Patches = append(m.Patches, &PointPatch{
			Name:       ps.Name,
			Type:       ps.Type,
			Index:      i,
			MeshPoints: append(utils.Index{}, ps.Points...),
			mesh:       m,
		})
	}
	return
}

func (m *PointMesh) NPoints() int {
	nr, _ := m.Points.Dims()
	return nr
}

func (m *PointMesh) Patch(name string) (pp *PointPatch, err error) {
	for _, pp = range m.Patches {
		if pp.Name == name {
			return
		}
	}
	return nil, fmt.Errorf("no patch named %q", name)
}

func (m *PointMesh) PatchNames() (names []string) {
	for _, pp := range m.Patches {
		names = append(names, pp.Name)
	}
	return
}
