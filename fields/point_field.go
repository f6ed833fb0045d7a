package fields

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gopointbc/dictionary"
	"github.com/notargets/gopointbc/mesh"
	"github.com/notargets/gopointbc/types"
)

// PointVectorField is a nodal vector field, one row per mesh point, plus one PatchField per mesh patch
type PointVectorField struct {
	Name       string
	Dimensions types.DimensionSet
	Mesh       *mesh.PointMesh
	Internal   *mat.Dense
	Boundary   []PatchField // indexed by patch Index
}

func NewPointVectorField(name string, dims types.DimensionSet, m *mesh.PointMesh) *PointVectorField {
	return &PointVectorField{
		Name:       name,
		Dimensions: dims,
		Mesh:       m,
		Internal:   mat.NewDense(m.NPoints(), 3, nil),
		Boundary:   make([]PatchField, len(m.Patches)),
	}
}

// ReadBoundaryField constructs every patch field from the dictionary entry named after its patch
func (f *PointVectorField) ReadBoundaryField(bf map[string]dictionary.Dictionary) (err error) {
	boundary := make([]PatchField, len(f.Mesh.Patches))
	for _, p := range f.Mesh.Patches {
		d, ok := bf[p.Name]
		if !ok {
			return fmt.Errorf("field %q: no boundary condition given for patch %q", f.Name, p.Name)
		}
		if boundary[p.Index], err = New(p, f, d); err != nil {
			return fmt.Errorf("field %q, patch %q: %w", f.Name, p.Name, err)
		}
	}
	for name := range bf {
		if _, errP := f.Mesh.Patch(name); errP != nil {
			return fmt.Errorf("field %q: boundary condition given for unknown patch %q", f.Name, name)
		}
	}
	f.Boundary = boundary
	return
}

func (f *PointVectorField) PatchField(name string) (pf PatchField, err error) {
	var p *mesh.PointPatch
	if p, err = f.Mesh.Patch(name); err != nil {
		return
	}
	if pf = f.Boundary[p.Index]; pf == nil {
		err = fmt.Errorf("field %q: patch %q has no boundary condition", f.Name, name)
	}
	return
}

// CorrectBoundaryConditions updates every patch for time t and writes the patch values into the internal field
func (f *PointVectorField) CorrectBoundaryConditions(t float64) {
	for _, pf := range f.Boundary {
		pf.UpdateCoeffs(t)
	}
	for _, pf := range f.Boundary {
		pf.Evaluate()
	}
}

// Clone copies the internal values and rebinds every patch field to the copy
func (f *PointVectorField) Clone(name string) (fc *PointVectorField) {
	fc = &PointVectorField{
		Name:       name,
		Dimensions: f.Dimensions,
		Mesh:       f.Mesh,
		Internal:   mat.DenseCopyOf(f.Internal),
		Boundary:   make([]PatchField, len(f.Boundary)),
	}
	for i, pf := range f.Boundary {
		fc.Boundary[i] = pf.Rebind(fc)
	}
	return
}

// Map carries the field across a mesh topology change
func (f *PointVectorField) Map(mpm *mesh.MapPointMesh) {
	f.Internal = mesh.MapValues(mpm.PointMap, f.Internal)
	for _, pf := range f.Boundary {
		pf.AutoMap(mpm.PatchMap[pf.Patch().Index])
	}
}

// Write returns the field in dictionary form: dimensions, internalField and boundaryField
func (f *PointVectorField) Write() (d dictionary.Dictionary) {
	var (
		nr, _ = f.Internal.Dims()
		list  = make([]interface{}, nr)
	)
	d = dictionary.New(f.Name)
	d.Set("dimensions", f.Dimensions.String())
	for i := 0; i < nr; i++ {
		row := f.Internal.RawRowView(i)
		list[i] = types.FormatVector(types.Vector{X: row[0], Y: row[1], Z: row[2]})
	}
	d.Set("internalField", list)
	bf := make(map[string]interface{}, len(f.Boundary))
	for _, pf := range f.Boundary {
		pd := dictionary.New(pf.Patch().Name)
		pf.Write(pd)
		bf[pf.Patch().Name] = pd.Entries
	}
	d.Set("boundaryField", bf)
	return
}
