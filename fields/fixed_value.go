package fields

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gopointbc/dictionary"
	"github.com/notargets/gopointbc/mesh"
	"github.com/notargets/gopointbc/types"
	"github.com/notargets/gopointbc/utils"
)

// ValueFunc gives the uniform patch value at time t
type ValueFunc func(t float64) types.Vector

/*
FixedValue assigns one vector to every point of a patch. Concrete boundary conditions embed it and
supply the ValueFunc, they only add their own keywords on Write and their own copies on Clone/Rebind.
*/
type FixedValue struct {
	patch   *mesh.PointPatch
	field   *PointVectorField
	values  *mat.Dense
	value   ValueFunc
	updated bool
}

func NewFixedValue(p *mesh.PointPatch, f *PointVectorField, fn ValueFunc) *FixedValue {
	return &FixedValue{
		patch:  p,
		field:  f,
		values: mat.NewDense(p.Size(), 3, nil),
		value:  fn,
	}
}

func (fv *FixedValue) Type() string             { return FixedValueType }
func (fv *FixedValue) Patch() *mesh.PointPatch  { return fv.patch }
func (fv *FixedValue) Field() *PointVectorField { return fv.field }
func (fv *FixedValue) Values() *mat.Dense       { return fv.values }
func (fv *FixedValue) Updated() bool            { return fv.updated }

// ValueAt is the value assigned at time t, for a patch holding stored values it is their mean
func (fv *FixedValue) ValueAt(t float64) (v [3]float64) {
	if fv.value == nil {
		copy(v[:], utils.ColumnMeans(fv.values))
		return
	}
	vv := fv.value(t)
	return [3]float64{vv.X, vv.Y, vv.Z}
}

// UpdateCoeffs with a nil ValueFunc keeps the stored values
func (fv *FixedValue) UpdateCoeffs(t float64) {
	if fv.value != nil {
		v := fv.ValueAt(t)
		utils.SetRowsConst(fv.values, v[:])
	}
	fv.updated = true
}

func (fv *FixedValue) Evaluate() {
	if err := fv.patch.MeshPoints.IndexedAssignRows(fv.field.Internal, fv.values); err != nil {
		panic(fmt.Errorf("patch %q of field %q: %w", fv.patch.Name, fv.field.Name, err))
	}
	fv.updated = false
}

// ReadValue initialises the patch values from an optional "value" keyword, either one uniform vector
// or a list with one vector per patch point
func (fv *FixedValue) ReadValue(d dictionary.Dictionary) (err error) {
	if !d.Found("value") {
		return
	}
	if v, errU := d.Vector("value"); errU == nil {
		utils.SetRowsConst(fv.values, []float64{v.X, v.Y, v.Z})
		return
	}
	list, ok := d.Entries["value"].([]interface{})
	if !ok || len(list) != fv.patch.Size() {
		return &dictionary.ConfigurationError{Dict: d.Name, Key: "value",
			Reason: fmt.Sprintf("expected a vector or a list of %d vectors", fv.patch.Size())}
	}
	for i, vI := range list {
		var v types.Vector
		if v, err = types.ParseVector(vI); err != nil {
			return &dictionary.ConfigurationError{Dict: d.Name, Key: "value",
				Reason: fmt.Sprintf("entry %d: %v", i, err)}
		}
		fv.values.SetRow(i, []float64{v.X, v.Y, v.Z})
	}
	return
}

// WriteValue stores the current patch values under "value"
func (fv *FixedValue) WriteValue(d dictionary.Dictionary) {
	var (
		nr, _ = fv.values.Dims()
		list  = make([]interface{}, nr)
	)
	for i := 0; i < nr; i++ {
		row := fv.values.RawRowView(i)
		list[i] = types.FormatVector(types.Vector{X: row[0], Y: row[1], Z: row[2]})
	}
	d.Set("value", list)
}

func (fv *FixedValue) Write(d dictionary.Dictionary) {
	d.Set("type", fv.Type())
	fv.WriteValue(d)
}

func (fv *FixedValue) AutoMap(m mesh.PatchMapper) {
	fv.values = mesh.MapValues(m, fv.values)
}

func (fv *FixedValue) RMap(src PatchField, addr utils.Index) {
	if err := addr.IndexedAssignRows(fv.values, src.Values()); err != nil {
		panic(fmt.Errorf("reverse map onto patch %q: %w", fv.patch.Name, err))
	}
}

// CopyOnto duplicates the value storage and binds the copy to patch p and field f
func (fv *FixedValue) CopyOnto(p *mesh.PointPatch, f *PointVectorField) *FixedValue {
	return &FixedValue{
		patch:   p,
		field:   f,
		values:  mat.DenseCopyOf(fv.values),
		value:   fv.value,
		updated: fv.updated,
	}
}

// MapCopyOnto is CopyOnto followed by an AutoMap of the copied values
func (fv *FixedValue) MapCopyOnto(p *mesh.PointPatch, f *PointVectorField, m mesh.PatchMapper) *FixedValue {
	cp := fv.CopyOnto(p, f)
	cp.AutoMap(m)
	if cp.values.RawMatrix().Rows != p.Size() {
		panic(fmt.Errorf("mapper size %d does not match patch %q size %d", m.Size(), p.Name, p.Size()))
	}
	return cp
}

func (fv *FixedValue) Clone() PatchField {
	return fv.CopyOnto(fv.patch, fv.field)
}

func (fv *FixedValue) Rebind(f *PointVectorField) PatchField {
	return fv.CopyOnto(fv.patch, f)
}

func (fv *FixedValue) MapOnto(p *mesh.PointPatch, f *PointVectorField, m mesh.PatchMapper) PatchField {
	return fv.MapCopyOnto(p, f, m)
}
