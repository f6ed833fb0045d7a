package fields

import (
	"gonum.org/v1/gonum/mat"

	"github.com/notargets/gopointbc/dictionary"
	"github.com/notargets/gopointbc/mesh"
	"github.com/notargets/gopointbc/utils"
)

// PatchField is the per patch boundary condition of a PointVectorField
type PatchField interface {
	Type() string
	Patch() *mesh.PointPatch
	Field() *PointVectorField
	// Values holds one row per patch point
	Values() *mat.Dense
	// UpdateCoeffs sets the patch values for simulation time t
	UpdateCoeffs(t float64)
	Updated() bool
	// Evaluate copies the patch values into the internal field and clears the updated state
	Evaluate()
	Write(d dictionary.Dictionary)
	// AutoMap resizes and remaps the patch values after a topology change
	AutoMap(m mesh.PatchMapper)
	// RMap sets rows addr[i] of this patch from rows i of src
	RMap(src PatchField, addr utils.Index)
	Clone() PatchField
	// Rebind returns a copy writing into another field on the same mesh
	Rebind(f *PointVectorField) PatchField
	// MapOnto returns a copy on a new patch, values carried by the mapper
	MapOnto(p *mesh.PointPatch, f *PointVectorField, m mesh.PatchMapper) PatchField
}

// TimeValued is implemented by patch fields whose value follows a time profile
type TimeValued interface {
	ValueAt(t float64) [3]float64
}

// MomentumSource is implemented by patch fields that also prescribe nodal velocity and linear momentum
type MomentumSource interface {
	VelocityAt(t float64) [3]float64
	LinearMomentumAt(t float64) [3]float64
}
