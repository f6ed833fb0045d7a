package bcs

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/gopointbc/dictionary"
	"github.com/notargets/gopointbc/fields"
	"github.com/notargets/gopointbc/mesh"
	"github.com/notargets/gopointbc/types"
)

const MovingDisplacementNodalLinearMomentumType = "movingDisplacementNodalLinearMomentum"

func init() {
	fields.Register(MovingDisplacementNodalLinearMomentumType, NewMovingDisplacementNodalLinearMomentum)
}

/*
MovingDisplacementNodalLinearMomentum prescribes the nodal displacement of a moving patch following
a Profile, with the matching bell shaped velocity and linear momentum (density * velocity) available
to momentum based solvers.

	top:
	  type:         movingDisplacementNodalLinearMomentum
	  density:      1000          # material density, > 0
	  displacement: (0 0.01 0)    # maximum displacement
	  endTime:      1.0           # time at which the maximum is reached, > 0
*/
type MovingDisplacementNodalLinearMomentum struct {
	*fields.FixedValue
	Rho     types.DimensionedScalar
	Profile Profile
}

func NewMovingDisplacementNodalLinearMomentum(p *mesh.PointPatch, f *fields.PointVectorField,
	d dictionary.Dictionary) (pf fields.PatchField, err error) {
	var (
		rho, tEnd float64
		uMax      types.Vector
	)
	if rho, err = d.PositiveScalar("density"); err != nil {
		return
	}
	if uMax, err = d.Vector("displacement"); err != nil {
		return
	}
	if tEnd, err = d.PositiveScalar("endTime"); err != nil {
		return
	}
	bc := &MovingDisplacementNodalLinearMomentum{
		Rho:     types.NewDimensionedScalar("density", types.DimDensity, rho),
		Profile: Profile{UMax: uMax, TEnd: tEnd},
	}
	bc.FixedValue = fields.NewFixedValue(p, f, bc.Profile.Displacement)
	if err = bc.ReadValue(d); err != nil {
		return
	}
	pf = bc
	return
}

func (bc *MovingDisplacementNodalLinearMomentum) Type() string {
	return MovingDisplacementNodalLinearMomentumType
}

func (bc *MovingDisplacementNodalLinearMomentum) VelocityAt(t float64) [3]float64 {
	v := bc.Profile.Velocity(t)
	return [3]float64{v.X, v.Y, v.Z}
}

func (bc *MovingDisplacementNodalLinearMomentum) LinearMomentumAt(t float64) [3]float64 {
	lm := r3.Scale(bc.Rho.Value, bc.Profile.Velocity(t))
	return [3]float64{lm.X, lm.Y, lm.Z}
}

func (bc *MovingDisplacementNodalLinearMomentum) Write(d dictionary.Dictionary) {
	d.Set("type", bc.Type())
	d.Set("density", bc.Rho.Value)
	d.Set("displacement", types.FormatVector(bc.Profile.UMax))
	d.Set("endTime", bc.Profile.TEnd)
	bc.WriteValue(d)
}

func (bc *MovingDisplacementNodalLinearMomentum) with(fv *fields.FixedValue) *MovingDisplacementNodalLinearMomentum {
	return &MovingDisplacementNodalLinearMomentum{
		FixedValue: fv,
		Rho:        bc.Rho,
		Profile:    bc.Profile,
	}
}

func (bc *MovingDisplacementNodalLinearMomentum) Clone() fields.PatchField {
	return bc.with(bc.CopyOnto(bc.Patch(), bc.Field()))
}

func (bc *MovingDisplacementNodalLinearMomentum) Rebind(f *fields.PointVectorField) fields.PatchField {
	return bc.with(bc.CopyOnto(bc.Patch(), f))
}

func (bc *MovingDisplacementNodalLinearMomentum) MapOnto(p *mesh.PointPatch, f *fields.PointVectorField,
	m mesh.PatchMapper) fields.PatchField {
	return bc.with(bc.MapCopyOnto(p, f, m))
}
