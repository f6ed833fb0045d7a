package fields

import (
	"github.com/notargets/gopointbc/dictionary"
	"github.com/notargets/gopointbc/mesh"
	"github.com/notargets/gopointbc/types"
)

const (
	FixedValueType       = "fixedValue"
	ZeroDisplacementType = "zeroDisplacement"
)

func init() {
	Register(FixedValueType, newFixedValueFromDict)
	Register(ZeroDisplacementType, newZeroDisplacement)
}

// fixedValue keeps whatever "value" it was given, uniform or per point
func newFixedValueFromDict(p *mesh.PointPatch, f *PointVectorField, d dictionary.Dictionary) (PatchField, error) {
	if !d.Found("value") {
		return nil, &dictionary.ConfigurationError{Dict: d.Name, Key: "value", Reason: "keyword is undefined"}
	}
	fv := NewFixedValue(p, f, nil)
	if err := fv.ReadValue(d); err != nil {
		return nil, err
	}
	return fv, nil
}

type ZeroDisplacement struct {
	*FixedValue
}

func newZeroDisplacement(p *mesh.PointPatch, f *PointVectorField, _ dictionary.Dictionary) (PatchField, error) {
	return &ZeroDisplacement{
		FixedValue: NewFixedValue(p, f, func(float64) types.Vector { return types.Zero }),
	}, nil
}

func (zd *ZeroDisplacement) Type() string { return ZeroDisplacementType }

func (zd *ZeroDisplacement) Write(d dictionary.Dictionary) {
	d.Set("type", zd.Type())
}

func (zd *ZeroDisplacement) Clone() PatchField {
	return &ZeroDisplacement{FixedValue: zd.CopyOnto(zd.Patch(), zd.Field())}
}

func (zd *ZeroDisplacement) Rebind(f *PointVectorField) PatchField {
	return &ZeroDisplacement{FixedValue: zd.CopyOnto(zd.Patch(), f)}
}

func (zd *ZeroDisplacement) MapOnto(p *mesh.PointPatch, f *PointVectorField, m mesh.PatchMapper) PatchField {
	return &ZeroDisplacement{FixedValue: zd.MapCopyOnto(p, f, m)}
}
