package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/gopointbc/dictionary"
	"github.com/notargets/gopointbc/mesh"
	"github.com/notargets/gopointbc/types"
)

func lineMesh(t *testing.T) *mesh.PointMesh {
	m, err := mesh.NewPointMesh([][3]float64{
		{0, 0, 0}, {1, 0, 0}, {2, 0, 0}, {3, 0, 0},
	}, []mesh.PatchSpec{
		{Name: "left", Type: types.Wall, Points: []int{0}},
		{Name: "right", Points: []int{2, 3}},
	})
	require.NoError(t, err)
	return m
}

func dict(t *testing.T, name, src string) dictionary.Dictionary {
	d, err := dictionary.Parse(name, []byte(src))
	require.NoError(t, err)
	return d
}

func TestRegistry(t *testing.T) {
	assert.True(t, Registered(FixedValueType))
	assert.True(t, Registered(ZeroDisplacementType))
	assert.False(t, Registered("calculated"))
	names := Types()
	assert.Contains(t, names, FixedValueType)
	assert.IsIncreasing(t, names)
	assert.Panics(t, func() { Register(FixedValueType, newFixedValueFromDict) })
	assert.Panics(t, func() { Register("nilFactory", nil) })

	m := lineMesh(t)
	f := NewPointVectorField("pointD", types.DimLength, m)
	p := m.Patches[1]
	_, err := New(p, f, dict(t, "right", "type: calculated"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "calculated")
	_, err = New(p, f, dict(t, "right", "value: (1 2 3)"))
	assert.True(t, dictionary.IsConfigurationError(err))
	_, err = New(p, f, dict(t, "right", "type: fixedValue"))
	key, ok := dictionary.MissingKey(err)
	assert.True(t, ok)
	assert.Equal(t, "value", key)
}

func TestFixedValue(t *testing.T) {
	m := lineMesh(t)
	f := NewPointVectorField("pointD", types.DimLength, m)
	p := m.Patches[1]
	{ // Uniform
		pf, err := New(p, f, dict(t, "right", "type: fixedValue\nvalue: (1 2 3)"))
		require.NoError(t, err)
		pf.UpdateCoeffs(10)
		assert.Equal(t, []float64{1, 2, 3, 1, 2, 3}, pf.Values().RawMatrix().Data)
		assert.Equal(t, [3]float64{1, 2, 3}, pf.(TimeValued).ValueAt(0))
	}
	{ // Per point values are kept through updates
		pf, err := New(p, f, dict(t, "right", "type: fixedValue\nvalue: [(1 0 0), [3, 0, 0]]"))
		require.NoError(t, err)
		pf.UpdateCoeffs(10)
		assert.Equal(t, []float64{1, 0, 0, 3, 0, 0}, pf.Values().RawMatrix().Data)
		assert.Equal(t, [3]float64{2, 0, 0}, pf.(TimeValued).ValueAt(0))
		d := dictionary.New("right")
		pf.Write(d)
		assert.Equal(t, []interface{}{"(1 0 0)", "(3 0 0)"}, d.Entries["value"])
		assert.Equal(t, FixedValueType, d.Entries["type"])
	}
	{ // Wrong length
		_, err := New(p, f, dict(t, "right", "type: fixedValue\nvalue: [(1 0 0)]"))
		assert.True(t, dictionary.IsConfigurationError(err))
		_, err = New(p, f, dict(t, "right", "type: fixedValue\nvalue: [(1 0 0), (1 0)]"))
		assert.True(t, dictionary.IsConfigurationError(err))
	}
}

func TestPointVectorField(t *testing.T) {
	m := lineMesh(t)
	f := NewPointVectorField("pointD", types.DimLength, m)
	bf := map[string]dictionary.Dictionary{
		"left":  dict(t, "left", "type: zeroDisplacement"),
		"right": dict(t, "right", "type: fixedValue\nvalue: (0 1 0)"),
	}
	require.NoError(t, f.ReadBoundaryField(bf))
	f.Internal.Set(0, 0, 5) // overwritten by the zero displacement patch
	f.CorrectBoundaryConditions(0)
	assert.Equal(t, []float64{
		0, 0, 0,
		0, 0, 0,
		0, 1, 0,
		0, 1, 0,
	}, f.Internal.RawMatrix().Data)
	for _, pf := range f.Boundary {
		assert.False(t, pf.Updated())
	}

	d := f.Write()
	assert.Equal(t, "[0 1 0 0 0 0 0]", d.Entries["dimensions"])
	assert.Len(t, d.Entries["internalField"], 4)
	bfOut := d.Entries["boundaryField"].(map[string]interface{})
	assert.Equal(t, map[string]interface{}{"type": ZeroDisplacementType}, bfOut["left"])
	_, err := d.Marshal()
	require.NoError(t, err)

	_, err = f.PatchField("middle")
	assert.Error(t, err)

	{ // Missing and unknown patches
		g := NewPointVectorField("pointD", types.DimLength, m)
		assert.Error(t, g.ReadBoundaryField(map[string]dictionary.Dictionary{"left": bf["left"]}))
		bad := map[string]dictionary.Dictionary{"left": bf["left"], "right": bf["right"], "middle": bf["left"]}
		assert.Error(t, g.ReadBoundaryField(bad))
		bad = map[string]dictionary.Dictionary{"left": bf["left"], "right": dict(t, "right", "type: fixedValue")}
		err = g.ReadBoundaryField(bad)
		assert.True(t, dictionary.IsConfigurationError(err))
		assert.Nil(t, g.Boundary[0])
	}
	{ // Clone is independent
		fc := f.Clone("pointD_0")
		fc.Internal.Set(3, 1, 9)
		assert.Equal(t, 1., f.Internal.At(3, 1))
		for i, pf := range fc.Boundary {
			assert.Equal(t, fc, pf.Field())
			assert.Equal(t, f.Boundary[i].Type(), pf.Type())
		}
	}
	{ // Topology change on the right patch
		mpm, err := m.InsertPoints("right", []mesh.PointInsertion{{From: []int{1}, Weights: []float64{1}}})
		require.NoError(t, err)
		f.Map(mpm)
		r, _ := f.Internal.Dims()
		assert.Equal(t, 5, r)
		assert.Equal(t, []float64{0, 1, 0}, f.Internal.RawRowView(4))
		pf, _ := f.PatchField("right")
		r, _ = pf.Values().Dims()
		assert.Equal(t, 3, r)
		f.CorrectBoundaryConditions(1)
		assert.Equal(t, []float64{0, 1, 0}, f.Internal.RawRowView(4))
	}
}
