package types

import "fmt"

// DimensionSet holds SI exponents: mass, length, time, temperature, moles, current, luminous intensity
type DimensionSet [7]int

var (
	DimLength   = DimensionSet{0, 1, 0, 0, 0, 0, 0}
	DimTime     = DimensionSet{0, 0, 1, 0, 0, 0, 0}
	DimDensity  = DimensionSet{1, -3, 0, 0, 0, 0, 0}
	DimVelocity = DimLength.Sub(DimTime)
	// Linear momentum per unit volume, rho*U
	DimMomentumDensity = DimDensity.Add(DimVelocity)
)

func (ds DimensionSet) String() string {
	return fmt.Sprintf("[%d %d %d %d %d %d %d]", ds[0], ds[1], ds[2], ds[3], ds[4], ds[5], ds[6])
}

func (ds DimensionSet) Add(o DimensionSet) (r DimensionSet) {
	for i := range ds {
		r[i] = ds[i] + o[i]
	}
	return
}

func (ds DimensionSet) Sub(o DimensionSet) (r DimensionSet) {
	for i := range ds {
		r[i] = ds[i] - o[i]
	}
	return
}

type DimensionedScalar struct {
	Name  string
	Dims  DimensionSet
	Value float64
}

func NewDimensionedScalar(name string, dims DimensionSet, value float64) DimensionedScalar {
	return DimensionedScalar{Name: name, Dims: dims, Value: value}
}

func (d DimensionedScalar) String() string {
	return fmt.Sprintf("%s %s %g", d.Name, d.Dims, d.Value)
}
