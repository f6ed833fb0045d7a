package bcs

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/notargets/gopointbc/types"
)

func TestProfileEndpoints(t *testing.T) {
	uMaxes := []types.Vector{
		{X: 0, Y: 0.01, Z: 0},
		{X: -1.5, Y: 2, Z: 1e-6},
		{X: 3, Y: 3, Z: 3},
	}
	for _, tEnd := range []float64{1e-3, 0.7, 1, 250} {
		for _, uMax := range uMaxes {
			p := Profile{UMax: uMax, TEnd: tEnd}
			assert.Equal(t, types.Zero, p.Displacement(0))
			assert.Equal(t, types.Zero, p.Displacement(-tEnd))
			assert.Equal(t, uMax, p.Displacement(tEnd))
			assert.Equal(t, uMax, p.Displacement(1.5*tEnd))
			assert.Equal(t, uMax, p.Displacement(1e6*tEnd))
			assert.Equal(t, types.Zero, p.Velocity(0))
			assert.Equal(t, types.Zero, p.Velocity(2*tEnd))
		}
	}
}

func TestProfileMonotone(t *testing.T) {
	var (
		p     = Profile{UMax: types.Vector{X: 1, Y: 0.01, Z: 0}, TEnd: 2}
		N     = 1000
		prev  = p.Displacement(0)
		fPrev = p.Factor(0)
	)
	for i := 1; i <= N; i++ {
		ti := p.TEnd * float64(i) / float64(N)
		d := p.Displacement(ti)
		assert.GreaterOrEqual(t, d.X, prev.X)
		assert.GreaterOrEqual(t, d.Y, prev.Y)
		assert.Equal(t, 0., d.Z)
		f := p.Factor(ti)
		assert.True(t, f >= 0 && f <= 1)
		assert.GreaterOrEqual(t, f, fPrev)
		// Bounded by the maximum component wise
		assert.LessOrEqual(t, d.X, p.UMax.X)
		assert.LessOrEqual(t, d.Y, p.UMax.Y)
		prev, fPrev = d, f
	}
}

func TestProfileRoundOff(t *testing.T) {
	p := Profile{UMax: types.Vector{Y: 0.01}, TEnd: 1}
	var maxDrop float64
	for _, t0 := range []float64{1e-6, 0.1, 0.37, 0.5, 0.8, 0.999999} {
		var (
			ti    = t0
			fPrev = p.Factor(ti)
		)
		for i := 0; i < 5000; i++ {
			ti = math.Nextafter(ti, 2)
			f := p.Factor(ti)
			assert.True(t, f >= 0 && f <= 1, "t = %v", ti)
			maxDrop = math.Max(maxDrop, fPrev-f)
			fPrev = f
		}
	}
	assert.LessOrEqual(t, maxDrop, 1e-14)
	// Just below the end time the factor never passes 1
	ti := p.TEnd
	for i := 0; i < 5000; i++ {
		ti = math.Nextafter(ti, 0)
		assert.LessOrEqual(t, p.Factor(ti), 1.)
	}
}

func TestProfileSmoothEnds(t *testing.T) {
	p := Profile{UMax: types.Vector{Y: 0.01}, TEnd: 1}
	for _, h := range []float64{1e-3, 1e-4, 1e-5} {
		startSlope := (p.Factor(h) - p.Factor(0)) / h
		endSlope := (p.Factor(p.TEnd) - p.Factor(p.TEnd-h)) / h
		assert.InDelta(t, 0, startSlope, 1e-4, "h = %g", h)
		assert.InDelta(t, 0, endSlope, 1e-4, "h = %g", h)
	}
	// Analytic rate agrees with a central difference in the interior
	for _, ti := range []float64{0.1, 0.25, 0.5, 0.8, 0.95} {
		h := 1e-6
		fd := (p.Factor(ti+h) - p.Factor(ti-h)) / (2 * h)
		assert.True(t, scalar.EqualWithinAbsOrRel(fd, p.Rate(ti), 1e-7, 1e-6), "t = %g", ti)
		fd2 := (p.Rate(ti+h) - p.Rate(ti-h)) / (2 * h)
		assert.True(t, scalar.EqualWithinAbsOrRel(fd2, p.Curvature(ti), 1e-5, 1e-5), "t = %g", ti)
	}
	// Peak velocity at mid ramp: 30/16 of the mean rate
	assert.InDelta(t, 30./16., p.Rate(0.5), 1e-12)
	assert.InDelta(t, 0, p.Curvature(0.5), 1e-12)
	assert.Equal(t, 0., p.Curvature(0))
	assert.Equal(t, 0., p.Curvature(1))
}

func TestProfileScenario(t *testing.T) {
	p := Profile{UMax: types.Vector{X: 0, Y: 0.01, Z: 0}, TEnd: 1}
	assert.Equal(t, types.Vector{}, p.Displacement(0))
	mid := p.Displacement(0.5)
	assert.True(t, mid.Y > 0 && mid.Y < 0.01)
	assert.InDelta(t, 0.005, mid.Y, 1e-15)
	assert.Equal(t, 0., mid.X)
	assert.Equal(t, 0., mid.Z)
	assert.Equal(t, types.Vector{Y: 0.01}, p.Displacement(1))
	assert.Equal(t, types.Vector{Y: 0.01}, p.Displacement(2))
	assert.False(t, math.IsNaN(p.Displacement(math.Inf(1)).Y))
}
