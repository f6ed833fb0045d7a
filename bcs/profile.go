package bcs

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/notargets/gopointbc/types"
	"github.com/notargets/gopointbc/utils"
)

/*
Profile ramps a displacement from zero to UMax over [0, TEnd] and holds it afterwards.

With τ = clamp(t/TEnd, 0, 1) the ramp is the quintic smootherstep

	f(τ)  = 10τ³ - 15τ⁴ + 6τ⁵
	f'(τ) = 30τ²(1-τ)²        bell shaped, zero at both ends
	f"(τ) = 60τ(1-τ)(1-2τ)    zero at both ends

so the prescribed velocity rises and falls smoothly and the acceleration has no jump at start or finish.
*/
type Profile struct {
	UMax types.Vector
	TEnd float64
}

func (p Profile) tau(t float64) float64 {
	return utils.Clamp(t/p.TEnd, 0, 1)
}

/*
Factor is f in [0,1], exactly 0 for t <= 0 and exactly 1 for t >= TEnd. Between the ends f is
non decreasing up to round off: two neighbouring float64 times can give values that drop by a few
units in the last place (about 1e-15), never more.
*/
func (p Profile) Factor(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= p.TEnd:
		return 1
	}
	tau := p.tau(t)
	return utils.Clamp(utils.POW(tau, 3)*(10-15*tau+6*utils.POW(tau, 2)), 0, 1)
}

// Rate is df/dt
func (p Profile) Rate(t float64) float64 {
	if t <= 0 || t >= p.TEnd {
		return 0
	}
	tau := p.tau(t)
	return 30 * utils.POW(tau*(1-tau), 2) / p.TEnd
}

// Curvature is d²f/dt²
func (p Profile) Curvature(t float64) float64 {
	if t <= 0 || t >= p.TEnd {
		return 0
	}
	tau := p.tau(t)
	return 60 * tau * (1 - tau) * (1 - 2*tau) / utils.POW(p.TEnd, 2)
}

func (p Profile) Displacement(t float64) types.Vector {
	f := p.Factor(t)
	if f == 1 {
		return p.UMax
	}
	return r3.Scale(f, p.UMax)
}

func (p Profile) Velocity(t float64) types.Vector {
	return r3.Scale(p.Rate(t), p.UMax)
}

func (p Profile) Acceleration(t float64) types.Vector {
	return r3.Scale(p.Curvature(t), p.UMax)
}
