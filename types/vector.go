package types

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vector is a three component point value, displacement, velocity or momentum
type Vector = r3.Vec

var Zero = Vector{}

func IsFinite(v Vector) bool {
	for _, x := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

/*
ParseVector accepts the shapes a vector takes after a YAML deck is decoded:
  - a list of three numbers:       [0, 0.01, 0]
  - a parenthesised word list:      "(0 0.01 0)"
  - a bare word list:               "0 0.01 0"
*/
func ParseVector(vI interface{}) (v Vector, err error) {
	var c []float64
	switch val := vI.(type) {
	case Vector:
		return val, nil
	case [3]float64:
		c = val[:]
	case []float64:
		c = val
	case []interface{}:
		c = make([]float64, len(val))
		for i, x := range val {
			if c[i], err = ParseScalar(x); err != nil {
				return
			}
		}
	case string:
		s := strings.TrimSpace(val)
		s = strings.TrimSuffix(strings.TrimPrefix(s, "("), ")")
		for _, tok := range strings.FieldsFunc(s, func(r rune) bool { return r == ' ' || r == ',' || r == '\t' }) {
			var x float64
			if x, err = strconv.ParseFloat(tok, 64); err != nil {
				err = fmt.Errorf("vector component %q is not a number", tok)
				return
			}
			c = append(c, x)
		}
	default:
		err = fmt.Errorf("cannot read a vector from %T", vI)
		return
	}
	if len(c) != 3 {
		err = fmt.Errorf("vector needs 3 components, have %d", len(c))
		return
	}
	v = Vector{X: c[0], Y: c[1], Z: c[2]}
	if !IsFinite(v) {
		err = fmt.Errorf("vector %s is not finite", FormatVector(v))
	}
	return
}

func ParseScalar(xI interface{}) (x float64, err error) {
	switch val := xI.(type) {
	case float64:
		x = val
	case float32:
		x = float64(val)
	case int:
		x = float64(val)
	case int64:
		x = float64(val)
	case string:
		if x, err = strconv.ParseFloat(strings.TrimSpace(val), 64); err != nil {
			err = fmt.Errorf("%q is not a number", val)
			return
		}
	default:
		err = fmt.Errorf("cannot read a scalar from %T", xI)
		return
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		err = fmt.Errorf("scalar %v is not finite", x)
	}
	return
}

// FormatVector writes v in the parenthesised form read back by ParseVector
func FormatVector(v Vector) string {
	return "(" + strconv.FormatFloat(v.X, 'g', -1, 64) + " " +
		strconv.FormatFloat(v.Y, 'g', -1, 64) + " " +
		strconv.FormatFloat(v.Z, 'g', -1, 64) + ")"
}
