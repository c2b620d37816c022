package layout

import (
	"fmt"
	"math"
	"strings"
)

// ParseUnit accepts "mm" or "in" in any case.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mm", "":
		return Millimeter, nil
	case "in":
		return Inch, nil
	}
	return Millimeter, fmt.Errorf("unknown unit %q", s)
}

// Toggle returns the other unit.
func (u Unit) Toggle() Unit {
	if u == Inch {
		return Millimeter
	}
	return Inch
}

// ToBase converts v from unit u to millimetres.
func ToBase(v float64, u Unit) float64 {
	if u == Inch {
		return v * MMPerInch
	}
	return v
}

// FromBase converts millimetres to unit u.
func FromBase(v float64, u Unit) float64 {
	if u == Inch {
		return v / MMPerInch
	}
	return v
}

const epsilon = 0x1p-52

// Round rounds v to digits decimal places, half away from zero. A tiny
// epsilon pushes values like 1.005 away from zero before scaling.
func Round(v float64, digits int) float64 {
	p := math.Pow(10, float64(digits))
	return math.Round((v+math.Copysign(epsilon, v))*p) / p
}
