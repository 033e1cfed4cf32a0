// Package unit provides small value types for physical quantities: a
// dimension tag, a unit (symbol plus scale to the dimension's canonical
// unit), and arrays of values carrying a unit.
//
// Quantities do not embed unit semantics in raw numbers. Validation is a
// dimension-equality check; conversion scales magnitudes into the target
// unit. Canonical units per dimension: meter, second, hertz, radian.
package unit

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Dimension is the physical category of a quantity.
type Dimension int

const (
	Dimensionless Dimension = iota
	Length
	Time
	Frequency
	Angle
)

// String returns the dimension name for error messages.
func (d Dimension) String() string {
	switch d {
	case Dimensionless:
		return "dimensionless"
	case Length:
		return "length"
	case Time:
		return "time"
	case Frequency:
		return "frequency"
	case Angle:
		return "angle"
	default:
		return fmt.Sprintf("dimension(%d)", int(d))
	}
}

// Unit is a named scale within one dimension. Factor converts a magnitude
// expressed in this unit into the dimension's canonical unit.
type Unit struct {
	Symbol string
	Dim    Dimension
	Factor float64
}

var (
	Scalar = Unit{Symbol: "", Dim: Dimensionless, Factor: 1}

	Meter      = Unit{Symbol: "m", Dim: Length, Factor: 1}
	Micrometer = Unit{Symbol: "um", Dim: Length, Factor: 1e-6}
	Nanometer  = Unit{Symbol: "nm", Dim: Length, Factor: 1e-9}

	Second      = Unit{Symbol: "s", Dim: Time, Factor: 1}
	Millisecond = Unit{Symbol: "ms", Dim: Time, Factor: 1e-3}
	Microsecond = Unit{Symbol: "us", Dim: Time, Factor: 1e-6}
	Nanosecond  = Unit{Symbol: "ns", Dim: Time, Factor: 1e-9}

	Hertz     = Unit{Symbol: "Hz", Dim: Frequency, Factor: 1}
	Kilohertz = Unit{Symbol: "kHz", Dim: Frequency, Factor: 1e3}
	Megahertz = Unit{Symbol: "MHz", Dim: Frequency, Factor: 1e6}
	Gigahertz = Unit{Symbol: "GHz", Dim: Frequency, Factor: 1e9}
	// RadPerSecond converts 1:1 with Hertz: the angular marker is
	// bookkeeping, not a scale change.
	RadPerSecond = Unit{Symbol: "rad/s", Dim: Frequency, Factor: 1}

	Radian = Unit{Symbol: "rad", Dim: Angle, Factor: 1}
	Degree = Unit{Symbol: "deg", Dim: Angle, Factor: math.Pi / 180}
)

// unitsBySymbol maps parseable symbols to units. Micro units accept both
// the ASCII and the µ spelling.
var unitsBySymbol = map[string]Unit{
	"":      Scalar,
	"m":     Meter,
	"um":    Micrometer,
	"µm":    Micrometer,
	"nm":    Nanometer,
	"s":     Second,
	"ms":    Millisecond,
	"us":    Microsecond,
	"µs":    Microsecond,
	"ns":    Nanosecond,
	"Hz":    Hertz,
	"kHz":   Kilohertz,
	"MHz":   Megahertz,
	"GHz":   Gigahertz,
	"rad/s": RadPerSecond,
	"rad":   Radian,
	"deg":   Degree,
}

// Parse resolves a unit symbol. The empty string is the dimensionless unit.
func Parse(symbol string) (Unit, error) {
	u, ok := unitsBySymbol[symbol]
	if !ok {
		return Unit{}, fmt.Errorf("unknown unit %q", symbol)
	}
	return u, nil
}

// DimensionError reports a quantity whose physical dimension does not match
// the role it was supplied for.
type DimensionError struct {
	Role string
	Want Dimension
	Got  Dimension
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s must carry a %s unit, got %s", e.Role, e.Want, e.Got)
}

// Quantity is an array of magnitudes carrying a single unit.
type Quantity struct {
	Values []float64
	Unit   Unit
}

// New builds a quantity from magnitudes and a unit.
func New(values []float64, u Unit) Quantity {
	return Quantity{Values: values, Unit: u}
}

// Dimension returns the physical dimension of the quantity.
func (q Quantity) Dimension() Dimension {
	return q.Unit.Dim
}

// CheckDimension verifies the quantity's dimension against the expected one
// for the named role. Dimensionless quantities are accepted for Angle roles
// (a phase may be supplied as plain numbers).
func (q Quantity) CheckDimension(role string, want Dimension) error {
	got := q.Unit.Dim
	if got == want {
		return nil
	}
	if want == Angle && got == Dimensionless {
		return nil
	}
	return &DimensionError{Role: role, Want: want, Got: got}
}

// To converts the quantity into the target unit. The magnitudes are copied;
// the receiver is unchanged. Converting across dimensions is an error.
func (q Quantity) To(target Unit) (Quantity, error) {
	if q.Unit.Dim != target.Dim {
		return Quantity{}, fmt.Errorf("cannot convert %s to %s", q.Unit.Dim, target.Dim)
	}
	out := make([]float64, len(q.Values))
	floats.ScaleTo(out, q.Unit.Factor/target.Factor, q.Values)
	return Quantity{Values: out, Unit: target}, nil
}

// Coordinates is a set of N spatial positions, each 2D or 3D, carrying a
// length unit.
type Coordinates struct {
	Positions [][]float64
	Unit      Unit
}

// NewCoordinates builds a coordinate set from positions and a unit.
func NewCoordinates(positions [][]float64, u Unit) Coordinates {
	return Coordinates{Positions: positions, Unit: u}
}

// Len returns the number of positions.
func (c Coordinates) Len() int {
	return len(c.Positions)
}

// CheckDimension verifies the coordinate set carries a length unit and that
// every position has the same spatial dimensionality, 2 or 3.
func (c Coordinates) CheckDimension(role string) error {
	if c.Unit.Dim != Length {
		return &DimensionError{Role: role, Want: Length, Got: c.Unit.Dim}
	}
	for i, p := range c.Positions {
		if len(p) != 2 && len(p) != 3 {
			return fmt.Errorf("%s[%d] has %d coordinates, want 2 or 3", role, i, len(p))
		}
		if len(p) != len(c.Positions[0]) {
			return fmt.Errorf("%s mixes 2D and 3D positions", role)
		}
	}
	return nil
}

// To converts every position into the target length unit.
func (c Coordinates) To(target Unit) (Coordinates, error) {
	if c.Unit.Dim != target.Dim {
		return Coordinates{}, fmt.Errorf("cannot convert %s to %s", c.Unit.Dim, target.Dim)
	}
	scale := c.Unit.Factor / target.Factor
	out := make([][]float64, len(c.Positions))
	for i, p := range c.Positions {
		out[i] = make([]float64, len(p))
		floats.ScaleTo(out[i], scale, p)
	}
	return Coordinates{Positions: out, Unit: target}, nil
}
