package layout

// Unit is a display unit for lengths.
type Unit int

const (
	Millimeter Unit = iota
	Inch
)

// MMPerInch is the fixed ratio between the base unit and inches.
const MMPerInch = 25.4

func (u Unit) String() string {
	if u == Inch {
		return "in"
	}
	return "mm"
}

// RawInput is what the form hands over: strings as typed plus the selected unit.
type RawInput struct {
	Width     string
	Spacing   string
	Unit      string
	Precision string
}

// Input is a parsed measurement request in the display unit.
type Input struct {
	Width     float64
	Spacing   float64
	Unit      Unit
	Precision int
}

// Geometry holds the computed layout in millimetres.
type Geometry struct {
	Width   float64
	Spacing float64
	Margin  float64
	Left    float64
	Right   float64
}

// Result is the layout in the display unit, rounded to Precision digits.
// Width and Spacing echo the input values.
type Result struct {
	Width     float64
	Spacing   float64
	Margin    float64
	Left      float64
	Right     float64
	Unit      Unit
	Precision int

	// Base keeps the unrounded millimetre values for proportional drawing.
	Base Geometry
}

// LeftRatio is the left hole position as a fraction of the drawer width.
func (r Result) LeftRatio() float64 { return ratio(r.Base.Left, r.Base.Width) }

// RightRatio is the right hole position as a fraction of the drawer width.
func (r Result) RightRatio() float64 { return ratio(r.Base.Right, r.Base.Width) }

func ratio(v, w float64) float64 {
	if w <= 0 {
		return 0
	}
	return v / w
}
