package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// Format prints v with exactly precision decimals.
func Format(v float64, precision int) string {
	if precision < 0 {
		precision = 0
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// Quantity formats v with the result's precision and unit label.
func (r Result) Quantity(v float64) string {
	return Format(v, r.Precision) + " " + r.Unit.String()
}

// Headline is the one-line margin statement shown above the table.
func Headline(r Result) string {
	return "Edge-to-hole distance (both sides): " + r.Quantity(r.Margin)
}

// Row is one line of the results table.
type Row struct {
	Point    string
	FromLeft string
}

// Rows maps each hole to its offset from the left edge.
func Rows(r Result) []Row {
	return []Row{
		{Point: "Left hole centre (x₁)", FromLeft: r.Quantity(r.Left)},
		{Point: "Right hole centre (x₂)", FromLeft: r.Quantity(r.Right)},
	}
}

// Parameters is the single-line W/S/m summary printed on the drill strip.
func Parameters(r Result) string {
	return fmt.Sprintf("W=%s, S=%s, Edge-to-hole m=%s",
		r.Quantity(r.Width), r.Quantity(r.Spacing), r.Quantity(r.Margin))
}

// Summary is the multi-line text placed on the clipboard.
func Summary(r Result) string {
	lines := []string{
		"Drawer Handle (centred)",
		fmt.Sprintf("W=%s, S=%s", r.Quantity(r.Width), r.Quantity(r.Spacing)),
		"Edge-to-hole distance m = " + r.Quantity(r.Margin),
		"Left hole x1 = " + r.Quantity(r.Left),
		"Right hole x2 = " + r.Quantity(r.Right),
	}
	return strings.Join(lines, "\n")
}
