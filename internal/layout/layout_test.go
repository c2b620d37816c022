package layout

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateMillimetres(t *testing.T) {
	r, err := Calculate(RawInput{Width: "600", Spacing: "320", Unit: "mm", Precision: "1"}, 0)
	require.NoError(t, err)

	assert.Equal(t, 140.0, r.Margin)
	assert.Equal(t, 140.0, r.Left)
	assert.Equal(t, 460.0, r.Right)
	assert.Equal(t, Millimeter, r.Unit)
	assert.Equal(t, "140.0 mm", r.Quantity(r.Margin))
	assert.Equal(t, "460.0 mm", r.Quantity(r.Right))
}

func TestCalculateInches(t *testing.T) {
	r, err := Calculate(RawInput{Width: "24", Spacing: "10", Unit: "in", Precision: "2"}, 0)
	require.NoError(t, err)

	assert.InDelta(t, 7.0, r.Margin, 1e-9)
	assert.InDelta(t, 7.0, r.Left, 1e-9)
	assert.InDelta(t, 17.0, r.Right, 1e-9)
	assert.Equal(t, "7.00 in", r.Quantity(r.Margin))
	assert.Equal(t, "17.00 in", r.Quantity(r.Right))
	assert.InDelta(t, 24*MMPerInch, r.Base.Width, 1e-9)
}

func TestCalculateDefaultPrecision(t *testing.T) {
	r, err := Calculate(RawInput{Width: "500", Spacing: "128", Unit: "mm"}, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Precision)
	assert.Equal(t, 186.0, r.Margin)
}

func TestCalculateErrors(t *testing.T) {
	cases := []struct {
		name string
		raw  RawInput
		want error
	}{
		{"zero width", RawInput{Width: "0", Spacing: "0"}, ErrInvalidMeasurement},
		{"negative spacing", RawInput{Width: "300", Spacing: "-1"}, ErrInvalidMeasurement},
		{"spacing too wide", RawInput{Width: "100", Spacing: "150"}, ErrSpacingExceedsWidth},
		{"empty width", RawInput{Width: "", Spacing: "10"}, ErrInvalidMeasurement},
		{"garbage spacing", RawInput{Width: "100", Spacing: "abc"}, ErrInvalidMeasurement},
		{"infinite width", RawInput{Width: "Inf", Spacing: "10"}, ErrInvalidMeasurement},
		{"nan spacing", RawInput{Width: "100", Spacing: "NaN"}, ErrInvalidMeasurement},
		{"bad precision", RawInput{Width: "100", Spacing: "10", Precision: "x"}, ErrInvalidMeasurement},
		{"precision too large", RawInput{Width: "100", Spacing: "10", Precision: "11"}, ErrInvalidMeasurement},
		{"bad unit", RawInput{Width: "100", Spacing: "10", Unit: "cm"}, ErrInvalidMeasurement},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := Calculate(tc.raw, 1)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
			assert.Equal(t, Result{}, r)
		})
	}
}

func TestSpacingEqualToWidthIsValid(t *testing.T) {
	r, err := Calculate(RawInput{Width: "128", Spacing: "128", Precision: "0"}, 0)
	require.NoError(t, err)
	assert.Equal(t, 0.0, r.Margin)
	assert.Equal(t, 128.0, r.Right)
}

func TestGuidance(t *testing.T) {
	_, err := Calculate(RawInput{Width: "100", Spacing: "150"}, 1)
	assert.Equal(t, "Hole spacing S cannot exceed drawer width W.", Guidance(err))

	_, err = Calculate(RawInput{Width: "-1", Spacing: "0"}, 1)
	assert.Equal(t, "Please enter a valid drawer width and hole spacing (≥ 0).", Guidance(err))

	assert.Empty(t, Guidance(nil))
}

func TestLayoutInvariants(t *testing.T) {
	widths := []float64{1, 12.7, 100, 333.3, 600, 1234.56}
	fractions := []float64{0, 0.1, 0.33, 0.5, 0.77, 1}
	for _, u := range []Unit{Millimeter, Inch} {
		for _, w := range widths {
			for _, f := range fractions {
				for d := 0; d <= 4; d++ {
					r, err := Compute(Input{Width: w, Spacing: w * f, Unit: u, Precision: d})
					require.NoError(t, err)
					tol := math.Pow(10, -float64(d)) + 1e-9
					assert.InDelta(t, r.Width, r.Left+r.Right, tol, "w=%g f=%g d=%d", w, f, d)
					assert.InDelta(t, r.Margin, r.Left, tol)
					assert.InDelta(t, r.Width-r.Margin, r.Right, tol)
				}
			}
		}
	}
}

func TestUnitRoundTrip(t *testing.T) {
	samples := []float64{-1000, -1, 0, 0.001, 1, 25.4, 96, 1e6}
	for _, u := range []Unit{Millimeter, Inch} {
		for _, v := range samples {
			assert.InDelta(t, v, FromBase(ToBase(v, u), u), 1e-9*math.Max(1, math.Abs(v)))
		}
	}
	assert.Equal(t, 25.4, ToBase(1, Inch))
	assert.Equal(t, 1.0, FromBase(25.4, Inch))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 1.01, Round(1.005, 2))
	assert.Equal(t, 2.0, Round(1.5, 0))
	assert.Equal(t, -2.0, Round(-1.5, 0))
	assert.Equal(t, 0.1, Round(0.05, 1))

	for _, v := range []float64{-3.14159, 0, 0.125, 1.005, 2.675, 140.04999, 1e5 / 3} {
		for d := 0; d <= 6; d++ {
			once := Round(v, d)
			assert.Equal(t, once, Round(once, d), "v=%g d=%d", v, d)
		}
	}
}

func TestParseUnit(t *testing.T) {
	u, err := ParseUnit(" IN ")
	require.NoError(t, err)
	assert.Equal(t, Inch, u)
	assert.Equal(t, Millimeter, u.Toggle())

	_, err = ParseUnit("ft")
	assert.Error(t, err)
}

func TestSummary(t *testing.T) {
	r, err := Calculate(RawInput{Width: "600", Spacing: "320", Unit: "mm", Precision: "1"}, 0)
	require.NoError(t, err)

	want := "Drawer Handle (centred)\n" +
		"W=600.0 mm, S=320.0 mm\n" +
		"Edge-to-hole distance m = 140.0 mm\n" +
		"Left hole x1 = 140.0 mm\n" +
		"Right hole x2 = 460.0 mm"
	assert.Equal(t, want, Summary(r))
	assert.Equal(t, "Edge-to-hole distance (both sides): 140.0 mm", Headline(r))
	assert.Equal(t, "W=600.0 mm, S=320.0 mm, Edge-to-hole m=140.0 mm", Parameters(r))

	rows := Rows(r)
	require.Len(t, rows, 2)
	assert.Equal(t, "140.0 mm", rows[0].FromLeft)
	assert.Equal(t, "460.0 mm", rows[1].FromLeft)
}

func TestRatios(t *testing.T) {
	r, err := Compute(Input{Width: 600, Spacing: 320, Unit: Millimeter, Precision: 1})
	require.NoError(t, err)
	assert.InDelta(t, 140.0/600, r.LeftRatio(), 1e-12)
	assert.InDelta(t, 460.0/600, r.RightRatio(), 1e-12)
	assert.Equal(t, 0.0, Result{}.LeftRatio())
}
