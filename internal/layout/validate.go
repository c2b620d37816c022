package layout

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxPrecision bounds the number of decimal places a result can carry.
const MaxPrecision = 10

var (
	// ErrInvalidMeasurement reports a width or spacing that is not a usable number.
	ErrInvalidMeasurement = errors.New("invalid measurement")
	// ErrSpacingExceedsWidth reports hole spacing wider than the drawer.
	ErrSpacingExceedsWidth = errors.New("spacing exceeds width")
)

// Guidance returns the text shown in place of results for a calculation error.
func Guidance(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrSpacingExceedsWidth):
		return "Hole spacing S cannot exceed drawer width W."
	case errors.Is(err, ErrInvalidMeasurement):
		return "Please enter a valid drawer width and hole spacing (≥ 0)."
	}
	return err.Error()
}

// Parse turns raw form values into a validated Input. defPrecision is used
// when the precision field is empty.
func Parse(raw RawInput, defPrecision int) (Input, error) {
	u, err := ParseUnit(raw.Unit)
	if err != nil {
		return Input{}, fmt.Errorf("%w: %v", ErrInvalidMeasurement, err)
	}
	w, err := parseLength("width", raw.Width)
	if err != nil {
		return Input{}, err
	}
	s, err := parseLength("spacing", raw.Spacing)
	if err != nil {
		return Input{}, err
	}
	p := defPrecision
	if ps := strings.TrimSpace(raw.Precision); ps != "" {
		p, err = strconv.Atoi(ps)
		if err != nil {
			return Input{}, fmt.Errorf("%w: precision %q is not an integer", ErrInvalidMeasurement, raw.Precision)
		}
	}
	in := Input{Width: w, Spacing: s, Unit: u, Precision: p}
	if err := Validate(in); err != nil {
		return Input{}, err
	}
	return in, nil
}

func parseLength(name, s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("%w: %s is empty", ErrInvalidMeasurement, name)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", ErrInvalidMeasurement, name, s)
	}
	return v, nil
}

// Validate checks an Input before any geometry is computed.
func Validate(in Input) error {
	if !finite(in.Width) || in.Width <= 0 {
		return fmt.Errorf("%w: width must be a finite number > 0", ErrInvalidMeasurement)
	}
	if !finite(in.Spacing) || in.Spacing < 0 {
		return fmt.Errorf("%w: spacing must be a finite number >= 0", ErrInvalidMeasurement)
	}
	if in.Precision < 0 || in.Precision > MaxPrecision {
		return fmt.Errorf("%w: precision must be between 0 and %d", ErrInvalidMeasurement, MaxPrecision)
	}
	if ToBase(in.Spacing, in.Unit) > ToBase(in.Width, in.Unit) {
		return fmt.Errorf("%w: S=%g > W=%g %s", ErrSpacingExceedsWidth, in.Spacing, in.Width, in.Unit)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
