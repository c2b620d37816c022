package layout

// Compute validates in and derives the symmetric hole layout.
func Compute(in Input) (Result, error) {
	if err := Validate(in); err != nil {
		return Result{}, err
	}
	w := ToBase(in.Width, in.Unit)
	s := ToBase(in.Spacing, in.Unit)
	g := Geometry{
		Width:   w,
		Spacing: s,
		Margin:  (w - s) / 2,
		Left:    w/2 - s/2,
		Right:   w/2 + s/2,
	}
	d := in.Precision
	return Result{
		Width:     Round(in.Width, d),
		Spacing:   Round(in.Spacing, d),
		Margin:    Round(FromBase(g.Margin, in.Unit), d),
		Left:      Round(FromBase(g.Left, in.Unit), d),
		Right:     Round(FromBase(g.Right, in.Unit), d),
		Unit:      in.Unit,
		Precision: d,
		Base:      g,
	}, nil
}

// Calculate parses raw form values and computes the layout in one step.
func Calculate(raw RawInput, defPrecision int) (Result, error) {
	in, err := Parse(raw, defPrecision)
	if err != nil {
		return Result{}, err
	}
	return Compute(in)
}
