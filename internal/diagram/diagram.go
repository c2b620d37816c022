// Package diagram rasterizes a computed handle layout into a printable
// drill strip: a baseline spanning the drawer face with the two hole
// centres marked at their proportional positions.
package diagram

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"handlecalc/internal/layout"
)

// Filename is the suggested name for an exported strip.
const Filename = "drawer_handle_drill_strip.png"

// Logical canvas geometry, multiplied by Options.Scale when drawing.
const (
	LogicalWidth  = 1200
	LogicalHeight = 220

	marginX     = 20
	baselineY   = 120
	holeRadius  = 6
	titleY      = 30
	paramsY     = 52
	titleSize   = 16
	labelSize   = 14
	edgeLift    = 10
	rightInset  = 120
	labelDrop   = 28
	labelShift  = 20
	strokeWidth = 2
)

// DefaultScale matches a crisp print at roughly 300 dpi.
const DefaultScale = 3

type Options struct {
	Scale int
}

func (o Options) scale() int {
	if o.Scale < 1 {
		return DefaultScale
	}
	return o.Scale
}

// Bounds returns the pixel rectangle of a strip rendered with o.
func (o Options) Bounds() image.Rectangle {
	s := o.scale()
	return image.Rect(0, 0, LogicalWidth*s, LogicalHeight*s)
}

// HoleX maps a position along the drawer (0 = left edge, 1 = right edge)
// to a pixel column on the baseline.
func (o Options) HoleX(ratio float64) float64 {
	s := float64(o.scale())
	left := marginX * s
	length := float64(LogicalWidth)*s - 2*left
	return left + ratio*length
}

// BaselineY is the pixel row of the baseline.
func (o Options) BaselineY() int { return baselineY * o.scale() }

var regular = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(goregular.TTF)
})

func newFace(size float64) (font.Face, error) {
	f, err := regular()
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
}

// Render draws the strip for r.
func Render(r layout.Result, o Options) (*image.RGBA, error) {
	s := o.scale()
	img := image.NewRGBA(o.Bounds())
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	ink := image.NewUniform(color.Black)

	title, err := newFace(float64(titleSize * s))
	if err != nil {
		return nil, err
	}
	defer title.Close()
	label, err := newFace(float64(labelSize * s))
	if err != nil {
		return nil, err
	}
	defer label.Close()

	text := func(face font.Face, str string, x, y int) {
		d := font.Drawer{Dst: img, Src: ink, Face: face, Dot: fixed.P(x, y)}
		d.DrawString(str)
	}
	text(title, "Drawer Handle Drill Strip", marginX*s, titleY*s)
	text(label, layout.Parameters(r), marginX*s, paramsY*s)

	y := o.BaselineY()
	left := marginX * s
	right := img.Bounds().Dx() - marginX*s
	draw.Draw(img, image.Rect(left, y-strokeWidth/2, right, y+strokeWidth-strokeWidth/2), ink, image.Point{}, draw.Over)

	text(label, "LEFT EDGE", left, y-edgeLift*s)
	text(label, "RIGHT EDGE", right-rightInset*s, y-edgeLift*s)

	x1 := o.HoleX(r.LeftRatio())
	x2 := o.HoleX(r.RightRatio())
	z := vector.NewRasterizer(img.Bounds().Dx(), img.Bounds().Dy())
	circle(z, x1, float64(y), float64(holeRadius*s))
	circle(z, x2, float64(y), float64(holeRadius*s))
	z.Draw(img, img.Bounds(), ink, image.Point{})

	text(label, "x1 "+r.Quantity(r.Left), int(math.Round(x1))-labelShift*s, y+labelDrop*s)
	text(label, "x2 "+r.Quantity(r.Right), int(math.Round(x2))-labelShift*s, y+labelDrop*s)
	return img, nil
}

// kappa places cubic control points so four curves approximate a circle.
const kappa = 0.5522847498

func circle(z *vector.Rasterizer, cx, cy, r float64) {
	k := r * kappa
	p := func(v float64) float32 { return float32(v) }
	z.MoveTo(p(cx+r), p(cy))
	z.CubeTo(p(cx+r), p(cy+k), p(cx+k), p(cy+r), p(cx), p(cy+r))
	z.CubeTo(p(cx-k), p(cy+r), p(cx-r), p(cy+k), p(cx-r), p(cy))
	z.CubeTo(p(cx-r), p(cy-k), p(cx-k), p(cy-r), p(cx), p(cy-r))
	z.CubeTo(p(cx+k), p(cy-r), p(cx+r), p(cy-k), p(cx+r), p(cy))
	z.ClosePath()
}

// Encode renders r and writes it to w as PNG.
func Encode(w io.Writer, r layout.Result, o Options) error {
	img, err := Render(r, o)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// WriteFile saves the strip as Filename inside dir and returns its path.
func WriteFile(dir string, r layout.Result, o Options) (string, error) {
	if dir == "" {
		dir = "."
	}
	path := filepath.Join(dir, Filename)
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	if err := Encode(f, r, o); err != nil {
		f.Close()
		return "", fmt.Errorf("encode png: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return path, nil
}
