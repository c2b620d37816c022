package tui

import (
	"math"
	"strings"

	table "github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"handlecalc/internal/layout"
)

// Renderer turns a result into terminal output. It is the only place the
// presentation of a result is decided, so layout stays testable on its own.
type Renderer interface {
	RenderSummary(r layout.Result) string
	RenderDiagram(r layout.Result, width int) string
}

type termRenderer struct{}

func (termRenderer) RenderSummary(r layout.Result) string {
	rows := layout.Rows(r)
	trows := make([]table.Row, len(rows))
	for i, row := range rows {
		trows[i] = table.Row{row.Point, row.FromLeft}
	}
	st := table.DefaultStyles()
	st.Selected = lipgloss.NewStyle()
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Point", Width: 24},
			{Title: "From left edge", Width: 16},
		}),
		table.WithRows(trows),
		table.WithHeight(len(trows)+3),
		table.WithStyles(st),
	)
	headline := strongStyle.Render("Edge-to-hole distance (both sides):") + " " + r.Quantity(r.Margin)
	return lipgloss.JoinVertical(lipgloss.Left, headline, "", t.View())
}

// RenderDiagram draws a braille drill strip: edge labels, the baseline with
// both holes, and the hole offsets beneath their markers.
func (termRenderer) RenderDiagram(r layout.Result, width int) string {
	w := max(24, width)
	br := newBrailleBuf(w, 2)
	line := br.microW() - 1
	x1 := int(math.Round(r.LeftRatio() * float64(line)))
	x2 := int(math.Round(r.RightRatio() * float64(line)))
	br.hline(0, line, 3)
	br.disc(x1, 3, 2)
	br.disc(x2, 3, 2)

	edges := blank(w)
	overlay(edges, 0, "LEFT EDGE")
	overlay(edges, w, "RIGHT EDGE")

	labels := blank(w)
	l1 := "x₁ " + r.Quantity(r.Left)
	l2 := "x₂ " + r.Quantity(r.Right)
	c1 := x1/2 - len([]rune(l1))/2
	c2 := x2/2 - len([]rune(l2))/2
	// keep the right label clear of the left one on narrow strips
	c2 = max(c2, c1+len([]rune(l1))+1)
	overlay(labels, c1, l1)
	overlay(labels, c2, l2)

	out := []string{dimStyle.Render(string(edges))}
	out = append(out, br.toLines()...)
	out = append(out, string(labels))
	return strings.Join(out, "\n")
}
