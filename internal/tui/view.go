package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	contentWidth := max(40, m.width)

	header := titleStyle.Render(" handlecalc ─ drawer handle hole layout ")
	header = lipgloss.NewStyle().Width(contentWidth).Render(header)

	mainWidth := contentWidth
	if m.showSidebar {
		mainWidth -= sidebarWidth + 1
	}
	// box border and padding take four columns
	inner := max(24, mainWidth-4)

	form := boxStyle.Width(mainWidth - 2).Render(m.renderForm())
	results := boxStyle.Width(mainWidth - 2).Render(m.renderResults(inner))
	mainCol := lipgloss.JoinVertical(lipgloss.Left, form, m.renderButtons(), results)

	var body string
	switch {
	case m.popup != "":
		box := popupStyle.MaxWidth(min(72, contentWidth)).Render(m.popup + "\n\n" + dimStyle.Render("esc to close"))
		body = lipgloss.Place(contentWidth, lipgloss.Height(mainCol), lipgloss.Center, lipgloss.Center, box)
	case m.showSidebar:
		sidebar := lipgloss.NewStyle().Width(sidebarWidth).Render(m.l.View())
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mainCol)
	default:
		body = mainCol
	}

	status := dimStyle.Render(" " + m.status + " ")
	footer := lipgloss.JoinVertical(lipgloss.Left, status, m.help.View(m.keys))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Render(ui)
}

func (m Model) renderForm() string {
	lines := make([]string, 0, fieldCount+1)
	for _, in := range m.inputs {
		lines = append(lines, in.View())
	}
	lines = append(lines, dimStyle.Render("Units: ")+strongStyle.Render(m.unit.String()))
	return strings.Join(lines, "\n")
}

func (m Model) renderButtons() string {
	button := func(label string, enabled bool) string {
		if !enabled {
			return buttonStyle.Foreground(baseDimFg).Render(label)
		}
		return buttonStyle.Render(label)
	}
	copyLabel := "Copy Summary"
	if m.copied {
		copyLabel = okStyle.Render("Copied ✓")
	}
	ready := m.sess.Ready()
	return lipgloss.JoinHorizontal(lipgloss.Top,
		button("Calculate", true), " ",
		button("Reset", true), " ",
		button(copyLabel, ready), " ",
		button("Save PNG", ready),
	)
}

func (m Model) renderResults(width int) string {
	r, ok := m.sess.Result()
	if !ok {
		return dimStyle.Render(m.guidance)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderer.RenderSummary(r),
		"",
		m.renderer.RenderDiagram(r, width),
	)
}
