package tui

import (
	"log"

	key "github.com/charmbracelet/bubbles/key"
	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"handlecalc/internal/layout"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.l.SetSize(sidebarWidth-2, max(4, m.height-1-2-2))
		return m, nil
	case copyDoneMsg:
		return m.handleCopyDone(msg)
	case copyResetMsg:
		m.copied = false
		return m, nil
	case exportDoneMsg:
		return m.handleExportDone(msg), nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	// The fallback popup is modal until dismissed.
	if m.popup != "" {
		if key.Matches(msg, m.keys.Close, m.keys.Calculate) {
			m.popup = ""
		}
		return m, nil
	}
	if m.showSidebar {
		return m.handleSidebarKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Calculate):
		m.calculate()
		return m, nil
	case key.Matches(msg, m.keys.Next):
		m.setFocus(m.focus + 1)
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		m.setFocus(m.focus - 1)
		return m, nil
	case key.Matches(msg, m.keys.Unit):
		m.unit = m.unit.Toggle()
		m.setUnitLabels()
		m.status = "units: " + m.unit.String()
		return m, nil
	case key.Matches(msg, m.keys.Reset):
		m.reset()
		return m, nil
	case key.Matches(msg, m.keys.Copy):
		r, _ := m.sess.Result()
		return m, copyCmd(m.clip, layout.Summary(r))
	case key.Matches(msg, m.keys.Export):
		r, _ := m.sess.Result()
		m.status = "saving drill strip..."
		return m, exportCmd(m.outDir, r, m.diagramOp)
	case key.Matches(msg, m.keys.Presets):
		m.showSidebar = true
		m.status = "presets"
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) handleSidebarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While filtering, every key belongs to the list.
	if m.l.FilterState() != list.Filtering {
		switch {
		case key.Matches(msg, m.keys.Close, m.keys.Presets):
			m.showSidebar = false
			m.status = "form"
			return m, nil
		case key.Matches(msg, m.keys.Calculate):
			if p, ok := m.l.SelectedItem().(presetItem); ok {
				m.applyPreset(p)
				log.Printf("applied preset %s", p.title)
			}
			m.showSidebar = false
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.l, cmd = m.l.Update(msg)
	return m, cmd
}
