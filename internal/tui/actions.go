package tui

import (
	"log"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"handlecalc/internal/diagram"
	"handlecalc/internal/layout"
)

// Clipboard receives the copied summary text.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

type copyDoneMsg struct {
	text string
	err  error
}

type copyResetMsg struct{}

type exportDoneMsg struct {
	path string
	err  error
}

const copiedFor = 1200 * time.Millisecond

func copyCmd(c Clipboard, text string) tea.Cmd {
	return func() tea.Msg {
		return copyDoneMsg{text: text, err: c.WriteAll(text)}
	}
}

func exportCmd(dir string, r layout.Result, o diagram.Options) tea.Cmd {
	return func() tea.Msg {
		path, err := diagram.WriteFile(dir, r, o)
		return exportDoneMsg{path: path, err: err}
	}
}

func (m *Model) calculate() {
	r, err := layout.Calculate(m.raw(), m.defPrecision)
	if err != nil {
		m.sess.clear()
		m.guidance = layout.Guidance(err)
		m.status = "invalid input: " + err.Error()
		m.syncKeys()
		return
	}
	m.sess.set(r)
	m.guidance = ""
	m.copied = false
	m.status = "calculated: " + layout.Headline(r)
	log.Printf("calculated W=%g S=%g %s -> m=%g x1=%g x2=%g", r.Width, r.Spacing, r.Unit, r.Margin, r.Left, r.Right)
	m.syncKeys()
}

func (m *Model) reset() {
	m.inputs[fieldWidth].Reset()
	m.inputs[fieldSpacing].Reset()
	m.setFocus(fieldWidth)
	m.sess.clear()
	m.guidance = idleGuidance
	m.copied = false
	m.status = "reset"
	m.syncKeys()
}

func (m Model) handleCopyDone(msg copyDoneMsg) (Model, tea.Cmd) {
	if msg.err != nil {
		log.Printf("clipboard write failed: %v", msg.err)
		m.popup = "Copied text is shown below:\n\n" + msg.text
		m.status = "clipboard unavailable: " + msg.err.Error()
		return m, nil
	}
	m.copied = true
	m.status = "summary copied"
	return m, tea.Tick(copiedFor, func(time.Time) tea.Msg { return copyResetMsg{} })
}

func (m Model) handleExportDone(msg exportDoneMsg) Model {
	if msg.err != nil {
		log.Printf("export failed: %v", msg.err)
		m.status = "export error: " + msg.err.Error()
		return m
	}
	log.Printf("exported %s", msg.path)
	m.status = "saved " + msg.path
	return m
}
