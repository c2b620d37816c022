package tui

import (
	"strconv"

	help "github.com/charmbracelet/bubbles/help"
	list "github.com/charmbracelet/bubbles/list"
	textinput "github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"handlecalc/internal/diagram"
	"handlecalc/internal/layout"
)

const (
	fieldWidth = iota
	fieldSpacing
	fieldPrecision
	fieldCount
)

const sidebarWidth = 28

const idleGuidance = "Enter width & spacing and press enter to calculate."

// Options configures a new Model.
type Options struct {
	Unit      layout.Unit
	Precision int
	OutputDir string
	Diagram   diagram.Options

	// Clipboard and Renderer default to the system clipboard and the
	// terminal renderer when nil.
	Clipboard Clipboard
	Renderer  Renderer
}

type Model struct {
	width  int
	height int

	showSidebar bool
	status      string

	// Form
	inputs       []textinput.Model
	focus        int
	unit         layout.Unit
	defPrecision int

	// Presets sidebar
	l list.Model

	// Results
	sess     session
	guidance string
	copied   bool

	// clipboard fallback popup; blocks other keys while open
	popup string

	keys keyMap
	help help.Model

	renderer  Renderer
	clip      Clipboard
	outDir    string
	diagramOp diagram.Options
}

func New(opts Options) Model {
	m := Model{
		status:       "handlecalc ready",
		unit:         opts.Unit,
		defPrecision: opts.Precision,
		guidance:     idleGuidance,
		keys:         newKeyMap(),
		help:         help.New(),
		renderer:     opts.Renderer,
		clip:         opts.Clipboard,
		outDir:       opts.OutputDir,
		diagramOp:    opts.Diagram,
	}
	if m.renderer == nil {
		m.renderer = termRenderer{}
	}
	if m.clip == nil {
		m.clip = systemClipboard{}
	}
	m.inputs = make([]textinput.Model, fieldCount)
	for i := range m.inputs {
		ti := textinput.New()
		ti.CharLimit = 16
		ti.Width = 12
		m.inputs[i] = ti
	}
	m.inputs[fieldWidth].Placeholder = "e.g. 600"
	m.inputs[fieldSpacing].Placeholder = "e.g. 320"
	m.inputs[fieldPrecision].SetValue(strconv.Itoa(opts.Precision))
	m.inputs[fieldPrecision].CharLimit = 2
	m.setUnitLabels()
	m.inputs[fieldWidth].Focus()

	d := list.NewDefaultDelegate()
	m.l = list.New(presetItems(), d, sidebarWidth-2, 20)
	m.l.Title = "Hole spacings"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	m.l.KeyMap.Quit.SetEnabled(false)

	m.syncKeys()
	return m
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m *Model) setUnitLabels() {
	u := m.unit.String()
	m.inputs[fieldWidth].Prompt = "Drawer width W (" + u + "): "
	m.inputs[fieldSpacing].Prompt = "Hole spacing S (" + u + "): "
	m.inputs[fieldPrecision].Prompt = "Decimal places:      "
}

func (m *Model) setFocus(i int) {
	m.focus = (i + fieldCount) % fieldCount
	for j := range m.inputs {
		if j == m.focus {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

// syncKeys enables the result actions only while a valid result is held.
func (m *Model) syncKeys() {
	ready := m.sess.Ready()
	m.keys.Copy.SetEnabled(ready)
	m.keys.Export.SetEnabled(ready)
}

func (m Model) raw() layout.RawInput {
	return layout.RawInput{
		Width:     m.inputs[fieldWidth].Value(),
		Spacing:   m.inputs[fieldSpacing].Value(),
		Unit:      m.unit.String(),
		Precision: m.inputs[fieldPrecision].Value(),
	}
}
