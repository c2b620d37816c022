package tui

import (
	list "github.com/charmbracelet/bubbles/list"

	"handlecalc/internal/layout"
)

// presetItem is a standard centre-to-centre handle spacing.
type presetItem struct {
	title   string
	spacing string
	unit    layout.Unit
}

func (p presetItem) Title() string       { return p.title }
func (p presetItem) Description() string { return p.spacing + " " + p.unit.String() + " c-c" }
func (p presetItem) FilterValue() string { return p.title }

var presets = []presetItem{
	{"64 mm", "64", layout.Millimeter},
	{"96 mm", "96", layout.Millimeter},
	{"128 mm", "128", layout.Millimeter},
	{"160 mm", "160", layout.Millimeter},
	{"192 mm", "192", layout.Millimeter},
	{"224 mm", "224", layout.Millimeter},
	{"256 mm", "256", layout.Millimeter},
	{"320 mm", "320", layout.Millimeter},
	{"3 in", "3", layout.Inch},
	{"3-3/4 in", "3.75", layout.Inch},
	{"5 in", "5", layout.Inch},
	{"6-5/16 in", "6.3125", layout.Inch},
	{"8-13/16 in", "8.8125", layout.Inch},
}

func presetItems() []list.Item {
	items := make([]list.Item, len(presets))
	for i, p := range presets {
		items[i] = p
	}
	return items
}

// applyPreset fills the spacing field and switches to the preset's unit.
// A held result stays valid; it carries its own unit.
func (m *Model) applyPreset(p presetItem) {
	m.unit = p.unit
	m.setUnitLabels()
	m.inputs[fieldSpacing].SetValue(p.spacing)
	m.setFocus(fieldWidth)
	m.status = "preset: " + p.title
}
