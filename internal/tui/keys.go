package tui

import key "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Calculate key.Binding
	Next      key.Binding
	Prev      key.Binding
	Unit      key.Binding
	Reset     key.Binding
	Copy      key.Binding
	Export    key.Binding
	Presets   key.Binding
	Help      key.Binding
	Close     key.Binding
	Quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Calculate: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "calculate")),
		Next:      key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		Prev:      key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		Unit:      key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "mm/in")),
		Reset:     key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reset")),
		Copy:      key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy summary")),
		Export:    key.NewBinding(key.WithKeys("ctrl+e"), key.WithHelp("ctrl+e", "save png")),
		Presets:   key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "presets")),
		Help:      key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "help")),
		Close:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Calculate, k.Unit, k.Copy, k.Export, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Calculate, k.Next, k.Prev},
		{k.Unit, k.Reset, k.Presets},
		{k.Copy, k.Export},
		{k.Help, k.Close, k.Quit},
	}
}
