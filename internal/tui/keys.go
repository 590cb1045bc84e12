package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	load      key.Binding
	save      key.Binding
	copy      key.Binding
	buildInfo key.Binding
	back      key.Binding
	quit      key.Binding
}

var keys = keyMap{
	load:      key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "load")),
	save:      key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
	copy:      key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy")),
	buildInfo: key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "about")),
	back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("ctrl+c/esc", "quit")),
}

func hotKeys(bindings ...key.Binding) string {
	var out string
	for i, b := range bindings {
		if i > 0 {
			out += "  "
		}
		h := b.Help()
		out += h.Key + ": " + h.Desc
	}
	return out
}
