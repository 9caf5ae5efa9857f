package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	next     key.Binding
	prev     key.Binding
	quit     key.Binding
	back     key.Binding
	copy     key.Binding
	version  key.Binding
	pageUp   key.Binding
	pageDown key.Binding
	yes      key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	next:     key.NewBinding(key.WithKeys("tab", "down")),
	prev:     key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:     key.NewBinding(key.WithKeys("ctrl+c")),
	back:     key.NewBinding(key.WithKeys("backspace")),
	copy:     key.NewBinding(key.WithKeys("c")),
	version:  key.NewBinding(key.WithKeys("v")),
	pageUp:   key.NewBinding(key.WithKeys("pgup")),
	pageDown: key.NewBinding(key.WithKeys("pgdown")),
	yes:      key.NewBinding(key.WithKeys("y", "Y")),
}
