package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	left     key.Binding
	right    key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	backtab  key.Binding
	quit     key.Binding
	logout   key.Binding
	newItem  key.Binding
	edit     key.Binding
	delete   key.Binding
	copy     key.Binding
	reload   key.Binding
	more     key.Binding
	filter   key.Binding
	export   key.Binding
	version  key.Binding
	register key.Binding
	yes      key.Binding
	no       key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	left:     key.NewBinding(key.WithKeys("left")),
	right:    key.NewBinding(key.WithKeys("right")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab", "down")),
	backtab:  key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:     key.NewBinding(key.WithKeys("ctrl+c")),
	logout:   key.NewBinding(key.WithKeys("ctrl+l")),
	newItem:  key.NewBinding(key.WithKeys("n")),
	edit:     key.NewBinding(key.WithKeys("e")),
	delete:   key.NewBinding(key.WithKeys("d")),
	copy:     key.NewBinding(key.WithKeys("c")),
	reload:   key.NewBinding(key.WithKeys("r")),
	more:     key.NewBinding(key.WithKeys("m")),
	filter:   key.NewBinding(key.WithKeys("f")),
	export:   key.NewBinding(key.WithKeys("x")),
	version:  key.NewBinding(key.WithKeys("v")),
	register: key.NewBinding(key.WithKeys("ctrl+r")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n", "esc")),
}
