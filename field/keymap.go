package field

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the field key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right         key.Binding
	WordLeft, WordRight key.Binding
	Home, End           key.Binding

	SelectLeft, SelectRight key.Binding
	SelectHome, SelectEnd   key.Binding
	SelectAll               key.Binding

	Backspace, Delete  key.Binding
	DeleteWordBackward key.Binding
	ClearTyped         key.Binding

	Copy, Cut, Paste key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left", "ctrl+b"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right", "ctrl+f"), key.WithHelp("→", "right")),

		// Portable word movement: terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:  key.NewBinding(key.WithKeys("alt+left", "ctrl+left", "alt+b"), key.WithHelp("alt/ctrl+←", "word left")),
		WordRight: key.NewBinding(key.WithKeys("alt+right", "ctrl+right", "alt+f"), key.WithHelp("alt/ctrl+→", "word right")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		SelectLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		SelectRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		SelectHome:  key.NewBinding(key.WithKeys("shift+home"), key.WithHelp("shift+home", "select to start")),
		SelectEnd:   key.NewBinding(key.WithKeys("shift+end"), key.WithHelp("shift+end", "select to end")),
		SelectAll:   key.NewBinding(key.WithKeys("alt+a"), key.WithHelp("alt+a", "select all")),

		Backspace:          key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:             key.NewBinding(key.WithKeys("delete", "ctrl+d"), key.WithHelp("del", "delete right")),
		DeleteWordBackward: key.NewBinding(key.WithKeys("ctrl+w", "alt+backspace"), key.WithHelp("ctrl+w", "delete word")),
		ClearTyped:         key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "clear")),

		Copy:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
	}
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.WordLeft, km.WordRight, km.DeleteWordBackward, km.ClearTyped}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Left, km.Right, km.WordLeft, km.WordRight, km.Home, km.End},
		{km.SelectLeft, km.SelectRight, km.SelectHome, km.SelectEnd, km.SelectAll},
		{km.Backspace, km.Delete, km.DeleteWordBackward, km.ClearTyped},
		{km.Copy, km.Cut, km.Paste},
	}
}

func (km KeyMap) isZero() bool {
	for _, row := range km.FullHelp() {
		for _, b := range row {
			if len(b.Keys()) > 0 {
				return false
			}
		}
	}
	return true
}
