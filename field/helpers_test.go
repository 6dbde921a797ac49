package field

import (
	"errors"

	"github.com/charmbracelet/x/ansi"
	tea "github.com/charmbracelet/bubbletea"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeKeys(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(runes(string(r)))
	}
	return m
}

func press(m Model, t tea.KeyType, n int) Model {
	for i := 0; i < n; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: t})
	}
	return m
}

func stripANSI(s string) string { return ansi.Strip(s) }

type memClipboard struct {
	text string
	err  error
}

func (c *memClipboard) ReadText() (string, error) {
	if c.err != nil {
		return "", c.err
	}
	return c.text, nil
}

func (c *memClipboard) WriteText(s string) error {
	c.text = s
	return nil
}

var errClipboard = errors.New("clipboard unavailable")
