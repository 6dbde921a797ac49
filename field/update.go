package field

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/parkedfield/buffer"
	"github.com/iw2rmb/parkedfield/parked"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)
	case tea.FocusMsg:
		return m.Focus(), nil
	case tea.BlurMsg:
		return m.Blur(), nil
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	// Paste events always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		return m.edit(m.buf.InsertText(string(msg.Runes))), nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight})
	case key.Matches(msg, km.WordLeft):
		m.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft})
	case key.Matches(msg, km.WordRight):
		m.buf.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight})
	case key.Matches(msg, km.Home):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})

	case key.Matches(msg, km.SelectLeft):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft, Extend: true})
	case key.Matches(msg, km.SelectRight):
		m.buf.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight, Extend: true})
	case key.Matches(msg, km.SelectHome):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome, Extend: true})
	case key.Matches(msg, km.SelectEnd):
		m.buf.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd, Extend: true})
	case key.Matches(msg, km.SelectAll):
		m.buf.SelectAll()

	case key.Matches(msg, km.Backspace):
		return m.edit(m.buf.DeleteBackward()), nil
	case key.Matches(msg, km.Delete):
		return m.edit(m.buf.DeleteForward()), nil
	case key.Matches(msg, km.DeleteWordBackward):
		return m.edit(m.buf.DeleteWordBackward()), nil
	case key.Matches(msg, km.ClearTyped):
		if m.buf.Text() == "" {
			return m, nil
		}
		return m.SetTypedText(""), nil

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		return m.cutSelection(), nil
	case key.Matches(msg, km.Paste):
		return m.edit(m.pasteClipboard()), nil

	default:
		if msg.Type == tea.KeySpace {
			return m.edit(m.buf.InsertText(" ")), nil
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			return m.edit(m.buf.InsertText(string(msg.Runes))), nil
		}
	}

	m.scrollToCursor()
	return m, nil
}

// edit hands a buffer mutation to the controller, which accepts, rolls back
// or collapses it.
func (m Model) edit(changed bool) Model {
	if !changed {
		return m
	}
	m.view.notify()
	return m.afterEdit()
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	r, ok := m.buf.Selection()
	if !ok {
		return
	}
	if s := m.buf.TextInRange(r); s != "" {
		_ = m.cfg.Clipboard.WriteText(s)
	}
}

// cutSelection deletes the selection and copies it only if the controller
// keeps the deletion.
func (m Model) cutSelection() Model {
	if m.cfg.Clipboard == nil {
		return m
	}
	r, ok := m.buf.Selection()
	if !ok {
		return m
	}
	s := m.buf.TextInRange(r)
	if !m.buf.DeleteSelection() {
		return m
	}
	m.view.notify()
	if s != "" && m.ctrl.LastResult().Outcome != parked.OutcomeRejected {
		_ = m.cfg.Clipboard.WriteText(s)
	}
	return m.afterEdit()
}

func (m Model) pasteClipboard() bool {
	if m.cfg.Clipboard == nil {
		return false
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return false
	}
	return m.buf.InsertText(s)
}
