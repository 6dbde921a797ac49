package field

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/parkedfield/parked"
)

func (m Model) View() string {
	var sb strings.Builder
	if m.cfg.Prompt != "" {
		sb.WriteString(m.cfg.Style.Prompt.Render(m.cfg.Prompt))
	}
	sb.WriteString(m.renderLine())
	return m.cfg.Style.Frame.Render(sb.String())
}

func (m Model) renderLine() string {
	if m.buf.Len() == 0 {
		return m.renderPlaceholder()
	}

	clusters, tags := m.view.styledClusters()
	widths := cellWidths(clusters)
	cur := m.buf.Cursor()
	sel, selOK := m.buf.Selection()

	w := m.cfg.Width
	start := m.offset
	if start > len(clusters) {
		start = 0
	}

	var r runRenderer
	used := 0
	for i := start; i < len(clusters); i++ {
		if w > 0 && used+widths[i] > w {
			break
		}
		used += widths[i]

		k := runKey{tag: tags[i]}
		st := m.cfg.Style.forTag(tags[i])
		switch {
		case m.focused && i == cur:
			k.role, st = roleCursor, m.cfg.Style.Cursor
		case selOK && i >= sel.Start && i < sel.End:
			k.role, st = roleSelection, m.cfg.Style.Selection
		}
		r.add(clusters[i], k, st)
	}

	if m.focused && cur >= len(clusters) && (w <= 0 || used < w) {
		r.add(" ", runKey{role: roleCursor}, m.cfg.Style.Cursor)
		used++
	}
	if w > 0 && used < w {
		r.add(strings.Repeat(" ", w-used), runKey{role: rolePad}, m.cfg.Style.Text)
	}
	return r.String()
}

func (m Model) renderPlaceholder() string {
	clusters, tags := m.view.placeholderClusters()
	widths := cellWidths(clusters)
	w := m.cfg.Width

	var r runRenderer
	used := 0
	for i, c := range clusters {
		if w > 0 && used+widths[i] > w {
			break
		}
		used += widths[i]

		k := runKey{tag: tags[i]}
		st := m.cfg.Style.forTag(tags[i])
		if m.focused && i == 0 {
			k.role, st = roleCursor, m.cfg.Style.Cursor.Inherit(st)
		}
		r.add(c, k, st)
	}
	if m.focused && len(clusters) == 0 {
		r.add(" ", runKey{role: roleCursor}, m.cfg.Style.Cursor)
		used++
	}
	if w > 0 && used < w {
		r.add(strings.Repeat(" ", w-used), runKey{role: rolePad}, m.cfg.Style.Text)
	}
	return r.String()
}

type cellRole uint8

const (
	rolePlain cellRole = iota
	roleCursor
	roleSelection
	rolePad
)

// runKey identifies the style a cluster is drawn with.
type runKey struct {
	tag  parked.Tag
	role cellRole
}

// runRenderer batches consecutive clusters with the same key so each run is
// rendered once.
type runRenderer struct {
	sb      strings.Builder
	pending strings.Builder
	key     runKey
	style   lipgloss.Style
	has     bool
}

func (r *runRenderer) add(text string, k runKey, st lipgloss.Style) {
	if r.has && r.key != k {
		r.flush()
	}
	r.key = k
	r.style = st
	r.has = true
	r.pending.WriteString(text)
}

func (r *runRenderer) flush() {
	if !r.has {
		return
	}
	r.sb.WriteString(r.style.Render(r.pending.String()))
	r.pending.Reset()
	r.has = false
}

func (r *runRenderer) String() string {
	r.flush()
	return r.sb.String()
}
