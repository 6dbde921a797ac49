package field

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/parkedfield/parked"
)

// Style controls the field's rendering.
type Style struct {
	Prompt lipgloss.Style

	// Text renders the typed segment.
	Text lipgloss.Style
	// Parked renders the fixed segment, in the field and in the placeholder.
	Parked lipgloss.Style
	// Placeholder renders the placeholder text around the fixed segment.
	Placeholder lipgloss.Style

	Selection lipgloss.Style
	Cursor    lipgloss.Style

	// Frame wraps the whole line, prompt included.
	Frame lipgloss.Style
}

// DefaultStyle renders parked text bold and underlines the field.
func DefaultStyle() Style {
	return Style{
		Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Text:        lipgloss.NewStyle(),
		Parked:      lipgloss.NewStyle().Bold(true),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Selection:   lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:      lipgloss.NewStyle().Reverse(true),
		Frame: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(lipgloss.Color("255")),
	}
}

func (s Style) forTag(tag parked.Tag) lipgloss.Style {
	switch tag {
	case parked.TagParked:
		return s.Parked
	case parked.TagPlaceholder:
		return s.Placeholder
	default:
		return s.Text
	}
}
