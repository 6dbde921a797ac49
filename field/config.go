package field

import (
	"log/slog"

	"github.com/iw2rmb/parkedfield/parked"
)

// Config configures the field Model.
type Config struct {
	// ParkedText is the fixed, non-editable segment, e.g. ".slack.com".
	ParkedText string
	// Edge anchors ParkedText; the zero value parks it at the end.
	Edge parked.Edge
	// Placeholder is shown next to ParkedText while the field is empty.
	Placeholder string

	// Prompt is rendered before the input and is not part of its width.
	Prompt string
	// Width is the input width in terminal cells. Zero means unbounded.
	Width int

	Style  Style
	KeyMap KeyMap

	Clipboard Clipboard

	// OnChange is called after every edit, including rejected ones.
	OnChange func(ChangeEvent)

	Logger *slog.Logger
}

func (c Config) parked() parked.Config {
	return parked.Config{
		ParkedText:      c.ParkedText,
		Edge:            c.Edge,
		PlaceholderText: c.Placeholder,
	}
}
