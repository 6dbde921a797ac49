package parked

// Edge selects where the parked text is anchored.
type Edge uint8

const (
	// EdgeEnd parks the text as a suffix: "team" + ".slack.com".
	EdgeEnd Edge = iota
	// EdgeStart parks the text as a prefix: "https://" + "example.com".
	EdgeStart
)

func (e Edge) String() string {
	switch e {
	case EdgeEnd:
		return "end"
	case EdgeStart:
		return "start"
	default:
		return "unknown"
	}
}

// Config is the host-supplied field configuration.
type Config struct {
	// ParkedText is the fixed segment. Empty disables parking and the field
	// behaves like a plain text input.
	ParkedText string

	// Edge anchors ParkedText. The zero value parks at the end.
	Edge Edge

	// PlaceholderText is shown next to ParkedText while the field is empty.
	// It is display-only and never part of the committed text.
	PlaceholderText string
}

// AtEnd reports whether the parked text is a suffix.
func (c Config) AtEnd() bool { return c.Edge != EdgeStart }
