package main

import (
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/parkedfield/field"
	"github.com/iw2rmb/parkedfield/internal/config"
)

type app struct {
	input  field.Model
	help   help.Model
	quit   key.Binding
	submit key.Binding
	logger *slog.Logger

	submitted bool
	value     string
}

func newApp(cfg *config.Config, logger *slog.Logger) app {
	fc := cfg.FieldConfig()
	fc.Logger = logger
	fc.Clipboard = &memClipboard{}
	fc.OnChange = func(ev field.ChangeEvent) {
		logger.Debug("field changed",
			"version", ev.Version,
			"text", ev.Text,
			"outcome", ev.Outcome.String(),
		)
	}
	if fc.Prompt == "" {
		fc.Prompt = "> "
	}

	return app{
		input: field.New(fc),
		help:  help.New(),
		quit: key.NewBinding(
			key.WithKeys(cfg.KeyMappings.Quit, "esc"),
			key.WithHelp(cfg.KeyMappings.Quit, "quit"),
		),
		submit: key.NewBinding(
			key.WithKeys(cfg.KeyMappings.Submit),
			key.WithHelp(cfg.KeyMappings.Submit, "submit"),
		),
		logger: logger,
	}
}

func (a app) Init() tea.Cmd { return a.input.Init() }

func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.help.Width = msg.Width
		if a.input.Width() == 0 || a.input.Width() > msg.Width-4 {
			a.input = a.input.SetWidth(max(msg.Width-4, 1))
		}
		return a, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.quit):
			return a, tea.Quit
		case key.Matches(msg, a.submit):
			a.submitted = true
			a.value = a.input.Value()
			a.logger.Info("submitted", "value", a.value, "typed", a.input.TypedText())
			return a, tea.Quit
		}
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a app) View() string {
	var b strings.Builder
	b.WriteString(a.input.View())
	b.WriteString("\n\n")
	b.WriteString(a.help.ShortHelpView(a.bindings()))
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func (a app) bindings() []key.Binding {
	return append([]key.Binding{a.submit, a.quit}, a.input.KeyMap().ShortHelp()...)
}

// memClipboard keeps copied text for the lifetime of the program.
type memClipboard struct {
	text string
}

func (c *memClipboard) ReadText() (string, error) { return c.text, nil }

func (c *memClipboard) WriteText(s string) error {
	c.text = s
	return nil
}
