package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/parkedfield/field"
	"github.com/iw2rmb/parkedfield/parked"
)

// Config represents the demo program configuration.
type Config struct {
	// Pointers tell an absent key, which takes the default, from an explicit
	// empty value. An empty parked text turns the field into a plain input.
	ParkedText      *string `yaml:"parked_text,omitempty"`
	PlaceholderText *string `yaml:"placeholder_text,omitempty"`
	ParkedTextAtEnd *bool   `yaml:"parked_text_at_end,omitempty"`
	Prompt          string  `yaml:"prompt"`
	Width           int     `yaml:"width"`

	ParkedBold *bool `yaml:"parked_bold,omitempty"`
	Border     *bool `yaml:"border,omitempty"`

	Colors      Colors      `yaml:"colors"`
	KeyMappings KeyMappings `yaml:"key_mappings"`
}

// Colors holds lipgloss color strings (ANSI index or hex).
type Colors struct {
	Text        string `yaml:"text"`
	Parked      string `yaml:"parked"`
	Placeholder string `yaml:"placeholder"`
	Border      string `yaml:"border"`
	Prompt      string `yaml:"prompt"`
}

// KeyMappings holds the program-level keys; field editing keys are fixed.
type KeyMappings struct {
	Quit   string `yaml:"quit"`
	Submit string `yaml:"submit"`
}

func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads the YAML config at path. An empty path selects DefaultPath.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Save writes the config to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// DefaultPath returns $XDG_CONFIG_HOME/parkedfield/config.yaml, falling back
// to ~/.config.
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "parkedfield", "config.yaml"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "parkedfield", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults.
func (c *Config) applyDefaults() {
	if c.ParkedText == nil {
		c.ParkedText = stringPtr(".slack.com")
	}
	if c.PlaceholderText == nil {
		c.PlaceholderText = stringPtr("yourteam")
	}
	if c.ParkedTextAtEnd == nil {
		c.ParkedTextAtEnd = boolPtr(true)
	}
	if c.ParkedBold == nil {
		c.ParkedBold = boolPtr(true)
	}
	if c.Border == nil {
		c.Border = boolPtr(true)
	}
	if c.Width < 0 {
		c.Width = 0
	}
	c.Colors.applyDefaults()
	c.KeyMappings.applyDefaults()
}

func (c *Colors) applyDefaults() {
	if c.Placeholder == "" {
		c.Placeholder = "240"
	}
	if c.Border == "" {
		c.Border = "255"
	}
	if c.Prompt == "" {
		c.Prompt = "244"
	}
}

func (k *KeyMappings) applyDefaults() {
	if k.Quit == "" {
		k.Quit = "ctrl+q"
	}
	if k.Submit == "" {
		k.Submit = "enter"
	}
}

// Parked returns the configured parked text.
func (c *Config) Parked() string { return deref(c.ParkedText) }

func (c *Config) Placeholder() string { return deref(c.PlaceholderText) }

// Edge returns the parked edge selected by ParkedTextAtEnd.
func (c *Config) Edge() parked.Edge {
	if c.ParkedTextAtEnd != nil && !*c.ParkedTextAtEnd {
		return parked.EdgeStart
	}
	return parked.EdgeEnd
}

// Style builds the field style from the configured colors.
func (c *Config) Style() field.Style {
	st := field.DefaultStyle()
	if c.Colors.Text != "" {
		st.Text = st.Text.Foreground(lipgloss.Color(c.Colors.Text))
	}
	st.Parked = lipgloss.NewStyle().Bold(c.ParkedBold == nil || *c.ParkedBold)
	if c.Colors.Parked != "" {
		st.Parked = st.Parked.Foreground(lipgloss.Color(c.Colors.Parked))
	} else if c.Colors.Text != "" {
		st.Parked = st.Parked.Foreground(lipgloss.Color(c.Colors.Text))
	}
	st.Placeholder = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Colors.Placeholder))
	st.Prompt = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Colors.Prompt))
	if c.Border != nil && !*c.Border {
		st.Frame = lipgloss.NewStyle()
	} else {
		st.Frame = st.Frame.BorderForeground(lipgloss.Color(c.Colors.Border))
	}
	return st
}

// FieldConfig builds a field.Config; host hooks are left to the caller.
func (c *Config) FieldConfig() field.Config {
	return field.Config{
		ParkedText:  c.Parked(),
		Edge:        c.Edge(),
		Placeholder: c.Placeholder(),
		Prompt:      c.Prompt,
		Width:       c.Width,
		Style:       c.Style(),
		KeyMap:      field.DefaultKeyMap(),
	}
}

func boolPtr(v bool) *bool { return &v }

func stringPtr(v string) *string { return &v }

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
