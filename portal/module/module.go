package module

import (
	"errors"
	"strings"
)

var (
	// ErrUnknownModule is returned when a module id is not registered.
	ErrUnknownModule = errors.New("unknown module")
	// ErrNotConfigured is returned when a module URL is empty or still holds
	// its placeholder marker.
	ErrNotConfigured = errors.New("module not configured")
)

// Module represents one externally hosted tool.
type Module struct {
	ID          string `yaml:"id,omitempty" json:"id"`
	Title       string `yaml:"title,omitempty" json:"title"`
	Icon        string `yaml:"icon,omitempty" json:"icon,omitempty"`
	Summary     string `yaml:"summary,omitempty" json:"summary,omitempty"`
	Output      string `yaml:"output,omitempty" json:"output,omitempty"`
	Label       string `yaml:"label,omitempty" json:"label"`
	URL         string `yaml:"url,omitempty" json:"url"`
	Placeholder string `yaml:"placeholder,omitempty" json:"-"`
	Warning     string `yaml:"warning,omitempty" json:"warning,omitempty"`
}

// Link is the navigation control rendered for a module: either an active
// outbound link or a warning.
type Link struct {
	Active  bool   `json:"configured"`
	Href    string `json:"href,omitempty"`
	Label   string `json:"label,omitempty"`
	Warning string `json:"warning,omitempty"`
}

// Configured reports whether url is usable: non-blank and free of the
// placeholder marker.
func Configured(url, placeholder string) bool {
	if strings.TrimSpace(url) == "" {
		return false
	}
	if placeholder != "" && strings.Contains(url, placeholder) {
		return false
	}
	return true
}

// Configured reports whether the module URL passed the gate.
func (m *Module) Configured() bool {
	return Configured(m.URL, m.Placeholder)
}

// Link resolves the module navigation control.
func (m *Module) Link() Link {
	if !m.Configured() {
		return Link{Warning: m.warning()}
	}
	return Link{Active: true, Href: strings.TrimSpace(m.URL), Label: m.Label}
}

func (m *Module) warning() string {
	if m.Warning != "" {
		return m.Warning
	}
	name := m.Title
	if name == "" {
		name = m.ID
	}
	return name + " URL not configured."
}

// Override is the configuration-file view of a module. URL is a pointer so
// that an explicit empty value unconfigures the module.
type Override struct {
	Title       string  `yaml:"title,omitempty" json:"title,omitempty"`
	Icon        string  `yaml:"icon,omitempty" json:"icon,omitempty"`
	Summary     string  `yaml:"summary,omitempty" json:"summary,omitempty"`
	Output      string  `yaml:"output,omitempty" json:"output,omitempty"`
	Label       string  `yaml:"label,omitempty" json:"label,omitempty"`
	URL         *string `yaml:"url,omitempty" json:"url,omitempty"`
	Placeholder string  `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
	Warning     string  `yaml:"warning,omitempty" json:"warning,omitempty"`
}

// Merge overlays override onto a copy of m. Empty text fields are ignored; a
// set URL always wins, even when empty.
func (m Module) Merge(override *Override) Module {
	if override == nil {
		return m
	}
	set := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	set(&m.Title, override.Title)
	set(&m.Icon, override.Icon)
	set(&m.Summary, override.Summary)
	set(&m.Output, override.Output)
	set(&m.Label, override.Label)
	if override.URL != nil {
		m.URL = *override.URL
	}
	set(&m.Placeholder, override.Placeholder)
	set(&m.Warning, override.Warning)
	return m
}
