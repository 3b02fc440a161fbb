package ui

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width       int
	loading     bool // Whether a generation is in flight
	canStepBack bool // Whether a previous round exists
	hasRound    bool // Whether a round is on screen (enables copy)
	historyMode bool // Whether the history overlay is showing
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{}
}

// SetContext updates the footer's context for conditional bindings
func (f *Footer) SetContext(loading, canStepBack, hasRound, historyMode bool) {
	f.loading = loading
	f.canStepBack = canStepBack
	f.hasRound = hasRound
	f.historyMode = historyMode
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// bindings returns the keybindings for the current context
func (f *Footer) bindings() []KeyBinding {
	if f.historyMode {
		return []KeyBinding{
			{Key: "esc/h", Desc: "close"},
			{Key: "↑/↓", Desc: "scroll"},
			{Key: "pgup/dn", Desc: "page"},
		}
	}

	var b []KeyBinding
	if !f.loading {
		b = append(b, KeyBinding{Key: "n/space", Desc: "next"})
	}
	if f.canStepBack {
		b = append(b, KeyBinding{Key: "p/left", Desc: "previous"})
	}
	b = append(b, KeyBinding{Key: "c", Desc: "category"})
	if f.hasRound {
		b = append(b, KeyBinding{Key: "y", Desc: "copy"})
	}
	b = append(b,
		KeyBinding{Key: "h", Desc: "history"},
		KeyBinding{Key: "t", Desc: "settings"},
		KeyBinding{Key: "?", Desc: "help"},
		KeyBinding{Key: "q", Desc: "quit"},
	)
	return b
}

// View renders the footer
func (f *Footer) View() string {
	var parts []string
	for _, b := range f.bindings() {
		key := FooterKeyStyle.Render(b.Key)
		desc := FooterDescStyle.Render(": " + b.Desc)
		parts = append(parts, key+desc)
	}

	content := strings.Join(parts, "  ")
	return FooterStyle.Width(f.width).Render(lipgloss.NewStyle().Render(content))
}
