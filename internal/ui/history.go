package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/thisorthat/internal/game"
)

// History is the overlay listing every round played this session. It wraps a
// viewport so long sessions can scroll.
type History struct {
	viewport viewport.Model
	visible  bool
	width    int
	height   int
	count    int
}

// NewHistory creates a new history overlay
func NewHistory() *History {
	vp := viewport.New()
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3
	vp.SoftWrap = true

	return &History{viewport: vp}
}

// SetSize sets the overlay dimensions
func (h *History) SetSize(width, height int) {
	h.width = width
	h.height = height
	h.viewport.SetWidth(width - 6)
	h.viewport.SetHeight(height - 6)
}

// Toggle flips overlay visibility
func (h *History) Toggle() {
	h.visible = !h.visible
}

// Hide hides the overlay
func (h *History) Hide() {
	h.visible = false
}

// IsVisible returns whether the overlay is showing
func (h *History) IsVisible() bool {
	return h.visible
}

// SetEntries rebuilds the overlay content from the session history. cursor
// marks the round currently on the board.
func (h *History) SetEntries(entries []game.HistoryEntry, cursor int) {
	h.count = len(entries)

	if len(entries) == 0 {
		h.viewport.SetContent(PlaceholderStyle.Render("No rounds played yet"))
		return
	}

	var sb strings.Builder
	for i, entry := range entries {
		line := fmt.Sprintf("%2d. %s  %s %s %s",
			i+1,
			CategoryStyle.Render(string(entry.Category)),
			OptionFirstStyle.Render(entry.Pair.First),
			OrDividerStyle.Render("or"),
			OptionSecondStyle.Render(entry.Pair.Second),
		)
		if i == cursor {
			sb.WriteString(ListSelectedStyle.Render(line))
		} else {
			sb.WriteString(ListItemStyle.Render(line))
		}
		sb.WriteString("\n")
	}

	h.viewport.SetContent(sb.String())
	h.viewport.GotoBottom()
}

// Update delegates scrolling messages to the viewport
func (h *History) Update(msg tea.Msg) tea.Cmd {
	if !h.visible {
		return nil
	}
	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return cmd
}

// View renders the overlay centered on the screen
func (h *History) View() string {
	if !h.visible {
		return ""
	}

	title := ModalTitleStyle.Render(fmt.Sprintf("History (%d rounds)", h.count))
	content := lipgloss.NewStyle().
		MaxHeight(h.height - 6).
		Render(h.viewport.View())
	help := ModalHelpStyle.Render("↑/↓ scroll  esc/h: close")

	panel := ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, content, help))

	return lipgloss.Place(
		h.width, h.height,
		lipgloss.Center, lipgloss.Center,
		panel,
	)
}
