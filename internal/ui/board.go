package ui

import (
	"math/rand"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// BoardTickMsg is sent to advance the loading animation
type BoardTickMsg time.Time

// thinkingVerbs are playful status messages that cycle while a question is
// being generated
var thinkingVerbs = []string{
	"Dreaming up",
	"Conjuring",
	"Brewing",
	"Inventing",
	"Concocting",
	"Splitting hairs",
	"Weighing options",
	"Flipping coins",
	"Consulting the oracle",
	"Stirring the pot",
}

// randomThinkingVerb returns a random verb from the list
func randomThinkingVerb() string {
	return thinkingVerbs[rand.Intn(len(thinkingVerbs))]
}

// spinnerFrames are the characters used for the shimmering spinner animation
var spinnerFrames = []string{"·", "✺", "✹", "✸", "✷", "✶", "✵", "✴", "✳", "✲", "✱", "✧", "✦", "·"}

// spinnerFrameHoldTimes defines how long each frame should be held (in ticks).
// First and last frames hold longer for a "breathing" effect.
var spinnerFrameHoldTimes = []int{3, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 3}

// BoardTick returns a command that sends a tick message after a delay
func BoardTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return BoardTickMsg(t)
	})
}

// Board is the center panel showing the two options of the current round,
// the loading animation, or the error banner.
type Board struct {
	width  int
	height int

	first  string
	second string
	errMsg string

	loading      bool
	verb         string
	spinnerFrame int
	spinnerTick  int
}

// NewBoard creates a new board
func NewBoard() *Board {
	return &Board{}
}

// SetSize sets the board dimensions
func (b *Board) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// SetOptions sets the pair to display and clears any error
func (b *Board) SetOptions(first, second string) {
	b.first = first
	b.second = second
	b.errMsg = ""
}

// SetError shows an error banner in place of the options
func (b *Board) SetError(msg string) {
	b.first = ""
	b.second = ""
	b.errMsg = msg
}

// SetLoading toggles the loading animation. The previous round stays on
// screen underneath until the call resolves.
func (b *Board) SetLoading(loading bool) {
	if loading && !b.loading {
		b.verb = randomThinkingVerb()
		b.spinnerFrame = 0
		b.spinnerTick = 0
	}
	b.loading = loading
}

// IsLoading returns whether the loading animation is active
func (b *Board) IsLoading() bool {
	return b.loading
}

// AdvanceSpinner advances the spinner animation by one tick
func (b *Board) AdvanceSpinner() {
	if !b.loading {
		return
	}
	b.spinnerTick++
	if b.spinnerTick >= spinnerFrameHoldTimes[b.spinnerFrame] {
		b.spinnerTick = 0
		b.spinnerFrame = (b.spinnerFrame + 1) % len(spinnerFrames)
	}
}

// View renders the board
func (b *Board) View() string {
	var rows []string

	switch {
	case b.errMsg != "":
		rows = append(rows, ErrorBannerStyle.Width(min(b.width-4, 60)).Render(b.errMsg))
	case b.first == "" && b.second == "" && !b.loading:
		rows = append(rows, PlaceholderStyle.Render("Pick a category to get your first question"))
	case b.first != "" || b.second != "":
		rows = append(rows, b.renderCards())
	}

	if b.loading {
		spinner := SpinnerStyle.Render(spinnerFrames[b.spinnerFrame])
		rows = append(rows, PlaceholderStyle.Render(spinner+" "+b.verb+"..."))
	}

	content := lipgloss.JoinVertical(lipgloss.Center, rows...)

	return lipgloss.Place(
		b.width, b.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
}

// renderCards renders the two option cards side by side with the OR divider.
// On narrow terminals the cards stack vertically instead.
func (b *Board) renderCards() string {
	cardWidth := (b.width - 14) / 2
	if cardWidth > 32 {
		cardWidth = 32
	}
	if cardWidth < 10 {
		cardWidth = 10
	}

	firstCard := OptionCardStyle.Width(cardWidth).Render(OptionFirstStyle.Render(b.first))
	secondCard := OptionCardStyle.Width(cardWidth).Render(OptionSecondStyle.Render(b.second))
	divider := OrDividerStyle.Render("OR")

	if b.width >= 2*cardWidth+len("  OR  ")+8 {
		return lipgloss.JoinHorizontal(lipgloss.Center, firstCard, divider, secondCard)
	}
	return lipgloss.JoinVertical(lipgloss.Center, firstCard, divider, secondCard)
}

// Plain returns the round as plain text, e.g. for copying to the clipboard.
func (b *Board) Plain() string {
	if b.first == "" && b.second == "" {
		return ""
	}
	return strings.Join([]string{b.first, "or", b.second}, " ")
}
