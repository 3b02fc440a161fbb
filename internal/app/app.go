// Package app wires the game session, the generation client, and the UI
// components into the top-level Bubble Tea model.
package app

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/thisorthat/internal/config"
	"github.com/zhubert/thisorthat/internal/errors"
	"github.com/zhubert/thisorthat/internal/game"
	"github.com/zhubert/thisorthat/internal/generation"
	"github.com/zhubert/thisorthat/internal/logger"
	"github.com/zhubert/thisorthat/internal/ui"
)

// generationTimeout bounds a single round trip to the model
const generationTimeout = 30 * time.Second

// Model is the main Bubble Tea model
type Model struct {
	config    *config.Config
	version   string // App version (injected at build time)
	generator generation.Generator

	session game.Session

	header  *ui.Header
	footer  *ui.Footer
	board   *ui.Board
	history *ui.History
	modal   *ui.Modal

	width  int
	height int
}

// StartupModalMsg is sent on app start to open the category picker
type StartupModalMsg struct{}

// PairGeneratedMsg is sent when a generation round trip completes
type PairGeneratedMsg struct {
	Pair game.OptionPair
	Err  error
}

// CopiedMsg is sent after a round has been written to the clipboard
type CopiedMsg struct {
	Err error
}

// tunableGenerator is the optional part of a Generator whose model and
// temperature can change between rounds.
type tunableGenerator interface {
	SetModel(model string)
	SetTemperature(temperature float32)
}

// New creates a new app model
func New(cfg *config.Config, gen generation.Generator, version string) *Model {
	// Load saved theme from config, or use default
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	}

	m := &Model{
		config:    cfg,
		version:   version,
		generator: gen,
		session:   game.NewSession(cfg.StartCategory()),
		header:    ui.NewHeader(),
		footer:    ui.NewFooter(),
		board:     ui.NewBoard(),
		history:   ui.NewHistory(),
		modal:     ui.NewModal(),
	}

	m.header.SetCategory(string(m.session.Category))

	return m
}

// Session returns the current game session. Exposed for tests.
func (m *Model) Session() game.Session {
	return m.session
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return func() tea.Msg {
		return StartupModalMsg{}
	}
}

// startGeneration begins a round trip to the model for the current category.
// It is a no-op while a request is already in flight, so every trigger site
// shares a single-flight gate.
func (m *Model) startGeneration() tea.Cmd {
	if m.session.Loading {
		return nil
	}

	m.session = m.session.BeginGeneration()
	m.board.SetLoading(true)

	category := m.session.Category
	gen := m.generator
	logger.Log("App: Generating round for category %q", category)

	request := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), generationTimeout)
		defer cancel()

		pair, err := gen.Generate(ctx, category)
		return PairGeneratedMsg{Pair: pair, Err: err}
	}

	return tea.Batch(ui.BoardTick(), request)
}

// syncViews pushes the session state into the rendering components
func (m *Model) syncViews() {
	m.header.SetCategory(string(m.session.Category))

	if len(m.session.History) > 0 && m.session.Cursor >= 0 {
		m.header.SetRound(fmt.Sprintf("%d/%d", m.session.Cursor+1, len(m.session.History)))
	} else {
		m.header.SetRound("")
	}

	switch m.session.State() {
	case game.StateErrored:
		m.board.SetError(errorBanner(m.session.LastError))
	case game.StateIdle:
		if entry, ok := m.session.Current(); ok {
			m.board.SetOptions(entry.Pair.First, entry.Pair.Second)
		}
	}

	m.history.SetEntries(m.session.History, m.session.Cursor)
}

// errorBanner prefixes the stored failure reason for display
func errorBanner(reason string) string {
	if reason == "" {
		return "Generation failed"
	}
	return "Generation failed: " + reason
}

// failureReason converts a generation error into the text stored on the
// session, including the user-facing hint for the error kind.
func failureReason(err error) string {
	return errors.UserMessage(err)
}
