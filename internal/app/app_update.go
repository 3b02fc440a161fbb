package app

import (
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/thisorthat/internal/clipboard"
	"github.com/zhubert/thisorthat/internal/keys"
	"github.com/zhubert/thisorthat/internal/logger"
	"github.com/zhubert/thisorthat/internal/ui"
)

// Update handles messages. This is the core Bubble Tea update function that
// routes all messages to appropriate handlers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()

	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)

	case StartupModalMsg:
		m.modal.Show(ui.NewCategoryState(m.session.Category))
		return m, nil

	case PairGeneratedMsg:
		return m.handlePairGenerated(msg)

	case CopiedMsg:
		if msg.Err != nil {
			logger.Log("App: Copy failed: %v", msg.Err)
		}
		return m, nil

	case ui.BoardTickMsg:
		if m.board.IsLoading() {
			m.board.AdvanceSpinner()
			cmds = append(cmds, ui.BoardTick())
		}
	}

	// Scroll messages go to the history overlay while it is open
	if m.history.IsVisible() {
		if cmd := m.history.Update(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// handlePairGenerated folds a completed round trip into the session
func (m *Model) handlePairGenerated(msg PairGeneratedMsg) (tea.Model, tea.Cmd) {
	m.board.SetLoading(false)

	requested := m.session.InFlight

	if msg.Err != nil {
		logger.Log("App: Generation failed: %v", msg.Err)
		m.session = m.session.FailGeneration(failureReason(msg.Err))
	} else {
		m.session = m.session.CompleteGeneration(msg.Pair)
	}

	m.syncViews()

	// A category picked while the call was in flight waits its turn: the
	// result is folded in under the category it was generated for, then the
	// pending request goes out.
	if requested != "" && requested != m.session.Category && m.session.NeedsGeneration() {
		return m, m.startGeneration()
	}
	return m, nil
}

// handleKeyPress handles all keyboard input
func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Ctrl+C always quits, even inside a modal
	if key == keys.CtrlC {
		return m, tea.Quit
	}

	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	if m.history.IsVisible() {
		return m.handleHistoryKey(msg)
	}

	switch key {
	case "q":
		return m, tea.Quit

	case "n", keys.Space:
		return m, m.startGeneration()

	case "p", keys.Left:
		if m.session.CanStepBack() {
			m.session = m.session.StepBack()
			m.syncViews()
		}
		return m, nil

	case "c":
		m.modal.Show(ui.NewCategoryState(m.session.Category))
		return m, nil

	case "y":
		return m, m.copyRound()

	case "h":
		m.history.SetEntries(m.session.History, m.session.Cursor)
		m.history.Toggle()
		return m, nil

	case "t":
		m.modal.Show(ui.NewSettingsState(
			ui.CurrentThemeName(),
			m.config.GetModel(),
			m.config.GetTemperature(0.9),
		))
		return m, nil

	case "?":
		m.modal.Show(ui.NewHelpState())
		return m, nil
	}

	return m, nil
}

// handleModalKey routes keys while a modal is open. Enter confirms, Escape
// cancels, everything else goes to the modal state.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Escape:
		_, picker := m.modal.State.(*ui.CategoryState)
		m.modal.Hide()
		// Dismissing the picker before any round exists still loads one,
		// for whatever category is currently selected.
		if picker && m.session.InitialLoad() {
			return m, m.startGeneration()
		}
		return m, nil

	case keys.Enter:
		return m.confirmModal()
	}

	var cmd tea.Cmd
	m.modal, cmd = m.modal.Update(msg)
	return m, cmd
}

// confirmModal applies the open modal's result
func (m *Model) confirmModal() (tea.Model, tea.Cmd) {
	switch state := m.modal.State.(type) {
	case *ui.CategoryState:
		return m.confirmCategory(state)

	case *ui.SettingsState:
		return m.confirmSettings(state)

	default:
		m.modal.Hide()
		return m, nil
	}
}

// confirmCategory applies the picked category. A new round is only requested
// when the round on the board does not match the selection; while a call is
// in flight the request is deferred until that call resolves.
func (m *Model) confirmCategory(state *ui.CategoryState) (tea.Model, tea.Cmd) {
	selected := state.Selected()
	m.modal.Hide()

	m.session = m.session.SelectCategory(selected)
	m.syncViews()

	m.config.SetDefaultCategory(selected)
	if err := m.config.Save(); err != nil {
		logger.Log("App: Failed to save config: %v", err)
	}

	if m.session.NeedsGeneration() {
		return m, m.startGeneration()
	}
	return m, nil
}

// confirmSettings applies and persists the settings form
func (m *Model) confirmSettings(state *ui.SettingsState) (tea.Model, tea.Cmd) {
	temp, err := state.SelectedTemperature()
	if err != nil {
		m.modal.SetError(err.Error())
		return m, nil
	}

	theme := state.SelectedTheme()
	ui.SetTheme(theme)
	m.config.SetTheme(string(theme))
	m.config.SetModel(state.SelectedModel())
	m.config.SetTemperature(temp)

	// The running generator picks the new values up too; a restart is not
	// required for them to take effect.
	if gen, ok := m.generator.(tunableGenerator); ok {
		gen.SetModel(state.SelectedModel())
		gen.SetTemperature(temp)
	}

	m.modal.Hide()

	if err := m.config.Save(); err != nil {
		logger.Log("App: Failed to save config: %v", err)
	}
	return m, nil
}

// handleHistoryKey routes keys while the history overlay is open
func (m *Model) handleHistoryKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keys.Escape, "h", "q":
		m.history.Hide()
		return m, nil
	}

	return m, m.history.Update(msg)
}

// copyRound writes the round on the board to the system clipboard
func (m *Model) copyRound() tea.Cmd {
	text := m.board.Plain()
	if text == "" {
		return nil
	}

	return func() tea.Msg {
		return CopiedMsg{Err: clipboard.WriteText(text)}
	}
}
