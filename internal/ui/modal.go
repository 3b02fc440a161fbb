package ui

import (
	"fmt"
	"strconv"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/thisorthat/internal/game"
)

// ModalState is a discriminated union interface for modal-specific state.
// Each modal type implements this interface with its own state struct,
// ensuring type-safe access to modal-specific fields.
type ModalState interface {
	modalState() // marker method to restrict implementations
	Title() string
	Help() string
	Render() string
	Update(msg tea.Msg) (ModalState, tea.Cmd)
}

// Modal represents a popup dialog with type-safe state management.
// The State field is nil when no modal is visible.
type Modal struct {
	State ModalState
	error string
}

// NewModal creates a new modal
func NewModal() *Modal {
	return &Modal{}
}

// Show displays a modal with the given state
func (m *Modal) Show(state ModalState) {
	m.State = state
	m.error = ""
}

// Hide hides the modal
func (m *Modal) Hide() {
	m.State = nil
	m.error = ""
}

// IsVisible returns whether the modal is visible
func (m *Modal) IsVisible() bool {
	return m.State != nil
}

// SetError sets an error message
func (m *Modal) SetError(err string) {
	m.error = err
}

// GetError returns the current error message
func (m *Modal) GetError() string {
	return m.error
}

// Update handles messages by delegating to the current state
func (m *Modal) Update(msg tea.Msg) (*Modal, tea.Cmd) {
	if m.State == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.State, cmd = m.State.Update(msg)
	return m, cmd
}

// View renders the modal centered on the screen
func (m *Modal) View(screenWidth, screenHeight int) string {
	if m.State == nil {
		return ""
	}

	content := m.State.Render()

	if m.error != "" {
		content += "\n" + StatusErrorStyle.Render(m.error)
	}

	modal := ModalStyle.Render(content)

	return lipgloss.Place(
		screenWidth, screenHeight,
		lipgloss.Center, lipgloss.Center,
		modal,
	)
}

// =============================================================================
// CategoryState - State for the category picker modal
// =============================================================================

type CategoryState struct {
	form        *huh.Form
	initialized bool
	selected    string
}

func (*CategoryState) modalState() {}

func (s *CategoryState) Title() string { return "Pick a Category" }

func (s *CategoryState) Help() string {
	return "↑/↓ to select, Enter to confirm, Esc to cancel"
}

func (s *CategoryState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *CategoryState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, &s.initialized, msg)
	return s, cmd
}

// Selected returns the category the user has highlighted
func (s *CategoryState) Selected() game.Category {
	return game.Category(s.selected)
}

// NewCategoryState creates a new CategoryState with the current category
// preselected
func NewCategoryState(current game.Category) *CategoryState {
	categories := game.Categories()
	options := make([]huh.Option[string], len(categories))
	for i, c := range categories {
		options[i] = huh.NewOption(string(c), string(c))
	}

	s := &CategoryState{selected: string(current)}

	s.form = huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Options(options...).
			Height(len(categories)).
			Value(&s.selected),
	)).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth)

	initHuhForm(s.form)
	s.initialized = true

	return s
}

// =============================================================================
// SettingsState - State for the settings modal
// =============================================================================

type SettingsState struct {
	form        *huh.Form
	initialized bool

	theme       string
	model       string
	temperature string
}

func (*SettingsState) modalState() {}

func (s *SettingsState) Title() string { return "Settings" }

func (s *SettingsState) Help() string {
	return "Tab: next field  Enter: save  Esc: cancel"
}

func (s *SettingsState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, s.form.View(), help)
}

func (s *SettingsState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, &s.initialized, msg)
	return s, cmd
}

// SelectedTheme returns the chosen theme name
func (s *SettingsState) SelectedTheme() ThemeName {
	return ThemeName(s.theme)
}

// SelectedModel returns the chosen model name
func (s *SettingsState) SelectedModel() string {
	return s.model
}

// SelectedTemperature returns the chosen sampling temperature
func (s *SettingsState) SelectedTemperature() (float32, error) {
	f, err := strconv.ParseFloat(s.temperature, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid temperature %q", s.temperature)
	}
	return float32(f), nil
}

// NewSettingsState creates a new SettingsState seeded with the current values
func NewSettingsState(currentTheme ThemeName, model string, temperature float32) *SettingsState {
	themeOptions := make([]huh.Option[string], 0, len(ThemeNames()))
	for _, name := range ThemeNames() {
		themeOptions = append(themeOptions, huh.NewOption(GetTheme(name).Name, string(name)))
	}

	tempOptions := []huh.Option[string]{
		huh.NewOption("0.2 (predictable)", "0.2"),
		huh.NewOption("0.5", "0.5"),
		huh.NewOption("0.7", "0.7"),
		huh.NewOption("0.9 (playful)", "0.9"),
		huh.NewOption("1.0 (chaotic)", "1.0"),
	}

	s := &SettingsState{
		theme:       string(currentTheme),
		model:       model,
		temperature: strconv.FormatFloat(float64(temperature), 'f', 1, 32),
	}

	s.form = huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Theme").
			Options(themeOptions...).
			Value(&s.theme),
		huh.NewInput().
			Title("Model").
			Placeholder("gemini-2.0-flash-001").
			CharLimit(ModelNameCharLimit).
			Value(&s.model),
		huh.NewSelect[string]().
			Title("Temperature").
			Options(tempOptions...).
			Value(&s.temperature),
	)).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth)

	initHuhForm(s.form)
	s.initialized = true

	return s
}

// =============================================================================
// HelpState - State for the keyboard shortcuts modal
// =============================================================================

// HelpShortcut is a single keyboard shortcut line in the help modal
type HelpShortcut struct {
	Key  string
	Desc string
}

type HelpState struct {
	Shortcuts []HelpShortcut
}

func (*HelpState) modalState() {}

func (s *HelpState) Title() string { return "Keyboard Shortcuts" }

func (s *HelpState) Help() string {
	return "Press Enter or Esc to close"
}

func (s *HelpState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	var content string
	for _, sc := range s.Shortcuts {
		key := lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			Width(12).
			Render(sc.Key)
		desc := lipgloss.NewStyle().
			Foreground(ColorText).
			Render(sc.Desc)
		content += key + desc + "\n"
	}

	help := ModalHelpStyle.Render(s.Help())

	return lipgloss.JoinVertical(lipgloss.Left, title, content, help)
}

func (s *HelpState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	return s, nil
}

// NewHelpState creates a new HelpState with the full shortcut list
func NewHelpState() *HelpState {
	return &HelpState{
		Shortcuts: []HelpShortcut{
			{Key: "n / space", Desc: "Next question"},
			{Key: "p / ←", Desc: "Previous question"},
			{Key: "c", Desc: "Change category"},
			{Key: "y", Desc: "Copy question to clipboard"},
			{Key: "h", Desc: "Toggle history"},
			{Key: "t", Desc: "Settings"},
			{Key: "?", Desc: "This help"},
			{Key: "q", Desc: "Quit"},
		},
	}
}
