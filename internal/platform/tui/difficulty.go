package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-brickgame/internal/config"
)

var presetHints = map[config.DifficultyPreset]string{
	config.DifficultyEasy:   "slower start",
	config.DifficultyNormal: "as configured",
	config.DifficultyHard:   "faster start, denser sky",
	config.DifficultyFixed:  "no speed-up",
}

// DifficultyModel lets users choose a difficulty preset before a game starts.
type DifficultyModel struct {
	title     string
	cursor    int
	width     int
	keyMapper *KeyMapper
	selected  config.DifficultyPreset
	choosing  bool
	quitting  bool
	back      bool
}

// NewDifficultyModel creates a selector with the cursor on current.
func NewDifficultyModel(title string, current config.DifficultyPreset, width int) DifficultyModel {
	m := DifficultyModel{
		title:     title,
		width:     width,
		keyMapper: NewKeyMapper(),
		choosing:  true,
	}
	for i, p := range config.Presets {
		if p == current {
			m.cursor = i
		}
	}
	return m
}

// Init initializes the model.
func (m DifficultyModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m DifficultyModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

func (m DifficultyModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < len(config.Presets)-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.choosing = false
		m.selected = config.Presets[m.cursor]
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the preset list.
func (m DifficultyModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render(strings.ToUpper(m.title)), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select difficulty:", m.width))
	b.WriteString("\n\n")

	for i, p := range config.Presets {
		line := "  " + padRight(string(p), 8) + presetHints[p]
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + line[2:])
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render("Enter: Select  |  Backspace: Back  |  Esc: Quit"), m.width))
	return b.String()
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}

// Selected returns the chosen preset and whether one was chosen.
func (m DifficultyModel) Selected() (config.DifficultyPreset, bool) {
	return m.selected, !m.choosing
}

// IsQuitting returns true if user wants to quit.
func (m DifficultyModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m DifficultyModel) WantsBack() bool {
	return m.back
}

// RunDifficultySelector asks for a preset. ok is false when the user backed
// out; quit is true when they asked to leave the program.
func RunDifficultySelector(title string, current config.DifficultyPreset, width int) (preset config.DifficultyPreset, ok, quit bool, err error) {
	p := tea.NewProgram(
		NewDifficultyModel(title, current, width),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return current, false, false, err
	}

	m, isModel := finalModel.(DifficultyModel)
	if !isModel || m.IsQuitting() {
		return current, false, true, nil
	}
	preset, ok = m.Selected()
	return preset, ok, false, nil
}
