package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bastion/internal/content"
	"github.com/vovakirdan/tui-bastion/internal/core"
)

// BastionMode represents the selected game mode.
type BastionMode int

const (
	BastionModeCampaign BastionMode = iota
	BastionModeEndless
)

// BastionSelection holds the user's selection from the mode menu.
type BastionSelection struct {
	Mode    BastionMode
	LevelID string // campaign level, empty for endless
	MapID   string // endless map, empty for campaign
}

// bastionMenuPage identifies which list the selector is showing.
type bastionMenuPage int

const (
	pageModeSelect bastionMenuPage = iota
	pageLevelSelect
	pageMapSelect
)

// BastionModeModel lets users choose game mode, level, and map.
type BastionModeModel struct {
	page       bastionMenuPage
	cursor     int
	listCursor int
	width      int
	height     int
	keyMapper  *KeyMapper
	levels     []*content.Level
	maps       []*content.Map
	selection  BastionSelection
	choosing   bool
	quitting   bool
	back       bool
}

// NewBastionModeModel creates a new mode selection model.
func NewBastionModeModel(width, height int) BastionModeModel {
	return BastionModeModel{
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
		levels:    content.Levels(),
		maps:      content.Maps(),
		choosing:  true,
	}
}

// Init initializes the model.
func (m BastionModeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m BastionModeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m BastionModeModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch m.page {
	case pageLevelSelect:
		return m.handleListKey(action, len(m.levels), func(i int) BastionSelection {
			return BastionSelection{Mode: BastionModeCampaign, LevelID: m.levels[i].ID}
		})
	case pageMapSelect:
		return m.handleListKey(action, len(m.maps), func(i int) BastionSelection {
			return BastionSelection{Mode: BastionModeEndless, MapID: m.maps[i].ID}
		})
	default:
		return m.handleModeSelectKey(action)
	}
}

func (m BastionModeModel) handleModeSelectKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < 1 { // 2 options: Campaign, Endless
			m.cursor++
		}
	case MenuActionSelect:
		switch m.cursor {
		case 0:
			m.page = pageLevelSelect
		case 1:
			m.page = pageMapSelect
		}
		m.listCursor = 0
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// handleListKey drives the level and map pickers; pick builds the selection
// for the highlighted entry.
func (m BastionModeModel) handleListKey(action MenuAction, count int, pick func(int) BastionSelection) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.listCursor > 0 {
			m.listCursor--
		}
	case MenuActionDown:
		if m.listCursor < count-1 {
			m.listCursor++
		}
	case MenuActionSelect:
		if count > 0 {
			m.choosing = false
			m.selection = pick(m.listCursor)
			return m, tea.Quit
		}
	case MenuActionBack:
		m.page = pageModeSelect
	}

	return m, nil
}

// View renders the mode/level/map selection.
func (m BastionModeModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.page {
	case pageLevelSelect:
		return m.viewLevelSelect()
	case pageMapSelect:
		return m.viewMapSelect()
	default:
		return m.viewModeSelect()
	}
}

func (m BastionModeModel) viewModeSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("B A S T I O N", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select game mode:", m.width))
	b.WriteString("\n\n")

	modes := []string{
		fmt.Sprintf("Campaign (%d levels)", len(m.levels)),
		"Endless Mode",
	}

	for i, mode := range modes {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%s", cursor, mode), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m BastionModeModel) viewLevelSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT LEVEL", m.width))
	b.WriteString("\n\n")

	for i, lvl := range m.levels {
		cursor := "  "
		if i == m.listCursor {
			cursor = "> "
		}

		mapName := lvl.MapID
		if mp := content.MapByID(lvl.MapID); mp != nil {
			mapName = mp.Name
		}
		line := fmt.Sprintf("%s%s  (%s, %d waves)", cursor, lvl.Name, mapName, len(lvl.Waves))
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

func (m BastionModeModel) viewMapSelect() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText("SELECT MAP", m.width))
	b.WriteString("\n\n")

	for i, mp := range m.maps {
		cursor := "  "
		if i == m.listCursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%s  (%dx%d)", cursor, mp.Name, mp.Cols, mp.Rows)
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText("Enter: Select  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m BastionModeModel) Selected() *BastionSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsChoosing returns true if still in selection mode.
func (m BastionModeModel) IsChoosing() bool {
	return m.choosing
}

// IsQuitting returns true if user wants to quit.
func (m BastionModeModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m BastionModeModel) WantsBack() bool {
	return m.back
}

// RunBastionModeSelector runs the mode selection and returns the selection.
// A nil selection means the user backed out or quit.
func RunBastionModeSelector(cfg core.RuntimeConfig) (*BastionSelection, core.RuntimeConfig, error) {
	model := NewBastionModeModel(cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, cfg, err
	}

	m, ok := finalModel.(BastionModeModel)
	if !ok {
		return nil, cfg, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, cfg, nil
	}

	return m.Selected(), cfg, nil
}
