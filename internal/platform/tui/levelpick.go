package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/star-pusher/internal/core"
	pcore "github.com/vovakirdan/star-pusher/internal/games/pusher/core"
	"github.com/vovakirdan/star-pusher/internal/storage"
)

// LevelSelection holds the user's choice from the level picker.
type LevelSelection struct {
	Level int // 0-based level index
}

// levelEntry is one row of the picker.
type levelEntry struct {
	title string
	best  int // 0 when unsolved
}

// LevelPickerModel lets the player choose where to start in a pack.
// Row 0 continues at the first unsolved level.
type LevelPickerModel struct {
	packTitle    string
	entries      []levelEntry
	resume       int // first unsolved level
	cursor       int
	width        int
	height       int
	keyMapper    *KeyMapper
	theme        Theme
	selection    LevelSelection
	choosing     bool
	quitting     bool
	back         bool
	scrollOffset int
}

// NewLevelPickerModel builds a picker for the given levels. Best results
// are read from store when it is not nil.
func NewLevelPickerModel(packID, packTitle string, levels []*pcore.Level, store *storage.Store, cfg core.RuntimeConfig, theme Theme) LevelPickerModel {
	best := make(map[int]int)
	if store != nil {
		if rows, err := store.BestByLevel(packID); err == nil {
			for _, r := range rows {
				best[r.Level] = r.BestSteps
			}
		}
	}

	entries := make([]levelEntry, len(levels))
	resume := -1
	for i, l := range levels {
		title := l.Title
		if title == "" {
			title = fmt.Sprintf("%dx%d", l.Width, l.Height)
		}
		entries[i] = levelEntry{title: title, best: best[i]}
		if _, ok := best[i]; !ok && resume < 0 {
			resume = i
		}
	}
	if resume < 0 {
		resume = 0
	}

	return LevelPickerModel{
		packTitle: packTitle,
		entries:   entries,
		resume:    resume,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		keyMapper: NewKeyMapper(),
		theme:     theme,
		choosing:  true,
	}
}

// Init initializes the model.
func (m LevelPickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateScroll()
		return m, nil
	}
	return m, nil
}

func (m LevelPickerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
			m.updateScroll()
		}
	case MenuActionDown:
		if m.cursor < len(m.entries) {
			m.cursor++
			m.updateScroll()
		}
	case MenuActionSelect:
		if len(m.entries) == 0 {
			return m, nil
		}
		m.choosing = false
		if m.cursor == 0 {
			m.selection = LevelSelection{Level: m.resume}
		} else {
			m.selection = LevelSelection{Level: m.cursor - 1}
		}
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}

	return m, nil
}

// visibleItems is how many level rows fit below the header.
func (m LevelPickerModel) visibleItems() int {
	return max(m.height-10, 3)
}

// updateScroll adjusts scroll offset to keep cursor visible.
func (m *LevelPickerModel) updateScroll() {
	// cursor 0 is the resume row; level rows start at 1
	row := max(m.cursor-1, 0)
	visible := m.visibleItems()

	if row < m.scrollOffset {
		m.scrollOffset = row
	} else if row >= m.scrollOffset+visible {
		m.scrollOffset = row - visible + 1
	}
}

// View renders the level selection.
func (m LevelPickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render(strings.ToUpper(m.packTitle)), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.theme.MenuDescription.Render("Select a level:"), m.width))
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		b.WriteString(centerText(m.theme.MenuItemNormal.Render("This pack has no levels"), m.width))
		b.WriteString("\n")
	} else if m.scrollOffset == 0 {
		cursor := "  "
		style := m.theme.MenuItemNormal
		if m.cursor == 0 {
			cursor = "> "
			style = m.theme.MenuItemActive
		}
		line := style.Render(fmt.Sprintf("%sContinue (level %d)", cursor, m.resume+1))
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	start := m.scrollOffset
	end := min(start+m.visibleItems(), len(m.entries))

	for i := start; i < end; i++ {
		cursor := "  "
		style := m.theme.MenuItemNormal
		if i+1 == m.cursor {
			cursor = "> "
			style = m.theme.MenuItemActive
		}

		e := m.entries[i]
		status := "        "
		if e.best > 0 {
			status = fmt.Sprintf("%5d st", e.best)
		}
		line := style.Render(fmt.Sprintf("%s%2d. %-24s %s", cursor, i+1, e.title, status))
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if m.scrollOffset > 0 {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more above ..."), m.width))
		b.WriteString("\n")
	}
	if end < len(m.entries) {
		b.WriteString(centerText(m.theme.MenuDescription.Render("... more below ..."), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := m.theme.MenuControls.Render("Up/Down: Navigate  |  Enter: Select  |  Esc: Back  |  Q: Quit")
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m LevelPickerModel) Selected() *LevelSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m LevelPickerModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelPickerModel) WantsBack() bool {
	return m.back
}

// RunLevelPicker runs the level selection. The selection is nil when the
// player backed out; quit reports a request to leave the program.
func RunLevelPicker(packID, packTitle string, levels []*pcore.Level, store *storage.Store, cfg core.RuntimeConfig, theme Theme) (sel *LevelSelection, quit bool, err error) {
	model := NewLevelPickerModel(packID, packTitle, levels, store, cfg, theme)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, false, err
	}

	m, ok := finalModel.(LevelPickerModel)
	if !ok {
		return nil, true, nil
	}

	if m.IsQuitting() {
		return nil, true, nil
	}
	if m.WantsBack() {
		return nil, false, nil
	}
	return m.Selected(), false, nil
}
