package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/star-pusher/internal/core"
	"github.com/vovakirdan/star-pusher/internal/registry"
	"github.com/vovakirdan/star-pusher/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForSidebar = 90 // Minimum width to show the pack sidebar
	sidebarWidth       = 20 // Width of pack list sidebar
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextPack key.Binding
	PrevPack key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextPack, k.PrevPack, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextPack, k.PrevPack},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextPack: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next pack"),
		),
		PrevPack: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/←", "prev pack"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the best result of every level in a pack.
type ScoreboardModel struct {
	packs       []registry.PackInfo
	packCursor  int
	store       *storage.Store
	rows        []storage.LevelBest
	titles      map[string][]string // level titles per pack, loaded lazily
	stats       *storage.PackStats
	table       table.Model
	help        help.Model
	keys        ScoreboardKeyMap
	theme       Theme
	width       int
	height      int
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, width, height int, theme Theme) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		packs:       registry.List(),
		store:       store,
		titles:      make(map[string][]string),
		keys:        DefaultScoreboardKeyMap(),
		help:        h,
		theme:       theme,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	m.table = m.createTable()
	if len(m.packs) > 0 {
		m.load(m.packs[0].ID)
	}
	return m
}

// createTable creates a new table with columns sized to the window.
func (m *ScoreboardModel) createTable() table.Model {
	tableWidth := m.width - 6
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3
	}
	titleWidth := core.Clamp(tableWidth-42, 10, 28)

	columns := []table.Column{
		{Title: "Level", Width: 6},
		{Title: "Title", Width: titleWidth},
		{Title: "Best", Width: 6},
		{Title: "Solves", Width: 7},
		{Title: "By", Width: 10},
		{Title: "Date", Width: 12},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load reads the results of a pack from the store.
func (m *ScoreboardModel) load(packID string) {
	m.rows, m.stats = nil, nil
	if m.store != nil {
		if rows, err := m.store.BestByLevel(packID); err == nil {
			m.rows = rows
		}
		if stats, err := m.store.PackStats(packID); err == nil {
			m.stats = stats
		}
	}

	if _, ok := m.titles[packID]; !ok {
		var titles []string
		if lvls, err := registry.Create(packID); err == nil {
			for _, l := range lvls {
				titles = append(titles, l.Title)
			}
		}
		m.titles[packID] = titles
	}

	m.updateTableRows()
}

// updateTableRows refreshes the table from the loaded results.
func (m *ScoreboardModel) updateTableRows() {
	var titles []string
	if len(m.packs) > 0 {
		titles = m.titles[m.packs[m.packCursor].ID]
	}

	rows := make([]table.Row, len(m.rows))
	for i, r := range m.rows {
		title := ""
		if r.Level < len(titles) {
			title = titles[r.Level]
		}
		player := r.Player
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.Level+1),
			title,
			fmt.Sprintf("%d", r.BestSteps),
			fmt.Sprintf("%d", r.Solves),
			player,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextPack):
			if len(m.packs) > 0 {
				m.packCursor = (m.packCursor + 1) % len(m.packs)
				m.load(m.packs[m.packCursor].ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevPack):
			if len(m.packs) > 0 {
				m.packCursor = (m.packCursor - 1 + len(m.packs)) % len(m.packs)
				m.load(m.packs[m.packCursor].ID)
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	title := "BEST SOLVES"
	if len(m.packs) > 0 {
		title = fmt.Sprintf("BEST SOLVES - %s", m.packs[m.packCursor].Title)
	}
	b.WriteString(centerText(m.theme.MenuTitle.Render(title), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuDescription.Render(m.summary()), m.width))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	b.WriteString("\n")
	b.WriteString(m.theme.MenuControls.Render(m.help.View(m.keys)))

	return b.String()
}

// summary is the one-line pack statistics under the title.
func (m ScoreboardModel) summary() string {
	if len(m.packs) == 0 {
		return "no packs registered"
	}
	total := len(m.titles[m.packs[m.packCursor].ID])
	if m.stats == nil || m.stats.Solves == 0 {
		return fmt.Sprintf("0 of %d levels solved", total)
	}
	return fmt.Sprintf("%d of %d levels solved  |  %d solves  |  %d best steps total",
		m.stats.LevelsSolved, total, m.stats.Solves, m.stats.TotalBest)
}

// renderWideLayout renders the scoreboard with sidebar for pack selection.
func (m ScoreboardModel) renderWideLayout() string {
	sidebarStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(sidebarWidth).
		Padding(0, 1)

	var sidebar strings.Builder
	sidebar.WriteString("Packs\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, p := range m.packs {
		cursor := "  "
		style := m.theme.MenuItemNormal
		if i == m.packCursor {
			cursor = "> "
			style = m.theme.MenuItemActive
		}
		sidebar.WriteString(style.Render(cursor + truncate(p.Title, sidebarWidth-6)))
		sidebar.WriteString("\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		sidebarStyle.Render(sidebar.String()), "  ", tableStyle.Render(m.renderTableContent()))
}

// renderNarrowLayout renders the scoreboard with the current pack name above
// the table.
func (m ScoreboardModel) renderNarrowLayout() string {
	var b strings.Builder

	if len(m.packs) > 0 {
		b.WriteString(centerText(fmt.Sprintf("< %s >", m.packs[m.packCursor].Title), m.width))
		b.WriteString("\n\n")
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	b.WriteString(centerText(tableStyle.Render(m.renderTableContent()), m.width))
	return b.String()
}

// renderTableContent renders the table or an empty message.
func (m ScoreboardModel) renderTableContent() string {
	if len(m.rows) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No solves recorded yet.\nFinish a level to get on the board!")
	}
	return m.table.View()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int, theme Theme) (goBack bool, err error) {
	model := NewScoreboardModel(store, width, height, theme)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
