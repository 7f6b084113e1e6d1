package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/lightemall/internal/core"
	"github.com/vovakirdan/lightemall/internal/games/lightemall/levels"
)

// LevelSelection holds the user's choice from the level picker.
type LevelSelection struct {
	Level int // 0 = start from beginning, 1-N = specific level
}

// LevelMenuModel is the level picker. The first row starts the run from
// the first level; every other row is one level.
type LevelMenuModel struct {
	levels    []levels.Level
	table     table.Model
	keyMapper *KeyMapper
	theme     Theme
	width     int
	height    int
	selection LevelSelection
	choosing  bool
	quitting  bool
	back      bool
}

// NewLevelMenuModel creates a level picker for the given level set.
func NewLevelMenuModel(lvls []levels.Level, theme Theme, width, height int) LevelMenuModel {
	m := LevelMenuModel{
		levels:    lvls,
		keyMapper: NewKeyMapper(),
		theme:     theme,
		width:     width,
		height:    height,
		choosing:  true,
	}
	m.table = m.createTable()
	m.table.SetRows(m.rows())
	return m
}

// createTable builds the table sized to the current window.
func (m LevelMenuModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "ID", Width: 10},
		{Title: "Name", Width: 20},
		{Title: "Size", Width: 7},
		{Title: "Radius", Width: 8},
	}

	// Give spare width to the name column
	used := 4 + 10 + 7 + 8 + 2*len(columns) + 4
	if extra := m.width - used - columns[2].Width; extra > 0 {
		columns[2].Width = min(columns[2].Width+extra, 40)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-9, 3)), // Leave room for title, border and footer
	)

	s := table.DefaultStyles()
	s.Header = s.Header.Inherit(m.theme.TableHeader)
	s.Selected = s.Selected.Inherit(m.theme.TableSelected)
	t.SetStyles(s)

	return t
}

// rows lists the "start from beginning" entry followed by every level.
func (m LevelMenuModel) rows() []table.Row {
	rows := make([]table.Row, 0, len(m.levels)+1)
	rows = append(rows, table.Row{"", "", "Start from beginning", "", ""})
	for i, lvl := range m.levels {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			lvl.ID,
			lvl.Name,
			fmt.Sprintf("%dx%d", lvl.Rows, lvl.Cols),
			radiusLabel(lvl),
		})
	}
	return rows
}

// radiusLabel shows a fixed radius as is and a derived one as "auto".
func radiusLabel(lvl levels.Level) string {
	if lvl.Radius > 0 {
		return fmt.Sprintf("%d", lvl.Radius)
	}
	if r, err := lvl.EffectiveRadius(0); err == nil {
		return fmt.Sprintf("auto %d", r)
	}
	return "?"
}

// Init initializes the model.
func (m LevelMenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.table.SetRows(m.rows())
		m.table.SetCursor(cursor)
		return m, nil
	}
	return m, nil
}

func (m LevelMenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	case MenuActionSelect:
		m.choosing = false
		m.selection = LevelSelection{Level: m.table.Cursor()}
		return m, tea.Quit
	case MenuActionUp:
		m.table.MoveUp(1)
		return m, nil
	case MenuActionDown:
		m.table.MoveDown(1)
		return m, nil
	}

	// Paging and home/end
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the level picker.
func (m LevelMenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.theme.MenuTitle.Render("L I G H T E M A L L"), m.width))
	b.WriteString("\n\n")

	if len(m.levels) == 0 {
		b.WriteString(centerText(m.theme.Warning.Render("No levels found"), m.width))
		b.WriteString("\n")
	} else {
		b.WriteString(centerText(m.theme.MenuDescription.Render("Select a level:"), m.width))
		b.WriteString("\n\n")

		tableStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tableStyle.Render(m.table.View())))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := m.theme.Help.Render("Up/Down: Navigate  |  Enter: Select  |  Esc: Back  |  Q: Quit")
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selection, or nil if still choosing.
func (m LevelMenuModel) Selected() *LevelSelection {
	if m.choosing {
		return nil
	}
	return &m.selection
}

// IsQuitting returns true if user wants to quit.
func (m LevelMenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelMenuModel) WantsBack() bool {
	return m.back
}

// centerText pads text on the left so it sits in the middle of width
// columns. ANSI styling is ignored when measuring.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunLevelSelector runs the level picker and returns the selection, or nil
// when the user backed out.
func RunLevelSelector(lvls []levels.Level, theme Theme, cfg core.RuntimeConfig) (*LevelSelection, error) {
	model := NewLevelMenuModel(lvls, theme, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(LevelMenuModel)
	if !ok {
		return nil, nil
	}

	if m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}
