// ============================================================================
// ffparse - FIRST/FOLLOW analysis and descent parsing
// ============================================================================
//
// Package:     viewer
// Description: Bubbletea model paging through the reports of one directory
// License:     MIT
// ============================================================================

package viewer

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/afero"

	"github.com/msto63/ffparse/internal/report"
	"github.com/msto63/ffparse/pkg/core/version"
)

// Config holds viewer configuration
type Config struct {
	Fs  afero.Fs
	Dir string
}

// Model is the Bubbletea model of the report viewer
type Model struct {
	// State
	width   int
	height  int
	ready   bool
	loading bool
	err     error

	// Components
	viewport viewport.Model
	spinner  spinner.Model

	// Reports
	tabs   []Tab
	active int

	// Configuration
	fs  afero.Fs
	dir string
}

// New creates a viewer model
func New(cfg Config) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(ColorPrimary)

	fs := cfg.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	return Model{
		spinner: sp,
		loading: true,
		fs:      fs,
		dir:     cfg.Dir,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadReports)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 5 // Title + tabs
		footerHeight := 3 // Status bar + help
		viewportHeight := msg.Height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.updateViewportContent()

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case reportsLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.tabs = msg.tabs
			if m.active >= len(m.tabs) {
				m.active = 0
			}
			m.updateViewportContent()
		}

	case refreshMsg:
		m.loading = true
		cmds = append(cmds, m.loadReports)
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyTab:
		m.selectTab(m.active + 1)
		return m, nil

	case tea.KeyShiftTab:
		m.selectTab(m.active - 1)
		return m, nil

	case tea.KeyRunes:
		key := string(msg.Runes)
		switch key {
		case "q":
			return m, tea.Quit

		case "r":
			m.loading = true
			return m, m.loadReports

		case "g":
			m.viewport.GotoTop()
			return m, nil

		case "G":
			m.viewport.GotoBottom()
			return m, nil
		}

		// Direct tab selection
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if idx := int(key[0] - '1'); idx < len(m.tabs) {
				m.active = idx
				m.updateViewportContent()
			}
		}
		return m, nil

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil

	case tea.KeyUp:
		m.viewport.LineUp(1)
		return m, nil

	case tea.KeyDown:
		m.viewport.LineDown(1)
		return m, nil
	}

	return m, nil
}

// selectTab moves to tab i, wrapping around at both ends
func (m *Model) selectTab(i int) {
	if len(m.tabs) == 0 {
		return
	}
	m.active = (i%len(m.tabs) + len(m.tabs)) % len(m.tabs)
	m.updateViewportContent()
}

// ActiveTab returns the name of the selected report, empty if none
func (m Model) ActiveTab() string {
	if len(m.tabs) == 0 {
		return ""
	}
	return m.tabs[m.active].Name
}

// Tabs returns the names of the loaded reports
func (m Model) Tabs() []string {
	names := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		names[i] = t.Name
	}
	return names
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading reports..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(m.renderTabs())
	b.WriteString("\n")

	b.WriteString(ReportPanelStyle.Width(m.width - 2).Render(m.viewport.View()))
	b.WriteString("\n")

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")

	b.WriteString(m.renderHelpBar())

	return b.String()
}

// renderHeader renders the header with logo and directory
func (m Model) renderHeader() string {
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		LogoStyle.Render(Logo),
		strings.Repeat(" ", 3),
		SubHeaderStyle.Render(m.dir),
	)
	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

// renderTabs renders one label per report
func (m Model) renderTabs() string {
	if len(m.tabs) == 0 {
		return InactiveTabStyle.Render("no reports")
	}

	labels := make([]string, len(m.tabs))
	for i, t := range m.tabs {
		labels[i] = RenderTab(fmt.Sprintf("%d:%s", i+1, strings.TrimSuffix(t.Name, ".txt")), i == m.active)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, labels...)
}

// renderStatusBar renders the status bar
func (m Model) renderStatusBar() string {
	var left string
	switch {
	case m.loading:
		left = m.spinner.View() + " Loading..."
	case m.err != nil:
		left = ErrorTextStyle.Render(m.err.Error())
	default:
		left = HelpDescStyle.Render(fmt.Sprintf("%d reports", len(m.tabs)))
	}

	right := HelpDescStyle.Render(fmt.Sprintf("%3.f%%  v%s", m.viewport.ScrollPercent()*100, version.Tool))

	padding := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if padding < 2 {
		padding = 2
	}

	return StatusBarStyle.Width(m.width - 2).Render(left + strings.Repeat(" ", padding) + right)
}

// renderHelpBar renders the help shortcuts bar
func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("tab", "Next"),
		RenderKeyHint("1-9", "Report"),
		RenderKeyHint("↑/↓", "Scroll"),
		RenderKeyHint("g/G", "Top/Bottom"),
		RenderKeyHint("r", "Reload"),
		RenderKeyHint("q", "Quit"),
	}
	return strings.Join(items, "  ")
}

// updateViewportContent shows the selected report
func (m *Model) updateViewportContent() {
	if len(m.tabs) == 0 {
		m.viewport.SetContent(HelpDescStyle.Render("No report files in " + m.dir))
		return
	}
	tab := m.tabs[m.active]
	m.viewport.SetContent(HighlightReport(tab.Name, tab.Content))
	m.viewport.GotoTop()
}

// loadReports reads every known report file present in the directory
func (m Model) loadReports() tea.Msg {
	var tabs []Tab
	for _, name := range report.Files {
		path := filepath.Join(m.dir, name)
		exists, err := afero.Exists(m.fs, path)
		if err != nil {
			return reportsLoadedMsg{err: err}
		}
		if !exists {
			continue
		}

		data, err := afero.ReadFile(m.fs, path)
		if err != nil {
			return reportsLoadedMsg{err: err}
		}
		tabs = append(tabs, Tab{Name: name, Content: string(data)})
	}
	return reportsLoadedMsg{tabs: tabs}
}

// Run starts the viewer TUI
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
