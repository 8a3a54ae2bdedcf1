// ============================================================================
// ffparse - FIRST/FOLLOW analysis and descent parsing
// ============================================================================
//
// Package:     viewer
// Description: Styles for the report viewer TUI
// License:     MIT
// ============================================================================

package viewer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color Palette
var (
	ColorPrimary   = lipgloss.Color("#8B5CF6") // Violet
	ColorSecondary = lipgloss.Color("#06B6D4") // Cyan
	ColorSuccess   = lipgloss.Color("#10B981") // Emerald
	ColorError     = lipgloss.Color("#EF4444") // Red
	ColorDimmed    = lipgloss.Color("#374151") // Dark Gray

	ColorBgPanel = lipgloss.Color("#1E293B") // Slate 800

	ColorText      = lipgloss.Color("#F8FAFC") // Slate 50
	ColorTextMuted = lipgloss.Color("#94A3B8") // Slate 400
	ColorTextDim   = lipgloss.Color("#64748B") // Slate 500
)

// Header styles
var (
	LogoStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	SubHeaderStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true)

	TitlePanelStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(ColorPrimary).
			Padding(0, 2)
)

// Tab styles
var (
	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorPrimary).
			Bold(true).
			Padding(0, 1)

	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(ColorTextDim).
				Padding(0, 1)
)

// Report content styles
var (
	ReportPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorDimmed).
				Padding(0, 1)

	HeadingStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary).
			Bold(true)

	SymbolStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	TerminalStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorTextStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)
)

// Status and help styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(ColorBgPanel).
			Foreground(ColorText).
			Padding(0, 1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// Logo
const Logo = "ffparse reports"

// RenderKeyHint renders a keyboard shortcut hint
func RenderKeyHint(key, description string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(description)
}

// RenderTab renders a tab label
func RenderTab(label string, active bool) string {
	if active {
		return ActiveTabStyle.Render(label)
	}
	return InactiveTabStyle.Render(label)
}

// HighlightReport styles the content of one report file line by line
func HighlightReport(name, content string) string {
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	for i, line := range lines {
		lines[i] = highlightLine(name, i, line)
	}
	return strings.Join(lines, "\n")
}

func highlightLine(name string, index int, line string) string {
	switch {
	case name == "error.txt":
		return ErrorTextStyle.Render(line)
	case strings.HasSuffix(line, " (Terminal)"):
		return TerminalStyle.Render(line)
	case index == 0 && strings.HasSuffix(line, ":"):
		return HeadingStyle.Render(line)
	case name == "first.txt" || name == "follow.txt":
		if head, rest, ok := strings.Cut(line, ": "); ok {
			return SymbolStyle.Render(head) + ": " + rest
		}
	}
	return line
}
