package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Status line styles
var (
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EF4444")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8"))

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8B5CF6")).
			Bold(true)
)

func printSuccess(format string, args ...interface{}) {
	fmt.Println(successStyle.Render("[+]") + " " + fmt.Sprintf(format, args...))
}

func printFailure(format string, args ...interface{}) {
	fmt.Println(errorStyle.Render("[-]") + " " + fmt.Sprintf(format, args...))
}

func printField(label string, value interface{}) {
	fmt.Printf("  %s %v\n", labelStyle.Render(fmt.Sprintf("%-12s", label+":")), value)
}
