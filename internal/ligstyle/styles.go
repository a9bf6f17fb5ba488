package ligstyle

import "github.com/charmbracelet/lipgloss"

// Terminal styles shared by the lint reporters, the tags table and the CLI.
var (
	// StyleCyan marks issue locations and table headers.
	StyleCyan = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// StyleRed marks errors and stale output.
	StyleRed = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	// StyleYellow marks warnings and carets.
	StyleYellow = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	// StyleGreen marks a written or up-to-date userstyle.
	StyleGreen = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	StyleGray  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderStyle returns text unchanged unless useColors is set.
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}
