package components

import (
	"charm.land/lipgloss/v2"

	"github.com/ethiolearn/ethiolearn/internal/ui/theme"
)

// StatCard is a small bordered box showing one labeled value, laid out in
// a row on the dashboard.
type StatCard struct {
	Icon  string
	Label string
	Value string
	Width int
}

// View renders the stat card.
func (c StatCard) View() string {
	inner := lipgloss.NewStyle().Foreground(theme.Secondary).Render(c.Icon) + "  " +
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Value) + "\n" +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(c.Label)

	return lipgloss.NewStyle().
		Width(c.Width).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(inner)
}

// CardRow joins cards horizontally with a single space between them.
func CardRow(cards ...StatCard) string {
	views := make([]string, len(cards))
	for i, c := range cards {
		views[i] = c.View()
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}

// Panel renders content inside a titled bordered box.
func Panel(title, content string, width int) string {
	var body string
	if title != "" {
		body = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(title) + "\n\n"
	}
	body += content

	return lipgloss.NewStyle().
		Width(width).
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Render(body)
}
