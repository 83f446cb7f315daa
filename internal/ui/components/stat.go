package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/anomredux/usage-cal/internal/theme"
)

// Cached styles for stat card rendering.
var (
	statValueStyle = lipgloss.NewStyle().Foreground(theme.ColorBrightText).Bold(true)
	statLabelStyle = lipgloss.NewStyle().Foreground(theme.ColorMutedText)
)

// StatCard renders a big value over a small muted label.
type StatCard struct {
	Value string
	Label string
	Width int
	Color lipgloss.Color // optional value color
}

// Render returns the stat card as a block of lines.
func (s StatCard) Render() []string {
	w := s.Width
	if w < 8 {
		w = 8
	}

	var styledVal string
	if s.Color != "" {
		styledVal = lipgloss.NewStyle().Foreground(s.Color).Bold(true).Render(s.Value)
	} else {
		styledVal = statValueStyle.Render(s.Value)
	}

	return []string{
		CenterText(styledVal, w),
		CenterText(statLabelStyle.Render(s.Label), w),
	}
}

// RenderStatRow renders multiple stat cards side by side.
func RenderStatRow(cards []StatCard, gap int) string {
	var blocks [][]string
	for _, c := range cards {
		blocks = append(blocks, c.Render())
	}
	return strings.Join(JoinHorizontal(blocks, gap), "\n")
}
