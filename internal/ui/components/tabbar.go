package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/anomredux/usage-cal/internal/theme"
)

// TabBar renders the window-tag tabs with active highlighting, a trailing
// right-aligned hint, and a bottom separator.
type TabBar struct {
	Tabs        []string
	ActiveIndex int
	Hint        string
	Width       int
}

// Render returns the styled tab bar with bottom separator line.
func (tb TabBar) Render() string {
	var tabs []string
	for i, name := range tb.Tabs {
		if i == tb.ActiveIndex {
			tabs = append(tabs, theme.TabActiveStyle.Render(name))
		} else {
			tabs = append(tabs, theme.TabInactiveStyle.Render(name))
		}
	}

	line := strings.Join(tabs, "")
	if tb.Hint != "" {
		hint := theme.MutedStyle.Render(tb.Hint)
		pad := tb.Width - lipgloss.Width(line) - lipgloss.Width(hint) - 2
		if pad > 0 {
			line += strings.Repeat(" ", pad) + hint
		}
	}

	tabLine := lipgloss.NewStyle().
		Width(tb.Width).
		Padding(0, 1).
		Render(line)

	sep := theme.MutedStyle.Render(strings.Repeat("─", max(tb.Width, 1)))

	return tabLine + "\n" + sep
}
