package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CenterText centers a styled string within w columns. Width accounting
// goes through lipgloss so ANSI escapes and wide runes measure correctly.
func CenterText(s string, w int) string {
	pad := w - lipgloss.Width(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// JoinHorizontal lays out blocks of lines side by side with a gap,
// padding shorter blocks with spaces so columns stay aligned.
func JoinHorizontal(blocks [][]string, gap int) []string {
	height := 0
	widths := make([]int, len(blocks))
	for i, b := range blocks {
		if len(b) > height {
			height = len(b)
		}
		for _, line := range b {
			if w := lipgloss.Width(line); w > widths[i] {
				widths[i] = w
			}
		}
	}

	spacer := strings.Repeat(" ", gap)
	lines := make([]string, height)
	for row := 0; row < height; row++ {
		var sb strings.Builder
		for i, b := range blocks {
			if i > 0 {
				sb.WriteString(spacer)
			}
			cell := ""
			if row < len(b) {
				cell = b[row]
			}
			sb.WriteString(cell)
			if pad := widths[i] - lipgloss.Width(cell); pad > 0 && i < len(blocks)-1 {
				sb.WriteString(strings.Repeat(" ", pad))
			}
		}
		lines[row] = sb.String()
	}
	return lines
}
