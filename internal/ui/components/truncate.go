package components

import "github.com/mattn/go-runewidth"

// Truncate bounds a plain string to maxWidth terminal cells, appending an
// ellipsis when it had to cut. Wide (multi-cell) runes count properly.
// Styled strings should be truncated before styling.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth == 1 {
		return "…"
	}
	return runewidth.Truncate(s, maxWidth, "…")
}
