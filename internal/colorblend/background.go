package colorblend

import (
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultBackground matches the theme's base background tone.
const DefaultBackground = "#1a1b2e"

// ansi16 maps the basic terminal palette indexes reported via COLORFGBG.
var ansi16 = [16]string{
	"#000000", "#cd0000", "#00cd00", "#cdcd00",
	"#0000ee", "#cd00cd", "#00cdcd", "#e5e5e5",
	"#7f7f7f", "#ff0000", "#00ff00", "#ffff00",
	"#5c5cff", "#ff00ff", "#00ffff", "#ffffff",
}

// ResolveBackground picks the heatmap background: an explicit theme value
// first, then the terminal's COLORFGBG hint, then the fixed default.
// getenv is injected so tests don't touch the process environment.
func ResolveBackground(themeBg string, getenv func(string) string) colorful.Color {
	if themeBg != "" {
		if c, err := colorful.Hex(themeBg); err == nil {
			return c
		}
	}
	if c, ok := fromColorFgBg(getenv("COLORFGBG")); ok {
		return c
	}
	return MustHex(DefaultBackground)
}

// fromColorFgBg parses the "fg;bg" (sometimes "fg;default;bg") convention:
// the last field is the background index in the terminal palette.
func fromColorFgBg(value string) (colorful.Color, bool) {
	if value == "" {
		return colorful.Color{}, false
	}
	fields := strings.Split(value, ";")
	last := strings.TrimSpace(fields[len(fields)-1])
	idx, err := strconv.Atoi(last)
	if err != nil || idx < 0 || idx >= len(ansi16) {
		return colorful.Color{}, false
	}
	return MustHex(ansi16[idx]), true
}
