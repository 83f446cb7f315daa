package theme

import "github.com/charmbracelet/lipgloss"

// Base palette
var (
	ColorLavender = lipgloss.Color("#9f99d1")
	ColorSkyBlue  = lipgloss.Color("#86bada")
	ColorMauve    = lipgloss.Color("#dbaad7")
	ColorPeach    = lipgloss.Color("#f6bcb0")
	ColorGold     = lipgloss.Color("#ffe3b3")
)

// Background tones (dark theme)
var (
	ColorBaseBg     = lipgloss.Color("#1a1b2e")
	ColorElevatedBg = lipgloss.Color("#2a2b42")
	ColorBorder     = lipgloss.Color("#3a3b52")
	ColorMutedText  = lipgloss.Color("#6b6d8a")
	ColorBodyText   = lipgloss.Color("#c8cad8")
	ColorBrightText = lipgloss.Color("#ecedf5")
)

// Heatmap defaults. BackgroundHex feeds the color engine; the "other"
// bucket shares the muted tone so it never collides with a vendor hue.
const (
	BackgroundHex = "#1a1b2e"
	OtherHex      = "#6b6d8a"
	EmptyHex      = "#232438"
)

// Common styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorBrightText).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMutedText)

	BodyStyle = lipgloss.NewStyle().
			Foreground(ColorBodyText)

	AccentStyle = lipgloss.NewStyle().
			Foreground(ColorMauve)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorPeach).
			Bold(true)

	TabActiveStyle = lipgloss.NewStyle().
			Foreground(ColorGold).
			Background(ColorElevatedBg).
			Bold(true).
			Padding(0, 1)

	TabInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorMutedText).
				Padding(0, 1)
)
