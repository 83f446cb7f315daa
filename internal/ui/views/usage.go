package views

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/anomredux/usage-cal/internal/colorblend"
	"github.com/anomredux/usage-cal/internal/domain"
	"github.com/anomredux/usage-cal/internal/i18n"
	"github.com/anomredux/usage-cal/internal/theme"
	"github.com/anomredux/usage-cal/internal/timeutil"
	"github.com/anomredux/usage-cal/internal/ui/components"
)

// cellWidth is the calendar cell footprint in terminal columns.
const cellWidth = 2

var (
	emptyCellStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.EmptyHex))
	dayLabelStyle  = theme.MutedStyle
)

// UsageView is the calendar heatmap + provider breakdown. It assumes the
// upstream loader has already collected the files; there is no loading
// state in here. Everything is recomputed on every window change.
type UsageView struct {
	files      []domain.LogFile
	window     timeutil.Period
	minVisible float64
	background colorful.Color

	cutoff    string
	stats     domain.Stats
	providers []domain.Row
	palette   domain.UsagePalette

	cache map[string]string // (window, width) -> rendered frame
}

func NewUsageView(files []domain.LogFile, window timeutil.Period, minVisible float64, background colorful.Color) *UsageView {
	v := &UsageView{
		files:      files,
		window:     window,
		minVisible: minVisible,
		background: background,
	}
	v.recompute()
	return v
}

// Window returns the active window tag.
func (v *UsageView) Window() timeutil.Period {
	return v.window
}

// SetData replaces the file set (after a rescan) and recomputes.
func (v *UsageView) SetData(files []domain.LogFile) {
	v.files = files
	v.recompute()
}

func (v *UsageView) recompute() {
	v.cutoff = timeutil.CutoffKey(timeutil.PeriodDays(v.window))
	v.stats = domain.ComputeStats(v.files, v.cutoff)
	v.providers = domain.ComputeProviderBreakdown(v.files, v.cutoff)
	v.palette = domain.ChoosePalette(v.files, v.cutoff, theme.OtherHex)
	v.cache = make(map[string]string)
}

// Update pages the window left/right. No wraparound at the ends.
func (v *UsageView) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	idx := v.windowIndex()
	switch km.String() {
	case "left", "h":
		if idx > 0 {
			v.window = timeutil.Periods[idx-1]
			v.recompute()
		}
		return KeyHandledCmd
	case "right", "l":
		if idx < len(timeutil.Periods)-1 {
			v.window = timeutil.Periods[idx+1]
			v.recompute()
		}
		return KeyHandledCmd
	}
	return nil
}

func (v *UsageView) windowIndex() int {
	for i, p := range timeutil.Periods {
		if p == v.window {
			return i
		}
	}
	return 1
}

// Render is a pure function of (state, width), cached until the next
// window change or SetData.
func (v *UsageView) Render(width int) string {
	key := fmt.Sprintf("%s|%d", v.window, width)
	if frame, ok := v.cache[key]; ok {
		return frame
	}

	var sections []string
	sections = append(sections, v.renderHeader(width))
	sections = append(sections, "")
	sections = append(sections, v.renderStats(width))
	sections = append(sections, "")
	sections = append(sections, v.renderCalendar(width))
	sections = append(sections, "")
	sections = append(sections, v.renderTable(width))

	frame := strings.Join(sections, "\n")
	v.cache[key] = frame
	return frame
}

func (v *UsageView) renderHeader(width int) string {
	tabs := make([]string, len(timeutil.Periods))
	for i, p := range timeutil.Periods {
		tabs[i] = string(p)
	}
	return components.TabBar{
		Tabs:        tabs,
		ActiveIndex: v.windowIndex(),
		Hint:        i18n.T("hint"),
		Width:       width,
	}.Render()
}

func (v *UsageView) renderStats(width int) string {
	statGap := 2
	statW := (width - 2 - statGap*4) / 5
	if statW < 10 {
		statW = 10
	}

	s := v.stats
	cards := []components.StatCard{
		{Value: components.FormatCost(s.TotalCost), Label: i18n.T("stat_cost"), Width: statW, Color: theme.ColorSkyBlue},
		{Value: components.FormatNumber(s.SessionCount), Label: i18n.T("stat_sessions"), Width: statW, Color: theme.ColorLavender},
		{Value: components.FormatNumber(s.TotalMessages), Label: i18n.T("stat_messages"), Width: statW, Color: theme.ColorMauve},
		{Value: components.FormatCompact(s.TotalTokens), Label: i18n.T("stat_tokens"), Width: statW, Color: theme.ColorPeach},
		{Value: components.FormatCost(s.AvgCostPerSession()), Label: i18n.T("stat_avg_session"), Width: statW, Color: theme.ColorGold},
	}
	return " " + strings.ReplaceAll(components.RenderStatRow(cards, statGap), "\n", "\n ")
}

// renderCalendar lays the window out as week columns, Monday-first, with
// the legend beside the grid when the width allows.
func (v *UsageView) renderCalendar(width int) string {
	today := timeutil.LocalMidnight(time.Now())
	days := timeutil.PeriodDays(v.window)
	first := timeutil.AddDays(today, -(days - 1))

	// Align the first column to the Monday on or before the window start.
	offset := (int(first.Weekday()) + 6) % 7 // Monday=0 ... Sunday=6
	gridStart := timeutil.AddDays(first, -offset)

	weeks := 0
	for d := gridStart; !d.After(today); d = timeutil.AddDays(d, 7) {
		weeks++
	}

	rowLabels := [7]string{"Mon", "", "Wed", "", "Fri", "", "Sun"}
	grid := make([]string, 7)
	for row := 0; row < 7; row++ {
		var sb strings.Builder
		sb.WriteString(dayLabelStyle.Render(fmt.Sprintf("%-4s", rowLabels[row])))
		for week := 0; week < weeks; week++ {
			day := timeutil.AddDays(gridStart, week*7+row)
			sb.WriteString(v.renderCell(day, first, today))
		}
		grid[row] = sb.String()
	}

	gridWidth := 4 + weeks*cellWidth
	legend := v.renderLegend()
	legendWidth := 0
	for _, line := range legend {
		if w := lipgloss.Width(line); w > legendWidth {
			legendWidth = w
		}
	}

	// The inline legend is shown only when there is room beside the grid.
	if legendWidth > 0 && gridWidth+3+legendWidth <= width {
		return " " + strings.Join(components.JoinHorizontal([][]string{grid, legend}, 3), "\n ")
	}
	return " " + strings.Join(grid, "\n ")
}

func (v *UsageView) renderCell(day, first, today time.Time) string {
	if day.Before(first) || day.After(today) {
		return strings.Repeat(" ", cellWidth)
	}
	stats := v.stats.Day(timeutil.DayKey(day))
	if stats == nil || stats.TotalMessages == 0 {
		return emptyCellStyle.Render("··")
	}

	entries := make([]colorblend.Entry, 0, len(stats.ModelCounts))
	for modelKey, count := range stats.ModelCounts {
		entries = append(entries, colorblend.Entry{
			Color:  colorblend.MustHex(v.palette.ColorFor(modelKey)),
			Weight: float64(count),
		})
	}

	blend := colorblend.ClassifyDayBlend(entries, colorblend.MustHex(theme.OtherHex))
	frac := colorblend.Intensity(float64(stats.TotalMessages), float64(v.stats.MaxDayValue), v.minVisible)
	final := colorblend.Shade(v.background, blend.Color(), frac)

	return lipgloss.NewStyle().Foreground(lipgloss.Color(final.Hex())).Render("██")
}

func (v *UsageView) renderLegend() []string {
	if len(v.palette.Entries) == 0 {
		return nil
	}
	lines := make([]string, 0, len(v.palette.Entries)+1)
	for _, e := range v.palette.Entries {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(e.Color)).Render("■")
		lines = append(lines, swatch+" "+theme.BodyStyle.Render(components.Truncate(e.Family, 24)))
	}
	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(v.palette.Other)).Render("■")
	lines = append(lines, swatch+" "+theme.MutedStyle.Render(i18n.T("legend_other")))
	return lines
}

func (v *UsageView) renderTable(width int) string {
	if len(v.providers) == 0 {
		return " " + theme.MutedStyle.Render(i18n.T("no_usage"))
	}

	headers := []string{
		i18n.T("col_provider"), i18n.T("col_sessions"), i18n.T("col_messages"),
		i18n.T("col_tokens"), i18n.T("col_cost"), i18n.T("col_share"),
	}

	// The name column grows to the longest provider present.
	nameW := lipgloss.Width(headers[0])
	for _, r := range v.providers {
		if w := lipgloss.Width(r.Name); w > nameW {
			nameW = w
		}
	}
	numW := [5]int{8, 8, 8, 9, 5}

	var sb strings.Builder
	sb.WriteString(" ")
	sb.WriteString(theme.MutedStyle.Render(fmt.Sprintf("%-*s", nameW, headers[0])))
	for i, h := range headers[1:] {
		sb.WriteString(theme.MutedStyle.Render(fmt.Sprintf("  %*s", numW[i], h)))
	}
	sb.WriteString("\n")

	for i, r := range v.providers {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(" ")
		sb.WriteString(theme.BodyStyle.Render(fmt.Sprintf("%-*s", nameW, r.Name)))
		sb.WriteString(fmt.Sprintf("  %*s", numW[0], components.FormatNumber(r.Sessions)))
		sb.WriteString(fmt.Sprintf("  %*s", numW[1], components.FormatNumber(r.Messages)))
		sb.WriteString(fmt.Sprintf("  %*s", numW[2], components.FormatCompact(r.Tokens)))
		sb.WriteString(fmt.Sprintf("  %*s", numW[3], components.FormatCost(r.Cost)))
		sb.WriteString(fmt.Sprintf("  %*s", numW[4], fmt.Sprintf("%d%%", r.Share)))
	}

	return sb.String()
}
