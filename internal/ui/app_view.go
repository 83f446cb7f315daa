package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/anomredux/usage-cal/internal/i18n"
	"github.com/anomredux/usage-cal/internal/scanner"
	"github.com/anomredux/usage-cal/internal/theme"
)

const (
	minWidth  = 60
	minHeight = 20
)

func (a App) View() string {
	if !a.ready {
		return i18n.T("initializing")
	}

	if a.width < minWidth || a.height < minHeight {
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center,
			theme.WarningStyle.Render(
				i18n.T("terminal_too_small")+"\n"+
					i18n.Tf("current_size", a.width, a.height),
			),
		)
	}

	if a.loading || a.usage == nil {
		line := a.progressLine()
		if !a.loading {
			// Initial scan failed; nothing to show but the notice.
			line = i18n.T("scan_failed") + "\n" + i18n.T("retry_hint")
		}
		return lipgloss.Place(a.width, a.height,
			lipgloss.Center, lipgloss.Center,
			theme.MutedStyle.Render(line),
		)
	}

	content := a.usage.Render(a.width)
	content = lipgloss.NewStyle().
		Width(a.width).
		MaxHeight(a.height - 1).
		Render(content)

	banner := a.notifications.RenderBanner(a.width)
	if banner != "" {
		return content + "\n" + banner
	}
	return content
}

func (a App) progressLine() string {
	switch a.progress.Phase {
	case scanner.PhaseParsing:
		name := a.progress.CurrentFile
		if len(name) > 40 {
			name = "…" + name[len(name)-39:]
		}
		return i18n.Tf("parsing", a.progress.FilesParsed, a.progress.TotalFiles, name)
	case scanner.PhaseFinalizing:
		return i18n.T("finalizing")
	default:
		return i18n.Tf("scanning", a.progress.FilesFound)
	}
}
