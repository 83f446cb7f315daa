package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/anomredux/usage-cal/internal/i18n"
	"github.com/anomredux/usage-cal/internal/scanner"
	"github.com/anomredux/usage-cal/internal/ui/views"
)

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case progressMsg:
		a.progress = scanner.Progress(msg)
		return a, listenProgress(a.progressCh)

	case scanDoneMsg:
		return a.handleScanDone(msg)

	case LogsChangedMsg:
		if a.loading {
			return a, nil
		}
		return a, a.notify(NoticeInfo, i18n.T("logs_changed"))

	case expireMsg:
		a.notifications.Expire()
		return a, nil
	}

	return a, nil
}

func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.loading {
		switch msg.String() {
		case "q", "ctrl+c":
			a.cancelScan()
			return a, tea.Quit
		case "esc":
			a.cancelScan()
			return a, nil
		}
		return a, nil
	}

	if a.usage != nil {
		if cmd := a.usage.Update(msg); cmd != nil {
			return a, cmd
		}
	}

	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return a, tea.Quit
	case "r":
		return a, a.beginScan()
	}
	return a, nil
}

func (a App) handleScanDone(msg scanDoneMsg) (tea.Model, tea.Cmd) {
	a.loading = false
	a.scanCancel = nil

	if msg.err != nil {
		if errors.Is(msg.err, context.Canceled) {
			if a.usage == nil {
				// Nothing to fall back to; the scan was the whole point.
				return a, tea.Quit
			}
			return a, a.notify(NoticeInfo, i18n.T("cancelled"))
		}
		return a, a.notify(NoticeWarn, i18n.T("scan_failed"))
	}

	if a.usage == nil {
		a.usage = views.NewUsageView(msg.files, a.window, a.Config.Heatmap.MinVisible, a.background)
	} else {
		a.usage.SetData(msg.files)
	}
	return a, nil
}

func (a *App) cancelScan() {
	if a.scanCancel != nil {
		a.scanCancel()
	}
}
