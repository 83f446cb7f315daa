package ui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/anomredux/usage-cal/internal/config"
	"github.com/anomredux/usage-cal/internal/domain"
	"github.com/anomredux/usage-cal/internal/i18n"
	"github.com/anomredux/usage-cal/internal/timeutil"
)

func newTestApp() App {
	return NewApp(config.DefaultConfig(), "/tmp/nope", timeutil.Period30d)
}

func update(t *testing.T, a App, msg tea.Msg) App {
	t.Helper()
	model, _ := a.Update(msg)
	app, ok := model.(App)
	if !ok {
		t.Fatalf("Update returned %T, want App", model)
	}
	return app
}

func todayRecords() []domain.LogFile {
	return []domain.LogFile{{
		Path: "s.jsonl",
		Records: []domain.UsageRecord{
			{ModelKey: "anthropic/opus", Cost: 0.10, Tokens: 100, Date: timeutil.DayKey(time.Now())},
		},
	}}
}

func TestNewAppArmsInitialScan(t *testing.T) {
	a := newTestApp()

	// The scan-in-flight state must exist before Init runs: Init gets a
	// copy of the model, so it cannot set any of this itself.
	if !a.loading {
		t.Error("app should start loading")
	}
	if a.progressCh == nil {
		t.Error("progress channel should be armed at construction")
	}
	if a.scanCancel == nil {
		t.Error("cancel func should be armed at construction")
	}
	if a.Init() == nil {
		t.Error("Init should return the armed scan command")
	}

	a = update(t, a, tea.WindowSizeMsg{Width: 100, Height: 40})
	out := a.View()
	if strings.Contains(out, i18n.T("scan_failed")) {
		t.Error("mid-scan view shows the failure notice instead of progress")
	}
}

func TestScanDoneBuildsView(t *testing.T) {
	a := newTestApp()
	a.loading = true

	a = update(t, a, scanDoneMsg{files: todayRecords()})
	if a.loading {
		t.Error("loading should clear after scan")
	}
	if a.usage == nil {
		t.Fatal("usage view should exist after a successful scan")
	}
}

func TestScanCancelledBeforeFirstView(t *testing.T) {
	a := newTestApp()
	a.loading = true

	model, cmd := a.Update(scanDoneMsg{err: context.Canceled})
	a = model.(App)
	if a.usage != nil {
		t.Error("no view expected after cancelled initial scan")
	}
	if cmd == nil {
		t.Fatal("cancelled initial scan should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected quit command")
	}
}

func TestScanFailureKeepsOldView(t *testing.T) {
	a := newTestApp()
	a = update(t, a, scanDoneMsg{files: todayRecords()})

	a.loading = true
	a = update(t, a, scanDoneMsg{err: errors.New("boom")})
	if a.usage == nil {
		t.Error("existing view should survive a failed rescan")
	}
	if a.notifications.Active() == nil {
		t.Error("failure should raise a notification")
	}
}

func TestKeysWhileLoading(t *testing.T) {
	a := newTestApp()
	a.loading = true
	a.scanCancel = func() {}

	// Paging keys are ignored mid-scan.
	model, cmd := a.Update(tea.KeyMsg{Type: tea.KeyLeft})
	a = model.(App)
	if cmd != nil {
		t.Error("paging key mid-scan should be a no-op")
	}

	// Quit still works.
	_, cmd = a.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should quit mid-scan")
	}
}

func TestLogsChanged(t *testing.T) {
	a := newTestApp()
	a = update(t, a, scanDoneMsg{files: todayRecords()})

	a = update(t, a, LogsChangedMsg{})
	if a.notifications.Active() == nil {
		t.Error("watcher event should raise a rescan hint")
	}
	if a.loading {
		t.Error("watcher event must not start a scan on its own")
	}
}

func TestLogsChangedIgnoredWhileLoading(t *testing.T) {
	a := newTestApp()
	a.loading = true

	_, cmd := a.Update(LogsChangedMsg{})
	if cmd != nil {
		t.Error("watcher event mid-scan should be a no-op")
	}
}

func TestViewBeforeReady(t *testing.T) {
	a := newTestApp()
	if a.View() == "" {
		t.Error("pre-ready view should render a placeholder")
	}

	a = update(t, a, tea.WindowSizeMsg{Width: 30, Height: 10})
	out := a.View()
	if out == "" {
		t.Error("too-small view should render a warning")
	}
}
