package ui

import (
	"context"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/anomredux/usage-cal/internal/colorblend"
	"github.com/anomredux/usage-cal/internal/config"
	"github.com/anomredux/usage-cal/internal/domain"
	"github.com/anomredux/usage-cal/internal/scanner"
	"github.com/anomredux/usage-cal/internal/timeutil"
	"github.com/anomredux/usage-cal/internal/ui/views"
)

// progressMsg carries a throttled scanner update.
type progressMsg scanner.Progress

// scanDoneMsg carries the collected files, or the reason collection
// stopped early.
type scanDoneMsg struct {
	files []domain.LogFile
	err   error
}

// LogsChangedMsg is sent from outside the program loop when the watcher
// sees session logs grow.
type LogsChangedMsg struct{}

// expireMsg retires the notification banner.
type expireMsg struct{}

type App struct {
	Config     config.Config
	logDir     string
	window     timeutil.Period
	background colorful.Color

	usage *views.UsageView

	notifications *NotificationManager

	// Scan in flight
	loading     bool
	progress    scanner.Progress
	progressCh  chan scanner.Progress
	scanCancel  context.CancelFunc
	initialScan tea.Cmd

	// Terminal
	width  int
	height int
	ready  bool
}

func NewApp(cfg config.Config, logDir string, window timeutil.Period) App {
	a := App{
		Config:        cfg,
		logDir:        logDir,
		window:        window,
		background:    colorblend.ResolveBackground(cfg.Heatmap.Background, os.Getenv),
		notifications: NewNotificationManager(cfg.Notifications.Bell),
	}
	// Arm the first scan here: Init runs on a copy of the model, so any
	// state it set would be discarded.
	a.initialScan = a.beginScan()
	return a
}

func (a App) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle("usage-cal"), a.initialScan)
}

// beginScan arms a fresh collection pass: one command runs the scanner,
// another drains its progress channel into the program loop.
func (a *App) beginScan() tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan scanner.Progress, 8)

	a.loading = true
	a.progress = scanner.Progress{}
	a.progressCh = ch
	a.scanCancel = cancel

	return tea.Batch(runScan(ctx, a.logDir, ch), listenProgress(ch))
}

func runScan(ctx context.Context, root string, ch chan<- scanner.Progress) tea.Cmd {
	return func() tea.Msg {
		defer close(ch)
		files, err := scanner.Collect(ctx, root, func(p scanner.Progress) {
			select {
			case ch <- p:
			case <-ctx.Done():
			}
		})
		return scanDoneMsg{files: files, err: err}
	}
}

func listenProgress(ch <-chan scanner.Progress) tea.Cmd {
	return func() tea.Msg {
		p, ok := <-ch
		if !ok {
			return nil
		}
		return progressMsg(p)
	}
}

func expireAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return expireMsg{}
	})
}

func (a *App) notify(kind NoticeKind, msg string) tea.Cmd {
	a.notifications.Set(kind, msg)
	return expireAfter(notificationTTL + 100*time.Millisecond)
}
