package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
	"github.com/anomredux/usage-cal/internal/config"
	"github.com/anomredux/usage-cal/internal/scanner"
	"github.com/anomredux/usage-cal/internal/timeutil"
	"github.com/anomredux/usage-cal/internal/ui"
	"github.com/anomredux/usage-cal/internal/watcher"
)

// version is set by goreleaser via ldflags.
var version = "dev"

const watchPollInterval = 2 * time.Second

func main() {
	var (
		configPath  = flag.String("config", config.DefaultPath(), "config file path")
		logDir      = flag.String("log-dir", "", "session log directory (default: config, then ~/.pi/agent/sessions)")
		window      = flag.String("window", "", "initial window: 7d, 30d, 90d (default: config)")
		noTUI       = flag.Bool("no-tui", false, "print a usage report to stdout instead of the TUI")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println("usage-cal", version)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Apply CLI overrides
	root := cfg.General.LogDir
	if *logDir != "" {
		root = *logDir
	}
	if root == "" {
		root = scanner.DefaultRoot()
	}

	win := timeutil.Period(cfg.General.Window)
	if *window != "" {
		win = timeutil.Period(*window)
	}
	if !validWindow(win) {
		fmt.Fprintf(os.Stderr, "Invalid window: %s (use 7d, 30d or 90d)\n", win)
		os.Exit(1)
	}

	if *noTUI {
		runNoTUI(cfg, root, win)
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "stdout is not a terminal; use --no-tui for plain output")
		os.Exit(1)
	}

	app := ui.NewApp(cfg, root, win)
	p := tea.NewProgram(app, tea.WithAltScreen())

	w := watcher.New(root, watchPollInterval, func() {
		p.Send(ui.LogsChangedMsg{})
	})
	w.Prime()
	w.Start()
	defer w.Stop()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func validWindow(p timeutil.Period) bool {
	for _, known := range timeutil.Periods {
		if p == known {
			return true
		}
	}
	return false
}
