package ui

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/anomredux/usage-cal/internal/theme"
)

const notificationTTL = 5 * time.Second

// NoticeKind separates informational notices (cancelled scan, watcher
// hint) from failures, which render in the warning tone and may ring the
// bell.
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeWarn
)

type Notification struct {
	Kind      NoticeKind
	Message   string
	CreatedAt time.Time
}

type NotificationManager struct {
	active *Notification
	bell   bool
}

func NewNotificationManager(bell bool) *NotificationManager {
	return &NotificationManager{bell: bell}
}

// Set shows a transient notification, replacing any current one.
func (nm *NotificationManager) Set(kind NoticeKind, msg string) {
	nm.active = &Notification{
		Kind:      kind,
		Message:   msg,
		CreatedAt: time.Now(),
	}
}

// Active returns the current notification if it has not expired.
func (nm *NotificationManager) Active() *Notification {
	if nm.active == nil {
		return nil
	}
	if time.Since(nm.active.CreatedAt) > notificationTTL {
		return nil
	}
	return nm.active
}

// Expire clears expired notifications. Call from Update(), not View().
func (nm *NotificationManager) Expire() {
	if nm.active != nil && time.Since(nm.active.CreatedAt) > notificationTTL {
		nm.active = nil
	}
}

func (nm *NotificationManager) RenderBanner(width int) string {
	n := nm.Active()
	if n == nil {
		return ""
	}

	tone := theme.ColorMauve
	if n.Kind == NoticeWarn {
		tone = theme.ColorPeach
	}
	style := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1).
		Foreground(tone)

	bellChar := ""
	if nm.bell && n.Kind == NoticeWarn {
		bellChar = "\a"
	}

	return bellChar + style.Render(n.Message)
}
