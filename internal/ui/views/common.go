package views

import tea "github.com/charmbracelet/bubbletea"

// KeyHandledCmd is returned by a view when it consumed a key press, so
// the app knows not to apply its own bindings. The command itself is a
// no-op.
var KeyHandledCmd tea.Cmd = func() tea.Msg { return nil }
