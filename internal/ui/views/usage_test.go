package views

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/anomredux/usage-cal/internal/colorblend"
	"github.com/anomredux/usage-cal/internal/domain"
	"github.com/anomredux/usage-cal/internal/timeutil"
)

func testFiles() []domain.LogFile {
	today := timeutil.DayKey(time.Now())
	return []domain.LogFile{
		{
			Path: "a.jsonl",
			Records: []domain.UsageRecord{
				{ModelKey: "anthropic/opus", Cost: 1.20, Tokens: 5000, Date: today},
				{ModelKey: "anthropic/opus", Cost: 0.30, Tokens: 2000, Date: today},
			},
		},
		{
			Path: "b.jsonl",
			Records: []domain.UsageRecord{
				{ModelKey: "openai/gpt-4", Cost: 0.50, Tokens: 1000, Date: today},
			},
		},
	}
}

func newTestView() *UsageView {
	bg := colorblend.MustHex(colorblend.DefaultBackground)
	return NewUsageView(testFiles(), timeutil.Period30d, 0.2, bg)
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestWindowPaging(t *testing.T) {
	v := newTestView()

	if v.Window() != timeutil.Period30d {
		t.Fatalf("initial window = %s, want 30d", v.Window())
	}

	v.Update(keyMsg("left"))
	if v.Window() != timeutil.Period7d {
		t.Errorf("after left: window = %s, want 7d", v.Window())
	}

	// No wraparound at the left edge.
	v.Update(keyMsg("left"))
	if v.Window() != timeutil.Period7d {
		t.Errorf("left at edge: window = %s, want 7d", v.Window())
	}

	v.Update(keyMsg("right"))
	v.Update(keyMsg("l"))
	if v.Window() != timeutil.Period90d {
		t.Errorf("after right, l: window = %s, want 90d", v.Window())
	}

	v.Update(keyMsg("right"))
	if v.Window() != timeutil.Period90d {
		t.Errorf("right at edge: window = %s, want 90d", v.Window())
	}
}

func TestKeyHandling(t *testing.T) {
	v := newTestView()

	if cmd := v.Update(keyMsg("h")); cmd == nil {
		t.Error("paging key should report handled")
	}
	if cmd := v.Update(keyMsg("x")); cmd != nil {
		t.Error("unrelated key should not be consumed")
	}
}

func TestRenderContent(t *testing.T) {
	v := newTestView()
	out := v.Render(100)

	for _, want := range []string{"anthropic", "openai", "$2.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
}

func TestRenderCached(t *testing.T) {
	v := newTestView()
	a := v.Render(100)
	b := v.Render(100)
	if a != b {
		t.Error("repeated render at same size should be identical")
	}

	// Any window change invalidates the cache and changes the frame.
	v.Update(keyMsg("left"))
	if v.Render(100) == a {
		t.Error("window change should produce a different frame")
	}
}

func TestSetData(t *testing.T) {
	v := newTestView()
	v.SetData(nil)

	out := v.Render(100)
	if strings.Contains(out, "anthropic") {
		t.Error("replaced data should drop old providers")
	}
}
