package i18n

import "testing"

func TestT(t *testing.T) {
	if got := T("cancelled"); got != "Scan cancelled" {
		t.Errorf("T(cancelled) = %q", got)
	}
	if got := T("no_such_key"); got != "no_such_key" {
		t.Errorf("missing key should echo, got %q", got)
	}
}

func TestTf(t *testing.T) {
	if got := Tf("parsing", 3, 10, "a.jsonl"); got != "Parsing 3/10: a.jsonl" {
		t.Errorf("Tf = %q", got)
	}
}
