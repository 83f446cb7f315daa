package components

import "testing"

func TestFormatNumber(t *testing.T) {
	cases := map[int]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		1234567:  "1,234,567",
		-1234:    "-1,234",
	}
	for in, want := range cases {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%d) = %s, want %s", in, got, want)
		}
	}
}

func TestFormatCompact(t *testing.T) {
	cases := map[int]string{
		999:      "999",
		12345:    "12.3K",
		1_500_000: "1.5M",
	}
	for in, want := range cases {
		if got := FormatCompact(in); got != want {
			t.Errorf("FormatCompact(%d) = %s, want %s", in, got, want)
		}
	}
}

func TestFormatCost(t *testing.T) {
	if got := FormatCost(1.5); got != "$1.50" {
		t.Errorf("FormatCost(1.5) = %s", got)
	}
	if got := FormatCost(0.0042); got != "$0.0042" {
		t.Errorf("FormatCost(0.0042) = %s", got)
	}
	if got := FormatCost(0); got != "$0.00" {
		t.Errorf("FormatCost(0) = %s", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("hello", 10); got != "hello" {
		t.Errorf("Truncate short = %q", got)
	}
	if got := Truncate("hello world", 8); got != "hello w…" {
		t.Errorf("Truncate = %q", got)
	}
	// Wide runes occupy two cells each.
	if got := Truncate("日本語テスト", 5); got != "日本…" {
		t.Errorf("Truncate wide = %q", got)
	}
	if got := Truncate("anything", 0); got != "" {
		t.Errorf("Truncate zero = %q", got)
	}
}

func TestCenterText(t *testing.T) {
	if got := CenterText("ab", 6); got != "  ab  " {
		t.Errorf("CenterText = %q", got)
	}
	if got := CenterText("abcdef", 4); got != "abcdef" {
		t.Errorf("CenterText overflow = %q", got)
	}
}
