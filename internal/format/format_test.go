package format

import (
	"testing"
	"time"
)

func TestPadRightRuneAware(t *testing.T) {
	cases := []struct {
		in    string
		width int
		want  string
	}{
		{"abc", 5, "abc  "},
		{"€3.00", 6, "€3.00 "},
		{"toolong", 3, "toolong"},
	}

	for _, tc := range cases {
		if got := PadRight(tc.in, tc.width); got != tc.want {
			t.Fatalf("PadRight(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
		}
	}
}

func TestWidth(t *testing.T) {
	if got := Width("€10.00"); got != 6 {
		t.Fatalf("Width = %d, want 6", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("abcd", 4); got != "abcd" {
		t.Fatalf("Truncate = %q, want %q", got, "abcd")
	}
	if got := Truncate("abcdef", 4); got != "abc~" {
		t.Fatalf("Truncate = %q, want %q", got, "abc~")
	}
}

func TestStars(t *testing.T) {
	if got := Stars(3); got != "⭐⭐⭐" {
		t.Fatalf("Stars(3) = %q", got)
	}
	if got := Stars(9); got != "⭐⭐⭐⭐⭐" {
		t.Fatalf("Stars(9) = %q, want clamped to 5", got)
	}
	if got := Stars(-1); got != "⭐" {
		t.Fatalf("Stars(-1) = %q, want clamped to 1", got)
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{45 * time.Second, "45s"},
		{2 * time.Minute, "2m"},
		{2*time.Minute + 5*time.Second, "2m5s"},
		{3*time.Hour + 4*time.Minute, "3h4m"},
	}

	for _, tc := range cases {
		if got := FormatDuration(tc.in); got != tc.want {
			t.Fatalf("FormatDuration(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
