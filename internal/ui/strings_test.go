package ui

import (
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		limit int
		want  string
	}{
		{"fits", "Seoul", 10, "Seoul"},
		{"trims", "  Seoul  ", 10, "Seoul"},
		{"ellipsis", "San Francisco", 8, "San F..."},
		{"tiny_limit", "London", 2, "Lo"},
		{"no_limit", "London", 0, "London"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := truncate(tc.in, tc.limit); got != tc.want {
				t.Fatalf("truncate(%q, %d) = %q, want %q", tc.in, tc.limit, got, tc.want)
			}
		})
	}
}

func TestFormatters(t *testing.T) {
	if got := formatTemp(21); got != "21°C" {
		t.Fatalf("formatTemp(21) = %q, want 21°C", got)
	}
	if got := formatTemp(-3.5); got != "-3.5°C" {
		t.Fatalf("formatTemp(-3.5) = %q, want -3.5°C", got)
	}
	if got := formatUV(6); got != "6" {
		t.Fatalf("formatUV(6) = %q, want 6", got)
	}
	if got := formatPercent(40); got != "40%" {
		t.Fatalf("formatPercent(40) = %q, want 40%%", got)
	}
	if got := orDash("  "); got != "-" {
		t.Fatalf("orDash blank = %q, want -", got)
	}
	if got := padRight("ab", 4); got != "ab  " {
		t.Fatalf("padRight = %q, want %q", got, "ab  ")
	}
}

func TestCardWidth(t *testing.T) {
	if got := cardWidth(120); got != 120-SidebarWidth-1 {
		t.Fatalf("cardWidth(120) = %d, want %d", got, 120-SidebarWidth-1)
	}
	if got := cardWidth(50); got != 50 {
		t.Fatalf("cardWidth(50) = %d, want 50 (stacked layout)", got)
	}
	if got := cardWidth(10); got != CardMinWidth {
		t.Fatalf("cardWidth(10) = %d, want %d", got, CardMinWidth)
	}
}

func TestBgStyle_JoinSkipsEmptyParts(t *testing.T) {
	bg := NewBgStyle("#000000")
	got := bg.Join([]string{"nimbus", "", "Seoul"}, "  ")
	if !strings.Contains(got, "nimbus") || !strings.Contains(got, "Seoul") {
		t.Fatalf("Join = %q, want both parts", got)
	}
	if bg.Render("", GetTheme("Slate").Styles().Text) != "" {
		t.Fatalf("Render of empty text should be empty")
	}
}
