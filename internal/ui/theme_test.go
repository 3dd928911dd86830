package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/nimbus/internal/display"
)

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	want := []string{"Nightfox", "Kanagawa", "Slate", "Daylight"}
	if len(names) != len(want) {
		t.Fatalf("ThemeNames() returned %d names, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("ThemeNames() = %v, want %v", names, want)
		}
	}
}

func TestNextTheme(t *testing.T) {
	if got := NextTheme("Nightfox"); got != "Kanagawa" {
		t.Fatalf("NextTheme(Nightfox) = %q, want Kanagawa", got)
	}
	if got := NextTheme("Daylight"); got != "Nightfox" {
		t.Fatalf("NextTheme(Daylight) = %q, want Nightfox (wrap)", got)
	}
	if got := NextTheme("unknown"); got != "Nightfox" {
		t.Fatalf("NextTheme(unknown) = %q, want Nightfox", got)
	}
}

func TestGetTheme_UnknownFallsBack(t *testing.T) {
	if got := GetTheme("nope").Name; got != "Nightfox" {
		t.Fatalf("GetTheme(nope).Name = %q, want Nightfox", got)
	}
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		if th.Name != name {
			t.Fatalf("GetTheme(%q).Name = %q", name, th.Name)
		}
		if th.CardText == "" || th.Background == "" || th.Text == "" {
			t.Fatalf("theme %q has empty core colors: %#v", name, th)
		}
	}
}

func TestCardStyle_UsesTint(t *testing.T) {
	styles := GetTheme("Slate").Styles()
	for _, tint := range []display.Tint{display.TintCool, display.TintWarm} {
		got := styles.CardStyle(tint).GetBackground()
		if got != lipgloss.Color(tint.Hex()) {
			t.Fatalf("CardStyle(%v) background = %v, want %s", tint, got, tint.Hex())
		}
	}
}
