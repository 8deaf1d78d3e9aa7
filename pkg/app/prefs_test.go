package app

import (
	"testing"

	"github.com/decker502/flappykaho/pkg/game"
	"github.com/decker502/flappykaho/pkg/render"
)

func TestResolveTheme(t *testing.T) {
	tests := []struct {
		pref string
		dark bool
		want render.Theme
	}{
		{game.ThemeLight, true, render.ThemeLight},
		{game.ThemeDark, false, render.ThemeDark},
		{game.ThemeAuto, true, render.ThemeDark},
		{game.ThemeAuto, false, render.ThemeLight},
		{"", true, render.ThemeDark},
	}

	for _, tt := range tests {
		if got := ResolveTheme(tt.pref, tt.dark); got != tt.want {
			t.Errorf("ResolveTheme(%q, %v): got %s, want %s", tt.pref, tt.dark, got, tt.want)
		}
	}
}

func TestNextThemePref(t *testing.T) {
	pref := game.ThemeAuto
	seen := []string{pref}
	for i := 0; i < 3; i++ {
		pref = NextThemePref(pref)
		seen = append(seen, pref)
	}

	want := []string{game.ThemeAuto, game.ThemeLight, game.ThemeDark, game.ThemeAuto}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("theme cycle: got %v, want %v", seen, want)
		}
	}
}

func TestResolveLanguage(t *testing.T) {
	if got := ResolveLanguage("ja", "en-US"); got != "ja" {
		t.Errorf("saved language: got %q, want ja", got)
	}
	if got := ResolveLanguage("", "zh-TW"); got != "zh-TW" {
		t.Errorf("system language: got %q, want zh-TW", got)
	}
}
