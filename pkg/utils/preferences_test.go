package utils

import "testing"

func TestReducedMotionFromEnv(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"0", false},
		{"no-preference", false},
		{"1", true},
		{"TRUE", true},
		{"reduce", true},
	}

	for _, tt := range tests {
		t.Setenv(EnvReducedMotion, tt.value)
		if got := ReducedMotionFromEnv(); got != tt.want {
			t.Errorf("ReducedMotionFromEnv() with %q: got %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestSystemLanguage(t *testing.T) {
	tests := []struct {
		name     string
		override string
		lcAll    string
		lcMsg    string
		lang     string
		want     string
	}{
		{"lang only", "", "", "", "ja_JP.UTF-8", "ja-JP"},
		{"lc_all wins", "", "zh_TW.UTF-8", "", "en_US.UTF-8", "zh-TW"},
		{"override wins", "fr", "de_DE", "", "en_US", "fr"},
		{"posix", "", "", "", "C.UTF-8", ""},
		{"modifier", "", "", "de_DE@euro", "", "de-DE"},
		{"unset", "", "", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvLanguage, tt.override)
			t.Setenv("LC_ALL", tt.lcAll)
			t.Setenv("LC_MESSAGES", tt.lcMsg)
			t.Setenv("LANG", tt.lang)
			if got := SystemLanguage(); got != tt.want {
				t.Errorf("SystemLanguage(): got %q, want %q", got, tt.want)
			}
		})
	}
}
