package app

import (
	"github.com/decker502/flappykaho/pkg/game"
	"github.com/decker502/flappykaho/pkg/render"
)

// ResolveLanguage 选择画布语言：已保存的设置优先，其次系统语言，最后默认语言
func ResolveLanguage(saved, system string) string {
	if saved != "" {
		return saved
	}
	return system
}

// ResolveTheme 根据主题偏好和系统深色模式选择主题
func ResolveTheme(pref string, systemDark bool) render.Theme {
	if theme, ok := render.ParseTheme(pref); ok {
		return theme
	}
	return render.ThemeFromDark(systemDark)
}

// NextThemePref 主题偏好循环：auto → light → dark → auto
func NextThemePref(pref string) string {
	switch pref {
	case game.ThemeAuto:
		return game.ThemeLight
	case game.ThemeLight:
		return game.ThemeDark
	default:
		return game.ThemeAuto
	}
}
