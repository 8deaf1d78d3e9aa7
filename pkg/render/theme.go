package render

import (
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Theme 配色主题
type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
)

// String 返回主题名称
func (t Theme) String() string {
	if t == ThemeDark {
		return "dark"
	}
	return "light"
}

// ParseTheme 解析主题名称（不区分大小写）
//
// 返回：
//   - Theme: 解析结果，无法识别时为 ThemeLight
//   - bool: 是否为明确的 light/dark（"auto" 或其他值返回 false）
func ParseTheme(name string) (Theme, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "light":
		return ThemeLight, true
	case "dark":
		return ThemeDark, true
	}
	return ThemeLight, false
}

// ThemeFromDark 根据系统深色模式偏好选择主题
func ThemeFromDark(dark bool) Theme {
	if dark {
		return ThemeDark
	}
	return ThemeLight
}

// Palette 一个主题的全部颜色
type Palette struct {
	SkyTop    colorful.Color
	SkyBottom colorful.Color

	Cloud color.Color
	Moon  color.Color
	Star  color.Color

	HillA   color.Color
	HillB   color.Color
	Tree    color.Color
	Trunk   color.Color
	GroundA color.Color
	GroundB color.Color
	Grass   color.Color

	Pipe    color.Color
	PipeCap color.Color

	Bird  color.Color
	Wing  color.Color
	Beak  color.Color
	Eye   color.Color
	Pupil color.Color

	Text   color.Color
	Shadow color.Color
	Panel  color.Color
	Button color.Color
}

var (
	lightPalette = &Palette{
		SkyTop:    colorful.MustParseHex("#4ec0ca"),
		SkyBottom: colorful.MustParseHex("#d8f3f0"),
		Cloud:     colorful.MustParseHex("#ffffff"),
		Moon:      colorful.MustParseHex("#fdf6c3"),
		Star:      colorful.MustParseHex("#ffffff"),
		HillA:     colorful.MustParseHex("#7fbf7f"),
		HillB:     colorful.MustParseHex("#6aa86a"),
		Tree:      colorful.MustParseHex("#2e8b57"),
		Trunk:     colorful.MustParseHex("#6b4226"),
		GroundA:   colorful.MustParseHex("#ded895"),
		GroundB:   colorful.MustParseHex("#c9c27a"),
		Grass:     colorful.MustParseHex("#73bf2e"),
		Pipe:      colorful.MustParseHex("#5cb85c"),
		PipeCap:   colorful.MustParseHex("#3e8e41"),
		Bird:      colorful.MustParseHex("#f7b6c8"),
		Wing:      colorful.MustParseHex("#f28aa6"),
		Beak:      colorful.MustParseHex("#f5a623"),
		Eye:       colorful.MustParseHex("#ffffff"),
		Pupil:     colorful.MustParseHex("#222222"),
		Text:      colorful.MustParseHex("#ffffff"),
		Shadow:    colorful.MustParseHex("#333333"),
		Panel:     color.RGBA{0x00, 0x00, 0x00, 0x99},
		Button:    colorful.MustParseHex("#e86a92"),
	}

	darkPalette = &Palette{
		SkyTop:    colorful.MustParseHex("#0b1026"),
		SkyBottom: colorful.MustParseHex("#2b3a67"),
		Cloud:     colorful.MustParseHex("#4a5578"),
		Moon:      colorful.MustParseHex("#f4f1c9"),
		Star:      colorful.MustParseHex("#e6e9ff"),
		HillA:     colorful.MustParseHex("#243b4a"),
		HillB:     colorful.MustParseHex("#1c2f3c"),
		Tree:      colorful.MustParseHex("#16302b"),
		Trunk:     colorful.MustParseHex("#3b2a1e"),
		GroundA:   colorful.MustParseHex("#5b5536"),
		GroundB:   colorful.MustParseHex("#4a452b"),
		Grass:     colorful.MustParseHex("#3d6b1f"),
		Pipe:      colorful.MustParseHex("#2f6f3a"),
		PipeCap:   colorful.MustParseHex("#22532b"),
		Bird:      colorful.MustParseHex("#d98aa3"),
		Wing:      colorful.MustParseHex("#b8607e"),
		Beak:      colorful.MustParseHex("#d48a1c"),
		Eye:       colorful.MustParseHex("#f0f0f0"),
		Pupil:     colorful.MustParseHex("#111111"),
		Text:      colorful.MustParseHex("#f0f0f0"),
		Shadow:    colorful.MustParseHex("#000000"),
		Panel:     color.RGBA{0x00, 0x00, 0x00, 0xb3},
		Button:    colorful.MustParseHex("#9c4a6a"),
	}
)

// Palette 返回主题调色板
func (t Theme) Palette() *Palette {
	if t == ThemeDark {
		return darkPalette
	}
	return lightPalette
}

// skyDecoration 天空装饰层（浅色主题为滚动的云，深色主题为静止的月亮和星星）
type skyDecoration interface {
	draw(s Surface, skyHeight, offset float64, p *Palette)
}

// decoration 返回主题对应的天空装饰
func (t Theme) decoration() skyDecoration {
	if t == ThemeDark {
		return moonAndStars{}
	}
	return cloudBand{}
}
