// Package utils 提供平台相关的工具函数：输入、系统偏好和存储目录
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input 当前帧的输入事件
//
// 指针坐标已换算为布局像素。
type Input struct {
	// Pointer 是否有点击/触摸刚刚按下
	Pointer bool
	// X, Y 按下位置（布局像素）
	X, Y float64

	// Action 主操作（空格键）；指针按下是否算主操作由调用方结合按钮命中决定
	Action bool
	// Restart 重新开始（R / Enter）
	Restart bool
	// Override 忽略 "减少动态效果" 偏好（M）
	Override bool
	// CycleLanguage 切换画布语言（L）
	CycleLanguage bool
	// CycleTheme 切换主题偏好（T）
	CycleTheme bool
	// ToggleFullscreen 切换全屏（F11）
	ToggleFullscreen bool
}

// ReadInput 读取当前帧的输入
//
// 参数：
//   - scale: 设备像素比，用于把设备坐标换算为布局坐标
func ReadInput(scale float64) Input {
	var in Input

	if pressed, x, y := IsPointerJustPressed(); pressed {
		in.Pointer = true
		in.X, in.Y = ToLayout(x, y, scale)
	}

	in.Action = inpututil.IsKeyJustPressed(ebiten.KeySpace)
	in.Restart = inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter)
	in.Override = inpututil.IsKeyJustPressed(ebiten.KeyM)
	in.CycleLanguage = inpututil.IsKeyJustPressed(ebiten.KeyL)
	in.CycleTheme = inpututil.IsKeyJustPressed(ebiten.KeyT)
	in.ToggleFullscreen = inpututil.IsKeyJustPressed(ebiten.KeyF11)
	return in
}

// IsPointerJustPressed 检查是否刚刚按下指针（触摸或鼠标）
// 返回是否按下以及按下位置（ebiten 逻辑坐标）
func IsPointerJustPressed() (bool, int, int) {
	// 优先检查触摸按下（移动设备）
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	// 检查鼠标按下（桌面设备）
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// ToLayout 把设备像素坐标换算为布局像素坐标
func ToLayout(x, y int, scale float64) (float64, float64) {
	if scale <= 0 {
		scale = 1
	}
	return float64(x) / scale, float64(y) / scale
}
