// Package ui 提供画布内的 HUD：分数、最高分、结算层、重新开始按钮和动画暂停提示。
//
// HUD 实现 game.NumberDisplay / game.Toggle，作为会话的外部界面协作者；
// 绘制只依赖 render.Surface，因此 ebiten 和终端前端共用同一份布局。
package ui

import (
	"fmt"

	"github.com/decker502/flappykaho/pkg/config"
	"github.com/decker502/flappykaho/pkg/game"
	"github.com/decker502/flappykaho/pkg/render"
)

// 布局常量（布局像素）
const (
	scoreTop    = 24.0
	scoreScale  = 3.0
	labelScale  = 1.0
	margin      = 10.0
	lineHeight  = 16.0
	panelHeight = 150.0
	buttonW     = 150.0
	buttonH     = 36.0
	noticeH     = 84.0
)

// Counter 数字显示
type Counter struct {
	value int
}

// SetValue 实现 game.NumberDisplay
func (c *Counter) SetValue(v int) {
	c.value = v
}

// Value 返回当前显示的数字
func (c *Counter) Value() int {
	return c.value
}

// Flag 可见性开关
type Flag struct {
	visible bool
}

// SetVisible 实现 game.Toggle
func (f *Flag) SetVisible(visible bool) {
	f.visible = visible
}

// Visible 返回是否可见
func (f *Flag) Visible() bool {
	return f.visible
}

// Button 可点击按钮
// 位置在每次绘制时按表面尺寸重新计算
type Button struct {
	Flag
	X      float64 // 左上角 X（布局像素）
	Y      float64 // 左上角 Y（布局像素）
	Width  float64
	Height float64
}

// Contains 检查点是否落在按钮内；不可见或尚未布局的按钮总是返回 false
func (b *Button) Contains(x, y float64) bool {
	if !b.visible || b.Width <= 0 {
		return false
	}
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// HUD 画布内界面
type HUD struct {
	Score   Counter
	Best    Counter
	Overlay Flag
	Restart Button
	Notice  Flag
	// Override "仍然播放动画" 按钮，与 Notice 同时显示
	Override Button
}

// NewHUD 创建 HUD（全部元素隐藏）
func NewHUD() *HUD {
	return &HUD{}
}

// GameUI 返回会话使用的界面协作者
func (h *HUD) GameUI() game.UI {
	return game.UI{
		Score:   &h.Score,
		Best:    &h.Best,
		Overlay: &h.Overlay,
		Restart: &h.Restart,
		Notice:  noticeToggle{h},
	}
}

// noticeToggle 同时切换提示文本和覆盖按钮
type noticeToggle struct {
	h *HUD
}

func (n noticeToggle) SetVisible(visible bool) {
	n.h.Notice.SetVisible(visible)
	n.h.Override.SetVisible(visible)
}

// HitRestart 检查点击是否落在重新开始按钮上
func (h *HUD) HitRestart(x, y float64) bool {
	return h.Restart.Contains(x, y)
}

// HitOverride 检查点击是否落在动画覆盖按钮上
func (h *HUD) HitOverride(x, y float64) bool {
	return h.Override.Contains(x, y)
}

// Layout 按表面尺寸计算按钮位置
func (h *HUD) Layout(width, height float64) {
	panelY := height/2 - panelHeight/2
	h.Restart.X = width/2 - buttonW/2
	h.Restart.Y = panelY + panelHeight - buttonH - margin
	h.Restart.Width = buttonW
	h.Restart.Height = buttonH

	noticeY := height - noticeH - margin
	h.Override.X = width/2 - buttonW/2
	h.Override.Y = noticeY + noticeH - buttonH - margin
	h.Override.Width = buttonW
	h.Override.Height = buttonH
}

// Draw 绘制 HUD
//
// 参数：
//   - s: 绘制表面
//   - prompts: 当前语言的文本
//   - theme: 当前主题
func (h *HUD) Draw(s render.Surface, prompts config.Prompts, theme render.Theme) {
	width, height := s.Size()
	h.Layout(width, height)
	p := theme.Palette()

	render.DrawPrompt(s, fmt.Sprintf("%d", h.Score.value), scoreTop, scoreScale, theme)
	s.DrawText(fmt.Sprintf("%s %d", prompts.Best, h.Best.value), width-margin, margin, labelScale, render.AlignRight, p.Text)

	if h.Overlay.visible {
		panelY := height/2 - panelHeight/2
		s.FillRect(margin*2, panelY, width-margin*4, panelHeight, p.Panel)
		s.DrawText(prompts.GameOver, width/2, panelY+margin*2, 2, render.AlignCenter, p.Text)
		s.DrawText(fmt.Sprintf("%s %d", prompts.Score, h.Score.value), width/2, panelY+margin*2+lineHeight*2, labelScale, render.AlignCenter, p.Text)
		s.DrawText(fmt.Sprintf("%s %d", prompts.Best, h.Best.value), width/2, panelY+margin*2+lineHeight*3, labelScale, render.AlignCenter, p.Text)
	}
	if h.Restart.visible {
		drawButton(s, &h.Restart, prompts.Restart, p)
	}

	if h.Notice.visible {
		noticeY := height - noticeH - margin
		s.FillRect(margin, noticeY, width-margin*2, noticeH, p.Panel)
		s.DrawText(prompts.MotionNotice, width/2, noticeY+margin, labelScale, render.AlignCenter, p.Text)
	}
	if h.Override.visible {
		drawButton(s, &h.Override, prompts.MotionOverride, p)
	}
}

func drawButton(s render.Surface, b *Button, label string, p *render.Palette) {
	s.FillRect(b.X, b.Y, b.Width, b.Height, p.Button)
	s.DrawText(label, b.X+b.Width/2, b.Y+b.Height/2-lineHeight/2, labelScale, render.AlignCenter, p.Text)
}
