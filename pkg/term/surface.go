// Package term 在终端中运行游戏：把布局像素坐标映射到 tcell 单元格。
package term

import (
	"image/color"
	"math"

	"github.com/decker502/flappykaho/pkg/render"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// CellAspect 终端单元格宽高比（宽 / 高）
const CellAspect = 0.5

// rgb 单元格背景色
type rgb struct {
	r, g, b uint8
}

// Surface 基于 tcell 的绘制表面
//
// 每个单元格对应一块 cellW x cellH 的布局区域，形状按单元格中心点是否落在图形内来填充。
// 背景色保存在本地缓冲区，半透明颜色与之混合，不需要回读屏幕。
type Surface struct {
	screen       tcell.Screen
	cols, rows   int
	width        float64
	height       float64
	cellW, cellH float64
	bg           []rgb
}

// NewSurface 创建绘制表面
//
// 参数：
//   - screen: tcell 屏幕
//   - height: 布局高度；布局宽度按终端列数和单元格宽高比推算
func NewSurface(screen tcell.Screen, height float64) *Surface {
	s := &Surface{screen: screen, height: height}
	s.Sync()
	return s
}

// Sync 按当前终端尺寸重新计算单元格映射
func (s *Surface) Sync() {
	cols, rows := s.screen.Size()
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	s.cols, s.rows = cols, rows
	s.cellH = s.height / float64(rows)
	s.cellW = s.cellH * CellAspect
	s.width = s.cellW * float64(cols)
	s.bg = make([]rgb, cols*rows)
}

// Size 返回布局尺寸
func (s *Surface) Size() (float64, float64) {
	return s.width, s.height
}

// CellToLayout 返回单元格中心的布局坐标
func (s *Surface) CellToLayout(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * s.cellW, (float64(row) + 0.5) * s.cellH
}

// cellRange 返回中心点落在 [lo, hi) 内的单元格下标范围 [first, last)
func cellRange(lo, hi, cell float64, limit int) (int, int) {
	first := int(math.Ceil(lo/cell - 0.5))
	last := int(math.Ceil(hi/cell - 0.5))
	if first < 0 {
		first = 0
	}
	if last > limit {
		last = limit
	}
	return first, last
}

// FillRect 填充矩形
// 矩形小于一个单元格时填充其中心所在的单元格，保证星星等小图形可见
func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	c0, c1 := cellRange(x, x+w, s.cellW, s.cols)
	r0, r1 := cellRange(y, y+h, s.cellH, s.rows)
	if c0 >= c1 || r0 >= r1 {
		s.paint(int((x+w/2)/s.cellW), int((y+h/2)/s.cellH), c)
		return
	}
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			s.paint(col, row, c)
		}
	}
}

// FillTriangle 填充三角形
func (s *Surface) FillTriangle(x1, y1, x2, y2, x3, y3 float64, c color.Color) {
	c0, c1 := cellRange(math.Min(x1, math.Min(x2, x3)), math.Max(x1, math.Max(x2, x3)), s.cellW, s.cols)
	r0, r1 := cellRange(math.Min(y1, math.Min(y2, y3)), math.Max(y1, math.Max(y2, y3)), s.cellH, s.rows)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			px, py := s.CellToLayout(col, row)
			if insideTriangle(px, py, x1, y1, x2, y2, x3, y3) {
				s.paint(col, row, c)
			}
		}
	}
}

// insideTriangle 用三条边的叉积符号判断点是否在三角形内（含边界）
func insideTriangle(px, py, x1, y1, x2, y2, x3, y3 float64) bool {
	d1 := (px-x2)*(y1-y2) - (x1-x2)*(py-y2)
	d2 := (px-x3)*(y2-y3) - (x2-x3)*(py-y3)
	d3 := (px-x1)*(y3-y1) - (x3-x1)*(py-y1)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

// FillCircle 填充圆
// 圆小于一个单元格时填充圆心所在的单元格
func (s *Surface) FillCircle(cx, cy, r float64, c color.Color) {
	if r <= 0 {
		return
	}
	c0, c1 := cellRange(cx-r, cx+r, s.cellW, s.cols)
	r0, r1 := cellRange(cy-r, cy+r, s.cellH, s.rows)
	painted := false
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			px, py := s.CellToLayout(col, row)
			if (px-cx)*(px-cx)+(py-cy)*(py-cy) <= r*r {
				s.paint(col, row, c)
				painted = true
			}
		}
	}
	if !painted {
		s.paint(int(cx/s.cellW), int(cy/s.cellH), c)
	}
}

// DrawText 绘制单行文本
// 终端只有一种字号，scale 被忽略；文字保留所在单元格的背景色
func (s *Surface) DrawText(str string, x, y, _ float64, align render.Align, c color.Color) {
	row := int(y / s.cellH)
	if row < 0 || row >= s.rows {
		return
	}
	col := int(x / s.cellW)
	switch align {
	case render.AlignCenter:
		col -= runewidth.StringWidth(str) / 2
	case render.AlignRight:
		col -= runewidth.StringWidth(str)
	}

	fg := toRGB(c)
	for _, r := range str {
		w := runewidth.RuneWidth(r)
		if col >= 0 && col+w <= s.cols {
			bg := s.bg[row*s.cols+col]
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(fg.r), int32(fg.g), int32(fg.b))).
				Background(tcell.NewRGBColor(int32(bg.r), int32(bg.g), int32(bg.b)))
			s.screen.SetContent(col, row, r, nil, style)
		}
		col += w
	}
}

// paint 设置单元格背景色（按 alpha 与原背景混合）
func (s *Surface) paint(col, row int, c color.Color) {
	if col < 0 || col >= s.cols || row < 0 || row >= s.rows {
		return
	}
	idx := row*s.cols + col
	s.bg[idx] = blend(s.bg[idx], c)
	bg := s.bg[idx]
	style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(bg.r), int32(bg.g), int32(bg.b)))
	s.screen.SetContent(col, row, ' ', nil, style)
}

// Background 返回单元格当前背景色
func (s *Surface) Background(col, row int) (r, g, b uint8) {
	bg := s.bg[row*s.cols+col]
	return bg.r, bg.g, bg.b
}

// toRGB 转为 8 位 RGB（去掉预乘 alpha）
func toRGB(c color.Color) rgb {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return rgb{}
	}
	return rgb{
		r: uint8(r * 0xffff / a >> 8),
		g: uint8(g * 0xffff / a >> 8),
		b: uint8(b * 0xffff / a >> 8),
	}
}

// blend 把颜色按 alpha 叠加到背景上
func blend(dst rgb, c color.Color) rgb {
	r, g, b, a := c.RGBA()
	if a == 0xffff {
		return rgb{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
	}
	inv := 0xffff - a
	mix := func(d uint8, v uint32) uint8 {
		return uint8((uint32(d)*0x101*inv/0xffff + v) >> 8)
	}
	return rgb{mix(dst.r, r), mix(dst.g, g), mix(dst.b, b)}
}
