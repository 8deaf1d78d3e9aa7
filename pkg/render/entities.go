package render

import (
	"math"

	"github.com/decker502/flappykaho/pkg/game"
)

const (
	pipeCapHeight = 20.0
	pipeCapLip    = 4.0
)

// DrawPipes 绘制所有管道（上下两段及管口）
func DrawPipes(s Surface, pipes []game.Pipe, floorY, pipeWidth, gapHeight float64, theme Theme) {
	p := theme.Palette()
	for _, pipe := range pipes {
		bottom := pipe.GapBottom(gapHeight)

		s.FillRect(pipe.X, 0, pipeWidth, pipe.GapTop, p.Pipe)
		s.FillRect(pipe.X-pipeCapLip, pipe.GapTop-pipeCapHeight, pipeWidth+2*pipeCapLip, pipeCapHeight, p.PipeCap)

		s.FillRect(pipe.X, bottom, pipeWidth, floorY-bottom, p.Pipe)
		s.FillRect(pipe.X-pipeCapLip, bottom, pipeWidth+2*pipeCapLip, pipeCapHeight, p.PipeCap)
	}
}

// DrawBird 按旋转角度绘制小鸟
//
// 参数：
//   - x, y: 圆心
//   - radius: 半径
//   - rotation: 旋转角度（弧度，正值低头）
func DrawBird(s Surface, x, y, radius, rotation float64, theme Theme) {
	p := theme.Palette()
	sin, cos := math.Sincos(rotation)
	// 局部坐标 → 屏幕坐标
	at := func(lx, ly float64) (float64, float64) {
		return x + lx*cos - ly*sin, y + lx*sin + ly*cos
	}

	s.FillCircle(x, y, radius, p.Bird)

	wx1, wy1 := at(-radius*0.8, 0)
	wx2, wy2 := at(-radius*0.1, -radius*0.1)
	wx3, wy3 := at(-radius*0.4, radius*0.6)
	s.FillTriangle(wx1, wy1, wx2, wy2, wx3, wy3, p.Wing)

	bx1, by1 := at(radius*0.7, -radius*0.3)
	bx2, by2 := at(radius*1.5, radius*0.05)
	bx3, by3 := at(radius*0.7, radius*0.35)
	s.FillTriangle(bx1, by1, bx2, by2, bx3, by3, p.Beak)

	ex, ey := at(radius*0.35, -radius*0.35)
	s.FillCircle(ex, ey, radius*0.3, p.Eye)
	px, py := at(radius*0.45, -radius*0.35)
	s.FillCircle(px, py, radius*0.13, p.Pupil)
}

// DrawPrompt 在场地中央绘制带阴影的提示文本
func DrawPrompt(s Surface, text string, y, scale float64, theme Theme) {
	if text == "" {
		return
	}
	p := theme.Palette()
	width, _ := s.Size()
	s.DrawText(text, width/2+1, y+1, scale, AlignCenter, p.Shadow)
	s.DrawText(text, width/2, y, scale, AlignCenter, p.Text)
}
