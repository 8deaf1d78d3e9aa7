package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v4"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var defaultFace = text.NewGoXFace(bitmapfont.Face)

// whiteSubImage 三角形填充使用的纯白纹理（取 3x3 图像的中心像素，避免采样到边缘）
var whiteSubImage *ebiten.Image

func whiteTexture() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// EbitenSurface 基于 ebiten 图像的绘制表面
//
// 目标图像是设备像素尺寸，scale 为设备像素比；
// 所有布局坐标在这里统一乘以 scale，调用方无需关心 DPI。
type EbitenSurface struct {
	dst   *ebiten.Image
	scale float64
	face  text.Face

	vertices [3]ebiten.Vertex
	indices  [3]uint16
}

// NewEbitenSurface 创建绘制表面
//
// 参数：
//   - dst: 目标图像（设备像素）
//   - scale: 设备像素比，<= 0 时按 1 处理
func NewEbitenSurface(dst *ebiten.Image, scale float64) *EbitenSurface {
	if scale <= 0 {
		scale = 1
	}
	return &EbitenSurface{
		dst:     dst,
		scale:   scale,
		face:    defaultFace,
		indices: [3]uint16{0, 1, 2},
	}
}

// Reset 切换目标图像和缩放（每帧复用同一个表面）
func (s *EbitenSurface) Reset(dst *ebiten.Image, scale float64) {
	if scale <= 0 {
		scale = 1
	}
	s.dst = dst
	s.scale = scale
}

// Size 返回布局尺寸
func (s *EbitenSurface) Size() (float64, float64) {
	b := s.dst.Bounds()
	return float64(b.Dx()) / s.scale, float64(b.Dy()) / s.scale
}

// FillRect 填充矩形
func (s *EbitenSurface) FillRect(x, y, w, h float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	k := s.scale
	vector.DrawFilledRect(s.dst, float32(x*k), float32(y*k), float32(w*k), float32(h*k), c, false)
}

// FillTriangle 填充三角形
func (s *EbitenSurface) FillTriangle(x1, y1, x2, y2, x3, y3 float64, c color.Color) {
	r, g, b, a := c.RGBA()
	pts := [3][2]float64{{x1, y1}, {x2, y2}, {x3, y3}}
	for i, pt := range pts {
		s.vertices[i] = ebiten.Vertex{
			DstX:   float32(pt[0] * s.scale),
			DstY:   float32(pt[1] * s.scale),
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(r) / 0xffff,
			ColorG: float32(g) / 0xffff,
			ColorB: float32(b) / 0xffff,
			ColorA: float32(a) / 0xffff,
		}
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	s.dst.DrawTriangles(s.vertices[:], s.indices[:], whiteTexture(), op)
}

// FillCircle 填充圆
func (s *EbitenSurface) FillCircle(cx, cy, r float64, c color.Color) {
	if r <= 0 {
		return
	}
	k := s.scale
	vector.DrawFilledCircle(s.dst, float32(cx*k), float32(cy*k), float32(r*k), c, true)
}

// DrawText 绘制单行文本
func (s *EbitenSurface) DrawText(str string, x, y, scale float64, align Align, c color.Color) {
	k := s.scale * scale
	w := text.Advance(str, s.face) * k
	switch align {
	case AlignCenter:
		x = x*s.scale - w/2
	case AlignRight:
		x = x*s.scale - w
	default:
		x = x * s.scale
	}

	op := &text.DrawOptions{}
	op.GeoM.Scale(k, k)
	op.GeoM.Translate(x, y*s.scale)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(s.dst, str, s.face, op)
}

// TextWidth 返回文本的布局宽度
func (s *EbitenSurface) TextWidth(str string, scale float64) float64 {
	return text.Advance(str, s.face) * scale
}
