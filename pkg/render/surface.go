package render

import "image/color"

// Align 文本水平对齐方式
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Surface 二维绘制表面
//
// 所有坐标都是布局像素（左上角为原点），设备像素比由实现方在内部统一换算一次。
// 绘制函数只依赖这个接口，因此同一套绘制逻辑可以输出到 ebiten 图像、
// 终端单元格或测试用的记录器。
type Surface interface {
	// Size 返回表面的布局尺寸
	Size() (width, height float64)
	// FillRect 填充矩形
	FillRect(x, y, w, h float64, c color.Color)
	// FillTriangle 填充三角形
	FillTriangle(x1, y1, x2, y2, x3, y3 float64, c color.Color)
	// FillCircle 填充圆
	FillCircle(cx, cy, r float64, c color.Color)
	// DrawText 绘制单行文本，y 为文本顶部，scale 为相对默认字号的缩放
	DrawText(s string, x, y, scale float64, align Align, c color.Color)
}
