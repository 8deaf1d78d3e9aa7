package render

import (
	"math"

	"github.com/decker502/flappykaho/pkg/game"
)

// 背景层几何参数（布局像素）
const (
	skyStrips = 24

	cloudTile   = 180.0
	cloudTop    = 60.0
	hillTile    = 140.0
	hillHeight  = 90.0
	treeTile    = 48.0
	treeHeight  = 46.0
	trunkWidth  = 6.0
	trunkHeight = 10.0
	groundTile  = 24.0
	grassHeight = 8.0
	stripeDepth = 10.0
)

// stars 深色主题星星位置（相对天空区域的比例坐标）
var stars = [...][2]float64{
	{0.06, 0.08}, {0.14, 0.22}, {0.23, 0.05}, {0.31, 0.31}, {0.38, 0.12},
	{0.47, 0.26}, {0.55, 0.06}, {0.62, 0.19}, {0.71, 0.34}, {0.79, 0.09},
	{0.88, 0.27}, {0.94, 0.14}, {0.10, 0.40}, {0.44, 0.42}, {0.67, 0.46},
}

// DrawBackground 从后到前绘制全部背景层
//
// 参数：
//   - s: 绘制表面
//   - offsets: 各层滚动距离
//   - floorY: 地面上沿
//   - theme: 当前主题
func DrawBackground(s Surface, offsets game.Offsets, floorY float64, theme Theme) {
	p := theme.Palette()

	drawSky(s, floorY, p)
	theme.decoration().draw(s, floorY, offsets.Clouds, p)
	drawHills(s, floorY, offsets.Hills, p)
	drawTrees(s, floorY, offsets.Trees, p)
	drawGround(s, floorY, offsets.Ground, p)
}

// drawSky 两色渐变天空，按水平条带插值
func drawSky(s Surface, floorY float64, p *Palette) {
	width, _ := s.Size()
	strip := floorY / skyStrips
	for i := 0; i < skyStrips; i++ {
		t := float64(i) / float64(skyStrips-1)
		c := p.SkyTop.BlendRgb(p.SkyBottom, t).Clamped()
		// 多画 1 像素避免条带之间出现缝隙
		s.FillRect(0, float64(i)*strip, width, strip+1, c)
	}
}

// tiles 返回一层平铺图块的起点
//
// first 为最左侧可见图块的全局序号（用于按奇偶选色），shift 为其相对屏幕左边界的偏移。
func tiles(offset, tile float64) (first int, shift float64) {
	n := math.Floor(offset / tile)
	return int(n), offset - n*tile
}

type cloudBand struct{}

func (cloudBand) draw(s Surface, skyHeight, offset float64, p *Palette) {
	width, _ := s.Size()
	top := math.Min(cloudTop, skyHeight/4)
	_, shift := tiles(offset, cloudTile)
	for x := -shift; x < width; x += cloudTile {
		s.FillRect(x+20, top+12, 90, 18, p.Cloud)
		s.FillRect(x+36, top, 50, 14, p.Cloud)
		s.FillRect(x+100, top+40, 60, 12, p.Cloud)
	}
}

type moonAndStars struct{}

func (moonAndStars) draw(s Surface, skyHeight, _ float64, p *Palette) {
	width, _ := s.Size()
	for _, st := range stars {
		s.FillRect(st[0]*width, st[1]*skyHeight, 2, 2, p.Star)
	}
	s.FillCircle(width*0.8, math.Min(70, skyHeight/4), 22, p.Moon)
}

func drawHills(s Surface, floorY, offset float64, p *Palette) {
	width, _ := s.Size()
	first, shift := tiles(offset, hillTile)
	for i, x := 0, -shift; x < width; i, x = i+1, x+hillTile {
		c := p.HillA
		if (first+i)%2 != 0 {
			c = p.HillB
		}
		s.FillTriangle(x, floorY, x+hillTile/2, floorY-hillHeight, x+hillTile, floorY, c)
	}
}

func drawTrees(s Surface, floorY, offset float64, p *Palette) {
	width, _ := s.Size()
	_, shift := tiles(offset, treeTile)
	base := floorY - trunkHeight
	for x := -shift; x < width; x += treeTile {
		s.FillRect(x+treeTile/2-trunkWidth/2, base, trunkWidth, trunkHeight, p.Trunk)
		s.FillTriangle(x+4, base, x+treeTile/2, base-treeHeight, x+treeTile-4, base, p.Tree)
	}
}

func drawGround(s Surface, floorY, offset float64, p *Palette) {
	width, height := s.Size()
	s.FillRect(0, floorY, width, height-floorY, p.GroundA)
	s.FillRect(0, floorY, width, grassHeight, p.Grass)

	_, shift := tiles(offset, groundTile)
	for x := -shift; x < width; x += groundTile {
		s.FillRect(x, floorY+grassHeight, groundTile/2, stripeDepth, p.GroundB)
	}
}
