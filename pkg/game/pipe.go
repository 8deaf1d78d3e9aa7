package game

import (
	"math/rand"

	"github.com/decker502/flappykaho/pkg/config"
)

// Pipe 障碍物
// 缺口高度为固定常量，只记录缺口上沿
type Pipe struct {
	X      float64
	GapTop float64
	Passed bool // 已计分；只会从 false 变为 true 一次
}

// GapBottom 返回缺口下沿
func (p Pipe) GapBottom(gapHeight float64) float64 {
	return p.GapTop + gapHeight
}

// TrailingEdge 返回管道右边缘
func (p Pipe) TrailingEdge(width float64) float64 {
	return p.X + width
}

// GapTopRange 返回缺口上沿的合法取值范围 [lo, hi]
//
// 保证整个缺口距场地上下边界都不小于 MinMargin。
// 场地过矮（例如窗口被缩得很小）导致范围为空时，hi 取 lo。
func GapTopRange(playfieldHeight float64, pt config.PipeTuning) (lo, hi float64) {
	lo = pt.MinMargin
	hi = playfieldHeight - pt.MinMargin - pt.GapHeight
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// RandomGapTop 在合法范围内均匀随机选取缺口上沿
func RandomGapTop(rng *rand.Rand, playfieldHeight float64, pt config.PipeTuning) float64 {
	lo, hi := GapTopRange(playfieldHeight, pt)
	return lo + rng.Float64()*(hi-lo)
}
