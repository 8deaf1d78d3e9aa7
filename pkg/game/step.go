package game

import "github.com/decker502/flappykaho/pkg/config"

// ClampDelta 限制单帧时间步长
//
// 超过 MaxDeltaMs 的间隔（例如标签页切回、窗口拖动造成的卡顿）
// 直接替换为 FallbackDeltaMs，避免小鸟一步穿过管道。负值视为 0。
func ClampDelta(dtMs float64, p config.PhysicsTuning) float64 {
	if dtMs < 0 {
		return 0
	}
	if dtMs > p.MaxDeltaMs {
		return p.FallbackDeltaMs
	}
	return dtMs
}

// FrameScaler 返回帧率归一化系数
func FrameScaler(dtMs float64) float64 {
	return dtMs / config.NominalFrameMs
}

// Offsets 四个视差背景层的滚动距离累加器
// 只在 Playing 状态下增长
type Offsets struct {
	Clouds float64
	Hills  float64
	Trees  float64
	Ground float64
}

// Advance 按管道本帧移动距离和各层比例推进
func (o *Offsets) Advance(pipeDistance float64, px config.ParallaxTuning) {
	o.Clouds += pipeDistance * px.Clouds
	o.Hills += pipeDistance * px.Hills
	o.Trees += pipeDistance * px.Trees
	o.Ground += pipeDistance * px.Ground
}
