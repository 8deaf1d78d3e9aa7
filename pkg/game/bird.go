package game

import (
	"math"

	"github.com/decker502/flappykaho/pkg/config"
)

// Bird 玩家实体
// X 固定，Y/Velocity/Rotation 仅在 Playing 状态下每帧更新
type Bird struct {
	X        float64
	Y        float64 // 圆心 Y 坐标
	Velocity float64 // 垂直速度（像素/帧，正值向下）
	Rotation float64 // 旋转角度（弧度）
	Radius   float64
}

// NewBird 创建处于初始位置的小鸟
func NewBird(bt config.BirdTuning) Bird {
	b := Bird{}
	b.Reset(bt)
	return b
}

// Reset 恢复初始位置、速度和角度
func (b *Bird) Reset(bt config.BirdTuning) {
	b.X = bt.X
	b.Y = bt.StartY
	b.Velocity = 0
	b.Rotation = 0
	b.Radius = bt.Radius
}

// Flap 跳跃：直接覆盖当前速度（不是叠加）
func (b *Bird) Flap(p config.PhysicsTuning) {
	b.Velocity = p.FlapVelocity
}

// Step 推进一个模拟步（半隐式欧拉）
//
// 参数：
//   - scaler: 帧率归一化系数（实际帧间隔 / 60fps 帧间隔）
//   - p: 物理参数
func (b *Bird) Step(scaler float64, p config.PhysicsTuning) {
	b.Velocity += p.Gravity * scaler
	b.Y += b.Velocity * scaler

	// 上升时立即抬头，下落时以固定角速度低头直到最大角度
	if b.Velocity < 0 {
		b.Rotation = p.NoseUpAngle
		return
	}
	b.Rotation = math.Min(b.Rotation+p.RotationRate*scaler, p.NoseDownAngle)
}

// Hitbox 返回收缩后的碰撞盒
func (b *Bird) Hitbox(margin float64) Box {
	r := b.Radius - margin
	return Box{
		Left:   b.X - r,
		Top:    b.Y - r,
		Right:  b.X + r,
		Bottom: b.Y + r,
	}
}

// BobOffset 准备状态下的浮动偏移，只用于绘制，不写回 Y
func BobOffset(frame int, p config.PhysicsTuning) float64 {
	return math.Sin(float64(frame)*p.BobFrequency) * p.BobAmplitude
}
