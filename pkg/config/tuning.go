package config

import (
	"fmt"

	"github.com/decker502/flappykaho/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// TuningPath 是嵌入的数值配置文件路径
const TuningPath = "data/tuning.yaml"

// NominalFrameMs 是 60fps 下的标准帧间隔（毫秒）
// 所有 "每帧" 单位的速度都以此为基准进行缩放
const NominalFrameMs = 1000.0 / 60.0

// Tuning 游戏数值配置
//
// 配置文件位置: data/tuning.yaml
type Tuning struct {
	Physics   PhysicsTuning   `yaml:"physics"`
	Bird      BirdTuning      `yaml:"bird"`
	Pipes     PipeTuning      `yaml:"pipes"`
	Playfield PlayfieldTuning `yaml:"playfield"`
	Parallax  ParallaxTuning  `yaml:"parallax"`
	Audio     AudioTuning     `yaml:"audio"`
}

// PhysicsTuning 物理参数
type PhysicsTuning struct {
	Gravity         float64 `yaml:"gravity"`         // 重力加速度（像素/帧²）
	FlapVelocity    float64 `yaml:"flapVelocity"`    // 跳跃速度（负值向上）
	MaxDeltaMs      float64 `yaml:"maxDeltaMs"`      // 帧间隔上限，超过则视为卡顿
	FallbackDeltaMs float64 `yaml:"fallbackDeltaMs"` // 卡顿时替代使用的帧间隔
	NoseUpAngle     float64 `yaml:"noseUpAngle"`     // 上升时的抬头角度（弧度）
	NoseDownAngle   float64 `yaml:"noseDownAngle"`   // 下落时的最大低头角度（弧度）
	RotationRate    float64 `yaml:"rotationRate"`    // 低头角速度（弧度/帧）
	BobAmplitude    float64 `yaml:"bobAmplitude"`    // 准备状态浮动幅度（像素）
	BobFrequency    float64 `yaml:"bobFrequency"`    // 准备状态浮动频率（弧度/帧）
}

// BirdTuning 玩家实体参数
type BirdTuning struct {
	X            float64 `yaml:"x"`            // 固定的水平位置
	StartY       float64 `yaml:"startY"`       // 初始垂直位置
	Radius       float64 `yaml:"radius"`       // 半径
	HitboxMargin float64 `yaml:"hitboxMargin"` // 碰撞盒向内收缩的边距
}

// PipeTuning 障碍物参数
type PipeTuning struct {
	Width           float64 `yaml:"width"`
	GapHeight       float64 `yaml:"gapHeight"`       // 缺口高度（固定）
	MinMargin       float64 `yaml:"minMargin"`       // 缺口距上下边界的最小距离
	Speed           float64 `yaml:"speed"`           // 水平速度（像素/帧）
	SpawnIntervalMs float64 `yaml:"spawnIntervalMs"` // 生成间隔
	CullMargin      float64 `yaml:"cullMargin"`      // 移出左边界多少像素后销毁
}

// PlayfieldTuning 默认场地尺寸（布局像素）
type PlayfieldTuning struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"groundHeight"`
}

// ParallaxTuning 各背景层相对管道速度的比例
type ParallaxTuning struct {
	Clouds float64 `yaml:"clouds"`
	Hills  float64 `yaml:"hills"`
	Trees  float64 `yaml:"trees"`
	Ground float64 `yaml:"ground"`
}

// AudioTuning 得分提示音参数
type AudioTuning struct {
	MaxConcurrentSounds int     `yaml:"maxConcurrentSounds"` // 同时播放的提示音上限
	ChimeDurationMs     float64 `yaml:"chimeDurationMs"`
	ChimeStartHz        float64 `yaml:"chimeStartHz"`
	ChimeEndHz          float64 `yaml:"chimeEndHz"`
	ChimeStartGain      float64 `yaml:"chimeStartGain"`
	ChimeEndGain        float64 `yaml:"chimeEndGain"`
}

// DefaultTuning 返回内置默认配置
// 与 data/tuning.yaml 保持一致，加载失败时作为兜底
func DefaultTuning() *Tuning {
	return &Tuning{
		Physics: PhysicsTuning{
			Gravity:         0.5,
			FlapVelocity:    -8,
			MaxDeltaMs:      100,
			FallbackDeltaMs: 16,
			NoseUpAngle:     -0.4,
			NoseDownAngle:   1.2,
			RotationRate:    0.06,
			BobAmplitude:    6,
			BobFrequency:    0.08,
		},
		Bird: BirdTuning{
			X:            80,
			StartY:       200,
			Radius:       14,
			HitboxMargin: 4,
		},
		Pipes: PipeTuning{
			Width:           60,
			GapHeight:       150,
			MinMargin:       50,
			Speed:           2.5,
			SpawnIntervalMs: 1500,
			CullMargin:      10,
		},
		Playfield: PlayfieldTuning{
			Width:        400,
			Height:       600,
			GroundHeight: 60,
		},
		Parallax: ParallaxTuning{
			Clouds: 0.1,
			Hills:  0.25,
			Trees:  0.5,
			Ground: 0.8,
		},
		Audio: AudioTuning{
			MaxConcurrentSounds: 3,
			ChimeDurationMs:     100,
			ChimeStartHz:        400,
			ChimeEndHz:          800,
			ChimeStartGain:      0.1,
			ChimeEndGain:        0.01,
		},
	}
}

// LoadTuning 从嵌入资源加载数值配置
//
// 参数:
//   - path: 配置文件路径（如 "data/tuning.yaml"）
//
// 返回:
//   - *Tuning: 加载并验证后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadTuning(path string) (*Tuning, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning config: %w", err)
	}
	return ParseTuning(data)
}

// ParseTuning 解析 YAML 数值配置
//
// 未出现在 YAML 中的字段保留默认值，因此配置文件可以只覆盖部分参数。
func ParseTuning(data []byte) (*Tuning, error) {
	t := DefaultTuning()
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("failed to parse tuning config: %w", err)
	}

	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning config: %w", err)
	}

	return t, nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 时间参数：fallbackDeltaMs 为正且不超过 maxDeltaMs
//   - 尺寸参数均为正
//   - 默认场地能容纳缺口及上下边距
//   - 视差比例严格递增且都小于 1（远景比近景慢，且都比管道慢）
//   - 提示音并发上限至少为 1
func (t *Tuning) Validate() error {
	p := t.Physics
	if p.FallbackDeltaMs <= 0 || p.MaxDeltaMs <= 0 {
		return fmt.Errorf("delta clamp must be positive: max=%.1f fallback=%.1f", p.MaxDeltaMs, p.FallbackDeltaMs)
	}
	if p.FallbackDeltaMs > p.MaxDeltaMs {
		return fmt.Errorf("fallbackDeltaMs(%.1f) > maxDeltaMs(%.1f)", p.FallbackDeltaMs, p.MaxDeltaMs)
	}
	if p.FlapVelocity >= 0 {
		return fmt.Errorf("flapVelocity must be negative (upward), got %.2f", p.FlapVelocity)
	}
	if p.NoseUpAngle > p.NoseDownAngle {
		return fmt.Errorf("noseUpAngle(%.2f) > noseDownAngle(%.2f)", p.NoseUpAngle, p.NoseDownAngle)
	}

	if t.Bird.Radius <= 0 {
		return fmt.Errorf("bird radius must be positive, got %.1f", t.Bird.Radius)
	}
	if t.Bird.HitboxMargin < 0 || t.Bird.HitboxMargin >= t.Bird.Radius {
		return fmt.Errorf("hitboxMargin must be in [0, radius), got %.1f", t.Bird.HitboxMargin)
	}

	pp := t.Pipes
	if pp.Width <= 0 || pp.GapHeight <= 0 || pp.Speed <= 0 || pp.SpawnIntervalMs <= 0 {
		return fmt.Errorf("pipe width, gapHeight, speed and spawnIntervalMs must be positive")
	}
	if pp.MinMargin < 0 || pp.CullMargin < 0 {
		return fmt.Errorf("pipe margins must not be negative")
	}

	pf := t.Playfield
	if pf.Width <= 0 || pf.Height <= 0 || pf.GroundHeight < 0 {
		return fmt.Errorf("invalid playfield %.0fx%.0f ground=%.0f", pf.Width, pf.Height, pf.GroundHeight)
	}
	if usable := pf.Height - pf.GroundHeight; usable < 2*pp.MinMargin+pp.GapHeight {
		return fmt.Errorf("playfield height %.0f cannot fit gap %.0f with margin %.0f", usable, pp.GapHeight, pp.MinMargin)
	}

	px := t.Parallax
	if !(0 <= px.Clouds && px.Clouds < px.Hills && px.Hills < px.Trees && px.Trees < px.Ground && px.Ground < 1) {
		return fmt.Errorf("parallax ratios must satisfy 0 <= clouds < hills < trees < ground < 1, got %.2f/%.2f/%.2f/%.2f",
			px.Clouds, px.Hills, px.Trees, px.Ground)
	}

	if t.Audio.MaxConcurrentSounds < 1 {
		return fmt.Errorf("maxConcurrentSounds must be >= 1, got %d", t.Audio.MaxConcurrentSounds)
	}

	return nil
}
