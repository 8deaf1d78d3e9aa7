package game

import (
	"log"
	"math/rand"
	"time"

	"github.com/decker502/flappykaho/pkg/config"
)

// SoundPlayer 得分提示音播放接口
type SoundPlayer interface {
	// Unlock 在用户第一次操作时创建或恢复音频上下文
	Unlock()
	// PlayScore 播放得分提示音，返回是否真正发声
	PlayScore() bool
}

// SessionOptions 创建会话的参数
type SessionOptions struct {
	Tuning *config.Tuning // 为 nil 时使用 config.DefaultTuning()
	Rand   *rand.Rand     // 缺口随机源，为 nil 时按当前时间播种
	Store  ScoreStore     // 最高分存储，可为 nil
	Sound  SoundPlayer    // 提示音，可为 nil
	UI     UI
	Width  float64 // 场地宽度（布局像素），为 0 时使用配置默认值
	Height float64 // 场地高度（布局像素，含地面），为 0 时使用配置默认值
}

// Session 一局游戏的全部状态
//
// 由渲染循环独占持有，更新、绘制和碰撞检测都以引用方式传入，
// 不存在包级共享状态，因此可以同时存在多个独立会话。
type Session struct {
	tuning *config.Tuning
	rng    *rand.Rand
	store  ScoreStore
	sound  SoundPlayer
	ui     UI

	State   State
	Bird    Bird
	Pipes   []Pipe
	Score   int
	Best    int
	Offsets Offsets
	Frame   int // 准备状态浮动计数器

	spawner Spawner
	width   float64
	height  float64
}

// NewSession 创建处于 Ready 状态的新会话，并读取一次最高分
func NewSession(opts SessionOptions) *Session {
	tuning := opts.Tuning
	if tuning == nil {
		tuning = config.DefaultTuning()
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	s := &Session{
		tuning:  tuning,
		rng:     rng,
		store:   opts.Store,
		sound:   opts.Sound,
		ui:      opts.UI,
		State:   StateReady,
		Bird:    NewBird(tuning.Bird),
		Pipes:   make([]Pipe, 0, 8),
		spawner: NewSpawner(tuning.Pipes.SpawnIntervalMs),
		width:   tuning.Playfield.Width,
		height:  tuning.Playfield.Height,
	}
	if opts.Width > 0 && opts.Height > 0 {
		s.width, s.height = opts.Width, opts.Height
	}

	if s.store != nil {
		s.Best = s.store.LoadBest()
	}
	s.ui.setScore(0)
	s.ui.setBest(s.Best)
	s.ui.showGameOver(false)

	log.Printf("[Session] Created %.0fx%.0f playfield, best score %d", s.width, s.height, s.Best)
	return s
}

// Tuning 返回会话使用的数值配置
func (s *Session) Tuning() *config.Tuning {
	return s.tuning
}

// Size 返回场地尺寸（布局像素）
func (s *Session) Size() (width, height float64) {
	return s.width, s.height
}

// FloorY 返回地面上沿，即可飞行区域的高度
func (s *Session) FloorY() float64 {
	return s.height - s.tuning.Playfield.GroundHeight
}

// Resize 同步场地尺寸
// 已存在的管道保持原位置
func (s *Session) Resize(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	s.width, s.height = width, height
}

// Update 推进一个模拟步
//
// 参数：
//   - dtMs: 距上一帧的真实时间（毫秒），内部会先经过 ClampDelta
//
// 同一步内的顺序：小鸟物理 → 生成管道 → 移动/计分/销毁管道 → 背景滚动 → 碰撞检测。
func (s *Session) Update(dtMs float64) {
	switch s.State {
	case StateReady:
		s.Frame++
		return
	case StateGameOver:
		return
	}

	dt := ClampDelta(dtMs, s.tuning.Physics)
	scaler := FrameScaler(dt)

	s.Bird.Step(scaler, s.tuning.Physics)

	if s.spawner.Advance(dt) {
		s.spawnPipe()
	}

	distance := s.tuning.Pipes.Speed * scaler
	s.advancePipes(distance)
	s.Offsets.Advance(distance, s.tuning.Parallax)

	box := s.Bird.Hitbox(s.tuning.Bird.HitboxMargin)
	if hit, idx := DetectCollision(box, s.Pipes, s.FloorY(), s.tuning.Pipes.Width, s.tuning.Pipes.GapHeight); hit != CollisionNone {
		log.Printf("[Session] Collision with %s (pipe %d) at y=%.1f", hit, idx, s.Bird.Y)
		s.gameOver()
	}
}

// spawnPipe 在场地右边缘追加一根管道
func (s *Session) spawnPipe() {
	s.Pipes = append(s.Pipes, Pipe{
		X:      s.width,
		GapTop: RandomGapTop(s.rng, s.FloorY(), s.tuning.Pipes),
	})
}

// advancePipes 移动所有管道，为刚越过小鸟的管道计分，并原地移除移出左边界的管道
func (s *Session) advancePipes(distance float64) {
	width := s.tuning.Pipes.Width
	kept := s.Pipes[:0]
	for _, p := range s.Pipes {
		p.X -= distance

		if !p.Passed && p.TrailingEdge(width) < s.Bird.X {
			p.Passed = true
			s.addScore()
		}

		if p.TrailingEdge(width) < -s.tuning.Pipes.CullMargin {
			continue
		}
		kept = append(kept, p)
	}
	s.Pipes = kept
}

// addScore 分数加一；提示音受并发上限约束，但不影响计分
func (s *Session) addScore() {
	s.Score++
	s.ui.setScore(s.Score)
	if s.sound != nil {
		s.sound.PlayScore()
	}
}

// gameOver 冻结模拟，必要时更新最高分，显示结算层
func (s *Session) gameOver() {
	s.State = StateGameOver

	if s.Score > s.Best {
		s.Best = s.Score
		s.ui.setBest(s.Best)
		if s.store != nil {
			if err := s.store.SaveBest(s.Best); err != nil {
				log.Printf("[Session] Warning: %v", err)
			}
		}
	}

	s.ui.showGameOver(true)
	log.Printf("[Session] Game over: score=%d best=%d", s.Score, s.Best)
}

// Action 处理主操作（点击、触摸、空格）
func (s *Session) Action() {
	if s.sound != nil {
		s.sound.Unlock()
	}

	switch s.State {
	case StateReady:
		s.State = StatePlaying
		log.Printf("[Session] Started")
	case StatePlaying:
		s.Bird.Flap(s.tuning.Physics)
	case StateGameOver:
		s.Restart()
	}
}

// Restart 从结算状态重新开始
//
// 完全重置分数、小鸟、管道和生成计时器后进入 Playing，并立即跳跃一次。
// 非结算状态下调用无效果，返回 false。
func (s *Session) Restart() bool {
	if s.State != StateGameOver {
		return false
	}

	s.reset()
	s.State = StatePlaying
	s.Bird.Flap(s.tuning.Physics)
	s.ui.showGameOver(false)

	log.Printf("[Session] Restarted")
	return true
}

// reset 恢复一局开始时的状态（保留最高分和背景滚动距离）
func (s *Session) reset() {
	s.Score = 0
	s.Bird.Reset(s.tuning.Bird)
	s.Pipes = s.Pipes[:0]
	s.spawner.Reset()
	s.Frame = 0
	s.ui.setScore(0)
}

// DisplayY 返回绘制用的小鸟 Y 坐标
// 准备状态下叠加浮动偏移
func (s *Session) DisplayY() float64 {
	if s.State == StateReady {
		return s.Bird.Y + BobOffset(s.Frame, s.tuning.Physics)
	}
	return s.Bird.Y
}
