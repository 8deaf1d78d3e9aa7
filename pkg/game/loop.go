package game

import (
	"log"
	"time"
)

// Clock 返回当前时间，测试中可替换
type Clock func() time.Time

// Loop 渲染循环协调器
//
// 驱动方（ebiten、终端）每个显示帧调用一次 Frame()，根据返回值决定是否绘制。
// Loop 负责：
//   - 计算帧间隔并调用 Session.Update
//   - 暂停判断：不可见，或系统要求减少动态效果且用户未覆盖
//   - 恢复时重新采样时间基准，避免把隐藏期间算作一帧
//   - 暂停期间尺寸变化时强制补绘一帧
//   - 暂停期间丢弃所有输入
type Loop struct {
	session *Session
	now     Clock

	last    time.Time
	running bool
	redraw  bool

	visible        bool
	reducedMotion  bool
	motionOverride bool
}

// NewLoop 创建渲染循环（初始为可见、未运行）
//
// 参数：
//   - session: 会话实例
//   - now: 时钟，为 nil 时使用 time.Now
func NewLoop(session *Session, now Clock) *Loop {
	if now == nil {
		now = time.Now
	}
	return &Loop{
		session: session,
		now:     now,
		visible: true,
	}
}

// Session 返回循环驱动的会话
func (l *Loop) Session() *Session {
	return l.session
}

// Paused 返回当前是否暂停
// 只取决于环境标志，没有副作用，连续调用结果相同
func (l *Loop) Paused() bool {
	return !l.visible || (l.reducedMotion && !l.motionOverride)
}

// Running 返回循环是否在推进模拟
func (l *Loop) Running() bool {
	return l.running
}

// MotionNoticeVisible 返回是否应该显示 "动画已暂停" 提示
func (l *Loop) MotionNoticeVisible() bool {
	return l.reducedMotion && !l.motionOverride
}

// Start 启动循环
// 暂停状态下不启动，只安排一次初始绘制
func (l *Loop) Start() {
	l.session.ui.showNotice(l.MotionNoticeVisible())

	if l.Paused() {
		l.running = false
		l.redraw = true
		log.Printf("[Loop] Not started (visible=%v reducedMotion=%v)", l.visible, l.reducedMotion)
		return
	}

	l.last = l.now()
	l.running = true
	log.Printf("[Loop] Started")
}

// Frame 执行一个显示帧
//
// 运行中：计算帧间隔并更新会话，返回 true（需要绘制）。
// 未运行：只在有补绘请求时返回 true。
func (l *Loop) Frame() bool {
	if l.running {
		t := l.now()
		dt := float64(t.Sub(l.last)) / float64(time.Millisecond)
		l.last = t
		l.session.Update(dt)
		l.redraw = false
		return true
	}

	if l.redraw {
		l.redraw = false
		return true
	}
	return false
}

// SetVisible 更新可见性（标签页/窗口焦点）
func (l *Loop) SetVisible(visible bool) {
	if l.visible == visible {
		return
	}
	l.visible = visible
	l.sync()
}

// SetReducedMotion 更新系统 "减少动态效果" 偏好
func (l *Loop) SetReducedMotion(reduced bool) {
	if l.reducedMotion == reduced {
		return
	}
	l.reducedMotion = reduced
	l.sync()
}

// OverrideMotion 用户在本次运行中选择忽略 "减少动态效果" 偏好
func (l *Loop) OverrideMotion() {
	if l.motionOverride {
		return
	}
	l.motionOverride = true
	log.Printf("[Loop] Reduced motion overridden by user")
	l.sync()
}

// sync 在环境标志变化后停止或重启循环
func (l *Loop) sync() {
	l.session.ui.showNotice(l.MotionNoticeVisible())

	if l.Paused() {
		if l.running {
			log.Printf("[Loop] Paused")
		}
		l.running = false
		l.redraw = true
		return
	}

	if !l.running {
		// 重新采样时间基准
		l.Start()
	}
}

// Resize 同步场地尺寸；暂停时强制补绘一帧，保证画面不过期
func (l *Loop) Resize(width, height float64) {
	l.session.Resize(width, height)
	if !l.running {
		l.redraw = true
	}
}

// RequestRedraw 请求补绘一帧（例如暂停期间切换语言或主题）
func (l *Loop) RequestRedraw() {
	l.redraw = true
}

// Action 转发主操作；暂停时忽略
func (l *Loop) Action() bool {
	if l.Paused() {
		return false
	}
	l.session.Action()
	return true
}

// Restart 转发重新开始；暂停时忽略
func (l *Loop) Restart() bool {
	if l.Paused() {
		return false
	}
	return l.session.Restart()
}
