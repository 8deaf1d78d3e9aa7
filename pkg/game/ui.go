package game

// NumberDisplay 数字文本显示（当前分数、最高分）
type NumberDisplay interface {
	SetValue(v int)
}

// Toggle 可切换显示状态的界面元素
type Toggle interface {
	SetVisible(visible bool)
}

// UI 会话输出的外部界面元素
//
// 所有字段都是可选的，为 nil 时对应的副作用直接跳过。
type UI struct {
	Score   NumberDisplay
	Best    NumberDisplay
	Overlay Toggle // 结算层
	Restart Toggle // 重新开始按钮
	Notice  Toggle // "动画已暂停" 提示及其覆盖按钮
}

func (u UI) setScore(v int) {
	if u.Score != nil {
		u.Score.SetValue(v)
	}
}

func (u UI) setBest(v int) {
	if u.Best != nil {
		u.Best.SetValue(v)
	}
}

func (u UI) showGameOver(visible bool) {
	if u.Overlay != nil {
		u.Overlay.SetVisible(visible)
	}
	if u.Restart != nil {
		u.Restart.SetVisible(visible)
	}
}

func (u UI) showNotice(visible bool) {
	if u.Notice != nil {
		u.Notice.SetVisible(visible)
	}
}
