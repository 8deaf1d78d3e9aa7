package render

import (
	"github.com/decker502/flappykaho/pkg/config"
	"github.com/decker502/flappykaho/pkg/game"
)

// PromptScale 准备提示的字号缩放
const PromptScale = 2.0

// DrawScene 绘制一帧完整的游戏画面（不含 HUD）
//
// 只读取会话状态，不做任何修改。
//
// 参数：
//   - s: 绘制表面
//   - sess: 会话
//   - theme: 当前主题（每帧读取，切换后下一帧生效）
//   - prompts: 当前语言的提示文本
func DrawScene(s Surface, sess *game.Session, theme Theme, prompts config.Prompts) {
	tuning := sess.Tuning()
	floorY := sess.FloorY()

	DrawBackground(s, sess.Offsets, floorY, theme)
	DrawPipes(s, sess.Pipes, floorY, tuning.Pipes.Width, tuning.Pipes.GapHeight, theme)
	DrawBird(s, sess.Bird.X, sess.DisplayY(), sess.Bird.Radius, sess.Bird.Rotation, theme)

	if sess.State == game.StateReady {
		DrawPrompt(s, prompts.Ready, floorY/3, PromptScale, theme)
	}
}
