package ui

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/decker502/flappykaho/pkg/config"
	"github.com/decker502/flappykaho/pkg/game"
	"github.com/decker502/flappykaho/pkg/render"
)

// textSurface 只记录文本的绘制表面
type textSurface struct {
	texts []string
	rects int
}

func (t *textSurface) Size() (float64, float64) { return 400, 600 }
func (t *textSurface) FillRect(x, y, w, h float64, c color.Color) { t.rects++ }
func (t *textSurface) FillTriangle(_, _, _, _, _, _ float64, _ color.Color) {}
func (t *textSurface) FillCircle(_, _, _ float64, _ color.Color) {}
func (t *textSurface) DrawText(s string, x, y, scale float64, align render.Align, c color.Color) {
	t.texts = append(t.texts, s)
}

func (t *textSurface) has(s string) bool {
	for _, text := range t.texts {
		if text == s {
			return true
		}
	}
	return false
}

var testPrompts = config.Prompts{
	Ready:          "Ready",
	GameOver:       "Game Over",
	Restart:        "Restart",
	Score:          "Score",
	Best:           "Best",
	MotionNotice:   "Animation paused",
	MotionOverride: "Play anyway",
}

func TestHUDFollowsSession(t *testing.T) {
	hud := NewHUD()
	store := game.NewScoreStore(nil)
	if err := store.SaveBest(5); err != nil {
		t.Fatal(err)
	}
	sess := game.NewSession(game.SessionOptions{
		Rand:  rand.New(rand.NewSource(1)),
		Store: store,
		UI:    hud.GameUI(),
	})

	if hud.Best.Value() != 5 || hud.Score.Value() != 0 {
		t.Errorf("initial HUD: score %d best %d", hud.Score.Value(), hud.Best.Value())
	}

	sess.Action()
	sess.Bird.Y = sess.FloorY()
	sess.Update(config.NominalFrameMs)

	if !hud.Overlay.Visible() || !hud.Restart.Visible() {
		t.Fatal("overlay and restart button should be visible after game over")
	}

	sess.Restart()
	if hud.Overlay.Visible() || hud.Restart.Visible() {
		t.Error("overlay should hide after restart")
	}
}

func TestRestartButtonHitTest(t *testing.T) {
	hud := NewHUD()
	s := &textSurface{}

	hud.Draw(s, testPrompts, render.ThemeLight)
	cx := hud.Restart.X + hud.Restart.Width/2
	cy := hud.Restart.Y + hud.Restart.Height/2
	if hud.HitRestart(cx, cy) {
		t.Error("hidden restart button should not receive clicks")
	}

	hud.GameUI().Restart.SetVisible(true)
	hud.Draw(s, testPrompts, render.ThemeLight)
	if !hud.HitRestart(cx, cy) {
		t.Error("visible restart button should receive clicks at its center")
	}
	if hud.HitRestart(0, 0) {
		t.Error("click outside the button should miss")
	}
	if !s.has("Restart") {
		t.Error("restart label not drawn")
	}
}

func TestNoticeTogglesOverrideButton(t *testing.T) {
	hud := NewHUD()
	ui := hud.GameUI()

	ui.Notice.SetVisible(true)
	if !hud.Notice.Visible() || !hud.Override.Visible() {
		t.Fatal("notice and override button should show together")
	}

	s := &textSurface{}
	hud.Draw(s, testPrompts, render.ThemeDark)
	if !s.has("Animation paused") || !s.has("Play anyway") {
		t.Errorf("notice texts: %v", s.texts)
	}
	if !hud.HitOverride(hud.Override.X+1, hud.Override.Y+1) {
		t.Error("override button should receive clicks")
	}

	ui.Notice.SetVisible(false)
	if hud.HitOverride(hud.Override.X+1, hud.Override.Y+1) {
		t.Error("hidden override button should not receive clicks")
	}
}

func TestHUDDrawsScores(t *testing.T) {
	hud := NewHUD()
	hud.Score.SetValue(12)
	hud.Best.SetValue(30)

	s := &textSurface{}
	hud.Draw(s, testPrompts, render.ThemeLight)

	if !s.has("12") || !s.has("Best 30") {
		t.Errorf("score texts: %v", s.texts)
	}
	if s.has("Game Over") {
		t.Error("game over text should be hidden")
	}
}
