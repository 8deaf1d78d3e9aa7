package game

import (
	"testing"
	"time"
)

func newTestLoop(t *testing.T) (*Loop, *testRig, *fakeClock) {
	t.Helper()
	r := newTestRig(t, 0)
	clock := newFakeClock()
	return NewLoop(r.session, clock.Now), r, clock
}

func TestLoopStartAndFrame(t *testing.T) {
	loop, r, clock := newTestLoop(t)

	loop.Start()
	if !loop.Running() {
		t.Fatal("loop should run when visible and motion is allowed")
	}

	clock.Advance(16 * time.Millisecond)
	if !loop.Frame() {
		t.Error("running loop should draw every frame")
	}
	if r.session.Frame != 1 {
		t.Errorf("session frame: got %d, want 1", r.session.Frame)
	}
}

func TestLoopPausedIsPure(t *testing.T) {
	loop, _, _ := newTestLoop(t)
	loop.SetVisible(false)

	for i := 0; i < 3; i++ {
		if !loop.Paused() {
			t.Fatalf("Paused() call %d: got false, want true", i)
		}
	}
	if loop.Running() {
		t.Error("Paused() must not start the loop")
	}
}

// TestLoopReducedMotionNeverStarts 减少动态效果时循环不启动，输入无效
func TestLoopReducedMotionNeverStarts(t *testing.T) {
	loop, r, clock := newTestLoop(t)
	loop.SetReducedMotion(true)
	loop.Start()

	if loop.Running() {
		t.Fatal("loop should not start under reduced motion")
	}
	if !r.notice.visible || !loop.MotionNoticeVisible() {
		t.Error("motion notice should be visible")
	}

	// 初始绘制一次，之后不再绘制
	if !loop.Frame() {
		t.Error("first frame should draw the static scene")
	}
	clock.Advance(time.Second)
	if loop.Frame() {
		t.Error("paused loop should not draw again without a redraw request")
	}

	if loop.Action() {
		t.Error("Action() should be ignored while paused")
	}
	if r.session.State != StateReady || r.sound.unlocks != 0 {
		t.Errorf("action leaked into session: state %s unlocks %d", r.session.State, r.sound.unlocks)
	}
}

func TestLoopMotionOverride(t *testing.T) {
	loop, r, clock := newTestLoop(t)
	loop.SetReducedMotion(true)
	loop.Start()

	loop.OverrideMotion()
	if !loop.Running() {
		t.Fatal("override should start the loop")
	}
	if r.notice.visible {
		t.Error("notice should hide after override")
	}

	if !loop.Action() || r.session.State != StatePlaying {
		t.Errorf("Action() after override: state %s", r.session.State)
	}

	clock.Advance(16 * time.Millisecond)
	loop.Frame()
	if r.session.spawner.Elapsed() != 16 {
		t.Errorf("spawn timer: got %v, want 16", r.session.spawner.Elapsed())
	}
}

// TestLoopResumeResamplesBaseline 恢复可见时不把隐藏期间计入帧间隔
func TestLoopResumeResamplesBaseline(t *testing.T) {
	loop, r, clock := newTestLoop(t)
	loop.Start()
	loop.Action()

	clock.Advance(16 * time.Millisecond)
	loop.Frame()
	if got := r.session.spawner.Elapsed(); got != 16 {
		t.Fatalf("spawn timer: got %v, want 16", got)
	}

	loop.SetVisible(false)
	if loop.Running() {
		t.Fatal("hidden loop should stop")
	}
	clock.Advance(50 * time.Millisecond)
	loop.Frame()
	loop.Frame()
	if got := r.session.spawner.Elapsed(); got != 16 {
		t.Fatalf("hidden loop advanced the session: timer %v", got)
	}

	loop.SetVisible(true)
	if !loop.Running() {
		t.Fatal("visible loop should restart")
	}
	clock.Advance(16 * time.Millisecond)
	loop.Frame()
	if got := r.session.spawner.Elapsed(); got != 32 {
		t.Errorf("spawn timer after resume: got %v, want 32", got)
	}
}

func TestLoopHiddenWithReducedMotion(t *testing.T) {
	loop, _, _ := newTestLoop(t)
	loop.SetReducedMotion(true)
	loop.OverrideMotion()
	loop.SetVisible(false)

	if !loop.Paused() || loop.Running() {
		t.Error("hidden loop should pause even with an override")
	}
	if loop.MotionNoticeVisible() {
		t.Error("notice stays hidden once overridden")
	}
}

func TestLoopResizeWhilePaused(t *testing.T) {
	loop, r, _ := newTestLoop(t)
	loop.SetReducedMotion(true)
	loop.Start()
	loop.Frame()

	if loop.Frame() {
		t.Fatal("no redraw expected before resize")
	}

	loop.Resize(500, 700)
	if !loop.Frame() {
		t.Error("resize while paused should force one redraw")
	}
	if loop.Frame() {
		t.Error("redraw should be consumed")
	}
	if w, h := r.session.Size(); w != 500 || h != 700 {
		t.Errorf("session size: got %vx%v, want 500x700", w, h)
	}

	loop.RequestRedraw()
	if !loop.Frame() {
		t.Error("RequestRedraw should force one redraw")
	}
}

func TestLoopRestartIgnoredWhilePaused(t *testing.T) {
	loop, r, _ := newTestLoop(t)
	loop.Start()
	loop.Action()
	s := r.session
	s.Bird.Y = s.FloorY()
	s.Update(16)

	loop.SetVisible(false)
	if loop.Restart() {
		t.Error("Restart() should be ignored while hidden")
	}
	if s.State != StateGameOver {
		t.Errorf("State: got %s, want %s", s.State, StateGameOver)
	}

	loop.SetVisible(true)
	if !loop.Restart() || s.State != StatePlaying {
		t.Errorf("Restart() when visible: state %s", s.State)
	}
}
