package game

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/decker502/flappykaho/pkg/config"
)

// fakeNumber 记录最后一次显示的数字
type fakeNumber struct {
	value int
	calls int
}

func (f *fakeNumber) SetValue(v int) {
	f.value = v
	f.calls++
}

// fakeToggle 记录显示状态
type fakeToggle struct {
	visible bool
}

func (f *fakeToggle) SetVisible(visible bool) {
	f.visible = visible
}

// fakeStore 内存最高分存储，记录保存次数
type fakeStore struct {
	best    int
	saves   int
	saveErr error
}

func (f *fakeStore) LoadBest() int {
	return f.best
}

func (f *fakeStore) SaveBest(v int) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.best = v
	return nil
}

var errStoreFull = errors.New("store full")

// fakeSound 不发声的提示音，记录调用次数
type fakeSound struct {
	unlocks int
	plays   int
}

func (f *fakeSound) Unlock() {
	f.unlocks++
}

func (f *fakeSound) PlayScore() bool {
	f.plays++
	return false
}

// testRig 测试用会话及其全部外部依赖
type testRig struct {
	session *Session
	store   *fakeStore
	sound   *fakeSound
	score   *fakeNumber
	best    *fakeNumber
	overlay *fakeToggle
	restart *fakeToggle
	notice  *fakeToggle
}

func newTestRig(t *testing.T, storedBest int) *testRig {
	t.Helper()

	r := &testRig{
		store:   &fakeStore{best: storedBest},
		sound:   &fakeSound{},
		score:   &fakeNumber{},
		best:    &fakeNumber{},
		overlay: &fakeToggle{},
		restart: &fakeToggle{},
		notice:  &fakeToggle{},
	}
	r.session = NewSession(SessionOptions{
		Tuning: config.DefaultTuning(),
		Rand:   rand.New(rand.NewSource(1)),
		Store:  r.store,
		Sound:  r.sound,
		UI: UI{
			Score:   r.score,
			Best:    r.best,
			Overlay: r.overlay,
			Restart: r.restart,
			Notice:  r.notice,
		},
	})
	return r
}

// fakeClock 手动推进的时钟
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}
