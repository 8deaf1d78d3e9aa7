package utils

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestThemeWatcherPoll(t *testing.T) {
	var current atomic.Bool
	var fail atomic.Bool
	detect := func() (bool, error) {
		if fail.Load() {
			return false, errors.New("no desktop session")
		}
		return current.Load(), nil
	}

	w := NewThemeWatcher(detect, time.Hour)
	if w.IsDark() {
		t.Fatal("initial: got dark, want light")
	}

	current.Store(true)
	w.Poll()
	if !w.IsDark() {
		t.Fatal("after switch: got light, want dark")
	}

	// 查询失败时保留上一次的结果
	fail.Store(true)
	w.Poll()
	if !w.IsDark() {
		t.Error("failed poll should keep the last value")
	}
}

func TestThemeWatcherRun(t *testing.T) {
	var current atomic.Bool
	w := NewThemeWatcher(func() (bool, error) { return current.Load(), nil }, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	current.Store(true)
	deadline := time.Now().Add(2 * time.Second)
	for !w.IsDark() && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	if !w.IsDark() {
		t.Error("watcher did not pick up the change")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
