package utils

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	dark "github.com/thiagokokada/dark-mode-go"
)

// DefaultThemePollInterval 系统配色偏好的默认轮询间隔
const DefaultThemePollInterval = 2 * time.Second

// DarkModeDetector 查询系统是否处于深色模式
type DarkModeDetector func() (bool, error)

// ThemeWatcher 在后台轮询系统配色偏好
//
// 轮询 goroutine 只写入原子变量，渲染循环每帧读取，两者之间没有其他共享状态。
type ThemeWatcher struct {
	detect   DarkModeDetector
	interval time.Duration

	dark   atomic.Bool
	failed atomic.Bool // 上一次查询失败（只记录一次日志）
}

// NewThemeWatcher 创建配色偏好监视器，并同步查询一次初始值
//
// 参数：
//   - detect: 查询函数，为 nil 时使用 dark-mode-go
//   - interval: 轮询间隔，<= 0 时使用 DefaultThemePollInterval
func NewThemeWatcher(detect DarkModeDetector, interval time.Duration) *ThemeWatcher {
	if detect == nil {
		detect = dark.IsDarkMode
	}
	if interval <= 0 {
		interval = DefaultThemePollInterval
	}
	w := &ThemeWatcher{detect: detect, interval: interval}
	w.Poll()
	return w
}

// Poll 查询一次系统偏好
// 查询失败时保留上一次的结果
func (w *ThemeWatcher) Poll() {
	isDark, err := w.detect()
	if err != nil {
		if !w.failed.Swap(true) {
			log.Printf("[ThemeWatcher] Warning: failed to detect color scheme: %v", err)
		}
		return
	}
	w.failed.Store(false)

	if w.dark.Swap(isDark) != isDark {
		log.Printf("[ThemeWatcher] Color scheme changed: dark=%v", isDark)
	}
}

// Run 按间隔轮询，直到 ctx 取消
func (w *ThemeWatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Poll()
		}
	}
}

// IsDark 返回最近一次查询到的偏好
func (w *ThemeWatcher) IsDark() bool {
	return w.dark.Load()
}
