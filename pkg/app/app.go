// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"context"
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"

	"github.com/decker502/flappykaho/pkg/config"
	"github.com/decker502/flappykaho/pkg/game"
	"github.com/decker502/flappykaho/pkg/render"
	"github.com/decker502/flappykaho/pkg/ui"
	"github.com/decker502/flappykaho/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
)

// AppName gdata 存储使用的应用名
const AppName = "flappykaho"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Language 画布语言代码，为空则使用已保存的设置或系统语言
	Language string
	// Theme "light" / "dark" / "auto"，为空则使用已保存的设置
	Theme string
	// Seed 管道缺口随机种子，为 0 时按当前时间播种
	Seed int64
	// ReducedMotion 系统要求减少动态效果
	ReducedMotion bool
	// DisableStorage 不读写持久化数据（最高分和设置只保存在内存中）
	DisableStorage bool
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
//
// Update 中推进渲染循环，Draw 只在循环要求时重绘；
// 屏幕不会每帧清空，因此暂停期间画面保持最后一帧。
type App struct {
	loop     *game.Loop
	hud      *ui.HUD
	settings *game.SettingsManager
	prompts  *config.PromptTable
	watcher  *utils.ThemeWatcher
	stop     context.CancelFunc
	surface  *render.EbitenSurface

	language  string
	themePref string
	theme     render.Theme

	scale   float64
	layoutW int
	layoutH int
	drawDue bool
	verbose bool

	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	tuning, err := config.LoadTuning(config.TuningPath)
	if err != nil {
		return nil, fmt.Errorf("数值配置加载失败: %w", err)
	}
	prompts, err := config.LoadPromptTable(config.PromptsPath)
	if err != nil {
		return nil, fmt.Errorf("提示文本加载失败: %w", err)
	}

	var gdataManager *gdata.Manager
	if !cfg.DisableStorage {
		gdataManager = OpenStorage()
	}

	settings, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("设置加载失败: %w", err)
	}
	if cfg.Language != "" {
		settings.SetLanguage(cfg.Language)
	}
	if cfg.Theme != "" {
		settings.SetTheme(cfg.Theme)
	}

	// 初始化 AudioManager（音频上下文在第一次操作时才创建）
	audioManager := game.NewAudioManager(tuning.Audio, settings)
	log.Printf("[App] AudioManager initialized")

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
		log.Printf("[App] Using gap seed %d", cfg.Seed)
	}

	hud := ui.NewHUD()
	session := game.NewSession(game.SessionOptions{
		Tuning: tuning,
		Rand:   rng,
		Store:  game.NewScoreStore(gdataManager),
		Sound:  audioManager,
		UI:     hud.GameUI(),
	})

	ctx, stop := context.WithCancel(context.Background())
	watcher := utils.NewThemeWatcher(nil, utils.DefaultThemePollInterval)
	// 移动端没有可轮询的系统主题接口，只使用启动时的检测结果
	if !utils.IsMobile() {
		go watcher.Run(ctx)
	}

	a := &App{
		loop:      game.NewLoop(session, nil),
		hud:       hud,
		settings:  settings,
		prompts:   prompts,
		watcher:   watcher,
		stop:      stop,
		surface:   render.NewEbitenSurface(nil, 1),
		themePref: settings.GetSettings().Theme,
		scale:     1,
		verbose:   cfg.Verbose,
	}
	a.language = ResolveLanguage(settings.GetSettings().Language, utils.SystemLanguage())
	a.theme = ResolveTheme(a.themePref, watcher.IsDark())

	// 暂停时保留最后一帧；失去焦点时仍然调用 Update，以便检测重新获得焦点
	ebiten.SetScreenClearedEveryFrame(false)
	ebiten.SetRunnableOnUnfocused(true)

	a.loop.SetReducedMotion(cfg.ReducedMotion)
	a.loop.Start()

	log.Printf("[App] Started (language=%s theme=%s reducedMotion=%v)", a.language, a.theme, cfg.ReducedMotion)
	return a, nil
}

// OpenStorage 打开 gdata 存储，失败时返回 nil（降级为仅内存）
func OpenStorage() *gdata.Manager {
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
	manager, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[App] Warning: storage unavailable: %v (scores will not persist)", err)
		return nil
	}
	return manager
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			w, h := a.defaultWindowSize()
			ebiten.SetWindowSize(w, h)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", w, h)
			a.pendingWindowSizeReset = false
		}
	}

	in := utils.ReadInput(a.scale)

	// F11 切换全屏
	if in.ToggleFullscreen && !utils.IsMobile() {
		a.toggleFullscreen()
	}

	if in.CycleLanguage {
		a.language = a.prompts.Next(a.language)
		a.settings.SetLanguage(a.language)
		a.saveSettings()
		a.loop.RequestRedraw()
	}
	if in.CycleTheme {
		a.themePref = NextThemePref(a.themePref)
		a.settings.SetTheme(a.themePref)
		a.saveSettings()
	}

	// 主题可能由系统偏好在后台改变，切换后下一帧生效
	if theme := ResolveTheme(a.themePref, a.watcher.IsDark()); theme != a.theme {
		a.theme = theme
		a.loop.RequestRedraw()
	}

	a.loop.SetVisible(ebiten.IsFocused())
	a.dispatch(in)

	if a.loop.Frame() {
		a.drawDue = true
	}
	return nil
}

// dispatch 按优先级分发输入：覆盖按钮 > 重新开始 > 主操作
func (a *App) dispatch(in utils.Input) {
	switch {
	case in.Override || (in.Pointer && a.hud.HitOverride(in.X, in.Y)):
		a.loop.OverrideMotion()
	case in.Restart || (in.Pointer && a.hud.HitRestart(in.X, in.Y)):
		a.loop.Restart()
	case in.Action || in.Pointer:
		a.loop.Action()
	}
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		return
	}
	ebiten.SetFullscreen(true)
}

// Draw 绘制游戏画面
// 只在渲染循环要求时重绘，其余帧保留上一帧内容
func (a *App) Draw(screen *ebiten.Image) {
	if !a.drawDue {
		return
	}
	a.drawDue = false

	a.surface.Reset(screen, a.scale)
	prompts := a.prompts.Lookup(a.language)
	render.DrawScene(a.surface, a.loop.Session(), a.theme, prompts)
	a.hud.Draw(a.surface, prompts, a.theme)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回设备像素尺寸
//
// 布局尺寸（窗口逻辑尺寸）直接作为场地尺寸；乘以设备像素比后作为屏幕尺寸，
// 绘制表面统一把布局坐标换算到设备像素，保证高 DPI 屏幕上画面清晰。
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := ebiten.Monitor().DeviceScaleFactor()
	if scale <= 0 {
		scale = 1
	}

	if outsideWidth != a.layoutW || outsideHeight != a.layoutH || scale != a.scale {
		a.layoutW, a.layoutH, a.scale = outsideWidth, outsideHeight, scale
		a.loop.Resize(float64(outsideWidth), float64(outsideHeight))
		a.drawDue = true
		log.Printf("[App] Layout %dx%d @%.2fx", outsideWidth, outsideHeight, scale)
	}

	return int(float64(outsideWidth) * scale), int(float64(outsideHeight) * scale)
}

// Close 停止后台任务并保存设置
func (a *App) Close() {
	a.stop()
	a.saveSettings()
}

func (a *App) saveSettings() {
	if err := a.settings.Save(); err != nil {
		log.Printf("[App] Warning: %v", err)
	}
}

// defaultWindowSize 默认窗口尺寸（场地默认尺寸）
func (a *App) defaultWindowSize() (int, int) {
	pf := a.loop.Session().Tuning().Playfield
	return int(pf.Width), int(pf.Height)
}

// DefaultWindowSize 返回默认窗口尺寸，供 main 在 RunGame 前设置窗口
func (a *App) DefaultWindowSize() (int, int) {
	return a.defaultWindowSize()
}

// Loop 返回渲染循环
func (a *App) Loop() *game.Loop {
	return a.loop
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
