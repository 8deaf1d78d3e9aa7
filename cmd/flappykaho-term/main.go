// flappykaho-term 在终端中运行游戏
//
// 使用与图形版相同的会话、渲染循环和 HUD，画面按单元格绘制。
//
// 用法:
//
//	go run ./cmd/flappykaho-term [-lang ja] [-theme dark] [-log game.log]
//
// 按键：空格 跳跃，R/Enter 重新开始，M 仍然播放动画，L 切换语言，T 切换主题，Q/Esc 退出。
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"

	"github.com/decker502/flappykaho/data"
	synth "github.com/decker502/flappykaho/internal/audio"
	"github.com/decker502/flappykaho/pkg/app"
	"github.com/decker502/flappykaho/pkg/config"
	"github.com/decker502/flappykaho/pkg/embedded"
	"github.com/decker502/flappykaho/pkg/game"
	"github.com/decker502/flappykaho/pkg/render"
	"github.com/decker502/flappykaho/pkg/term"
	"github.com/decker502/flappykaho/pkg/ui"
	"github.com/decker502/flappykaho/pkg/utils"
	"github.com/gdamore/tcell/v2"
	"github.com/quasilyte/gdata/v2"
)

func main() {
	logPath := flag.String("log", "", "日志文件路径（终端被画面占用，默认不输出日志）")
	language := flag.String("lang", "", "画布语言代码，为空则使用设置或系统语言")
	theme := flag.String("theme", "", "主题：light、dark 或 auto")
	seed := flag.Int64("seed", 0, "管道缺口随机种子（0 表示按时间播种）")
	reducedMotion := flag.Bool("reduced-motion", utils.ReducedMotionFromEnv(), "减少动态效果（启动时暂停动画）")
	noSave := flag.Bool("no-save", false, "不读写最高分和设置")
	flag.Parse()

	if err := run(*logPath, *language, *theme, *seed, *reducedMotion, *noSave); err != nil {
		fmt.Fprintf(os.Stderr, "flappykaho-term: %v\n", err)
		os.Exit(1)
	}
}

func run(logPath, language, themeFlag string, seed int64, reducedMotion, noSave bool) error {
	log.SetOutput(io.Discard)
	if logPath != "" {
		f, err := os.Create(logPath)
		if err != nil {
			return fmt.Errorf("打开日志文件失败: %w", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	embedded.Init(data.FS)
	tuning, err := config.LoadTuning(config.TuningPath)
	if err != nil {
		return fmt.Errorf("数值配置加载失败: %w", err)
	}
	prompts, err := config.LoadPromptTable(config.PromptsPath)
	if err != nil {
		return fmt.Errorf("提示文本加载失败: %w", err)
	}

	var gdataManager *gdata.Manager
	if !noSave {
		gdataManager = app.OpenStorage()
	}
	settings, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return fmt.Errorf("设置加载失败: %w", err)
	}
	if language != "" {
		settings.SetLanguage(language)
	}
	if themeFlag != "" {
		settings.SetTheme(themeFlag)
	}
	defer func() {
		if err := settings.Save(); err != nil {
			log.Printf("[Term] Warning: %v", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	watcher := utils.NewThemeWatcher(nil, utils.DefaultThemePollInterval)
	go watcher.Run(ctx)

	sound := synth.NewSpeakerPlayer(game.NewChime(tuning.Audio), tuning.Audio.MaxConcurrentSounds, settings.EffectiveVolume)
	defer sound.Close()

	var rng *rand.Rand
	if seed != 0 {
		rng = rand.New(rand.NewSource(seed))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("创建终端屏幕失败: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("初始化终端失败: %w", err)
	}
	defer screen.Fini()

	hud := ui.NewHUD()
	session := game.NewSession(game.SessionOptions{
		Tuning: tuning,
		Rand:   rng,
		Store:  game.NewScoreStore(gdataManager),
		Sound:  sound,
		UI:     hud.GameUI(),
	})
	loop := game.NewLoop(session, nil)
	loop.SetReducedMotion(reducedMotion)
	loop.Start()

	themePref := settings.GetSettings().Theme
	driver, err := term.New(term.Options{
		Screen:   screen,
		Loop:     loop,
		HUD:      hud,
		Prompts:  prompts,
		Language: app.ResolveLanguage(settings.GetSettings().Language, utils.SystemLanguage()),
		Theme: func() render.Theme {
			return app.ResolveTheme(themePref, watcher.IsDark())
		},
		OnLanguage: settings.SetLanguage,
		OnCycleTheme: func() {
			themePref = app.NextThemePref(themePref)
			settings.SetTheme(themePref)
		},
	})
	if err != nil {
		return err
	}

	log.Printf("[Term] Started (theme=%s reducedMotion=%v)", themePref, reducedMotion)
	if err := driver.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
