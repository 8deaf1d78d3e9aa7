package main

import (
	"flag"
	"log"
	"os"

	"github.com/decker502/flappykaho/data"
	"github.com/decker502/flappykaho/pkg/app"
	"github.com/decker502/flappykaho/pkg/embedded"
	"github.com/decker502/flappykaho/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	language := flag.String("lang", "", "画布语言代码（如 en、ja、zh-TW），为空则使用设置或系统语言")
	theme := flag.String("theme", "", "主题：light、dark 或 auto")
	seed := flag.Int64("seed", 0, "管道缺口随机种子（0 表示按时间播种）")
	reducedMotion := flag.Bool("reduced-motion", utils.ReducedMotionFromEnv(), "减少动态效果（启动时暂停动画）")
	noSave := flag.Bool("no-save", false, "不读写最高分和设置")
	flag.Parse()

	// 初始化嵌入资源
	embedded.Init(data.FS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:        *verbose,
		Language:       *language,
		Theme:          *theme,
		Seed:           *seed,
		ReducedMotion:  *reducedMotion,
		DisableStorage: *noSave,
	})
	if err != nil {
		// NewApp 可能已关闭日志输出
		log.SetOutput(os.Stderr)
		log.Fatalf("游戏初始化失败: %v", err)
	}
	defer gameApp.Close()

	w, h := gameApp.DefaultWindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Flappy Kaho")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
