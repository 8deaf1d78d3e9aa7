package term

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/decker502/flappykaho/pkg/config"
	"github.com/decker502/flappykaho/pkg/game"
	"github.com/decker502/flappykaho/pkg/render"
	"github.com/decker502/flappykaho/pkg/ui"
	"github.com/gdamore/tcell/v2"
)

// DefaultFrameInterval 终端刷新间隔（约 30 帧/秒）
const DefaultFrameInterval = time.Second / 30

// Options 终端驱动参数
type Options struct {
	Screen  tcell.Screen // 已初始化的屏幕（必填）
	Loop    *game.Loop   // 渲染循环（必填）
	HUD     *ui.HUD      // 会话使用的 HUD（必填）
	Prompts *config.PromptTable
	// Language 初始画布语言
	Language string
	// Theme 每帧查询当前主题，为 nil 时固定使用浅色主题
	Theme func() render.Theme
	// OnLanguage 用户切换语言后回调（用于保存设置），可为 nil
	OnLanguage func(code string)
	// OnCycleTheme 用户按 T 切换主题偏好，可为 nil；新主题由 Theme 在下一帧读取
	OnCycleTheme func()
	// FrameInterval 刷新间隔，为 0 时使用 DefaultFrameInterval
	FrameInterval time.Duration
}

// Driver 在终端中驱动渲染循环
//
// 与 ebiten 前端使用同一个 Loop、HUD 和场景绘制代码，
// 只是把绘制表面换成 tcell 单元格，把输入换成终端事件。
type Driver struct {
	screen   tcell.Screen
	loop     *game.Loop
	hud      *ui.HUD
	prompts  *config.PromptTable
	language string
	theme    func() render.Theme
	lastTh   render.Theme
	onLang   func(string)
	onTheme  func()
	interval time.Duration

	surface *Surface
	buttons tcell.ButtonMask
}

// New 创建终端驱动，并把场地尺寸同步为终端尺寸
func New(opts Options) (*Driver, error) {
	if opts.Screen == nil {
		return nil, errors.New("term: screen is required")
	}
	if opts.Loop == nil || opts.HUD == nil || opts.Prompts == nil {
		return nil, errors.New("term: loop, HUD and prompts are required")
	}

	d := &Driver{
		screen:   opts.Screen,
		loop:     opts.Loop,
		hud:      opts.HUD,
		prompts:  opts.Prompts,
		language: opts.Language,
		theme:    opts.Theme,
		onLang:   opts.OnLanguage,
		onTheme:  opts.OnCycleTheme,
		interval: opts.FrameInterval,
	}
	if d.theme == nil {
		d.theme = func() render.Theme { return render.ThemeLight }
	}
	if d.interval <= 0 {
		d.interval = DefaultFrameInterval
	}
	d.lastTh = d.theme()

	_, height := d.loop.Session().Size()
	d.surface = NewSurface(d.screen, height)
	d.loop.Resize(d.surface.Size())
	return d, nil
}

// Surface 返回绘制表面
func (d *Driver) Surface() *Surface {
	return d.surface
}

// Language 返回当前画布语言
func (d *Driver) Language() string {
	return d.language
}

// Run 运行事件循环，直到用户退出或 ctx 被取消
func (d *Driver) Run(ctx context.Context) error {
	d.screen.EnableMouse()
	d.screen.EnableFocus()
	d.screen.HideCursor()

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				// Fini 之后 PollEvent 返回 nil
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	d.Tick()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if d.HandleEvent(ev) {
				log.Printf("[Term] Quit requested")
				return nil
			}
		case <-ticker.C:
			d.Tick()
		}
	}
}

// HandleEvent 处理一个终端事件
//
// 返回：
//   - bool: 用户是否要求退出
func (d *Driver) HandleEvent(ev tcell.Event) bool {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return d.handleKey(e)
	case *tcell.EventResize:
		d.screen.Sync()
		d.surface.Sync()
		d.loop.Resize(d.surface.Size())
	case *tcell.EventFocus:
		d.loop.SetVisible(e.Focused)
	case *tcell.EventMouse:
		d.handleMouse(e)
	}
	return false
}

func (d *Driver) handleKey(e *tcell.EventKey) bool {
	switch e.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter:
		d.loop.Restart()
		return false
	case tcell.KeyRune:
	default:
		return false
	}

	switch e.Rune() {
	case ' ':
		d.loop.Action()
	case 'r', 'R':
		d.loop.Restart()
	case 'm', 'M':
		d.loop.OverrideMotion()
	case 'l', 'L':
		d.language = d.prompts.Next(d.language)
		if d.onLang != nil {
			d.onLang(d.language)
		}
		d.loop.RequestRedraw()
	case 't', 'T':
		if d.onTheme != nil {
			d.onTheme()
		}
	case 'q', 'Q':
		return true
	}
	return false
}

// handleMouse 只响应左键按下的瞬间，拖动和松开不算操作
func (d *Driver) handleMouse(e *tcell.EventMouse) {
	buttons := e.Buttons()
	pressed := buttons&tcell.Button1 != 0 && d.buttons&tcell.Button1 == 0
	d.buttons = buttons
	if !pressed {
		return
	}

	col, row := e.Position()
	x, y := d.surface.CellToLayout(col, row)
	switch {
	case d.hud.HitOverride(x, y):
		d.loop.OverrideMotion()
	case d.hud.HitRestart(x, y):
		d.loop.Restart()
	default:
		d.loop.Action()
	}
}

// Tick 推进一帧；需要时重绘并刷新屏幕
//
// 返回：
//   - bool: 是否重绘
func (d *Driver) Tick() bool {
	if th := d.theme(); th != d.lastTh {
		d.lastTh = th
		d.loop.RequestRedraw()
	}
	if !d.loop.Frame() {
		return false
	}

	prompts := d.prompts.Lookup(d.language)
	render.DrawScene(d.surface, d.loop.Session(), d.lastTh, prompts)
	d.hud.Draw(d.surface, prompts, d.lastTh)
	d.screen.Show()
	return true
}
