package app

import (
	"fmt"
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/cropper-go/config"
	"github.com/soocke/cropper-go/domain/crop"
	"github.com/soocke/cropper-go/ui/presenter"
	"github.com/soocke/cropper-go/ui/theme"
	"github.com/soocke/cropper-go/ui/view"
)

const tick = 40 * time.Millisecond

type app struct {
	container *AppContainer
	logger    *slog.Logger
	afterID   string
	exiting   bool
}

// NewApp builds the container and configures the main window.
func NewApp(title string, cfg *config.Config, cfgPath string, opts Options, logger *slog.Logger) (*app, error) {
	c, err := BuildContainer(cfg, cfgPath, opts, logger)
	if err != nil {
		return nil, err
	}
	a := &app{container: c, logger: logger}
	App.WmTitle(fmt.Sprintf("%s - %s", title, c.Source.Name))
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	// room for the settings column and the toolbar/status rows
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", cfg.ViewportWidth+360, cfg.ViewportHeight+90))
	return a, nil
}

// Start builds the UI, starts the update loop and blocks until the window closes.
func (a *app) Start() {
	c := a.container
	theme.InitStyles()
	c.RootView.Build(view.Handlers{
		OnToggleOverlay: c.VisibilityPresenter.Toggle,
		OnToggleTheme: func() {
			theme.ToggleDark()
			c.RefreshTheme()
		},
		OnExit:        a.exitHandler,
		OnRatio:       c.SelectRatio,
		OnApplyConfig: c.ApplyConfig,
		OnPointerDown: func(x, y float64) { c.Pointer.Down(x, y) },
		OnPointerDrag: func(x, y float64) { c.Pointer.Drag(x, y) },
		OnPointerUp:   c.Pointer.Up,
		OnGrab:        func(p crop.HandlePart) { c.Driver.Grab(p) },
		OnCycle:       func(dir int) { c.Driver.Cycle(dir) },
		OnNudge:       func(dx, dy float64) { c.Driver.Nudge(dx, dy) },
		OnCommit:      c.Driver.Commit,
		OnAbort:       c.Driver.Abort,
	})
	c.Loop = presenter.NewLoop(c.OverlayPresenter, c.GesturePresenter, c.PreviewPresenter, a.scheduleUpdate)
	if a.logger != nil {
		a.logger.Info("cropper started", "source", c.Source.Describe(), "ratio", c.Config.AspectRatio)
	}
	a.scheduleUpdate()
	App.Wait()
}

func (a *app) update() {
	defer a.recoverLog("update")
	if a.exiting {
		return
	}
	a.container.Loop.Tick()
}

func (a *app) scheduleUpdate() {
	// TclAfter keeps the loop on Tk's event thread.
	a.afterID = TclAfter(tick, func() { a.update() })
}

func (a *app) exitHandler() {
	if a.exiting {
		return
	}
	a.exiting = true
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
	}
	c := a.container
	c.Driver.Abort()
	c.PersistCrop()
	if err := c.Config.Save(c.CfgPath); err != nil {
		if a.logger != nil {
			a.logger.Error("config save failed", "error", err)
		}
	} else if a.logger != nil {
		count, _, total := c.Gestures.Values()
		a.logger.Info("cropper stopped", "path", c.CfgPath, "drags", count, "drag_time", total)
	}
	Destroy(App)
}

// recoverLog keeps a panicking tick from stopping the update loop.
func (a *app) recoverLog(where string) {
	r := recover()
	if r == nil {
		return
	}
	if a.logger != nil {
		a.logger.Error("recovered panic", "where", where, "panic", r)
	}
	if !a.exiting {
		a.scheduleUpdate()
	}
}
