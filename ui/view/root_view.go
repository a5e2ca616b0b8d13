package view

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/soocke/cropper-go/config"
	"github.com/soocke/cropper-go/domain/crop"
	"github.com/soocke/cropper-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// RatioPresets are the aspect ratios offered in the toolbar.
var RatioPresets = []string{"free", "image", "1:1", "4:3", "3:2", "16:9", "9:16"}

// Handlers are invoked on user actions. Nil handlers are skipped.
type Handlers struct {
	OnToggleOverlay func()
	OnToggleTheme   func()
	OnExit          func()
	OnRatio         func(preset string)
	OnApplyConfig   func(*config.Config) error

	// Mouse on the viewport, in viewport units.
	OnPointerDown func(x, y float64)
	OnPointerDrag func(x, y float64)
	OnPointerUp   func()

	// Keyboard pointer surface.
	OnGrab   func(part crop.HandlePart)
	OnCycle  func(dir int)
	OnNudge  func(dx, dy float64)
	OnCommit func()
	OnAbort  func()
}

// RootView composes the top-level application layout and wires UI callbacks.
// It owns the subviews and implements the view contracts of the presenters.
type RootView struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger

	// Subviews
	Gestures    GestureStats
	ConfigPanel ConfigPanel
	Overlay     OverlayView

	// Widgets
	StatusLabel *TLabelWidget
	RatioSelect *TComboboxWidget
	toggleBtn   *TButtonWidget
}

func NewRootView(cfg *config.Config, cfgPath string, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, cfgPath: cfgPath, logger: logger}
}

// Build constructs the layout and binds keys and the mouse.
func (rv *RootView) Build(h Handlers) {
	if rv == nil {
		return
	}
	// Row 0: gesture stats and toolbar
	stats := Frame()
	Grid(stats, Row(0), Column(0), Sticky("w"), Padx("0.3m"), Pady("0.3m"))
	rv.Gestures = NewGestureStats(stats, 0, 0)

	bar := Frame()
	Grid(bar, Row(0), Column(1), Columnspan(2), Sticky("ne"), Padx("0.3m"), Pady("0.3m"))
	rv.RatioSelect = TCombobox(Values(RatioPresets), Width(8), State("readonly"))
	Grid(rv.RatioSelect, In(bar), Row(0), Column(0), Sticky("we"), Padx("0.2m"))
	rv.SetRatio(rv.cfg.AspectRatio)
	Bind(rv.RatioSelect, "<<ComboboxSelected>>", Command(func() {
		idx, err := strconv.Atoi(rv.RatioSelect.Current(nil))
		if err != nil || idx < 0 || idx >= len(RatioPresets) {
			if rv.logger != nil {
				rv.logger.Error("ratio selection parse error", "error", err)
			}
			return
		}
		call1(h.OnRatio, RatioPresets[idx])
	}))
	rv.toggleBtn = TButton(Txt("Hide Overlay"), Style(theme.StylePrimaryButton), Command(func() { call(h.OnToggleOverlay) }))
	Grid(rv.toggleBtn, In(bar), Row(0), Column(1), Sticky("we"), Padx("0.2m"))
	themeBtn := Button(Txt("Theme"), Command(func() { call(h.OnToggleTheme) }))
	Grid(themeBtn, In(bar), Row(0), Column(2), Sticky("we"), Padx("0.2m"))
	exitBtn := TButton(Txt("Exit"), Style(theme.StyleDangerButton), Command(func() { call(h.OnExit) }))
	Grid(exitBtn, In(bar), Row(0), Column(3), Sticky("we"), Padx("0.2m"))

	// Row 1..n: viewport on the left, settings on the right
	rv.ConfigPanel = NewConfigPanel(rv.cfg, rv.cfgPath, rv.logger, h.OnApplyConfig)
	endRow := rv.ConfigPanel.Build(1, 1)
	rv.Overlay = NewOverlayView(1, endRow-1, rv.cfg.ViewportWidth, rv.cfg.ViewportHeight)

	rv.StatusLabel = TLabel(Txt("no image"), Style(theme.StyleStatusLabel), Anchor("w"))
	Grid(rv.StatusLabel, Row(endRow), Column(0), Columnspan(3), Sticky("we"), Padx("0.4m"), Pady("0.3m"))

	rv.bindKeys(h)
	rv.bindPointer(h)
}

// bindKeys maps the keyboard onto the pointer surface: Ctrl+1..8 grab a
// handle in hit-test order and focus the viewport, Ctrl+[ and Ctrl+] cycle,
// F2 toggles the overlay. Arrows (Shift moves five steps), Return, Escape and
// focus loss act only while the viewport has focus, so the settings fields
// keep their own editing keys.
func (rv *RootView) bindKeys(h Handlers) {
	surface := rv.Overlay.Surface()
	grab := func(part crop.HandlePart) {
		Focus(surface)
		call1(h.OnGrab, part)
	}
	for i, part := range crop.Parts() {
		Bind(App, "<Control-Key-"+strconv.Itoa(i+1)+">", Command(func() { grab(part) }))
	}
	Bind(App, "<Control-Key-bracketright>", Command(func() { Focus(surface); call1(h.OnCycle, 1) }))
	Bind(App, "<Control-Key-bracketleft>", Command(func() { Focus(surface); call1(h.OnCycle, -1) }))
	Bind(App, "<F2>", Command(func() { call(h.OnToggleOverlay) }))

	arrows := []struct {
		key    string
		dx, dy float64
	}{{"Left", -1, 0}, {"Right", 1, 0}, {"Up", 0, -1}, {"Down", 0, 1}}
	for _, a := range arrows {
		Bind(surface, "<"+a.key+">", Command(func() { call2(h.OnNudge, a.dx, a.dy) }))
		Bind(surface, "<Shift-"+a.key+">", Command(func() { call2(h.OnNudge, 5*a.dx, 5*a.dy) }))
	}
	Bind(surface, "<Return>", Command(func() { call(h.OnCommit) }))
	Bind(surface, "<Escape>", Command(func() { call(h.OnAbort) }))
	Bind(surface, "<FocusOut>", Command(func() { call(h.OnAbort) }))
}

// bindPointer routes button 1 on the viewport to the pointer handlers.
func (rv *RootView) bindPointer(h Handlers) {
	surface := rv.Overlay.Surface()
	Bind(surface, "<ButtonPress-1>", Command(func(e *Event) {
		Focus(surface)
		x, y := rv.Overlay.ToViewport(float64(e.X), float64(e.Y))
		call2(h.OnPointerDown, x, y)
	}))
	Bind(surface, "<B1-Motion>", Command(func(e *Event) {
		x, y := rv.Overlay.ToViewport(float64(e.X), float64(e.Y))
		call2(h.OnPointerDrag, x, y)
	}))
	Bind(surface, "<ButtonRelease-1>", Command(func() { call(h.OnPointerUp) }))
}

// SetRatio selects preset in the ratio dropdown if it is one of RatioPresets.
func (rv *RootView) SetRatio(preset string) {
	if rv == nil || rv.RatioSelect == nil {
		return
	}
	for i, p := range RatioPresets {
		if p == preset {
			rv.RatioSelect.Current(i)
			return
		}
	}
}

// SetStatus updates the status bar.
func (rv *RootView) SetStatus(text string) {
	if rv != nil && rv.StatusLabel != nil {
		rv.StatusLabel.Configure(Txt(text))
	}
}

// ConfigEditable locks the settings and the ratio dropdown while a handle is engaged.
func (rv *RootView) ConfigEditable(enabled bool) {
	if rv == nil {
		return
	}
	if rv.ConfigPanel != nil {
		rv.ConfigPanel.SetEditable(enabled)
	}
	if rv.RatioSelect != nil {
		state := "disabled"
		if enabled {
			state = "readonly"
		}
		rv.RatioSelect.Configure(State(state))
	}
}

// OverlayShown updates the toggle button caption.
func (rv *RootView) OverlayShown(shown bool) {
	if rv == nil || rv.toggleBtn == nil {
		return
	}
	if shown {
		rv.toggleBtn.Configure(Txt("Hide Overlay"))
	} else {
		rv.toggleBtn.Configure(Txt("Show Overlay"))
	}
}

// ShowFrame proxies to the overlay viewport.
func (rv *RootView) ShowFrame(png []byte) {
	if rv != nil && rv.Overlay != nil {
		rv.Overlay.ShowFrame(png)
	}
}

// SetGestures proxies to the gesture stats labels.
func (rv *RootView) SetGestures(count int, gesture, total time.Duration) {
	if rv != nil && rv.Gestures != nil {
		rv.Gestures.SetGestures(count, gesture, total)
	}
}

func call(f func()) {
	if f != nil {
		f()
	}
}

func call1[T any](f func(T), v T) {
	if f != nil {
		f(v)
	}
}

func call2(f func(float64, float64), a, b float64) {
	if f != nil {
		f(a, b)
	}
}
