package view

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/soocke/cropper-go/config"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ConfigPanel encapsulates the overlay settings form and apply logic.
// It owns its widgets and writes back into *config.Config on ApplyChanges.
type ConfigPanel interface {
	Build(startRow, column int) (endRow int) // constructs widgets starting at startRow, returns next free row
	SetEditable(enabled bool)
	ApplyChanges() // parses widget text into underlying config, applies and persists it
}

type configPanel struct {
	cfg      *config.Config
	cfgPath  string
	logger   *slog.Logger
	onApply  func(*config.Config) error
	applyBtn *ButtonWidget
	widgets  map[string]*TextWidget // keyed by internal field id
}

// NewConfigPanel creates the view bound to cfg. onApply receives the validated
// copy before it is stored; a non-nil error keeps the previous configuration.
func NewConfigPanel(cfg *config.Config, cfgPath string, logger *slog.Logger, onApply func(*config.Config) error) ConfigPanel {
	return &configPanel{cfg: cfg, cfgPath: cfgPath, logger: logger, onApply: onApply, widgets: make(map[string]*TextWidget)}
}

func (v *configPanel) Build(startRow, column int) (row int) {
	c := v.cfg
	row = startRow
	makeRow := func(id, label, value string) {
		lbl := Label(Txt(label), Anchor("w"))
		Grid(lbl, Row(row), Column(column), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := Text(Height(1), Width(10))
		Grid(w, Row(row), Column(column+1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		w.Delete("1.0", END)
		w.Insert("1.0", value)
		v.widgets[id] = w
		row++
	}
	makeRow("minCropWidth", "Min Width", formatFloat(c.MinCropWidth))
	makeRow("minCropHeight", "Min Height", formatFloat(c.MinCropHeight))
	makeRow("cornerTouch", "Corner Touch (WxH)", formatFloat(c.CornerTouchWidth)+"x"+formatFloat(c.CornerTouchHeight))
	makeRow("edgeTouch", "Edge Touch (HxV)", formatFloat(c.EdgeTouchHorizontal)+"x"+formatFloat(c.EdgeTouchVertical))
	makeRow("cornerSize", "Corner Size", formatFloat(c.CornerNormalSize))
	makeRow("cornerSizeHi", "Corner Size Engaged", formatFloat(c.CornerHighlightedSize))
	makeRow("gridLines", "Grid Lines (HxV)", fmt.Sprintf("%dx%d", c.GridLinesHorizontal, c.GridLinesVertical))
	makeRow("alwaysShowGrid", "Always Show Grid (true/false)", fmt.Sprintf("%t", c.AlwaysShowGrid))
	makeRow("overlayDim", "Overlay Dim (0-1)", formatFloat(c.OverlayDim))
	makeRow("blurSigma", "Blur Sigma", formatFloat(c.BlurSigma))
	makeRow("nudgeStep", "Nudge Step", formatFloat(c.NudgeStep))
	v.applyBtn = Button(Txt("Apply Changes"), Command(func() { v.ApplyChanges() }))
	Grid(v.applyBtn, Row(row), Column(column), Columnspan(2), Sticky("we"), Padx("0.4m"), Pady("0.3m"))
	row++
	return row
}

func (v *configPanel) SetEditable(enabled bool) {
	state := "disabled"
	if enabled {
		state = "normal"
	}
	for _, w := range v.widgets {
		if w != nil {
			w.Configure(State(state))
		}
	}
	if v.applyBtn != nil {
		v.applyBtn.Configure(State(state))
	}
}

func (v *configPanel) text(id string) string {
	w := v.widgets[id]
	if w == nil {
		return ""
	}
	return strings.TrimSpace(strings.Join(w.Get("1.0", END), ""))
}

func (v *configPanel) ApplyChanges() {
	if v.cfg == nil {
		return
	}
	cfg := *v.cfg // copy
	assignFloat := func(id string, dst *float64) {
		if f, ok := parseFloatField(v.text(id)); ok {
			*dst = f
		}
	}
	assignPair := func(id string, a, b *float64) {
		if x, y, ok := parsePair(v.text(id)); ok {
			*a, *b = x, y
		}
	}
	assignFloat("minCropWidth", &cfg.MinCropWidth)
	assignFloat("minCropHeight", &cfg.MinCropHeight)
	assignPair("cornerTouch", &cfg.CornerTouchWidth, &cfg.CornerTouchHeight)
	assignPair("edgeTouch", &cfg.EdgeTouchHorizontal, &cfg.EdgeTouchVertical)
	assignFloat("cornerSize", &cfg.CornerNormalSize)
	assignFloat("cornerSizeHi", &cfg.CornerHighlightedSize)
	if h, vert, ok := parsePair(v.text("gridLines")); ok {
		cfg.GridLinesHorizontal, cfg.GridLinesVertical = int(h), int(vert)
	}
	if b, ok := parseBoolLoose(v.text("alwaysShowGrid")); ok {
		cfg.AlwaysShowGrid = b
	}
	assignFloat("overlayDim", &cfg.OverlayDim)
	assignFloat("blurSigma", &cfg.BlurSigma)
	assignFloat("nudgeStep", &cfg.NudgeStep)

	if err := cfg.Validate(); err != nil {
		if v.logger != nil {
			v.logger.Warn("config rejected", "error", err)
		}
		return
	}
	if v.onApply != nil {
		if err := v.onApply(&cfg); err != nil {
			if v.logger != nil {
				v.logger.Warn("config not applied", "error", err)
			}
			return
		}
	}
	*v.cfg = cfg
	if err := v.cfg.Save(v.cfgPath); err != nil {
		if v.logger != nil {
			v.logger.Error("config save failed", "error", err)
		}
	} else if v.logger != nil {
		v.logger.Info("config saved", "path", v.cfgPath)
	}
}

// parsing helpers (unexported)
func formatFloat(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

func parseFloatField(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// parsePair reads "AxB"; a single number is used for both.
func parsePair(s string) (float64, float64, bool) {
	a, b, found := strings.Cut(strings.ToLower(s), "x")
	x, ok := parseFloatField(a)
	if !ok {
		return 0, 0, false
	}
	if !found {
		return x, x, true
	}
	y, ok := parseFloatField(b)
	return x, y, ok
}

func parseBoolLoose(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "y", "on", "t":
		return true, true
	case "false", "0", "no", "n", "off", "f":
		return false, true
	default:
		return false, false
	}
}
