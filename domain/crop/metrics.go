package crop

import (
	"errors"
	"fmt"

	"github.com/soocke/cropper-go/config"
)

// ErrInvalidMetrics reports a degenerate overlay configuration.
var ErrInvalidMetrics = errors.New("invalid crop metrics")

// Thickness holds separate sizes for horizontal (top/bottom) and vertical
// (left/right) handles.
type Thickness struct {
	Horizontal, Vertical float64
}

// StateSizes holds a value for the normal and the highlighted handle state.
type StateSizes struct {
	Normal, Highlighted float64
}

// Metrics are the read-only numeric parameters of the overlay geometry.
type Metrics struct {
	MinCropSize        Size
	CornerTouchSize    Size
	EdgeTouchThickness Thickness
	CornerSize         StateSizes
	CornerLineWidth    StateSizes
	EdgeLineWidth      StateSizes
	GridLines          struct{ Horizontal, Vertical int }
	AlwaysShowGrid     bool
}

// DefaultMetrics returns the metrics of config.DefaultConfig.
func DefaultMetrics() Metrics { return MetricsFromConfig(config.DefaultConfig()) }

// MetricsFromConfig extracts the overlay metrics from cfg. A nil cfg yields the defaults.
func MetricsFromConfig(cfg *config.Config) Metrics {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	m := Metrics{
		MinCropSize:        Size{Width: cfg.MinCropWidth, Height: cfg.MinCropHeight},
		CornerTouchSize:    Size{Width: cfg.CornerTouchWidth, Height: cfg.CornerTouchHeight},
		EdgeTouchThickness: Thickness{Horizontal: cfg.EdgeTouchHorizontal, Vertical: cfg.EdgeTouchVertical},
		CornerSize:         StateSizes{Normal: cfg.CornerNormalSize, Highlighted: cfg.CornerHighlightedSize},
		CornerLineWidth:    StateSizes{Normal: cfg.CornerLineWidth, Highlighted: cfg.CornerHighlightedLineWidth},
		EdgeLineWidth:      StateSizes{Normal: cfg.EdgeLineWidth, Highlighted: cfg.EdgeHighlightedLineWidth},
		AlwaysShowGrid:     cfg.AlwaysShowGrid,
	}
	m.GridLines.Horizontal = cfg.GridLinesHorizontal
	m.GridLines.Vertical = cfg.GridLinesVertical
	return m
}

// Validate returns an error wrapping ErrInvalidMetrics if any size is not
// strictly positive or a grid line count is negative.
func (m Metrics) Validate() error {
	var errs []error
	check := func(name string, v float64) {
		if !(v > 0) {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidMetrics, name, v))
		}
	}
	check("min crop width", m.MinCropSize.Width)
	check("min crop height", m.MinCropSize.Height)
	check("corner touch width", m.CornerTouchSize.Width)
	check("corner touch height", m.CornerTouchSize.Height)
	check("horizontal edge thickness", m.EdgeTouchThickness.Horizontal)
	check("vertical edge thickness", m.EdgeTouchThickness.Vertical)
	check("corner size", m.CornerSize.Normal)
	check("highlighted corner size", m.CornerSize.Highlighted)
	check("corner line width", m.CornerLineWidth.Normal)
	check("highlighted corner line width", m.CornerLineWidth.Highlighted)
	check("edge line width", m.EdgeLineWidth.Normal)
	check("highlighted edge line width", m.EdgeLineWidth.Highlighted)
	if m.GridLines.Horizontal < 0 || m.GridLines.Vertical < 0 {
		errs = append(errs, fmt.Errorf("%w: negative grid line count", ErrInvalidMetrics))
	}
	return errors.Join(errs...)
}
