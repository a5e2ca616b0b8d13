package crop

import (
	"fmt"
	"log/slog"
)

// State enumerates the interaction states of the overlay.
type State int

const (
	StateIdle State = iota
	StateDragging
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// CropRectListener is called synchronously after every change of the crop rectangle.
type CropRectListener func(rect Rect)

// PartListener is called when the active handle changes (press, release, cancel).
type PartListener func(prev, next HandlePart)

// Overlay owns the crop rectangle and turns pointer gestures into rectangle
// changes. It is not safe for concurrent use: all calls must come from the
// goroutine delivering pointer events.
type Overlay struct {
	logger      *slog.Logger
	metrics     Metrics
	rect        Rect
	bound       Rect
	ratio       AspectRatio
	imageAspect float64
	state       State
	part        HandlePart
	anchor      Anchor
	visible     bool

	listeners     []CropRectListener
	partListeners []PartListener
}

// NewOverlay returns an idle, visible overlay with an empty crop rectangle.
// The metrics are validated here; the geometry never checks them again.
func NewOverlay(m Metrics, logger *slog.Logger) (*Overlay, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &Overlay{logger: logger, metrics: m, visible: true}, nil
}

// AddListener registers a crop rectangle listener.
func (o *Overlay) AddListener(l CropRectListener) {
	if l != nil {
		o.listeners = append(o.listeners, l)
	}
}

// AddPartListener registers an active handle listener.
func (o *Overlay) AddPartListener(l PartListener) {
	if l != nil {
		o.partListeners = append(o.partListeners, l)
	}
}

func (o *Overlay) CropRect() Rect           { return o.rect }
func (o *Overlay) BoundRect() Rect          { return o.bound }
func (o *Overlay) ActivePart() HandlePart   { return o.part }
func (o *Overlay) State() State             { return o.state }
func (o *Overlay) Metrics() Metrics         { return o.metrics }
func (o *Overlay) AspectRatio() AspectRatio { return o.ratio }
func (o *Overlay) Visible() bool            { return o.visible }

// PartAt returns the handle under p for the current crop rectangle.
func (o *Overlay) PartAt(p Point) HandlePart { return HitPart(p, o.rect, o.metrics) }

// Captures reports whether a pointer pressed at p belongs to the overlay.
// When false the host should hand the event to the surface underneath.
func (o *Overlay) Captures(p Point) bool {
	return o.visible && o.PartAt(p) != PartNone
}

// SetVisible shows or hides the overlay. A hidden overlay captures no pointers.
func (o *Overlay) SetVisible(v bool) { o.visible = v }

// SetMetrics replaces the geometry parameters. Invalid metrics are rejected
// and leave the overlay unchanged.
func (o *Overlay) SetMetrics(m Metrics) error {
	if err := m.Validate(); err != nil {
		return err
	}
	o.metrics = m
	return nil
}

// SetBoundRect sets the maximum extent of the crop rectangle. It is read on
// every move and must not be degenerate.
func (o *Overlay) SetBoundRect(r Rect) { o.bound = r }

// SetImageAspect sets the natural height/width of the displayed image, used
// by ImageRatio.
func (o *Overlay) SetImageAspect(heightPerWidth float64) {
	if heightPerWidth > 0 {
		o.imageAspect = heightPerWidth
	}
}

// SetCropRect places the crop rectangle, e.g. after loading an image. It is
// ignored while dragging.
func (o *Overlay) SetCropRect(r Rect) bool {
	if o.state == StateDragging {
		return false
	}
	o.publish(r)
	return true
}

// SetAspectRatio switches the ratio constraint and recomputes the crop
// rectangle from the current one. Changes are only accepted while idle;
// invalid ratios are rejected.
func (o *Overlay) SetAspectRatio(a AspectRatio) bool {
	if o.state == StateDragging || !a.Valid() {
		return false
	}
	o.ratio = a
	o.publish(AspectAdjustedRect(o.rect, a, o.imageAspect))
	if o.logger != nil {
		o.logger.Debug("aspect ratio changed", "ratio", a.String(), "rect", fmtRect(o.rect))
	}
	return true
}

// Press starts a gesture at p. A press while already dragging restarts the
// anchor. Pressing outside every handle still enters the dragging state with
// PartNone, which makes the following moves no-ops.
func (o *Overlay) Press(p Point) HandlePart {
	o.anchor = Anchor{Touch: p, Rect: o.rect}
	o.state = StateDragging
	o.setPart(HitPart(p, o.rect, o.metrics))
	if o.logger != nil {
		o.logger.Debug("crop gesture started", "part", o.part.String(), "x", p.X, "y", p.Y)
	}
	return o.part
}

// Move applies a pointer move from prev to p and reports whether the crop
// rectangle was recomputed. Moves outside a gesture, on PartNone, or with a
// zero delta change nothing.
func (o *Overlay) Move(p, prev Point) bool {
	if o.state != StateDragging || o.part == PartNone {
		return false
	}
	delta := p.Sub(prev)
	if delta == (Point{}) {
		return false
	}
	var next Rect
	if hpw, ok := o.ratio.HeightPerWidth(o.imageAspect); ok {
		next = resizeFixed(o.rect, delta, o.part, hpw, o.metrics.MinCropSize)
	} else {
		next = resizeFree(o.rect, p, delta, o.part, o.anchor, o.bound, o.metrics.MinCropSize)
	}
	o.publish(next)
	return true
}

// Release ends the gesture.
func (o *Overlay) Release() {
	if o.state != StateDragging {
		return
	}
	if o.logger != nil {
		o.logger.Debug("crop gesture ended", "part", o.part.String(), "rect", fmtRect(o.rect))
	}
	o.reset()
}

// Cancel aborts the gesture without a final geometry notification. The crop
// rectangle keeps the value of the last move.
func (o *Overlay) Cancel() {
	if o.state != StateDragging {
		return
	}
	if o.logger != nil {
		o.logger.Debug("crop gesture cancelled", "part", o.part.String())
	}
	o.reset()
}

func (o *Overlay) reset() {
	o.state = StateIdle
	o.anchor = Anchor{}
	o.setPart(PartNone)
}

func (o *Overlay) setPart(next HandlePart) {
	prev := o.part
	o.part = next
	if prev == next {
		return
	}
	for _, l := range o.partListeners {
		l(prev, next)
	}
}

func (o *Overlay) publish(r Rect) {
	o.rect = r.clampSize()
	for _, l := range o.listeners {
		l(o.rect)
	}
}

func fmtRect(r Rect) string {
	return fmt.Sprintf("(%.1f,%.1f %.1fx%.1f)", r.X, r.Y, r.Width, r.Height)
}
