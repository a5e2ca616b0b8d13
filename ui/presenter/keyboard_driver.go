package presenter

import (
	"errors"
	"log/slog"

	"github.com/soocke/cropper-go/domain/crop"
)

// ErrGestureActive is returned when an operation that requires an idle overlay
// is attempted during a drag.
var ErrGestureActive = errors.New("gesture in progress")

// KeyboardDriver is the pointer surface of the host window. Selecting a handle
// presses at a point inside that handle, arrow keys move the virtual pointer,
// and the gesture is released or cancelled explicitly.
type KeyboardDriver struct {
	overlay  crop.OverlayContract
	logger   *slog.Logger
	step     float64
	pos      crop.Point
	selected crop.HandlePart
}

// NewKeyboardDriver returns a driver moving the pointer step display units per nudge.
func NewKeyboardDriver(o crop.OverlayContract, step float64, logger *slog.Logger) *KeyboardDriver {
	if step <= 0 {
		step = 1
	}
	return &KeyboardDriver{overlay: o, step: step, logger: logger}
}

// SetStep changes the nudge distance.
func (d *KeyboardDriver) SetStep(step float64) {
	if d != nil && step > 0 {
		d.step = step
	}
}

// Pointer returns the virtual pointer position.
func (d *KeyboardDriver) Pointer() crop.Point {
	if d == nil {
		return crop.Point{}
	}
	return d.pos
}

// Grab presses on part. The press is only delivered when the overlay captures
// the point; otherwise PartNone is returned and the overlay is untouched.
func (d *KeyboardDriver) Grab(part crop.HandlePart) crop.HandlePart {
	if d == nil || d.overlay == nil || part == crop.PartNone {
		return crop.PartNone
	}
	p := GrabPoint(part, d.overlay.CropRect(), d.overlay.Metrics())
	if !d.overlay.Captures(p) {
		return crop.PartNone
	}
	d.pos = p
	d.selected = part
	return d.overlay.Press(p)
}

// Cycle grabs the handle dir steps away from the last one in hit-test order.
func (d *KeyboardDriver) Cycle(dir int) crop.HandlePart {
	if d == nil {
		return crop.PartNone
	}
	parts := crop.Parts()
	i := -1
	for j, p := range parts {
		if p == d.selected {
			i = j
			break
		}
	}
	n := len(parts)
	if i < 0 && dir < 0 {
		i = 0
	}
	next := parts[((i+dir)%n+n)%n]
	return d.Grab(next)
}

// Nudge moves the virtual pointer by (dx, dy) steps and reports whether the
// crop rectangle changed. Without an engaged handle nothing happens.
func (d *KeyboardDriver) Nudge(dx, dy float64) bool {
	if d == nil || d.overlay == nil || d.overlay.State() != crop.StateDragging {
		return false
	}
	next := d.pos.Add(crop.Pt(dx*d.step, dy*d.step))
	prev := d.pos
	d.pos = next
	return d.overlay.Move(next, prev)
}

// Commit releases the engaged handle.
func (d *KeyboardDriver) Commit() {
	if d != nil && d.overlay != nil {
		d.overlay.Release()
	}
}

// Abort cancels the gesture, e.g. when the window loses focus.
func (d *KeyboardDriver) Abort() {
	if d != nil && d.overlay != nil {
		d.overlay.Cancel()
	}
}

// SetRatio parses and applies an aspect ratio preset. When the derived
// rectangle no longer fits the bound rectangle it is replaced by the largest
// rectangle of that ratio centered in the bound.
func (d *KeyboardDriver) SetRatio(s string, imageAspect float64) error {
	if d == nil || d.overlay == nil {
		return nil
	}
	a, err := crop.ParseAspectRatio(s)
	if err != nil {
		return err
	}
	d.overlay.SetImageAspect(imageAspect)
	if !d.overlay.SetAspectRatio(a) {
		return ErrGestureActive
	}
	bound := d.overlay.BoundRect()
	if hpw, ok := a.HeightPerWidth(imageAspect); ok && !d.overlay.CropRect().Within(bound, 1e-9) {
		d.overlay.SetCropRect(crop.FitRect(bound, hpw))
	}
	if d.logger != nil {
		d.logger.Info("aspect ratio", "ratio", a.String())
	}
	return nil
}

// GrabPoint returns a point that hits part: the middle of an edge strip, or
// a point of a corner box just outside both adjacent edge strips.
func GrabPoint(part crop.HandlePart, r crop.Rect, m crop.Metrics) crop.Point {
	if !part.IsCorner() {
		return crop.EdgeFrame(part, r, m).Center()
	}
	dx, dy := m.CornerTouchSize.Width/4, m.CornerTouchSize.Height/4
	e := part.Edges()
	p := crop.Pt(r.MinX()-dx, r.MinY()-dy)
	if e.Has(crop.EdgeRight) {
		p.X = r.MaxX() + dx
	}
	if e.Has(crop.EdgeBottom) {
		p.Y = r.MaxY() + dy
	}
	return p
}
