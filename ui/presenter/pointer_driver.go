package presenter

import (
	"log/slog"

	"github.com/soocke/cropper-go/domain/crop"
)

// PointerDriver feeds mouse button and motion events into the overlay. It
// remembers the previous pointer position so every move carries its own
// delta, even when the window system coalesces motion events.
type PointerDriver struct {
	overlay crop.OverlayContract
	logger  *slog.Logger
	pressed bool
	last    crop.Point
}

func NewPointerDriver(o crop.OverlayContract, logger *slog.Logger) *PointerDriver {
	return &PointerDriver{overlay: o, logger: logger}
}

// Down presses at (x, y) when the overlay captures that point. A press the
// overlay does not capture belongs to the surface underneath and is dropped.
func (d *PointerDriver) Down(x, y float64) crop.HandlePart {
	if d == nil || d.overlay == nil {
		return crop.PartNone
	}
	p := crop.Pt(x, y)
	if !d.overlay.Captures(p) {
		return crop.PartNone
	}
	d.pressed = true
	d.last = p
	return d.overlay.Press(p)
}

// Drag moves the pressed pointer to (x, y) and reports whether the crop
// rectangle changed.
func (d *PointerDriver) Drag(x, y float64) bool {
	if d == nil || !d.pressed {
		return false
	}
	p := crop.Pt(x, y)
	prev := d.last
	d.last = p
	return d.overlay.Move(p, prev)
}

// Up releases the gesture started by Down.
func (d *PointerDriver) Up() {
	if d == nil || !d.pressed {
		return
	}
	d.pressed = false
	d.overlay.Release()
	if d.logger != nil {
		d.logger.Debug("pointer released", "rect", d.overlay.CropRect())
	}
}

// Pressed reports whether a mouse gesture is in progress.
func (d *PointerDriver) Pressed() bool { return d != nil && d.pressed }
