package presenter

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/soocke/cropper-go/domain/crop"
	"github.com/soocke/cropper-go/ui/images"
	"github.com/soocke/cropper-go/ui/model"
)

// StatusView shows a one line description of the crop and locks editing
// controls while a handle is engaged.
type StatusView interface {
	SetStatus(text string)
	ConfigEditable(enabled bool)
}

// OverlayPresenter mirrors overlay notifications into the crop model and
// reflects them in the status line on the next Tick.
type OverlayPresenter struct {
	overlay crop.OverlayContract
	model   *model.CropModel
	view    StatusView
	logger  *slog.Logger

	bounds  image.Rectangle // source image bounds
	placed  crop.Rect       // where the image sits on the display
	source  string          // source description
	dirty   bool
	status  string
	editing bool
}

// NewOverlayPresenter subscribes to the overlay and returns the presenter.
func NewOverlayPresenter(o crop.OverlayContract, m *model.CropModel, view StatusView, logger *slog.Logger) *OverlayPresenter {
	p := &OverlayPresenter{overlay: o, model: m, view: view, logger: logger, dirty: true, editing: true}
	if o != nil {
		o.AddListener(p.OnCropRect)
		o.AddPartListener(p.OnPart)
	}
	return p
}

// OnCropRect receives every published crop rectangle.
func (p *OverlayPresenter) OnCropRect(r crop.Rect) {
	if p == nil {
		return
	}
	p.model.SetRect(r)
	p.dirty = true
}

// OnPart receives active handle changes.
func (p *OverlayPresenter) OnPart(prev, next crop.HandlePart) {
	if p == nil {
		return
	}
	p.model.SetPart(next)
	p.dirty = true
	if p.logger != nil {
		p.logger.Debug("handle", "prev", prev.String(), "next", next.String())
	}
}

// SetImage records the source image geometry used to report pixel coordinates.
func (p *OverlayPresenter) SetImage(desc string, bounds image.Rectangle, placed crop.Rect) {
	if p == nil {
		return
	}
	p.source, p.bounds, p.placed = desc, bounds, placed
	p.dirty = true
}

// Tick flushes pending changes to the view.
func (p *OverlayPresenter) Tick() {
	if p == nil || p.view == nil || !p.dirty {
		return
	}
	p.dirty = false
	editable := !p.model.Dragging()
	if editable != p.editing {
		p.editing = editable
		p.view.ConfigEditable(editable)
	}
	if s := p.Status(); s != p.status {
		p.status = s
		p.view.SetStatus(s)
	}
}

// Status formats the current crop in source pixels.
func (p *OverlayPresenter) Status() string {
	if p == nil {
		return ""
	}
	r := images.SourceRect(p.model.Rect(), p.placed, p.bounds)
	ratio := "free"
	if p.overlay != nil {
		ratio = p.overlay.AspectRatio().String()
	}
	s := fmt.Sprintf("%s | crop %d×%d at (%d,%d) | ratio %s", p.source, r.Dx(), r.Dy(), r.Min.X, r.Min.Y, ratio)
	if part := p.model.Part(); part != crop.PartNone {
		s += " | " + part.String()
	}
	return s
}
