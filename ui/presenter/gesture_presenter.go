package presenter

import (
	"time"

	"github.com/soocke/cropper-go/ui/model"
)

// DraggingModel reports whether a handle is engaged.
type DraggingModel interface{ Dragging() bool }

// GestureView displays the drag count and durations.
type GestureView interface {
	SetGestures(count int, gesture, total time.Duration)
}

// GesturePresenter feeds drag state into the gesture model and pushes its values to the view.
type GesturePresenter struct {
	gestures *model.GestureModel
	drag     DraggingModel
	view     GestureView
}

// NewGesturePresenter returns a new GesturePresenter.
func NewGesturePresenter(gestures *model.GestureModel, drag DraggingModel, view GestureView) *GesturePresenter {
	return &GesturePresenter{gestures: gestures, drag: drag, view: view}
}

// Tick updates the presenter: advance the gesture model and push values to the view.
func (p *GesturePresenter) Tick(now time.Time) {
	if p == nil || p.gestures == nil || p.drag == nil || p.view == nil {
		return
	}
	p.gestures.OnTick(p.drag.Dragging(), now)
	p.view.SetGestures(p.gestures.Values())
}
