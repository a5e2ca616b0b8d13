package presenter

import "time"

// Loop aggregates feature presenters and drives periodic updates.
//
// It calls Tick on the sub-presenters and invokes a scheduler callback.
// The zero value is usable (methods are nil-safe).
type Loop struct {
	Overlay  *OverlayPresenter
	Gestures *GesturePresenter
	Preview  *PreviewPresenter
	Schedule func()
}

func NewLoop(overlay *OverlayPresenter, gestures *GesturePresenter, preview *PreviewPresenter, schedule func()) *Loop {
	return &Loop{Overlay: overlay, Gestures: gestures, Preview: preview, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	if l.Overlay != nil {
		l.Overlay.Tick()
	}
	if l.Gestures != nil {
		l.Gestures.Tick(now)
	}
	if l.Preview != nil {
		l.Preview.Tick()
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
