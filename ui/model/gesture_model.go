package model

import (
	"time"
)

// GestureModel counts drag gestures and tracks how long the current and all
// previous drags lasted. It is decoupled from the UI; presenters should poll
// Values() and update views. The zero value is ready to use.
type GestureModel struct {
	active      bool
	dragStart   time.Time
	lastGesture time.Duration
	accumulated time.Duration
	count       int
}

// NewGestureModel returns a pointer to a ready-to-use GestureModel.
func NewGestureModel() *GestureModel { return &GestureModel{} }

// OnTick updates the model using the current drag state and timestamp.
// Call periodically (for example, from a presenter tick).
func (m *GestureModel) OnTick(dragging bool, now time.Time) {
	if m == nil {
		return
	}
	if dragging {
		if !m.active { // transition idle -> dragging
			m.active = true
			m.dragStart = now
			m.lastGesture = 0
			m.count++
		}
		m.lastGesture = now.Sub(m.dragStart)
	} else if m.active { // transition dragging -> idle
		m.lastGesture = now.Sub(m.dragStart)
		m.accumulated += m.lastGesture
		m.active = false
	}
}

// Values returns the number of gestures seen, the duration of the current (or
// last) gesture and the total time spent dragging including the ongoing one.
func (m *GestureModel) Values() (count int, gesture, total time.Duration) {
	if m == nil {
		return 0, 0, 0
	}
	count = m.count
	gesture = m.lastGesture
	total = m.accumulated
	if m.active {
		total += gesture
	}
	return
}
