package model

import (
	"sync/atomic"
)

// VisibilityModel tracks whether the crop overlay is shown. The zero value is hidden and usable.
// Concurrency-safe via atomic Bool because UI callbacks and the compose worker may race.
type VisibilityModel struct{ visible atomic.Bool }

// NewVisibilityModel returns a model with the given initial visibility.
func NewVisibilityModel(visible bool) *VisibilityModel {
	m := &VisibilityModel{}
	m.visible.Store(visible)
	return m
}

// Visible reports whether the overlay is currently shown.
func (m *VisibilityModel) Visible() bool {
	if m == nil {
		return false
	}
	return m.visible.Load()
}

// SetVisible stores the flag and reports whether it changed.
func (m *VisibilityModel) SetVisible(b bool) bool {
	if m == nil {
		return false
	}
	return m.visible.Swap(b) != b
}
