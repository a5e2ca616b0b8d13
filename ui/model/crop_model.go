package model

import (
	"github.com/soocke/cropper-go/domain/crop"
)

// CropModel mirrors the last crop rectangle and active handle published by the overlay.
// Zero value means no rectangle yet and is usable.
// No synchronization needed: updates occur on the UI thread.
type CropModel struct {
	rect     crop.Rect
	part     crop.HandlePart
	dragging bool
	revision uint64
}

func NewCropModel() *CropModel { return &CropModel{} }

// SetRect stores a published rectangle. Every call bumps the revision, even
// if the value is unchanged, because each publish is a distinct notification.
func (m *CropModel) SetRect(r crop.Rect) {
	if m == nil {
		return
	}
	m.rect = r
	m.revision++
}

// SetPart stores the active handle; any handle other than none means a drag is in progress.
func (m *CropModel) SetPart(p crop.HandlePart) {
	if m == nil || m.part == p {
		return
	}
	m.part = p
	m.dragging = p != crop.PartNone
	m.revision++
}

// Rect returns the last published rectangle (may be empty).
func (m *CropModel) Rect() crop.Rect {
	if m == nil {
		return crop.Rect{}
	}
	return m.rect
}

// Part returns the active handle.
func (m *CropModel) Part() crop.HandlePart {
	if m == nil {
		return crop.PartNone
	}
	return m.part
}

// Dragging reports whether a handle is engaged.
func (m *CropModel) Dragging() bool { return m != nil && m.dragging }

// Revision increases on every change; presenters compare it to skip redundant renders.
func (m *CropModel) Revision() uint64 {
	if m == nil {
		return 0
	}
	return m.revision
}
