package crop

// Interface slices for consumers (presenters, views).
type CropRectSource interface {
	CropRect() Rect
	ActivePart() HandlePart
	State() State
}
type GestureSink interface {
	Press(Point) HandlePart
	Move(p, prev Point) bool
	Release()
	Cancel()
}
type HitTester interface {
	PartAt(Point) HandlePart
	Captures(Point) bool
}
type GeometryControl interface {
	SetAspectRatio(AspectRatio) bool
	SetBoundRect(Rect)
	SetCropRect(Rect) bool
	SetImageAspect(float64)
	SetMetrics(Metrics) error
	Metrics() Metrics
	AspectRatio() AspectRatio
	BoundRect() Rect
}

// OverlayContract aggregate for DI.
type OverlayContract interface {
	CropRectSource
	GestureSink
	HitTester
	GeometryControl
	AddListener(CropRectListener)
	AddPartListener(PartListener)
	SetVisible(bool)
	Visible() bool
}

// Ensure contract satisfaction
var _ OverlayContract = (*Overlay)(nil)
