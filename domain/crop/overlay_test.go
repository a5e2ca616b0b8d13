package crop

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"
)

func TestOverlay_RightEdgeDrag(t *testing.T) {
	o := newTestOverlay(t, testMetrics(50, 50), R(0, 0, 200, 200), R(0, 0, 300, 300))
	var got []Rect
	o.AddListener(func(r Rect) { got = append(got, r) })

	if part := o.Press(Pt(200, 100)); part != PartRightEdge {
		t.Fatalf("expected right edge, got %v", part)
	}
	if !o.Move(Pt(250, 100), Pt(200, 100)) {
		t.Fatalf("move not applied")
	}
	assertRect(t, o.CropRect(), R(0, 0, 250, 200))
	if len(got) != 1 {
		t.Fatalf("expected one notification, got %d", len(got))
	}
}

func TestOverlay_FreeMinimumAndBoundPins(t *testing.T) {
	o := newTestOverlay(t, testMetrics(50, 50), R(0, 0, 200, 200), R(0, 0, 300, 300))
	o.Press(Pt(200, 100))

	o.Move(Pt(40, 100), Pt(200, 100))
	if w := o.CropRect().Width; w != 50 {
		t.Fatalf("expected width pinned to 50, got %v", w)
	}

	// The pinned width grows again by the pointer delta.
	o.Move(Pt(60, 100), Pt(40, 100))
	assertRect(t, o.CropRect(), R(0, 0, 70, 200))

	o.Move(Pt(290, 100), Pt(60, 100))
	assertRect(t, o.CropRect(), R(0, 0, 300, 200))

	o.Move(Pt(400, 100), Pt(290, 100))
	assertRect(t, o.CropRect(), R(0, 0, 300, 200))
}

func TestOverlay_FreeUsesPreviousPoint(t *testing.T) {
	o := newTestOverlay(t, testMetrics(50, 50), R(0, 0, 200, 200), R(0, 0, 300, 300))
	o.Press(Pt(200, 100))

	// Only the step from prev counts, not the travel since the press.
	o.Move(Pt(250, 100), Pt(240, 100))
	assertRect(t, o.CropRect(), R(0, 0, 210, 200))
}

func TestOverlay_FreeEdgeLeadingPointerIsClamped(t *testing.T) {
	tests := []struct {
		name   string
		start  Rect
		press  Point
		pinAt  Point
		back   Point
		expect Rect
	}{
		{"right", R(0, 0, 200, 200), Pt(200, 100), Pt(0, 100), Pt(290, 100), R(0, 0, 300, 200)},
		{"bottom", R(0, 0, 200, 200), Pt(100, 200), Pt(100, 0), Pt(100, 290), R(0, 0, 200, 300)},
		{"left", R(100, 100, 200, 200), Pt(100, 200), Pt(300, 200), Pt(20, 200), R(0, 100, 300, 200)},
		{"top", R(100, 100, 200, 200), Pt(200, 100), Pt(200, 300), Pt(200, 20), R(100, 0, 200, 300)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newTestOverlay(t, testMetrics(50, 50), tt.start, R(0, 0, 300, 300))
			if o.Press(tt.press) == PartNone {
				t.Fatalf("press at %+v missed every handle", tt.press)
			}
			// The edge is pinned at the minimum, then leads the pointer on the way back.
			o.Move(tt.pinAt, tt.press)
			o.Move(tt.back, tt.pinAt)
			assertRect(t, o.CropRect(), tt.expect)
		})
	}
}

func TestOverlay_TopLeftCornerDrag(t *testing.T) {
	o := newTestOverlay(t, testMetrics(50, 50), R(0, 0, 200, 200), R(0, 0, 300, 300))
	if part := o.Press(Pt(-8, -8)); part != PartTopLeft {
		t.Fatalf("expected top-left, got %v", part)
	}
	o.Move(Pt(22, 12), Pt(-8, -8))
	assertRect(t, o.CropRect(), R(30, 20, 170, 180))

	// Dragging past the opposite corner pins both axes to the minimum size.
	o.Move(Pt(400, 400), Pt(22, 12))
	assertRect(t, o.CropRect(), R(150, 150, 50, 50))

	// Dragging beyond the bound pins to it.
	o.Move(Pt(-100, -100), Pt(400, 400))
	assertRect(t, o.CropRect(), R(0, 0, 200, 200))
}

func TestOverlay_FixedRatioRightEdge(t *testing.T) {
	o := newTestOverlay(t, testMetrics(50, 50), R(0, 0, 200, 100), R(0, 0, 300, 300))
	o.SetAspectRatio(Fixed(2, 1))
	o.Press(Pt(200, 50))
	o.Move(Pt(240, 50), Pt(200, 50))
	assertRect(t, o.CropRect(), R(0, -10, 240, 120))
}

func TestOverlay_FixedRatioWidthPinWins(t *testing.T) {
	o := newTestOverlay(t, testMetrics(50, 50), R(0, 0, 200, 100), R(0, 0, 300, 300))
	o.SetAspectRatio(Fixed(2, 1))
	o.Press(Pt(200, 50))
	o.Move(Pt(20, 50), Pt(200, 50))
	// The height ends up below its minimum: the width check runs first.
	assertRect(t, o.CropRect(), R(0, 0, 50, 25))
}

func TestOverlay_FixedRatioBottomRightCorner(t *testing.T) {
	o := newTestOverlay(t, testMetrics(50, 50), R(0, 0, 200, 100), R(0, 0, 300, 300))
	o.SetAspectRatio(Fixed(2, 1))
	o.Press(Pt(208, 108))
	if o.ActivePart() != PartBottomRight {
		t.Fatalf("expected bottom-right, got %v", o.ActivePart())
	}
	o.Move(Pt(228, 118), Pt(208, 108))
	assertRect(t, o.CropRect(), R(0, 0, 215, 107.5))
}

func TestOverlay_ZeroDeltaIsNoop(t *testing.T) {
	o := newTestOverlay(t, testMetrics(50, 50), R(10, 10, 100, 100), R(0, 0, 300, 300))
	n := 0
	o.AddListener(func(Rect) { n++ })
	o.Press(Pt(110, 50))
	if o.Move(Pt(110, 50), Pt(110, 50)) {
		t.Fatalf("zero delta reported a change")
	}
	if n != 0 || o.CropRect() != R(10, 10, 100, 100) {
		t.Fatalf("zero delta changed state: n=%d rect=%+v", n, o.CropRect())
	}
}

func TestOverlay_MoveWithoutGesture(t *testing.T) {
	o := newTestOverlay(t, testMetrics(50, 50), R(10, 10, 100, 100), R(0, 0, 300, 300))
	n := 0
	o.AddListener(func(Rect) { n++ })
	if o.Move(Pt(120, 50), Pt(110, 50)) {
		t.Fatalf("move while idle applied")
	}
	if part := o.Press(Pt(60, 60)); part != PartNone {
		t.Fatalf("interior press should hit nothing, got %v", part)
	}
	if o.State() != StateDragging {
		t.Fatalf("press should start a gesture even on no handle")
	}
	if o.Move(Pt(70, 70), Pt(60, 60)) {
		t.Fatalf("move on PartNone applied")
	}
	if n != 0 {
		t.Fatalf("unexpected notifications: %d", n)
	}
}

func TestOverlay_ReleaseAndCancel(t *testing.T) {
	o := newTestOverlay(t, testMetrics(50, 50), R(0, 0, 200, 200), R(0, 0, 300, 300))
	type change struct{ prev, next HandlePart }
	var parts []change
	rects := 0
	o.AddPartListener(func(prev, next HandlePart) { parts = append(parts, change{prev, next}) })
	o.AddListener(func(Rect) { rects++ })

	o.Press(Pt(200, 100))
	if o.State() != StateDragging {
		t.Fatalf("press on the right edge should start a drag")
	}
	o.Move(Pt(220, 100), Pt(200, 100))
	o.Release()
	if o.State() != StateIdle || o.ActivePart() != PartNone {
		t.Fatalf("release did not reset: %v %v", o.State(), o.ActivePart())
	}

	o.Press(Pt(100, 200))
	o.Move(Pt(100, 180), Pt(100, 200))
	o.Cancel()
	assertRect(t, o.CropRect(), R(0, 0, 220, 180))

	want := []change{
		{PartNone, PartRightEdge}, {PartRightEdge, PartNone},
		{PartNone, PartBottomEdge}, {PartBottomEdge, PartNone},
	}
	if len(parts) != len(want) {
		t.Fatalf("expected %d part changes, got %v", len(want), parts)
	}
	for i := range want {
		if parts[i] != want[i] {
			t.Fatalf("part change %d: expected %v, got %v", i, want[i], parts[i])
		}
	}
	if rects != 2 {
		t.Fatalf("expected 2 geometry notifications, got %d", rects)
	}

	// Release and cancel while idle do nothing.
	o.Release()
	o.Cancel()
	if len(parts) != len(want) {
		t.Fatalf("idle release notified part listeners")
	}
}

func TestOverlay_SetCropRectIgnoredWhileDragging(t *testing.T) {
	o := newTestOverlay(t, testMetrics(50, 50), R(0, 0, 200, 200), R(0, 0, 300, 300))
	o.Press(Pt(200, 100))
	if o.SetCropRect(R(5, 5, 60, 60)) {
		t.Fatalf("SetCropRect accepted while dragging")
	}
	o.Release()
	if !o.SetCropRect(R(5, 5, 60, 60)) {
		t.Fatalf("SetCropRect rejected while idle")
	}
	assertRect(t, o.CropRect(), R(5, 5, 60, 60))
}

// randomHandlePoint returns a point inside the touch region of a random handle.
func randomHandlePoint(rng *rand.Rand, o *Overlay) Point {
	hs := HandleFrames(o.CropRect(), o.Metrics())
	f := hs[rng.IntN(len(hs))].Frame
	return Pt(f.X+rng.Float64()*f.Width, f.Y+rng.Float64()*f.Height)
}

func TestOverlay_FreeFormStaysInBounds(t *testing.T) {
	const eps = 1e-9
	m := testMetrics(40, 30)
	bound := R(0, 0, 320, 240)
	o := newTestOverlay(t, m, R(60, 40, 160, 120), bound)
	rng := rand.New(rand.NewPCG(1, 2))

	for gesture := 0; gesture < 200; gesture++ {
		prev := randomHandlePoint(rng, o)
		o.Press(prev)
		for step := 0; step < 30; step++ {
			p := Pt(prev.X+rng.Float64()*160-80, prev.Y+rng.Float64()*160-80)
			o.Move(p, prev)
			prev = p
			r := o.CropRect()
			if !r.Within(bound, eps) {
				t.Fatalf("gesture %d step %d: %+v escaped %+v", gesture, step, r, bound)
			}
			if r.Width < m.MinCropSize.Width-eps || r.Height < m.MinCropSize.Height-eps {
				t.Fatalf("gesture %d step %d: %+v below minimum size", gesture, step, r)
			}
		}
		o.Release()
	}
}

func TestOverlay_FixedRatioIsPreserved(t *testing.T) {
	m := testMetrics(40, 30)
	o := newTestOverlay(t, m, R(60, 40, 160, 120), R(0, 0, 320, 240))
	o.SetAspectRatio(Fixed(4, 3))
	rng := rand.New(rand.NewPCG(3, 4))

	for gesture := 0; gesture < 100; gesture++ {
		prev := randomHandlePoint(rng, o)
		o.Press(prev)
		for step := 0; step < 20; step++ {
			p := Pt(prev.X+rng.Float64()*40-20, prev.Y+rng.Float64()*40-20)
			o.Move(p, prev)
			prev = p
			r := o.CropRect()
			if math.Abs(r.Height/r.Width-0.75) > 1e-6 {
				t.Fatalf("gesture %d step %d: ratio drifted to %v (%+v)", gesture, step, r.Height/r.Width, r)
			}
		}
		o.Release()
	}
}

func TestOverlay_SetMetricsRejectsInvalid(t *testing.T) {
	o := newTestOverlay(t, testMetrics(50, 50), R(0, 0, 200, 200), R(0, 0, 300, 300))
	bad := testMetrics(0, 50)
	if err := o.SetMetrics(bad); !errors.Is(err, ErrInvalidMetrics) {
		t.Fatalf("expected ErrInvalidMetrics, got %v", err)
	}
	if o.Metrics().MinCropSize.Width != 50 {
		t.Fatalf("invalid metrics replaced the current ones")
	}
	if err := o.SetMetrics(testMetrics(80, 80)); err != nil {
		t.Fatalf("valid metrics rejected: %v", err)
	}
	o.Press(Pt(200, 100))
	o.Move(Pt(0, 100), Pt(200, 100))
	if w := o.CropRect().Width; w != 80 {
		t.Fatalf("expected the new minimum width 80, got %v", w)
	}
}

func TestOverlay_ImageRatioFollowsImageAspect(t *testing.T) {
	o := newTestOverlay(t, testMetrics(50, 50), R(0, 0, 200, 100), R(0, 0, 300, 300))
	o.SetImageAspect(0.75)
	o.SetAspectRatio(ImageRatio)
	assertRect(t, o.CropRect(), R(0, -25, 200, 150))
	o.Press(Pt(200, 50))
	o.Move(Pt(240, 50), Pt(200, 50))
	if r := o.CropRect(); math.Abs(r.Height/r.Width-0.75) > 1e-9 {
		t.Fatalf("image ratio not preserved: %+v", r)
	}
}
