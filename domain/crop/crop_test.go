package crop

import (
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var discardLogger = slog.New(slog.DiscardHandler)

var approx = cmpopts.EquateApprox(0, 1e-9)

// testMetrics returns metrics with the given minimum size, 20x20 corner touch
// boxes and 10 unit edge strips.
func testMetrics(minW, minH float64) Metrics {
	m := DefaultMetrics()
	m.MinCropSize = Size{Width: minW, Height: minH}
	m.CornerTouchSize = Size{Width: 20, Height: 20}
	m.EdgeTouchThickness = Thickness{Horizontal: 10, Vertical: 10}
	return m
}

func newTestOverlay(t *testing.T, m Metrics, rect, bound Rect) *Overlay {
	t.Helper()
	o, err := NewOverlay(m, discardLogger)
	if err != nil {
		t.Fatalf("NewOverlay: %v", err)
	}
	o.SetBoundRect(bound)
	o.SetCropRect(rect)
	return o
}

func assertRect(t *testing.T, got, want Rect) {
	t.Helper()
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Fatalf("rect mismatch (-want +got):\n%s", diff)
	}
}
