package crop

import (
	"errors"
	"math"
	"testing"
)

func TestParseAspectRatio(t *testing.T) {
	cases := []struct {
		in   string
		want AspectRatio
	}{
		{"", Free},
		{"free", Free},
		{" Custom ", Free},
		{"image", ImageRatio},
		{"original", ImageRatio},
		{"16:9", Fixed(16, 9)},
		{"4x3", Fixed(4, 3)},
		{"3/2", Fixed(3, 2)},
		{"1.5:1", Fixed(1.5, 1)},
	}
	for _, c := range cases {
		got, err := ParseAspectRatio(c.in)
		if err != nil {
			t.Fatalf("ParseAspectRatio(%q): %v", c.in, err)
		}
		if got != c.want {
			t.Fatalf("ParseAspectRatio(%q): expected %v, got %v", c.in, c.want, got)
		}
	}
	for _, bad := range []string{"abc", ":3", "3:", "0:1", "-1:2", "a:b"} {
		if _, err := ParseAspectRatio(bad); !errors.Is(err, ErrInvalidRatio) {
			t.Fatalf("ParseAspectRatio(%q): expected ErrInvalidRatio, got %v", bad, err)
		}
	}
}

func TestAspectRatio_StringRoundTrip(t *testing.T) {
	for _, a := range []AspectRatio{Free, ImageRatio, Fixed(16, 9), Fixed(1.5, 1)} {
		got, err := ParseAspectRatio(a.String())
		if err != nil || got != a {
			t.Fatalf("round trip %v: got %v err=%v", a, got, err)
		}
	}
}

func TestHeightPerWidth(t *testing.T) {
	if _, ok := Free.HeightPerWidth(2); ok {
		t.Fatalf("free ratio must not resolve")
	}
	if r, ok := Fixed(4, 3).HeightPerWidth(0); !ok || r != 0.75 {
		t.Fatalf("4:3 expected 0.75, got %v ok=%v", r, ok)
	}
	if r, ok := ImageRatio.HeightPerWidth(0.5); !ok || r != 0.5 {
		t.Fatalf("image ratio expected 0.5, got %v ok=%v", r, ok)
	}
	if _, ok := ImageRatio.HeightPerWidth(0); ok {
		t.Fatalf("image ratio without an image aspect must not resolve")
	}
}

func TestAspectAdjustedRect_FreeIsIdentity(t *testing.T) {
	r := R(13, 7, 120, 45)
	if got := AspectAdjustedRect(r, Free, 0.5); got != r {
		t.Fatalf("free ratio changed rect: %+v", got)
	}
}

func TestAspectAdjustedRect_KeepsWidthAndVerticalCenter(t *testing.T) {
	got := AspectAdjustedRect(R(0, 0, 200, 100), Fixed(1, 1), 0)
	assertRect(t, got, R(0, -50, 200, 200))

	got = AspectAdjustedRect(R(10, 10, 160, 160), ImageRatio, 0.75)
	assertRect(t, got, R(10, 30, 160, 120))
	if math.Abs(got.MidY()-90) > 1e-9 {
		t.Fatalf("vertical center moved: %v", got.MidY())
	}
}

func TestFitRect(t *testing.T) {
	assertRect(t, FitRect(R(0, 0, 400, 300), 1), R(50, 0, 300, 300))
	assertRect(t, FitRect(R(0, 0, 400, 300), 0.5), R(0, 50, 400, 200))
	assertRect(t, FitRect(R(10, 10, 100, 100), 0), R(10, 10, 100, 100))
}

func TestOverlaySetAspectRatio(t *testing.T) {
	o := newTestOverlay(t, testMetrics(50, 50), R(0, 0, 200, 100), R(0, 0, 300, 300))
	var got []Rect
	o.AddListener(func(r Rect) { got = append(got, r) })

	if !o.SetAspectRatio(Free) {
		t.Fatalf("free ratio rejected")
	}
	if len(got) != 1 || got[0] != R(0, 0, 200, 100) {
		t.Fatalf("free ratio should republish the unchanged rect, got %+v", got)
	}

	if o.SetAspectRatio(Fixed(0, 1)) {
		t.Fatalf("invalid ratio accepted")
	}
	if o.AspectRatio() != Free {
		t.Fatalf("invalid ratio replaced current one")
	}

	if !o.SetAspectRatio(Fixed(2, 1)) {
		t.Fatalf("2:1 rejected")
	}
	assertRect(t, o.CropRect(), R(0, 0, 200, 100))

	o.Press(Pt(200, 50))
	if o.SetAspectRatio(Fixed(1, 1)) {
		t.Fatalf("ratio change accepted while dragging")
	}
	if o.AspectRatio() != Fixed(2, 1) {
		t.Fatalf("ratio changed while dragging: %v", o.AspectRatio())
	}
}

func TestOverlay_AspectToggleRoundTrip(t *testing.T) {
	start := R(-50, -50, 100, 100)
	direct := newTestOverlay(t, testMetrics(50, 50), start, R(-150, -150, 300, 300))
	direct.SetAspectRatio(Fixed(1, 1))

	o := newTestOverlay(t, testMetrics(50, 50), start, R(-150, -150, 300, 300))
	o.SetAspectRatio(Fixed(1, 1))
	o.SetAspectRatio(Free)
	o.SetAspectRatio(Fixed(1, 1))

	if o.CropRect() != direct.CropRect() {
		t.Fatalf("toggle changed rect: %+v vs %+v", o.CropRect(), direct.CropRect())
	}
}
