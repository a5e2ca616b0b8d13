package capture

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{uint8(x), uint8(y), 128, 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestDecode_ReportsSizeAndAspect(t *testing.T) {
	data := testPNG(t, 40, 30)
	src, err := Decode("sample.png", data)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := src.Image.Bounds(); b.Dx() != 40 || b.Dy() != 30 {
		t.Fatalf("unexpected bounds %v", b)
	}
	if src.Bytes != int64(len(data)) {
		t.Fatalf("expected %d bytes, got %d", len(data), src.Bytes)
	}
	if src.Aspect() != 0.75 {
		t.Fatalf("expected aspect 0.75, got %v", src.Aspect())
	}
	d := src.Describe()
	if !strings.HasPrefix(d, "sample.png · 40×30 · ") || !strings.HasSuffix(d, "B") {
		t.Fatalf("unexpected description %q", d)
	}
}

func TestDecode_Garbage(t *testing.T) {
	if _, err := Decode("junk", []byte("not an image")); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "photo.png")
	if err := os.WriteFile(path, testPNG(t, 16, 8), 0o644); err != nil {
		t.Fatal(err)
	}
	src, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if src.Name != "photo.png" || src.Image.Bounds().Dx() != 16 {
		t.Fatalf("unexpected source %+v", src)
	}
	if _, err := Load(filepath.Join(dir, "missing.png")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestSource_NilSafe(t *testing.T) {
	var s *Source
	if s.Aspect() != 0 || s.Describe() != "no image" {
		t.Fatalf("nil source should describe as empty")
	}
}

func TestOpen_FallsThroughToFallback(t *testing.T) {
	fallback := func() (*Source, error) { return Decode("fallback.png", testPNG(t, 4, 4)) }
	src, err := Open(Request{Path: filepath.Join(t.TempDir(), "missing.png"), Fallback: fallback}, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if src.Name != "fallback.png" {
		t.Fatalf("expected fallback source, got %q", src.Name)
	}
}

func TestOpen_PrefersPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "photo.png")
	if err := os.WriteFile(path, testPNG(t, 6, 3), 0o644); err != nil {
		t.Fatal(err)
	}
	called := false
	src, err := Open(Request{Path: path, Fallback: func() (*Source, error) { called = true; return nil, nil }}, nil)
	if err != nil || src.Name != "photo.png" || called {
		t.Fatalf("expected the file to be used: src=%+v err=%v fallback=%v", src, err, called)
	}
}

func TestOpen_NothingAvailable(t *testing.T) {
	_, err := Open(Request{Path: filepath.Join(t.TempDir(), "missing.png")}, nil)
	if !errors.Is(err, ErrNoSource) || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrNoSource wrapping the load error, got %v", err)
	}
}

func stubGrabbers(t *testing.T, screen func() (*Source, error), area func(image.Rectangle) (*Source, error)) {
	t.Helper()
	oldScreen, oldArea := grabScreen, grabArea
	t.Cleanup(func() { grabScreen, grabArea = oldScreen, oldArea })
	grabScreen, grabArea = screen, area
}

func TestOpen_ScreenAreaUsesRectGrab(t *testing.T) {
	var got image.Rectangle
	stubGrabbers(t,
		func() (*Source, error) { return nil, errors.New("full screen grab not expected") },
		func(r image.Rectangle) (*Source, error) {
			got = r
			return &Source{Image: image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy())), Name: "area"}, nil
		},
	)
	want := image.Rect(10, 20, 110, 70)
	src, err := Open(Request{Screen: true, Area: want}, nil)
	if err != nil || src.Name != "area" {
		t.Fatalf("expected the area grab: src=%+v err=%v", src, err)
	}
	if got != want {
		t.Fatalf("grabbed %v, want %v", got, want)
	}
}

func TestOpen_ScreenWithoutArea(t *testing.T) {
	stubGrabbers(t,
		func() (*Source, error) {
			return &Source{Image: image.NewRGBA(image.Rect(0, 0, 2, 2)), Name: "screen"}, nil
		},
		func(image.Rectangle) (*Source, error) { return nil, errors.New("area grab not expected") },
	)
	src, err := Open(Request{Screen: true, Path: "ignored.png"}, nil)
	if err != nil || src.Name != "screen" {
		t.Fatalf("expected the full screen grab: src=%+v err=%v", src, err)
	}
}

func TestParseArea(t *testing.T) {
	tests := []struct {
		in      string
		want    image.Rectangle
		wantErr bool
	}{
		{in: "200x100+10+20", want: image.Rect(10, 20, 210, 120)},
		{in: " 50x40+-30+5 ", want: image.Rect(-30, 5, 20, 45)},
		{in: "0x100+0+0", wantErr: true},
		{in: "200x100", wantErr: true},
		{in: "wide", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseArea(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseArea(%q) err=%v, wantErr=%v", tt.in, err, tt.wantErr)
		}
		if !tt.wantErr && got != tt.want {
			t.Fatalf("ParseArea(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
