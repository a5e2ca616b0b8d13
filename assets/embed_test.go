package assets

import (
	"bytes"
	"image/png"
	"testing"
)

func TestSample_Decodes(t *testing.T) {
	data, err := Sample()
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 480 || b.Dy() != 320 {
		t.Fatalf("unexpected sample bounds %v", b)
	}
}
