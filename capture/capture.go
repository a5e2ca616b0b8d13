package capture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/dustin/go-humanize"
	"github.com/vova616/screenshot"
)

// ErrEmptyImage is returned when a source decodes to an image without pixels.
var ErrEmptyImage = errors.New("image has no pixels")

// Source is an image to be cropped together with where it came from.
type Source struct {
	Image image.Image
	Name  string
	Bytes int64 // encoded size for files, pixel buffer size for screen grabs
}

// Aspect returns height divided by width of the source image, or 0 if unknown.
func (s *Source) Aspect() float64 {
	if s == nil || s.Image == nil {
		return 0
	}
	b := s.Image.Bounds()
	if b.Dx() <= 0 {
		return 0
	}
	return float64(b.Dy()) / float64(b.Dx())
}

// Describe returns a one line summary for the status bar.
func (s *Source) Describe() string {
	if s == nil || s.Image == nil {
		return "no image"
	}
	b := s.Image.Bounds()
	return fmt.Sprintf("%s · %d×%d · %s", s.Name, b.Dx(), b.Dy(), humanize.Bytes(uint64(max(s.Bytes, 0))))
}

// Load opens an image file. EXIF orientation is applied so the displayed
// image matches what the camera intended.
func Load(path string) (*Source, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("open %s: %w", path, ErrEmptyImage)
	}
	return &Source{Image: img, Name: filepath.Base(path), Bytes: st.Size()}, nil
}

// Decode reads an encoded image held in memory, e.g. an embedded asset.
func Decode(name string, data []byte) (*Source, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("decode %s: %w", name, ErrEmptyImage)
	}
	return &Source{Image: img, Name: name, Bytes: int64(len(data))}, nil
}

// Grab returns a screen capture of the current active monitor.
func Grab() (*Source, error) {
	img, err := screenshot.CaptureScreen()
	if err != nil {
		return nil, fmt.Errorf("capture screen: %w", err)
	}
	return &Source{Image: img, Name: "screen", Bytes: int64(len(img.Pix))}, nil
}

// GrabRect captures only the given area of the screen. The area is
// intersected with the screen bounds first.
func GrabRect(area image.Rectangle) (*Source, error) {
	screen, err := screenshot.ScreenRect()
	if err != nil {
		return nil, fmt.Errorf("screen bounds: %w", err)
	}
	area = area.Intersect(screen)
	if area.Empty() {
		return nil, fmt.Errorf("capture %v: %w", area, ErrEmptyImage)
	}
	img, err := screenshot.CaptureRect(area)
	if err != nil {
		return nil, fmt.Errorf("capture %v: %w", area, err)
	}
	return &Source{Image: img, Name: fmt.Sprintf("screen %dx%d+%d+%d", area.Dx(), area.Dy(), area.Min.X, area.Min.Y), Bytes: int64(len(img.Pix))}, nil
}
