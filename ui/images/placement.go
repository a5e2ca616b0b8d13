package images

import (
	"image"
	"math"

	"github.com/soocke/cropper-go/domain/crop"
)

// Placement returns where an image with bounds src is drawn inside a
// viewW x viewH viewport: scaled to fit the viewport shrunk by inset on every
// side and centered. The result doubles as the overlay's bound rectangle.
func Placement(src image.Rectangle, viewW, viewH int, inset float64) crop.Rect {
	pad := int(math.Ceil(max(inset, 0)))
	w, h := FitSize(src.Dx(), src.Dy(), viewW-2*pad, viewH-2*pad)
	return crop.R(float64((viewW-w)/2), float64((viewH-h)/2), float64(w), float64(h))
}

// SourceRect maps a crop rectangle in display coordinates to pixels of the
// source image, given where the image is placed on the display. The result is
// clamped to bounds and is at least 1x1.
func SourceRect(r, placed crop.Rect, bounds image.Rectangle) image.Rectangle {
	if placed.Width <= 0 || placed.Height <= 0 || bounds.Empty() {
		return image.Rectangle{}
	}
	sx := float64(bounds.Dx()) / placed.Width
	sy := float64(bounds.Dy()) / placed.Height
	x0 := bounds.Min.X + int(math.Round((r.MinX()-placed.X)*sx))
	y0 := bounds.Min.Y + int(math.Round((r.MinY()-placed.Y)*sy))
	x1 := bounds.Min.X + int(math.Round((r.MaxX()-placed.X)*sx))
	y1 := bounds.Min.Y + int(math.Round((r.MaxY()-placed.Y)*sy))
	x0 = clampInt(x0, bounds.Min.X, bounds.Max.X-1)
	y0 = clampInt(y0, bounds.Min.Y, bounds.Max.Y-1)
	x1 = clampInt(x1, x0+1, bounds.Max.X)
	y1 = clampInt(y1, y0+1, bounds.Max.Y)
	return image.Rect(x0, y0, x1, y1)
}

// Normalize expresses r relative to placed, in 0..1 units.
func Normalize(r, placed crop.Rect) (x, y, w, h float64) {
	if placed.Width <= 0 || placed.Height <= 0 {
		return 0, 0, 0, 0
	}
	return (r.X - placed.X) / placed.Width, (r.Y - placed.Y) / placed.Height,
		r.Width / placed.Width, r.Height / placed.Height
}

// Denormalize is the inverse of Normalize.
func Denormalize(x, y, w, h float64, placed crop.Rect) crop.Rect {
	return crop.R(placed.X+x*placed.Width, placed.Y+y*placed.Height, w*placed.Width, h*placed.Height)
}

// InitialCrop returns the crop rectangle to start with: the saved normalized
// rectangle when it lies inside placed and is at least minSize, otherwise the
// whole placed image.
func InitialCrop(placed crop.Rect, x, y, w, h float64, minSize crop.Size) crop.Rect {
	if w <= 0 || h <= 0 {
		return placed
	}
	r := Denormalize(x, y, w, h, placed)
	if !r.Within(placed, 1e-6) || r.Width < minSize.Width || r.Height < minSize.Height {
		return placed
	}
	return r
}

// pixelRect rounds r to the pixel grid.
func pixelRect(r crop.Rect) image.Rectangle {
	return image.Rect(
		int(math.Round(r.MinX())), int(math.Round(r.MinY())),
		int(math.Round(r.MaxX())), int(math.Round(r.MaxY())),
	)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
