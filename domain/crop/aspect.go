package crop

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidRatio is returned by ParseAspectRatio for malformed or
// non-positive ratios.
var ErrInvalidRatio = errors.New("invalid aspect ratio")

type ratioKind uint8

const (
	ratioFree ratioKind = iota
	ratioFixed
	ratioImage
)

// AspectRatio constrains the shape of the crop rectangle. The zero value is Free.
type AspectRatio struct {
	kind ratioKind
	w, h float64
}

var (
	// Free applies no constraint.
	Free = AspectRatio{}
	// ImageRatio locks the crop rectangle to the natural aspect of the image.
	ImageRatio = AspectRatio{kind: ratioImage}
)

// Fixed returns the ratio w:h, e.g. Fixed(16, 9) for a landscape frame.
func Fixed(w, h float64) AspectRatio { return AspectRatio{kind: ratioFixed, w: w, h: h} }

// IsFree reports whether a is unconstrained.
func (a AspectRatio) IsFree() bool { return a.kind == ratioFree }

// Valid reports whether a fixed ratio has positive terms. Free and ImageRatio
// are always valid.
func (a AspectRatio) Valid() bool {
	if a.kind != ratioFixed {
		return true
	}
	return a.w > 0 && a.h > 0
}

// Terms returns the width and height units of a fixed ratio.
func (a AspectRatio) Terms() (w, h float64, ok bool) {
	if a.kind != ratioFixed {
		return 0, 0, false
	}
	return a.w, a.h, true
}

// HeightPerWidth resolves a to height units per width unit. imageAspect is
// the natural image height divided by its width and is only consulted for
// ImageRatio. ok is false for Free.
func (a AspectRatio) HeightPerWidth(imageAspect float64) (ratio float64, ok bool) {
	switch a.kind {
	case ratioFixed:
		return a.h / a.w, true
	case ratioImage:
		return imageAspect, imageAspect > 0
	default:
		return 0, false
	}
}

func (a AspectRatio) String() string {
	switch a.kind {
	case ratioFixed:
		return strconv.FormatFloat(a.w, 'g', -1, 64) + ":" + strconv.FormatFloat(a.h, 'g', -1, 64)
	case ratioImage:
		return "image"
	default:
		return "free"
	}
}

// ParseAspectRatio accepts "free", "image", or "W:H" (also "WxH" and "W/H").
func ParseAspectRatio(s string) (AspectRatio, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "", "free", "custom":
		return Free, nil
	case "image", "original":
		return ImageRatio, nil
	}
	i := strings.IndexAny(s, ":x/")
	if i <= 0 || i == len(s)-1 {
		return Free, fmt.Errorf("%w: %q", ErrInvalidRatio, s)
	}
	w, err := strconv.ParseFloat(strings.TrimSpace(s[:i]), 64)
	if err != nil {
		return Free, fmt.Errorf("%w: %q: %v", ErrInvalidRatio, s, err)
	}
	h, err := strconv.ParseFloat(strings.TrimSpace(s[i+1:]), 64)
	if err != nil {
		return Free, fmt.Errorf("%w: %q: %v", ErrInvalidRatio, s, err)
	}
	a := Fixed(w, h)
	if !a.Valid() {
		return Free, fmt.Errorf("%w: %q", ErrInvalidRatio, s)
	}
	return a, nil
}

// AspectAdjustedRect derives the crop rectangle for ratio from current. The
// width is kept and the height recomputed, shifting the origin so the
// rectangle stays centered on its previous vertical midpoint. Free returns
// current unchanged.
func AspectAdjustedRect(current Rect, ratio AspectRatio, imageAspect float64) Rect {
	hpw, ok := ratio.HeightPerWidth(imageAspect)
	if !ok {
		return current
	}
	out := current
	out.Height = current.Width * hpw
	out.Y += (current.Height - out.Height) / 2
	return out
}

// FitRect returns the largest rectangle with the given height per width ratio
// that fits in bounds, centered in it. A non-positive ratio returns bounds.
func FitRect(bounds Rect, heightPerWidth float64) Rect {
	if !(heightPerWidth > 0) {
		return bounds
	}
	w := bounds.Width
	h := w * heightPerWidth
	if h > bounds.Height {
		h = bounds.Height
		w = h / heightPerWidth
	}
	return Rect{
		X:      bounds.X + (bounds.Width-w)/2,
		Y:      bounds.Y + (bounds.Height-h)/2,
		Width:  w,
		Height: h,
	}
}
