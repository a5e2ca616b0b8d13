package images

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/soocke/cropper-go/domain/crop"
)

// Palette holds the overlay colors.
type Palette struct {
	Background color.Color // viewport outside the image
	Handle     color.Color
	Highlight  color.Color // handles of the engaged part
	Grid       color.Color
}

// DefaultPalette is used for nil palette fields.
var DefaultPalette = Palette{
	Background: color.RGBA{0x0f, 0x17, 0x2a, 0xff},
	Handle:     color.RGBA{0xff, 0xff, 0xff, 0xff},
	Highlight:  color.RGBA{0x3b, 0x82, 0xf6, 0xff},
	Grid:       color.RGBA{0xff, 0xff, 0xff, 0x80},
}

// ComposeInput is everything needed to render one overlay frame.
type ComposeInput struct {
	Width, Height int // viewport size
	Backdrop      Backdrop
	Placed        crop.Rect // where the backdrop is drawn, see Placement
	Crop          crop.Rect
	Metrics       crop.Metrics
	Part          crop.HandlePart
	Visible       bool
	Palette       Palette
}

// ShowGrid reports whether grid lines are drawn: always when configured,
// otherwise only while a handle is engaged.
func (in ComposeInput) ShowGrid() bool {
	return in.Metrics.AlwaysShowGrid || in.Part != crop.PartNone
}

// Compose renders the viewport: the shaded backdrop, the sharp image inside
// the crop window, grid lines and the eight handles. A hidden overlay renders
// the plain image.
func Compose(in ComposeInput) *image.RGBA {
	w, h := max(in.Width, 1), max(in.Height, 1)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	pal := in.Palette.withDefaults()
	draw.Draw(dst, dst.Bounds(), image.NewUniform(pal.Background), image.Point{}, draw.Src)
	if in.Backdrop.Empty() {
		return dst
	}
	placed := pixelRect(in.Placed)
	if !in.Visible || in.Backdrop.Shaded == nil {
		draw.Draw(dst, placed, in.Backdrop.Sharp, image.Point{}, draw.Src)
		return dst
	}
	draw.Draw(dst, placed, in.Backdrop.Shaded, image.Point{}, draw.Src)
	window := pixelRect(in.Crop).Intersect(placed)
	if !window.Empty() {
		draw.Draw(dst, window, in.Backdrop.Sharp, window.Min.Sub(placed.Min), draw.Src)
	}

	if in.ShowGrid() {
		grid := image.NewUniform(pal.Grid)
		for _, l := range crop.GridLines(in.Crop, in.Metrics) {
			r := pixelRect(crop.R(l.From.X, l.From.Y, l.To.X-l.From.X, l.To.Y-l.From.Y))
			if r.Dx() == 0 {
				r.Max.X++
			}
			if r.Dy() == 0 {
				r.Max.Y++
			}
			draw.Draw(dst, r, grid, image.Point{}, draw.Over)
		}
	}

	normal, hi := image.NewUniform(pal.Handle), image.NewUniform(pal.Highlight)
	for _, p := range crop.Parts() {
		highlighted := Highlighted(in.Part, p)
		fill := normal
		if highlighted {
			fill = hi
		}
		for _, r := range crop.HandleVisual(p, in.Crop, in.Metrics, highlighted) {
			draw.Draw(dst, pixelRect(r), fill, image.Point{}, draw.Over)
		}
	}
	return dst
}

// Highlighted reports whether handle p is drawn highlighted while active is
// engaged. A corner lights up together with its two edges.
func Highlighted(active, p crop.HandlePart) bool {
	return active != crop.PartNone && active.Edges().Has(p.Edges())
}

func (p Palette) withDefaults() Palette {
	if p.Background == nil {
		p.Background = DefaultPalette.Background
	}
	if p.Handle == nil {
		p.Handle = DefaultPalette.Handle
	}
	if p.Highlight == nil {
		p.Highlight = DefaultPalette.Highlight
	}
	if p.Grid == nil {
		p.Grid = DefaultPalette.Grid
	}
	return p
}
