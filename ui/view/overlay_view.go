package view

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"

	"github.com/soocke/cropper-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// surfaceInset is the distance from the label edge to the first image pixel.
const surfaceInset = 1

// OverlayView shows rendered overlay frames in a fixed size viewport.
type OverlayView interface {
	ShowFrame(png []byte)
	Reset()
	// Surface is the widget that receives pointer and gesture key events.
	Surface() *LabelWidget
	// ToViewport converts widget coordinates of an event to viewport units.
	ToViewport(x, y float64) (float64, float64)
}

type overlayView struct {
	label     *LabelWidget
	w, h      int
	prevPhoto *Img // disposed before being replaced so old frames are not retained
}

// NewOverlayView creates the viewport label in column 0 of the given grid rows
// and shows a blank placeholder of w×h.
func NewOverlayView(row, rowspan, w, h int) OverlayView {
	v := &overlayView{w: max(w, 1), h: max(h, 1)}
	v.prevPhoto = NewPhoto(Data(v.placeholder()))
	v.label = Label(Image(v.prevPhoto), Borderwidth(surfaceInset), Relief("sunken"), Padx(0), Pady(0), Highlightthickness(0), Takefocus(1))
	// Kept at its natural size so the image is not offset inside the label.
	Grid(v.label, Row(row), Column(0), Rowspan(max(rowspan, 1)), Sticky("nw"), Padx("0.4m"), Pady("0.4m"))
	return v
}

func (v *overlayView) placeholder() []byte {
	img := image.NewRGBA(image.Rect(0, 0, v.w, v.h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{0x33, 0x41, 0x55, 0xff}), image.Point{}, draw.Src)
	return images.EncodePNG(img)
}

func (v *overlayView) ShowFrame(png []byte) {
	if v == nil || v.label == nil || len(png) == 0 {
		return
	}
	if v.prevPhoto != nil {
		v.prevPhoto.Delete()
	}
	v.prevPhoto = NewPhoto(Data(png))
	v.label.Configure(Image(v.prevPhoto))
}

func (v *overlayView) Reset() { v.ShowFrame(v.placeholder()) }

func (v *overlayView) Surface() *LabelWidget { return v.label }

func (v *overlayView) ToViewport(x, y float64) (float64, float64) {
	return x - surfaceInset, y - surfaceInset
}
