package images

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/draw"
)

// Backdrop is a source image prepared for display: Sharp is the image scaled
// to the display size, Shaded the same image blurred and darkened, drawn
// outside the crop window.
type Backdrop struct {
	Sharp  *image.RGBA
	Shaded *image.RGBA
}

// Empty reports whether the backdrop holds no pixels.
func (b Backdrop) Empty() bool { return b.Sharp == nil || b.Sharp.Bounds().Empty() }

// BackdropKey identifies a prepared backdrop. Source must change whenever the
// underlying image does.
type BackdropKey struct {
	Source        string
	Width, Height int
	Sigma, Dim    float64
}

// PrepareBackdrop scales src into a w x h box and derives the shaded variant.
// sigma is the gaussian blur radius (0 disables blur), dim the opacity of the
// black layer put over the blurred image.
func PrepareBackdrop(src image.Image, w, h int, sigma, dim float64) Backdrop {
	if src == nil {
		return Backdrop{}
	}
	sharp := toRGBA(ScaleToFit(src, w, h))
	var shaded *image.RGBA
	if sigma > 0 {
		shaded = toRGBA(imaging.Blur(sharp, sigma))
	} else {
		shaded = toRGBA(imaging.Clone(sharp))
	}
	if dim > 0 {
		a := uint8(min(dim, 1)*255 + 0.5)
		draw.Draw(shaded, shaded.Bounds(), image.NewUniform(color.NRGBA{A: a}), image.Point{}, draw.Over)
	}
	return Backdrop{Sharp: sharp, Shaded: shaded}
}

// BackdropCache keeps recently prepared backdrops so that redraws during a
// drag only composite, and toggling between viewport sizes does not blur again.
// Safe for concurrent use.
type BackdropCache struct {
	cache *lru.Cache[BackdropKey, Backdrop]
}

// NewBackdropCache returns a cache holding up to size backdrops.
func NewBackdropCache(size int) (*BackdropCache, error) {
	if size < 1 {
		size = 1
	}
	c, err := lru.New[BackdropKey, Backdrop](size)
	if err != nil {
		return nil, err
	}
	return &BackdropCache{cache: c}, nil
}

// Get returns the backdrop for key, preparing it from src on a miss.
// A nil cache prepares every time.
func (c *BackdropCache) Get(key BackdropKey, src image.Image) Backdrop {
	if c == nil || c.cache == nil {
		return PrepareBackdrop(src, key.Width, key.Height, key.Sigma, key.Dim)
	}
	if b, ok := c.cache.Get(key); ok {
		return b
	}
	b := PrepareBackdrop(src, key.Width, key.Height, key.Sigma, key.Dim)
	if !b.Empty() {
		c.cache.Add(key, b)
	}
	return b
}

// Len returns the number of cached backdrops.
func (c *BackdropCache) Len() int {
	if c == nil || c.cache == nil {
		return 0
	}
	return c.cache.Len()
}

// Purge drops every cached backdrop, e.g. after the source image changed.
func (c *BackdropCache) Purge() {
	if c != nil && c.cache != nil {
		c.cache.Purge()
	}
}
