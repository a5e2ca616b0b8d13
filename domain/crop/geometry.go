// Package crop implements the crop rectangle geometry, handle hit-testing and
// the pointer interaction state machine of an image cropping overlay.
//
// The coordinate space has the origin in the top left corner with the axes
// extending right and down. All values are display units of the host surface.
package crop

import "math"

// Point is a position in overlay coordinates.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns the vector p+q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Sub returns the vector p-q.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Size is a width and height pair.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle given by its origin and size.
// It contains the points (X, Y) where MinX <= X < MaxX, MinY <= Y < MaxY.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// R is shorthand for Rect{X: x, Y: y, Width: w, Height: h}.
func R(x, y, w, h float64) Rect { return Rect{X: x, Y: y, Width: w, Height: h} }

func (r Rect) MinX() float64 { return math.Min(r.X, r.X+r.Width) }
func (r Rect) MinY() float64 { return math.Min(r.Y, r.Y+r.Height) }
func (r Rect) MaxX() float64 { return math.Max(r.X, r.X+r.Width) }
func (r Rect) MaxY() float64 { return math.Max(r.Y, r.Y+r.Height) }
func (r Rect) MidX() float64 { return r.X + r.Width/2 }
func (r Rect) MidY() float64 { return r.Y + r.Height/2 }

// Origin returns the top left corner.
func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// Center returns the midpoint of r.
func (r Rect) Center() Point { return Point{X: r.MidX(), Y: r.MidY()} }

// Empty reports whether the rectangle contains no points.
func (r Rect) Empty() bool { return r.Width == 0 || r.Height == 0 }

// Contains reports whether p lies within r. Negative sizes are standardized
// first; an empty rectangle contains nothing.
func (r Rect) Contains(p Point) bool {
	if r.Empty() {
		return false
	}
	return r.MinX() <= p.X && p.X < r.MaxX() &&
		r.MinY() <= p.Y && p.Y < r.MaxY()
}

// Within reports whether r lies entirely inside bound, allowing eps of
// floating point slack on every side.
func (r Rect) Within(bound Rect, eps float64) bool {
	return r.MinX() >= bound.MinX()-eps && r.MinY() >= bound.MinY()-eps &&
		r.MaxX() <= bound.MaxX()+eps && r.MaxY() <= bound.MaxY()+eps
}

// Inset returns r shrunk by d on every side. Sizes never go below zero.
func (r Rect) Inset(d float64) Rect {
	out := Rect{X: r.X + d, Y: r.Y + d, Width: r.Width - 2*d, Height: r.Height - 2*d}
	if out.Width < 0 {
		out.X, out.Width = r.MidX(), 0
	}
	if out.Height < 0 {
		out.Y, out.Height = r.MidY(), 0
	}
	return out
}

// clampSize forces non-negative dimensions before a rectangle is published.
func (r Rect) clampSize() Rect {
	if r.Width < 0 || math.IsNaN(r.Width) {
		r.Width = 0
	}
	if r.Height < 0 || math.IsNaN(r.Height) {
		r.Height = 0
	}
	return r
}
