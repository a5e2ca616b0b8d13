package crop

// Anchor is the pointer position and crop rectangle captured when a drag
// starts. Free-form stick points are measured from the anchor, not from the
// moving rectangle.
type Anchor struct {
	Touch Point
	Rect  Rect
}

// resizeFixed grows or shrinks cur by a single size delta derived from the
// pointer delta, keeping height/width equal to hpw. The edges opposite the
// dragged handle stay put; for a single edge the perpendicular axis grows
// symmetrically around its center.
//
// If the new width reaches the minimum the rectangle is pinned to the minimum
// width at cur's origin; otherwise the same applies to the height. Width is
// checked first and wins when both are violated.
func resizeFixed(cur Rect, delta Point, part HandlePart, hpw float64, minSize Size) Rect {
	e := part.Edges()
	dx, dy := delta.X, delta.Y
	out := cur
	var d float64
	switch {
	case e.Has(EdgeLeft | EdgeTop):
		d = (-dx - dy) / 2
		out.X -= d
		out.Y -= d * hpw
	case e.Has(EdgeRight | EdgeTop):
		d = (dx - dy) / 2
		out.Y -= d * hpw
	case e.Has(EdgeLeft | EdgeBottom):
		d = (-dx + dy) / 2
		out.X -= d
	case e.Has(EdgeRight | EdgeBottom):
		d = (dx + dy) / 2
	case e.Has(EdgeLeft):
		d = -dx
		out.X -= d
		out.Y -= d * hpw / 2
	case e.Has(EdgeTop):
		d = -dy
		out.X -= d / 2
		out.Y -= d * hpw
	case e.Has(EdgeRight):
		d = dx
		out.Y -= d * hpw / 2
	case e.Has(EdgeBottom):
		d = dy
		out.X -= d / 2
	default:
		return cur
	}
	out.Width += d
	out.Height += d * hpw

	if out.Width <= minSize.Width {
		out.X, out.Y = cur.X, cur.Y
		out.Width = minSize.Width
		out.Height = out.Width * hpw
	} else if out.Height <= minSize.Height {
		out.X, out.Y = cur.X, cur.Y
		out.Height = minSize.Height
		out.Width = out.Height / hpw
	}
	return out
}

// resizeFree moves every edge of part independently by the pointer delta.
// Past a stick point, measured from the anchor, an edge is pinned either to
// the bound rectangle or to the minimum size. After a pin the edge no longer
// sits under the pointer, so the result is finally clamped to the bound.
func resizeFree(cur Rect, p, delta Point, part HandlePart, a Anchor, bound Rect, minSize Size) Rect {
	e := part.Edges()
	out := cur
	if e.Has(EdgeTop) {
		out.Y += delta.Y
		out.Height -= delta.Y
		inEdge := a.Touch.Y - a.Rect.MinY()
		minStick := inEdge + bound.MinY()
		maxStick := inEdge + a.Rect.MaxY() - minSize.Height
		if p.Y > maxStick || out.Height < minSize.Height {
			out.Y = a.Rect.MaxY() - minSize.Height
			out.Height = minSize.Height
		}
		if p.Y < minStick {
			out.Y = bound.MinY()
			out.Height = a.Rect.MaxY() - bound.MinY()
		}
	}
	if e.Has(EdgeRight) {
		out.Width += delta.X
		inEdge := a.Touch.X - a.Rect.MaxX()
		minStick := inEdge + a.Rect.MinX() + minSize.Width
		maxStick := inEdge + bound.MaxX()
		if p.X > maxStick {
			out.Width = bound.MaxX() - out.X
		}
		if p.X < minStick || out.Width < minSize.Width {
			out.Width = minSize.Width
		}
	}
	if e.Has(EdgeBottom) {
		out.Height += delta.Y
		inEdge := a.Touch.Y - a.Rect.MaxY()
		minStick := inEdge + a.Rect.MinY() + minSize.Height
		maxStick := inEdge + bound.MaxY()
		if p.Y > maxStick {
			out.Height = bound.MaxY() - out.Y
		}
		if p.Y < minStick || out.Height < minSize.Height {
			out.Height = minSize.Height
		}
	}
	if e.Has(EdgeLeft) {
		out.X += delta.X
		out.Width -= delta.X
		inEdge := a.Touch.X - a.Rect.MinX()
		minStick := inEdge + bound.MinX()
		maxStick := inEdge + a.Rect.MaxX() - minSize.Width
		if p.X > maxStick || out.Width < minSize.Width {
			out.X = a.Rect.MaxX() - minSize.Width
			out.Width = minSize.Width
		}
		if p.X < minStick {
			out.X = bound.MinX()
			out.Width = a.Rect.MaxX() - bound.MinX()
		}
	}
	return clampEdges(out, e, bound)
}

// clampEdges pulls the moving edges of r back inside bound.
func clampEdges(r Rect, e Edge, bound Rect) Rect {
	if e.Has(EdgeTop) && r.Y < bound.MinY() {
		r.Height -= bound.MinY() - r.Y
		r.Y = bound.MinY()
	}
	if e.Has(EdgeLeft) && r.X < bound.MinX() {
		r.Width -= bound.MinX() - r.X
		r.X = bound.MinX()
	}
	if e.Has(EdgeRight) && r.MaxX() > bound.MaxX() {
		r.Width = bound.MaxX() - r.X
	}
	if e.Has(EdgeBottom) && r.MaxY() > bound.MaxY() {
		r.Height = bound.MaxY() - r.Y
	}
	return r
}
