package crop

// CornerFrame returns the touch rectangle of a corner handle: a box of
// CornerTouchSize centered on the matching corner of rect. Non-corner parts
// yield the zero Rect.
func CornerFrame(part HandlePart, rect Rect, m Metrics) Rect {
	var c Point
	switch part {
	case PartTopLeft:
		c = Point{X: rect.MinX(), Y: rect.MinY()}
	case PartTopRight:
		c = Point{X: rect.MaxX(), Y: rect.MinY()}
	case PartBottomRight:
		c = Point{X: rect.MaxX(), Y: rect.MaxY()}
	case PartBottomLeft:
		c = Point{X: rect.MinX(), Y: rect.MaxY()}
	default:
		return Rect{}
	}
	s := m.CornerTouchSize
	return Rect{X: c.X - s.Width/2, Y: c.Y - s.Height/2, Width: s.Width, Height: s.Height}
}

// EdgeFrame returns the touch strip of an edge handle. The strip runs between
// the centers of the two adjacent corner frames and is centered on the edge
// line, so it overlaps both corner frames. Non-edge parts yield the zero Rect.
func EdgeFrame(part HandlePart, rect Rect, m Metrics) Rect {
	h, v := m.EdgeTouchThickness.Horizontal, m.EdgeTouchThickness.Vertical
	switch part {
	case PartTopEdge:
		return Rect{X: rect.MinX(), Y: rect.MinY() - h/2, Width: rect.MaxX() - rect.MinX(), Height: h}
	case PartBottomEdge:
		return Rect{X: rect.MinX(), Y: rect.MaxY() - h/2, Width: rect.MaxX() - rect.MinX(), Height: h}
	case PartLeftEdge:
		return Rect{X: rect.MinX() - v/2, Y: rect.MinY(), Width: v, Height: rect.MaxY() - rect.MinY()}
	case PartRightEdge:
		return Rect{X: rect.MaxX() - v/2, Y: rect.MinY(), Width: v, Height: rect.MaxY() - rect.MinY()}
	default:
		return Rect{}
	}
}

// HandleFrame returns the touch region of any handle.
func HandleFrame(part HandlePart, rect Rect, m Metrics) Rect {
	if part.IsCorner() {
		return CornerFrame(part, rect, m)
	}
	return EdgeFrame(part, rect, m)
}

// Handle pairs a handle with its touch region.
type Handle struct {
	Part  HandlePart
	Frame Rect
}

// HandleFrames returns all eight touch regions in hit-test priority order.
func HandleFrames(rect Rect, m Metrics) []Handle {
	out := make([]Handle, 0, len(hitOrder))
	for _, p := range hitOrder {
		out = append(out, Handle{Part: p, Frame: HandleFrame(p, rect, m)})
	}
	return out
}

// HandleVisual returns the filled rectangles a renderer draws for a handle.
// Edges are a single line just outside the crop rectangle, extended by the
// normal line width at both ends; corners are an L-shaped bracket of two arms.
func HandleVisual(part HandlePart, rect Rect, m Metrics, highlighted bool) []Rect {
	if part.IsCorner() {
		size, lw := m.CornerSize.Normal, m.CornerLineWidth.Normal
		if highlighted {
			size, lw = m.CornerSize.Highlighted, m.CornerLineWidth.Highlighted
		}
		e := part.Edges()
		ox, oy := rect.MinX()-lw, rect.MinY()-lw
		hx, vy := ox, oy
		if e.Has(EdgeRight) {
			ox = rect.MaxX() + lw
			hx = ox - size
		}
		if e.Has(EdgeBottom) {
			oy = rect.MaxY() + lw
			vy = oy - size
		}
		vx, hy := ox, oy
		if e.Has(EdgeRight) {
			vx = ox - lw
		}
		if e.Has(EdgeBottom) {
			hy = oy - lw
		}
		return []Rect{
			{X: hx, Y: hy, Width: size, Height: lw},
			{X: vx, Y: vy, Width: lw, Height: size},
		}
	}

	w := m.EdgeLineWidth.Normal
	if highlighted {
		w = m.EdgeLineWidth.Highlighted
	}
	ext := m.EdgeLineWidth.Normal
	width, height := rect.MaxX()-rect.MinX(), rect.MaxY()-rect.MinY()
	switch part {
	case PartTopEdge:
		return []Rect{{X: rect.MinX() - ext, Y: rect.MinY() - w, Width: width + 2*ext, Height: w}}
	case PartBottomEdge:
		return []Rect{{X: rect.MinX() - ext, Y: rect.MaxY(), Width: width + 2*ext, Height: w}}
	case PartLeftEdge:
		return []Rect{{X: rect.MinX() - w, Y: rect.MinY() - ext, Width: w, Height: height + 2*ext}}
	case PartRightEdge:
		return []Rect{{X: rect.MaxX(), Y: rect.MinY() - ext, Width: w, Height: height + 2*ext}}
	}
	return nil
}

// Line is a segment between two points.
type Line struct {
	From, To Point
}

// GridLines returns the interior guide lines of rect, evenly dividing it into
// GridLines.Horizontal+1 rows and GridLines.Vertical+1 columns.
// Horizontal lines come first.
func GridLines(rect Rect, m Metrics) []Line {
	nh, nv := m.GridLines.Horizontal, m.GridLines.Vertical
	if nh < 0 {
		nh = 0
	}
	if nv < 0 {
		nv = 0
	}
	out := make([]Line, 0, nh+nv)
	minX, minY, maxX, maxY := rect.MinX(), rect.MinY(), rect.MaxX(), rect.MaxY()
	for i := 0; i < nh; i++ {
		y := minY + (maxY-minY)*float64(i+1)/float64(nh+1)
		out = append(out, Line{From: Point{X: minX, Y: y}, To: Point{X: maxX, Y: y}})
	}
	for i := 0; i < nv; i++ {
		x := minX + (maxX-minX)*float64(i+1)/float64(nv+1)
		out = append(out, Line{From: Point{X: x, Y: minY}, To: Point{X: x, Y: maxY}})
	}
	return out
}
