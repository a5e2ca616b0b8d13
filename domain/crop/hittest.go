package crop

// HitPart returns the handle whose touch region contains p, or PartNone.
//
// Regions are tested in a fixed order: top, bottom, right and left edges, then
// the top-left, top-right, bottom-left and bottom-right corners. Edge strips
// overlap the corner boxes, so a point inside both resolves to the edge.
func HitPart(p Point, rect Rect, m Metrics) HandlePart {
	for _, part := range hitOrder {
		if HandleFrame(part, rect, m).Contains(p) {
			return part
		}
	}
	return PartNone
}
