package crop

// Edge is a set of crop rectangle edges.
type Edge uint8

const (
	EdgeTop Edge = 1 << iota
	EdgeRight
	EdgeBottom
	EdgeLeft

	// EdgeAll selects every edge. It is used for visibility toggles only and
	// never describes an active drag.
	EdgeAll = EdgeTop | EdgeRight | EdgeBottom | EdgeLeft
)

// Has reports whether every edge in o is also in e.
func (e Edge) Has(o Edge) bool { return o != 0 && e&o == o }

// HandlePart identifies the handle of the crop frame engaged by a pointer.
type HandlePart int

const (
	PartNone HandlePart = iota
	PartTopEdge
	PartRightEdge
	PartBottomEdge
	PartLeftEdge
	PartTopLeft
	PartTopRight
	PartBottomRight
	PartBottomLeft
)

// hitOrder is the fixed precedence used when handle regions overlap.
var hitOrder = [...]HandlePart{
	PartTopEdge, PartBottomEdge, PartRightEdge, PartLeftEdge,
	PartTopLeft, PartTopRight, PartBottomLeft, PartBottomRight,
}

// Parts lists every handle in hit-test priority order.
func Parts() []HandlePart { return append([]HandlePart(nil), hitOrder[:]...) }

// Edges returns the edges moved when p is dragged. Corners are the union of
// their two adjacent edges.
func (p HandlePart) Edges() Edge {
	switch p {
	case PartTopEdge:
		return EdgeTop
	case PartRightEdge:
		return EdgeRight
	case PartBottomEdge:
		return EdgeBottom
	case PartLeftEdge:
		return EdgeLeft
	case PartTopLeft:
		return EdgeTop | EdgeLeft
	case PartTopRight:
		return EdgeTop | EdgeRight
	case PartBottomRight:
		return EdgeBottom | EdgeRight
	case PartBottomLeft:
		return EdgeBottom | EdgeLeft
	default:
		return 0
	}
}

// IsCorner reports whether p is one of the four corners.
func (p HandlePart) IsCorner() bool {
	switch p {
	case PartTopLeft, PartTopRight, PartBottomRight, PartBottomLeft:
		return true
	}
	return false
}

func (p HandlePart) String() string {
	switch p {
	case PartNone:
		return "none"
	case PartTopEdge:
		return "top"
	case PartRightEdge:
		return "right"
	case PartBottomEdge:
		return "bottom"
	case PartLeftEdge:
		return "left"
	case PartTopLeft:
		return "top-left"
	case PartTopRight:
		return "top-right"
	case PartBottomRight:
		return "bottom-right"
	case PartBottomLeft:
		return "bottom-left"
	default:
		return "unknown"
	}
}
