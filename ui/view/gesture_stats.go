package view

import (
	"fmt"
	"time"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// GestureStats shows how many drags were made and how long they took.
type GestureStats interface {
	SetGestures(count int, gesture, total time.Duration)
}

type gestureStats struct {
	countLbl *LabelWidget
	lastLbl  *LabelWidget
	totalLbl *LabelWidget
}

// NewGestureStats creates the three labels in parent starting at (row, startCol).
// If parent is nil, labels are positioned relative to the App root.
func NewGestureStats(parent *FrameWidget, row, startCol int) GestureStats {
	s := &gestureStats{countLbl: Label(Width(12)), lastLbl: Label(Width(14)), totalLbl: Label(Width(14))}
	for i, l := range []*LabelWidget{s.countLbl, s.lastLbl, s.totalLbl} {
		if parent != nil {
			Grid(l, In(parent), Row(row), Column(startCol+i), Sticky("w"), Padx("0.2m"))
		} else {
			Grid(l, Row(row), Column(startCol+i), Sticky("w"), Padx("0.2m"))
		}
	}
	s.SetGestures(0, 0, 0)
	return s
}

func (s *gestureStats) SetGestures(count int, gesture, total time.Duration) {
	if s == nil || s.countLbl == nil {
		return
	}
	s.countLbl.Configure(Txt(fmt.Sprintf("Drags: %d", count)))
	s.lastLbl.Configure(Txt("Last: " + clock(gesture)))
	s.totalLbl.Configure(Txt("Total: " + clock(total)))
}

// clock formats d as mm:ss.t
func clock(d time.Duration) string {
	tenths := int(d / (100 * time.Millisecond))
	return fmt.Sprintf("%02d:%02d.%d", tenths/600, (tenths/10)%60, tenths%10)
}
