package voronoi

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/unixpickle/essentials"
)

var sideNames = [...]string{"bottom", "right", "top", "left"}

// segment is a line under construction, owned by the working set of one site.
// Its Line value is replaced on every clip; the intersection list is the only
// state shared with other segments of the same working set.
type segment struct {
	line Line
	// carrier is the line as built, before any clipping. Side tests use it, so a
	// neighbour clipped down to a point still has a direction.
	carrier Line
	intrs   []*intersection
	// peer is the other site of a bisector, or -1 for a side of the bound.
	peer int
	side int
	// complete is set once the walk has clipped both ends of the segment.
	complete bool
}

func newBisector(peer int, l Line) *segment {
	return &segment{line: l, carrier: l, peer: peer, side: -1}
}

func newSide(side int, l Line) *segment {
	return &segment{line: l, carrier: l, peer: -1, side: side}
}

func (s *segment) String() string {
	if s.peer >= 0 {
		return fmt.Sprintf("bisector(%d)", s.peer)
	}
	return fmt.Sprintf("bound(%s)", sideNames[s.side])
}

// degenerate reports whether clipping has shrunk s to a point, no longer than snap.
func (s *segment) degenerate(snap float64) bool {
	return s.line.Length() <= snap
}

// at returns the intersections of s located exactly at v.
func (s *segment) at(v Vertex) []*intersection {
	return lo.Filter(s.intrs, func(x *intersection, _ int) bool {
		return x.at == v
	})
}

func (s *segment) attach(x *intersection) {
	s.intrs = append(s.intrs, x)
}

func (s *segment) detach(x *intersection) {
	for i, y := range s.intrs {
		if y == x {
			essentials.UnorderedDelete(&s.intrs, i)
			return
		}
	}
}

// intersection is both a vertex and the graph edge joining the two segments that cross there.
type intersection struct {
	at   Vertex
	seg1 *segment
	seg2 *segment
}

// other returns the segment meeting s at x.
func (x *intersection) other(s *segment) *segment {
	if s == x.seg2 {
		return x.seg1
	}
	return x.seg2
}

// remove detaches x from both of its segments.
func (x *intersection) remove() {
	x.seg1.detach(x)
	x.seg2.detach(x)
}
