package voronoi

import (
	"github.com/pkg/errors"
)

// Cell is the region of one site clipped to the bound: a closed loop of lines,
// counterclockwise, each line starting where the previous one ends.
type Cell struct {
	Site  int
	Lines []Line
}

// Vertices returns the corners of the cell in loop order.
func (c Cell) Vertices() []Vertex {
	out := make([]Vertex, len(c.Lines))
	for i, l := range c.Lines {
		out[i] = l.Start
	}
	return out
}

// Area returns the signed area enclosed by the cell, positive for counterclockwise loops.
// It is taken around the first vertex, so far-off coordinates lose no precision.
func (c Cell) Area() float64 {
	if len(c.Lines) == 0 {
		return 0
	}
	o := c.Lines[0].Start.vec()
	var a float64
	for _, l := range c.Lines {
		a += l.Start.vec().Sub(o).Cross(l.End.vec().Sub(o))
	}
	return a / 2
}

// orderLines links lines head to tail into a single closed loop. Lines are never flipped:
// a line is appended when its start matches the tail's end, or prepended when its end
// matches the head's start. A step with no match, or a chain whose ends do not meet,
// means the walk produced a broken boundary.
func orderLines(lines []Line, tol float64) ([]Line, error) {
	if len(lines) == 0 {
		return nil, errors.Wrap(ErrOpenCell, "no lines")
	}

	ordered := make([]Line, 1, len(lines))
	ordered[0] = lines[0]
	rest := append([]Line(nil), lines[1:]...)

	for len(rest) > 0 {
		head, tail := ordered[0], ordered[len(ordered)-1]
		linked := false
		for i, l := range rest {
			switch {
			case tail.End.Eq(l.Start, tol):
				ordered = append(ordered, l)
			case head.Start.Eq(l.End, tol):
				ordered = append([]Line{l}, ordered...)
			default:
				continue
			}
			rest = append(rest[:i], rest[i+1:]...)
			linked = true
			break
		}
		if !linked {
			return nil, errors.Wrapf(ErrOpenCell, "%d of %d lines left unlinked, chain %v..%v",
				len(rest), len(lines), ordered[0].Start, ordered[len(ordered)-1].End)
		}
	}

	if first, last := ordered[0], ordered[len(ordered)-1]; !last.End.Eq(first.Start, tol) {
		return nil, errors.Wrapf(ErrOpenCell, "chain ends at %v, not at its start %v", last.End, first.Start)
	}
	return ordered, nil
}
