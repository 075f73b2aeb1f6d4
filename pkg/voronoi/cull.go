package voronoi

import (
	"github.com/0x0FACED/go-bisect/pkg/logger"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// cellBuilder holds the working set of one site: its bisectors and its own copy of the bound.
type cellBuilder struct {
	site int
	at   Vertex
	segs []*segment
	tol  tolerance
	log  *logger.ZapLogger
}

func newCellBuilder(site int, at Vertex, bis []Line, bound []Line, tol tolerance, log *logger.ZapLogger) *cellBuilder {
	b := &cellBuilder{
		site: site,
		at:   at,
		segs: make([]*segment, 0, len(bis)+len(bound)),
		tol:  tol,
		log:  log,
	}
	for k, l := range bis {
		peer := k
		if k >= site {
			peer++
		}
		b.segs = append(b.segs, newBisector(peer, l))
	}
	for side, l := range bound {
		b.segs = append(b.segs, newSide(side, l))
	}
	return b
}

// seed picks the segment closest to the site and, on it, the intersection closest to the site.
// The foot of the perpendicular from the site to the nearest line always lies on the cell
// boundary, so the nearest intersection on that line is a cell vertex.
func (b *cellBuilder) seed() (*segment, *intersection, error) {
	seg := lo.MinBy(b.segs, func(s, cur *segment) bool {
		return b.at.DistanceToLine(s.line) < b.at.DistanceToLine(cur.line)
	})
	if seg == nil || len(seg.intrs) == 0 {
		return nil, nil, errors.Wrapf(ErrNoSeed, "nearest line %v has no intersections", seg)
	}
	x := lo.MinBy(seg.intrs, func(x, cur *intersection) bool {
		return b.at.Distance(x.at) < b.at.Distance(cur.at)
	})
	return seg, x, nil
}

// trim clips seg to the half-plane of the segment meeting it at x that contains the site.
// The end lying further on the far side is moved onto x, so the two segments meeting at x
// share a bit-identical endpoint. Intersections of seg strictly outside the half-plane are
// detached from both of their segments.
func (b *cellBuilder) trim(seg *segment, x *intersection) {
	ref := x.other(seg).carrier
	sign := 1.0
	if ref.side(b.at) < 0 {
		sign = -1
	}

	if sign*ref.side(seg.line.End) < sign*ref.side(seg.line.Start) {
		seg.line = seg.line.withEnd(x.at)
	} else {
		seg.line = seg.line.withStart(x.at)
	}

	var outside []*intersection
	for _, y := range seg.intrs {
		if y != x && !ref.sameSide(y.at, b.at, b.tol.geom) {
			outside = append(outside, y)
		}
	}
	for _, y := range outside {
		y.remove()
	}
}

// clip trims seg by every segment crossing it at v and returns those crossings.
// With only two lines through v this is a single trim.
func (b *cellBuilder) clip(seg *segment, v Vertex) []*intersection {
	here := seg.at(v)
	for _, x := range here {
		b.trim(seg, x)
	}
	return here
}

// nearest returns the intersection of seg closest to v that is not located at v.
func nearest(seg *segment, v Vertex) *intersection {
	return lo.MinBy(lo.Reject(seg.intrs, func(y *intersection, _ int) bool {
		return y.at == v
	}), func(y, cur *intersection) bool {
		return y.at.Distance(v) < cur.at.Distance(v)
	})
}

type walkStep struct {
	seg *segment
	// pivot is the cell vertex the segment was reached through.
	pivot *intersection
}

// walk runs the culling walk from the seed: depth first over the intersection graph, where
// segments are nodes and intersections are edges. Every visited segment is clipped at the
// vertex it was reached through and at the next vertex along it, then marked complete.
// The boundary is a closed loop, so the walk stops when it meets a complete segment.
//
// Where more than two lines meet at a vertex, a line that only touches the cell there is
// clipped to a point by the others. It is dropped and the walk goes on through the rest
// of the lines at that vertex.
func (b *cellBuilder) walk(seed *segment, x *intersection) ([]Line, error) {
	var lines []Line
	stack := []walkStep{{seg: seed, pivot: x}}

	push := func(seg *segment, xs []*intersection) {
		for _, y := range xs {
			if o := y.other(seg); !o.complete {
				stack = append(stack, walkStep{seg: o, pivot: y})
			}
		}
	}

	for len(stack) > 0 {
		step := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		seg := step.seg
		if seg.complete {
			continue
		}

		v := step.pivot.at
		here := b.clip(seg, v)
		if !lo.Contains(here, step.pivot) {
			here = append(here, step.pivot)
		}
		seg.complete = true
		if seg.degenerate(b.tol.snap) {
			b.log.Debug("[v-cull] Segment touches the cell at a vertex only",
				zap.Int("site", b.site),
				zap.Stringer("segment", seg),
				zap.Stringer("vertex", v),
			)
			push(seg, here)
			continue
		}

		next := nearest(seg, v)
		if next == nil {
			return nil, errors.Wrapf(ErrInsufficientReach, "%v ends at %v with no further intersection", seg, v)
		}
		there := b.clip(seg, next.at)
		lines = append(lines, seg.line)

		b.log.Debug("[v-cull] Segment complete",
			zap.Int("site", b.site),
			zap.Stringer("segment", seg),
			zap.Stringer("line", seg.line),
		)

		// the pivot side is pushed last so it is walked first
		push(seg, there)
		push(seg, here)
	}
	return lines, nil
}

// buildCell runs the whole per-site pipeline: index, seed, walk, assemble.
// at, bis and bound share one frame, which tol is sized for.
func buildCell(site int, at Vertex, bis []Line, bound []Line, tol tolerance, cfg Config, log *logger.ZapLogger) (Cell, error) {
	b := newCellBuilder(site, at, bis, bound, tol, log)

	n := index(b.segs, tol)
	log.Debug("[v-cull] Intersections indexed", zap.Int("site", site), zap.Int("segments", len(b.segs)), zap.Int("intersections", n))

	seed, x, err := b.seed()
	if err != nil {
		return Cell{}, err
	}
	log.Debug("[v-cull] Seed", zap.Int("site", site), zap.Stringer("segment", seed), zap.Stringer("vertex", x.at))

	lines, err := b.walk(seed, x)
	if err != nil {
		return Cell{}, err
	}

	ordered, err := orderLines(lines, cfg.ChainTolerance)
	if err != nil {
		return Cell{}, err
	}
	return Cell{Site: site, Lines: ordered}, nil
}
