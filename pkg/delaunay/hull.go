package delaunay

import (
	"math"
	"sort"

	"github.com/0x0FACED/go-bisect/pkg/voronoi"
)

// collinearRatio sizes the turn tolerance to the spread of the sites and to their
// distance from the origin, which bounds the round-off of their coordinates.
const collinearRatio = 1e-12

func cross(o, a, b voronoi.Vertex) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// ConvexHull returns the indices of the sites on the convex hull, counterclockwise,
// starting at the leftmost-lowest site. Sites lying on a hull edge are kept, so
// consecutive indices are always neighbours along the hull.
// It returns nil for fewer than 3 sites and when all sites are collinear.
func ConvexHull(sites []voronoi.Vertex) []int {
	if len(sites) < 3 {
		return nil
	}

	idx := make([]int, len(sites))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		pa, pb := sites[idx[a]], sites[idx[b]]
		if pa.X != pb.X {
			return pa.X < pb.X
		}
		return pa.Y < pb.Y
	})

	tol := turnTolerance(sites)
	if collinear(sites, idx, tol) {
		return nil
	}

	turn := func(h []int, k int) float64 {
		return cross(sites[h[len(h)-2]], sites[h[len(h)-1]], sites[k])
	}

	// Andrew's monotone chain; only clear right turns are popped.
	lower := make([]int, 0, len(idx))
	for _, k := range idx {
		for len(lower) >= 2 && turn(lower, k) < -tol {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, k)
	}

	upper := make([]int, 0, len(idx))
	for i := len(idx) - 1; i >= 0; i-- {
		k := idx[i]
		for len(upper) >= 2 && turn(upper, k) < -tol {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, k)
	}

	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}

func turnTolerance(sites []voronoi.Vertex) float64 {
	lo, hi := sites[0], sites[0]
	var mag float64
	for _, v := range sites {
		lo.X, lo.Y = math.Min(lo.X, v.X), math.Min(lo.Y, v.Y)
		hi.X, hi.Y = math.Max(hi.X, v.X), math.Max(hi.Y, v.Y)
		mag = math.Max(mag, math.Max(math.Abs(v.X), math.Abs(v.Y)))
	}
	extent := lo.Distance(hi)
	return collinearRatio * extent * math.Max(extent, mag)
}

// collinear reports whether all sites lie on the line through the two extremes of sorted.
func collinear(sites []voronoi.Vertex, sorted []int, tol float64) bool {
	a, b := sites[sorted[0]], sites[sorted[len(sorted)-1]]
	for _, k := range sorted[1 : len(sorted)-1] {
		if math.Abs(cross(a, b, sites[k])) > tol {
			return false
		}
	}
	return true
}
