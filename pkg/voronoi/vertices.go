package voronoi

import "github.com/samber/lo"

// Vertices collects the endpoints of edges rounded to precision decimals, so that the copies
// of one diagram vertex computed by different cells merge. Order is first seen.
// The result is meant for display.
func Vertices(edges []Line, precision int) []Vertex {
	pts := make([]Vertex, 0, 2*len(edges))
	for _, l := range edges {
		pts = append(pts, l.Start.round(precision), l.End.round(precision))
	}
	return lo.Uniq(pts)
}
