// Package delaunay derives the Delaunay triangulation dual to a diagram built by the
// voronoi package: two sites are joined when their cells share an edge, and the convex
// hull adds the outer edges whose shared cell boundary lies outside the bound.
package delaunay

import (
	"github.com/0x0FACED/go-bisect/pkg/logger"
	"github.com/0x0FACED/go-bisect/pkg/voronoi"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

var ErrCellMismatch = errors.New("cells do not match sites")

// Edge joins two sites, From < To.
type Edge struct {
	From int
	To   int
	Line voronoi.Line
}

// Polygon is the outline of a cell, one vertex per cell line.
type Polygon []voronoi.Vertex

type Triangulation struct {
	Edges []Edge
	// Polygons has one entry per cell, in cell order. Only used for rendering.
	Polygons []Polygon
}

// Has reports whether sites i and j are joined.
func (t *Triangulation) Has(i, j int) bool {
	if i > j {
		i, j = j, i
	}
	return lo.ContainsBy(t.Edges, func(e Edge) bool {
		return e.From == i && e.To == j
	})
}

func (t *Triangulation) add(sites []voronoi.Vertex, i, j int) {
	if i > j {
		i, j = j, i
	}
	t.Edges = append(t.Edges, Edge{
		From: i,
		To:   j,
		Line: voronoi.Line{Start: sites[i], End: sites[j]},
	})
}

// sharesEdge reports whether any line of a equals any line of b within tol.
func sharesEdge(a, b voronoi.Cell, tol float64) bool {
	return lo.ContainsBy(a.Lines, func(l voronoi.Line) bool {
		return lo.ContainsBy(b.Lines, func(m voronoi.Line) bool {
			return l.Equal(m, tol)
		})
	})
}

// ComputeDelaunay joins every pair of sites whose cells share an edge, compared with
// cfg.MatchTolerance, then completes the outer boundary from the convex hull of the sites.
// cells must be the output of voronoi.ComputeVoronoi for the same sites, in site order.
// Neither sites nor cells are modified.
func ComputeDelaunay(sites []voronoi.Vertex, cells []voronoi.Cell, cfg voronoi.Config, logger *logger.ZapLogger) (*Triangulation, error) {
	logger.Info("[d] Delaunay computation started", zap.Int("sites", len(sites)), zap.Int("cells", len(cells)))

	if len(cells) != len(sites) {
		return nil, errors.Wrapf(ErrCellMismatch, "%d sites, %d cells", len(sites), len(cells))
	}
	for i, c := range cells {
		if c.Site != i {
			return nil, errors.Wrapf(ErrCellMismatch, "cell %d belongs to site %d", i, c.Site)
		}
	}

	t := &Triangulation{Polygons: make([]Polygon, 0, len(cells))}
	for c := range cells {
		for c2 := c + 1; c2 < len(cells); c2++ {
			if sharesEdge(cells[c], cells[c2], cfg.MatchTolerance) {
				t.add(sites, c, c2)
			}
		}
		t.Polygons = append(t.Polygons, Polygon(cells[c].Vertices()))
	}
	logger.Info("[d] Adjacency pass done", zap.Int("edges", len(t.Edges)))

	hull := ConvexHull(sites)
	added := 0
	for k := range hull {
		i, j := hull[k], hull[(k+1)%len(hull)]
		if !t.Has(i, j) {
			t.add(sites, i, j)
			added++
		}
	}
	logger.Info("[d] Hull pass done", zap.Ints("hull", hull), zap.Int("added", added))

	return t, nil
}
