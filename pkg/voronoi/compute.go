package voronoi

import (
	"math"

	"github.com/0x0FACED/go-bisect/pkg/logger"
	"go.uber.org/zap"
)

// Diagram is the result of ComputeVoronoi. Edges is the flat list of every cell's lines,
// so an edge shared by two cells appears once per cell.
type Diagram struct {
	Edges []Line
	Cells []Cell
}

// ComputeVoronoi builds the Voronoi diagram of sites clipped to the square bound.
//
// Each cell is built independently, in a frame centred on the bound so that round-off
// follows the bound's size rather than its position: the site's bisectors and a private
// copy of the bound are intersected pairwise, and a walk from the nearest line around the intersection graph
// clips every line to the part that bounds the cell. Cells are returned in site order.
//
// Invalid input is rejected before any geometry runs (see ValidateSites). A cell that
// cannot be built fails the whole call with a *CellError naming the site; no partial
// diagram is returned.
func ComputeVoronoi(sites []Vertex, bound Bound, cfg Config, logger *logger.ZapLogger) (*Diagram, error) {
	logger.Info("[v] Voronoi computation started",
		zap.Int("sites", len(sites)),
		zap.Float64("min", bound.Min),
		zap.Float64("max", bound.Max),
	)

	if err := cfg.Validate(); err != nil {
		logger.Error("[v] Config rejected", zap.Error(err))
		return nil, err
	}
	if err := ValidateSites(sites, bound, cfg); err != nil {
		logger.Error("[v] Sites rejected", zap.Error(err))
		return nil, err
	}
	if !cfg.reachesBound() {
		logger.Warn("[v] Bisectors may not cross the whole bound",
			zap.Float64("extension", cfg.ExtensionFactor),
			zap.Float64("safe", math.Sqrt2),
		)
	}

	switch len(sites) {
	case 0:
		logger.Info("[v] No sites, empty diagram")
		return &Diagram{}, nil
	case 1:
		logger.Info("[v] Single site, the cell is the whole bound")
		return &Diagram{
			Edges: bound.Lines(),
			Cells: []Cell{{Site: 0, Lines: bound.Lines()}},
		}, nil
	}

	f := newFrame(bound)
	local := make([]Vertex, len(sites))
	for i, s := range sites {
		local[i] = f.toLocal(s)
	}
	boundary := f.local.Lines()
	tol := toleranceFor(bound)

	extent := bound.Span() * cfg.ExtensionFactor
	bis := bisectors(local, extent)
	logger.Info("[v] Bisectors generated",
		zap.Float64("extent", extent),
		zap.Int("per_site", len(sites)-1),
		zap.Float64("snap", tol.snap),
	)

	d := &Diagram{Cells: make([]Cell, 0, len(sites))}
	for i, site := range sites {
		cell, err := buildCell(i, local[i], bis[i], boundary, tol, cfg, logger)
		if err != nil {
			logger.Error("[v] Cell construction failed", zap.Int("site", i), zap.Stringer("at", site), zap.Error(err))
			return nil, &CellError{Site: i, Err: err}
		}
		cell = f.cellToWorld(cell)
		logger.Debug("[v] Cell built", zap.Int("site", i), zap.Int("lines", len(cell.Lines)))

		d.Edges = append(d.Edges, cell.Lines...)
		d.Cells = append(d.Cells, cell)
	}

	logger.Info("[v] Voronoi computation finished", zap.Int("cells", len(d.Cells)), zap.Int("edges", len(d.Edges)))
	return d, nil
}

// frame moves points between the caller's coordinates and the bound centred on the origin.
type frame struct {
	world  Bound
	local  Bound
	offset float64
}

func newFrame(b Bound) frame {
	local, offset := b.centred()
	return frame{world: b, local: local, offset: offset}
}

func (f frame) toLocal(v Vertex) Vertex {
	return Vertex{X: v.X - f.offset, Y: v.Y - f.offset}
}

// coord maps one coordinate back. The sides of the bound land exactly on the caller's values.
func (f frame) coord(x float64) float64 {
	switch x {
	case f.local.Min:
		return f.world.Min
	case f.local.Max:
		return f.world.Max
	}
	return x + f.offset
}

func (f frame) toWorld(v Vertex) Vertex {
	return Vertex{X: f.coord(v.X), Y: f.coord(v.Y)}
}

// cellToWorld maps every line of c back. Equal local vertices stay equal, so the loop
// stays chained.
func (f frame) cellToWorld(c Cell) Cell {
	lines := make([]Line, len(c.Lines))
	for i, l := range c.Lines {
		lines[i] = Line{Start: f.toWorld(l.Start), End: f.toWorld(l.End)}
	}
	return Cell{Site: c.Site, Lines: lines}
}
