package voronoi

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Config holds the tolerances and sizing used by ComputeVoronoi and by the delaunay package.
//
// Two equality policies exist. Lines of one cell are chained with ChainTolerance, which is
// exact by default: both lines meeting at a cell vertex are clipped to the same intersection
// value, so their shared endpoint is bit-identical. Lines of different cells are compared
// with MatchTolerance, because the two copies of a shared edge come from independent
// per-site computations and differ by round-off.
type Config struct {
	// ExtensionFactor scales the bound span into the half-length of every bisector.
	// Values >= sqrt(2) guarantee that every bisector crosses the whole square.
	ExtensionFactor float64
	// MatchTolerance is the per-coordinate tolerance for comparing edges of different cells.
	MatchTolerance float64
	// ChainTolerance is the per-coordinate tolerance used when chaining the lines of one cell.
	ChainTolerance float64
	// MinSiteDistance is the distance under which two sites are coincident. Sites closer
	// than a millionth of the bound span are rejected whatever this is set to.
	MinSiteDistance float64
	// VertexPrecision is the number of decimals kept when extracting diagram vertices.
	VertexPrecision int
}

func DefaultConfig() Config {
	return Config{
		ExtensionFactor: 2,
		MatchTolerance:  0.05,
		ChainTolerance:  0,
		MinSiteDistance: 0,
		VertexPrecision: 1,
	}
}

// DefaultConfigFor is DefaultConfig sized to b. MatchTolerance is a thousandth of the span
// and VertexPrecision keeps steps of at most a five-hundredth of it, which gives the
// defaults for a span of 50.
func DefaultConfigFor(b Bound) Config {
	c := DefaultConfig()
	c.MatchTolerance = b.Span() / 1000
	c.VertexPrecision = 0
	for c.VertexPrecision < 15 && math.Pow10(-c.VertexPrecision) > b.Span()/500 {
		c.VertexPrecision++
	}
	return c
}

// Ratios of the bound span. At a span of 50 they give 1e-9 and 1e-7.
const (
	geomRatio = 2e-11
	snapRatio = 2e-9
	// separationRatio is 500 snap distances.
	separationRatio = 1e-6
)

// tolerance holds the lengths one cell build compares against.
type tolerance struct {
	// geom absorbs round-off in side tests and segment range checks.
	geom float64
	// snap is the distance under which two crossings are the same vertex.
	snap float64
}

// toleranceFor sizes the tolerances to b. Cells are built in a frame centred on the
// bound, so coordinates never exceed the span and round-off follows it.
func toleranceFor(b Bound) tolerance {
	span := b.Span()
	return tolerance{geom: span * geomRatio, snap: span * snapRatio}
}

// minSeparation is the distance under which sites inside b are coincident.
func (c Config) minSeparation(b Bound) float64 {
	return math.Max(c.MinSiteDistance, b.Span()*separationRatio)
}

// reachesBound reports whether bisectors are provably long enough to cross the square.
func (c Config) reachesBound() bool {
	return c.ExtensionFactor >= math.Sqrt2
}

// Validate returns every problem with c at once.
func (c Config) Validate() error {
	var err error
	if !(c.ExtensionFactor > 0) || math.IsInf(c.ExtensionFactor, 0) {
		err = multierr.Append(err, errors.Wrapf(ErrInvalidConfig, "extension factor %v must be positive", c.ExtensionFactor))
	}
	if !(c.MatchTolerance >= 0) {
		err = multierr.Append(err, errors.Wrapf(ErrInvalidConfig, "match tolerance %v must not be negative", c.MatchTolerance))
	}
	if !(c.ChainTolerance >= 0) {
		err = multierr.Append(err, errors.Wrapf(ErrInvalidConfig, "chain tolerance %v must not be negative", c.ChainTolerance))
	}
	if !(c.MinSiteDistance >= 0) {
		err = multierr.Append(err, errors.Wrapf(ErrInvalidConfig, "min site distance %v must not be negative", c.MinSiteDistance))
	}
	if c.VertexPrecision < 0 {
		err = multierr.Append(err, errors.Wrapf(ErrInvalidConfig, "vertex precision %d must not be negative", c.VertexPrecision))
	}
	return err
}
