package voronoi

import (
	"testing"

	"github.com/0x0FACED/go-bisect/pkg/logger"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBuilder(at Vertex, lines ...Line) *cellBuilder {
	b := &cellBuilder{at: at, tol: toleranceFor(NewBound(0, 50)), log: logger.NewNop()}
	for i, l := range lines {
		b.segs = append(b.segs, newBisector(i, l))
	}
	index(b.segs, b.tol)
	return b
}

func TestTrim(t *testing.T) {
	b := testBuilder(Vertex{3, 3},
		Line{Start: Vertex{0, -10}, End: Vertex{0, 10}},
		Line{Start: Vertex{-10, 0}, End: Vertex{10, 0}},
		Line{Start: Vertex{-10, -5}, End: Vertex{10, -5}},
		Line{Start: Vertex{-10, 5}, End: Vertex{10, 5}},
	)
	a, below := b.segs[0], b.segs[2]
	require.Len(t, a.intrs, 3)

	x := a.at(Vertex{0, 0})
	require.Len(t, x, 1)
	b.trim(a, x[0])

	assert.Equal(t, Line{Start: Vertex{0, 0}, End: Vertex{0, 10}}, a.line)
	assert.Equal(t, Line{Start: Vertex{0, -10}, End: Vertex{0, 10}}, a.carrier)
	// the crossing at y=-5 is on the far side of y=0
	assert.Len(t, a.intrs, 2)
	assert.Empty(t, below.intrs)

	next := nearest(a, Vertex{0, 0})
	require.NotNil(t, next)
	assert.Equal(t, Vertex{0, 5}, next.at)
	assert.Nil(t, nearest(b.segs[1], Vertex{0, 0}))
}

func TestClipConcurrent(t *testing.T) {
	// three lines through (5,5); the site sits in the wedge below both diagonals
	b := testBuilder(Vertex{5, 1},
		Line{Start: Vertex{10, 0}, End: Vertex{0, 10}},
		Line{Start: Vertex{10, 10}, End: Vertex{0, 0}},
		Line{Start: Vertex{-10, 5}, End: Vertex{20, 5}},
	)
	v := b.segs[0].intrs[0].at
	require.Equal(t, Vertex{5, 5}, v)

	// the horizontal line only touches the wedge at its apex
	horizontal := b.segs[2]
	assert.Len(t, b.clip(horizontal, v), 2)
	assert.True(t, horizontal.degenerate(b.tol.snap))

	diag := b.segs[0]
	b.clip(diag, v)
	assert.False(t, diag.degenerate(b.tol.snap))
	assert.Equal(t, Line{Start: Vertex{10, 0}, End: Vertex{5, 5}}, diag.line)
}

func TestWalkInsufficientReach(t *testing.T) {
	b := testBuilder(Vertex{3, 3},
		Line{Start: Vertex{0, -10}, End: Vertex{0, 10}},
		Line{Start: Vertex{-10, 0}, End: Vertex{10, 0}},
	)
	seed, x, err := b.seed()
	require.NoError(t, err)

	_, err = b.walk(seed, x)
	assert.True(t, errors.Is(err, ErrInsufficientReach))
}

func TestSeed(t *testing.T) {
	t.Run("nearest line, nearest vertex", func(t *testing.T) {
		b := testBuilder(Vertex{1, 1},
			Line{Start: Vertex{0, -10}, End: Vertex{0, 10}},
			Line{Start: Vertex{-10, 4}, End: Vertex{10, 4}},
			Line{Start: Vertex{-10, -3}, End: Vertex{10, -3}},
		)
		seg, x, err := b.seed()
		require.NoError(t, err)
		assert.Same(t, b.segs[0], seg)
		assert.InDelta(t, 0, x.at.X, 1e-12)
		assert.InDelta(t, 4, x.at.Y, 1e-12)
	})

	t.Run("no intersections", func(t *testing.T) {
		b := testBuilder(Vertex{1, 1},
			Line{Start: Vertex{0, -10}, End: Vertex{0, 10}},
			Line{Start: Vertex{5, -10}, End: Vertex{5, 10}},
		)
		_, _, err := b.seed()
		assert.True(t, errors.Is(err, ErrNoSeed))
	})
}

func TestBuildCell(t *testing.T) {
	bound := NewBound(0, 50)

	t.Run("two sites", func(t *testing.T) {
		sites := []Vertex{{10, 25}, {40, 25}}
		bis := bisectors(sites, 100)

		for i := range sites {
			cell, err := buildCell(i, sites[i], bis[i], bound.Lines(), toleranceFor(bound), DefaultConfig(), logger.NewNop())
			require.NoError(t, err)
			assert.Equal(t, i, cell.Site)
			assert.Len(t, cell.Lines, 4)
			assert.InDelta(t, 1250, cell.Area(), 1e-9)
			assert.True(t, lineIn(cell.Lines, Line{Start: Vertex{25, 0}, End: Vertex{25, 50}}))
		}
	})

	t.Run("bisector through two corners", func(t *testing.T) {
		sites := []Vertex{{1.5, 0.5}, {0.5, 1.5}}
		bis := bisectors(sites, 100)

		cell, err := buildCell(0, sites[0], bis[0], bound.Lines(), toleranceFor(bound), DefaultConfig(), logger.NewNop())
		require.NoError(t, err)
		assert.Len(t, cell.Lines, 3)
		assert.InDelta(t, 1250, cell.Area(), 1e-9)
		assert.ElementsMatch(t, []Vertex{{0, 0}, {50, 0}, {50, 50}}, roundAll(cell.Vertices(), 6))
	})
}

func lineIn(lines []Line, l Line) bool {
	for _, m := range lines {
		if m.Equal(l, 1e-9) {
			return true
		}
	}
	return false
}

func roundAll(vs []Vertex, prec int) []Vertex {
	out := make([]Vertex, len(vs))
	for i, v := range vs {
		out[i] = v.round(prec)
	}
	return out
}
