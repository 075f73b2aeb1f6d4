package voronoi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Line
		want Vertex
		ok   bool
	}{
		{
			name: "crossing diagonals",
			a:    Line{Start: Vertex{0, 0}, End: Vertex{10, 10}},
			b:    Line{Start: Vertex{0, 10}, End: Vertex{10, 0}},
			want: Vertex{5, 5},
			ok:   true,
		},
		{
			name: "vertical and horizontal",
			a:    Line{Start: Vertex{3, -5}, End: Vertex{3, 5}},
			b:    Line{Start: Vertex{10, 1}, End: Vertex{-10, 1}},
			want: Vertex{3, 1},
			ok:   true,
		},
		{
			name: "shared corner",
			a:    Line{Start: Vertex{0, 0}, End: Vertex{50, 0}},
			b:    Line{Start: Vertex{50, 0}, End: Vertex{50, 50}},
			want: Vertex{50, 0},
			ok:   true,
		},
		{
			name: "parallel",
			a:    Line{Start: Vertex{0, 0}, End: Vertex{10, 10}},
			b:    Line{Start: Vertex{0, 1}, End: Vertex{10, 11}},
		},
		{
			name: "both vertical",
			a:    Line{Start: Vertex{1, 0}, End: Vertex{1, 10}},
			b:    Line{Start: Vertex{2, 10}, End: Vertex{2, 0}},
		},
		{
			name: "crossing beyond the segments",
			a:    Line{Start: Vertex{0, 0}, End: Vertex{1, 1}},
			b:    Line{Start: Vertex{0, 10}, End: Vertex{10, 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := intersect(tt.a, tt.b, 1e-9)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.InDelta(t, tt.want.X, got.X, 1e-9)
				assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
			}
		})
	}
}

func TestVertexPoolSnap(t *testing.T) {
	pool := newVertexPool(1e-7)
	a := pool.snap(Vertex{5, 5})

	assert.Equal(t, a, pool.snap(Vertex{5 + 1e-13, 5 - 1e-13}))
	assert.Equal(t, a, pool.snap(Vertex{5 - 0.5e-7, 5}))
	assert.Equal(t, Vertex{5.001, 5}, pool.snap(Vertex{5.001, 5}))

	// at a large scale the same relative spread still merges
	wide := newVertexPool(toleranceFor(NewBound(0, 1e8)).snap)
	b := wide.snap(Vertex{3.3333333333333336e7, 3.333333333333333e7})
	assert.Equal(t, b, wide.snap(Vertex{3.333333333333334e7, 3.3333333333333336e7}))
}

func TestToleranceFor(t *testing.T) {
	tol := toleranceFor(NewBound(0, 50))
	assert.InDelta(t, 1e-9, tol.geom, 1e-24)
	assert.InDelta(t, 1e-7, tol.snap, 1e-22)

	// only the span matters
	assert.Equal(t, toleranceFor(NewBound(0, 1000)), toleranceFor(NewBound(1e8, 1e8+1000)))
	assert.InDelta(t, 2e-1, toleranceFor(NewBound(0, 1e8)).snap, 1e-12)
}

func TestIndex(t *testing.T) {
	t.Run("bound", func(t *testing.T) {
		var segs []*segment
		for side, l := range NewBound(0, 50).Lines() {
			segs = append(segs, newSide(side, l))
		}

		// opposite sides are parallel, adjacent ones meet at the corners
		assert.Equal(t, 4, index(segs, toleranceFor(NewBound(0, 50))))
		for _, s := range segs {
			assert.Len(t, s.intrs, 2, s.String())
		}
	})

	t.Run("concurrent lines share one vertex", func(t *testing.T) {
		segs := []*segment{
			newBisector(1, Line{Start: Vertex{0, 0}, End: Vertex{10, 10}}),
			newBisector(2, Line{Start: Vertex{0, 10}, End: Vertex{10, 0}}),
			newBisector(3, Line{Start: Vertex{5, -10}, End: Vertex{5, 20}}),
			newBisector(4, Line{Start: Vertex{-1.3, 1.1}, End: Vertex{11.3, 8.9}}),
		}

		require.Equal(t, 6, index(segs, toleranceFor(NewBound(0, 50))))
		v := segs[0].intrs[0].at
		for _, s := range segs {
			assert.Len(t, s.at(v), 3, s.String())
		}
	})
}
