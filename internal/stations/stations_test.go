package stations

import (
	"math/rand"
	"testing"

	"github.com/0x0FACED/go-bisect/pkg/voronoi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestParse(t *testing.T) {
	sites, err := Parse("10 20\n\n 30.5,40\r\n1e1;2\n")
	require.NoError(t, err)
	assert.Equal(t, []voronoi.Vertex{{X: 10, Y: 20}, {X: 30.5, Y: 40}, {X: 10, Y: 2}}, sites)

	sites, err = Parse("1 2\n3\nx 4\n5 6")
	assert.Equal(t, []voronoi.Vertex{{X: 1, Y: 2}, {X: 5, Y: 6}}, sites)
	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), "line 2")
	assert.Contains(t, errs[1].Error(), "line 3")

	again, err := Parse(Format([]voronoi.Vertex{{X: 1.5, Y: 2}, {X: 300, Y: 0.25}}))
	require.NoError(t, err)
	assert.Equal(t, []voronoi.Vertex{{X: 1.5, Y: 2}, {X: 300, Y: 0.25}}, again)
}

func TestGrid(t *testing.T) {
	b := voronoi.NewBound(0, 100)

	assert.Empty(t, Grid(0, b))
	assert.Equal(t, []voronoi.Vertex{{X: 25, Y: 25}, {X: 75, Y: 25}, {X: 25, Y: 75}, {X: 75, Y: 75}}, Grid(4, b))

	sites := Grid(7, b)
	assert.Len(t, sites, 7)
	assert.NoError(t, voronoi.ValidateSites(sites, b, voronoi.DefaultConfig()))
}

func TestRandom(t *testing.T) {
	b := voronoi.NewBound(0, 100)
	sites := Random(rand.New(rand.NewSource(1)), 40, b, 2)

	assert.Len(t, sites, 40)
	for i, s := range sites {
		assert.True(t, s.X >= b.Min+Margin && s.X <= b.Max-Margin, "site %d at %v", i, s)
		assert.True(t, s.Y >= b.Min+Margin && s.Y <= b.Max-Margin, "site %d at %v", i, s)
		for _, o := range sites[i+1:] {
			assert.GreaterOrEqual(t, s.Distance(o), 2.0)
		}
	}

	// the filter gives up instead of looping forever
	crowded := Random(rand.New(rand.NewSource(1)), 50, voronoi.NewBound(0, 4), 5)
	assert.Len(t, crowded, 1)
}
