package voronoi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVertices(t *testing.T) {
	edges := []Line{
		{Start: Vertex{0, 0}, End: Vertex{1.04, 0}},
		{Start: Vertex{1.0400001, 0}, End: Vertex{2, 2}},
		{Start: Vertex{2.01, 1.96}, End: Vertex{0.02, -0.03}},
	}

	assert.Equal(t, []Vertex{{0, 0}, {1, 0}, {2, 2}}, Vertices(edges, 1))
	assert.Len(t, Vertices(edges, 3), 5)
	assert.Empty(t, Vertices(nil, 1))
}
