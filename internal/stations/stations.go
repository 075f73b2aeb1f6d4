// Package stations generates, parses and prints the site lists the front ends work with.
package stations

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/0x0FACED/go-bisect/pkg/voronoi"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Margin keeps generated stations off the bound, which only accepts interior sites.
const Margin = 1

// Генерируем случайные станции. Станции ближе minDist друг к другу отбрасываются,
// поэтому при плотном заполнении их может получиться меньше n.
func Random(r *rand.Rand, n int, bound voronoi.Bound, minDist float64) []voronoi.Vertex {
	sites := make([]voronoi.Vertex, 0, n)
	lo, span := bound.Min+Margin, bound.Span()-2*Margin
	if span <= 0 {
		return sites
	}

	for attempts := 0; len(sites) < n && attempts < 100*n; attempts++ {
		v := voronoi.Vertex{X: lo + r.Float64()*span, Y: lo + r.Float64()*span}
		if tooClose(sites, v, minDist) {
			continue
		}
		sites = append(sites, v)
	}
	return sites
}

func tooClose(stations []voronoi.Vertex, v voronoi.Vertex, minDist float64) bool {
	for _, s := range stations {
		if s.Distance(v) < minDist {
			return true
		}
	}
	return false
}

// Станции в центрах ячеек сетки rows x cols, покрывающей границу.
func Grid(n int, bound voronoi.Bound) []voronoi.Vertex {
	sites := make([]voronoi.Vertex, 0, n)
	if n <= 0 {
		return sites
	}

	rows := int(math.Sqrt(float64(n)))
	cols := (n + rows - 1) / rows

	xStep := bound.Span() / float64(cols)
	yStep := bound.Span() / float64(rows)

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			// строк и столбцов может быть, например, на 20 станций, а мы 16-17 генерим
			if len(sites) == n {
				return sites
			}
			sites = append(sites, voronoi.Vertex{
				X: bound.Min + xStep/2 + float64(j)*xStep,
				Y: bound.Min + yStep/2 + float64(i)*yStep,
			})
		}
	}
	return sites
}

// Parse reads one station per line as two numbers separated by spaces, commas or
// semicolons. Blank lines are skipped. Every bad line is reported.
func Parse(text string) ([]voronoi.Vertex, error) {
	var (
		sites []voronoi.Vertex
		err   error
	)
	for i, line := range strings.Split(text, "\n") {
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ' ' || r == '\t' || r == ',' || r == ';' || r == '\r'
		})
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 2 {
			err = multierr.Append(err, errors.Errorf("line %d: want two numbers, got %q", i+1, strings.TrimSpace(line)))
			continue
		}

		x, errX := strconv.ParseFloat(fields[0], 64)
		y, errY := strconv.ParseFloat(fields[1], 64)
		if e := multierr.Combine(errX, errY); e != nil {
			err = multierr.Append(err, errors.Wrapf(e, "line %d", i+1))
			continue
		}
		sites = append(sites, voronoi.Vertex{X: x, Y: y})
	}
	return sites, err
}

// Format is the inverse of Parse.
func Format(sites []voronoi.Vertex) string {
	var sb strings.Builder
	for _, s := range sites {
		fmt.Fprintf(&sb, "%.6g %.6g\n", s.X, s.Y)
	}
	return sb.String()
}
