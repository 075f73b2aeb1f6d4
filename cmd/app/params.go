package main

import (
	"net/http"
	"strconv"

	"github.com/0x0FACED/go-bisect/internal/stations"
	"github.com/0x0FACED/go-bisect/pkg/voronoi"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// params is what the form sends. A GET renders the defaults.
type params struct {
	Min      float64
	Max      float64
	Stations int
	Random   bool
	// Sites, when given, replace the generated stations.
	Sites []voronoi.Vertex

	ShowVoronoi  bool
	ShowDelaunay bool
	ShowVertices bool
}

func defaultParams() params {
	return params{
		Min:          0,
		Max:          1000,
		Stations:     12,
		ShowVoronoi:  true,
		ShowDelaunay: true,
		ShowVertices: true,
	}
}

// maxStations keeps the O(n^3) per-request computation interactive.
const maxStations = 500

func (p params) bound() voronoi.Bound {
	return voronoi.NewBound(p.Min, p.Max)
}

func parseParams(r *http.Request) (params, error) {
	p := defaultParams()
	if r.Method != http.MethodPost {
		return p, nil
	}
	if err := r.ParseForm(); err != nil {
		return p, errors.Wrap(err, "parse form")
	}

	var err error
	number := func(name string, dst *float64) {
		v, e := strconv.ParseFloat(r.FormValue(name), 64)
		if e != nil {
			err = multierr.Append(err, errors.Wrapf(e, "field %s", name))
			return
		}
		*dst = v
	}
	number("min", &p.Min)
	number("max", &p.Max)

	n, e := strconv.Atoi(r.FormValue("stations"))
	if e != nil || n < 0 || n > maxStations {
		err = multierr.Append(err, errors.Errorf("field stations: %q is not a station count up to %d", r.FormValue("stations"), maxStations))
	} else {
		p.Stations = n
	}

	p.Random = r.FormValue("random") == "true"
	// unchecked boxes are not sent at all
	p.ShowVoronoi = r.FormValue("voronoi") == "on"
	p.ShowDelaunay = r.FormValue("delaunay") == "on"
	p.ShowVertices = r.FormValue("vertices") == "on"

	sites, e := stations.Parse(r.FormValue("sites"))
	err = multierr.Append(err, e)
	p.Sites = sites

	return p, err
}

func checked(on bool) string {
	if on {
		return "checked"
	}
	return ""
}
