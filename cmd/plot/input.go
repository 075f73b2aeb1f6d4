package main

import (
	"os"

	"github.com/0x0FACED/go-bisect/pkg/voronoi"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// siteFile is the --input format:
//
//	bound: {min: 0, max: 50}
//	sites:
//	  - {x: 10, y: 25}
//	  - {x: 40, y: 25}
type siteFile struct {
	Bound *struct {
		Min float64 `yaml:"min"`
		Max float64 `yaml:"max"`
	} `yaml:"bound"`
	Sites []struct {
		X float64 `yaml:"x"`
		Y float64 `yaml:"y"`
	} `yaml:"sites"`
}

// readSites loads sites from path. The bound is returned only when the file sets one.
func readSites(path string) ([]voronoi.Vertex, *voronoi.Bound, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, errors.Wrap(err, "read sites file")
	}

	var f siteFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, nil, errors.Wrapf(err, "parse %s", path)
	}

	sites := make([]voronoi.Vertex, 0, len(f.Sites))
	for _, s := range f.Sites {
		sites = append(sites, voronoi.Vertex{X: s.X, Y: s.Y})
	}

	if f.Bound == nil {
		return sites, nil, nil
	}
	b := voronoi.NewBound(f.Bound.Min, f.Bound.Max)
	return sites, &b, nil
}
