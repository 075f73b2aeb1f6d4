package voronoi

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// ValidateSites checks the input of ComputeVoronoi: the bound must be valid, every site must be
// strictly inside it and no two sites may be closer than cfg.MinSiteDistance or a
// millionth of the bound span, whichever is larger.
// All offending sites are reported, not only the first.
func ValidateSites(sites []Vertex, bound Bound, cfg Config) error {
	if !bound.Valid() {
		return errors.Wrapf(ErrInvalidBound, "got [%v, %v]", bound.Min, bound.Max)
	}

	rect := bound.Rect()
	minDist := cfg.minSeparation(bound)
	var err error
	for i, s := range sites {
		if !rect.InteriorContainsPoint(s.vec()) {
			err = multierr.Append(err, errors.Wrapf(ErrSiteOutOfBounds, "site %d at %v", i, s))
		}
	}

	for i := range sites {
		for j := i + 1; j < len(sites); j++ {
			if sites[i].Distance(sites[j]) < minDist {
				err = multierr.Append(err, errors.Wrapf(ErrCoincidentSites, "sites %d and %d at %v", i, j, sites[i]))
			}
		}
	}
	return err
}
