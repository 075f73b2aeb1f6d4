package voronoi

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrInvalidBound    = errors.New("bound must be a finite square with max > min")
	ErrInvalidConfig   = errors.New("invalid config")
	ErrSiteOutOfBounds = errors.New("site is not strictly inside the bound")
	ErrCoincidentSites = errors.New("coincident sites")

	// Construction errors. They are deterministic, so retrying the same input never helps.
	ErrNoSeed            = errors.New("no seed intersection for cell")
	ErrInsufficientReach = errors.New("line does not reach the next cell vertex")
	ErrOpenCell          = errors.New("cell boundary is not a closed loop")
)

// CellError reports which site's cell could not be built.
type CellError struct {
	Site int
	Err  error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("cell of site %d: %v", e.Site, e.Err)
}

func (e *CellError) Unwrap() error { return e.Err }

// Cause lets errors.Cause see through to the construction error.
func (e *CellError) Cause() error { return e.Err }
