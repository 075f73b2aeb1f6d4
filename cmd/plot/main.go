// Command plot computes a diagram and writes it as a PNG image.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/0x0FACED/go-bisect/internal/stations"
	"github.com/0x0FACED/go-bisect/pkg/delaunay"
	"github.com/0x0FACED/go-bisect/pkg/logger"
	"github.com/0x0FACED/go-bisect/pkg/voronoi"
	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	flagSites      = "sites"
	flagMin        = "min"
	flagMax        = "max"
	flagSeed       = "seed"
	flagOut        = "out"
	flagInput      = "input"
	flagSize       = "size"
	flagNoVoronoi  = "no-voronoi"
	flagNoDelaunay = "no-delaunay"
	flagVertices   = "vertices"
	flagExtension  = "extension"
	flagDebug      = "debug"
)

var app = &cli.App{
	Name:      "plot",
	Usage:     "draw the Voronoi diagram and Delaunay triangulation of a set of sites",
	UsageText: "plot [--input FILE | --sites N] [--out FILE]",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    flagSites,
			Aliases: []string{"n"},
			Value:   20,
			Usage:   "number of random sites, ignored with --input",
		},
		&cli.Float64Flag{
			Name:  flagMin,
			Value: 0,
			Usage: "lower corner of the square bound",
		},
		&cli.Float64Flag{
			Name:  flagMax,
			Value: 50,
			Usage: "upper corner of the square bound",
		},
		&cli.Int64Flag{
			Name:  flagSeed,
			Usage: "random seed for sites and colours, 0 picks one from the clock",
		},
		&cli.StringFlag{
			Name:    flagOut,
			Aliases: []string{"o"},
			Value:   "voronoi.png",
			Usage:   "write the image to `FILE`",
		},
		&cli.StringFlag{
			Name:    flagInput,
			Aliases: []string{"i"},
			Usage:   "read sites (and optionally the bound) from YAML `FILE`",
		},
		&cli.IntFlag{
			Name:  flagSize,
			Value: 800,
			Usage: "image side in pixels",
		},
		&cli.BoolFlag{
			Name:  flagNoVoronoi,
			Usage: "do not draw the Voronoi cells",
		},
		&cli.BoolFlag{
			Name:  flagNoDelaunay,
			Usage: "do not compute or draw the Delaunay triangulation",
		},
		&cli.BoolFlag{
			Name:  flagVertices,
			Usage: "mark the Voronoi vertices",
		},
		&cli.Float64Flag{
			Name:  flagExtension,
			Value: voronoi.DefaultConfig().ExtensionFactor,
			Usage: "bisector half-length as a multiple of the bound span",
		},
		&cli.BoolFlag{
			Name:  flagDebug,
			Usage: "log every step of the cell walk",
		},
	},
	Action: plotAction,
}

func plotAction(c *cli.Context) error {
	level := zapcore.InfoLevel
	if c.Bool(flagDebug) {
		level = zapcore.DebugLevel
	}
	log := logger.NewConsole(os.Stderr, level)
	defer log.Sync() //nolint:errcheck

	if c.Int(flagSize) <= 0 {
		return errors.Errorf("--%s must be positive, got %d", flagSize, c.Int(flagSize))
	}

	seed := c.Int64(flagSeed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	bound := voronoi.NewBound(c.Float64(flagMin), c.Float64(flagMax))
	var sites []voronoi.Vertex
	if path := c.String(flagInput); path != "" {
		fromFile, fileBound, err := readSites(path)
		if err != nil {
			return err
		}
		sites = fromFile
		if fileBound != nil {
			bound = *fileBound
		}
	} else {
		r := rand.New(rand.NewSource(seed))
		sites = stations.Random(r, c.Int(flagSites), bound, bound.Span()/100)
	}
	log.Info("Sites ready", zap.Int("sites", len(sites)), zap.Int64("seed", seed))

	cfg := voronoi.DefaultConfigFor(bound)
	cfg.ExtensionFactor = c.Float64(flagExtension)

	d, err := voronoi.ComputeVoronoi(sites, bound, cfg, log)
	if err != nil {
		return errors.Wrap(err, "voronoi")
	}

	var tri *delaunay.Triangulation
	if !c.Bool(flagNoDelaunay) {
		if tri, err = delaunay.ComputeDelaunay(sites, d.Cells, cfg, log); err != nil {
			return errors.Wrap(err, "delaunay")
		}
	}

	show := layers{
		Voronoi:  !c.Bool(flagNoVoronoi),
		Delaunay: tri != nil,
		Vertices: c.Bool(flagVertices),
	}
	img := render(c.Int(flagSize), bound, sites, d, tri, show, cfg, seed)

	out := c.String(flagOut)
	if err := gg.SavePNG(out, img); err != nil {
		return errors.Wrapf(err, "write %s", out)
	}

	log.Info("Image written", zap.String("path", out), zap.Int("cells", len(d.Cells)))
	return nil
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "plot:", err)
		os.Exit(1)
	}
}
