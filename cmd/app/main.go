package main

import (
	"fmt"
	"html"
	"math/rand"
	"net/http"
	"time"

	"github.com/0x0FACED/go-bisect/internal/stations"
	"github.com/0x0FACED/go-bisect/pkg/delaunay"
	"github.com/0x0FACED/go-bisect/pkg/logger"
	"github.com/0x0FACED/go-bisect/pkg/voronoi"
	"github.com/0x0FACED/go-bisect/static"
	"go.uber.org/zap"
)

// siteList returns the sites typed into the form or, when there are none, generated ones.
func siteList(p params) []voronoi.Vertex {
	if len(p.Sites) > 0 {
		return p.Sites
	}
	if p.Random {
		r := rand.New(rand.NewSource(time.Now().UnixNano()))
		return stations.Random(r, p.Stations, p.bound(), p.bound().Span()/100)
	}
	return stations.Grid(p.Stations, p.bound())
}

// compute builds both layers. Every call starts from scratch: adding or moving a
// station in the form simply resubmits the whole list.
func compute(p params, sites []voronoi.Vertex, cfg voronoi.Config, log *logger.ZapLogger) (*voronoi.Diagram, *delaunay.Triangulation, error) {
	d, err := voronoi.ComputeVoronoi(sites, p.bound(), cfg, log)
	if err != nil {
		return nil, nil, err
	}
	if !p.ShowDelaunay {
		return d, nil, nil
	}
	tri, err := delaunay.ComputeDelaunay(sites, d.Cells, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	return d, tri, nil
}

// http обработчик страницы с диаграмой и формой для ввода данных
func diagramHandler(w http.ResponseWriter, r *http.Request) {
	logger := logger.New()
	defer logger.ClearLogs()

	p, err := parseParams(r)
	sites := siteList(p)

	fmt.Fprintln(w, static.Part1)
	fmt.Fprintf(w, static.Form,
		p.Min, p.Max, p.Stations, checked(p.Random),
		html.EscapeString(stations.Format(sites)),
		checked(p.ShowVoronoi), checked(p.ShowDelaunay), checked(p.ShowVertices),
	)

	if err == nil {
		cfg := voronoi.DefaultConfigFor(p.bound())
		var (
			d   *voronoi.Diagram
			tri *delaunay.Triangulation
		)
		d, tri, err = compute(p, sites, cfg, logger)
		if err == nil {
			if rerr := diagramToEcharts(p, sites, d, tri, cfg).Render(w); rerr != nil {
				logger.Error("Ошибка рендеринга диаграммы", zap.Error(rerr))
			}
		}
	} else {
		logger.Warn("Форма содержит ошибки", zap.Error(err))
	}
	if err != nil {
		fmt.Fprintf(w, static.ErrorBlock, html.EscapeString(err.Error()))
	}

	fmt.Fprintln(w, static.Part2)

	// Вставляем логи в HTML
	fmt.Fprintln(w, logger.HTML())

	fmt.Fprintln(w, static.Part3)
}

func main() {
	http.HandleFunc("/", diagramHandler)
	fmt.Println("Сервер запущен на http://localhost:8080")
	err := http.ListenAndServe(":8080", nil)
	if err != nil {
		fmt.Println("Err ListenAndServe", err)
	}
}
