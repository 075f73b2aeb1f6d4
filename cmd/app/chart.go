package main

import (
	"github.com/0x0FACED/go-bisect/pkg/delaunay"
	"github.com/0x0FACED/go-bisect/pkg/voronoi"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

func prepareScatter(scatter *charts.Scatter) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "580px",
			Width:  "1020px",
		}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{
				Color: "white",
			},
			Right: "10%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                "Диаграмма Вороного и триангуляция Делоне",
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "X",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "Y",
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)
}

func scatterData(vs []voronoi.Vertex, size int) []opts.ScatterData {
	points := make([]opts.ScatterData, 0, len(vs))
	for _, v := range vs {
		points = append(points, opts.ScatterData{
			Value:      []float64{v.X, v.Y},
			SymbolSize: size,
		})
	}
	return points
}

// overlapLine draws one segment as its own line chart on top of the scatter.
func overlapLine(scatter *charts.Scatter, name string, l voronoi.Line, style opts.LineStyle) {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(true)}),
	)

	line.AddSeries(name, []opts.LineData{
		{Value: []float64{l.Start.X, l.Start.Y}},
		{Value: []float64{l.End.X, l.End.Y}},
	}).SetSeriesOptions(
		charts.WithLineStyleOpts(style),
	)

	scatter.Overlap(line)
}

// Преобразуем диаграмму и триангуляцию в Echarts для отображения.
// tri may be nil when the Delaunay layer is off.
func diagramToEcharts(p params, sites []voronoi.Vertex, d *voronoi.Diagram, tri *delaunay.Triangulation, cfg voronoi.Config) *charts.Scatter {
	scatter := charts.NewScatter()

	// Дизайним скаттер
	prepareScatter(scatter)

	scatter.AddSeries("Станции", scatterData(sites, 10)).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "lightgreen",
			}),
		)

	if p.ShowVertices {
		scatter.AddSeries("Вершины", scatterData(voronoi.Vertices(d.Edges, cfg.VertexPrecision), 5)).
			SetSeriesOptions(
				charts.WithItemStyleOpts(opts.ItemStyle{
					Color: "orange",
				}),
			)
	}

	if p.ShowVoronoi {
		for _, edge := range d.Edges {
			overlapLine(scatter, "Границы", edge, opts.LineStyle{Width: 2})
		}
	}

	if tri != nil {
		for _, edge := range tri.Edges {
			overlapLine(scatter, "Делоне", edge.Line, opts.LineStyle{
				Width: 1,
				Color: "#4fc3f7",
				Type:  "dashed",
			})
		}
	}

	return scatter
}
