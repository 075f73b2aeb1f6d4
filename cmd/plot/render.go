package main

import (
	"image"
	"math/rand"

	"github.com/0x0FACED/go-bisect/pkg/delaunay"
	"github.com/0x0FACED/go-bisect/pkg/voronoi"
	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
)

type layers struct {
	Voronoi  bool
	Delaunay bool
	Vertices bool
}

// canvas maps diagram coordinates onto a size x size image, y pointing up.
type canvas struct {
	dc    *gg.Context
	bound voronoi.Bound
	scale float64
}

func newCanvas(size int, bound voronoi.Bound) *canvas {
	return &canvas{
		dc:    gg.NewContext(size, size),
		bound: bound,
		scale: float64(size) / bound.Span(),
	}
}

func (c *canvas) point(v voronoi.Vertex) (float64, float64) {
	return (v.X - c.bound.Min) * c.scale, float64(c.dc.Height()) - (v.Y-c.bound.Min)*c.scale
}

func (c *canvas) line(l voronoi.Line) {
	x1, y1 := c.point(l.Start)
	x2, y2 := c.point(l.End)
	c.dc.DrawLine(x1, y1, x2, y2)
	c.dc.Stroke()
}

func (c *canvas) dot(v voronoi.Vertex, r float64) {
	x, y := c.point(v)
	c.dc.DrawCircle(x, y, r)
	c.dc.Fill()
}

func (c *canvas) polygon(p delaunay.Polygon) {
	for i, v := range p {
		x, y := c.point(v)
		if i == 0 {
			c.dc.MoveTo(x, y)
		} else {
			c.dc.LineTo(x, y)
		}
	}
	c.dc.ClosePath()
	c.dc.Fill()
}

// cellColors picks one translucent fill per cell, reproducible for a given seed.
func cellColors(n int, seed int64) []colorful.Color {
	r := rand.New(rand.NewSource(seed))
	out := make([]colorful.Color, n)
	for i := range out {
		out[i] = colorful.Hsv(r.Float64()*360, 0.45+r.Float64()*0.3, 0.95)
	}
	return out
}

// render draws the diagram. tri may be nil; its polygons are used for the cell fills.
func render(size int, bound voronoi.Bound, sites []voronoi.Vertex, d *voronoi.Diagram, tri *delaunay.Triangulation, show layers, cfg voronoi.Config, seed int64) image.Image {
	c := newCanvas(size, bound)
	c.dc.SetRGB(1, 1, 1)
	c.dc.Clear()

	if show.Voronoi {
		polys := make([]delaunay.Polygon, 0, len(d.Cells))
		if tri != nil {
			polys = tri.Polygons
		} else {
			for _, cell := range d.Cells {
				polys = append(polys, cell.Vertices())
			}
		}

		colors := cellColors(len(polys), seed)
		for i, p := range polys {
			col := colors[i]
			c.dc.SetRGBA(col.R, col.G, col.B, 0.35)
			c.polygon(p)
		}

		c.dc.SetRGB(0.1, 0.1, 0.1)
		c.dc.SetLineWidth(1.5)
		for _, e := range d.Edges {
			c.line(e)
		}
	}

	if show.Delaunay && tri != nil {
		c.dc.SetRGB(0.2, 0.45, 0.85)
		c.dc.SetLineWidth(1)
		c.dc.SetDash(6, 4)
		for _, e := range tri.Edges {
			c.line(e.Line)
		}
		c.dc.SetDash()
	}

	if show.Vertices {
		c.dc.SetRGB(1, 0.55, 0)
		for _, v := range voronoi.Vertices(d.Edges, cfg.VertexPrecision) {
			c.dot(v, 2)
		}
	}

	c.dc.SetRGB(0, 0.5, 0)
	for _, s := range sites {
		c.dot(s, 3.5)
	}

	return c.dc.Image()
}
