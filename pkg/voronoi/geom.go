package voronoi

import (
	"fmt"
	"math"

	"github.com/golang/geo/r1"
	"github.com/golang/geo/r2"
	"gonum.org/v1/gonum/floats/scalar"
)

// Vertex is a point on the plane. Sites, line endpoints and intersections are all vertices.
type Vertex struct {
	X float64
	Y float64
}

func (v Vertex) vec() r2.Point { return r2.Point{X: v.X, Y: v.Y} }

func vertexOf(p r2.Point) Vertex { return Vertex{X: p.X, Y: p.Y} }

func (v Vertex) String() string {
	return fmt.Sprintf("(%g, %g)", v.X, v.Y)
}

// Distance returns the euclidean distance between v and o.
func (v Vertex) Distance(o Vertex) float64 {
	return v.vec().Sub(o.vec()).Norm()
}

// DistanceToLine returns the perpendicular distance from v to the infinite line through l.
func (v Vertex) DistanceToLine(l Line) float64 {
	return math.Abs(l.side(v))
}

// Eq reports whether both coordinates of v and o differ by at most tol.
// A zero tol is exact equality.
func (v Vertex) Eq(o Vertex, tol float64) bool {
	return scalar.EqualWithinAbs(v.X, o.X, tol) && scalar.EqualWithinAbs(v.Y, o.Y, tol)
}

func (v Vertex) round(prec int) Vertex {
	return Vertex{X: scalar.Round(v.X, prec), Y: scalar.Round(v.Y, prec)}
}

// Line is a directed segment. Lines are values: clipping produces a new Line.
type Line struct {
	Start Vertex
	End   Vertex
}

func (l Line) String() string {
	return fmt.Sprintf("[%v %v]", l.Start, l.End)
}

func (l Line) dir() r2.Point { return l.End.vec().Sub(l.Start.vec()) }

// Length returns the distance between the endpoints.
func (l Line) Length() float64 { return l.dir().Norm() }

// Reversed returns the same segment walked the other way.
func (l Line) Reversed() Line { return Line{Start: l.End, End: l.Start} }

func (l Line) withStart(v Vertex) Line {
	l.Start = v
	return l
}

func (l Line) withEnd(v Vertex) Line {
	l.End = v
	return l
}

// Equal reports whether l and o cover the same segment in either direction,
// comparing endpoints coordinate-wise with tol.
func (l Line) Equal(o Line, tol float64) bool {
	return (l.Start.Eq(o.Start, tol) && l.End.Eq(o.End, tol)) ||
		(l.Start.Eq(o.End, tol) && l.End.Eq(o.Start, tol))
}

// side returns the signed distance of p from the infinite line through l,
// positive to the left of the direction Start->End.
func (l Line) side(p Vertex) float64 {
	d := l.dir()
	n := d.Norm()
	if n == 0 {
		return 0
	}
	return d.Cross(p.vec().Sub(l.Start.vec())) / n
}

// sameSide reports whether a and b are not strictly separated by the line through l.
// Points within eps of the line count as being on either side.
func (l Line) sameSide(a, b Vertex, eps float64) bool {
	sa, sb := l.side(a), l.side(b)
	if math.Abs(sa) <= eps || math.Abs(sb) <= eps {
		return true
	}
	return (sa > 0) == (sb > 0)
}

// spans reports whether p, assumed to lie on the line through l, falls inside the segment
// grown by eps.
func (l Line) spans(p Vertex, eps float64) bool {
	x := r1.IntervalFromPoint(l.Start.X).AddPoint(l.End.X).Expanded(eps)
	y := r1.IntervalFromPoint(l.Start.Y).AddPoint(l.End.Y).Expanded(eps)
	return x.Contains(p.X) && y.Contains(p.Y)
}

// Bound is the axis-aligned square [Min, Max] x [Min, Max] every diagram is clipped to.
type Bound struct {
	Min float64
	Max float64
}

func NewBound(min, max float64) Bound {
	return Bound{Min: min, Max: max}
}

// Span returns the side length of the square.
func (b Bound) Span() float64 { return b.Max - b.Min }

// Valid reports whether the bound is a finite square of positive size.
func (b Bound) Valid() bool {
	return !math.IsNaN(b.Min) && !math.IsInf(b.Min, 0) &&
		!math.IsNaN(b.Max) && !math.IsInf(b.Max, 0) &&
		b.Max > b.Min
}

func (b Bound) Rect() r2.Rect {
	return r2.Rect{
		X: r1.Interval{Lo: b.Min, Hi: b.Max},
		Y: r1.Interval{Lo: b.Min, Hi: b.Max},
	}
}

// centred returns the same square moved so that its centre is the origin, and the
// offset that was subtracted from both coordinates.
func (b Bound) centred() (Bound, float64) {
	h := b.Span() / 2
	return Bound{Min: -h, Max: h}, b.Min + h
}

// Lines returns the four sides of the square counterclockwise, starting at (Min, Min).
// Every side has the interior on its left.
func (b Bound) Lines() []Line {
	ll := Vertex{b.Min, b.Min}
	lr := Vertex{b.Max, b.Min}
	ur := Vertex{b.Max, b.Max}
	ul := Vertex{b.Min, b.Max}
	return []Line{
		{Start: ll, End: lr},
		{Start: lr, End: ur},
		{Start: ur, End: ul},
		{Start: ul, End: ll},
	}
}
