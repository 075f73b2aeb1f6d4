package voronoi

import "math"

// parallelEpsilon is the sine of the smallest angle at which two lines still cross.
const parallelEpsilon = 1e-12

// intersect returns the crossing point of a and b. It reports false when the lines are
// parallel (vertical pairs included) or when the crossing of the infinite lines falls
// outside either segment grown by eps. Range checks are independent of direction.
func intersect(a, b Line, eps float64) (Vertex, bool) {
	p, r := a.Start.vec(), a.dir()
	q, s := b.Start.vec(), b.dir()

	den := r.Cross(s)
	if den == 0 || math.Abs(den) <= parallelEpsilon*r.Norm()*s.Norm() {
		return Vertex{}, false
	}

	t := q.Sub(p).Cross(s) / den
	at := vertexOf(p.Add(r.Mul(t)))
	if !a.spans(at, eps) || !b.spans(at, eps) {
		return Vertex{}, false
	}
	return at, true
}

type poolKey [2]int64

// vertexPool hands out one representative for every cluster of crossings closer than
// eps. Three or more lines meeting at a point are computed pairwise and land a few ulps
// apart; after snapping they compare equal with ==.
type vertexPool struct {
	eps   float64
	cells map[poolKey][]Vertex
}

func newVertexPool(eps float64) *vertexPool {
	return &vertexPool{eps: eps, cells: map[poolKey][]Vertex{}}
}

func (p *vertexPool) keyOf(v Vertex) poolKey {
	return poolKey{int64(math.Floor(v.X / p.eps)), int64(math.Floor(v.Y / p.eps))}
}

func (p *vertexPool) snap(v Vertex) Vertex {
	k := p.keyOf(v)
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for _, w := range p.cells[poolKey{k[0] + dx, k[1] + dy}] {
				if math.Abs(w.X-v.X) <= p.eps && math.Abs(w.Y-v.Y) <= p.eps {
					return w
				}
			}
		}
	}
	p.cells[k] = append(p.cells[k], v)
	return v
}

// index intersects every unordered pair of segs and records each crossing on both
// participants. It returns the number of intersections found.
func index(segs []*segment, tol tolerance) int {
	pool := newVertexPool(tol.snap)
	n := 0
	for i := range segs {
		for j := i + 1; j < len(segs); j++ {
			at, ok := intersect(segs[i].line, segs[j].line, tol.geom)
			if !ok {
				continue
			}
			x := &intersection{at: pool.snap(at), seg1: segs[i], seg2: segs[j]}
			segs[i].attach(x)
			segs[j].attach(x)
			n++
		}
	}
	return n
}
