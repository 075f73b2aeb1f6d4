package voronoi

// bisector returns the perpendicular bisector of s1 and s2, centred on their midpoint and
// reaching extent in both directions. It is directed so that s1 lies on its left.
func bisector(s1, s2 Vertex, extent float64) Line {
	a, b := s1.vec(), s2.vec()
	mid := a.Add(b).Mul(0.5)
	perp := b.Sub(a).Normalize().Ortho()
	return Line{
		Start: vertexOf(mid.Sub(perp.Mul(extent))),
		End:   vertexOf(mid.Add(perp.Mul(extent))),
	}
}

// bisectors returns, for every site, its n-1 bisectors in the order of the other sites.
// The bisector of (i, j) and the one of (j, i) are the same line walked in opposite
// directions, and are kept separate so each site's working set owns its own copy.
func bisectors(sites []Vertex, extent float64) [][]Line {
	out := make([][]Line, len(sites))
	for i, s1 := range sites {
		out[i] = make([]Line, 0, len(sites)-1)
		for j, s2 := range sites {
			if i == j {
				continue
			}
			out[i] = append(out[i], bisector(s1, s2, extent))
		}
	}
	return out
}
