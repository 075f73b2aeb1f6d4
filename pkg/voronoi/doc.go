// Package voronoi computes a planar Voronoi diagram of sites inside a square bound.
//
// There is no sweep line. Every cell is built on its own from the perpendicular bisectors
// between its site and all other sites, plus the four sides of the bound: all of them are
// intersected pairwise, then a walk starting from the line nearest to the site follows the
// intersection graph around the cell, clipping each line to the half-planes of its
// neighbours. The clipped lines are finally chained into a closed counterclockwise loop.
//
// The cost is cubic in the number of sites, which is fine for the tens of sites the
// front ends work with. Everything is recomputed on each call.
package voronoi
